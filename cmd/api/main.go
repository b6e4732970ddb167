package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jpcarvalho/lexledger/internal/config"
	"github.com/jpcarvalho/lexledger/internal/database"
	"github.com/jpcarvalho/lexledger/internal/export"
	lexHttp "github.com/jpcarvalho/lexledger/internal/http"
	calcHandler "github.com/jpcarvalho/lexledger/internal/http/calc"
	exportHandler "github.com/jpcarvalho/lexledger/internal/http/export"
	importHandler "github.com/jpcarvalho/lexledger/internal/http/importcsv"
	ledgerHandler "github.com/jpcarvalho/lexledger/internal/http/ledger"
	matchingHandler "github.com/jpcarvalho/lexledger/internal/http/matching"
	templateHandler "github.com/jpcarvalho/lexledger/internal/http/template"
	"github.com/jpcarvalho/lexledger/internal/importer"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
	lineitemStore "github.com/jpcarvalho/lexledger/internal/lineitem/store"
	"github.com/jpcarvalho/lexledger/internal/matching"
	matchingStore "github.com/jpcarvalho/lexledger/internal/matching/store"
	"github.com/jpcarvalho/lexledger/internal/template"
	templateStore "github.com/jpcarvalho/lexledger/internal/template/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		ledgerService   = lineitem.NewService(lineitemStore.New(db), cfg.TaxRate())
		templateService = template.NewService(templateStore.New(db), ledgerService)
		matchingService = matching.NewService(matchingStore.New(db))
		importService   = importer.NewService()
		exportService   = export.NewService(ledgerService)
	)

	if err := templateService.Seed(context.Background()); err != nil {
		slog.Error("failed to seed templates", "error", err)
		os.Exit(1)
	}

	var (
		ledgerH   = ledgerHandler.NewHandler(ledgerService, templateService)
		templateH = templateHandler.NewHandler(templateService)
		calcH     = calcHandler.NewHandler()
		exportH   = exportHandler.NewHandler(exportService)
		importH   = importHandler.NewHandler(importService, ledgerService, matchingService)
		matchingH = matchingHandler.NewHandler(matchingService)
	)

	router := lexHttp.New(ledgerH, templateH, calcH, exportH, importH, matchingH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
