package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jpcarvalho/lexledger/internal/http/calc"
	"github.com/jpcarvalho/lexledger/internal/http/export"
	"github.com/jpcarvalho/lexledger/internal/http/importcsv"
	"github.com/jpcarvalho/lexledger/internal/http/ledger"
	"github.com/jpcarvalho/lexledger/internal/http/matching"
	"github.com/jpcarvalho/lexledger/internal/http/template"
)

func New(
	ledgerV1 *ledger.Handler,
	templatesV1 *template.Handler,
	calcV1 *calc.Handler,
	exportV1 *export.Handler,
	importV1 *importcsv.Handler,
	matchingV1 *matching.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/cases", func(r chi.Router) {
			ledgerV1.Routes(r)
			exportV1.Routes(r)
			importV1.Routes(r)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			templatesV1.Routes(r)
		})

		r.Route("/calc", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			calcV1.Routes(r)
		})

		r.Route("/matching", func(r chi.Router) {
			matchingV1.Routes(r)
		})
	})

	return router
}
