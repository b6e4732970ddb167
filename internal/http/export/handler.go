package export

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jpcarvalho/lexledger/internal/export"
)

type Handler struct {
	exporter *export.Service
}

func NewHandler(exporter *export.Service) *Handler {
	return &Handler{exporter: exporter}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{caseID}/export", h.export)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, "invalid case id", http.StatusBadRequest)
		return
	}

	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatCSV
	}

	data, err := h.exporter.Export(r.Context(), caseID, format)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	filename := fmt.Sprintf("case-%s-ledger.%s", caseID, format)

	switch format {
	case export.FormatCSV:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	case export.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
