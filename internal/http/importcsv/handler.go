package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/calc"
	"github.com/jpcarvalho/lexledger/internal/importer"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
	"github.com/jpcarvalho/lexledger/internal/matching"
)

type Handler struct {
	importSvc *importer.Service
	ledger    *lineitem.Service
	matchSvc  *matching.Service
}

func NewHandler(importSvc *importer.Service, ledger *lineitem.Service, matchSvc *matching.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		ledger:    ledger,
		matchSvc:  matchSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{caseID}/import", h.importLedger)
}

type importedItemResponse struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Taxable      bool            `json:"taxable"`
	DisplayOrder int             `json:"display_order"`
}

type importSuccessResponse struct {
	Imported int                    `json:"imported"`
	Items    []importedItemResponse `json:"items"`
}

type validationResponse struct {
	General []string         `json:"general,omitempty"`
	Items   map[int][]string `json:"items,omitempty"`
}

// importLedger parses an uploaded CSV and replaces the case's ledger with
// its rows. Categories missing from the file are filled from learned name
// mappings before validation runs.
func (h *Handler) importLedger(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, "invalid case id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(importer.FormatCSV, file)
	if err != nil {
		http.Error(w, "failed to parse file: "+err.Error(), http.StatusBadRequest)
		return
	}

	for i := range params {
		if params[i].Category != "" && params[i].Category != lineitem.CategoryOther {
			continue
		}

		cat, err := h.matchSvc.Suggest(r.Context(), params[i].Name)
		if err != nil {
			slog.Warn("category suggestion failed", "item", params[i].Name, "error", err)
			continue
		}

		if cat != "" {
			params[i].Category = cat
		}
	}

	items, err := h.ledger.Replace(r.Context(), caseID, params)
	if err != nil {
		var verrs *calc.ValidationErrors
		if errors.As(err, &verrs) {
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
				General: verrs.General,
				Items:   verrs.Fields,
			})

			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := importSuccessResponse{
		Imported: len(items),
		Items:    make([]importedItemResponse, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = importedItemResponse{
			Name:         item.Name,
			Category:     string(item.Category),
			Amount:       item.Amount,
			Taxable:      item.Taxable,
			DisplayOrder: item.DisplayOrder,
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
