package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/calc"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
	"github.com/jpcarvalho/lexledger/internal/template"
)

type Handler struct {
	ledger    *lineitem.Service
	templates *template.Service
}

func NewHandler(ledger *lineitem.Service, templates *template.Service) *Handler {
	return &Handler{ledger: ledger, templates: templates}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{caseID}/lineitems", h.list)
	r.Put("/{caseID}/lineitems", h.replace)
	r.Post("/{caseID}/apply-template", h.applyTemplate)
}

type lineItemDTO struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Taxable      bool            `json:"taxable"`
	Description  string          `json:"description,omitempty"`
	DisplayOrder int             `json:"display_order,omitempty"`
}

type lineItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Taxable      bool            `json:"taxable"`
	Description  string          `json:"description,omitempty"`
	DisplayOrder int             `json:"display_order"`
	TemplateID   *uuid.UUID      `json:"template_id,omitempty"`
}

type totalsResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

type ledgerResponse struct {
	CaseID uuid.UUID          `json:"case_id"`
	Items  []lineItemResponse `json:"items"`
	Totals totalsResponse     `json:"totals"`
}

type validationResponse struct {
	General []string         `json:"general,omitempty"`
	Items   map[int][]string `json:"items,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, "invalid case id", http.StatusBadRequest)
		return
	}

	items, err := h.ledger.List(r.Context(), caseID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeLedger(w, caseID, items, h.ledger)
}

type replaceRequest struct {
	Items []lineItemDTO `json:"items"`
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, "invalid case id", http.StatusBadRequest)
		return
	}

	var req replaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]lineitem.CreateParams, len(req.Items))
	for i, item := range req.Items {
		params[i] = lineitem.CreateParams{
			Name:         item.Name,
			Category:     lineitem.ParseCategory(item.Category),
			Amount:       item.Amount,
			Taxable:      item.Taxable,
			Description:  item.Description,
			DisplayOrder: item.DisplayOrder,
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

	writeLedger(w, caseID, items, h.ledger)
}

type applyTemplateRequest struct {
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
}

// applyTemplate replaces the case's ledger with a template's items. When
// no template id is given, the default template applies; 404 if none
// exists.
func (h *Handler) applyTemplate(w http.ResponseWriter, r *http.Request) {
	caseID, err := uuid.Parse(chi.URLParam(r, "caseID"))
	if err != nil {
		http.Error(w, "invalid case id", http.StatusBadRequest)
		return
	}

	var req applyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.TemplateID == nil {
		applied, err := h.templates.ApplyDefault(r.Context(), caseID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if !applied {
			http.Error(w, "no default template", http.StatusNotFound)
			return
		}
	} else {
		if _, err := h.templates.ApplyToCase(r.Context(), caseID, *req.TemplateID); err != nil {
			if errors.Is(err, template.ErrNotFound) {
				http.Error(w, "template not found", http.StatusNotFound)
				return
			}

			http.Error(w, "internal error", http.StatusInternalServerError)

			return
		}
	}

	items, err := h.ledger.List(r.Context(), caseID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeLedger(w, caseID, items, h.ledger)
}

func writeLedger(w http.ResponseWriter, caseID uuid.UUID, items []*lineitem.LineItem, svc *lineitem.Service) {
	totals := calc.ComputeTotals(lineitem.ToCalcItems(items), svc.TaxRate())

	writeJSON(w, http.StatusOK, ledgerResponse{
		CaseID: caseID,
		Items:  toResponseList(items),
		Totals: totalsResponse{
			Subtotal:  totals.Subtotal,
			TaxAmount: totals.TaxAmount,
			Total:     totals.Total,
			TaxRate:   totals.TaxRate,
		},
	})
}

func toResponseList(items []*lineitem.LineItem) []lineItemResponse {
	resp := make([]lineItemResponse, len(items))
	for i, item := range items {
		resp[i] = lineItemResponse{
			ID:           item.ID,
			Name:         item.Name,
			Category:     string(item.Category),
			Amount:       item.Amount,
			Taxable:      item.Taxable,
			Description:  item.Description,
			DisplayOrder: item.DisplayOrder,
			TemplateID:   item.TemplateID,
		}
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
