package calc

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/calc"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/schedule", h.schedule)
	r.Post("/discount", h.discount)
}

type scheduleRequest struct {
	Total        decimal.Decimal `json:"total"`
	Installments int             `json:"installments"`
	AnnualRate   float64         `json:"annual_rate"`
}

type scheduleEntryResponse struct {
	Installment      int             `json:"installment"`
	Amount           decimal.Decimal `json:"amount"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	DueDate          time.Time       `json:"due_date"`
}

func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Installments <= 0 {
		http.Error(w, "installments must be positive", http.StatusBadRequest)
		return
	}

	if req.Total.IsNegative() {
		http.Error(w, "total must not be negative", http.StatusBadRequest)
		return
	}

	entries := calc.ComputeSchedule(req.Total, req.Installments, req.AnnualRate, time.Now())

	resp := make([]scheduleEntryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = scheduleEntryResponse{
			Installment:      entry.Installment,
			Amount:           entry.Amount,
			Interest:         entry.Interest,
			Principal:        entry.Principal,
			RemainingBalance: entry.RemainingBalance,
			DueDate:          entry.DueDate,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type discountRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Kind   string          `json:"kind"`
	Value  decimal.Decimal `json:"value"`
}

type discountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) discount(w http.ResponseWriter, r *http.Request) {
	var req discountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	kind := calc.DiscountKind(req.Kind)
	if kind != calc.DiscountPercentage && kind != calc.DiscountFixed {
		http.Error(w, "unknown discount kind", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, discountResponse{
		Amount: calc.ApplyDiscount(req.Amount, kind, req.Value),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
