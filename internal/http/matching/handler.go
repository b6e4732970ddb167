package matching

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
	"github.com/jpcarvalho/lexledger/internal/matching"
)

type Handler struct {
	matchSvc *matching.Service
}

func NewHandler(matchSvc *matching.Service) *Handler {
	return &Handler{matchSvc: matchSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/suggest", h.suggest)
	r.Post("/learn", h.learn)
}

type suggestResponse struct {
	Category string `json:"category"`
	Matched  bool   `json:"matched"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	cat, err := h.matchSvc.Suggest(r.Context(), name)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, suggestResponse{
		Category: string(cat),
		Matched:  cat != "",
	})
}

type learnRequest struct {
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Pattern == "" || req.Category == "" {
		http.Error(w, "pattern and category are required", http.StatusBadRequest)
		return
	}

	if err := h.matchSvc.Learn(r.Context(), req.Pattern, lineitem.ParseCategory(req.Category)); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
