package template

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
	"github.com/jpcarvalho/lexledger/internal/template"
)

type Handler struct {
	templates *template.Service
}

func NewHandler(templates *template.Service) *Handler {
	return &Handler{templates: templates}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{templateID}", h.get)
	r.Get("/{templateID}/items", h.items)
	r.Delete("/{templateID}", h.deactivate)
}

type templateResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Description string    `json:"description,omitempty"`
	IsDefault   bool      `json:"is_default"`
	IsActive    bool      `json:"is_active"`
}

type templateItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
	Taxable       bool            `json:"taxable"`
	Description   string          `json:"description,omitempty"`
	DisplayOrder  int             `json:"display_order"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	templates, err := h.templates.List(r.Context(), activeOnly)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]templateResponse, len(templates))
	for i, tmpl := range templates {
		resp[i] = toResponse(tmpl)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "templateID"))
	if err != nil {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}

	tmpl, err := h.templates.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(tmpl))
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "templateID"))
	if err != nil {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}

	items, err := h.templates.Items(r.Context(), id)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := make([]templateItemResponse, len(items))
	for i, item := range items {
		resp[i] = templateItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			Category:      string(item.Category),
			DefaultAmount: item.DefaultAmount,
			Taxable:       item.Taxable,
			Description:   item.Description,
			DisplayOrder:  item.DisplayOrder,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type createRequest struct {
	Name        string              `json:"name"`
	Kind        string              `json:"kind"`
	Description string              `json:"description"`
	IsDefault   bool                `json:"is_default"`
	Items       []createItemRequest `json:"items"`
}

type createItemRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
	Taxable       bool            `json:"taxable"`
	Description   string          `json:"description"`
	DisplayOrder  int             `json:"display_order"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	params := template.CreateParams{
		Name:        req.Name,
		Kind:        template.Kind(req.Kind),
		Description: req.Description,
		IsDefault:   req.IsDefault,
	}
	for _, item := range req.Items {
		params.Items = append(params.Items, template.ItemParams{
			Name:          item.Name,
			Category:      lineitem.ParseCategory(item.Category),
			DefaultAmount: item.DefaultAmount,
			Taxable:       item.Taxable,
			Description:   item.Description,
			DisplayOrder:  item.DisplayOrder,
		})
	}

	tmpl, err := h.templates.Create(r.Context(), params)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(tmpl))
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "templateID"))
	if err != nil {
		http.Error(w, "invalid template id", http.StatusBadRequest)
		return
	}

	if err := h.templates.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, template.ErrNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toResponse(tmpl *template.Template) templateResponse {
	return templateResponse{
		ID:          tmpl.ID,
		Name:        tmpl.Name,
		Kind:        string(tmpl.Kind),
		Description: tmpl.Description,
		IsDefault:   tmpl.IsDefault,
		IsActive:    tmpl.IsActive,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
