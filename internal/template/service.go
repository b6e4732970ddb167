package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=template
type Repository interface {
	GetTemplate(ctx context.Context, id uuid.UUID) (*Template, error)
	ListTemplates(ctx context.Context, activeOnly bool) ([]*Template, error)
	ListTemplateItems(ctx context.Context, templateID uuid.UUID) ([]*TemplateItem, error)
	InsertTemplate(ctx context.Context, tmpl *Template, items []*TemplateItem) error
	CountTemplates(ctx context.Context) (int, error)
	DeactivateTemplate(ctx context.Context, id uuid.UUID) error

	// FindDefaultTemplate returns the active default template. When several
	// are flagged default the oldest one wins (created_at, then id), so the
	// pick stays deterministic regardless of query plan.
	FindDefaultTemplate(ctx context.Context) (*Template, error)
}

type Service struct {
	repo   Repository
	ledger *lineitem.Service
}

func NewService(repo Repository, ledger *lineitem.Service) *Service {
	return &Service{repo: repo, ledger: ledger}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	return s.repo.GetTemplate(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*Template, error) {
	return s.repo.ListTemplates(ctx, activeOnly)
}

func (s *Service) Items(ctx context.Context, templateID uuid.UUID) ([]*TemplateItem, error) {
	if _, err := s.repo.GetTemplate(ctx, templateID); err != nil {
		return nil, err
	}

	return s.repo.ListTemplateItems(ctx, templateID)
}

type ItemParams struct {
	Name          string
	Category      lineitem.Category
	DefaultAmount decimal.Decimal
	Taxable       bool
	Description   string
	DisplayOrder  int
}

type CreateParams struct {
	Name        string
	Kind        Kind
	Description string
	IsDefault   bool
	Items       []ItemParams
}

// Create stores a new active template with its ordered item list.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Template, error) {
	tmpl := &Template{
		Name:        params.Name,
		Kind:        params.Kind,
		Description: params.Description,
		IsDefault:   params.IsDefault,
		IsActive:    true,
	}

	items := make([]*TemplateItem, len(params.Items))
	for i, p := range params.Items {
		order := p.DisplayOrder
		if order == 0 {
			order = i + 1
		}

		items[i] = &TemplateItem{
			Name:          p.Name,
			Category:      p.Category,
			DefaultAmount: p.DefaultAmount,
			Taxable:       p.Taxable,
			Description:   p.Description,
			DisplayOrder:  order,
		}
	}

	if err := s.repo.InsertTemplate(ctx, tmpl, items); err != nil {
		return nil, fmt.Errorf("inserting template: %w", err)
	}

	return tmpl, nil
}

// Deactivate logically deletes a template. Applied cases keep their items.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetTemplate(ctx, id); err != nil {
		return err
	}

	return s.repo.DeactivateTemplate(ctx, id)
}

// ApplyToCase replaces the case's entire ledger with the template's items.
// Each new line item carries the template id as provenance and the
// template's default amount; display order is preserved.
func (s *Service) ApplyToCase(ctx context.Context, caseID, templateID uuid.UUID) ([]*lineitem.LineItem, error) {
	tmpl, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if !tmpl.IsActive {
		return nil, ErrNotFound
	}

	items, err := s.repo.ListTemplateItems(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing template items: %w", err)
	}

	params := make([]lineitem.CreateParams, len(items))
	for i, item := range items {
		templateID := item.TemplateID

		params[i] = lineitem.CreateParams{
			Name:         item.Name,
			Category:     item.Category,
			Amount:       item.DefaultAmount,
			Taxable:      item.Taxable,
			Description:  item.Description,
			DisplayOrder: item.DisplayOrder,
			TemplateID:   &templateID,
		}
	}

	return s.ledger.Replace(ctx, caseID, params)
}

// ApplyDefault applies the active default template to the case. It reports
// false without error when no default template exists.
func (s *Service) ApplyDefault(ctx context.Context, caseID uuid.UUID) (bool, error) {
	tmpl, err := s.repo.FindDefaultTemplate(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("finding default template: %w", err)
	}

	if _, err := s.ApplyToCase(ctx, caseID, tmpl.ID); err != nil {
		return false, err
	}

	return true, nil
}
