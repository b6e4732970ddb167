package lineitem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/calc"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=lineitem
type Repository interface {
	ListCaseLineItems(ctx context.Context, caseID uuid.UUID) ([]*LineItem, error)

	BeginReplace(ctx context.Context, caseID uuid.UUID) (ReplaceTx, error)
}

// ReplaceTx wraps the atomic delete-then-insert of a case's full ledger.
// Concurrent replaces of the same case are serialized by the store.
type ReplaceTx interface {
	DeleteCaseLineItems(ctx context.Context, caseID uuid.UUID) error
	InsertLineItems(ctx context.Context, items []*LineItem) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo    Repository
	taxRate decimal.Decimal
}

func NewService(repo Repository, taxRate decimal.Decimal) *Service {
	return &Service{repo: repo, taxRate: taxRate}
}

// TaxRate returns the rate this service applies to taxable items.
func (s *Service) TaxRate() decimal.Decimal {
	return s.taxRate
}

type CreateParams struct {
	Name         string
	Category     Category
	Amount       decimal.Decimal
	Taxable      bool
	Description  string
	DisplayOrder int
	TemplateID   *uuid.UUID
}

// List returns a case's ledger ordered by display order. A case with no
// line items yields an empty slice, not an error.
func (s *Service) List(ctx context.Context, caseID uuid.UUID) ([]*LineItem, error) {
	return s.repo.ListCaseLineItems(ctx, caseID)
}

// Replace swaps the case's entire ledger for the given set. The previous
// items are deleted and the new ones inserted as a single unit; item ids
// are regenerated on every save. Invalid input is rejected with
// *calc.ValidationErrors before anything is written.
func (s *Service) Replace(ctx context.Context, caseID uuid.UUID, params []CreateParams) ([]*LineItem, error) {
	if errs := calc.ValidateItems(toCalcParams(params)); errs != nil {
		return nil, errs
	}

	items := paramsToLineItems(caseID, params)

	rtx, err := s.repo.BeginReplace(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("begin replace: %w", err)
	}
	defer rtx.Rollback()

	if err := rtx.DeleteCaseLineItems(ctx, caseID); err != nil {
		return nil, fmt.Errorf("delete line items: %w", err)
	}

	if err := rtx.InsertLineItems(ctx, items); err != nil {
		return nil, fmt.Errorf("insert line items: %w", err)
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace: %w", err)
	}

	return items, nil
}

// Totals loads the case's ledger and computes its financial summary.
// An empty ledger is a valid zero result.
func (s *Service) Totals(ctx context.Context, caseID uuid.UUID) (calc.Totals, error) {
	items, err := s.repo.ListCaseLineItems(ctx, caseID)
	if err != nil {
		return calc.Totals{}, fmt.Errorf("listing line items: %w", err)
	}

	return calc.ComputeTotals(ToCalcItems(items), s.taxRate), nil
}

// ToCalcItems converts ledger items into the engine's item shape.
func ToCalcItems(items []*LineItem) []calc.Item {
	out := make([]calc.Item, len(items))
	for i, item := range items {
		out[i] = calc.Item{
			Name:        item.Name,
			Category:    string(item.Category),
			Amount:      item.Amount,
			Taxable:     item.Taxable,
			Description: item.Description,
		}
	}

	return out
}

func toCalcParams(params []CreateParams) []calc.Item {
	out := make([]calc.Item, len(params))
	for i, p := range params {
		out[i] = calc.Item{
			Name:        p.Name,
			Category:    string(p.Category),
			Amount:      p.Amount,
			Taxable:     p.Taxable,
			Description: p.Description,
		}
	}

	return out
}

func paramsToLineItems(caseID uuid.UUID, params []CreateParams) []*LineItem {
	items := make([]*LineItem, len(params))
	for i, p := range params {
		order := p.DisplayOrder
		if order == 0 {
			order = i + 1
		}

		items[i] = &LineItem{
			CaseID:       caseID,
			Name:         p.Name,
			Category:     p.Category,
			Amount:       p.Amount,
			Taxable:      p.Taxable,
			Description:  p.Description,
			DisplayOrder: order,
			TemplateID:   p.TemplateID,
		}
	}

	return items
}
