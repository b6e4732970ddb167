package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

// Format selects the export rendition.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for unknown formats; no partial output
// is produced.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Document is the structured export of a case ledger. It round-trips
// through ParseDocument.
type Document struct {
	CaseID     uuid.UUID `json:"case_id"`
	Items      []Item    `json:"items"`
	Totals     Totals    `json:"totals"`
	ExportedAt time.Time `json:"exported_at"`
}

type Item struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Taxable      bool            `json:"taxable"`
	Description  string          `json:"description,omitempty"`
	DisplayOrder int             `json:"display_order"`
	TemplateID   *uuid.UUID      `json:"template_id,omitempty"`
}

type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

// Service renders a case ledger plus its computed totals.
type Service struct {
	ledger *lineitem.Service
}

func NewService(ledger *lineitem.Service) *Service {
	return &Service{ledger: ledger}
}

// Export renders the case in the requested format.
func (s *Service) Export(ctx context.Context, caseID uuid.UUID, format Format) ([]byte, error) {
	switch format {
	case FormatCSV:
		return s.CSV(ctx, caseID)
	case FormatJSON:
		return s.JSON(ctx, caseID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// CSV renders the ledger as item rows followed by a blank line and three
// summary rows. The tax label shows the rate actually applied, not a
// hard-coded figure.
func (s *Service) CSV(ctx context.Context, caseID uuid.UUID) ([]byte, error) {
	doc, err := s.build(ctx, caseID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Item Name", "Category", "Amount", "Taxable", "Description"},
	}

	for _, item := range doc.Items {
		taxable := "No"
		if item.Taxable {
			taxable = "Yes"
		}

		records = append(records, []string{
			item.Name,
			item.Category,
			item.Amount.StringFixed(2),
			taxable,
			item.Description,
		})
	}

	taxLabel := fmt.Sprintf("Tax (%s%%)", doc.Totals.TaxRate.Mul(decimal.NewFromInt(100)).String())

	records = append(records,
		[]string{""},
		[]string{"Subtotal", "", doc.Totals.Subtotal.StringFixed(2), "", ""},
		[]string{taxLabel, "", doc.Totals.TaxAmount.StringFixed(2), "", ""},
		[]string{"Total", "", doc.Totals.Total.StringFixed(2), "", ""},
	)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// JSON renders the ledger as a Document with an export timestamp.
func (s *Service) JSON(ctx context.Context, caseID uuid.UUID) ([]byte, error) {
	doc, err := s.build(ctx, caseID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}

	return data, nil
}

// ParseDocument reads back a JSON export.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return &doc, nil
}

func (s *Service) build(ctx context.Context, caseID uuid.UUID) (*Document, error) {
	items, err := s.ledger.List(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}

	totals, err := s.ledger.Totals(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("computing totals: %w", err)
	}

	doc := &Document{
		CaseID: caseID,
		Items:  make([]Item, len(items)),
		Totals: Totals{
			Subtotal:  totals.Subtotal,
			TaxAmount: totals.TaxAmount,
			Total:     totals.Total,
			TaxRate:   totals.TaxRate,
		},
		ExportedAt: time.Now().UTC(),
	}

	for i, item := range items {
		doc.Items[i] = Item{
			Name:         item.Name,
			Category:     string(item.Category),
			Amount:       item.Amount,
			Taxable:      item.Taxable,
			Description:  item.Description,
			DisplayOrder: item.DisplayOrder,
			TemplateID:   item.TemplateID,
		}
	}

	return doc, nil
}
