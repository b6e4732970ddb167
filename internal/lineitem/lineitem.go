package lineitem

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies a financial line item. Free-form input is normalized
// to a known category at the boundary; anything unrecognized becomes
// CategoryOther rather than being stored verbatim.
type Category string

const (
	CategoryDamages   Category = "damages"
	CategoryLegalFees Category = "legal_fees"
	CategoryCourtFees Category = "court_fees"
	CategoryTax       Category = "tax"
	CategoryOther     Category = "other"
)

var categoryAliases = map[string]Category{
	"damages":      CategoryDamages,
	"damage":       CategoryDamages,
	"compensation": CategoryDamages,
	"legal_fees":   CategoryLegalFees,
	"legal fees":   CategoryLegalFees,
	"attorney":     CategoryLegalFees,
	"lawyer_fees":  CategoryLegalFees,
	"court_fees":   CategoryCourtFees,
	"court fees":   CategoryCourtFees,
	"court":        CategoryCourtFees,
	"filing":       CategoryCourtFees,
	"tax":          CategoryTax,
	"vat":          CategoryTax,
	"other":        CategoryOther,
}

// ParseCategory normalizes a free-form category string. Unrecognized
// non-empty values map to CategoryOther; an empty value stays empty so
// validation can flag it as missing.
func ParseCategory(s string) Category {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return ""
	}

	if cat, ok := categoryAliases[normalized]; ok {
		return cat
	}

	return CategoryOther
}

// LineItem is one financial entry attached to a case. The case id is owned
// externally; TemplateID records provenance when the item was seeded from a
// template and carries no ownership.
type LineItem struct {
	ID           uuid.UUID
	CaseID       uuid.UUID
	Name         string
	Category     Category
	Amount       decimal.Decimal
	Taxable      bool
	Description  string
	DisplayOrder int
	TemplateID   *uuid.UUID
	CreatedAt    time.Time
}
