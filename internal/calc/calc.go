package calc

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the statutory VAT rate applied to taxable items
// unless the caller configures a different one.
var DefaultTaxRate = decimal.NewFromFloat(0.19)

// Item is the minimal line-item view the engine operates on.
// Domain packages convert their own models into this shape.
type Item struct {
	Name        string
	Category    string
	Amount      decimal.Decimal
	Taxable     bool
	Description string
}

// Totals is the derived financial summary of a set of line items.
// It is computed fresh on every call and never stored.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	TaxRate   decimal.Decimal
}

// ComputeTotals sums the given items into subtotal, tax and grand total.
// Tax applies only to items flagged taxable. Monetary results are rounded
// to 2 decimal places; an empty input yields zero totals with the rate echoed.
func ComputeTotals(items []Item, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	taxable := decimal.Zero

	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)

		if item.Taxable {
			taxable = taxable.Add(item.Amount)
		}
	}

	tax := taxable.Mul(taxRate)

	return Totals{
		Subtotal:  subtotal.Round(2),
		TaxAmount: tax.Round(2),
		Total:     subtotal.Add(tax).Round(2),
		TaxRate:   taxRate,
	}
}

// DiscountKind selects how a discount value is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// ApplyDiscount returns the amount after applying a discount.
//
// Percentage discounts are not floored: a value above 100 yields a negative
// result, which callers may reject upstream. Fixed discounts never take the
// amount below zero. An unknown kind leaves the amount unchanged.
func ApplyDiscount(amount decimal.Decimal, kind DiscountKind, value decimal.Decimal) decimal.Decimal {
	switch kind {
	case DiscountPercentage:
		factor := decimal.NewFromInt(1).Sub(value.Div(decimal.NewFromInt(100)))
		return amount.Mul(factor).Round(2)
	case DiscountFixed:
		result := amount.Sub(value)
		if result.IsNegative() {
			return decimal.Zero
		}

		return result.Round(2)
	default:
		return amount
	}
}
