package calc

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// FormatCurrency renders an amount with 2 decimal places and the symbol
// placement customary for the currency. Codes that are not valid ISO 4217,
// or valid codes without a known symbol, fall back to "<amount> <code>".
func FormatCurrency(amount decimal.Decimal, code string) string {
	fixed := amount.StringFixed(2)

	unit, err := currency.ParseISO(code)
	if err != nil {
		fallback := strings.ToUpper(strings.TrimSpace(code))
		if fallback == "" {
			return fixed
		}

		return fixed + " " + fallback
	}

	switch unit {
	case currency.EUR:
		return fixed + " €"
	case currency.USD:
		return "$" + fixed
	case currency.GBP:
		return "£" + fixed
	default:
		return fixed + " " + unit.String()
	}
}
