package ledgercsv

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount accepts both dot-decimal ("1234.56", "1,234.56") and
// European comma-decimal ("1.234,56", "350,00") notation.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return decimal.Decimal{}, fmt.Errorf("missing amount")
	}

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")

	switch {
	case lastComma > lastDot:
		// Comma-decimal: dots are thousands separators.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case lastComma >= 0:
		// Dot-decimal with comma thousands separators.
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}

	return d, nil
}
