package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jpcarvalho/lexledger/internal/calc"
)

func TestFormatCurrency(t *testing.T) {
	type testCase struct {
		name   string
		amount string
		code   string
		want   string
	}

	tests := []testCase{
		{name: "EuroSuffix", amount: "492.26", code: "EUR", want: "492.26 €"},
		{name: "EuroLowercaseCode", amount: "10", code: "eur", want: "10.00 €"},
		{name: "DollarPrefix", amount: "1234.5", code: "USD", want: "$1234.50"},
		{name: "PoundPrefix", amount: "99.99", code: "GBP", want: "£99.99"},
		{name: "KnownISOWithoutSymbol", amount: "100", code: "CHF", want: "100.00 CHF"},
		{name: "UnknownCode", amount: "100", code: "XYZ123", want: "100.00 XYZ123"},
		{name: "EmptyCode", amount: "7.5", code: "", want: "7.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.FormatCurrency(dec(tt.amount), tt.code)

			assert.Equal(t, tt.want, got)
		})
	}
}
