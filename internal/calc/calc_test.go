package calc_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcarvalho/lexledger/internal/calc"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestComputeTotals(t *testing.T) {
	type testCase struct {
		name         string
		items        []calc.Item
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}

	tests := []testCase{
		{
			name:         "Empty",
			items:        nil,
			wantSubtotal: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name: "NoTaxableItems",
			items: []calc.Item{
				{Name: "Damages", Amount: dec("350.00")},
				{Name: "Filing fee", Amount: dec("32.00")},
			},
			wantSubtotal: "382.00",
			wantTax:      "0",
			wantTotal:    "382.00",
		},
		{
			name: "MixedTaxable",
			items: []calc.Item{
				{Name: "Damages", Amount: dec("350.00")},
				{Name: "Attorney fee", Amount: dec("96.90"), Taxable: true},
				{Name: "Dunning fee", Amount: dec("13.36"), Taxable: true},
				{Name: "Court fee", Amount: dec("32.00")},
			},
			wantSubtotal: "492.26",
			wantTax:      "20.95",
			wantTotal:    "513.21",
		},
		{
			name: "AllTaxable",
			items: []calc.Item{
				{Name: "A", Amount: dec("100.00"), Taxable: true},
				{Name: "B", Amount: dec("50.00"), Taxable: true},
			},
			wantSubtotal: "150.00",
			wantTax:      "28.50",
			wantTotal:    "178.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ComputeTotals(tt.items, calc.DefaultTaxRate)

			assert.True(t, got.Subtotal.Equal(dec(tt.wantSubtotal)), "subtotal = %s", got.Subtotal)
			assert.True(t, got.TaxAmount.Equal(dec(tt.wantTax)), "tax = %s", got.TaxAmount)
			assert.True(t, got.Total.Equal(dec(tt.wantTotal)), "total = %s", got.Total)
			assert.True(t, got.TaxRate.Equal(calc.DefaultTaxRate))
		})
	}
}

func TestComputeTotals_TotalEqualsSubtotalPlusTax(t *testing.T) {
	items := []calc.Item{
		{Name: "A", Amount: dec("123.41"), Taxable: true},
		{Name: "B", Amount: dec("0.01"), Taxable: true},
		{Name: "C", Amount: dec("999.99")},
		{Name: "D", Amount: dec("0.00"), Taxable: true},
	}

	got := calc.ComputeTotals(items, calc.DefaultTaxRate)

	require.True(t, got.Total.Equal(got.Subtotal.Add(got.TaxAmount)),
		"total %s != subtotal %s + tax %s", got.Total, got.Subtotal, got.TaxAmount)
}

func TestComputeTotals_CustomRate(t *testing.T) {
	items := []calc.Item{{Name: "A", Amount: dec("200.00"), Taxable: true}}

	got := calc.ComputeTotals(items, dec("0.07"))

	assert.True(t, got.TaxAmount.Equal(dec("14.00")), "tax = %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(dec("214.00")), "total = %s", got.Total)
}

func TestApplyDiscount(t *testing.T) {
	type testCase struct {
		name   string
		amount string
		kind   calc.DiscountKind
		value  string
		want   string
	}

	tests := []testCase{
		{name: "Percentage", amount: "100", kind: calc.DiscountPercentage, value: "10", want: "90"},
		{name: "PercentageOver100GoesNegative", amount: "100", kind: calc.DiscountPercentage, value: "150", want: "-50"},
		{name: "Fixed", amount: "100", kind: calc.DiscountFixed, value: "30", want: "70"},
		{name: "FixedFlooredAtZero", amount: "10", kind: calc.DiscountFixed, value: "50", want: "0"},
		{name: "UnknownKindIdentity", amount: "42.50", kind: "loyalty", value: "10", want: "42.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ApplyDiscount(dec(tt.amount), tt.kind, dec(tt.value))

			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
