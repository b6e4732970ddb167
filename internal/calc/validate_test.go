package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcarvalho/lexledger/internal/calc"
)

func TestValidateItems_EmptySet(t *testing.T) {
	errs := calc.ValidateItems(nil)

	require.NotNil(t, errs)
	assert.Len(t, errs.General, 1)
	assert.Empty(t, errs.Fields)
}

func TestValidateItems(t *testing.T) {
	type testCase struct {
		name      string
		items     []calc.Item
		wantValid bool
		wantIndex int
		wantCount int
	}

	tests := []testCase{
		{
			name: "Valid",
			items: []calc.Item{
				{Name: "Damages", Category: "damages", Amount: dec("350.00")},
			},
			wantValid: true,
		},
		{
			name: "ZeroAmountIsValid",
			items: []calc.Item{
				{Name: "Placeholder", Category: "other", Amount: dec("0")},
			},
			wantValid: true,
		},
		{
			name: "MissingName",
			items: []calc.Item{
				{Name: "", Category: "damages", Amount: dec("5")},
			},
			wantIndex: 0,
			wantCount: 1,
		},
		{
			name: "WhitespaceOnlyName",
			items: []calc.Item{
				{Name: "   ", Category: "damages", Amount: dec("5")},
			},
			wantIndex: 0,
			wantCount: 1,
		},
		{
			name: "MissingCategory",
			items: []calc.Item{
				{Name: "Damages", Category: "", Amount: dec("5")},
			},
			wantIndex: 0,
			wantCount: 1,
		},
		{
			name: "NegativeAmount",
			items: []calc.Item{
				{Name: "Damages", Category: "damages", Amount: dec("-0.01")},
			},
			wantIndex: 0,
			wantCount: 1,
		},
		{
			name: "EverythingWrong",
			items: []calc.Item{
				{Name: "", Category: "", Amount: dec("-5")},
			},
			wantIndex: 0,
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := calc.ValidateItems(tt.items)

			if tt.wantValid {
				assert.Nil(t, errs)
				return
			}

			require.NotNil(t, errs)
			assert.Empty(t, errs.General)
			assert.Len(t, errs.Fields[tt.wantIndex], tt.wantCount)
		})
	}
}

func TestValidateItems_ReportsAllInvalidItems(t *testing.T) {
	items := []calc.Item{
		{Name: "OK", Category: "damages", Amount: dec("10")},
		{Name: "", Category: "damages", Amount: dec("10")},
		{Name: "Bad amount", Category: "damages", Amount: dec("-1")},
	}

	errs := calc.ValidateItems(items)

	require.NotNil(t, errs)
	assert.Len(t, errs.Fields, 2)
	assert.NotContains(t, errs.Fields, 0)
	assert.Contains(t, errs.Fields, 1)
	assert.Contains(t, errs.Fields, 2)
	assert.NotEmpty(t, errs.Error())
}
