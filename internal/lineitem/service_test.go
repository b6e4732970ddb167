package lineitem_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jpcarvalho/lexledger/internal/calc"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func validParams() []lineitem.CreateParams {
	return []lineitem.CreateParams{
		{
			Name:     "Damages",
			Category: lineitem.CategoryDamages,
			Amount:   dec("350.00"),
		},
		{
			Name:     "Attorney fee",
			Category: lineitem.CategoryLegalFees,
			Amount:   dec("96.90"),
			Taxable:  true,
		},
	}
}

func TestService_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := lineitem.NewMockRepository(ctrl)
	rtx := lineitem.NewMockReplaceTx(ctrl)
	svc := lineitem.NewService(repo, calc.DefaultTaxRate)

	caseID := uuid.New()
	params := validParams()

	repo.EXPECT().BeginReplace(gomock.Any(), caseID).Return(rtx, nil)
	rtx.EXPECT().DeleteCaseLineItems(gomock.Any(), caseID).Return(nil)
	rtx.EXPECT().InsertLineItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []*lineitem.LineItem) error {
			for _, item := range items {
				item.ID = uuid.New()
			}
			return nil
		})
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(nil)

	items, err := svc.Replace(context.Background(), caseID, params)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Display order is assigned from position when the caller leaves it unset.
	assert.Equal(t, 1, items[0].DisplayOrder)
	assert.Equal(t, 2, items[1].DisplayOrder)
	assert.Equal(t, caseID, items[0].CaseID)
}

func TestService_Replace_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := lineitem.NewMockRepository(ctrl)
	svc := lineitem.NewService(repo, calc.DefaultTaxRate)

	params := []lineitem.CreateParams{
		{Name: "", Category: lineitem.CategoryDamages, Amount: dec("5")},
	}

	// No repository calls expected: validation rejects before any write.
	items, err := svc.Replace(context.Background(), uuid.New(), params)
	require.Error(t, err)
	assert.Nil(t, items)

	var verrs *calc.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Fields[0], 1)
}

func TestService_Replace_EmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := lineitem.NewMockRepository(ctrl)
	svc := lineitem.NewService(repo, calc.DefaultTaxRate)

	_, err := svc.Replace(context.Background(), uuid.New(), nil)

	var verrs *calc.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.General, 1)
	assert.Empty(t, verrs.Fields)
}

func TestService_Replace_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := lineitem.NewMockRepository(ctrl)
	rtx := lineitem.NewMockReplaceTx(ctrl)
	svc := lineitem.NewService(repo, calc.DefaultTaxRate)

	caseID := uuid.New()

	repo.EXPECT().BeginReplace(gomock.Any(), caseID).Return(rtx, nil)
	rtx.EXPECT().DeleteCaseLineItems(gomock.Any(), caseID).Return(nil)
	rtx.EXPECT().InsertLineItems(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	rtx.EXPECT().Rollback().Return(nil)

	_, err := svc.Replace(context.Background(), caseID, validParams())
	require.Error(t, err)
}

func TestService_Totals(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *lineitem.MockRepository, caseID uuid.UUID)
		wantTotal string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "MixedLedger",
			setupMock: func(m *lineitem.MockRepository, caseID uuid.UUID) {
				m.EXPECT().
					ListCaseLineItems(gomock.Any(), caseID).
					Return([]*lineitem.LineItem{
						{Name: "Damages", Category: lineitem.CategoryDamages, Amount: dec("350.00")},
						{Name: "Attorney fee", Category: lineitem.CategoryLegalFees, Amount: dec("96.90"), Taxable: true},
						{Name: "Dunning fee", Category: lineitem.CategoryLegalFees, Amount: dec("13.36"), Taxable: true},
						{Name: "Court fee", Category: lineitem.CategoryCourtFees, Amount: dec("32.00")},
					}, nil)
			},
			wantTotal: "513.21",
		},
		{
			name: "EmptyLedgerIsZero",
			setupMock: func(m *lineitem.MockRepository, caseID uuid.UUID) {
				m.EXPECT().ListCaseLineItems(gomock.Any(), caseID).Return(nil, nil)
			},
			wantTotal: "0",
		},
		{
			name: "RepoError",
			setupMock: func(m *lineitem.MockRepository, caseID uuid.UUID) {
				m.EXPECT().ListCaseLineItems(gomock.Any(), caseID).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := lineitem.NewMockRepository(ctrl)
			caseID := uuid.New()
			tt.setupMock(repo, caseID)

			svc := lineitem.NewService(repo, calc.DefaultTaxRate)
			got, err := svc.Totals(context.Background(), caseID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Total.Equal(dec(tt.wantTotal)), "total = %s", got.Total)
			assert.True(t, got.TaxRate.Equal(calc.DefaultTaxRate))
		})
	}
}

func TestParseCategory(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  lineitem.Category
	}

	tests := []testCase{
		{name: "Known", input: "damages", want: lineitem.CategoryDamages},
		{name: "CaseInsensitive", input: "  Court_Fees ", want: lineitem.CategoryCourtFees},
		{name: "Alias", input: "VAT", want: lineitem.CategoryTax},
		{name: "UnknownFallsBackToOther", input: "misc stuff", want: lineitem.CategoryOther},
		{name: "EmptyStaysEmpty", input: "   ", want: lineitem.Category("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineitem.ParseCategory(tt.input))
		})
	}
}
