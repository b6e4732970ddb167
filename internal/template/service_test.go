package template_test

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
	"github.com/jpcarvalho/lexledger/internal/template"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func gdprTemplate(id uuid.UUID) (*template.Template, []*template.TemplateItem) {
	tmpl := &template.Template{
		ID:        id,
		Name:      "GDPR Standard",
		Kind:      template.KindGDPR,
		IsDefault: true,
		IsActive:  true,
	}

	items := []*template.TemplateItem{
		{TemplateID: id, Name: "GDPR damages", Category: lineitem.CategoryDamages, DefaultAmount: dec("350.00"), DisplayOrder: 1},
		{TemplateID: id, Name: "Attorney fees", Category: lineitem.CategoryLegalFees, DefaultAmount: dec("96.90"), Taxable: true, DisplayOrder: 2},
		{TemplateID: id, Name: "Dunning costs", Category: lineitem.CategoryLegalFees, DefaultAmount: dec("13.36"), Taxable: true, DisplayOrder: 3},
		{TemplateID: id, Name: "Court filing fee", Category: lineitem.CategoryCourtFees, DefaultAmount: dec("32.00"), DisplayOrder: 4},
	}

	return tmpl, items
}

func newLedgerCapture(t *testing.T, ctrl *gomock.Controller, caseID uuid.UUID, captured *[]*lineitem.LineItem) *lineitem.Service {
	t.Helper()

	repo := lineitem.NewMockRepository(ctrl)
	rtx := lineitem.NewMockReplaceTx(ctrl)

	repo.EXPECT().BeginReplace(gomock.Any(), caseID).Return(rtx, nil)
	rtx.EXPECT().DeleteCaseLineItems(gomock.Any(), caseID).Return(nil)
	rtx.EXPECT().InsertLineItems(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []*lineitem.LineItem) error {
			for _, item := range items {
				item.ID = uuid.New()
			}

			*captured = items

			return nil
		})
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(nil)

	return lineitem.NewService(repo, calc.DefaultTaxRate)
}

func TestService_ApplyToCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()
	templateID := uuid.New()
	tmpl, tmplItems := gdprTemplate(templateID)

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().GetTemplate(gomock.Any(), templateID).Return(tmpl, nil)
	repo.EXPECT().ListTemplateItems(gomock.Any(), templateID).Return(tmplItems, nil)

	var captured []*lineitem.LineItem

	ledger := newLedgerCapture(t, ctrl, caseID, &captured)
	svc := template.NewService(repo, ledger)

	items, err := svc.ApplyToCase(context.Background(), caseID, templateID)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Len(t, captured, 4)

	for i, item := range items {
		assert.Equal(t, caseID, item.CaseID)
		require.NotNil(t, item.TemplateID)
		assert.Equal(t, templateID, *item.TemplateID)
		assert.Equal(t, i+1, item.DisplayOrder)
	}

	// The seeded GDPR template must produce the documented case totals.
	totals := calc.ComputeTotals(lineitem.ToCalcItems(items), calc.DefaultTaxRate)
	assert.True(t, totals.Subtotal.Equal(dec("492.26")), "subtotal = %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(dec("20.95")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(dec("513.21")), "total = %s", totals.Total)
}

func TestService_ApplyToCase_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	templateID := uuid.New()

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().GetTemplate(gomock.Any(), templateID).Return(nil, template.ErrNotFound)

	svc := template.NewService(repo, nil)

	_, err := svc.ApplyToCase(context.Background(), uuid.New(), templateID)
	assert.ErrorIs(t, err, template.ErrNotFound)
}

func TestService_ApplyToCase_InactiveTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	templateID := uuid.New()
	tmpl, _ := gdprTemplate(templateID)
	tmpl.IsActive = false

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().GetTemplate(gomock.Any(), templateID).Return(tmpl, nil)

	svc := template.NewService(repo, nil)

	_, err := svc.ApplyToCase(context.Background(), uuid.New(), templateID)
	assert.ErrorIs(t, err, template.ErrNotFound)
}

func TestService_ApplyDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caseID := uuid.New()
	templateID := uuid.New()
	tmpl, tmplItems := gdprTemplate(templateID)

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().FindDefaultTemplate(gomock.Any()).Return(tmpl, nil)
	repo.EXPECT().GetTemplate(gomock.Any(), templateID).Return(tmpl, nil)
	repo.EXPECT().ListTemplateItems(gomock.Any(), templateID).Return(tmplItems, nil)

	var captured []*lineitem.LineItem

	ledger := newLedgerCapture(t, ctrl, caseID, &captured)
	svc := template.NewService(repo, ledger)

	applied, err := svc.ApplyDefault(context.Background(), caseID)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Len(t, captured, 4)
}

func TestService_ApplyDefault_NoDefaultIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().FindDefaultTemplate(gomock.Any()).Return(nil, template.ErrNotFound)

	svc := template.NewService(repo, nil)

	applied, err := svc.ApplyDefault(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().CountTemplates(gomock.Any()).Return(0, nil)

	var seeded []*template.Template

	repo.EXPECT().
		InsertTemplate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tmpl *template.Template, items []*template.TemplateItem) error {
			tmpl.ID = uuid.New()
			seeded = append(seeded, tmpl)

			if tmpl.Name == "GDPR Standard" {
				require.Len(t, items, 4)

				sum := decimal.Zero
				for _, item := range items {
					sum = sum.Add(item.DefaultAmount)
				}

				assert.True(t, sum.Equal(dec("492.26")), "GDPR item sum = %s", sum)
			}

			return nil
		}).
		Times(3)

	svc := template.NewService(repo, nil)
	require.NoError(t, svc.Seed(context.Background()))
	require.Len(t, seeded, 3)

	var defaults int

	for _, tmpl := range seeded {
		assert.True(t, tmpl.IsActive)

		if tmpl.IsDefault {
			defaults++
		}
	}

	assert.Equal(t, 1, defaults)
}

func TestService_Seed_SkipsWhenCatalogExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().CountTemplates(gomock.Any()).Return(3, nil)

	svc := template.NewService(repo, nil)
	require.NoError(t, svc.Seed(context.Background()))
}

func TestService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	templateID := uuid.New()
	tmpl, _ := gdprTemplate(templateID)

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().GetTemplate(gomock.Any(), templateID).Return(tmpl, nil)
	repo.EXPECT().DeactivateTemplate(gomock.Any(), templateID).Return(nil)

	svc := template.NewService(repo, nil)
	require.NoError(t, svc.Deactivate(context.Background(), templateID))
}

func TestService_Deactivate_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().GetTemplate(gomock.Any(), gomock.Any()).Return(nil, template.ErrNotFound)

	svc := template.NewService(repo, nil)

	err := svc.Deactivate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, template.ErrNotFound)
}

func TestService_ApplyDefault_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := template.NewMockRepository(ctrl)
	repo.EXPECT().FindDefaultTemplate(gomock.Any()).Return(nil, errors.New("db error"))

	svc := template.NewService(repo, nil)

	_, err := svc.ApplyDefault(context.Background(), uuid.New())
	assert.Error(t, err)
}
