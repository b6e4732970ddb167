package export_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcarvalho/lexledger/internal/calc"
	"github.com/jpcarvalho/lexledger/internal/export"
	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

// memoryRepo is an in-memory ledger store with real delete-then-insert
// replace semantics.
type memoryRepo struct {
	ledgers map[uuid.UUID][]*lineitem.LineItem
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{ledgers: make(map[uuid.UUID][]*lineitem.LineItem)}
}

func (r *memoryRepo) ListCaseLineItems(_ context.Context, caseID uuid.UUID) ([]*lineitem.LineItem, error) {
	return r.ledgers[caseID], nil
}

func (r *memoryRepo) BeginReplace(_ context.Context, caseID uuid.UUID) (lineitem.ReplaceTx, error) {
	return &memoryReplaceTx{repo: r}, nil
}

type memoryReplaceTx struct {
	repo *memoryRepo
}

func (tx *memoryReplaceTx) DeleteCaseLineItems(_ context.Context, caseID uuid.UUID) error {
	delete(tx.repo.ledgers, caseID)
	return nil
}

func (tx *memoryReplaceTx) InsertLineItems(_ context.Context, items []*lineitem.LineItem) error {
	for _, item := range items {
		item.ID = uuid.New()
		tx.repo.ledgers[item.CaseID] = append(tx.repo.ledgers[item.CaseID], item)
	}

	return nil
}

func (tx *memoryReplaceTx) Commit() error   { return nil }
func (tx *memoryReplaceTx) Rollback() error { return nil }

func seedCase(t *testing.T, ledger *lineitem.Service, caseID uuid.UUID) {
	t.Helper()

	_, err := ledger.Replace(context.Background(), caseID, []lineitem.CreateParams{
		{Name: "GDPR damages", Category: lineitem.CategoryDamages, Amount: dec("350.00")},
		{Name: "Attorney fees", Category: lineitem.CategoryLegalFees, Amount: dec("96.90"), Taxable: true},
		{Name: "Dunning costs", Category: lineitem.CategoryLegalFees, Amount: dec("13.36"), Taxable: true},
		{Name: "Court filing fee", Category: lineitem.CategoryCourtFees, Amount: dec("32.00"), Description: "Advance"},
	})
	require.NoError(t, err)
}

func TestService_CSV(t *testing.T) {
	ledger := lineitem.NewService(newMemoryRepo(), calc.DefaultTaxRate)
	svc := export.NewService(ledger)

	caseID := uuid.New()
	seedCase(t, ledger, caseID)

	data, err := svc.Export(context.Background(), caseID, export.FormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "Item Name,Category,Amount,Taxable,Description", lines[0])
	assert.Equal(t, "GDPR damages,damages,350.00,No,", lines[1])
	assert.Equal(t, "Attorney fees,legal_fees,96.90,Yes,", lines[2])
	assert.Equal(t, "Court filing fee,court_fees,32.00,No,Advance", lines[4])
	assert.Equal(t, "", lines[5])
	assert.Equal(t, "Subtotal,,492.26,,", lines[6])
	assert.Equal(t, "Tax (19%),,20.95,,", lines[7])
	assert.Equal(t, "Total,,513.21,,", lines[8])
}

func TestService_CSV_LabelFollowsConfiguredRate(t *testing.T) {
	ledger := lineitem.NewService(newMemoryRepo(), dec("0.07"))
	svc := export.NewService(ledger)

	caseID := uuid.New()
	_, err := ledger.Replace(context.Background(), caseID, []lineitem.CreateParams{
		{Name: "Claim", Category: lineitem.CategoryDamages, Amount: dec("100.00"), Taxable: true},
	})
	require.NoError(t, err)

	data, err := svc.CSV(context.Background(), caseID)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Tax (7%),,7.00,,")
}

func TestService_JSON_RoundTrip(t *testing.T) {
	ledger := lineitem.NewService(newMemoryRepo(), calc.DefaultTaxRate)
	svc := export.NewService(ledger)

	caseID := uuid.New()
	seedCase(t, ledger, caseID)

	data, err := svc.Export(context.Background(), caseID, export.FormatJSON)
	require.NoError(t, err)

	doc, err := export.ParseDocument(data)
	require.NoError(t, err)

	assert.Equal(t, caseID, doc.CaseID)
	require.Len(t, doc.Items, 4)
	assert.True(t, doc.Items[0].Amount.Equal(dec("350.00")))
	assert.True(t, doc.Totals.Subtotal.Equal(dec("492.26")))
	assert.True(t, doc.Totals.Total.Equal(dec("513.21")))
	assert.False(t, doc.ExportedAt.IsZero())

	// Re-parsed totals must match what the engine computes from the items.
	items := make([]calc.Item, len(doc.Items))
	for i, item := range doc.Items {
		items[i] = calc.Item{Amount: item.Amount, Taxable: item.Taxable}
	}

	recomputed := calc.ComputeTotals(items, doc.Totals.TaxRate)
	assert.True(t, recomputed.Total.Equal(doc.Totals.Total))
}

func TestService_Export_UnsupportedFormat(t *testing.T) {
	ledger := lineitem.NewService(newMemoryRepo(), calc.DefaultTaxRate)
	svc := export.NewService(ledger)

	data, err := svc.Export(context.Background(), uuid.New(), "xml")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
	assert.Nil(t, data)
}

func TestService_EmptyLedgerExportsZeroTotals(t *testing.T) {
	ledger := lineitem.NewService(newMemoryRepo(), calc.DefaultTaxRate)
	svc := export.NewService(ledger)

	data, err := svc.JSON(context.Background(), uuid.New())
	require.NoError(t, err)

	doc, err := export.ParseDocument(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Items)
	assert.True(t, doc.Totals.Total.IsZero())
}

func TestReplaceTwiceKeepsOnlySecondSet(t *testing.T) {
	repo := newMemoryRepo()
	ledger := lineitem.NewService(repo, calc.DefaultTaxRate)

	caseID := uuid.New()
	seedCase(t, ledger, caseID)

	_, err := ledger.Replace(context.Background(), caseID, []lineitem.CreateParams{
		{Name: "Settlement", Category: lineitem.CategoryDamages, Amount: dec("200.00")},
	})
	require.NoError(t, err)

	items, err := ledger.List(context.Background(), caseID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Settlement", items[0].Name)
}
