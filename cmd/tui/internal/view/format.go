package view

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/calc"
)

const dbTimeout = 5 * time.Second

// Currency is the display currency for all views, set once at startup.
var Currency = "EUR"

// FormatAmount formats a monetary amount with the configured currency.
func FormatAmount(amount decimal.Decimal) string {
	return calc.FormatCurrency(amount, Currency)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
