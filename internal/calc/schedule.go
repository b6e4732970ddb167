package calc

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleEntry is one installment of a payment plan. Derived and
// ephemeral; nothing persists these.
type ScheduleEntry struct {
	Installment      int
	Amount           decimal.Decimal
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	RemainingBalance decimal.Decimal
	DueDate          time.Time
}

// ComputeSchedule builds a payment plan for total spread over the given
// number of monthly installments at an annual interest rate in percent.
//
// A non-positive installment count yields an empty schedule. A single
// installment is due in full 30 days from now. With interest, the standard
// amortizing-loan formula applies:
//
//	payment = total * (r * (1+r)^n) / ((1+r)^n - 1)
//
// with r the monthly rate and n the installment count. Without interest the
// total splits evenly. The reference time is passed in so the function stays
// deterministic; amounts are rounded to 2 decimal places at the boundary.
func ComputeSchedule(total decimal.Decimal, installments int, annualRatePct float64, now time.Time) []ScheduleEntry {
	if installments <= 0 {
		return nil
	}

	if installments == 1 {
		return []ScheduleEntry{{
			Installment:      1,
			Amount:           total.Round(2),
			Interest:         decimal.Zero,
			Principal:        total.Round(2),
			RemainingBalance: decimal.Zero,
			DueDate:          now.AddDate(0, 0, 30),
		}}
	}

	monthlyRate := annualRatePct / 12 / 100
	if monthlyRate <= 0 {
		return equalSplit(total, installments, now)
	}

	return amortize(total, installments, monthlyRate, now)
}

func equalSplit(total decimal.Decimal, n int, now time.Time) []ScheduleEntry {
	count := decimal.NewFromInt(int64(n))
	installment := total.Div(count).Round(2)

	entries := make([]ScheduleEntry, 0, n)
	for i := 1; i <= n; i++ {
		remaining := installment.Mul(decimal.NewFromInt(int64(n - i)))

		entries = append(entries, ScheduleEntry{
			Installment:      i,
			Amount:           installment,
			Interest:         decimal.Zero,
			Principal:        installment,
			RemainingBalance: remaining,
			DueDate:          now.AddDate(0, i, 0),
		})
	}

	return entries
}

func amortize(total decimal.Decimal, n int, monthlyRate float64, now time.Time) []ScheduleEntry {
	principal := total.InexactFloat64()

	growth := math.Pow(1+monthlyRate, float64(n))
	payment := principal * (monthlyRate * growth) / (growth - 1)

	entries := make([]ScheduleEntry, 0, n)
	remaining := principal

	for i := 1; i <= n; i++ {
		interest := remaining * monthlyRate
		repaid := payment - interest
		remaining -= repaid

		// Floating point dust can leave the final balance a hair below zero.
		display := remaining
		if display < 0 {
			display = 0
		}

		entries = append(entries, ScheduleEntry{
			Installment:      i,
			Amount:           round2(payment),
			Interest:         round2(interest),
			Principal:        round2(repaid),
			RemainingBalance: round2(display),
			DueDate:          now.AddDate(0, i, 0),
		})
	}

	return entries
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
