package ledger

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const hoursPerDay = 24

// startOfDay truncates t to midnight in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// overdueDays counts whole calendar days elapsed past due, rounded up.
// A loan due today or later is never overdue.
func overdueDays(due, now time.Time, loc *time.Location) int {
	dueDay := startOfDay(due, loc)
	today := startOfDay(now, loc)
	if !today.After(dueDay) {
		return 0
	}
	return int(math.Ceil(today.Sub(dueDay).Hours() / hoursPerDay))
}

// daysUntil is the signed number of calendar days from now until due.
func daysUntil(due, now time.Time, loc *time.Location) int {
	diff := startOfDay(due, loc).Sub(startOfDay(now, loc)).Hours() / hoursPerDay
	return int(math.Round(diff))
}

// fineFor charges rate per overdue day.
func fineFor(days int, rate decimal.Decimal) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	return rate.Mul(decimal.NewFromInt(int64(days)))
}

// DaysUntilDue returns the signed day count until due; negative once overdue.
func (l *Ledger) DaysUntilDue(due time.Time) int {
	return daysUntil(due, l.now(), l.loc)
}
