package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
)

// Monthly is the complete derived view for one calendar month: the month's
// expenses sorted most recent first, their total and count, the total
// per-category breakdown, the daily average to date, and percentage shares.
type Monthly struct {
	Month        time.Month
	Year         int
	Expenses     []Expense
	Count        int
	Total        decimal.Decimal
	Breakdown    map[category.Category]decimal.Decimal
	DailyAverage decimal.Decimal
	Shares       []Share
}

// BuildMonthly derives the full monthly view from an unordered record set
// and a reference date. It recomputes everything from scratch on each call;
// the engine holds no state between invocations.
func BuildMonthly(expenses []Expense, ref time.Time) Monthly {
	selected := SelectMonth(expenses, ref)
	total := SumAmounts(selected)
	breakdown := BreakdownByCategory(selected)

	return Monthly{
		Month:        ref.Month(),
		Year:         ref.Year(),
		Expenses:     SortByDateDescending(selected),
		Count:        len(selected),
		Total:        total,
		Breakdown:    breakdown,
		DailyAverage: DailyAverage(total, ref),
		Shares:       Shares(breakdown, total),
	}
}
