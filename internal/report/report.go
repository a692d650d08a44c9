// Package report computes derived monthly views over a snapshot of expense
// records: the current-month subset, its total, a per-category breakdown,
// a daily average, and a display ordering. Every function is pure and total
// over well-formed input; the package performs no I/O and never reads a
// clock. Input invariants (positive amounts, valid categories) are enforced
// at the input boundary, not re-checked here.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
)

// SelectMonth returns the expenses whose date falls in the same calendar
// month and year as ref. Comparison is by year and month fields only, so a
// record never drifts across a month boundary because of a zone offset.
func SelectMonth(expenses []Expense, ref time.Time) []Expense {
	selected := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month() {
			selected = append(selected, e)
		}
	}
	return selected
}

// SumAmounts returns the arithmetic sum of amounts, zero for empty input.
func SumAmounts(expenses []Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// BreakdownByCategory sums amounts per category. The result always contains
// every category key, with zero for categories absent from the input;
// presentation code indexes the map unconditionally by every category.
func BreakdownByCategory(expenses []Expense) map[category.Category]decimal.Decimal {
	breakdown := make(map[category.Category]decimal.Decimal, len(category.All()))
	for _, c := range category.All() {
		breakdown[c] = decimal.Zero
	}
	for _, e := range expenses {
		breakdown[e.Category] = breakdown[e.Category].Add(e.Amount)
	}
	return breakdown
}

// DailyAverage divides a month-to-date total by the 1-indexed day of month
// of ref. The divisor is elapsed calendar days, not the count of days with
// recorded spending, so the average can understate early in a month.
func DailyAverage(total decimal.Decimal, ref time.Time) decimal.Decimal {
	return total.Div(decimal.NewFromInt(int64(ref.Day())))
}

// SortByDateDescending returns a new slice ordered most recent first.
// The sort is stable: records sharing a date keep their input order.
func SortByDateDescending(expenses []Expense) []Expense {
	sorted := make([]Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
