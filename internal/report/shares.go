package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
)

var oneHundred = decimal.NewFromInt(100)

// Share is one category's portion of a breakdown, ready for a percentage
// bar: Percent is amount/total*100, or zero when the total is zero.
type Share struct {
	Category category.Category
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// Shares computes the per-category percentage shares of a breakdown,
// ordered by descending amount. Ties keep category declaration order, so
// the result is deterministic for any input.
func Shares(breakdown map[category.Category]decimal.Decimal, total decimal.Decimal) []Share {
	shares := make([]Share, 0, len(category.All()))
	for _, c := range category.All() {
		amount, ok := breakdown[c]
		if !ok {
			amount = decimal.Zero
		}
		percent := decimal.Zero
		if total.IsPositive() {
			percent = amount.Div(total).Mul(oneHundred)
		}
		shares = append(shares, Share{Category: c, Amount: amount, Percent: percent})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Amount.GreaterThan(shares[j].Amount)
	})
	return shares
}
