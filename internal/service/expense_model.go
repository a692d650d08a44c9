package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
	"github.com/clearspend/expense-server/internal/report"
	"github.com/clearspend/expense-server/internal/storage/expense"
)

// ExpenseInput is the input for creating an expense. ID and CreatedAt are
// assigned by storage.
type ExpenseInput struct {
	Amount      decimal.Decimal
	Category    category.Category
	Date        time.Time
	Description string
}

// ExpensePatch is a partial edit: only set fields change.
type ExpensePatch struct {
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[category.Category]
	Date        omit.Val[time.Time]
	Description omit.Val[string]
}

// IsEmpty reports whether the patch changes nothing.
func (p *ExpensePatch) IsEmpty() bool {
	return !p.Amount.IsSet() && !p.Category.IsSet() && !p.Date.IsSet() && !p.Description.IsSet()
}

// expenseFromStorage converts a stored row into the reporting model. An
// unrecognized category falls back to Other rather than failing the view.
func expenseFromStorage(row *expense.Expense) report.Expense {
	c, err := category.Parse(row.Category)
	if err != nil {
		c = category.Other
	}
	return report.Expense{
		ID:          row.ID,
		Amount:      row.Amount,
		Category:    c,
		Date:        row.Date,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
