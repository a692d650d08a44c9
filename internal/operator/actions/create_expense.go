package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/storage"
	"github.com/clearspend/expense-server/internal/storage/expense"
)

type CreateExpense struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string

	// Created holds the stored row after a successful Perform.
	Created *expense.Expense

	IAction
}

func (a *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Expense.Insert(ctx, &expense.ExpenseCreate{
		UserID:      a.UserID,
		Amount:      a.Amount,
		Category:    a.Category,
		Date:        a.Date,
		Description: a.Description,
	})
	if err != nil {
		return err
	}

	a.Created = row
	return nil
}
