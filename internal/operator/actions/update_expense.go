package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/clearspend/expense-server/internal/storage"
	"github.com/clearspend/expense-server/internal/storage/expense"
)

type UpdateExpense struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Update expense.ExpenseUpdate

	// Updated holds the stored row after a successful Perform.
	Updated *expense.Expense

	IAction
}

func (a *UpdateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Expense.Update(ctx, a.UserID, a.ID, &a.Update)
	if err != nil {
		return err
	}

	a.Updated = row
	return nil
}
