package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/clearspend/expense-server/internal/storage"
)

type DeleteExpense struct {
	UserID uuid.UUID
	ID     uuid.UUID

	IAction
}

func (a *DeleteExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Expense.Delete(ctx, a.UserID, a.ID)
}
