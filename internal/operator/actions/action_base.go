package actions

import (
	"context"

	"github.com/clearspend/expense-server/internal/storage"
)

// IAction is one mutation performed inside a single storage transaction.
// Actions that produce a row expose it on the action struct after Perform
// succeeds; the processor runs each action on one worker, so the fields
// are safe to read once Process returns.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
