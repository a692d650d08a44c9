package expense

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Expense represents an expense record as stored. Category is the raw text
// identifier; the service layer converts it to the closed enum.
type Expense struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for creating a new expense. ID and CreatedAt
// are assigned by the database.
type ExpenseCreate struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// ExpenseUpdate is a partial update: only set fields are written.
type ExpenseUpdate struct {
	Amount      omit.Val[decimal.Decimal]
	Category    omit.Val[string]
	Date        omit.Val[time.Time]
	Description omit.Val[string]
}

// IsEmpty reports whether no field is set.
func (u *ExpenseUpdate) IsEmpty() bool {
	return !u.Amount.IsSet() && !u.Category.IsSet() && !u.Date.IsSet() && !u.Description.IsSet()
}

// IExpenseTable defines the read-side interface for expense storage.
// This abstraction allows swapping the implementation without changing callers.
type IExpenseTable interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Expense, error)
	FindByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Expense, error)
}
