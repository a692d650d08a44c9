package expense

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clearspend/expense-server/internal/report"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Expense is the API response model for an expense.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID          string `json:"id" doc:"Expense UUID"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Category    string `json:"category" doc:"Category identifier"`
	Date        string `json:"date" doc:"Calendar date of the expense (YYYY-MM-DD)"`
	Description string `json:"description,omitempty" doc:"Free-text description"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func expenseToAPI(e report.Expense) Expense {
	return Expense{
		ID:          e.ID.String(),
		Amount:      e.Amount.String(),
		Category:    e.Category.String(),
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func expensesToAPI(expenses []report.Expense) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, expenseToAPI(e))
	}
	return out
}

// identityResolver resolves an Authorization header to a user ID.
// A missing or invalid session yields uuid.Nil, never an error.
type identityResolver interface {
	Identify(ctx context.Context, authorization string) uuid.UUID
}
