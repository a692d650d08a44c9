package expense

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
	"github.com/clearspend/expense-server/internal/report"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// stubIdentity resolves every request to a fixed user ID. The zero value
// behaves like an unauthenticated request.
type stubIdentity struct {
	userID uuid.UUID
}

func (s *stubIdentity) Identify(ctx context.Context, authorization string) uuid.UUID {
	return s.userID
}

func testReportExpense(amount string, cat category.Category, date time.Time) report.Expense {
	return report.Expense{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      decimal.RequireFromString(amount),
		Category:    cat,
		Date:        date,
		Description: "test expense",
		CreatedAt:   date,
	}
}
