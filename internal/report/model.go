package report

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/clearspend/expense-server/internal/category"
)

// Expense is a single recorded spending event as seen by the reporting
// engine. Date carries calendar-date semantics: only year, month, and day
// are meaningful, and comparisons never involve time zones. CreatedAt is
// record-keeping only and never participates in aggregation.
type Expense struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Category    category.Category
	Date        time.Time
	Description string
	CreatedAt   time.Time
}
