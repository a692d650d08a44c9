package expense

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var expenseColumns = []any{"id", "user_id", "amount", "category", "date", "description", "created_at"}

var _ IExpenseTable = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListByUser returns every expense owned by the user, newest date first
// with ties broken by creation time so the fetch order is deterministic.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Expense, error) {
	query := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
	)

	return bob.All(ctx, r.exec, query, scan.StructMapper[*Expense]())
}

// FindByID retrieves one expense scoped to its owner. Returns
// sql.ErrNoRows when absent or owned by someone else.
func (r *Reader) FindByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*Expense, error) {
	query := psql.Select(
		sm.Columns(expenseColumns...),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	return bob.One(ctx, r.exec, query, scan.StructMapper[*Expense]())
}
