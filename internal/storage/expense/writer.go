package expense

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a new expense and returns the stored row, including the
// database-assigned ID and creation timestamp.
func (w *Writer) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	query := psql.Insert(
		im.Into("expenses", "user_id", "amount", "category", "date", "description"),
		im.Values(psql.Arg(create.UserID, create.Amount, create.Category, create.Date, create.Description)),
		im.Returning(expenseColumns...),
	)

	return bob.One(ctx, w.tx, query, scan.StructMapper[*Expense]())
}

// Update applies the set fields of a partial update to the user's expense
// and returns the stored row after the change. Returns sql.ErrNoRows when
// the expense does not exist or is owned by someone else.
func (w *Writer) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, update *ExpenseUpdate) (*Expense, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("expenses"),
	}
	if amount, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(amount))
	}
	if category, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(category))
	}
	if date, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(date))
	}
	if description, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(description))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(expenseColumns...),
	)

	return bob.One(ctx, w.tx, psql.Update(queryMods...), scan.StructMapper[*Expense]())
}

// Delete removes the user's expense. Returns sql.ErrNoRows when nothing
// was deleted.
func (w *Writer) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	result, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
