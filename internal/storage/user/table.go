package user

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*Table)(nil)

// Table implements user storage over a live executor. Auth operations do
// not go through the mutation queue, so the table writes directly.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

// FindByEmail retrieves a user by email. Returns sql.ErrNoRows when absent.
func (t *Table) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := psql.Select(
		sm.Columns("id", "email", "password_hash", "created_at"),
		sm.From("users"),
		sm.Where(psql.Quote("email").EQ(psql.Arg(email))),
	)

	return bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
}

// Insert creates a new user and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into("users", "email", "password_hash"),
		im.Values(psql.Arg(create.Email, create.PasswordHash)),
		im.Returning("id", "email", "password_hash", "created_at"),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*User]())
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}
