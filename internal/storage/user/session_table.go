package user

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ISessionTable = (*SessionTable)(nil)

type SessionTable struct {
	exec bob.Executor
}

func NewSessionTable(exec bob.Executor) *SessionTable {
	return &SessionTable{exec: exec}
}

// Find retrieves a session by token. Returns sql.ErrNoRows when absent;
// expiry is the caller's concern.
func (t *SessionTable) Find(ctx context.Context, token string) (*Session, error) {
	query := psql.Select(
		sm.Columns("token", "user_id", "expires_at"),
		sm.From("sessions"),
		sm.Where(psql.Quote("token").EQ(psql.Arg(token))),
	)

	return bob.One(ctx, t.exec, query, scan.StructMapper[*Session]())
}

func (t *SessionTable) Insert(ctx context.Context, session *Session) error {
	query := psql.Insert(
		im.Into("sessions", "token", "user_id", "expires_at"),
		im.Values(psql.Arg(session.Token, session.UserID, session.ExpiresAt)),
	)

	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

func (t *SessionTable) Delete(ctx context.Context, token string) error {
	query := psql.Delete(
		dm.From("sessions"),
		dm.Where(psql.Quote("token").EQ(psql.Arg(token))),
	)

	_, err := bob.Exec(ctx, t.exec, query)
	return err
}
