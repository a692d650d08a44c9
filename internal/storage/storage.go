package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/clearspend/expense-server/internal/config"
	"github.com/clearspend/expense-server/internal/storage/expense"
	"github.com/clearspend/expense-server/internal/storage/user"
)

// Storage is the root of the persistence layer: a database handle plus the
// per-entity tables for direct (non-transactional) access. Transactional
// writes go through Write.
type Storage struct {
	DB       *sql.DB
	Expenses expense.IExpenseTable
	Users    user.IUserTable
	Sessions user.ISessionTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:       db,
		Expenses: expense.NewReader(bobDB),
		Users:    user.NewTable(bobDB),
		Sessions: user.NewSessionTable(bobDB),
		bobDB:    bobDB,
	}
}

// Write begins a transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
