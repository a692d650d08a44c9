package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. PasswordHash is a bcrypt hash and never
// leaves the storage and auth layers.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Session represents an opaque bearer session.
type Session struct {
	Token     string    `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Email        string
	PasswordHash string
}

// IUserTable defines the interface for user storage operations.
type IUserTable interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
}

// ISessionTable defines the interface for session storage operations.
type ISessionTable interface {
	Find(ctx context.Context, token string) (*Session, error)
	Insert(ctx context.Context, session *Session) error
	Delete(ctx context.Context, token string) error
}
