package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/clearspend/expense-server/internal/storage"
	"github.com/clearspend/expense-server/internal/storage/user"
	"github.com/clearspend/expense-server/internal/validate"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("an account with this email already exists")
)

// AuthService handles sign-up, sign-in, and session resolution.
type AuthService struct {
	storage    *storage.Storage
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		storage:    store,
		sessionTTL: sessionTTL,
	}
}

// SignUp creates a user and signs them straight in, returning the session
// token.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (string, error) {
	if errs := validate.Credentials(email, password); !errs.Valid() {
		return "", errs
	}
	email = normalizeEmail(email)

	_, err := s.storage.Users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id, err := s.storage.Users.Insert(ctx, &user.UserCreate{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", err
	}

	return s.createSession(ctx, id)
}

// SignIn verifies credentials and returns a fresh session token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	if errs := validate.Credentials(email, password); !errs.Valid() {
		return "", errs
	}

	row, err := s.storage.Users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.createSession(ctx, row.ID)
}

// SignOut invalidates a session token. Unknown tokens are not an error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.storage.Sessions.Delete(ctx, token)
}

// Identify resolves an Authorization header to a user ID. It is fail-soft:
// a missing, malformed, unknown, or expired token yields uuid.Nil, and the
// caller treats the operation as an unauthenticated no-op.
func (s *AuthService) Identify(ctx context.Context, authorization string) uuid.UUID {
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(authorization), "Bearer"))
	if token == "" {
		return uuid.Nil
	}

	session, err := s.storage.Sessions.Find(ctx, token)
	if err != nil {
		return uuid.Nil
	}
	if time.Now().After(session.ExpiresAt) {
		return uuid.Nil
	}
	return session.UserID
}

func (s *AuthService) createSession(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.Must(uuid.NewV4()).String()
	err := s.storage.Sessions.Insert(ctx, &user.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
