package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/clearspend/expense-server/internal/storage"
	"github.com/clearspend/expense-server/internal/storage/user"
	"github.com/clearspend/expense-server/internal/validate"
)

// mockUserTable is a mock for user.IUserTable.
type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserTable) Insert(ctx context.Context, create *user.UserCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// mockSessionTable is a mock for user.ISessionTable.
type mockSessionTable struct {
	mock.Mock
}

func (m *mockSessionTable) Find(ctx context.Context, token string) (*user.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Session), args.Error(1)
}

func (m *mockSessionTable) Insert(ctx context.Context, session *user.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionTable) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newTestAuthService(t *testing.T) (*AuthService, *mockUserTable, *mockSessionTable) {
	t.Helper()
	users := new(mockUserTable)
	sessions := new(mockSessionTable)
	store := &storage.Storage{Users: users, Sessions: sessions}
	svc := NewAuthService(store, time.Hour)
	return svc, users, sessions
}

// -- SignUp tests --

func TestSignUp_Success(t *testing.T) {
	svc, users, sessions := newTestAuthService(t)
	userID := uuid.Must(uuid.NewV4())

	users.On("FindByEmail", mock.Anything, "new@example.com").
		Return(nil, sql.ErrNoRows)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(c *user.UserCreate) bool {
		hashErr := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("secret1"))
		return c.Email == "new@example.com" && hashErr == nil
	})).Return(userID, nil)
	sessions.On("Insert", mock.Anything, mock.MatchedBy(func(s *user.Session) bool {
		return s.UserID == userID && s.Token != "" && s.ExpiresAt.After(time.Now())
	})).Return(nil)

	token, err := svc.SignUp(context.Background(), " New@Example.com ", "secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token, "signup signs the user straight in")
	users.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&user.User{ID: uuid.Must(uuid.NewV4()), Email: "taken@example.com"}, nil)

	_, err := svc.SignUp(context.Background(), "taken@example.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestSignUp_InvalidInput(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.SignUp(context.Background(), "not-an-email", "short")

	var fieldErrs validate.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "password")
}

// -- SignIn tests --

func TestSignIn_Success(t *testing.T) {
	svc, users, sessions := newTestAuthService(t)
	userID := uuid.Must(uuid.NewV4())
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	assert.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&user.User{ID: userID, Email: "user@example.com", PasswordHash: string(hash)}, nil)
	sessions.On("Insert", mock.Anything, mock.Anything).Return(nil)

	token, err := svc.SignIn(context.Background(), "user@example.com", "secret1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignIn_WrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)

	users.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&user.User{ID: uuid.Must(uuid.NewV4()), PasswordHash: string(hash)}, nil)

	_, err := svc.SignIn(context.Background(), "user@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	svc, users, _ := newTestAuthService(t)

	users.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, sql.ErrNoRows)

	_, err := svc.SignIn(context.Background(), "ghost@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email is indistinguishable from wrong password")
}

// -- Identify tests --

func TestIdentify_ValidToken(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)
	userID := uuid.Must(uuid.NewV4())

	sessions.On("Find", mock.Anything, "tok-123").
		Return(&user.Session{Token: "tok-123", UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)

	assert.Equal(t, userID, svc.Identify(context.Background(), "Bearer tok-123"))
}

func TestIdentify_ExpiredToken(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)

	sessions.On("Find", mock.Anything, "tok-123").
		Return(&user.Session{Token: "tok-123", UserID: uuid.Must(uuid.NewV4()), ExpiresAt: time.Now().Add(-time.Minute)}, nil)

	assert.Equal(t, uuid.Nil, svc.Identify(context.Background(), "Bearer tok-123"))
}

func TestIdentify_FailSoft(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)

	// Missing or blank headers never reach storage.
	assert.Equal(t, uuid.Nil, svc.Identify(context.Background(), ""))
	assert.Equal(t, uuid.Nil, svc.Identify(context.Background(), "Bearer "))

	sessions.On("Find", mock.Anything, "unknown").
		Return(nil, errors.New("no rows"))
	assert.Equal(t, uuid.Nil, svc.Identify(context.Background(), "Bearer unknown"))
}

// -- SignOut tests --

func TestSignOut(t *testing.T) {
	svc, _, sessions := newTestAuthService(t)

	sessions.On("Delete", mock.Anything, "tok-123").Return(nil)
	assert.NoError(t, svc.SignOut(context.Background(), "tok-123"))

	// Empty token is a no-op.
	assert.NoError(t, svc.SignOut(context.Background(), ""))
	sessions.AssertExpectations(t)
}
