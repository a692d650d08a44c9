package service

import (
	"context"
	"time"

	"github.com/clearspend/expense-server/internal/operator/actions"
	"github.com/clearspend/expense-server/internal/snapshot"
	"github.com/clearspend/expense-server/internal/storage"
)

// ActionProcessor runs a mutation through the operator queue.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Expense *ExpenseService
	Auth    *AuthService
}

// NewService creates a new Service with the given storage and collaborators.
func NewService(store *storage.Storage, processor ActionProcessor, snapshots *snapshot.Store, sessionTTL time.Duration) *Service {
	return &Service{
		Expense: NewExpenseService(store, processor, snapshots),
		Auth:    NewAuthService(store, sessionTTL),
	}
}
