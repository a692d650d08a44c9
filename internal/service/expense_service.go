package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/clearspend/expense-server/internal/operator/actions"
	"github.com/clearspend/expense-server/internal/report"
	"github.com/clearspend/expense-server/internal/snapshot"
	"github.com/clearspend/expense-server/internal/storage"
	"github.com/clearspend/expense-server/internal/storage/expense"
	"github.com/clearspend/expense-server/internal/validate"
)

// ExpenseService owns the expense record set for each user: reads go
// through the in-memory snapshot, mutations go through the operator queue
// and are applied to the snapshot only after the database confirms them.
//
// Every method is fail-soft on identity: a nil userID makes the operation
// a no-op with an empty result, never an error.
type ExpenseService struct {
	storage   *storage.Storage
	processor ActionProcessor
	snapshots *snapshot.Store
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store *storage.Storage, processor ActionProcessor, snapshots *snapshot.Store) *ExpenseService {
	return &ExpenseService{
		storage:   store,
		processor: processor,
		snapshots: snapshots,
	}
}

// Fetch loads the user's records from storage and replaces the snapshot.
func (s *ExpenseService) Fetch(ctx context.Context, userID uuid.UUID) ([]report.Expense, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	rows, err := s.storage.Expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	expenses := make([]report.Expense, len(rows))
	for i, row := range rows {
		expenses[i] = expenseFromStorage(row)
	}
	s.snapshots.Set(userID, expenses)
	return expenses, nil
}

// Expenses returns the user's record set, serving from the snapshot when
// one exists and fetching otherwise.
func (s *ExpenseService) Expenses(ctx context.Context, userID uuid.UUID) ([]report.Expense, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	if cached, _, ok := s.snapshots.Get(userID); ok {
		return cached, nil
	}
	return s.Fetch(ctx, userID)
}

// Add validates and creates an expense, then applies it optimistically to
// the snapshot. On failure the snapshot is untouched.
func (s *ExpenseService) Add(ctx context.Context, userID uuid.UUID, input ExpenseInput) (*report.Expense, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	if errs := validate.Expense(input.Amount, input.Date, input.Description); !errs.Valid() {
		return nil, errs
	}

	action := &actions.CreateExpense{
		UserID:      userID,
		Amount:      input.Amount,
		Category:    input.Category.String(),
		Date:        input.Date,
		Description: validate.TrimDescription(input.Description),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := expenseFromStorage(action.Created)
	s.snapshots.Insert(userID, created)
	return &created, nil
}

// Update applies a partial edit to the user's expense and mirrors the
// confirmed row into the snapshot. An empty patch changes nothing and
// returns the current record.
func (s *ExpenseService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, patch ExpensePatch) (*report.Expense, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	if errs := validatePatch(&patch); !errs.Valid() {
		return nil, errs
	}

	if patch.IsEmpty() {
		row, err := s.storage.Expenses.FindByID(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		current := expenseFromStorage(row)
		return &current, nil
	}

	update := expense.ExpenseUpdate{
		Amount: patch.Amount,
		Date:   patch.Date,
	}
	if c, ok := patch.Category.Get(); ok {
		update.Category.Set(c.String())
	}
	if description, ok := patch.Description.Get(); ok {
		update.Description.Set(validate.TrimDescription(description))
	}

	action := &actions.UpdateExpense{
		UserID: userID,
		ID:     id,
		Update: update,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	updated := expenseFromStorage(action.Updated)
	s.snapshots.Update(userID, updated)
	return &updated, nil
}

// Delete removes the user's expense and drops it from the snapshot.
func (s *ExpenseService) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return nil
	}

	action := &actions.DeleteExpense{
		UserID: userID,
		ID:     id,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return err
	}

	s.snapshots.Remove(userID, id)
	return nil
}

// MonthlyReport derives the full monthly view for the reference date. With
// no identity it reports over an empty record set.
func (s *ExpenseService) MonthlyReport(ctx context.Context, userID uuid.UUID, ref time.Time) (report.Monthly, error) {
	expenses, err := s.Expenses(ctx, userID)
	if err != nil {
		return report.Monthly{}, err
	}
	return report.BuildMonthly(expenses, ref), nil
}

// validatePatch checks only the fields a partial edit sets.
func validatePatch(patch *ExpensePatch) validate.FieldErrors {
	errs := validate.FieldErrors{}
	if amount, ok := patch.Amount.Get(); ok && !amount.IsPositive() {
		errs["amount"] = "Please enter a valid amount"
	}
	if date, ok := patch.Date.Get(); ok && date.IsZero() {
		errs["date"] = "Please select a date"
	}
	if description, ok := patch.Description.Get(); ok {
		if len(validate.TrimDescription(description)) > validate.MaxDescriptionLength {
			errs["description"] = "Description must be less than 200 characters"
		}
	}
	return errs
}
