// Package snapshot keeps an explicit, versioned in-memory copy of each
// user's expense records, loosely consistent with the database. The
// reporting engine takes its input from here; mutations are applied
// optimistically only after the database confirms them, and a failed
// mutation leaves the snapshot untouched.
package snapshot

import (
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/clearspend/expense-server/internal/report"
)

// Store holds one snapshot per user. All methods are safe for concurrent
// use; returned slices are copies and never share backing arrays with the
// stored state.
type Store struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
}

type entry struct {
	version  uint64
	expenses []report.Expense
}

func New() *Store {
	return &Store{entries: make(map[uuid.UUID]*entry)}
}

// Get returns the user's snapshot and its version. ok is false when no
// snapshot has been set since startup or the last Invalidate.
func (s *Store) Get(userID uuid.UUID) (expenses []report.Expense, version uint64, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[userID]
	if !ok {
		return nil, 0, false
	}
	return copyExpenses(e.expenses), e.version, true
}

// Set replaces the user's snapshot with a fresh record set, typically after
// a database fetch, and returns the new version.
func (s *Store) Set(userID uuid.UUID, expenses []report.Expense) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &entry{}
		s.entries[userID] = e
	}
	e.version++
	e.expenses = copyExpenses(expenses)
	return e.version
}

// Invalidate drops the user's snapshot so the next read refetches.
func (s *Store) Invalidate(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// Insert prepends a confirmed new record, matching fetch order where the
// newest record comes first. No-op when the user has no snapshot.
func (s *Store) Insert(userID uuid.UUID, expense report.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return
	}
	updated := make([]report.Expense, 0, len(e.expenses)+1)
	updated = append(updated, expense)
	updated = append(updated, e.expenses...)
	e.version++
	e.expenses = updated
}

// Update replaces the record with the same ID in place, keeping snapshot
// order. No-op when the record or snapshot is absent.
func (s *Store) Update(userID uuid.UUID, expense report.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return
	}
	for i := range e.expenses {
		if e.expenses[i].ID == expense.ID {
			updated := copyExpenses(e.expenses)
			updated[i] = expense
			e.version++
			e.expenses = updated
			return
		}
	}
}

// Remove drops the record with the given ID. No-op when absent.
func (s *Store) Remove(userID uuid.UUID, expenseID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return
	}
	for i := range e.expenses {
		if e.expenses[i].ID == expenseID {
			updated := make([]report.Expense, 0, len(e.expenses)-1)
			updated = append(updated, e.expenses[:i]...)
			updated = append(updated, e.expenses[i+1:]...)
			e.version++
			e.expenses = updated
			return
		}
	}
}

func copyExpenses(expenses []report.Expense) []report.Expense {
	copied := make([]report.Expense, len(expenses))
	copy(copied, expenses)
	return copied
}
