package store

import (
	"fmt"
	"time"

	"github.com/creditbook-dev/creditbook/internal/id"
	"github.com/creditbook-dev/creditbook/internal/model"
)

// AddExpense appends an expense record.
func (s *Store) AddExpense(e model.Expense) (model.Expense, error) {
	if e.Description == "" {
		return model.Expense{}, ValidationError{Field: "description", Description: "required"}
	}
	if !e.Amount.IsPositive() {
		return model.Expense{}, ValidationError{Field: "amount", Description: "must be positive"}
	}

	s.mu.Lock()
	if e.ID == "" {
		e.ID = id.NewAllocator(expenseIDs(s.data.Expenses)).Next()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}
	s.data.Expenses = append(s.data.Expenses, e)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return e, err
	}
	s.notify()
	return e, nil
}

// UpdateExpense replaces an expense by id.
func (s *Store) UpdateExpense(e model.Expense) error {
	if !e.Amount.IsPositive() {
		return ValidationError{Field: "amount", Description: "must be positive"}
	}

	s.mu.Lock()
	i := s.expenseIndex(e.ID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("expense %s: %w", e.ID, ErrNotFound)
	}
	s.data.Expenses[i] = e
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteExpense removes an expense.
func (s *Store) DeleteExpense(expenseID string) error {
	s.mu.Lock()
	i := s.expenseIndex(expenseID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("expense %s: %w", expenseID, ErrNotFound)
	}
	s.data.Expenses = append(s.data.Expenses[:i], s.data.Expenses[i+1:]...)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// UpdateSettings replaces the app settings singleton.
func (s *Store) UpdateSettings(settings model.AppSettings) error {
	if !settings.BreadUnitPrice.IsPositive() {
		return ValidationError{Field: "breadUnitPrice", Description: "must be positive"}
	}

	s.mu.Lock()
	s.data.Settings = settings
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

func (s *Store) expenseIndex(expenseID string) int {
	for i, e := range s.data.Expenses {
		if e.ID == expenseID {
			return i
		}
	}
	return -1
}

func expenseIDs(expenses []model.Expense) []string {
	out := make([]string, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}
