package store

import (
	"fmt"
	"time"

	"github.com/creditbook-dev/creditbook/internal/id"
	"github.com/creditbook-dev/creditbook/internal/model"
)

// AddCustomer appends a customer, assigning a fresh id when none is given.
// The entity is returned with its assigned id even when the save fails; the
// in-memory state is authoritative and never rolled back.
func (s *Store) AddCustomer(c model.Customer) (model.Customer, error) {
	if c.Name == "" {
		return model.Customer{}, ValidationError{Field: "name", Description: "required"}
	}

	s.mu.Lock()
	if c.ID == "" {
		c.ID = id.NewAllocator(customerIDs(s.data.Customers)).Next()
	} else if s.customerIndex(c.ID) >= 0 {
		s.mu.Unlock()
		return model.Customer{}, fmt.Errorf("customer %s: %w", c.ID, ErrDuplicateID)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Email == "" {
		c.Email = "N/A"
	}
	s.data.Customers = append(s.data.Customers, c)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return c, err
	}
	s.notify()
	return c, nil
}

// UpdateCustomer replaces a customer's editable fields. The stored balance is
// preserved: balances change only through transaction mutations, imports, and
// sales, never through profile edits.
func (s *Store) UpdateCustomer(c model.Customer) error {
	if c.Name == "" {
		return ValidationError{Field: "name", Description: "required"}
	}

	s.mu.Lock()
	i := s.customerIndex(c.ID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("customer %s: %w", c.ID, ErrNotFound)
	}
	c.Balance = s.data.Customers[i].Balance
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.data.Customers[i].CreatedAt
	}
	s.data.Customers[i] = c
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteCustomer removes a customer and cascade-deletes every transaction it
// owns. The customer is the lifetime anchor of its ledger; orphaned
// transactions are never left behind.
func (s *Store) DeleteCustomer(customerID string) error {
	s.mu.Lock()
	i := s.customerIndex(customerID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
	}
	s.data.Customers = append(s.data.Customers[:i], s.data.Customers[i+1:]...)

	kept := s.data.Transactions[:0]
	for _, t := range s.data.Transactions {
		if t.CustomerID != customerID {
			kept = append(kept, t)
		}
	}
	s.data.Transactions = kept

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// CustomerByID returns a customer by id.
func (s *Store) CustomerByID(customerID string) (model.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.customerIndex(customerID); i >= 0 {
		return s.data.Customers[i], true
	}
	return model.Customer{}, false
}

// customerIndex returns the slice index of customerID, or -1. Caller holds s.mu.
func (s *Store) customerIndex(customerID string) int {
	for i, c := range s.data.Customers {
		if c.ID == customerID {
			return i
		}
	}
	return -1
}

func customerIDs(customers []model.Customer) []string {
	out := make([]string, len(customers))
	for i, c := range customers {
		out[i] = c.ID
	}
	return out
}
