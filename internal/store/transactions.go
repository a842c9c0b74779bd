package store

import (
	"fmt"
	"time"

	"github.com/creditbook-dev/creditbook/internal/id"
	"github.com/creditbook-dev/creditbook/internal/model"
)

// AddTransaction appends a ledger transaction and applies its signed delta to
// the owning customer's balance in the same mutation.
func (s *Store) AddTransaction(t model.Transaction) (model.Transaction, error) {
	if !t.Type.Valid() {
		return model.Transaction{}, ValidationError{Field: "type", Description: "must be debt or payment"}
	}
	if !t.Amount.IsPositive() {
		return model.Transaction{}, ValidationError{Field: "amount", Description: "must be positive"}
	}

	s.mu.Lock()
	ci := s.customerIndex(t.CustomerID)
	if ci < 0 {
		s.mu.Unlock()
		return model.Transaction{}, fmt.Errorf("customer %s: %w", t.CustomerID, ErrNotFound)
	}
	if t.ID == "" {
		t.ID = nextTransactionID(s.data.Transactions)
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	s.data.Transactions = append(s.data.Transactions, t)
	s.data.Customers[ci].Balance = s.data.Customers[ci].Balance.Add(txnDelta(nil, &t))

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return t, err
	}
	s.notify()
	return t, nil
}

// UpdateTransaction replaces a transaction by id, adjusting balances for both
// the old and new owning customers when the transaction moved.
func (s *Store) UpdateTransaction(t model.Transaction) error {
	if !t.Type.Valid() {
		return ValidationError{Field: "type", Description: "must be debt or payment"}
	}
	if !t.Amount.IsPositive() {
		return ValidationError{Field: "amount", Description: "must be positive"}
	}

	s.mu.Lock()
	ti := s.transactionIndex(t.ID)
	if ti < 0 {
		s.mu.Unlock()
		return fmt.Errorf("transaction %s: %w", t.ID, ErrNotFound)
	}
	old := s.data.Transactions[ti]

	newOwner := s.customerIndex(t.CustomerID)
	if newOwner < 0 {
		s.mu.Unlock()
		return fmt.Errorf("customer %s: %w", t.CustomerID, ErrNotFound)
	}

	if old.CustomerID == t.CustomerID {
		s.data.Customers[newOwner].Balance = s.data.Customers[newOwner].Balance.Add(txnDelta(&old, &t))
	} else {
		// Moved between customers: reverse on the old owner, apply on the new.
		if oldOwner := s.customerIndex(old.CustomerID); oldOwner >= 0 {
			s.data.Customers[oldOwner].Balance = s.data.Customers[oldOwner].Balance.Add(txnDelta(&old, nil))
		}
		s.data.Customers[newOwner].Balance = s.data.Customers[newOwner].Balance.Add(txnDelta(nil, &t))
	}
	s.data.Transactions[ti] = t

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteTransaction removes a transaction, reversing its effect on the
// owning customer's balance.
func (s *Store) DeleteTransaction(txnID string) error {
	s.mu.Lock()
	ti := s.transactionIndex(txnID)
	if ti < 0 {
		s.mu.Unlock()
		return fmt.Errorf("transaction %s: %w", txnID, ErrNotFound)
	}
	old := s.data.Transactions[ti]

	if ci := s.customerIndex(old.CustomerID); ci >= 0 {
		s.data.Customers[ci].Balance = s.data.Customers[ci].Balance.Add(txnDelta(&old, nil))
	}
	s.data.Transactions = append(s.data.Transactions[:ti], s.data.Transactions[ti+1:]...)

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// TransactionsForCustomer returns the customer's transactions in store order.
func (s *Store) TransactionsForCustomer(customerID string) []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Transaction
	for _, t := range s.data.Transactions {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}

// transactionIndex returns the slice index of txnID, or -1. Caller holds s.mu.
func (s *Store) transactionIndex(txnID string) int {
	for i, t := range s.data.Transactions {
		if t.ID == txnID {
			return i
		}
	}
	return -1
}

func nextTransactionID(txns []model.Transaction) string {
	return id.NewAllocator(transactionIDs(txns)).Next()
}

func transactionIDs(txns []model.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}
