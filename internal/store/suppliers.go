package store

import (
	"fmt"
	"time"

	"github.com/creditbook-dev/creditbook/internal/id"
	"github.com/creditbook-dev/creditbook/internal/model"
)

// AddSupplier appends a supplier account.
func (s *Store) AddSupplier(sp model.Supplier) (model.Supplier, error) {
	if sp.Name == "" {
		return model.Supplier{}, ValidationError{Field: "name", Description: "required"}
	}

	s.mu.Lock()
	if sp.ID == "" {
		sp.ID = id.NewAllocator(supplierIDs(s.data.Suppliers)).Next()
	} else if s.supplierIndex(sp.ID) >= 0 {
		s.mu.Unlock()
		return model.Supplier{}, fmt.Errorf("supplier %s: %w", sp.ID, ErrDuplicateID)
	}
	s.data.Suppliers = append(s.data.Suppliers, sp)
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return sp, err
	}
	s.notify()
	return sp, nil
}

// UpdateSupplier replaces a supplier's editable fields, preserving the stored
// balance the same way customer edits do.
func (s *Store) UpdateSupplier(sp model.Supplier) error {
	if sp.Name == "" {
		return ValidationError{Field: "name", Description: "required"}
	}

	s.mu.Lock()
	i := s.supplierIndex(sp.ID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("supplier %s: %w", sp.ID, ErrNotFound)
	}
	sp.Balance = s.data.Suppliers[i].Balance
	s.data.Suppliers[i] = sp
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteSupplier removes a supplier and cascade-deletes its transactions.
func (s *Store) DeleteSupplier(supplierID string) error {
	s.mu.Lock()
	i := s.supplierIndex(supplierID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("supplier %s: %w", supplierID, ErrNotFound)
	}
	s.data.Suppliers = append(s.data.Suppliers[:i], s.data.Suppliers[i+1:]...)

	kept := s.data.SupplierTransactions[:0]
	for _, t := range s.data.SupplierTransactions {
		if t.SupplierID != supplierID {
			kept = append(kept, t)
		}
	}
	s.data.SupplierTransactions = kept

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// AddSupplierTransaction appends a purchase or payment event, applying its
// signed delta to the supplier's balance.
func (s *Store) AddSupplierTransaction(t model.SupplierTransaction) (model.SupplierTransaction, error) {
	if !t.Type.Valid() {
		return model.SupplierTransaction{}, ValidationError{Field: "type", Description: "must be purchase or payment"}
	}
	if !t.Amount.IsPositive() {
		return model.SupplierTransaction{}, ValidationError{Field: "amount", Description: "must be positive"}
	}

	s.mu.Lock()
	si := s.supplierIndex(t.SupplierID)
	if si < 0 {
		s.mu.Unlock()
		return model.SupplierTransaction{}, fmt.Errorf("supplier %s: %w", t.SupplierID, ErrNotFound)
	}
	if t.ID == "" {
		t.ID = nextSupplierTransactionID(s.data.SupplierTransactions)
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}

	s.data.SupplierTransactions = append(s.data.SupplierTransactions, t)
	s.data.Suppliers[si].Balance = s.data.Suppliers[si].Balance.Add(supplierTxnDelta(nil, &t))

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return t, err
	}
	s.notify()
	return t, nil
}

// UpdateSupplierTransaction replaces a supplier transaction by id, adjusting
// balances for both owners when the transaction moved.
func (s *Store) UpdateSupplierTransaction(t model.SupplierTransaction) error {
	if !t.Type.Valid() {
		return ValidationError{Field: "type", Description: "must be purchase or payment"}
	}
	if !t.Amount.IsPositive() {
		return ValidationError{Field: "amount", Description: "must be positive"}
	}

	s.mu.Lock()
	ti := s.supplierTransactionIndex(t.ID)
	if ti < 0 {
		s.mu.Unlock()
		return fmt.Errorf("supplier transaction %s: %w", t.ID, ErrNotFound)
	}
	old := s.data.SupplierTransactions[ti]

	newOwner := s.supplierIndex(t.SupplierID)
	if newOwner < 0 {
		s.mu.Unlock()
		return fmt.Errorf("supplier %s: %w", t.SupplierID, ErrNotFound)
	}

	if old.SupplierID == t.SupplierID {
		s.data.Suppliers[newOwner].Balance = s.data.Suppliers[newOwner].Balance.Add(supplierTxnDelta(&old, &t))
	} else {
		if oldOwner := s.supplierIndex(old.SupplierID); oldOwner >= 0 {
			s.data.Suppliers[oldOwner].Balance = s.data.Suppliers[oldOwner].Balance.Add(supplierTxnDelta(&old, nil))
		}
		s.data.Suppliers[newOwner].Balance = s.data.Suppliers[newOwner].Balance.Add(supplierTxnDelta(nil, &t))
	}
	s.data.SupplierTransactions[ti] = t

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// DeleteSupplierTransaction removes a supplier transaction, reversing its
// balance effect.
func (s *Store) DeleteSupplierTransaction(txnID string) error {
	s.mu.Lock()
	ti := s.supplierTransactionIndex(txnID)
	if ti < 0 {
		s.mu.Unlock()
		return fmt.Errorf("supplier transaction %s: %w", txnID, ErrNotFound)
	}
	old := s.data.SupplierTransactions[ti]

	if si := s.supplierIndex(old.SupplierID); si >= 0 {
		s.data.Suppliers[si].Balance = s.data.Suppliers[si].Balance.Add(supplierTxnDelta(&old, nil))
	}
	s.data.SupplierTransactions = append(s.data.SupplierTransactions[:ti], s.data.SupplierTransactions[ti+1:]...)

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// supplierIndex returns the slice index of supplierID, or -1. Caller holds s.mu.
func (s *Store) supplierIndex(supplierID string) int {
	for i, sp := range s.data.Suppliers {
		if sp.ID == supplierID {
			return i
		}
	}
	return -1
}

func (s *Store) supplierTransactionIndex(txnID string) int {
	for i, t := range s.data.SupplierTransactions {
		if t.ID == txnID {
			return i
		}
	}
	return -1
}

func supplierIDs(suppliers []model.Supplier) []string {
	out := make([]string, len(suppliers))
	for i, sp := range suppliers {
		out[i] = sp.ID
	}
	return out
}

func nextSupplierTransactionID(txns []model.SupplierTransaction) string {
	return id.NewAllocator(supplierTransactionIDs(txns)).Next()
}

func supplierTransactionIDs(txns []model.SupplierTransaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}
