package store

import (
	"fmt"
	"time"

	"github.com/creditbook-dev/creditbook/internal/model"
)

// Import admission is all-or-nothing: every row is checked against existing
// data and against the rest of the batch before anything is appended. A
// single bad row rejects the whole batch with the store untouched.

// ImportCustomers admits a mapped customer batch. Rows carrying a nonzero
// balance get a synthetic opening-balance transaction so the ledger invariant
// holds for imported accounts too.
func (s *Store) ImportCustomers(batch []model.Customer) error {
	s.mu.Lock()

	seen := make(map[string]bool, len(batch))
	for _, c := range batch {
		if c.Name == "" {
			s.mu.Unlock()
			return ValidationError{Field: "name", Description: "required"}
		}
		if c.ID == "" {
			s.mu.Unlock()
			return ValidationError{Field: "id", Description: "required"}
		}
		if seen[c.ID] || s.customerIndex(c.ID) >= 0 {
			s.mu.Unlock()
			return fmt.Errorf("customer %s: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true
	}

	now := time.Now()
	for _, c := range batch {
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.Email == "" {
			c.Email = "N/A"
		}
		s.data.Customers = append(s.data.Customers, c)

		if !c.Balance.IsZero() {
			txn := model.Transaction{
				ID:          nextTransactionID(s.data.Transactions),
				CustomerID:  c.ID,
				Type:        model.TxnDebt,
				Amount:      c.Balance,
				Date:        now,
				Description: "Opening balance (import)",
			}
			if c.Balance.IsNegative() {
				txn.Type = model.TxnPayment
				txn.Amount = c.Balance.Neg()
			}
			s.data.Transactions = append(s.data.Transactions, txn)
		}
	}

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// ImportSuppliers admits a mapped supplier batch, with the same
// opening-balance treatment as customers.
func (s *Store) ImportSuppliers(batch []model.Supplier) error {
	s.mu.Lock()

	seen := make(map[string]bool, len(batch))
	for _, sp := range batch {
		if sp.Name == "" {
			s.mu.Unlock()
			return ValidationError{Field: "name", Description: "required"}
		}
		if sp.ID == "" {
			s.mu.Unlock()
			return ValidationError{Field: "id", Description: "required"}
		}
		if seen[sp.ID] || s.supplierIndex(sp.ID) >= 0 {
			s.mu.Unlock()
			return fmt.Errorf("supplier %s: %w", sp.ID, ErrDuplicateID)
		}
		seen[sp.ID] = true
	}

	now := time.Now()
	for _, sp := range batch {
		s.data.Suppliers = append(s.data.Suppliers, sp)

		if !sp.Balance.IsZero() {
			txn := model.SupplierTransaction{
				ID:          nextSupplierTransactionID(s.data.SupplierTransactions),
				SupplierID:  sp.ID,
				Type:        model.SupplierPurchase,
				Amount:      sp.Balance,
				Date:        now,
				Description: "Opening balance (import)",
			}
			if sp.Balance.IsNegative() {
				txn.Type = model.SupplierPayment
				txn.Amount = sp.Balance.Neg()
			}
			s.data.SupplierTransactions = append(s.data.SupplierTransactions, txn)
		}
	}

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// ImportProducts admits a mapped product batch.
func (s *Store) ImportProducts(batch []model.Product) error {
	s.mu.Lock()

	seen := make(map[string]bool, len(batch))
	for _, p := range batch {
		if p.Name == "" {
			s.mu.Unlock()
			return ValidationError{Field: "name", Description: "required"}
		}
		if p.ID == "" {
			s.mu.Unlock()
			return ValidationError{Field: "id", Description: "required"}
		}
		if seen[p.ID] || s.productIndex(p.ID) >= 0 {
			s.mu.Unlock()
			return fmt.Errorf("product %s: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}

	s.data.Products = append(s.data.Products, batch...)

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// ImportExpenses admits a mapped expense batch.
func (s *Store) ImportExpenses(batch []model.Expense) error {
	s.mu.Lock()

	seen := make(map[string]bool, len(batch))
	for _, e := range batch {
		if e.Description == "" {
			s.mu.Unlock()
			return ValidationError{Field: "description", Description: "required"}
		}
		if e.ID == "" {
			s.mu.Unlock()
			return ValidationError{Field: "id", Description: "required"}
		}
		if seen[e.ID] || s.expenseIndex(e.ID) >= 0 {
			s.mu.Unlock()
			return fmt.Errorf("expense %s: %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = true
	}

	s.data.Expenses = append(s.data.Expenses, batch...)

	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}
