package store

import (
	"github.com/shopspring/decimal"

	"github.com/creditbook-dev/creditbook/internal/model"
)

// Balances are maintained incrementally: every transaction mutation applies a
// signed delta to the owning account's stored balance inside the same
// mutation, before the snapshot is saved. All four mutation paths (add, edit
// amount, edit type, delete) go through the two delta functions below, so the
// sign arithmetic lives in exactly one place.

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// txnDelta returns the balance adjustment for a customer transaction change.
// old is nil for an add, updated is nil for a delete. Both refer to the same
// owning customer; cross-customer moves apply two single-sided deltas.
func txnDelta(old, updated *model.Transaction) decimal.Decimal {
	delta := decimal.Zero
	if old != nil {
		delta = delta.Sub(old.Signed())
	}
	if updated != nil {
		delta = delta.Add(updated.Signed())
	}
	return delta
}

// supplierTxnDelta is txnDelta for supplier transactions.
func supplierTxnDelta(old, updated *model.SupplierTransaction) decimal.Decimal {
	delta := decimal.Zero
	if old != nil {
		delta = delta.Sub(old.Signed())
	}
	if updated != nil {
		delta = delta.Add(updated.Signed())
	}
	return delta
}

// RecomputeBalance derives a customer balance from scratch: the signed sum of
// every transaction owned by customerID. Used to seed consistent data and to
// verify the stored balances against the ledger.
func RecomputeBalance(customerID string, txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.CustomerID == customerID {
			sum = sum.Add(t.Signed())
		}
	}
	return sum
}

// RecomputeSupplierBalance is RecomputeBalance for suppliers.
func RecomputeSupplierBalance(supplierID string, txns []model.SupplierTransaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.SupplierID == supplierID {
			sum = sum.Add(t.Signed())
		}
	}
	return sum
}

// BalanceMismatch describes one account whose stored balance disagrees with
// the signed sum of its transactions.
type BalanceMismatch struct {
	Kind    string // "customer" or "supplier"
	ID      string
	Name    string
	Stored  decimal.Decimal
	Derived decimal.Decimal
}

// VerifyBalances checks every customer and supplier against the ledger and
// returns all mismatches. An empty result means the invariant holds.
func (s *Store) VerifyBalances() []BalanceMismatch {
	snap := s.Snapshot()

	var out []BalanceMismatch
	for _, c := range snap.Customers {
		derived := RecomputeBalance(c.ID, snap.Transactions)
		if !c.Balance.Equal(derived) {
			out = append(out, BalanceMismatch{Kind: "customer", ID: c.ID, Name: c.Name, Stored: c.Balance, Derived: derived})
		}
	}
	for _, sp := range snap.Suppliers {
		derived := RecomputeSupplierBalance(sp.ID, snap.SupplierTransactions)
		if !sp.Balance.Equal(derived) {
			out = append(out, BalanceMismatch{Kind: "supplier", ID: sp.ID, Name: sp.Name, Stored: sp.Balance, Derived: derived})
		}
	}
	return out
}
