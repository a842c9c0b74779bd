// Package report derives read-only figures from a snapshot: the numbers
// behind the dashboard stat cards and the low-stock alert screen. Nothing
// here mutates the store.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/creditbook-dev/creditbook/internal/model"
)

// Stats is the headline summary of a snapshot.
type Stats struct {
	CustomerCount    int
	TotalOutstanding decimal.Decimal // sum of positive customer balances
	TotalCredit      decimal.Decimal // sum of negative balances, as a positive figure
	SupplierPayables decimal.Decimal // sum of positive supplier balances
	TotalExpenses    decimal.Decimal
	UnpaidOrders     int
	UndeliveredLoafs int // quantity across undelivered bread orders
}

// Summarize computes headline stats over a snapshot.
func Summarize(snap model.Snapshot) Stats {
	st := Stats{
		CustomerCount:    len(snap.Customers),
		TotalOutstanding: decimal.Zero,
		TotalCredit:      decimal.Zero,
		SupplierPayables: decimal.Zero,
		TotalExpenses:    decimal.Zero,
	}

	for _, c := range snap.Customers {
		if c.Balance.IsPositive() {
			st.TotalOutstanding = st.TotalOutstanding.Add(c.Balance)
		} else if c.Balance.IsNegative() {
			st.TotalCredit = st.TotalCredit.Add(c.Balance.Neg())
		}
	}
	for _, sp := range snap.Suppliers {
		if sp.Balance.IsPositive() {
			st.SupplierPayables = st.SupplierPayables.Add(sp.Balance)
		}
	}
	for _, e := range snap.Expenses {
		st.TotalExpenses = st.TotalExpenses.Add(e.Amount)
	}
	for _, o := range snap.BreadOrders {
		if !o.IsPaid {
			st.UnpaidOrders++
		}
		if !o.IsDelivered {
			st.UndeliveredLoafs += o.Quantity
		}
	}
	return st
}

// LowStock returns every product at or below its reorder threshold.
func LowStock(snap model.Snapshot) []model.Product {
	var out []model.Product
	for _, p := range snap.Products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

// Debtors returns customers with a positive balance, largest debt first.
func Debtors(snap model.Snapshot) []model.Customer {
	var out []model.Customer
	for _, c := range snap.Customers {
		if c.Balance.IsPositive() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Balance.GreaterThan(out[j].Balance)
	})
	return out
}

// ExpensesByCategory totals expenses per category.
func ExpensesByCategory(snap model.Snapshot) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, e := range snap.Expenses {
		key := e.Category
		if key == "" {
			key = "Uncategorized"
		}
		if cur, ok := out[key]; ok {
			out[key] = cur.Add(e.Amount)
		} else {
			out[key] = e.Amount
		}
	}
	return out
}
