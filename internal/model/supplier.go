package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a vendor account. Balance is positive when the business owes
// the supplier money, mirroring the customer invariant against
// supplier transactions (+purchase, -payment).
type Supplier struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Contact  string          `json:"contact"`
	Phone    string          `json:"phone"`
	Category string          `json:"category"`
	Balance  decimal.Decimal `json:"balance"`
	VisitDay string          `json:"visitDay,omitempty"`
}

// SupplierTransactionType classifies a supplier ledger transaction.
type SupplierTransactionType string

const (
	SupplierPurchase SupplierTransactionType = "purchase"
	SupplierPayment  SupplierTransactionType = "payment"
)

// Valid reports whether t is a known supplier transaction type.
func (t SupplierTransactionType) Valid() bool {
	return t == SupplierPurchase || t == SupplierPayment
}

// SupplierTransaction is one purchase or payment event against a supplier.
type SupplierTransaction struct {
	ID          string                  `json:"id"`
	SupplierID  string                  `json:"supplierId"`
	Type        SupplierTransactionType `json:"type"`
	Amount      decimal.Decimal         `json:"amount"`
	Date        time.Time               `json:"date"`
	Description string                  `json:"description"`
}

// Signed returns the transaction's contribution to the supplier balance:
// +amount for a purchase, -amount for a payment.
func (t SupplierTransaction) Signed() decimal.Decimal {
	if t.Type == SupplierPayment {
		return t.Amount.Neg()
	}
	return t.Amount
}
