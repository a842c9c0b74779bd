package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a customer ledger transaction.
type TransactionType string

const (
	TxnDebt    TransactionType = "debt"
	TxnPayment TransactionType = "payment"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TxnDebt || t == TxnPayment
}

// Transaction is one immutable debt or payment event against a customer.
// Amount is always positive; the type carries the sign.
type Transaction struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	OrderID     string          `json:"orderId,omitempty"`
}

// Signed returns the transaction's contribution to the owning customer's
// balance: +amount for a debt, -amount for a payment.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TxnPayment {
		return t.Amount.Neg()
	}
	return t.Amount
}
