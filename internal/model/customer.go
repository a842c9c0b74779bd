package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money fields are plain JSON numbers in the snapshot format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Customer is a credit-ledger account holder.
//
// Balance is the signed running total: positive means the customer owes the
// business, negative means the customer holds credit. It must always equal the
// signed sum of the customer's transactions (+debt, -payment).
type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	CreatedAt     time.Time       `json:"createdAt"`
	Balance       decimal.Decimal `json:"balance"`
	SettlementDay string          `json:"settlementDay,omitempty"`
}
