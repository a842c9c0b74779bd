package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a plain outgoing-cost record. Expenses carry no balance
// bookkeeping; they are a pure append/edit/delete ledger.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}
