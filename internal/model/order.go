package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BreadOrder is a pre-order line for the recurring bulk bread product.
// CustomerID and CustomerName are nil for walk-in orders.
type BreadOrder struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	IsPaid       bool            `json:"isPaid"`
	IsDelivered  bool            `json:"isDelivered"`
	CreatedAt    time.Time       `json:"createdAt"`
	IsPinned     bool            `json:"isPinned"`
	CustomerID   *string         `json:"customerId"`
	CustomerName *string         `json:"customerName"`
}
