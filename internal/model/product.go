package model

import "github.com/shopspring/decimal"

// Product is a catalog entry sold through the register.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Barcode       string          `json:"barcode,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"minStock"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
