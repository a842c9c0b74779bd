package model

import "github.com/shopspring/decimal"

// AppSettings is the process-wide singleton of configurable business values.
// Company fields appear on printed receipts and invoices.
type AppSettings struct {
	BreadUnitPrice decimal.Decimal `json:"breadUnitPrice"`
	Currency       string          `json:"currency"`
	CompanyName    string          `json:"companyName"`
	CompanyAddress string          `json:"companyAddress"`
	CompanyPhone   string          `json:"companyPhone"`
}
