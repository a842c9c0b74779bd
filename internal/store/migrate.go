package store

import "github.com/creditbook-dev/creditbook/internal/model"

// migrate applies forward-compatible fixups to snapshots written by older
// versions: nil collections become empty, customers saved before the email
// field existed are backfilled, and zero-valued settings get defaults.
func migrate(snap model.Snapshot) model.Snapshot {
	if snap.Customers == nil {
		snap.Customers = []model.Customer{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []model.Transaction{}
	}
	if snap.Products == nil {
		snap.Products = []model.Product{}
	}
	if snap.BreadOrders == nil {
		snap.BreadOrders = []model.BreadOrder{}
	}
	if snap.Expenses == nil {
		snap.Expenses = []model.Expense{}
	}
	if snap.Suppliers == nil {
		snap.Suppliers = []model.Supplier{}
	}
	if snap.SupplierTransactions == nil {
		snap.SupplierTransactions = []model.SupplierTransaction{}
	}

	for i := range snap.Customers {
		if snap.Customers[i].Email == "" {
			snap.Customers[i].Email = "N/A"
		}
	}

	if snap.Settings.BreadUnitPrice.IsZero() {
		snap.Settings.BreadUnitPrice = defaultBreadUnitPrice
	}
	if snap.Settings.Currency == "" {
		snap.Settings.Currency = defaultCurrency
	}

	return snap
}
