package store

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/creditbook-dev/creditbook/internal/model"
)

var (
	defaultBreadUnitPrice = decimal.NewFromInt(10)
)

const defaultCurrency = "DA"

// Seed returns the fixed default dataset adopted when no durable snapshot
// exists. Dates are anchored to the current time so the demo data always
// looks recent. Balances are consistent with the seeded transactions.
func Seed() model.Snapshot {
	now := time.Now()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	money := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

	customers := []model.Customer{
		{ID: "1", Name: "Boulangerie Al-Amal", Email: "N/A", Phone: "0555-123456", CreatedAt: daysAgo(45), SettlementDay: "Sunday"},
		{ID: "2", Name: "Patisserie Le Delice", Email: "N/A", Phone: "0555-654321", CreatedAt: daysAgo(90), SettlementDay: "1st of the month"},
		{ID: "3", Name: "Cafe du Coin", Email: "N/A", Phone: "0555-987654", CreatedAt: daysAgo(15), SettlementDay: "Monday"},
		{ID: "4", Name: "Superette Rahma", Email: "N/A", Phone: "0555-456789", CreatedAt: daysAgo(60), SettlementDay: "Thursday"},
		{ID: "5", Name: "Walk-in customer", Email: "N/A", Phone: "N/A", CreatedAt: daysAgo(5)},
	}

	seedTxns := []model.Transaction{
		{Type: model.TxnDebt, Amount: money(3000), Date: daysAgo(20), Description: "Goods purchase"},
		{Type: model.TxnPayment, Amount: money(2000), Date: daysAgo(18), Description: "Partial payment"},
		{Type: model.TxnDebt, Amount: money(250), Date: daysAgo(15), Description: "Bread and croissants"},
		{Type: model.TxnDebt, Amount: money(1500), Date: daysAgo(5), Description: "Special order"},
		{Type: model.TxnPayment, Amount: money(1500), Date: daysAgo(5), Description: "Order settlement"},
		{Type: model.TxnDebt, Amount: money(500), Date: daysAgo(1), Description: "Order advance"},
		{Type: model.TxnPayment, Amount: money(1000), Date: daysAgo(10), Description: "Deposit"},
	}

	// Assign transactions round-robin across customers, then derive each
	// balance from its transactions so the seed satisfies the invariant.
	transactions := make([]model.Transaction, len(seedTxns))
	for i, t := range seedTxns {
		t.ID = strconv.Itoa(i + 1)
		t.CustomerID = customers[i%len(customers)].ID
		transactions[i] = t
	}
	for i := range customers {
		customers[i].Balance = RecomputeBalance(customers[i].ID, transactions)
	}

	custID := func(s string) *string { return &s }

	breadOrders := []model.BreadOrder{
		{ID: "1", Name: "Boulangerie Al-Amal", Quantity: 100, UnitPrice: money(10), TotalAmount: money(1000), IsPinned: true, CreatedAt: now, CustomerID: custID("1"), CustomerName: custID("Boulangerie Al-Amal")},
		{ID: "2", Name: "Patisserie Le Delice", Quantity: 50, UnitPrice: money(10), TotalAmount: money(500), IsPaid: true, CreatedAt: now, CustomerID: custID("2"), CustomerName: custID("Patisserie Le Delice")},
		{ID: "3", Name: "Cafe du Coin", Quantity: 75, UnitPrice: money(10), TotalAmount: money(750), IsDelivered: true, CreatedAt: now, CustomerID: custID("3"), CustomerName: custID("Cafe du Coin")},
		{ID: "4", Name: "Direct sale", Quantity: 20, UnitPrice: money(10), TotalAmount: money(200), IsPaid: true, IsDelivered: true, CreatedAt: daysAgo(1)},
	}

	products := []model.Product{
		{ID: "1", Name: "Baguette", Category: "Bread", Barcode: "6130000000011", PurchasePrice: money(5), SellingPrice: money(10), Stock: 200, MinStock: 50},
		{ID: "2", Name: "Croissant", Category: "Pastry", Barcode: "6130000000028", PurchasePrice: money(15), SellingPrice: money(30), Stock: 80, MinStock: 20},
		{ID: "3", Name: "Semolina 5kg", Category: "Grocery", Barcode: "6130000000035", PurchasePrice: money(450), SellingPrice: money(520), Stock: 25, MinStock: 10},
		{ID: "4", Name: "Mineral water 1.5L", Category: "Drinks", Barcode: "6130000000042", PurchasePrice: money(25), SellingPrice: money(35), Stock: 120, MinStock: 30},
	}

	suppliers := []model.Supplier{
		{ID: "1", Name: "Moulin du Sud", Contact: "Karim", Phone: "0555-111222", Category: "Flour", VisitDay: "Tuesday"},
		{ID: "2", Name: "Laiterie Soummam", Contact: "Nadia", Phone: "0555-333444", Category: "Dairy", VisitDay: "Friday"},
	}

	return model.Snapshot{
		Customers:            customers,
		Transactions:         transactions,
		Products:             products,
		BreadOrders:          breadOrders,
		Expenses:             []model.Expense{},
		Suppliers:            suppliers,
		SupplierTransactions: []model.SupplierTransaction{},
		Settings: model.AppSettings{
			BreadUnitPrice: defaultBreadUnitPrice,
			Currency:       defaultCurrency,
			CompanyName:    "Creditbook",
		},
	}
}
