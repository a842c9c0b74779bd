package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/creditbook-dev/creditbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Customers: []model.Customer{
			{ID: "1", Name: "Owes a lot", Balance: dec("500")},
			{ID: "2", Name: "Owes a little", Balance: dec("120.50")},
			{ID: "3", Name: "In credit", Balance: dec("-80")},
			{ID: "4", Name: "Settled", Balance: decimal.Zero},
		},
		Suppliers: []model.Supplier{
			{ID: "1", Name: "Flour Co", Balance: dec("300")},
			{ID: "2", Name: "Prepaid", Balance: dec("-50")},
		},
		Expenses: []model.Expense{
			{ID: "1", Description: "Electricity", Category: "Utilities", Amount: dec("75")},
			{ID: "2", Description: "Water", Category: "Utilities", Amount: dec("25")},
			{ID: "3", Description: "Mop", Amount: dec("10")},
		},
		BreadOrders: []model.BreadOrder{
			{ID: "1", Quantity: 20, IsPaid: true, IsDelivered: true},
			{ID: "2", Quantity: 15, IsPaid: false, IsDelivered: false},
			{ID: "3", Quantity: 5, IsPaid: true, IsDelivered: false},
		},
		Products: []model.Product{
			{ID: "1", Name: "Baguette", Stock: 100, MinStock: 20},
			{ID: "2", Name: "Croissant", Stock: 8, MinStock: 10},
			{ID: "3", Name: "Farine", Stock: 10, MinStock: 10},
		},
	}
}

func TestSummarize(t *testing.T) {
	st := Summarize(sampleSnapshot())

	assert.Equal(t, 4, st.CustomerCount)
	assert.True(t, st.TotalOutstanding.Equal(dec("620.50")), "got %s", st.TotalOutstanding)
	assert.True(t, st.TotalCredit.Equal(dec("80")), "credit reported as a positive figure")
	assert.True(t, st.SupplierPayables.Equal(dec("300")), "prepaid supplier excluded")
	assert.True(t, st.TotalExpenses.Equal(dec("110")))
	assert.Equal(t, 1, st.UnpaidOrders)
	assert.Equal(t, 20, st.UndeliveredLoafs)
}

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(model.Snapshot{})

	assert.Zero(t, st.CustomerCount)
	assert.True(t, st.TotalOutstanding.IsZero())
	assert.True(t, st.TotalExpenses.IsZero())
	assert.Zero(t, st.UnpaidOrders)
}

func TestLowStock(t *testing.T) {
	low := LowStock(sampleSnapshot())

	var names []string
	for _, p := range low {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Croissant", "Farine"}, names, "at-threshold counts as low")
}

func TestDebtors(t *testing.T) {
	debtors := Debtors(sampleSnapshot())

	var names []string
	for _, c := range debtors {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Owes a lot", "Owes a little"}, names,
		"largest debt first, credit and settled customers excluded")
}

func TestExpensesByCategory(t *testing.T) {
	byCat := ExpensesByCategory(sampleSnapshot())

	assert.Len(t, byCat, 2)
	assert.True(t, byCat["Utilities"].Equal(dec("100")))
	assert.True(t, byCat["Uncategorized"].Equal(dec("10")), "blank category grouped under Uncategorized")
}
