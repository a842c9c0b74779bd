package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditbook-dev/creditbook/internal/model"
)

func TestProducts_BarcodeLookup(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	p, ok := st.ProductByBarcode("613001")
	require.True(t, ok)
	assert.Equal(t, "Baguette", p.Name)

	_, ok = st.ProductByBarcode("")
	assert.False(t, ok, "blank barcodes must never match")
}

func TestProducts_CRUD(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	p, err := st.AddProduct(model.Product{Name: "Sugar 1kg", Category: "Grocery", SellingPrice: dec("120"), Stock: 40, MinStock: 10})
	require.NoError(t, err)
	assert.Equal(t, "3", p.ID, "max+1 over existing ids")

	p.Stock = 35
	require.NoError(t, st.UpdateProduct(p))
	got, ok := st.ProductByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, 35, got.Stock)

	require.NoError(t, st.DeleteProduct(p.ID))
	_, ok = st.ProductByID(p.ID)
	assert.False(t, ok)

	require.ErrorIs(t, st.DeleteProduct(p.ID), ErrNotFound)
}

func TestBreadOrders_DefaultsFromSettings(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	o, err := st.AddBreadOrder(model.BreadOrder{Name: "Morning batch", Quantity: 40})
	require.NoError(t, err)
	assert.Equal(t, "10.00", o.UnitPrice.StringFixed(2), "falls back to settings bread price")
	assert.Equal(t, "400.00", o.TotalAmount.StringFixed(2))
	assert.False(t, o.CreatedAt.IsZero())

	o.Quantity = 50
	require.NoError(t, st.UpdateBreadOrder(o))
	snap := st.Snapshot()
	require.Len(t, snap.BreadOrders, 1)
	assert.Equal(t, "500.00", snap.BreadOrders[0].TotalAmount.StringFixed(2))

	require.NoError(t, st.DeleteBreadOrder(o.ID))
	assert.Empty(t, st.Snapshot().BreadOrders)
}

func TestBreadOrders_UnknownCustomerRejected(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	missing := "99"
	_, err := st.AddBreadOrder(model.BreadOrder{Name: "Ghost", Quantity: 10, CustomerID: &missing})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestExpenses_CRUD(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	e, err := st.AddExpense(model.Expense{Description: "Electricity", Category: "Utilities", Amount: dec("3200")})
	require.NoError(t, err)
	assert.Equal(t, "1", e.ID)
	assert.False(t, e.Date.IsZero())

	e.Amount = dec("3400")
	require.NoError(t, st.UpdateExpense(e))

	require.NoError(t, st.DeleteExpense(e.ID))
	assert.Empty(t, st.Snapshot().Expenses)
}

func TestUpdateSettings(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	settings := st.Snapshot().Settings
	settings.BreadUnitPrice = dec("12")
	settings.CompanyName = "Boulangerie Centrale"
	require.NoError(t, st.UpdateSettings(settings))

	got := st.Snapshot().Settings
	assert.Equal(t, "12.00", got.BreadUnitPrice.StringFixed(2))
	assert.Equal(t, "Boulangerie Centrale", got.CompanyName)

	settings.BreadUnitPrice = dec("0")
	var verr ValidationError
	require.ErrorAs(t, st.UpdateSettings(settings), &verr)
}
