package csvimport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable_SkipsBlankRows(t *testing.T) {
	in := "name,phone\nAli,0555\n , \nSara,0666\n"
	table, err := ReadTable(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "phone"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Ali", table.Rows[0][0])
}

func TestReadTable_Empty(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""))
	require.Error(t, err)
}

func TestAutoMap(t *testing.T) {
	m := AutoMap([]string{"name", "Telephone", "balance"}, CustomerFields)
	assert.Equal(t, Mapping{"name": "name", "balance": "balance"}, m)
}

func TestRequireFields(t *testing.T) {
	m := Mapping{"col_a": "name"}
	require.NoError(t, RequireFields(m, "name"))

	err := RequireFields(m, "name", "amount")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestMoneyCoercion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1250", "1250"},
		{"1,250.50 DA", "1250.5"},
		{"  -500 ", "-500"},
		{"garbage", "0"},
		{"", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money(tt.in).String(), tt.in)
	}
}

func TestDateCoercion(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	got := date("2025-01-10", now)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.January, got.Month())

	assert.Equal(t, now, date("", now))
	assert.Equal(t, now, date("not a date", now))
}

func TestMapCustomers_AssignsNonCollidingIDs(t *testing.T) {
	table := Table{
		Headers: []string{"id", "name", "balance"},
		Rows: [][]string{
			{"", "Fresh", "100"},
			{"12", "Pinned", "0"},
			{"", "Another", "-50"},
		},
	}
	m := AutoMap(table.Headers, CustomerFields)

	batch, err := MapCustomers(table, m, []string{"1", "2", "9"})
	require.NoError(t, err)
	require.Len(t, batch, 3)

	// Generated ids start above both existing ids and ids in the batch.
	assert.Equal(t, "13", batch[0].ID)
	assert.Equal(t, "12", batch[1].ID)
	assert.Equal(t, "14", batch[2].ID)

	assert.Equal(t, "100", batch[0].Balance.String())
	assert.Equal(t, "-50", batch[2].Balance.String())
	assert.False(t, batch[0].CreatedAt.IsZero())
}

func TestMapCustomers_RequiresNameMapping(t *testing.T) {
	table := Table{Headers: []string{"phone"}, Rows: [][]string{{"0555"}}}
	_, err := MapCustomers(table, AutoMap(table.Headers, CustomerFields), nil)
	require.Error(t, err)
}

func TestMapSuppliers_DefaultCategory(t *testing.T) {
	table := Table{
		Headers: []string{"name", "balance"},
		Rows:    [][]string{{"Moulin", "750 DA"}},
	}
	batch, err := MapSuppliers(table, AutoMap(table.Headers, SupplierFields), nil)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "Uncategorized", batch[0].Category)
	assert.Equal(t, "750", batch[0].Balance.String())
}

func TestMapProducts_LenientNumbers(t *testing.T) {
	table := Table{
		Headers: []string{"name", "sellingPrice", "stock", "minStock"},
		Rows:    [][]string{{"Baguette", "10.00 DA", "200 units", "x"}},
	}
	batch, err := MapProducts(table, AutoMap(table.Headers, ProductFields), nil)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "10", batch[0].SellingPrice.String())
	assert.Equal(t, 200, batch[0].Stock)
	assert.Equal(t, 0, batch[0].MinStock)
}

func TestMapExpenses_DatesDefaultToNow(t *testing.T) {
	table := Table{
		Headers: []string{"description", "amount", "date"},
		Rows: [][]string{
			{"Rent", "15000", "2025-06-01"},
			{"Fuel", "900", ""},
		},
	}
	batch, err := MapExpenses(table, AutoMap(table.Headers, ExpenseFields), nil)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, time.June, batch[0].Date.Month())
	assert.WithinDuration(t, time.Now(), batch[1].Date, time.Minute)
}
