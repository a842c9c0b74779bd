package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditbook-dev/creditbook/internal/model"
)

func TestImportCustomers_CollisionRejectsWholeBatch(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	before := st.Snapshot()
	err := st.ImportCustomers([]model.Customer{
		{ID: "7", Name: "New One"},
		{ID: "1", Name: "Collides"}, // "1" already exists
	})
	require.ErrorIs(t, err, ErrDuplicateID)

	after := st.Snapshot()
	assert.Equal(t, len(before.Customers), len(after.Customers), "zero rows may be added")
	assert.Equal(t, len(before.Transactions), len(after.Transactions))
}

func TestImportCustomers_InBatchDuplicateRejects(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	err := st.ImportCustomers([]model.Customer{
		{ID: "7", Name: "A"},
		{ID: "7", Name: "B"},
	})
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, st.Snapshot().Customers, 2)
}

func TestImportCustomers_OpeningBalanceKeepsInvariant(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	err := st.ImportCustomers([]model.Customer{
		{ID: "7", Name: "Debtor", Balance: dec("1250")},
		{ID: "8", Name: "Creditor", Balance: dec("-500")},
		{ID: "9", Name: "Even"},
	})
	require.NoError(t, err)

	// Nonzero balances arrive with a matching opening transaction.
	debtorTxns := st.TransactionsForCustomer("7")
	require.Len(t, debtorTxns, 1)
	assert.Equal(t, model.TxnDebt, debtorTxns[0].Type)
	assert.Equal(t, "1250.00", debtorTxns[0].Amount.StringFixed(2))

	creditorTxns := st.TransactionsForCustomer("8")
	require.Len(t, creditorTxns, 1)
	assert.Equal(t, model.TxnPayment, creditorTxns[0].Type)
	assert.Equal(t, "500.00", creditorTxns[0].Amount.StringFixed(2))

	assert.Empty(t, st.TransactionsForCustomer("9"))
	assert.Empty(t, st.VerifyBalances())
}

func TestImportSuppliers_OpeningBalance(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	err := st.ImportSuppliers([]model.Supplier{
		{ID: "5", Name: "Grossiste", Balance: dec("900")},
	})
	require.NoError(t, err)
	assert.Empty(t, st.VerifyBalances())
}

func TestImportProducts_MissingNameRejects(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	err := st.ImportProducts([]model.Product{
		{ID: "7", Name: "Sugar 1kg"},
		{ID: "8"},
	})
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, st.Snapshot().Products, 2, "valid sibling row must not be admitted")
}

func TestImportExpenses(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	err := st.ImportExpenses([]model.Expense{
		{ID: "1", Description: "Rent", Category: "Fixed", Amount: dec("15000"), Date: date(2025, 6, 1)},
	})
	require.NoError(t, err)
	assert.Len(t, st.Snapshot().Expenses, 1)

	err = st.ImportExpenses([]model.Expense{
		{ID: "1", Description: "Again", Amount: dec("1"), Date: date(2025, 6, 2)},
	})
	require.ErrorIs(t, err, ErrDuplicateID)
}
