package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditbook-dev/creditbook/internal/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creditbook.json")
	st := New(NewFileBackend(path))
	require.NoError(t, st.Load())
	return st, path
}

// fixture installs a minimal known dataset, replacing the seed.
func fixture(t *testing.T, st *Store) {
	t.Helper()
	require.NoError(t, st.Restore(model.Snapshot{
		Customers: []model.Customer{
			{ID: "1", Name: "Ali", Email: "N/A", Phone: "0555", CreatedAt: date(2025, 1, 1), Balance: dec("0")},
			{ID: "2", Name: "Sara", Email: "N/A", Phone: "0666", CreatedAt: date(2025, 2, 1), Balance: dec("0")},
		},
		Products: []model.Product{
			{ID: "1", Name: "Baguette", Category: "Bread", Barcode: "613001", PurchasePrice: dec("5"), SellingPrice: dec("10"), Stock: 5, MinStock: 2},
			{ID: "2", Name: "Croissant", Category: "Pastry", PurchasePrice: dec("15"), SellingPrice: dec("30"), Stock: 10, MinStock: 3},
		},
		Suppliers: []model.Supplier{
			{ID: "1", Name: "Moulin du Sud", Category: "Flour", Balance: dec("0")},
		},
	}))
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoad_SeedsWhenEmpty(t *testing.T) {
	st, path := newTestStore(t)

	snap := st.Snapshot()
	assert.NotEmpty(t, snap.Customers)
	assert.NotEmpty(t, snap.Products)
	assert.True(t, snap.Settings.BreadUnitPrice.Equal(dec("10")))

	// Seed was persisted immediately.
	_, err := os.Stat(path)
	require.NoError(t, err)

	// Seed balances are consistent with the seed ledger.
	assert.Empty(t, st.VerifyBalances())
}

func TestLoad_CorruptFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creditbook.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := New(NewFileBackend(path))
	require.NoError(t, st.Load())
	assert.NotEmpty(t, st.Snapshot().Customers)

	// The corrupt file was replaced with a valid snapshot.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = DecodeSnapshot(data)
	require.NoError(t, err)
}

func TestLoad_MigratesOldSnapshot(t *testing.T) {
	// An old snapshot: customer without email, no products key, no settings.
	old := `{"customers":[{"id":"1","name":"Ali","phone":"0555","createdAt":"2024-01-01T00:00:00Z","balance":0}],
		"transactions":[],"breadOrders":[]}`
	path := filepath.Join(t.TempDir(), "creditbook.json")
	require.NoError(t, os.WriteFile(path, []byte(old), 0o644))

	st := New(NewFileBackend(path))
	require.NoError(t, st.Load())

	snap := st.Snapshot()
	require.Len(t, snap.Customers, 1)
	assert.Equal(t, "N/A", snap.Customers[0].Email)
	assert.NotNil(t, snap.Products)
	assert.True(t, snap.Settings.BreadUnitPrice.Equal(dec("10")))
	assert.Equal(t, "DA", snap.Settings.Currency)
}

func TestSave_Idempotent(t *testing.T) {
	st, path := newTestStore(t)
	fixture(t, st)

	require.NoError(t, st.Save())
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, st.Save())
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second, "back-to-back saves must produce identical bytes")
}

func TestSubscribe_NotifiesEveryMutation(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	calls := 0
	unsubscribe := st.Subscribe(func() { calls++ })

	_, err := st.AddCustomer(model.Customer{Name: "Nadia"})
	require.NoError(t, err)
	require.NoError(t, st.Save())
	assert.Equal(t, 2, calls)

	unsubscribe()
	_, err = st.AddCustomer(model.Customer{Name: "Karim"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "unsubscribed observer must not fire")
}

func TestExportRestore_RoundTrip(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	exported, err := EncodeSnapshot(st.Export())
	require.NoError(t, err)

	// Restore into a fresh store and export again: bytes must match.
	st2, _ := newTestStore(t)
	snap, err := DecodeSnapshot(exported)
	require.NoError(t, err)
	require.NoError(t, st2.Restore(snap))

	roundTripped, err := EncodeSnapshot(st2.Export())
	require.NoError(t, err)
	assert.Equal(t, string(exported), string(roundTripped))
}

func TestRestore_IsDestructive(t *testing.T) {
	st, _ := newTestStore(t)
	fixture(t, st)

	require.NoError(t, st.Restore(model.Snapshot{}))
	snap := st.Snapshot()
	assert.Empty(t, snap.Customers)
	assert.Empty(t, snap.Products)
	// Migrations still apply to restored snapshots.
	assert.True(t, snap.Settings.BreadUnitPrice.Equal(dec("10")))
}

// failingBackend accepts the first write (the fixture install) and then
// fails every one after it.
type failingBackend struct {
	writes int
}

func (b *failingBackend) Read() ([]byte, error) { return nil, nil }

func (b *failingBackend) Write([]byte) error {
	b.writes++
	if b.writes > 2 {
		return errors.New("disk full")
	}
	return nil
}

func TestSaveFailure_MemoryStaysAuthoritative(t *testing.T) {
	st := New(&failingBackend{})
	require.NoError(t, st.Load()) // seed write succeeds

	before := len(st.Snapshot().Customers)
	c, err := st.AddCustomer(model.Customer{Name: "Nadia"}) // second write ok
	require.NoError(t, err)

	_, err = st.AddCustomer(model.Customer{Name: "Karim"}) // third write fails
	require.Error(t, err)

	// The failed mutation is not rolled back: memory is ahead of disk.
	snap := st.Snapshot()
	assert.Len(t, snap.Customers, before+2)
	assert.Equal(t, c.Name, snap.Customers[before].Name)
}
