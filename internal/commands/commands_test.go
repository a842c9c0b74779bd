package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditbook-dev/creditbook/internal/config"
	"github.com/creditbook-dev/creditbook/internal/csvimport"
	"github.com/creditbook-dev/creditbook/internal/gitops"
	"github.com/creditbook-dev/creditbook/internal/model"
	"github.com/creditbook-dev/creditbook/internal/store"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestRunInit(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "Corner Bakery"))

	cfg, err := config.Load(filepath.Join(dir, configFile))
	require.NoError(t, err)
	assert.Equal(t, "Corner Bakery", cfg.Business.Name)

	for _, d := range []string{"data", "logs", "import"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Seeded snapshot must exist and open as a working store.
	st := store.New(store.NewFileBackend(filepath.Join(dir, cfg.Storage.DataFile)))
	require.NoError(t, st.Load())
	assert.NotEmpty(t, st.Snapshot().Customers)
	assert.NotEmpty(t, st.Snapshot().Products)

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), "logs/")

	assert.True(t, gitops.IsRepo(dir), "init must leave a git repo behind")
}

func newMemoryStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.NewFileBackend(filepath.Join(t.TempDir(), "creditbook.json")))
	require.NoError(t, st.Load())
	return st
}

func TestRunImport_Customers(t *testing.T) {
	st := newMemoryStore(t)
	before := len(st.Snapshot().Customers)

	table := csvimport.Table{
		Headers: []string{"name", "phone", "balance"},
		Rows: [][]string{
			{"Imported One", "0555 11 22 33", "150"},
			{"Imported Two", "", "0"},
		},
	}

	count, err := runImport(st, "customers", table)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, st.Snapshot().Customers, before+2)
}

func TestRunImport_UnknownEntity(t *testing.T) {
	st := newMemoryStore(t)

	_, err := runImport(st, "invoices", csvimport.Table{Headers: []string{"name"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity")
}

func TestParseCart(t *testing.T) {
	st := newMemoryStore(t)

	p, err := st.AddProduct(model.Product{Name: "Scanned", Barcode: "9990001112223", Stock: 4})
	require.NoError(t, err)

	cart, err := parseCart(st, []string{p.ID + ":2", "9990001112223:1"})
	require.NoError(t, err)
	require.Len(t, cart, 2)
	assert.Equal(t, p.ID, cart[0].ProductID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, p.ID, cart[1].ProductID, "barcodes resolve to the product id")

	_, err = parseCart(st, []string{"no-colon"})
	require.Error(t, err)

	_, err = parseCart(st, []string{"1:lots"})
	require.Error(t, err)
}
