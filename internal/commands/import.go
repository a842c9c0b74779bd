package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/creditbook-dev/creditbook/internal/auditlog"
	"github.com/creditbook-dev/creditbook/internal/csvimport"
	"github.com/creditbook-dev/creditbook/internal/store"
)

func newImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import ENTITY FILE",
		Short: "Import a CSV batch (customers, suppliers, products, or expenses)",
		Long: "Imports one CSV file as a single atomic batch. Columns whose headers\n" +
			"match field names are mapped automatically; any bad row or id collision\n" +
			"rejects the whole file with nothing written.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, file := args[0], args[1]

			dir, cfg, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			table, err := csvimport.ReadTable(f)
			if err != nil {
				return err
			}

			count, err := runImport(st, entity, table)
			if err != nil {
				return err
			}

			logAudit(dir, auditlog.Entry{
				Timestamp: time.Now(),
				Actor:     "cli",
				Action:    "import",
				Details:   fmt.Sprintf("%d %s from %s", count, entity, file),
			})
			commitSnapshot(dir, cfg, fmt.Sprintf("import %d %s", count, entity))

			fmt.Printf("Imported %d %s\n", count, entity)
			return nil
		},
	}

	return cmd
}

func runImport(st *store.Store, entity string, table csvimport.Table) (int, error) {
	snap := st.Snapshot()

	switch entity {
	case "customers":
		mapping := csvimport.AutoMap(table.Headers, csvimport.CustomerFields)
		batch, err := csvimport.MapCustomers(table, mapping, idsOf(len(snap.Customers), func(i int) string { return snap.Customers[i].ID }))
		if err != nil {
			return 0, err
		}
		return len(batch), st.ImportCustomers(batch)

	case "suppliers":
		mapping := csvimport.AutoMap(table.Headers, csvimport.SupplierFields)
		batch, err := csvimport.MapSuppliers(table, mapping, idsOf(len(snap.Suppliers), func(i int) string { return snap.Suppliers[i].ID }))
		if err != nil {
			return 0, err
		}
		return len(batch), st.ImportSuppliers(batch)

	case "products":
		mapping := csvimport.AutoMap(table.Headers, csvimport.ProductFields)
		batch, err := csvimport.MapProducts(table, mapping, idsOf(len(snap.Products), func(i int) string { return snap.Products[i].ID }))
		if err != nil {
			return 0, err
		}
		return len(batch), st.ImportProducts(batch)

	case "expenses":
		mapping := csvimport.AutoMap(table.Headers, csvimport.ExpenseFields)
		batch, err := csvimport.MapExpenses(table, mapping, idsOf(len(snap.Expenses), func(i int) string { return snap.Expenses[i].ID }))
		if err != nil {
			return 0, err
		}
		return len(batch), st.ImportExpenses(batch)

	default:
		return 0, fmt.Errorf("unknown entity %q (want customers, suppliers, products, or expenses)", entity)
	}
}

func idsOf(n int, get func(int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = get(i)
	}
	return out
}
