package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creditbook-dev/creditbook/internal/report"
)

func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print headline figures and top debtors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			snap := st.Snapshot()
			stats := report.Summarize(snap)
			cur := cfg.Business.Currency

			fmt.Printf("Customers:          %d\n", stats.CustomerCount)
			fmt.Printf("Outstanding debt:   %s %s\n", stats.TotalOutstanding.StringFixed(2), cur)
			fmt.Printf("Customer credit:    %s %s\n", stats.TotalCredit.StringFixed(2), cur)
			fmt.Printf("Supplier payables:  %s %s\n", stats.SupplierPayables.StringFixed(2), cur)
			fmt.Printf("Expenses to date:   %s %s\n", stats.TotalExpenses.StringFixed(2), cur)
			fmt.Printf("Unpaid pre-orders:  %d\n", stats.UnpaidOrders)

			debtors := report.Debtors(snap)
			if len(debtors) > 0 {
				fmt.Println("\nTop debtors:")
				for i, c := range debtors {
					if i == 5 {
						break
					}
					fmt.Printf("  %-30s %s %s\n", c.Name, c.Balance.StringFixed(2), cur)
				}
			}
			return nil
		},
	}
}

func newAlertsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List products at or below their minimum stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			low := report.LowStock(st.Snapshot())
			if len(low) == 0 {
				fmt.Println("Stock levels OK")
				return nil
			}
			for _, p := range low {
				fmt.Printf("%-30s stock %d (min %d)\n", p.Name, p.Stock, p.MinStock)
			}
			return nil
		},
	}
}
