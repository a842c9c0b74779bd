package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every stored balance against its transaction ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			mismatches := st.VerifyBalances()
			if len(mismatches) == 0 {
				fmt.Println("All balances consistent")
				return nil
			}
			for _, m := range mismatches {
				fmt.Printf("%s %s (%s): stored %s, ledger says %s\n",
					m.Kind, m.ID, m.Name, m.Stored.StringFixed(2), m.Derived.StringFixed(2))
			}
			return fmt.Errorf("%d balance mismatch(es)", len(mismatches))
		},
	}
}
