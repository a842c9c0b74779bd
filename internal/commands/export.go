package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creditbook-dev/creditbook/internal/store"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the full snapshot to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			data, err := store.EncodeSnapshot(st.Export())
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Printf("Exported snapshot to %s (%d bytes)\n", args[0], len(data))
			return nil
		},
	}
	return cmd
}
