// Package commands is the CLI surface, the boundary where every error is
// caught and printed, never panicked.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/creditbook-dev/creditbook/internal/buildinfo"
	"github.com/creditbook-dev/creditbook/internal/config"
	"github.com/creditbook-dev/creditbook/internal/gitops"
	"github.com/creditbook-dev/creditbook/internal/store"
)

const configFile = "creditbook.yaml"

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "creditbook",
		Short:   "Small-business credit ledger and point of sale",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "project directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSaleCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newBackupCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newAlertsCommand())
	rootCmd.AddCommand(newVerifyCommand())

	return rootCmd
}

// openProject loads the project config and its ledger store. Load never fails
// on bad snapshot contents; it re-seeds instead.
func openProject(cmd *cobra.Command) (string, *config.Config, *store.Store, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return "", nil, nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, configFile))
	if err != nil {
		return "", nil, nil, fmt.Errorf("not a creditbook project (run init first): %w", err)
	}

	st := store.New(store.NewFileBackend(filepath.Join(absDir, cfg.Storage.DataFile)))
	if err := st.Load(); err != nil {
		return "", nil, nil, err
	}
	return absDir, cfg, st, nil
}

// commitSnapshot records the data change in git when auto-commit is on.
// History is best-effort; a failed commit never fails the action itself.
func commitSnapshot(dir string, cfg *config.Config, message string) {
	if !cfg.Git.AutoCommit || !gitops.IsRepo(dir) || !gitops.HasChanges(dir) {
		return
	}
	if _, err := gitops.CommitAll(dir, "snapshot: "+message, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
		logger.Warn().Err(err).Msg("snapshot commit failed")
	}
}
