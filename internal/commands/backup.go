package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/creditbook-dev/creditbook/internal/auditlog"
	"github.com/creditbook-dev/creditbook/internal/backup"
	"github.com/creditbook-dev/creditbook/internal/config"
	"github.com/creditbook-dev/creditbook/internal/store"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload the snapshot to cloud storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, cfg, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			svc, err := backupService(cfg, st)
			if err != nil {
				return err
			}
			if err := svc.Backup(cmd.Context()); err != nil {
				return err
			}

			logAudit(dir, auditlog.Entry{
				Timestamp: time.Now(),
				Actor:     "cli",
				Action:    "backup",
				Details:   "uploaded " + cfg.Backup.Filename,
			})
			fmt.Printf("Backed up snapshot as %s\n", cfg.Backup.Filename)
			return nil
		},
	}
}

func newRestoreCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace ALL local data with the cloud backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("restore is destructive and irreversible; re-run with --yes")
			}

			dir, cfg, st, err := openProject(cmd)
			if err != nil {
				return err
			}

			svc, err := backupService(cfg, st)
			if err != nil {
				return err
			}
			if err := svc.Restore(cmd.Context()); err != nil {
				return err
			}

			logAudit(dir, auditlog.Entry{
				Timestamp: time.Now(),
				Actor:     "cli",
				Action:    "restore",
				Details:   "replaced local snapshot from " + cfg.Backup.Filename,
			})
			commitSnapshot(dir, cfg, "restore from backup")

			fmt.Println("Restored snapshot from backup")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive restore")
	return cmd
}

func backupService(cfg *config.Config, st *store.Store) (*backup.Service, error) {
	token := os.Getenv(cfg.Backup.TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("no access token in $%s", cfg.Backup.TokenEnv)
	}
	return backup.NewService(st, backup.NewDriveTransport(token), cfg.Backup.Filename), nil
}
