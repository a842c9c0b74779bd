package backup

import (
	"context"
	"errors"
	"fmt"

	"github.com/creditbook-dev/creditbook/internal/store"
)

// DefaultFilename is the well-known backup name in the remote store.
const DefaultFilename = "creditbook-backup.json"

// ErrNoBackup is returned by Restore when the remote holds no backup file.
var ErrNoBackup = errors.New("no backup file found")

// Service glues the ledger store to a backup transport. Calls are not
// retried; a failed call surfaces its error and leaves local state untouched.
type Service struct {
	store     *store.Store
	transport Transport
	filename  string
}

// NewService creates a backup service. An empty filename uses
// DefaultFilename.
func NewService(st *store.Store, transport Transport, filename string) *Service {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Service{store: st, transport: transport, filename: filename}
}

// Backup uploads the current snapshot, creating or replacing the remote file.
func (s *Service) Backup(ctx context.Context) error {
	data, err := store.EncodeSnapshot(s.store.Export())
	if err != nil {
		return err
	}
	if err := s.transport.Upload(ctx, s.filename, data); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	return nil
}

// Restore downloads the remote backup and destructively replaces the entire
// local state with it. There is no undo.
func (s *Service) Restore(ctx context.Context) error {
	info, err := s.transport.Find(ctx, s.filename)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if info == nil {
		return ErrNoBackup
	}

	data, err := s.transport.Download(ctx, info.ID)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	snap, err := store.DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	return s.store.Restore(snap)
}

// Metadata reports the remote backup's id and modification time, or nil when
// none exists.
func (s *Service) Metadata(ctx context.Context) (*FileInfo, error) {
	return s.transport.Find(ctx, s.filename)
}
