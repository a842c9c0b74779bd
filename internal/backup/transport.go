// Package backup copies the whole snapshot to and from a remote blob store.
//
// The remote side is opaque: all the core needs is find/upload/download keyed
// by one well-known filename, with an opaque bearer credential obtained
// elsewhere. Restore is destructive by design.
package backup

import (
	"context"
	"time"
)

// FileInfo identifies a remote backup file.
type FileInfo struct {
	ID           string
	ModifiedTime time.Time
}

// Transport is the remote blob-store contract. Find returns nil when no
// backup exists under the given name. Upload creates or replaces the file.
type Transport interface {
	Find(ctx context.Context, filename string) (*FileInfo, error)
	Upload(ctx context.Context, filename string, data []byte) error
	Download(ctx context.Context, fileID string) ([]byte, error)
}
