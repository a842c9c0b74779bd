// Package store holds the authoritative in-memory copy of every collection,
// mirrors it to durable storage as one JSON snapshot, and notifies observers
// after each successful mutation. It is the substitute for a database
// connection plus a change feed in a system that has no server.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/creditbook-dev/creditbook/internal/model"
)

// Store is the ledger store. All mutations pass through it, each one ending
// in a full-snapshot Save. The mutex covers in-process callers only; there is
// no cross-process coordination, so two processes sharing one backend
// overwrite each other's snapshot on save (last write wins).
type Store struct {
	mu      sync.Mutex
	data    model.Snapshot
	backend Backend

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// New creates a Store over a backend. Call Load before use.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		subs:    make(map[int]func()),
	}
}

// Load adopts the backend's snapshot as the in-memory state, applying
// forward-compatible field migrations. A missing or corrupt snapshot never
// surfaces as an error: the store silently falls back to the seed dataset and
// persists it immediately. Only a backend write failure during that re-seed
// is reported.
func (s *Store) Load() error {
	s.mu.Lock()

	data, err := s.backend.Read()
	if err == nil && data != nil {
		var snap model.Snapshot
		if jsonErr := json.Unmarshal(data, &snap); jsonErr == nil {
			s.data = migrate(snap)
			s.mu.Unlock()
			return nil
		}
	}

	// Absent or corrupt: re-seed and persist.
	s.data = Seed()
	err = s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Save serializes the entire in-memory state to the backend, then emits the
// change notification. Serialization is deterministic: two saves with no
// intervening mutation produce identical bytes.
func (s *Store) Save() error {
	s.mu.Lock()
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// saveLocked writes the snapshot under s.mu. On write failure the in-memory
// state stays authoritative and is not rolled back; memory and durable
// storage diverge until the next successful save.
func (s *Store) saveLocked() error {
	data, err := EncodeSnapshot(s.data)
	if err != nil {
		return err
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}

// Subscribe registers an observer called synchronously after every successful
// save. Observers receive no payload and re-read the store. Ordering between
// observers is unspecified. The returned function unsubscribes.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	idx := s.nextSub
	s.nextSub++
	s.subs[idx] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, idx)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Export returns the full state for backup or file export. The bytes of an
// encoded export are identical to the persisted snapshot.
func (s *Store) Export() model.Snapshot {
	return s.Snapshot()
}

// Restore destructively replaces the entire state with snap and persists it.
// Field migrations run on the incoming snapshot, so backups written by older
// versions restore cleanly. There is no undo.
func (s *Store) Restore(snap model.Snapshot) error {
	s.mu.Lock()
	s.data = migrate(snap.Clone())
	err := s.saveLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// EncodeSnapshot renders a snapshot in the canonical persisted form.
func EncodeSnapshot(snap model.Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses snapshot bytes, applying field migrations.
func DecodeSnapshot(data []byte) (model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return migrate(snap), nil
}
