package catalog

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoSnapshot is returned when no catalog has been loaded yet.
var ErrNoSnapshot = errors.New("no catalog snapshot loaded")

// Store holds the process-wide catalog snapshot. Readers take the current
// snapshot with a single atomic load and keep using it for the whole
// request; a reload builds a new snapshot and swaps the pointer, so
// in-flight requests never observe a half-updated catalog. Reloads are
// serialized; a failed build leaves the previous snapshot serving.
type Store struct {
	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current snapshot, or ErrNoSnapshot.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return snap, nil
}

// Reload builds a new snapshot via build and swaps it in. On build
// failure the previous snapshot (if any) keeps serving and the error is
// returned.
func (s *Store) Reload(build func() (*Snapshot, error)) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	snap, err := build()
	if err != nil {
		return err
	}
	s.current.Store(snap)
	return nil
}
