// Package session owns the state of one analysis session: the current
// normalized roster snapshot and the admin-hour config. Snapshots are
// immutable once published; a re-upload replaces the whole snapshot in
// one atomic swap, so readers never observe a partially updated roster.
package session

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/adminconfig"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
)

// Snapshot is one uploaded roster after normalization. Staff lists every
// named data row, including staff whose cells were all blank or
// excluded, which matters for zero-filled medians.
type Snapshot struct {
	ID         uuid.UUID
	SourceName string
	UploadedAt time.Time
	Records    roster.RecordSet
	Staff      []string
}

type Store struct {
	current atomic.Pointer[Snapshot]
	config  atomic.Pointer[adminconfig.HourConfig]
}

// NewStore returns a store with no roster loaded and the built-in
// default admin-hour config.
func NewStore() *Store {
	s := &Store{}
	cfg := adminconfig.DefaultHourConfig()
	s.config.Store(&cfg)
	return s
}

// Current returns the active snapshot, or false when no roster has been
// uploaded yet.
func (s *Store) Current() (*Snapshot, bool) {
	snap := s.current.Load()
	return snap, snap != nil
}

// Replace publishes a new snapshot, discarding the previous one.
func (s *Store) Replace(snap *Snapshot) {
	s.current.Store(snap)
}

// Config returns the active admin-hour config. Callers must treat it as
// read-only; SetConfig publishes changes.
func (s *Store) Config() adminconfig.HourConfig {
	return *s.config.Load()
}

// SetConfig publishes a new config. The config lifecycle is independent
// from the roster: replacing one never touches the other.
func (s *Store) SetConfig(cfg adminconfig.HourConfig) {
	s.config.Store(&cfg)
}
