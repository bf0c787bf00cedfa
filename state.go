// FILE: state.go
package dailylog

import (
	"sync/atomic"
)

// lifecycle is the one-way initialization state machine of a Store
type lifecycle int32

const (
	stateUninitialized lifecycle = iota
	stateInitializing
	stateInitialized
)

// storeState encapsulates the runtime state of the store
type storeState struct {
	phase    atomic.Int32 // lifecycle
	disabled atomic.Bool  // set at init when logging is off or the directory is unusable

	LinesWritten  atomic.Uint64
	BytesWritten  atomic.Uint64
	Filtered      atomic.Uint64 // Dropped by level or disabled logging
	WriteFailures atomic.Uint64
	Rotations     atomic.Uint64 // Size splits
	Rollovers     atomic.Uint64 // Day changes
	Deletions     atomic.Uint64
	CleanupPasses atomic.Uint64
}

func (st *storeState) load() lifecycle {
	return lifecycle(st.phase.Load())
}

func (st *storeState) set(p lifecycle) {
	st.phase.Store(int32(p))
}

// activeFile is the path selection state, guarded by Store.mu
type activeFile struct {
	day    string // YYYYMMDD key of the current day
	path   string
	size   int64 // running byte count, seeded by one stat per path change
	exists bool
	sized  bool
}

// Stats is a point-in-time snapshot of store counters
type Stats struct {
	LinesWritten  uint64
	BytesWritten  uint64
	Filtered      uint64
	WriteFailures uint64
	Rotations     uint64
	Rollovers     uint64
	Deletions     uint64
	CleanupPasses uint64
}

// Stats returns a snapshot of the store counters
func (s *Store) Stats() Stats {
	return Stats{
		LinesWritten:  s.state.LinesWritten.Load(),
		BytesWritten:  s.state.BytesWritten.Load(),
		Filtered:      s.state.Filtered.Load(),
		WriteFailures: s.state.WriteFailures.Load(),
		Rotations:     s.state.Rotations.Load(),
		Rollovers:     s.state.Rollovers.Load(),
		Deletions:     s.state.Deletions.Load(),
		CleanupPasses: s.state.CleanupPasses.Load(),
	}
}
