// Package override holds the standing manual priority overrides set by the
// operator. The store is process-wide mutable state shared between refresh
// cycles: initialized empty at startup, mutated only through Set and Clear,
// and snapshotted at the start of each evaluation so a concurrent edit
// cannot produce a partially-applied override.
package override

import (
	"sync"
	"time"

	"github.com/railops/sectionctl/core/events"
	"github.com/railops/sectionctl/internal/eventbus"
)

// Store maps trip IDs to overridden priority values. Overrides are keyed by
// trip ID, not by row snapshot, so they keep applying when a train's delay
// or clearance changes between refreshes, and they are retained for trains
// absent from the current table.
type Store struct {
	mu         sync.RWMutex
	priorities map[string]int
	bus        *eventbus.Bus[events.OverrideChanged]
}

// NewStore creates an empty Store. The bus is optional; when non-nil every
// mutation is published on it.
func NewStore(bus *eventbus.Bus[events.OverrideChanged]) *Store {
	return &Store{priorities: make(map[string]int), bus: bus}
}

// Set records a priority override for the given trip ID, replacing any
// previous value. The trip ID does not have to exist in the current train
// table; the train may reappear in a later cycle.
func (s *Store) Set(tripID string, priority int) {
	s.mu.Lock()
	s.priorities[tripID] = priority
	s.mu.Unlock()
	if s.bus != nil {
		s.bus.Publish(events.OverrideChanged{TripID: tripID, Priority: priority, Time: time.Now()})
	}
}

// Clear removes the override for the given trip ID, if any.
func (s *Store) Clear(tripID string) {
	s.mu.Lock()
	delete(s.priorities, tripID)
	s.mu.Unlock()
	if s.bus != nil {
		s.bus.Publish(events.OverrideChanged{TripID: tripID, Cleared: true, Time: time.Now()})
	}
}

// Snapshot returns a copy of the current overrides. Each evaluation cycle
// takes one snapshot up front and works from it for the whole cycle.
func (s *Store) Snapshot() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make(map[string]int, len(s.priorities))
	for k, v := range s.priorities {
		cp[k] = v
	}
	return cp
}

// Len returns the number of standing overrides.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.priorities)
}
