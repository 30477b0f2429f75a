// Package prefs keeps per-session station-selection preferences: which
// stations a user wants shown in their trip list. State lives in process
// memory for the lifetime of the session; there is no persistence.
package prefs

import (
	"errors"
	"sync"

	"stationator.nl/internal/stations"
)

// ErrUnknownStation is returned when a preference update names a station
// that is not in the directory.
var ErrUnknownStation = errors.New("prefs: unknown station code")

// Store holds station selections keyed by session ID. Filtering by
// selection is a presentation concern; the aggregator never sees it.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]map[string]bool
}

// NewStore creates an empty preference store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]map[string]bool)}
}

// defaultSelection mirrors the original commute setup: Amsterdam Centraal
// is off by default, the other stations on.
func defaultSelection() map[string]bool {
	return map[string]bool{
		"asd":  false,
		"asdz": true,
		"gvc":  true,
		"laa":  true,
	}
}

// Get returns the station selection for a session, initializing it with
// the defaults on first use. The returned map is a copy.
func (s *Store) Get(session string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	selection, ok := s.sessions[session]
	if !ok {
		selection = defaultSelection()
		s.sessions[session] = selection
	}

	copied := make(map[string]bool, len(selection))
	for code, included := range selection {
		copied[code] = included
	}
	return copied
}

// Set updates one station's inclusion for a session, initializing the
// session with defaults first if needed.
func (s *Store) Set(session, code string, included bool) error {
	station, ok := stations.Lookup(code)
	if !ok {
		return ErrUnknownStation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	selection, ok := s.sessions[session]
	if !ok {
		selection = defaultSelection()
		s.sessions[session] = selection
	}
	selection[station.Code] = included
	return nil
}
