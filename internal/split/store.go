package split

import "github.com/1broseidon/splitd/internal/platform"

// Store maps window handles to their tracked properties. Entries are created
// lazily and never removed. It is not safe for concurrent use; the event loop
// owns it exclusively.
type Store struct {
	entries map[platform.WindowID]Properties
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[platform.WindowID]Properties)}
}

// Lookup returns the entry for id, if any.
func (s *Store) Lookup(id platform.WindowID) (Properties, bool) {
	p, ok := s.entries[id]
	return p, ok
}

// Upsert replaces the entry for id.
func (s *Store) Upsert(id platform.WindowID, p Properties) {
	s.entries[id] = p
}

// Len returns the number of tracked windows.
func (s *Store) Len() int {
	return len(s.entries)
}

// Snapshot returns a copy of every entry.
func (s *Store) Snapshot() map[platform.WindowID]Properties {
	out := make(map[platform.WindowID]Properties, len(s.entries))
	for id, p := range s.entries {
		out[id] = p
	}
	return out
}
