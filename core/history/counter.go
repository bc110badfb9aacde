package history

import (
	"encoding/json"
	"sort"
)

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the tally for the key, zero if never seen.
func (s StrCounter) Count(key string) int {
	return s.internal[key]
}

// Len returns the number of distinct keys.
func (s StrCounter) Len() int {
	return len(s.internal)
}

// Entry is one counted key.
type Entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Entries returns all keys ordered by descending count, ties broken by name
// so the ordering is deterministic.
func (s StrCounter) Entries() []Entry {
	entries := make([]Entry, 0, len(s.internal))
	for name, count := range s.internal {
		entries = append(entries, Entry{Name: name, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Top returns the n entries with the highest counts.
func (s StrCounter) Top(n int) []Entry {
	entries := s.Entries()
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// MarshalJSON implements a custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return json.Marshal(map[string]int{})
	}
	return json.Marshal(s.internal)
}
