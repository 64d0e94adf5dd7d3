// Package store holds the full in-memory product record set. The set is
// loaded whole from the upstream catalog and replaced wholesale on every
// refetch; nothing here is persisted.
package store

import (
	"log"
	"masterpos_server/structs"
	"sync"
	"time"
)

type Store struct {
	mu       sync.RWMutex
	records  []structs.Product
	loadedAt time.Time
}

var instance *Store

func New() *Store {
	return &Store{}
}

// Initialize sets up the global store instance.
func Initialize() {
	instance = New()
}

// GetInstance returns the global store instance.
// This is the primary way to access the record set throughout the application.
func GetInstance() *Store {
	if instance == nil {
		log.Fatal("Store instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// Replace swaps in a freshly fetched record set.
func (s *Store) Replace(records []structs.Product) {
	copied := make([]structs.Product, len(records))
	copy(copied, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = copied
	s.loadedAt = time.Now()
}

// Snapshot returns a copy of the current record set. Callers may filter
// and sort it freely without holding any lock.
func (s *Store) Snapshot() []structs.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]structs.Product, len(s.records))
	copy(copied, s.records)
	return copied
}

// Get looks a record up by id.
func (s *Store) Get(id int) (structs.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.records {
		if p.ID == id {
			return p, true
		}
	}
	return structs.Product{}, false
}

// RemoveIDs drops the matching records from the set and returns how
// many were removed. This is the bulk-delete path; it does not touch
// the upstream catalog, so the next full refetch restores the records.
func (s *Store) RemoveIDs(ids []int) int {
	if len(ids) == 0 {
		return 0
	}

	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	removed := 0
	for _, p := range s.records {
		if _, ok := drop[p.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.records = kept
	return removed
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// LoadedAt returns when the set was last replaced; zero when no fetch
// has succeeded yet.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
