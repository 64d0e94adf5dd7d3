package services

import (
	"errors"
	"sort"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ErrSelectionNotFound is returned for unknown session ids.
var ErrSelectionNotFound = errors.New("selection session not found")

// SelectionService tracks which record ids are selected per dashboard
// session. Selection survives pagination and filter changes; toggleAll
// only ever looks at the ids of the currently rendered page.
type SelectionService struct {
	logger   *gecho.Logger
	mu       sync.Mutex
	sessions map[uuid.UUID]map[int]struct{}
}

func NewSelectionService(logger *gecho.Logger) *SelectionService {
	return &SelectionService{
		logger:   logger,
		sessions: make(map[uuid.UUID]map[int]struct{}),
	}
}

// Create opens a new, empty selection session.
func (ss *SelectionService) Create() uuid.UUID {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	id := uuid.New()
	ss.sessions[id] = make(map[int]struct{})

	ss.logger.Debug("Selection session created", gecho.Field("session", id))
	return id
}

// Toggle flips membership of a single record id and reports whether it
// is selected afterwards.
func (ss *SelectionService) Toggle(session uuid.UUID, id int) (bool, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	set, ok := ss.sessions[session]
	if !ok {
		return false, ErrSelectionNotFound
	}

	if _, selected := set[id]; selected {
		delete(set, id)
		return false, nil
	}
	set[id] = struct{}{}
	return true, nil
}

// ToggleAll implements the header checkbox: when every id of the
// current page is already selected the whole selection is cleared,
// otherwise the selection becomes exactly the current page's ids —
// selections made on other pages are discarded.
func (ss *SelectionService) ToggleAll(session uuid.UUID, pageIDs []int) ([]int, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	set, ok := ss.sessions[session]
	if !ok {
		return nil, ErrSelectionNotFound
	}

	if len(pageIDs) > 0 && allSelected(set, pageIDs) {
		ss.sessions[session] = make(map[int]struct{})
		return []int{}, nil
	}

	replacement := make(map[int]struct{}, len(pageIDs))
	for _, id := range pageIDs {
		replacement[id] = struct{}{}
	}
	ss.sessions[session] = replacement

	return sortedIDs(replacement), nil
}

// Clear empties the session's selection.
func (ss *SelectionService) Clear(session uuid.UUID) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if _, ok := ss.sessions[session]; !ok {
		return ErrSelectionNotFound
	}
	ss.sessions[session] = make(map[int]struct{})
	return nil
}

// Snapshot returns the selected ids in ascending order.
func (ss *SelectionService) Snapshot(session uuid.UUID) ([]int, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	set, ok := ss.sessions[session]
	if !ok {
		return nil, ErrSelectionNotFound
	}
	return sortedIDs(set), nil
}

// AllSelected reports the checked state of the header checkbox for the
// given page.
func (ss *SelectionService) AllSelected(session uuid.UUID, pageIDs []int) (bool, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	set, ok := ss.sessions[session]
	if !ok {
		return false, ErrSelectionNotFound
	}
	return len(pageIDs) > 0 && allSelected(set, pageIDs), nil
}

func allSelected(set map[int]struct{}, ids []int) bool {
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
