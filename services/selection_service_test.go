package services

import (
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectionService() *SelectionService {
	return NewSelectionService(gecho.NewDefaultLogger())
}

func TestToggle(t *testing.T) {
	ss := newSelectionService()
	session := ss.Create()

	selected, err := ss.Toggle(session, 1)
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = ss.Toggle(session, 1)
	require.NoError(t, err)
	assert.False(t, selected)

	ids, err := ss.Snapshot(session)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleAll(t *testing.T) {
	page := []int{1, 2, 3}

	t.Run("NoneSelectedSelectsWholePage", func(t *testing.T) {
		ss := newSelectionService()
		session := ss.Create()

		ids, err := ss.ToggleAll(session, page)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("PartialSelectionReplacesWithPage", func(t *testing.T) {
		ss := newSelectionService()
		session := ss.Create()

		// One id from the page plus one from elsewhere.
		_, err := ss.Toggle(session, 2)
		require.NoError(t, err)
		_, err = ss.Toggle(session, 42)
		require.NoError(t, err)

		ids, err := ss.ToggleAll(session, page)
		require.NoError(t, err)
		// The off-page selection is discarded.
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("AllSelectedClearsEverything", func(t *testing.T) {
		ss := newSelectionService()
		session := ss.Create()

		_, err := ss.ToggleAll(session, page)
		require.NoError(t, err)

		// Extra selection from another page is cleared too.
		_, err = ss.Toggle(session, 42)
		require.NoError(t, err)

		ids, err := ss.ToggleAll(session, page)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestAllSelected(t *testing.T) {
	ss := newSelectionService()
	session := ss.Create()
	page := []int{1, 2}

	all, err := ss.AllSelected(session, page)
	require.NoError(t, err)
	assert.False(t, all)

	_, err = ss.ToggleAll(session, page)
	require.NoError(t, err)

	all, err = ss.AllSelected(session, page)
	require.NoError(t, err)
	assert.True(t, all)

	// The header checkbox is computed against the rendered page only:
	// a different page reports unchecked even though ids stay selected.
	all, err = ss.AllSelected(session, []int{3, 4})
	require.NoError(t, err)
	assert.False(t, all)

	ids, err := ss.Snapshot(session)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)
}

func TestClear(t *testing.T) {
	ss := newSelectionService()
	session := ss.Create()

	_, err := ss.ToggleAll(session, []int{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, ss.Clear(session))

	ids, err := ss.Snapshot(session)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUnknownSession(t *testing.T) {
	ss := newSelectionService()
	unknown := uuid.New()

	_, err := ss.Toggle(unknown, 1)
	assert.ErrorIs(t, err, ErrSelectionNotFound)

	_, err = ss.ToggleAll(unknown, []int{1})
	assert.ErrorIs(t, err, ErrSelectionNotFound)

	assert.ErrorIs(t, ss.Clear(unknown), ErrSelectionNotFound)

	_, err = ss.Snapshot(unknown)
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}
