package models

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countLedgerRows(t *testing.T, cr *CsvRepo, kind SavedKind) int {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(cr.dataDir, kind.fileName()))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	return len(lines) - 1 // minus header
}

func TestToggleSaved_CreatesLedgerAndRow(t *testing.T) {
	cr := newTestRepo(t)

	id, err := cr.ToggleSaved(context.Background(), SavedEvents, "e1", "user1", true)
	require.NoError(t, err)
	assert.Equal(t, "user1-e1", id)

	saved, err := cr.IsSaved(context.Background(), SavedEvents, "e1", "user1")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 1, countLedgerRows(t, cr, SavedEvents))
}

func TestToggleSaved_UpsertsOnRepeat(t *testing.T) {
	cr := newTestRepo(t)
	ctx := context.Background()

	_, err := cr.ToggleSaved(ctx, SavedVenues, "v1", "user1", true)
	require.NoError(t, err)
	_, err = cr.ToggleSaved(ctx, SavedVenues, "v1", "user1", true)
	require.NoError(t, err)
	_, err = cr.ToggleSaved(ctx, SavedVenues, "v1", "user1", false)
	require.NoError(t, err)

	// Unsaving flips the flag in place; the row is never deleted.
	assert.Equal(t, 1, countLedgerRows(t, cr, SavedVenues))

	saved, err := cr.IsSaved(ctx, SavedVenues, "v1", "user1")
	require.NoError(t, err)
	assert.False(t, saved)

	_, err = cr.ToggleSaved(ctx, SavedVenues, "v1", "user1", true)
	require.NoError(t, err)
	saved, err = cr.IsSaved(ctx, SavedVenues, "v1", "user1")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, 1, countLedgerRows(t, cr, SavedVenues))
}

func TestIsSaved_AnswersFalseWithoutSession(t *testing.T) {
	cr := newTestRepo(t)
	ctx := context.Background()

	_, err := cr.ToggleSaved(ctx, SavedHosts, "h1", "user1", true)
	require.NoError(t, err)

	saved, err := cr.IsSaved(ctx, SavedHosts, "h1", "")
	require.NoError(t, err)
	assert.False(t, saved)

	// Missing ledger file is also not an error.
	saved, err = cr.IsSaved(ctx, SavedEvents, "e1", "user1")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestListSaved(t *testing.T) {
	cr := newTestRepo(t)
	ctx := context.Background()

	_, err := cr.ToggleSaved(ctx, SavedEvents, "e1", "user1", true)
	require.NoError(t, err)
	_, err = cr.ToggleSaved(ctx, SavedEvents, "e2", "user1", true)
	require.NoError(t, err)
	_, err = cr.ToggleSaved(ctx, SavedEvents, "e2", "user1", false)
	require.NoError(t, err)
	_, err = cr.ToggleSaved(ctx, SavedEvents, "e3", "user2", true)
	require.NoError(t, err)

	ids, err := cr.ListSaved(ctx, SavedEvents, "user1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, ids)

	ids, err = cr.ListSaved(ctx, SavedEvents, "nobody")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSavedKindsAreIsolated(t *testing.T) {
	cr := newTestRepo(t)
	ctx := context.Background()

	_, err := cr.ToggleSaved(ctx, SavedEvents, "1", "user1", true)
	require.NoError(t, err)

	saved, err := cr.IsSaved(ctx, SavedVenues, "1", "user1")
	require.NoError(t, err)
	assert.False(t, saved)
}
