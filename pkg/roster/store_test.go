package roster

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotation", "rosters.yaml")

	store, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, store.Rosters)

	require.NoError(t, store.Save("pigs", []string{"Ari", "Bo", "Cam", "Dee", "Em"}))

	// A fresh Open sees the saved roster.
	store, err = Open(path)
	require.NoError(t, err)

	players, err := store.Get("pigs")
	require.NoError(t, err)
	assert.Len(t, players, 5)
	assert.Equal(t, "Ari", players[0].Name)
	assert.Equal(t, 5, players[4].Number)
}

func TestStoreRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosters.yaml")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("pigs", []string{"Ari", "Bo"}))

	require.NoError(t, store.Remove("pigs"))
	assert.ErrorIs(t, store.Remove("pigs"), ErrRosterNotFound)

	_, err = store.Get("pigs")
	assert.ErrorIs(t, err, ErrRosterNotFound)
}

func TestStoreGetUnknown(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "rosters.yaml"))
	require.NoError(t, err)

	_, err = store.Get("nobody")
	assert.ErrorIs(t, err, ErrRosterNotFound)
}
