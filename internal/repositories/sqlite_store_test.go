package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer store.Close()

	_, found, err := store.Load("pocket-cfo-store")
	require.NoError(t, err)
	assert.False(t, found, "fresh store has no snapshot")

	require.NoError(t, store.Save("pocket-cfo-store", []byte(`{"schema_version":1}`)))

	data, found, err := store.Load("pocket-cfo-store")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"schema_version":1}`, string(data))
}

func TestSQLiteStoreOverwrites(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("k", []byte(`{"v":1}`)))
	require.NoError(t, store.Save("k", []byte(`{"v":2}`)))

	data, found, err := store.Load("k")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"v":2}`, string(data))
}

func TestSQLiteStoreSeparateKeys(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save("a", []byte(`{"v":"a"}`)))
	require.NoError(t, store.Save("b", []byte(`{"v":"b"}`)))

	data, found, err := store.Load("a")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"v":"a"}`, string(data))
}
