package kvstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

func init() {
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestStore_SetAndGet(t *testing.T) {
	store := kvstore.New("")

	require.NoError(t, store.Set("records", []record{{ID: 1, Name: "Sai"}}))

	var got []record
	require.True(t, store.Get("records", &got))
	assert.Equal(t, []record{{ID: 1, Name: "Sai"}}, got)
}

func TestStore_MissingKeyLeavesDefault(t *testing.T) {
	store := kvstore.New("")

	got := []record{{ID: 42, Name: "default"}}
	assert.False(t, store.Get("absent", &got))
	assert.Equal(t, []record{{ID: 42, Name: "default"}}, got)
}

func TestStore_SetNilRemoves(t *testing.T) {
	store := kvstore.New("")

	require.NoError(t, store.Set("key", record{ID: 1}))
	require.NoError(t, store.Set("key", nil))

	var got record
	assert.False(t, store.Get("key", &got))
}

func TestStore_Remove(t *testing.T) {
	store := kvstore.New("")

	require.NoError(t, store.Set("key", record{ID: 1}))
	store.Remove("key")

	var got record
	assert.False(t, store.Get("key", &got))

	// Removing an absent key is not an error.
	store.Remove("never-existed")
}

func TestStore_NilReceiver(t *testing.T) {
	var store *kvstore.Store

	assert.NoError(t, store.Set("key", record{ID: 1}))
	store.Remove("key")

	got := record{ID: 7}
	assert.False(t, store.Get("key", &got))
	assert.Equal(t, 7, got.ID)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	store := kvstore.New(path)
	require.NoError(t, store.Set("records", []record{{ID: 1, Name: "Sai"}, {ID: 2, Name: "Rakesh"}}))

	// A fresh store over the same file sees the persisted state.
	reopened := kvstore.New(path)
	var got []record
	require.True(t, reopened.Get("records", &got))
	assert.Len(t, got, 2)
}

func TestStore_CorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := kvstore.New(path)
	var got []record
	assert.False(t, store.Get("records", &got))

	// The store stays usable and overwrites the corrupt file.
	require.NoError(t, store.Set("records", []record{{ID: 1}}))
	reopened := kvstore.New(path)
	assert.True(t, reopened.Get("records", &got))
}
