package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/travel-checklist/internal/model"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()

	sq, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]KV{
		"sqlite":  sq,
		"memory":  NewMemoryStore(),
		"keyring": NewKeyringStoreWith(keyring.NewArrayKeyring(nil)),
	}
}

func TestKVContract(t *testing.T) {
	ctx := context.Background()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Set(ctx, "travelChecklist", []byte(`[{"id":"1"}]`)))
			got, err := kv.Get(ctx, "travelChecklist")
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"1"}]`, string(got))

			// Overwrite is idempotent and replaces the whole value.
			require.NoError(t, kv.Set(ctx, "travelChecklist", []byte(`[]`)))
			require.NoError(t, kv.Set(ctx, "travelChecklist", []byte(`[]`)))
			got, err = kv.Get(ctx, "travelChecklist")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(got))

			require.NoError(t, kv.Delete(ctx, "travelChecklist"))
			_, err = kv.Get(ctx, "travelChecklist")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, kv.Delete(ctx, "travelChecklist"), "deleting an absent key")
		})
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "checklist.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "travelCategories", []byte(`[{"id":"snacks","name":"Snacks"}]`)))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Get(ctx, "travelCategories")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"snacks","name":"Snacks"}]`, string(got))

	v, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)
}

func TestOpen(t *testing.T) {
	kv, err := Open(model.StorageConfig{Backend: model.BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)

	kv, err = Open(model.StorageConfig{
		Backend: model.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "c.db"),
	})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open(model.StorageConfig{Backend: "redis"})
	assert.Error(t, err)
}

func TestSQLiteSetKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	v, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, s.Set(ctx, "travelChecklist", []byte(`[]`)))
	var first string
	require.NoError(t, s.db.GetContext(ctx, &first, "SELECT created_at FROM kv WHERE key = ?", "travelChecklist"))

	require.NoError(t, s.Set(ctx, "travelChecklist", []byte(`[{"id":"a"}]`)))
	var again string
	require.NoError(t, s.db.GetContext(ctx, &again, "SELECT created_at FROM kv WHERE key = ?", "travelChecklist"))
	assert.Equal(t, first, again)
}
