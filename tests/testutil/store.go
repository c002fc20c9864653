package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/nhle/travel-checklist/internal/checklist"
	"github.com/nhle/travel-checklist/internal/persist"
	"github.com/nhle/travel-checklist/internal/store"
)

// NewTestKV creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestKV(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// SequentialIDs returns an id generator yielding "item-1", "item-2", ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

// NewTestChecklist returns a Store over kv with deterministic item ids.
// A nil kv gets a fresh in-memory SQLite database.
func NewTestChecklist(t *testing.T, kv store.KV) *checklist.Store {
	t.Helper()

	if kv == nil {
		kv = NewTestKV(t)
	}
	return checklist.New(
		context.Background(),
		persist.New(kv, nil),
		checklist.WithIDFunc(SequentialIDs()),
	)
}
