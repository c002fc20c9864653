// Package persist stores the checklist's item and category collections as
// two independent JSON records in a key-value byte store.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/store"
)

// Record keys.
const (
	ItemsKey      = "travelChecklist"
	CategoriesKey = "travelCategories"
)

// Adapter translates checklist collections to and from a store.KV.
// Loads never fail: missing or corrupt records fall back to defaults.
type Adapter struct {
	kv     store.KV
	logger *log.Logger
}

// New creates an Adapter over kv. A nil logger discards output.
func New(kv store.KV, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{kv: kv, logger: logger.WithPrefix("persist")}
}

// SaveItems overwrites the items record with the full collection.
func (a *Adapter) SaveItems(ctx context.Context, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	return a.write(ctx, ItemsKey, items)
}

// SaveCategories overwrites the categories record with the full collection.
func (a *Adapter) SaveCategories(ctx context.Context, categories []model.Category) error {
	if categories == nil {
		categories = []model.Category{}
	}
	return a.write(ctx, CategoriesKey, categories)
}

// LoadItems returns the stored items, or an empty collection when the
// record is absent or unreadable. Items stored without a category are
// assigned model.FallbackCategoryID.
func (a *Adapter) LoadItems(ctx context.Context) []model.Item {
	var items []model.Item
	if !a.read(ctx, ItemsKey, &items) {
		return []model.Item{}
	}
	if items == nil {
		return []model.Item{}
	}

	migrated := 0
	for i := range items {
		if items[i].Category == "" {
			items[i].Category = model.FallbackCategoryID
			migrated++
		}
	}
	if migrated > 0 {
		a.logger.Info("assigned fallback category to legacy items",
			"count", migrated, "category", model.FallbackCategoryID)
	}
	return items
}

// LoadCategories returns the stored categories, or the seed set when the
// record is absent, unreadable or empty.
func (a *Adapter) LoadCategories(ctx context.Context) []model.Category {
	var categories []model.Category
	if !a.read(ctx, CategoriesKey, &categories) || len(categories) == 0 {
		return model.DefaultCategories()
	}
	return categories
}

func (a *Adapter) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// read decodes the record under key into dst and reports whether a usable
// value was found.
func (a *Adapter) read(ctx context.Context, key string, dst any) bool {
	data, err := a.kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return false
	}
	if err != nil {
		a.logger.Warn("reading record", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		a.logger.Warn("discarding corrupt record", "key", key, "err", err)
		return false
	}
	return true
}
