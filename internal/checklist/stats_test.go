package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/travel-checklist/internal/model"
)

func TestCategoryStats(t *testing.T) {
	items := []model.Item{
		{ID: "1", Category: "a", Completed: true},
		{ID: "2", Category: "a", Completed: true},
		{ID: "3", Category: "b", Completed: false},
		{ID: "4", Category: "b", Completed: true},
	}

	tests := []struct {
		category string
		want     model.Stats
	}{
		{category: "a", want: model.Stats{Completed: 2, Total: 2, IsComplete: true}},
		{category: "b", want: model.Stats{Completed: 1, Total: 2, IsComplete: false}},
		{category: "empty", want: model.Stats{Completed: 0, Total: 0, IsComplete: false}},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryStats(items, tt.category))
		})
	}
}

func TestItemsByCategoryKeepsOrder(t *testing.T) {
	items := []model.Item{
		{ID: "3", Category: "a"},
		{ID: "1", Category: "b"},
		{ID: "2", Category: "a"},
	}
	got := ItemsByCategory(items, "a")
	assert.Equal(t, []model.Item{items[0], items[2]}, got)
}

func TestRestoreMissingCategories(t *testing.T) {
	cats := []model.Category{{ID: "clothing", Name: "Clothing"}}
	items := []model.Item{
		{ID: "1", Category: "clothing"},
		{ID: "2", Category: "other"},
		{ID: "3", Category: "beach"},
		{ID: "4", Category: "other"},
	}

	got := restoreMissingCategories(cats, items)

	assert.Equal(t, []model.Category{
		{ID: "clothing", Name: "Clothing"},
		model.FallbackCategory(),
		{ID: "beach", Name: "beach"},
	}, got)
	assert.Len(t, cats, 1, "input untouched")
}

func TestUniqueCollections(t *testing.T) {
	cats := uniqueCategories([]model.Category{{ID: "a"}, {ID: ""}, {ID: "a", Name: "dup"}, {ID: "b"}})
	assert.Equal(t, []model.Category{{ID: "a"}, {ID: "b"}}, cats)

	items := uniqueItems([]model.Item{{ID: "1", Title: "x"}, {ID: "1", Title: "y"}})
	assert.Equal(t, []model.Item{{ID: "1", Title: "x"}}, items)
}
