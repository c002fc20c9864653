package checklist

import "github.com/nhle/travel-checklist/internal/model"

// restoreMissingCategories returns categories extended with one entry for
// every category id referenced by items but not present, in order of
// first reference. The input slice is not modified.
func restoreMissingCategories(categories []model.Category, items []model.Item) []model.Category {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	out := categories
	for _, it := range items {
		if known[it.Category] {
			continue
		}
		known[it.Category] = true

		c := model.Category{ID: it.Category, Name: it.Category}
		if it.Category == model.FallbackCategoryID {
			c = model.FallbackCategory()
		}
		if len(out) == len(categories) {
			out = append(make([]model.Category, 0, len(categories)+1), categories...)
		}
		out = append(out, c)
	}
	return out
}

// uniqueCategories drops later entries that repeat an earlier id, and
// entries with an empty id.
func uniqueCategories(categories []model.Category) []model.Category {
	seen := make(map[string]bool, len(categories))
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out
}

// uniqueItems drops later entries that repeat an earlier id.
func uniqueItems(items []model.Item) []model.Item {
	seen := make(map[string]bool, len(items))
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}
