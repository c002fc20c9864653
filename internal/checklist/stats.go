package checklist

import "github.com/nhle/travel-checklist/internal/model"

// ItemsByCategory returns the items in category, in collection order.
func ItemsByCategory(items []model.Item, categoryID string) []model.Item {
	var out []model.Item
	for _, it := range items {
		if it.Category == categoryID {
			out = append(out, it)
		}
	}
	return out
}

// CategoryStats counts completion within category.
func CategoryStats(items []model.Item, categoryID string) model.Stats {
	return countStats(ItemsByCategory(items, categoryID))
}

// GlobalStats counts completion across all items.
func GlobalStats(items []model.Item) model.Stats {
	return countStats(items)
}

func countStats(items []model.Item) model.Stats {
	completed := 0
	for _, it := range items {
		if it.Completed {
			completed++
		}
	}
	return model.NewStats(completed, len(items))
}

// ItemsByCategory returns the current items of category.
func (s *Store) ItemsByCategory(categoryID string) []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ItemsByCategory(s.items, categoryID)
}

// CategoryStats returns completion counts for category.
func (s *Store) CategoryStats(categoryID string) model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CategoryStats(s.items, categoryID)
}

// GlobalStats returns completion counts across all items.
func (s *Store) GlobalStats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GlobalStats(s.items)
}
