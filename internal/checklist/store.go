// Package checklist owns the in-memory item and category collections and
// every mutation on them. Each mutation writes the affected collection
// through the injected Persister before returning.
package checklist

import (
	"context"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nhle/travel-checklist/internal/model"
)

// Persister is the durable side of the Store.
type Persister interface {
	SaveItems(ctx context.Context, items []model.Item) error
	SaveCategories(ctx context.Context, categories []model.Category) error
	LoadItems(ctx context.Context) []model.Item
	LoadCategories(ctx context.Context) []model.Category
}

// Store is the single owner of checklist state. Invalid input never
// fails; the operation is simply not applied, and the boolean results
// report whether anything changed.
type Store struct {
	mu         sync.RWMutex
	saveMu     sync.Mutex // held from snapshot to write; the last write has the newest state
	persister  Persister
	logger     *log.Logger
	newID      func() string
	items      []model.Item
	categories []model.Category
	selected   string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l.WithPrefix("checklist")
		}
	}
}

// WithIDFunc replaces the item id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New loads state through p and returns a ready Store. The first category
// is selected.
func New(ctx context.Context, p Persister, opts ...Option) *Store {
	s := &Store{
		persister: p,
		logger:    log.New(io.Discard),
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	categories := uniqueCategories(s.persister.LoadCategories(ctx))
	if len(categories) == 0 {
		categories = model.DefaultCategories()
	}
	items := uniqueItems(s.persister.LoadItems(ctx))

	restored := restoreMissingCategories(categories, items)
	if len(restored) > len(categories) {
		s.logger.Info("restored categories referenced by stored items",
			"count", len(restored)-len(categories))
	}

	s.categories = restored
	s.items = items
	s.selected = restored[0].ID

	if len(restored) > len(categories) {
		s.saveCategories(ctx)
	}
}

// AddItem appends a new open item to category. Blank titles and unknown
// categories are ignored.
func (s *Store) AddItem(ctx context.Context, title, category string) (model.Item, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Item{}, false
	}

	s.mu.Lock()
	if s.categoryIndex(category) < 0 {
		s.mu.Unlock()
		return model.Item{}, false
	}
	item := model.Item{
		ID:       s.newID(),
		Title:    title,
		Category: category,
	}
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.saveItems(ctx)
	return item, true
}

// RemoveItem deletes the item with id.
func (s *Store) RemoveItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.itemIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.mu.Unlock()

	s.saveItems(ctx)
	return true
}

// ToggleItem flips the completion flag of the item with id.
func (s *Store) ToggleItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.itemIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items[i].Completed = !s.items[i].Completed
	s.mu.Unlock()

	s.saveItems(ctx)
	return true
}

// EditItem replaces the title of the item with id. Blank or unchanged
// titles are ignored.
func (s *Store) EditItem(ctx context.Context, id, newTitle string) bool {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return false
	}

	s.mu.Lock()
	i := s.itemIndex(id)
	if i < 0 || s.items[i].Title == newTitle {
		s.mu.Unlock()
		return false
	}
	s.items[i].Title = newTitle
	s.mu.Unlock()

	s.saveItems(ctx)
	return true
}

// MoveItem re-categorizes the item with id.
func (s *Store) MoveItem(ctx context.Context, id, category string) bool {
	s.mu.Lock()
	i := s.itemIndex(id)
	if i < 0 || s.categoryIndex(category) < 0 || s.items[i].Category == category {
		s.mu.Unlock()
		return false
	}
	s.items[i].Category = category
	s.mu.Unlock()

	s.saveItems(ctx)
	return true
}

// AddCategory appends a category named name and selects it. The id is
// derived from the name; when it collides with an existing category
// nothing is added and the existing category is returned with false.
func (s *Store) AddCategory(ctx context.Context, name string) (model.Category, bool) {
	name = strings.TrimSpace(name)
	id := model.CategoryID(name)
	if id == "" {
		return model.Category{}, false
	}

	s.mu.Lock()
	if i := s.categoryIndex(id); i >= 0 {
		existing := s.categories[i]
		s.mu.Unlock()
		return existing, false
	}
	c := model.Category{ID: id, Name: name}
	s.categories = append(s.categories, c)
	s.selected = id
	s.mu.Unlock()

	s.saveCategories(ctx)
	return c, true
}

// RenameCategory changes the display name of category id. The id, and
// with it every item reference, is unchanged.
func (s *Store) RenameCategory(ctx context.Context, id, newName string) bool {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return false
	}

	s.mu.Lock()
	i := s.categoryIndex(id)
	if i < 0 || s.categories[i].Name == newName {
		s.mu.Unlock()
		return false
	}
	s.categories[i].Name = newName
	s.mu.Unlock()

	s.saveCategories(ctx)
	return true
}

// DeleteCategory removes category id together with all of its items. The
// last remaining category cannot be deleted. When the selected category
// is deleted, the first remaining category becomes selected.
func (s *Store) DeleteCategory(ctx context.Context, id string) bool {
	s.mu.Lock()
	i := s.categoryIndex(id)
	if i < 0 || len(s.categories) <= 1 {
		s.mu.Unlock()
		return false
	}

	items := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.Category != id {
			items = append(items, it)
		}
	}
	categories := slices.Delete(slices.Clone(s.categories), i, i+1)
	selected := s.selected
	if selected == id {
		selected = categories[0].ID
	}

	s.items, s.categories, s.selected = items, categories, selected
	s.mu.Unlock()

	s.saveItems(ctx)
	s.saveCategories(ctx)
	return true
}

// SelectCategory makes id the default category for new items.
func (s *Store) SelectCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryIndex(id) < 0 || s.selected == id {
		return false
	}
	s.selected = id
	return true
}

// Selected returns the selected category id.
func (s *Store) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Items returns a copy of all items in collection order.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Categories returns a copy of all categories in tab order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// Item looks up an item by id.
func (s *Store) Item(id string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.itemIndex(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Category looks up a category by id.
func (s *Store) Category(id string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.categoryIndex(id); i >= 0 {
		return s.categories[i], true
	}
	return model.Category{}, false
}

// itemIndex and categoryIndex expect s.mu to be held.
func (s *Store) itemIndex(id string) int {
	return slices.IndexFunc(s.items, func(it model.Item) bool { return it.ID == id })
}

func (s *Store) categoryIndex(id string) int {
	return slices.IndexFunc(s.categories, func(c model.Category) bool { return c.ID == id })
}

func (s *Store) saveItems(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	items := s.Items()
	if err := s.persister.SaveItems(ctx, items); err != nil {
		s.logger.Warn("items not persisted; continuing in memory", "err", err)
	}
}

func (s *Store) saveCategories(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	categories := s.Categories()
	// An empty collection never overwrites a stored one.
	if len(categories) == 0 {
		return
	}
	if err := s.persister.SaveCategories(ctx, categories); err != nil {
		s.logger.Warn("categories not persisted; continuing in memory", "err", err)
	}
}
