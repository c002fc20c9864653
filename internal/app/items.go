package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/normalize"
)

// checklistChangedMsg is sent after a store operation; status is shown in
// the status bar.
type checklistChangedMsg struct {
	status string
}

// addItem adds a new open item to category.
func (m *Model) addItem(title, category string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		item, ok := s.AddItem(context.Background(), title, category)
		if !ok {
			return checklistChangedMsg{status: "Nothing added"}
		}
		return checklistChangedMsg{status: fmt.Sprintf("Added %q", item.Title)}
	}
}

// quickAdd cleans dictated text, picks a category for it and adds the
// item there. The chosen category becomes selected.
func (m *Model) quickAdd(transcript string) tea.Cmd {
	s := m.store
	logger := m.logger
	return func() tea.Msg {
		ctx := context.Background()
		res := normalize.Normalize(transcript, s.Categories(), s.Selected())
		logger.Debug("quick add", "transcript", transcript, "title", res.Title, "category", res.Category)

		item, ok := s.AddItem(ctx, res.Title, res.Category)
		if !ok {
			return checklistChangedMsg{status: "Nothing added"}
		}
		s.SelectCategory(item.Category)

		name := item.Category
		if c, ok := s.Category(item.Category); ok {
			name = c.Name
		}
		return checklistChangedMsg{status: fmt.Sprintf("Added %q to %s", item.Title, name)}
	}
}

// toggleItem checks off or reopens item.
func (m *Model) toggleItem(item model.Item) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if !s.ToggleItem(context.Background(), item.ID) {
			return checklistChangedMsg{}
		}
		if item.Completed {
			return checklistChangedMsg{status: fmt.Sprintf("Unpacked %q", item.Title)}
		}
		return checklistChangedMsg{status: fmt.Sprintf("Packed %q", item.Title)}
	}
}

// removeItem deletes item.
func (m *Model) removeItem(item model.Item) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if !s.RemoveItem(context.Background(), item.ID) {
			return checklistChangedMsg{}
		}
		return checklistChangedMsg{status: fmt.Sprintf("Removed %q", item.Title)}
	}
}

// editItem renames the item with id.
func (m *Model) editItem(id, title string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if !s.EditItem(context.Background(), id, title) {
			return checklistChangedMsg{status: "Item unchanged"}
		}
		return checklistChangedMsg{status: "Item updated"}
	}
}

// moveItem re-categorizes the item with id.
func (m *Model) moveItem(id, category string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if !s.MoveItem(context.Background(), id, category) {
			return checklistChangedMsg{status: "Item not moved"}
		}
		name := category
		if c, ok := s.Category(category); ok {
			name = c.Name
		}
		return checklistChangedMsg{status: "Moved to " + name}
	}
}

// addCategory creates a category from the palette and selects it.
func (m *Model) addCategory(name string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		c, ok := s.AddCategory(context.Background(), name)
		if !ok {
			if c.ID == "" {
				return checklistChangedMsg{status: "Category name can't be blank"}
			}
			s.SelectCategory(c.ID)
			return checklistChangedMsg{status: fmt.Sprintf("Category %q already exists", c.Name)}
		}
		return checklistChangedMsg{status: fmt.Sprintf("Added category %q", c.Name)}
	}
}
