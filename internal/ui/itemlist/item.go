package itemlist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/theme"
)

// ListItem wraps a model.Item so it can be used in a bubbles/list.
type ListItem struct {
	Item model.Item
}

// FilterValue returns the string used for fuzzy filtering.
func (i ListItem) FilterValue() string { return i.Item.Title }

// Title returns the item title for the list.
func (i ListItem) Title() string { return i.Item.Title }

// Description returns the completion state.
func (i ListItem) Description() string {
	if i.Item.Completed {
		return "packed"
	}
	return "to pack"
}

// ItemDelegate implements list.ItemDelegate for checklist rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single checklist row.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(ListItem)
	if !ok {
		return
	}

	fmt.Fprint(w, renderRow(li.Item, index == m.Index()))
}

func renderRow(it model.Item, selected bool) string {
	box := "[ ]"
	title := it.Title
	if it.Completed {
		box = "[✓]"
		title = theme.DoneStyle.Render(title)
	}

	line := box + " " + title
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}
