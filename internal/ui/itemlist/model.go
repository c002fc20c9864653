// Package itemlist renders the category tabs and the items of the
// selected category.
package itemlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/travel-checklist/internal/checklist"
	"github.com/nhle/travel-checklist/internal/keys"
	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/theme"
)

// tabBarHeight is the tab row plus its top border and a spacer line.
const tabBarHeight = 3

// Model is the main checklist view component.
type Model struct {
	list          list.Model
	store         *checklist.Store
	keys          *keys.KeyMap
	showCompleted bool
	width         int
	height        int
}

// New creates a new checklist view over s.
func New(s *checklist.Store, k *keys.KeyMap, showCompleted bool, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, max(height-tabBarHeight, 1))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	// The root model owns quit, help and the letter keys.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	l.KeyMap.NextPage.SetKeys("pgdown")
	l.KeyMap.PrevPage.SetKeys("pgup")

	m := Model{
		list:          l,
		store:         s,
		keys:          k,
		showCompleted: showCompleted,
		width:         width,
		height:        height,
	}
	m.Refresh()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the checklist view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.NextTab):
			m.shiftTab(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.shiftTab(-1)
			return m, nil
		}
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// shiftTab moves the category selection by delta, wrapping around.
func (m *Model) shiftTab(delta int) {
	categories := m.store.Categories()
	if len(categories) == 0 {
		return
	}
	i := slices.IndexFunc(categories, func(c model.Category) bool {
		return c.ID == m.store.Selected()
	})
	next := (i + delta + len(categories)) % len(categories)
	if m.store.SelectCategory(categories[next].ID) {
		m.list.ResetSelected()
		m.Refresh()
	}
}

// Refresh reloads the rows of the selected category from the store.
func (m *Model) Refresh() {
	items := m.store.ItemsByCategory(m.store.Selected())
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		if it.Completed && !m.showCompleted {
			continue
		}
		rows = append(rows, ListItem{Item: it})
	}
	m.list.SetItems(rows)
	if n := len(rows); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// ToggleShowCompleted flips whether packed items are listed and returns
// the new setting.
func (m *Model) ToggleShowCompleted() bool {
	m.showCompleted = !m.showCompleted
	m.Refresh()
	return m.showCompleted
}

// SelectedItem returns the item under the cursor.
func (m Model) SelectedItem() (model.Item, bool) {
	li, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return model.Item{}, false
	}
	return li.Item, true
}

// View renders the tab bar above the item list.
func (m Model) View() string {
	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = m.renderEmptyState()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), "", body)
}

// renderTabs draws one tab per category with its completed/total badge.
func (m Model) renderTabs() string {
	selected := m.store.Selected()
	var tabs []string
	for _, c := range m.store.Categories() {
		tabs = append(tabs, renderTab(c, m.store.CategoryStats(c.ID), c.ID == selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func renderTab(c model.Category, s model.Stats, active bool) string {
	badge := fmt.Sprintf("%d/%d", s.Completed, s.Total)
	if s.IsComplete {
		badge += " ✓"
	}
	label := fmt.Sprintf("%s %s %s",
		model.IconFor(c.ID).Glyph(),
		c.Name,
		theme.BadgeStyle(s.Completed, s.Total).Render(badge),
	)
	if active {
		return theme.ActiveTabStyle.Render(label)
	}
	return theme.TabStyle.Render(label)
}

// renderEmptyState shows guidance text when the category has no rows.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(max(m.height-tabBarHeight, 1)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	name := m.store.Selected()
	if c, ok := m.store.Category(name); ok {
		name = c.Name
	}

	var b strings.Builder
	if m.store.CategoryStats(m.store.Selected()).Total > 0 {
		b.WriteString("Everything in " + name + " is packed.\n\n")
		b.WriteString("Press H to show packed items.")
	} else {
		b.WriteString("Nothing in " + name + " yet.\n\n")
		b.WriteString("Press n to add an item, or : to quick add.")
	}
	return style.Render(b.String())
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-tabBarHeight, 1))
}
