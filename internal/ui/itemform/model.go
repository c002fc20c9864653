// Package itemform holds the huh forms for adding, renaming and moving a
// checklist item.
package itemform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/theme"
)

// ItemCreatedMsg is dispatched when the add form is submitted.
type ItemCreatedMsg struct {
	Title    string
	Category string
}

// ItemEditedMsg is dispatched when the edit form is submitted.
type ItemEditedMsg struct {
	ID    string
	Title string
}

// ItemMovedMsg is dispatched when the move form is submitted.
type ItemMovedMsg struct {
	ID       string
	Category string
}

// ItemFormCancelMsg is dispatched when the user cancels the form.
type ItemFormCancelMsg struct{}

type formMode int

const (
	modeCreate formMode = iota
	modeEdit
	modeMove
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title    string
	category string
}

// Model is the Bubble Tea model for the item forms.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	mode   formMode
	itemID string
	width  int
	height int
}

// New creates a new item form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for a new item, defaulting the
// category to selected.
func (m *Model) StartCreate(categories []model.Category, selected string) tea.Cmd {
	m.mode = modeCreate
	m.itemID = ""
	m.fb.title = ""
	m.fb.category = selected
	m.form = m.newForm(m.titleField(), m.categoryField(categories))
	return m.form.Init()
}

// StartEdit initializes the form for renaming item.
func (m *Model) StartEdit(item model.Item) tea.Cmd {
	m.mode = modeEdit
	m.itemID = item.ID
	m.fb.title = item.Title
	m.form = m.newForm(m.titleField())
	return m.form.Init()
}

// StartMove initializes the form for re-categorizing item.
func (m *Model) StartMove(item model.Item, categories []model.Category) tea.Cmd {
	m.mode = modeMove
	m.itemID = item.ID
	m.fb.title = item.Title
	m.fb.category = item.Category
	m.form = m.newForm(m.categoryField(categories))
	return m.form.Init()
}

// Update handles messages for the item form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return ItemFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the item form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	var titleText string
	switch m.mode {
	case modeEdit:
		titleText = "Edit Item"
	case modeMove:
		titleText = fmt.Sprintf("Move %q", m.fb.title)
	default:
		titleText = "New Item"
	}

	content := theme.TitleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) newForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) titleField() huh.Field {
	return huh.NewInput().
		Title("Item").
		Placeholder("What do you need to pack?").
		Value(&m.fb.title).
		Validate(validateRequired("Item"))
}

func (m *Model) categoryField(categories []model.Category) huh.Field {
	opts := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		opts[i] = huh.NewOption(model.IconFor(c.ID).Glyph()+" "+c.Name, c.ID)
	}
	return huh.NewSelect[string]().
		Title("Category").
		Options(opts...).
		Value(&m.fb.category)
}

func (m Model) handleSubmit() tea.Cmd {
	fb := *m.fb
	id := m.itemID

	switch m.mode {
	case modeEdit:
		return func() tea.Msg { return ItemEditedMsg{ID: id, Title: fb.title} }
	case modeMove:
		return func() tea.Msg { return ItemMovedMsg{ID: id, Category: fb.category} }
	default:
		return func() tea.Msg { return ItemCreatedMsg{Title: fb.title, Category: fb.category} }
	}
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-4, 10)
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
