package categorymgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/travel-checklist/internal/checklist"
	"github.com/nhle/travel-checklist/internal/keys"
	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/theme"
)

// CategoryListCloseMsg signals the parent to close the category view.
type CategoryListCloseMsg struct{}

// CategoryChangedMsg signals that categories were modified.
type CategoryChangedMsg struct{}

type categoryMode int

const (
	modeList categoryMode = iota
	modeForm
	modeConfirmDelete
)

type formBindings struct {
	name    string
	confirm bool
}

// categoryResultMsg carries the outcome of an add, rename or delete.
type categoryResultMsg struct {
	status string
}

// Model is the Bubble Tea model for category management.
type Model struct {
	mode        categoryMode
	store       *checklist.Store
	keys        *keys.KeyMap
	categories  []model.Category
	selectedIdx int
	editingID   string
	isNew       bool
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	statusMsg   string
	width       int
	height      int
}

// New creates a new category manager model.
func New(s *checklist.Store, k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:  modeList,
		store: s,
		keys:  k,
		fb:    &formBindings{},
		width: width, height: height,
	}
}

// Init loads categories from the store and resets the view.
func (m *Model) Init() tea.Cmd {
	m.mode = modeList
	m.statusMsg = ""
	m.reload()
	return nil
}

func (m *Model) reload() {
	m.categories = m.store.Categories()
	if m.selectedIdx >= len(m.categories) {
		m.selectedIdx = max(len(m.categories)-1, 0)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case categoryResultMsg:
		m.statusMsg = msg.status
		m.mode = modeList
		m.reload()
		return m, func() tea.Msg { return CategoryChangedMsg{} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CategoryListCloseMsg{} }

	case key.Matches(msg, m.keys.Down):
		if len(m.categories) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.categories)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.categories) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.categories) - 1
			}
		}
		return m, nil

	case msg.String() == "enter":
		if len(m.categories) > 0 {
			m.store.SelectCategory(m.categories[m.selectedIdx].ID)
		}
		return m, func() tea.Msg { return CategoryListCloseMsg{} }

	case msg.String() == "n":
		m.isNew = true
		m.editingID = ""
		m.fb.name = ""
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case msg.String() == "e" || msg.String() == "r":
		if len(m.categories) == 0 {
			return m, nil
		}
		c := m.categories[m.selectedIdx]
		m.isNew = false
		m.editingID = c.ID
		m.fb.name = c.Name
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case msg.String() == "d":
		if len(m.categories) <= 1 {
			m.statusMsg = "At least one category is required"
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m Model) buildForm() *huh.Form {
	title := "Rename category"
	if m.isNew {
		title = "New category"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("e.g. Snacks").
				Value(&m.fb.name).
				Validate(func(s string) error {
					if model.CategoryID(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm() *huh.Form {
	c := m.categories[m.selectedIdx]
	count := m.store.CategoryStats(c.ID).Total

	desc := "It has no items."
	if count == 1 {
		desc = "Its 1 item will be removed too."
	} else if count > 1 {
		desc = fmt.Sprintf("Its %d items will be removed too.", count)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete category %q?", c.Name)).
				Description(desc).
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m, m.saveCategory()
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		return m, nil
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	if m.confirmForm.State == huh.StateCompleted {
		if m.fb.confirm {
			return m, m.deleteCategory(m.categories[m.selectedIdx])
		}
		m.mode = modeList
		return m, nil
	}
	if m.confirmForm.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

// View renders the category manager.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Categories"))
	b.WriteString("\n\n")

	for i, c := range m.categories {
		s := m.store.CategoryStats(c.ID)
		label := fmt.Sprintf("%s  %s  %s",
			model.IconFor(c.ID).Glyph(),
			c.Name,
			theme.BadgeStyle(s.Completed, s.Total).Render(fmt.Sprintf("%d/%d", s.Completed, s.Total)),
		)

		if i == m.selectedIdx {
			b.WriteString(theme.SelectedItemStyle.Render(label))
		} else {
			b.WriteString(theme.ListItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMessageStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorGray).Render(
		"enter select | n new | e rename | d delete | esc back",
	))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) viewForm(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(f.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-4, 10)
}

func (m Model) saveCategory() tea.Cmd {
	s := m.store
	name := m.fb.name
	editID := m.editingID
	isNew := m.isNew
	return func() tea.Msg {
		ctx := context.Background()
		if isNew {
			c, ok := s.AddCategory(ctx, name)
			if !ok {
				return categoryResultMsg{status: fmt.Sprintf("Category %q already exists", c.Name)}
			}
			return categoryResultMsg{status: fmt.Sprintf("Added %q", c.Name)}
		}
		if !s.RenameCategory(ctx, editID, name) {
			return categoryResultMsg{status: "Name unchanged"}
		}
		return categoryResultMsg{status: "Category renamed"}
	}
}

func (m Model) deleteCategory(c model.Category) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if !s.DeleteCategory(context.Background(), c.ID) {
			return categoryResultMsg{status: "At least one category is required"}
		}
		return categoryResultMsg{status: fmt.Sprintf("Deleted %q", c.Name)}
	}
}
