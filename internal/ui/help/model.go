package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/travel-checklist/internal/keys"
	"github.com/nhle/travel-checklist/internal/theme"
)

// paletteVerbs documents what the quick-add palette understands.
var paletteVerbs = [][2]string{
	{"<text>", "add an item; the category is guessed from the words"},
	{"add <text>", "same, explicitly"},
	{"cat <name>", "add a category"},
	{"quit", "exit"},
}

// Model is the keyboard shortcut overlay.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	h.ShowAll = true
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	var verbs strings.Builder
	for _, v := range paletteVerbs {
		verbs.WriteString(lipgloss.NewStyle().Bold(true).Width(14).Render(v[0]))
		verbs.WriteString(theme.HelpStyle.Render(v[1]))
		verbs.WriteString("\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.TitleStyle.Render("Keyboard Shortcuts"),
		m.help.View(m.keys),
		"",
		theme.TitleStyle.Render("Quick Add (:)"),
		verbs.String(),
	)

	return theme.PanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
