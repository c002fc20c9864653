// Package command is the quick-add palette. Free text is treated as a
// dictated item; a few verbs do other things.
package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/travel-checklist/internal/theme"
)

// Verb is the action a palette entry requests.
type Verb int

const (
	// VerbAdd adds Arg as an item through the input normalizer.
	VerbAdd Verb = iota
	// VerbCategory adds a category named Arg.
	VerbCategory
	// VerbQuit exits the program.
	VerbQuit
)

// CommandMsg is emitted when the user executes a command.
type CommandMsg struct {
	Verb Verb
	Arg  string
}

// Parse turns palette input into a command. Input without a known verb
// is an item to add. It reports false for blank input or a verb that is
// missing its argument.
func Parse(input string) (CommandMsg, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return CommandMsg{}, false
	}

	verb, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "quit", "q", "exit":
		return CommandMsg{Verb: VerbQuit}, true
	case "add":
		return CommandMsg{Verb: VerbAdd, Arg: rest}, rest != ""
	case "cat", "category":
		return CommandMsg{Verb: VerbCategory, Arg: rest}, rest != ""
	default:
		return CommandMsg{Verb: VerbAdd, Arg: input}, true
	}
}

// Model is the quick-add palette view.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "pack the phone charger · cat Snacks · quit"
	ti.Prompt = ": "
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		cmd, ok := Parse(m.input.Value())
		m.input.Reset()
		if ok {
			return m, func() tea.Msg { return cmd }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the palette.
func (m Model) View() string {
	title := theme.TitleStyle.Render("Quick Add")
	hint := theme.HelpStyle.Render("Say or type an item; the category is picked from the words.")

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.input.View(), "", hint)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	m.input.Reset()
	return m.input.Focus()
}
