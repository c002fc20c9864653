package app

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/travel-checklist/internal/checklist"
	"github.com/nhle/travel-checklist/internal/keys"
	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/ui"
	"github.com/nhle/travel-checklist/internal/ui/categorymgr"
	"github.com/nhle/travel-checklist/internal/ui/command"
	helpview "github.com/nhle/travel-checklist/internal/ui/help"
	"github.com/nhle/travel-checklist/internal/ui/itemform"
	"github.com/nhle/travel-checklist/internal/ui/itemlist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewHelp
	ViewCommand
	ViewItemCreate
	ViewItemEdit
	ViewItemMove
	ViewCategories
)

// Model is the root Bubble Tea model that manages view routing and
// layout over the checklist store.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        *checklist.Store
	keys         *keys.KeyMap
	logger       *log.Logger
	itemList     itemlist.Model
	helpView     helpview.Model
	commandView  command.Model
	itemForm     itemform.Model
	categoryView categorymgr.Model
	statusMsg    string
	ready        bool
}

// New creates a new root application model over s. A nil logger
// discards output.
func New(s *checklist.Store, display model.DisplayConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	k := keys.DefaultKeyMap()

	return Model{
		currentView:  ViewList,
		store:        s,
		keys:         k,
		logger:       logger.WithPrefix("ui"),
		itemList:     itemlist.New(s, k, display.ShowCompleted, 80, 24),
		helpView:     helpview.New(k, 80, 24),
		commandView:  command.New(80, 24),
		itemForm:     itemform.New(80, 24),
		categoryView: categorymgr.New(s, k, 80, 24),
	}
}

// SetStatus shows msg in the status bar until the next action.
func (m *Model) SetStatus(msg string) {
	m.statusMsg = msg
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.itemList.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.itemList.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		m.itemForm.SetSize(contentWidth, contentHeight)
		m.categoryView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case checklistChangedMsg:
		m.itemList.Refresh()
		if msg.status != "" {
			m.statusMsg = msg.status
		}
		return m, nil

	case itemform.ItemCreatedMsg:
		m.currentView = ViewList
		return m, m.addItem(msg.Title, msg.Category)

	case itemform.ItemEditedMsg:
		m.currentView = ViewList
		return m, m.editItem(msg.ID, msg.Title)

	case itemform.ItemMovedMsg:
		m.currentView = ViewList
		return m, m.moveItem(msg.ID, msg.Category)

	case itemform.ItemFormCancelMsg:
		m.currentView = ViewList
		return m, nil

	case categorymgr.CategoryListCloseMsg:
		m.currentView = ViewList
		m.itemList.Refresh()
		return m, nil

	case categorymgr.CategoryChangedMsg:
		m.itemList.Refresh()
		return m, nil

	case command.CommandMsg:
		m.currentView = ViewList
		return m, m.executeCommand(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.currentView {
		case ViewList:
			m.statusMsg = ""
			if next, cmd, handled := m.handleListKey(msg); handled {
				return next, cmd
			}
		case ViewHelp:
			if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
				m.currentView = m.previousView
				return m, nil
			}
		case ViewCommand:
			if key.Matches(msg, m.keys.Back) {
				m.currentView = m.previousView
				return m, nil
			}
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleListKey runs the global actions available on the checklist. It
// reports false for keys the item list should handle itself.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m, m.commandView.Focus(), true

	case key.Matches(msg, m.keys.Categories):
		m.previousView = m.currentView
		m.currentView = ViewCategories
		return m, m.categoryView.Init(), true

	case key.Matches(msg, m.keys.Add):
		m.currentView = ViewItemCreate
		return m, m.itemForm.StartCreate(m.store.Categories(), m.store.Selected()), true

	case key.Matches(msg, m.keys.HideDone):
		if m.itemList.ToggleShowCompleted() {
			m.statusMsg = "Showing packed items"
		} else {
			m.statusMsg = "Hiding packed items"
		}
		return m, nil, true
	}

	item, ok := m.itemList.SelectedItem()
	if !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleItem(item), true

	case key.Matches(msg, m.keys.Delete):
		return m, m.removeItem(item), true

	case key.Matches(msg, m.keys.Edit):
		m.currentView = ViewItemEdit
		return m, m.itemForm.StartEdit(item), true

	case key.Matches(msg, m.keys.Move):
		m.currentView = ViewItemMove
		return m, m.itemForm.StartMove(item, m.store.Categories()), true
	}

	return m, nil, false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.itemList, cmd = m.itemList.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewItemCreate, ViewItemEdit, ViewItemMove:
		m.itemForm, cmd = m.itemForm.Update(msg)
	case ViewCategories:
		m.categoryView, cmd = m.categoryView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(ui.AppTitle, ui.Summary(m.store.GlobalStats()))
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints(), m.statusMsg)

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.itemList.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewItemCreate, ViewItemEdit, ViewItemMove:
		return m.itemForm.View()
	case ViewCategories:
		return m.categoryView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter add | esc back"
	case ViewItemCreate, ViewItemEdit, ViewItemMove:
		return "enter submit | esc cancel"
	case ViewCategories:
		return "enter select | n new | e rename | d delete | esc back"
	default:
		return "q quit | ? help | space pack | n new | : quick add | c categories | h/l switch"
	}
}

// executeCommand handles a command from the quick-add palette.
func (m *Model) executeCommand(cmd command.CommandMsg) tea.Cmd {
	switch cmd.Verb {
	case command.VerbQuit:
		return tea.Quit
	case command.VerbCategory:
		return m.addCategory(cmd.Arg)
	default:
		return m.quickAdd(cmd.Arg)
	}
}
