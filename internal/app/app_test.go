package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/travel-checklist/internal/model"
	"github.com/nhle/travel-checklist/internal/ui/command"
	"github.com/nhle/travel-checklist/internal/ui/itemform"
	"github.com/nhle/travel-checklist/tests/testutil"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := testutil.NewTestChecklist(t, nil)
	m := New(s, model.DisplayConfig{ShowCompleted: true}, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return next.(Model)
}

// send delivers msg and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// settle runs a store action command and feeds its result back.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(checklistChangedMsg)
	require.Truef(t, ok, "unexpected message %T", msg)
	m, _ = send(t, m, msg)
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQuickAddPicksCategory(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, command.CommandMsg{Verb: command.VerbAdd, Arg: "  bring the PHONE charger "})
	m = settle(t, m, cmd)

	items := m.store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Bring the phone charger", items[0].Title)
	assert.Equal(t, "electronics", items[0].Category)
	assert.Equal(t, "electronics", m.store.Selected())
	assert.Equal(t, `Added "Bring the phone charger" to Electronics`, m.statusMsg)
	assert.Equal(t, ViewList, m.currentView)
}

func TestPaletteCategoryCommand(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, command.CommandMsg{Verb: command.VerbCategory, Arg: "Snacks"})
	m = settle(t, m, cmd)
	assert.Equal(t, `Added category "Snacks"`, m.statusMsg)
	assert.Equal(t, "snacks", m.store.Selected())

	m.store.SelectCategory("clothing")
	m, cmd = send(t, m, command.CommandMsg{Verb: command.VerbCategory, Arg: "SNACKS"})
	m = settle(t, m, cmd)
	assert.Equal(t, `Category "Snacks" already exists`, m.statusMsg)
	assert.Equal(t, "snacks", m.store.Selected())
	assert.Len(t, m.store.Categories(), 5)
}

func TestToggleUpdatesHeader(t *testing.T) {
	m := newTestModel(t)
	_, ok := m.store.AddItem(context.Background(), "Socks", "clothing")
	require.True(t, ok)
	m.itemList.Refresh()

	assert.Contains(t, m.View(), "0 completed • 1 remaining")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = settle(t, m, cmd)

	assert.Equal(t, `Packed "Socks"`, m.statusMsg)
	assert.Contains(t, m.View(), "1 completed • 0 remaining")
}

func TestRemoveSelectedItem(t *testing.T) {
	m := newTestModel(t)
	m.store.AddItem(context.Background(), "Hat", "clothing")
	m.itemList.Refresh()

	m, cmd := send(t, m, runeKey("d"))
	m = settle(t, m, cmd)

	assert.Empty(t, m.store.Items())
	assert.Equal(t, `Removed "Hat"`, m.statusMsg)
}

func TestItemActionsNeedSelection(t *testing.T) {
	m := newTestModel(t)

	for _, k := range []string{"x", "d", "e", "m"} {
		next, cmd := send(t, m, runeKey(k))
		assert.Equal(t, ViewList, next.currentView, k)
		assert.Nil(t, cmd, k)
	}
}

func TestFormMessagesRouteToStore(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(t, m, itemform.ItemCreatedMsg{Title: "Passport", Category: "documents"})
	m = settle(t, m, cmd)
	items := m.store.Items()
	require.Len(t, items, 1)
	id := items[0].ID

	m, cmd = send(t, m, itemform.ItemEditedMsg{ID: id, Title: "Passport + visa"})
	m = settle(t, m, cmd)
	assert.Equal(t, "Item updated", m.statusMsg)

	m, cmd = send(t, m, itemform.ItemMovedMsg{ID: id, Category: "electronics"})
	m = settle(t, m, cmd)
	assert.Equal(t, "Moved to Electronics", m.statusMsg)

	it, ok := m.store.Item(id)
	require.True(t, ok)
	assert.Equal(t, model.Item{ID: id, Title: "Passport + visa", Category: "electronics"}, it)
}

func TestViewSwitching(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, runeKey("?"))
	assert.Equal(t, ViewHelp, m.currentView)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewList, m.currentView)

	m, _ = send(t, m, runeKey(":"))
	assert.Equal(t, ViewCommand, m.currentView)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewList, m.currentView)

	m, _ = send(t, m, runeKey("c"))
	assert.Equal(t, ViewCategories, m.currentView)

	m, _ = send(t, m, runeKey("n"))
	assert.Equal(t, ViewCategories, m.currentView)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := send(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = send(t, m, command.CommandMsg{Verb: command.VerbQuit})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestListKeysClearStatus(t *testing.T) {
	m := newTestModel(t)

	for _, k := range []tea.KeyMsg{runeKey("j"), runeKey("l"), {Type: tea.KeyDown}} {
		m.SetStatus(`Packed "Socks"`)
		m, _ = send(t, m, k)
		assert.Empty(t, m.statusMsg, k.String())
	}
	assert.Equal(t, "documents", m.store.Selected())
}
