package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  CommandMsg
		ok    bool
	}{
		{"", CommandMsg{}, false},
		{"   ", CommandMsg{}, false},
		{"quit", CommandMsg{Verb: VerbQuit}, true},
		{"Q", CommandMsg{Verb: VerbQuit}, true},
		{"add sunscreen", CommandMsg{Verb: VerbAdd, Arg: "sunscreen"}, true},
		{"add", CommandMsg{Verb: VerbAdd}, false},
		{"cat  Beach Stuff ", CommandMsg{Verb: VerbCategory, Arg: "Beach Stuff"}, true},
		{"category", CommandMsg{Verb: VerbCategory}, false},
		{"pack the phone charger", CommandMsg{Verb: VerbAdd, Arg: "pack the phone charger"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnterEmitsCommandAndClears(t *testing.T) {
	m := New(80, 24)
	m.input.SetValue("add socks")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, CommandMsg{Verb: VerbAdd, Arg: "socks"}, cmd())
	assert.Empty(t, m.input.Value())
}

func TestEnterOnBlankDoesNothing(t *testing.T) {
	m := New(80, 24)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
