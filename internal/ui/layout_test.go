package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/nhle/travel-checklist/internal/model"
)

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 22, NewLayout(80, 24).ContentHeight())
	assert.Equal(t, 0, NewLayout(80, 1).ContentHeight())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "2 completed • 3 remaining", Summary(model.NewStats(2, 5)))
	assert.Equal(t, "0 completed • 0 remaining", Summary(model.NewStats(0, 0)))
}

func TestRenderHeaderSpansWidth(t *testing.T) {
	l := NewLayout(60, 20)
	header := l.RenderHeader(AppTitle, "1 completed • 2 remaining")

	assert.Contains(t, header, AppTitle)
	assert.Contains(t, header, "2 remaining")
	assert.Equal(t, 60, lipgloss.Width(header))
}

func TestRenderStatusBarPrefersMessage(t *testing.T) {
	l := NewLayout(60, 20)

	bar := l.RenderStatusBar("q quit", "")
	assert.Contains(t, bar, "q quit")

	bar = l.RenderStatusBar("q quit", "Category already exists")
	assert.Contains(t, bar, "Category already exists")
	assert.False(t, strings.Contains(bar, "q quit"))
}
