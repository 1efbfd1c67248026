package libgui

import (
	"log/slog"
	"testing"

	"gl-viewer/liblog"
	"gl-viewer/libtheme"

	"github.com/stretchr/testify/assert"
)

func TestConsoleViewFilter(t *testing.T) {
	console := liblog.NewConsole(8)
	console.Append(liblog.Line{Level: slog.LevelInfo, Text: "[Info] loaded cube.vert"})
	console.Append(liblog.Line{Level: slog.LevelError, Text: "[Error] could not load grid.frag"})
	console.Append(liblog.Line{Level: slog.LevelDebug, Text: "[Debug] frame"})

	view := NewConsoleView(console)
	assert.True(t, view.AutoScroll)
	assert.Len(t, view.Visible(), 3)

	view.SetFilter("load,-grid")
	visible := view.Visible()
	if assert.Len(t, visible, 1) {
		assert.Equal(t, "[Info] loaded cube.vert", visible[0].Text)
	}

	view.SetFilter("")
	assert.Len(t, view.Visible(), 3)
	assert.Equal(t, 3, console.Len())
}

func TestThemeSectionsCoverPalette(t *testing.T) {
	seen := map[libtheme.Color]bool{}
	for _, section := range themeSections {
		for _, edit := range section.edits {
			assert.False(t, seen[edit.color], "%s listed twice", edit.color)
			seen[edit.color] = true
		}
	}
	for c := libtheme.Text; c < libtheme.ColorCount; c++ {
		assert.True(t, seen[c], "%s has no editor", c)
	}
}
