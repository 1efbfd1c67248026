package main

import (
	"errors"
	"log/slog"
	"testing"

	"gl-viewer/liblog"
	"gl-viewer/libnav"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
)

func TestGuiConfigFlags(t *testing.T) {
	nav := guiConfigFlags(libnav.Navigation)
	assert.Equal(t, imgui.ConfigFlagsNoMouse, nav)

	ui := guiConfigFlags(libnav.Interface)
	assert.NotZero(t, ui&imgui.ConfigFlagsNavEnableKeyboard)
	assert.NotZero(t, ui&imgui.ConfigFlagsNavEnableGamepad)
	assert.Zero(t, ui&imgui.ConfigFlagsNoMouse)
}

func TestCursorMode(t *testing.T) {
	assert.Equal(t, glfw.CursorDisabled, cursorMode(libnav.Navigation))
	assert.Equal(t, glfw.CursorNormal, cursorMode(libnav.Interface))
}

func TestCheckGlfwLogsFailure(t *testing.T) {
	console := liblog.NewConsole(8)
	previous := slog.Default()
	slog.SetDefault(slog.New(liblog.NewHandler(console, nil, slog.LevelInfo)))
	defer slog.SetDefault(previous)

	assert.NotPanics(t, func() { checkGlfw("init", nil) })
	assert.Zero(t, console.Len())

	assert.Panics(t, func() { checkGlfw("init", errors.New("no display")) })
	assert.Equal(t, 1, console.Len())
	line := console.Lines()[0]
	assert.Equal(t, slog.LevelError, line.Level)
	assert.Contains(t, line.Text, "glfw init failed: no display")
}
