package main

import (
	"fmt"

	"gl-viewer/libdock"
	"gl-viewer/libgui"
	"gl-viewer/liblog"

	"github.com/inkyblackness/imgui-go/v4"
)

const (
	leftPanel    = "LeftPanel"
	rightPanel   = "RightPanel"
	bottomPanel  = "BottomPanel"
	centralPanel = "CentralPanel"
	hintOverlay  = "NavigationHint"
	saveAsPopup  = "SaveThemeAs"
)

const panelFlags = imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoTitleBar

const centralFlags = imgui.WindowFlagsNoBackground | imgui.WindowFlagsNoDecoration |
	imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoBringToFrontOnFocus |
	imgui.WindowFlagsNoSavedSettings

const hintFlags = imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoDecoration |
	imgui.WindowFlagsNoFocusOnAppearing | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoNav |
	imgui.WindowFlagsNoSavedSettings

func (w *Window) renderUi() {
	menuBarHeight := w.renderMenuBar()

	dispWidth, dispHeight := w.ctx.GetSize()
	w.layout.Compute(libdock.Rect{W: float32(dispWidth), H: float32(dispHeight)}, menuBarHeight)

	if w.showDemo {
		imgui.ShowDemoWindow(&w.showDemo)
	}

	if w.beginPanel(leftPanel, libdock.Left, 0) {
		imgui.Checkbox("Demo Window", &w.showDemo)
		if imgui.CollapsingHeaderV("Grid", imgui.TreeNodeFlagsDefaultOpen) {
			w.engine.GridUi()
		}
		if w.opts.LogLevel != nil && imgui.CollapsingHeader("Log") {
			w.logLevelUi()
		}
	}
	imgui.End()

	if w.beginPanel(bottomPanel, libdock.Bottom, imgui.WindowFlagsMenuBar) {
		if imgui.BeginMenuBar() {
			if imgui.BeginMenu("Log") {
				if imgui.MenuItem("Save") {
					w.exportLog(false)
				}
				if imgui.MenuItem("Save compressed") {
					w.exportLog(true)
				}
				if imgui.MenuItem("Clear") {
					w.console.Console().Clear()
				}
				imgui.EndMenu()
			}
			imgui.EndMenuBar()
		}
		framerate := w.gui.IO.Framerate()
		if framerate > 0 {
			imgui.Text(fmt.Sprintf("Average %.3f ms/frame (%.1f FPS)", 1000/framerate, framerate))
		}
		w.console.Draw()
	}
	imgui.End()

	if w.beginPanel(rightPanel, libdock.Right, 0) {
		if imgui.BeginTabBar("right_tabs") {
			if imgui.BeginTabItem("Camera") {
				w.engine.CameraUi()
				imgui.EndTabItem()
			}
			if imgui.BeginTabItem("Theme") {
				if imgui.Button("Reset") {
					w.theme.Reset()
					libgui.ApplyTheme(w.theme)
				}
				if libgui.ThemeEditor(w.theme) {
					libgui.ApplyTheme(w.theme)
				}
				imgui.EndTabItem()
			}
			imgui.EndTabBar()
		}
	}
	imgui.End()

	w.renderCentralPanel()
}

func (w *Window) logLevelUi() {
	names := make([]string, len(liblog.Levels))
	for i, level := range liblog.Levels {
		names[i] = liblog.LevelName(level)
	}
	selected := liblog.LevelIndex(w.opts.LogLevel.Level())
	if libgui.ToggleGroup("Level", &selected, names) {
		w.opts.LogLevel.Set(liblog.Levels[selected])
		w.cfg.Log.Level = names[selected]
	}
}

// beginPanel places a docked panel on its layout node and feeds a size the
// user dragged it to back into the layout.
func (w *Window) beginPanel(name string, node libdock.Node, flags imgui.WindowFlags) bool {
	rect := w.layout.Node(node)
	imgui.SetNextWindowPosV(imgui.Vec2{X: rect.X, Y: rect.Y}, imgui.ConditionAlways, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: rect.W, Y: rect.H}, imgui.ConditionAlways)
	open := imgui.BeginV(name, nil, flags|panelFlags)
	size := imgui.WindowSize()
	w.layout.Resize(node, libdock.Rect{W: size.X, H: size.Y})
	return open
}

// renderMenuBar draws the main menu and returns its height.
func (w *Window) renderMenuBar() float32 {
	if !imgui.BeginMainMenuBar() {
		return 0
	}
	height := imgui.WindowSize().Y

	openSaveAs := false
	if imgui.BeginMenu("File") {
		if imgui.MenuItem("Create") {
			w.reset()
		}
		if imgui.MenuItemV("Open", "Ctrl+O", false, true) {
			w.open()
		}
		if imgui.MenuItemV("Save", "Ctrl+S", false, true) {
			w.save()
		}
		if imgui.MenuItem("Save as..") {
			openSaveAs = true
		}
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()

	if openSaveAs {
		imgui.OpenPopup(saveAsPopup)
	}
	if imgui.BeginPopup(saveAsPopup) {
		imgui.InputText("Theme file", &w.saveAsPath)
		if imgui.Button("Save") {
			w.saveThemeAs(w.saveAsPath)
			imgui.CloseCurrentPopup()
		}
		imgui.SameLine()
		if imgui.Button("Cancel") {
			imgui.CloseCurrentPopup()
		}
		imgui.EndPopup()
	}
	return height
}

// renderCentralPanel keeps a transparent window over the 3D view so that a
// double-click on it enters navigation mode, and shows the mode hint.
func (w *Window) renderCentralPanel() {
	rect := w.layout.Node(libdock.Central)
	if rect.Empty() {
		return
	}
	imgui.SetNextWindowPosV(imgui.Vec2{X: rect.X, Y: rect.Y}, imgui.ConditionAlways, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: rect.W, Y: rect.H}, imgui.ConditionAlways)
	if imgui.BeginV(centralPanel, nil, centralFlags) {
		if imgui.IsWindowFocused() && imgui.IsMouseDoubleClicked(0) {
			w.nav.Enter()
		}

		const padding = 8
		imgui.SetNextWindowBgAlpha(0.35)
		imgui.SetNextWindowPosV(imgui.Vec2{X: rect.X + rect.W - padding, Y: rect.Y + rect.H - padding}, imgui.ConditionAlways, imgui.Vec2{X: 1, Y: 1})
		if imgui.BeginV(hintOverlay, nil, hintFlags) {
			imgui.Text(w.nav.Hint())
		}
		imgui.End()
	}
	imgui.End()
}
