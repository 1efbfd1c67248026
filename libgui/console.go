package libgui

import (
	"log/slog"

	"gl-viewer/liblog"

	"github.com/inkyblackness/imgui-go/v4"
)

// errorTextColor is used for error lines in the console. ApplyTheme sets it.
var errorTextColor = imgui.Vec4{X: 1, Y: 0.4, Z: 0.4, W: 1}

// ConsoleView draws a liblog.Console with a filter and auto-scrolling.
type ConsoleView struct {
	AutoScroll bool

	console    *liblog.Console
	filter     *liblog.Filter
	filterText string
	revision   uint64
}

func NewConsoleView(console *liblog.Console) *ConsoleView {
	return &ConsoleView{
		AutoScroll: true,
		console:    console,
		filter:     liblog.NewFilter(""),
	}
}

func (v *ConsoleView) Console() *liblog.Console {
	return v.console
}

// Visible returns the lines that pass the current filter.
func (v *ConsoleView) Visible() []liblog.Line {
	lines := v.console.Lines()
	if !v.filter.Active() {
		return lines
	}
	visible := lines[:0]
	for _, line := range lines {
		if v.filter.Pass(line.Text) {
			visible = append(visible, line)
		}
	}
	return visible
}

func (v *ConsoleView) SetFilter(text string) {
	v.filterText = text
	v.filter.Set(text)
}

func (v *ConsoleView) Draw() {
	if imgui.Button("Options") {
		imgui.OpenPopup("console_options")
	}
	if imgui.BeginPopup("console_options") {
		imgui.Checkbox("Auto-scroll", &v.AutoScroll)
		imgui.EndPopup()
	}
	imgui.SameLine()
	clear := imgui.Button("Clear")
	imgui.SameLine()
	if imgui.InputText("Filter", &v.filterText) {
		v.filter.Set(v.filterText)
	}
	imgui.Separator()

	imgui.BeginChildV("console_lines", imgui.Vec2{}, false, imgui.WindowFlagsHorizontalScrollbar)
	if clear {
		v.console.Clear()
	}
	for _, line := range v.Visible() {
		if line.Level >= slog.LevelError {
			imgui.PushStyleColor(imgui.StyleColorText, errorTextColor)
			imgui.Text(line.Text)
			imgui.PopStyleColor()
		} else {
			imgui.Text(line.Text)
		}
	}

	revision := v.console.Revision()
	if v.AutoScroll && revision != v.revision && imgui.ScrollY() >= imgui.ScrollMaxY() {
		imgui.SetScrollHereY(1)
	}
	v.revision = revision
	imgui.EndChild()
}
