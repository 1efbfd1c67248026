package libgui

import (
	"gl-viewer/libtheme"

	"github.com/inkyblackness/imgui-go/v4"
)

var styleColors = []struct {
	id    imgui.StyleColorID
	color libtheme.Color
}{
	{imgui.StyleColorText, libtheme.Text},
	{imgui.StyleColorTextDisabled, libtheme.Disabled},

	{imgui.StyleColorWindowBg, libtheme.Window},
	{imgui.StyleColorChildBg, libtheme.Hollow},
	{imgui.StyleColorResizeGrip, libtheme.Grabbable},
	{imgui.StyleColorResizeGripActive, libtheme.GrabbableActive},
	{imgui.StyleColorResizeGripHovered, libtheme.GrabbableHovered},

	{imgui.StyleColorBorder, libtheme.WindowBorder},
	{imgui.StyleColorSeparator, libtheme.WindowBorder},
	{imgui.StyleColorSeparatorActive, libtheme.GrabbableActive},
	{imgui.StyleColorSeparatorHovered, libtheme.GrabbableHovered},
	{imgui.StyleColorNavWindowingHighlight, libtheme.Active},

	{imgui.StyleColorHeader, libtheme.Hollow},
	{imgui.StyleColorHeaderHovered, libtheme.HollowActive},
	{imgui.StyleColorHeaderActive, libtheme.HollowActive},
	{imgui.StyleColorMenuBarBg, libtheme.MenuBar},
	{imgui.StyleColorPopupBg, libtheme.Popup},

	{imgui.StyleColorTitleBg, libtheme.Hollow},
	{imgui.StyleColorTitleBgActive, libtheme.HollowActive},
	{imgui.StyleColorTitleBgCollapsed, libtheme.Hollow},

	{imgui.StyleColorFrameBg, libtheme.Clickable},
	{imgui.StyleColorFrameBgActive, libtheme.ClickableActive},
	{imgui.StyleColorFrameBgHovered, libtheme.ClickableHovered},
	{imgui.StyleColorButton, libtheme.Clickable},
	{imgui.StyleColorButtonActive, libtheme.ClickableActive},
	{imgui.StyleColorButtonHovered, libtheme.ClickableHovered},
	{imgui.StyleColorSliderGrab, libtheme.Grabbable},
	{imgui.StyleColorSliderGrabActive, libtheme.GrabbableActive},
	{imgui.StyleColorCheckMark, libtheme.Active},
	{imgui.StyleColorDragDropTarget, libtheme.Active},

	{imgui.StyleColorTab, libtheme.Clickable},
	{imgui.StyleColorTabActive, libtheme.ClickableActive},
	{imgui.StyleColorTabHovered, libtheme.ClickableHovered},

	{imgui.StyleColorScrollbarBg, libtheme.Clickable},
	{imgui.StyleColorScrollbarGrab, libtheme.Grabbable},
	{imgui.StyleColorScrollbarGrabActive, libtheme.GrabbableActive},
	{imgui.StyleColorScrollbarGrabHovered, libtheme.GrabbableHovered},
}

// ApplyTheme copies the palette into ImGui's style colors. It has to be
// called again after the palette changed.
func ApplyTheme(theme *libtheme.Theme) {
	style := imgui.CurrentStyle()
	for _, sc := range styleColors {
		style.SetColor(sc.id, Vec4(theme.Get(sc.color)))
	}
	style.SetColor(imgui.StyleColorBorderShadow, imgui.Vec4{})
	activeButtonColor = Vec4(theme.Get(libtheme.ClickableActive))
	errorTextColor = Vec4(theme.Get(libtheme.Red))
}

var styleVec2 = []struct {
	id    imgui.StyleVarID
	value imgui.Vec2
}{
	{imgui.StyleVarWindowPadding, imgui.Vec2{X: 8, Y: 8}},
	{imgui.StyleVarFramePadding, imgui.Vec2{X: 5, Y: 5}},
	{imgui.StyleVarItemSpacing, imgui.Vec2{X: 6, Y: 6}},
	{imgui.StyleVarItemInnerSpacing, imgui.Vec2{X: InnerSpacing, Y: InnerSpacing}},
}

var styleFloat = []struct {
	id    imgui.StyleVarID
	value float32
}{
	{imgui.StyleVarIndentSpacing, 8},
	{imgui.StyleVarGrabMinSize, 14},
	{imgui.StyleVarScrollbarSize, 18},
	{imgui.StyleVarWindowBorderSize, 2},
	{imgui.StyleVarChildBorderSize, 2},
	{imgui.StyleVarPopupBorderSize, 2},
	{imgui.StyleVarFrameBorderSize, 0},
	{imgui.StyleVarWindowRounding, 4},
	{imgui.StyleVarChildRounding, 4},
	{imgui.StyleVarFrameRounding, 4},
	{imgui.StyleVarPopupRounding, 4},
	{imgui.StyleVarScrollbarRounding, 4},
	{imgui.StyleVarGrabRounding, 4},
	{imgui.StyleVarTabRounding, 4},
}

// PushMetrics sets the theme's paddings, borders and roundings for the
// rest of the frame. Pair it with PopMetrics.
func PushMetrics() {
	for _, v := range styleVec2 {
		imgui.PushStyleVarVec2(v.id, v.value)
	}
	for _, v := range styleFloat {
		imgui.PushStyleVarFloat(v.id, v.value)
	}
}

func PopMetrics() {
	imgui.PopStyleVarV(len(styleVec2) + len(styleFloat))
}

type colorEdit struct {
	label string
	color libtheme.Color
	alpha bool
}

var themeSections = []struct {
	title string
	edits []colorEdit
}{
	{"Text", []colorEdit{
		{"Font", libtheme.Text, false},
		{"Disabled", libtheme.Disabled, false},
	}},
	{"Background", []colorEdit{
		{"Window", libtheme.Window, true},
		{"Border", libtheme.WindowBorder, true},
		{"Hollow", libtheme.Hollow, true},
		{"Active Hollow", libtheme.HollowActive, true},
		{"Menu Bar", libtheme.MenuBar, false},
		{"Popup", libtheme.Popup, true},
	}},
	{"Render", []colorEdit{
		{"Grid", libtheme.Grid, false},
		{"Emphasis Line", libtheme.GridEmphasis, false},
		{"Viewport", libtheme.Viewport, false},
		{"X Axis", libtheme.AxisX, false},
		{"Y Axis", libtheme.AxisY, false},
		{"Z Axis", libtheme.AxisZ, false},
	}},
	{"Widget", []colorEdit{
		{"Active", libtheme.Active, false},
		{"Clickable", libtheme.Clickable, false},
		{"Active Clickable", libtheme.ClickableActive, false},
		{"Hovered Clickable", libtheme.ClickableHovered, false},
		{"Grabbable", libtheme.Grabbable, false},
		{"Active Grabbable", libtheme.GrabbableActive, false},
		{"Hovered Grabbable", libtheme.GrabbableHovered, false},
	}},
}

// ThemeEditor draws one tree node per palette section. It reports whether
// any color changed; the caller re-applies the theme.
func ThemeEditor(theme *libtheme.Theme) bool {
	changed := false
	for _, section := range themeSections {
		imgui.SetNextItemOpen(true, imgui.ConditionOnce)
		if !imgui.TreeNode(section.title) {
			continue
		}
		for _, edit := range section.edits {
			if edit.alpha {
				changed = LargeColorEdit4(edit.label, theme.Ref(edit.color)) || changed
			} else {
				changed = LargeColorEdit3(edit.label, theme.Ref(edit.color)) || changed
			}
		}
		imgui.TreePop()
	}
	return changed
}
