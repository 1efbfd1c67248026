// Package libgui holds custom Dear ImGui widgets and views: toggle groups,
// flag buttons, full-width color editors, the theme editor and the log
// console.
package libgui

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

// InnerSpacing is the horizontal gap between the parts of a compound
// widget. PushMetrics sets ImGui's item inner spacing to the same value.
const InnerSpacing = 6

// SplitWidths divides full among count items separated by spacing. Widths
// are truncated like ImGui's PushMultiItemsWidths so they add up to
// full - spacing*(count-1), and none is smaller than 1.
func SplitWidths(full, spacing float32, count int) []float32 {
	if count <= 0 {
		return nil
	}
	itemWidth := full - spacing*float32(count-1)
	widths := make([]float32, count)
	prevSplit := itemWidth
	for i := 0; i < count; i++ {
		nextSplit := math32.Trunc(itemWidth * float32(count-i-1) / float32(count))
		widths[i] = math32.Max(prevSplit-nextSplit, 1)
		prevSplit = nextSplit
	}
	return widths
}

// FlagActive reports whether every bit of value is set in flags.
func FlagActive(flags, value uint64) bool {
	return flags&value == value
}

// ToggleFlags applies a click on the button for value. In exclusive mode
// clicking the active button clears all flags and clicking another one
// leaves only its bits set.
func ToggleFlags(flags, value uint64, exclusive bool) uint64 {
	active := FlagActive(flags, value)
	if exclusive {
		if active {
			return 0
		}
		return value
	}
	if active {
		return flags &^ value
	}
	return flags | value
}

func itemWidth(label string) float32 {
	avail := imgui.ContentRegionAvail().X
	if label == "" || label[0] == '#' {
		return avail
	}
	// ImGui's default item width leaves room for the label
	return math32.Max(avail*0.65, 1)
}

// drawComponents lays out count widgets side by side in the current item
// width and prints label after them.
func drawComponents(label string, count int, draw func(width float32, index int)) {
	imgui.PushID(label)
	widths := SplitWidths(itemWidth(label), InnerSpacing, count)
	for i, w := range widths {
		imgui.PushID(fmt.Sprint(i))
		if i > 0 {
			imgui.SameLineV(0, InnerSpacing)
		}
		draw(w, i)
		imgui.PopID()
	}
	if label != "" && label[0] != '#' {
		imgui.SameLineV(0, InnerSpacing)
		imgui.Text(label)
	}
	imgui.PopID()
}

// activeButtonColor highlights selected buttons. ApplyTheme keeps it in
// sync with the palette.
var activeButtonColor = imgui.Vec4{X: 0.22, Y: 0.22, Z: 0.22, W: 1}

func activeButton(text string, width float32, active bool) bool {
	if active {
		imgui.PushStyleColor(imgui.StyleColorButton, activeButtonColor)
		defer imgui.PopStyleColor()
	}
	return imgui.ButtonV(text, imgui.Vec2{X: width})
}

// ToggleGroup draws one button per item with the selected one highlighted.
// It reports whether the selection changed.
func ToggleGroup(label string, item *int, items []string) bool {
	changed := false
	drawComponents(label, len(items), func(width float32, index int) {
		active := *item == index
		if activeButton(items[index], width, active) && !active {
			*item = index
			changed = true
		}
	})
	return changed
}

// ButtonFlagsGroup draws one button per flag value. It reports whether
// flags changed; see ToggleFlags for the click semantics.
func ButtonFlagsGroup(label string, flags *uint64, values []uint64, labels []string, exclusive bool) bool {
	changed := false
	drawComponents(label, len(values), func(width float32, index int) {
		if activeButton(labels[index], width, FlagActive(*flags, values[index])) {
			*flags = ToggleFlags(*flags, values[index], exclusive)
			changed = true
		}
	})
	return changed
}

// LargeColorEdit3 edits the RGB part of color over the full width. Alpha is
// forced to 1.
func LargeColorEdit3(label string, color *mgl32.Vec4) bool {
	color[3] = 1
	rgb := [3]float32{color[0], color[1], color[2]}
	imgui.PushItemWidth(itemWidth(label))
	changed := imgui.ColorEdit3V(label, &rgb, imgui.ColorEditFlagsFloat)
	imgui.PopItemWidth()
	if changed {
		color[0], color[1], color[2] = rgb[0], rgb[1], rgb[2]
	}
	return changed
}

func LargeColorEdit4(label string, color *mgl32.Vec4) bool {
	rgba := [4]float32(*color)
	imgui.PushItemWidth(itemWidth(label))
	changed := imgui.ColorEdit4V(label, &rgba, imgui.ColorEditFlagsFloat|imgui.ColorEditFlagsAlphaBar)
	imgui.PopItemWidth()
	if changed {
		*color = mgl32.Vec4(rgba)
	}
	return changed
}

// Vec4 converts a palette color to ImGui's vector type.
func Vec4(c mgl32.Vec4) imgui.Vec4 {
	return imgui.Vec4{X: c[0], Y: c[1], Z: c[2], W: c[3]}
}
