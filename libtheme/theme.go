// Package libtheme holds the viewer's color palette.
package libtheme

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type Color int

const (
	// Elementary
	Black Color = iota
	White
	Red
	Green
	Blue
	Cyan
	Magenta
	Yellow

	// Text
	Text
	Disabled

	// Background
	Window
	WindowBorder
	Hollow
	HollowActive
	MenuBar
	Popup

	// Viewport
	Grid
	GridEmphasis
	Viewport
	AxisX
	AxisY
	AxisZ

	// Widget
	Active
	Clickable
	ClickableActive
	ClickableHovered
	Grabbable
	GrabbableActive
	GrabbableHovered

	ColorCount
)

var colorNames = [ColorCount]string{
	"black", "white", "red", "green", "blue", "cyan", "magenta", "yellow",
	"text", "disabled",
	"window", "window_border", "hollow", "hollow_active", "menu_bar", "popup",
	"grid", "grid_emphasis", "viewport", "axis_x", "axis_y", "axis_z",
	"active", "clickable", "clickable_active", "clickable_hovered",
	"grabbable", "grabbable_active", "grabbable_hovered",
}

func (c Color) Valid() bool {
	return c >= 0 && c < ColorCount
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

// ColorByName is the inverse of Color.String.
func ColorByName(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

func rgba(r, g, b, a uint8) mgl32.Vec4 {
	return mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

func rgb(r, g, b uint8) mgl32.Vec4 { return rgba(r, g, b, 0xff) }

func lum(l uint8) mgl32.Vec4 { return rgba(l, l, l, 0xff) }

func lumA(l, a uint8) mgl32.Vec4 { return rgba(l, l, l, a) }

type Theme struct {
	colors [ColorCount]mgl32.Vec4
}

// New returns a theme with the default dark palette.
func New() *Theme {
	t := &Theme{}
	t.Reset()
	return t
}

func (t *Theme) Reset() {
	t.colors = [ColorCount]mgl32.Vec4{
		Black:   lum(0x00),
		White:   lum(0xff),
		Red:     rgb(0xff, 0x00, 0x00),
		Green:   rgb(0x00, 0xff, 0x00),
		Blue:    rgb(0x00, 0x00, 0xff),
		Cyan:    rgb(0x00, 0xff, 0xff),
		Magenta: rgb(0xff, 0x00, 0xff),
		Yellow:  rgb(0xff, 0xff, 0x00),

		Text:     lum(0xff),
		Disabled: lum(0x80),

		Window:       lumA(0x30, 0xf8),
		WindowBorder: lum(0x40),
		Hollow:       lum(0x1f),
		HollowActive: lum(0x21),
		MenuBar:      lum(0x24),
		Popup:        lum(0x18),

		Grid:         lum(0x4e),
		GridEmphasis: lum(0x55),
		Viewport:     lum(0x3f),
		AxisX:        rgb(0xf6, 0x36, 0x52),
		AxisY:        rgb(0x6f, 0xa5, 0x1b),
		AxisZ:        rgb(0x2f, 0x83, 0xe3),

		Active:           rgb(0x47, 0x72, 0xb3),
		Clickable:        lum(0x28),
		ClickableActive:  lum(0x38),
		ClickableHovered: lum(0x48),
		Grabbable:        lum(0x51),
		GrabbableActive:  lum(0x79),
		GrabbableHovered: lum(0x60),
	}
}

// Get panics if c is not a palette color.
func (t *Theme) Get(c Color) mgl32.Vec4 {
	if !c.Valid() {
		panic(fmt.Sprintf("theme color out of range: %d", int(c)))
	}
	return t.colors[c]
}

// Ref gives editors direct access to a color. It panics like Get.
func (t *Theme) Ref(c Color) *mgl32.Vec4 {
	if !c.Valid() {
		panic(fmt.Sprintf("theme color out of range: %d", int(c)))
	}
	return &t.colors[c]
}

func (t *Theme) Set(c Color, v mgl32.Vec4) {
	*t.Ref(c) = v
}

// ClearColor is the GL clear color: the viewport color, always opaque.
func (t *Theme) ClearColor() mgl32.Vec4 {
	v := t.colors[Viewport]
	v[3] = 1
	return v
}
