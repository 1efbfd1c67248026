// Package libdock lays out the docked GUI panels around the 3D view and
// maps the central node to a GL viewport.
package libdock

import (
	"fmt"

	"gl-viewer/libutil"

	"github.com/chewxy/math32"
)

const (
	MinRatio     = 0.05
	MaxRatio     = 0.8
	DefaultRatio = 0.2
)

type Node int

const (
	Central Node = iota
	Left
	Right
	Bottom
	nodeCount
)

func (n Node) String() string {
	switch n {
	case Central:
		return "central"
	case Left:
		return "left"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("node(%d)", int(n))
}

// Rect uses GUI coordinates: top-left origin, logical pixels.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Ratios are fractions of the remaining area taken by each split.
type Ratios struct {
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
	Left   float32 `toml:"left"`
}

var DefaultRatios = Ratios{Right: DefaultRatio, Bottom: DefaultRatio, Left: DefaultRatio}

func (r Ratios) Clamped() Ratios {
	return Ratios{
		Right:  libutil.Clamp(r.Right, MinRatio, MaxRatio),
		Bottom: libutil.Clamp(r.Bottom, MinRatio, MaxRatio),
		Left:   libutil.Clamp(r.Left, MinRatio, MaxRatio),
	}
}

func (r Ratios) Validate() error {
	for _, v := range []struct {
		name  string
		value float32
	}{{"right", r.Right}, {"bottom", r.Bottom}, {"left", r.Left}} {
		if v.value < MinRatio || v.value > MaxRatio {
			return fmt.Errorf("dock ratio %s=%v outside [%v, %v]", v.name, v.value, MinRatio, MaxRatio)
		}
	}
	return nil
}

type Layout struct {
	ratios Ratios
	nodes  [nodeCount]Rect
}

func NewLayout(ratios Ratios) *Layout {
	return &Layout{ratios: ratios.Clamped()}
}

func (l *Layout) Ratios() Ratios {
	return l.ratios
}

func (l *Layout) Node(n Node) Rect {
	return l.nodes[n]
}

// Compute splits the work area below the menu bar. The right node is split
// off first, then the bottom node from the rest, then the left node.
func (l *Layout) Compute(display Rect, menuBarHeight float32) {
	work := Rect{
		X: display.X,
		Y: display.Y + menuBarHeight,
		W: display.W,
		H: libutil.Max(display.H-menuBarHeight, 0),
	}

	rightW := work.W * l.ratios.Right
	l.nodes[Right] = Rect{X: work.X + work.W - rightW, Y: work.Y, W: rightW, H: work.H}
	work.W -= rightW

	bottomH := work.H * l.ratios.Bottom
	l.nodes[Bottom] = Rect{X: work.X, Y: work.Y + work.H - bottomH, W: work.W, H: bottomH}
	work.H -= bottomH

	leftW := work.W * l.ratios.Left
	l.nodes[Left] = Rect{X: work.X, Y: work.Y, W: leftW, H: work.H}
	work.X += leftW
	work.W -= leftW

	l.nodes[Central] = work
}

// Resize updates a split ratio from the size a user dragged a panel to.
// The new ratio applies on the next Compute. Differences below one pixel
// are ignored, GUI sizes are rounded. It reports whether the ratio changed.
func (l *Layout) Resize(n Node, size Rect) bool {
	right := l.nodes[Right]
	bottom := l.nodes[Bottom]
	left := l.nodes[Left]
	switch n {
	case Right:
		total := right.W + bottom.W
		if total <= 0 || math32.Abs(size.W-right.W) < 1 {
			return false
		}
		l.ratios.Right = libutil.Clamp(size.W/total, MinRatio, MaxRatio)
	case Bottom:
		total := bottom.H + left.H
		if total <= 0 || math32.Abs(size.H-bottom.H) < 1 {
			return false
		}
		l.ratios.Bottom = libutil.Clamp(size.H/total, MinRatio, MaxRatio)
	case Left:
		total := bottom.W
		if total <= 0 || math32.Abs(size.W-left.W) < 1 {
			return false
		}
		l.ratios.Left = libutil.Clamp(size.W/total, MinRatio, MaxRatio)
	default:
		return false
	}
	return true
}

// Viewport is a GL viewport: bottom-left origin, framebuffer pixels.
type Viewport struct {
	X, Y, W, H int32
}

// ToViewport maps the central node into framebuffer coordinates. An empty
// central node covers the whole framebuffer.
func ToViewport(central Rect, displayW, displayH float32, fbW, fbH int) Viewport {
	if central.Empty() || displayW <= 0 || displayH <= 0 {
		return Viewport{0, 0, int32(fbW), int32(fbH)}
	}
	sx := float32(fbW) / displayW
	sy := float32(fbH) / displayH
	x := central.X * sx
	y := central.Y * sy
	w := central.W * sx
	h := central.H * sy
	return Viewport{
		X: int32(x),
		Y: int32(float32(fbH) - (y + h)),
		W: int32(w),
		H: int32(h),
	}
}
