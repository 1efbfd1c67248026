package libdock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertRect(t *testing.T, expected, actual Rect) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-3, "x")
	assert.InDelta(t, expected.Y, actual.Y, 1e-3, "y")
	assert.InDelta(t, expected.W, actual.W, 1e-3, "w")
	assert.InDelta(t, expected.H, actual.H, 1e-3, "h")
}

func TestComputeDefaultSplit(t *testing.T) {
	l := NewLayout(DefaultRatios)
	l.Compute(Rect{0, 0, 1000, 520}, 20)

	assertRect(t, Rect{800, 20, 200, 500}, l.Node(Right))
	assertRect(t, Rect{0, 420, 800, 100}, l.Node(Bottom))
	assertRect(t, Rect{0, 20, 160, 400}, l.Node(Left))
	assertRect(t, Rect{160, 20, 640, 400}, l.Node(Central))
}

func TestRatiosAreClamped(t *testing.T) {
	l := NewLayout(Ratios{Right: 0, Bottom: 2, Left: 0.5})
	assert.Equal(t, Ratios{Right: MinRatio, Bottom: MaxRatio, Left: 0.5}, l.Ratios())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultRatios.Validate())
	assert.Error(t, Ratios{Right: 0.9, Bottom: 0.2, Left: 0.2}.Validate())
}

func TestResizeRoundTrips(t *testing.T) {
	l := NewLayout(DefaultRatios)
	l.Compute(Rect{0, 0, 1000, 520}, 20)

	assert.True(t, l.Resize(Right, Rect{W: 300, H: 500}))
	assert.True(t, l.Resize(Bottom, Rect{W: 800, H: 150}))
	assert.True(t, l.Resize(Left, Rect{W: 240, H: 400}))
	assert.InDelta(t, 0.3, l.Ratios().Right, 1e-4)
	assert.InDelta(t, 0.3, l.Ratios().Bottom, 1e-4)
	assert.InDelta(t, 0.3, l.Ratios().Left, 1e-4)

	assert.True(t, l.Resize(Right, Rect{W: 990}))
	assert.Equal(t, float32(MaxRatio), l.Ratios().Right)
}

func TestResizeIgnoresRounding(t *testing.T) {
	l := NewLayout(DefaultRatios)
	l.Compute(Rect{0, 0, 1001, 521}, 20)

	right := l.Node(Right)
	assert.False(t, l.Resize(Right, Rect{W: float32(int(right.W)), H: right.H}))
	assert.False(t, l.Resize(Central, Rect{W: 10, H: 10}))
	assert.Equal(t, DefaultRatios, l.Ratios())
}

func TestViewportFlipsY(t *testing.T) {
	vp := ToViewport(Rect{160, 20, 640, 400}, 1000, 520, 1000, 520)
	assert.Equal(t, Viewport{160, 100, 640, 400}, vp)
}

func TestViewportScalesToFramebuffer(t *testing.T) {
	vp := ToViewport(Rect{160, 20, 640, 400}, 1000, 520, 2000, 1040)
	assert.Equal(t, Viewport{320, 200, 1280, 800}, vp)
}

func TestViewportWithoutCentralNode(t *testing.T) {
	vp := ToViewport(Rect{}, 1000, 520, 1000, 520)
	assert.Equal(t, Viewport{0, 0, 1000, 520}, vp)
}
