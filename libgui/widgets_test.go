package libgui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestSplitWidths(t *testing.T) {
	assert.Equal(t, []float32{30, 29, 29}, SplitWidths(100, 6, 3))
	assert.Equal(t, []float32{100}, SplitWidths(100, 6, 1))
	assert.Nil(t, SplitWidths(100, 6, 0))
}

func TestSplitWidthsSumToAvailable(t *testing.T) {
	for count := 1; count < 8; count++ {
		var sum float32
		for _, w := range SplitWidths(317, 6, count) {
			sum += w
		}
		assert.Equal(t, 317-6*float32(count-1), sum, "count %d", count)
	}
}

func TestSplitWidthsNeverBelowOne(t *testing.T) {
	for _, w := range SplitWidths(4, 6, 3) {
		assert.GreaterOrEqual(t, w, float32(1))
	}
}

func TestToggleFlags(t *testing.T) {
	const (
		x  = 0x10
		y  = 0x20
		xy = 0x100
		yz = 0x200
	)

	assert.Equal(t, uint64(x|y), ToggleFlags(x, y, false))
	assert.Equal(t, uint64(y), ToggleFlags(x|y, x, false))

	assert.Equal(t, uint64(0), ToggleFlags(xy, xy, true), "clicking the active exclusive button clears")
	assert.Equal(t, uint64(yz), ToggleFlags(xy, yz, true), "clicking another exclusive button replaces")
	assert.Equal(t, uint64(xy), ToggleFlags(0, xy, true))
}

func TestFlagActive(t *testing.T) {
	assert.True(t, FlagActive(0x31, 0x10))
	assert.False(t, FlagActive(0x31, 0x12))
	assert.True(t, FlagActive(0, 0))
}

func TestVec4(t *testing.T) {
	v := Vec4(mgl32.Vec4{0.1, 0.2, 0.3, 0.4})
	assert.Equal(t, float32(0.3), v.Z)
}
