package libgl

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestMipmapLevels(t *testing.T) {
	assert.Equal(t, 1, MipmapLevels(1, 1))
	assert.Equal(t, 1, MipmapLevels(0, 0))
	assert.Equal(t, 10, MipmapLevels(512, 512))
	assert.Equal(t, 11, MipmapLevels(1024, 300))
	assert.Equal(t, 9, MipmapLevels(100, 256))
}

func TestPointer(t *testing.T) {
	assert.True(t, Pointer(nil) == nil)
	assert.True(t, Pointer([]float32{}) == nil)

	data := []float32{1, 2}
	assert.Equal(t, Pointer(&data[0]), Pointer(data))
	assert.True(t, Pointer(unsafe.Pointer(&data[1])) == unsafe.Pointer(&data[1]))
	assert.Panics(t, func() { Pointer(3) })
}
