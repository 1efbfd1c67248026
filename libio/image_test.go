package libio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRows is a 1x2 image: red on top, blue below.
func twoRows(alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: alpha})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: alpha})
	return img
}

func encodePng(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestDecodeOpaqueIsRGB(t *testing.T) {
	img, format, err := Decode(bytes.NewReader(encodePng(t, twoRows(255))), DecodeOptions{})
	require.NoError(t, err)

	assert.Equal(t, "png", format)
	assert.Equal(t, 3, img.Channels)
	assert.Equal(t, []uint8{255, 0, 0, 0, 0, 255}, img.Pix)
	assert.Equal(t, 6, img.Bytes())
}

func TestDecodeFlipsVertically(t *testing.T) {
	img, _, err := Decode(bytes.NewReader(encodePng(t, twoRows(255))), DecodeOptions{FlipVertically: true})
	require.NoError(t, err)

	assert.Equal(t, []uint8{0, 0, 255, 255, 0, 0}, img.Pix)
}

func TestDecodeTranslucentIsRGBA(t *testing.T) {
	img, _, err := Decode(bytes.NewReader(encodePng(t, twoRows(128))), DecodeOptions{})
	require.NoError(t, err)

	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, uint8(128), img.Pix[3])
	assert.Equal(t, uint8(255), img.Pix[0])
}

func TestDecodeGrayIsUnsupported(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	_, _, err := Decode(bytes.NewReader(encodePng(t, gray)), DecodeOptions{})
	assert.ErrorIs(t, err, ErrUnsupportedChannels)
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")), DecodeOptions{})
	assert.Error(t, err)
}

func TestDecodeCompressedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.png.lz4")

	out, err := os.Create(path)
	require.NoError(t, err)
	_, err = Compress(out, bytes.NewReader(encodePng(t, twoRows(255))), 9)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	img, err := DecodeFile(path, DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 0, 0, 0, 0, 255}, img.Pix)

	info, err := Stat(path)
	require.NoError(t, err)
	assert.Equal(t, Info{Format: "png", Width: 1, Height: 2, Channels: 3, Compressed: true}, info)
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"), DecodeOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompressionLevelRange(t *testing.T) {
	_, err := CompressionLevel(-1)
	assert.Error(t, err)
	_, err = CompressionLevel(10)
	assert.Error(t, err)
	_, err = CompressionLevel(0)
	assert.NoError(t, err)
}

func TestWithChannels(t *testing.T) {
	rgb := &Image{Width: 2, Height: 1, Channels: 3, Pix: []uint8{1, 2, 3, 4, 5, 6}}

	rgba := rgb.WithChannels(4, 255)
	assert.Equal(t, []uint8{1, 2, 3, 255, 4, 5, 6, 255}, rgba.Pix)
	assert.Same(t, rgba, rgba.WithChannels(4, 0))

	back := rgba.WithChannels(3, 0)
	assert.Equal(t, rgb.Pix, back.Pix)
}

func TestCheckerboard(t *testing.T) {
	a := [3]uint8{255, 0, 255}
	b := [3]uint8{0, 0, 0}
	img := Checkerboard(4, 2, a, b)

	assert.Equal(t, 3, img.Channels)
	assert.Equal(t, a[:], img.Pix[img.Offset(0, 0):img.Offset(0, 0)+3])
	assert.Equal(t, b[:], img.Pix[img.Offset(2, 0):img.Offset(2, 0)+3])
	assert.Equal(t, a[:], img.Pix[img.Offset(3, 3):img.Offset(3, 3)+3])
}
