package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gl-viewer/libio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePng(t *testing.T, path string) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
		img.Set(x, 1, color.NRGBA{B: 255, A: 128})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestPackedPath(t *testing.T) {
	assert.Equal(t, filepath.Join("textures", "wall.png.lz4"), packedPath(filepath.Join("textures", "wall.png"), ""))
	assert.Equal(t, filepath.Join("out", "wall.png.lz4"), packedPath(filepath.Join("textures", "wall.png"), "out"))
}

func TestPackFile(t *testing.T) {
	cargs.quiet = true
	dir := t.TempDir()
	src := filepath.Join(dir, "face.png")
	writePng(t, src)

	args := packArgs{compress: 9, check: true}
	require.NoError(t, packFile(args, src))

	img, err := libio.DecodeFile(src+libio.Lz4Ext, libio.DecodeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 4, img.Channels)

	assert.Error(t, packFile(args, src), "existing output without force")
	args.force = true
	assert.NoError(t, packFile(args, src))
	assert.Error(t, packFile(args, src+libio.Lz4Ext), "already packed")
}

func TestPackRejectsNonImages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("not an image"), 0o644))

	assert.Error(t, packFile(packArgs{check: true}, src))
	_, err := os.Stat(src + libio.Lz4Ext)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteInfoTableSorted(t *testing.T) {
	out := &bytes.Buffer{}
	writeInfoTable(out, []fileInfo{
		{Path: "b.png", Info: libio.Info{Format: "png", Width: 2, Height: 2, Channels: 4}},
		{Path: "a.jpg.lz4", Info: libio.Info{Format: "jpeg", Width: 8, Height: 4, Channels: 3, Compressed: true}},
		{Path: "c.png", Info: libio.Info{Format: "png", Width: 1, Height: 1, Channels: 1}},
	})
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "a.jpg.lz4"))
	assert.Contains(t, lines[1], "8x4")
	assert.Contains(t, lines[1], "true")
	assert.True(t, strings.HasPrefix(lines[2], "b.png"))
	assert.Contains(t, lines[3], "(unsupported)")
}
