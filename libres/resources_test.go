package libres

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"gl-viewer/libio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var embedded = fstest.MapFS{
	"shaders/cube.vert": {Data: []byte("embedded cube")},
	"shaders/grid.frag": {Data: []byte("embedded grid")},
}

func newResources(t *testing.T) (*Resources, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ShaderDir), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, TextureDir), 0o755))
	res, err := Open(dir, embedded)
	require.NoError(t, err)
	return res, dir
}

func TestOpenResolvesRelativePaths(t *testing.T) {
	res, err := Open("resources", nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(res.Dir()))
	assert.Equal(t, "resources", filepath.Base(res.Dir()))
}

func TestReadShaderPrefersDisk(t *testing.T) {
	res, dir := newResources(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ShaderDir, "cube.vert"), []byte("disk cube"), 0o644))

	src, err := res.ReadShader("cube.vert")
	require.NoError(t, err)
	assert.Equal(t, "disk cube", src)

	src, err = res.ReadShader("grid.frag")
	require.NoError(t, err)
	assert.Equal(t, "embedded grid", src)

	_, err = res.ReadShader("missing.frag")
	assert.Error(t, err)
}

func TestLoadTextureFallsBackToPacked(t *testing.T) {
	res, dir := newResources(t)

	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	out, err := os.Create(filepath.Join(dir, TextureDir, "box.png"+libio.Lz4Ext))
	require.NoError(t, err)
	_, err = libio.Compress(out, buf, 1)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	img, err := res.LoadTexture("box.png")
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)

	_, err = res.LoadTexture("missing.png")
	assert.Error(t, err)
}

func TestWatcherReportsChangedShaders(t *testing.T) {
	res, dir := newResources(t)
	w, err := res.WatchShaders()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ShaderDir, "grid.frag"), []byte("changed"), 0o644))

	var changed []string
	assert.Eventually(t, func() bool {
		changed = append(changed, w.Changed()...)
		return len(changed) > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, changed, "grid.frag")
}

func TestWatchMissingDirectory(t *testing.T) {
	res, err := Open(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	_, err = res.WatchShaders()
	assert.Error(t, err)
}
