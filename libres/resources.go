// Package libres locates shaders and textures on disk, with shaders
// embedded in the binary as a fallback.
package libres

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gl-viewer/libio"

	"github.com/mitchellh/go-homedir"
)

const (
	ShaderDir  = "shaders"
	TextureDir = "textures"
)

type Resources struct {
	dir      string
	fallback fs.FS
}

// Open resolves dir: a leading ~ is expanded and relative paths are taken
// from the working directory. fallback must contain a "shaders" directory
// and may be nil. A missing dir is not an error, every lookup then falls
// back.
func Open(dir string, fallback fs.FS) (*Resources, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("could not expand resources path %q: %w", dir, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("could not resolve resources path %q: %w", dir, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		slog.Warn("resources directory not found, using embedded resources", "path", abs)
	}
	return &Resources{dir: abs, fallback: fallback}, nil
}

func (r *Resources) Dir() string {
	return r.dir
}

func (r *Resources) ShaderPath(name string) string {
	return filepath.Join(r.dir, ShaderDir, name)
}

func (r *Resources) TexturePath(name string) string {
	return filepath.Join(r.dir, TextureDir, name)
}

// ReadShader prefers the file on disk over the embedded copy.
func (r *Resources) ReadShader(name string) (string, error) {
	data, err := os.ReadFile(r.ShaderPath(name))
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) || r.fallback == nil {
		return "", fmt.Errorf("could not read shader %q: %w", name, err)
	}

	data, err = fs.ReadFile(r.fallback, ShaderDir+"/"+name)
	if err != nil {
		return "", fmt.Errorf("could not read embedded shader %q: %w", name, err)
	}
	return string(data), nil
}

// LoadTexture decodes a texture flipped for GL. When name does not exist
// but an LZ4 packed variant does, that one is used.
func (r *Resources) LoadTexture(name string) (*libio.Image, error) {
	path := r.TexturePath(name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !libio.IsCompressed(path) {
		if _, err := os.Stat(path + libio.Lz4Ext); err == nil {
			path += libio.Lz4Ext
		}
	}
	return libio.DecodeFile(path, libio.DecodeOptions{FlipVertically: true})
}
