package libio

import (
	"bufio"
	"errors"
	"fmt"
	goimg "image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const Lz4Ext = ".lz4"

var ErrUnsupportedChannels = errors.New("unsupported channel count")

type DecodeOptions struct {
	// FlipVertically puts the first row at the bottom, matching GL's
	// texture coordinate origin.
	FlipVertically bool
}

// Info describes an encoded image without keeping its pixels.
type Info struct {
	Format        string
	Width, Height int
	Channels      int
	Compressed    bool
}

// IsCompressed reports whether a file name denotes an LZ4 wrapped image.
func IsCompressed(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Lz4Ext)
}

// Channels reports how many channels a GL upload of img needs.
func Channels(img goimg.Image) int {
	switch img.(type) {
	case *goimg.Gray, *goimg.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

func Decode(r io.Reader, opts DecodeOptions) (*Image, string, error) {
	src, format, err := goimg.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}

	channels := Channels(src)
	if channels != 3 && channels != 4 {
		return nil, format, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}

	if opts.FlipVertically {
		src = transform.FlipV(src)
	}

	bounds := src.Bounds()
	nrgba := goimg.NewNRGBA(goimg.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	img := &Image{Width: bounds.Dx(), Height: bounds.Dy(), Channels: 4, Pix: nrgba.Pix}
	return img.WithChannels(channels, 0xff), format, nil
}

// DecodeFile decodes an image from disk. Files ending in .lz4 are
// decompressed first.
func DecodeFile(path string, opts DecodeOptions) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = bufio.NewReader(file)
	if IsCompressed(path) {
		r = lz4.NewReader(r)
	}

	img, _, err := Decode(r, opts)
	if err != nil {
		return nil, fmt.Errorf("image %q: %w", path, err)
	}
	return img, nil
}

// Stat reads only the header of an image file.
func Stat(path string) (Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer file.Close()

	info := Info{Compressed: IsCompressed(path)}
	var r io.Reader = bufio.NewReader(file)
	if info.Compressed {
		r = lz4.NewReader(r)
	}

	// DecodeConfig does not reveal opacity, so the whole image is decoded.
	src, format, err := goimg.Decode(r)
	if err != nil {
		return Info{}, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	info.Format = format
	info.Width = src.Bounds().Dx()
	info.Height = src.Bounds().Dy()
	info.Channels = Channels(src)
	return info, nil
}
