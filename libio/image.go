package libio

// Image holds tightly packed 8-bit pixels, row by row, ready for a texture
// upload.
type Image struct {
	Width, Height int
	Channels      int
	Pix           []uint8
}

func NewImage(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// Offset returns the index of the first channel of pixel (x, y) in Pix.
// Decoded with FlipVertically, row 0 is the bottom row.
func (img *Image) Offset(x, y int) int {
	return (y*img.Width + x) * img.Channels
}

func (img *Image) Bytes() int {
	return len(img.Pix)
}

// WithChannels repacks the pixels into n channels. Surplus channels are
// dropped and new ones are set to fill.
func (img *Image) WithChannels(n int, fill uint8) *Image {
	if n == img.Channels {
		return img
	}
	dst := NewImage(img.Width, img.Height, n)
	keep := min(n, img.Channels)
	for s, d := 0, 0; d < len(dst.Pix); s, d = s+img.Channels, d+n {
		copy(dst.Pix[d:d+keep], img.Pix[s:s+keep])
		for c := keep; c < n; c++ {
			dst.Pix[d+c] = fill
		}
	}
	return dst
}

// Checkerboard generates an RGB image of size x size pixels with cells
// alternating between a and b. It stands in for textures that failed to load.
func Checkerboard(size, cells int, a, b [3]uint8) *Image {
	cell := max(size/max(cells, 1), 1)
	img := NewImage(size, size, 3)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			col := a
			if (x/cell+y/cell)%2 == 1 {
				col = b
			}
			copy(img.Pix[img.Offset(x, y):], col[:])
		}
	}
	return img
}
