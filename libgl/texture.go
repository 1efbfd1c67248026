package libgl

import (
	"math"

	"github.com/go-gl/gl/v4.5-core/gl"
)

type texture struct {
	glId          uint32
	width, height int32
}

type UnboundTexture interface {
	LabeledGlObject
	Id() uint32
	Bind(unit int) BoundTexture
	Allocate(levels int, internalFormat uint32, width, height int)
	Load(level int, width, height int, format uint32, data any)
	GenerateMipmap()
	Size() (width, height int)
	Delete()
}

type BoundTexture interface {
	UnboundTexture
}

func NewTexture2D() UnboundTexture {
	var id uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &id)
	return &texture{
		glId: id,
	}
}

// MipmapLevels returns the number of levels of a full mip chain.
func MipmapLevels(width, height int) int {
	max := width
	if height > max {
		max = height
	}
	if max < 1 {
		return 1
	}
	return int(math.Log2(float64(max))) + 1
}

func (tex *texture) Id() uint32 {
	return tex.glId
}

func (tex *texture) Bind(unit int) BoundTexture {
	State.BindTextureUnit(unit, tex.glId)
	return BoundTexture(tex)
}

func (tex *texture) SetDebugLabel(label string) {
	setObjectLabel(gl.TEXTURE, tex.glId, label)
}

func (tex *texture) Size() (width, height int) {
	return int(tex.width), int(tex.height)
}

// Allocate creates immutable storage. levels == 0 allocates a full mip chain.
func (tex *texture) Allocate(levels int, internalFormat uint32, width, height int) {
	if levels == 0 {
		levels = MipmapLevels(width, height)
	}
	tex.width = int32(width)
	tex.height = int32(height)
	gl.TextureStorage2D(tex.glId, int32(levels), internalFormat, int32(width), int32(height))
}

func (tex *texture) Load(level int, width, height int, format uint32, data any) {
	// rows of RGB data are not 4-byte aligned in general
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TextureSubImage2D(tex.glId, int32(level), 0, 0, int32(width), int32(height), format, gl.UNSIGNED_BYTE, Pointer(data))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
}

func (tex *texture) GenerateMipmap() {
	gl.GenerateTextureMipmap(tex.glId)
}

func (tex *texture) Delete() {
	gl.DeleteTextures(1, &tex.glId)
	tex.glId = 0
}

type sampler struct {
	glId uint32
}

type UnboundSampler interface {
	LabeledGlObject
	Id() uint32
	Bind(unit int)
	FilterMode(min, mag int32)
	WrapMode(s, t int32)
	Delete()
}

func NewSampler() UnboundSampler {
	var id uint32
	gl.CreateSamplers(1, &id)
	return &sampler{glId: id}
}

func (s *sampler) Id() uint32 {
	return s.glId
}

func (s *sampler) Bind(unit int) {
	State.BindSampler(unit, s.glId)
}

func (s *sampler) SetDebugLabel(label string) {
	setObjectLabel(gl.SAMPLER, s.glId, label)
}

func (s *sampler) FilterMode(min, mag int32) {
	gl.SamplerParameteri(s.glId, gl.TEXTURE_MIN_FILTER, min)
	gl.SamplerParameteri(s.glId, gl.TEXTURE_MAG_FILTER, mag)
}

func (s *sampler) WrapMode(sMode, tMode int32) {
	gl.SamplerParameteri(s.glId, gl.TEXTURE_WRAP_S, sMode)
	gl.SamplerParameteri(s.glId, gl.TEXTURE_WRAP_T, tMode)
}

func (s *sampler) Delete() {
	gl.DeleteSamplers(1, &s.glId)
	s.glId = 0
}
