package libgl

import (
	"github.com/go-gl/gl/v4.5-core/gl"
)

type Capability uint32

const (
	DepthTest   Capability = gl.DEPTH_TEST
	Blend       Capability = gl.BLEND
	ScissorTest Capability = gl.SCISSOR_TEST
	CullFace    Capability = gl.CULL_FACE
)

type BlendFactor uint32

const (
	BlendSrcAlpha         BlendFactor = gl.SRC_ALPHA
	BlendOneMinusSrcAlpha BlendFactor = gl.ONE_MINUS_SRC_ALPHA
)

type DepthFunc uint32

const (
	DepthFuncLess   DepthFunc = gl.LESS
	DepthFuncLEqual DepthFunc = gl.LEQUAL
)

// StateManager caches GL state so redundant calls are skipped. It must only
// be used from the thread that owns the context, and every GL call touching
// the cached state has to go through it.
type StateManager struct {
	Caps                           map[Capability]bool
	TextureUnits, SamplerUnits     []uint32
	ProgramPipeline, VertexArray   uint32
	ViewportRect, ScissorRect      [4]int32
	BlendFactorSrc, BlendFactorDst BlendFactor
	DepthFuncFn                    DepthFunc
	DepthWriteMask                 bool
	ClearColorRGBA                 [4]float32
}

var State *StateManager

func NewStateManager() *StateManager {
	return &StateManager{
		Caps:           map[Capability]bool{},
		TextureUnits:   make([]uint32, 32),
		SamplerUnits:   make([]uint32, 32),
		DepthFuncFn:    DepthFuncLess,
		DepthWriteMask: true,
	}
}

func (s *StateManager) Enable(cap Capability) {
	if enabled, ok := s.Caps[cap]; ok && enabled {
		return
	}
	gl.Enable(uint32(cap))
	s.Caps[cap] = true
}

func (s *StateManager) Disable(cap Capability) {
	if enabled, ok := s.Caps[cap]; ok && !enabled {
		return
	}
	gl.Disable(uint32(cap))
	s.Caps[cap] = false
}

func (s *StateManager) BlendFunc(sfactor, dfactor BlendFactor) {
	if s.BlendFactorSrc == sfactor && s.BlendFactorDst == dfactor {
		return
	}
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
	s.BlendFactorSrc = sfactor
	s.BlendFactorDst = dfactor
}

func (s *StateManager) DepthFunc(fn DepthFunc) {
	if s.DepthFuncFn == fn {
		return
	}
	gl.DepthFunc(uint32(fn))
	s.DepthFuncFn = fn
}

func (s *StateManager) DepthMask(flag bool) {
	if s.DepthWriteMask == flag {
		return
	}
	gl.DepthMask(flag)
	s.DepthWriteMask = flag
}

func (s *StateManager) Viewport(x, y, w, h int32) {
	rect := [4]int32{x, y, w, h}
	if s.ViewportRect == rect {
		return
	}
	gl.Viewport(x, y, w, h)
	s.ViewportRect = rect
}

func (s *StateManager) Scissor(x, y, w, h int32) {
	rect := [4]int32{x, y, w, h}
	if s.ScissorRect == rect {
		return
	}
	gl.Scissor(x, y, w, h)
	s.ScissorRect = rect
}

func (s *StateManager) ClearColor(r, g, b, a float32) {
	rgba := [4]float32{r, g, b, a}
	if s.ClearColorRGBA == rgba {
		return
	}
	gl.ClearColor(r, g, b, a)
	s.ClearColorRGBA = rgba
}

func (s *StateManager) BindTextureUnit(unit int, texture uint32) {
	if s.TextureUnits[unit] == texture {
		return
	}
	gl.BindTextureUnit(uint32(unit), texture)
	s.TextureUnits[unit] = texture
}

func (s *StateManager) BindSampler(unit int, sampler uint32) {
	if s.SamplerUnits[unit] == sampler {
		return
	}
	gl.BindSampler(uint32(unit), sampler)
	s.SamplerUnits[unit] = sampler
}

func (s *StateManager) BindVertexArray(vao uint32) {
	if s.VertexArray == vao {
		return
	}
	gl.BindVertexArray(vao)
	s.VertexArray = vao
}

func (s *StateManager) BindProgramPipeline(pipeline uint32) {
	if s.ProgramPipeline == pipeline {
		return
	}
	gl.BindProgramPipeline(pipeline)
	s.ProgramPipeline = pipeline
}

