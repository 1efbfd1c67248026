package main

import (
	"log/slog"

	"gl-viewer/libcam"
	"gl-viewer/libgl"
	"gl-viewer/libio"
	"gl-viewer/libres"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type cubeVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Uv       mgl32.Vec2
}

const cubeVertexSize = 8 * 4

func v(x, y, z, r, g, b, u, w float32) cubeVertex {
	return cubeVertex{mgl32.Vec3{x, y, z}, mgl32.Vec3{r, g, b}, mgl32.Vec2{u, w}}
}

var cubeVertices = []cubeVertex{
	v(-.5, -.5, -.5, 1, 0, 0, 0, 0),
	v(+.5, -.5, -.5, 1, 0, 0, 1, 0),
	v(+.5, +.5, -.5, 1, 0, 0, 1, 1),
	v(+.5, +.5, -.5, 0, 1, 0, 1, 1),
	v(-.5, +.5, -.5, 0, 1, 0, 0, 1),
	v(-.5, -.5, -.5, 0, 1, 0, 0, 0),

	v(-.5, -.5, +.5, 0, 0, 1, 0, 0),
	v(+.5, -.5, +.5, 0, 0, 1, 1, 0),
	v(+.5, +.5, +.5, 0, 0, 1, 1, 1),
	v(+.5, +.5, +.5, 1, 1, 0, 1, 1),
	v(-.5, +.5, +.5, 1, 1, 0, 0, 1),
	v(-.5, -.5, +.5, 1, 1, 0, 0, 0),

	v(-.5, +.5, +.5, 1, 0, 1, 1, 0),
	v(-.5, +.5, -.5, 1, 0, 1, 1, 1),
	v(-.5, -.5, -.5, 1, 0, 1, 0, 1),
	v(-.5, -.5, -.5, 0, 1, 1, 0, 1),
	v(-.5, -.5, +.5, 0, 1, 1, 0, 0),
	v(-.5, +.5, +.5, 0, 1, 1, 1, 0),

	v(+.5, +.5, +.5, 1, .5, 0, 1, 0),
	v(+.5, +.5, -.5, 1, .5, 0, 1, 1),
	v(+.5, -.5, -.5, 1, .5, 0, 0, 1),
	v(+.5, -.5, -.5, .5, 1, .5, 0, 1),
	v(+.5, -.5, +.5, .5, 1, .5, 0, 0),
	v(+.5, +.5, +.5, .5, 1, .5, 1, 0),

	v(-.5, -.5, -.5, .5, 0, 1, 0, 1),
	v(+.5, -.5, -.5, .5, 0, 1, 1, 1),
	v(+.5, -.5, +.5, .5, 0, 1, 1, 0),
	v(+.5, -.5, +.5, 1, 1, .1, 1, 0),
	v(-.5, -.5, +.5, 1, 1, .1, 0, 0),
	v(-.5, -.5, -.5, 1, 1, .1, 0, 1),

	v(-.5, +.5, -.5, 1, .5, 1, 0, 1),
	v(+.5, +.5, -.5, 1, .5, 1, 1, 1),
	v(+.5, +.5, +.5, 1, .5, 1, 1, 0),
	v(+.5, +.5, +.5, .5, 1, 1, 1, 0),
	v(-.5, +.5, +.5, .5, 1, 1, 0, 0),
	v(-.5, +.5, -.5, .5, 1, 1, 0, 1),
}

// CubeTextures names the two textures mixed on every face.
var CubeTextures = [2]string{"container.png", "awesomeface.png"}

type Cube struct {
	vao      libgl.UnboundVertexArray
	vbo      libgl.UnboundBuffer
	textures [2]libgl.UnboundTexture
	sampler  libgl.UnboundSampler
	shader   libgl.UnboundShaderPipeline
	model    mgl32.Mat4
}

func NewCube(res *libres.Resources, shader libgl.UnboundShaderPipeline) *Cube {
	vbo := libgl.NewStaticBuffer(cubeVertices)
	vbo.SetDebugLabel("cube vertices")

	vao := libgl.NewVertexArray()
	vao.SetDebugLabel("cube")
	vao.Format(0,
		libgl.Float32Attrib(3, 0),
		libgl.Float32Attrib(3, 3*4),
		libgl.Float32Attrib(2, 6*4))
	vao.Attach(0, vbo, cubeVertexSize)

	sampler := libgl.NewSampler()
	sampler.SetDebugLabel("cube")
	sampler.FilterMode(gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR)
	sampler.WrapMode(gl.REPEAT, gl.REPEAT)

	cube := &Cube{
		vao:     vao,
		vbo:     vbo,
		sampler: sampler,
		shader:  shader,
		model:   mgl32.Ident4(),
	}
	fallbacks := [2][2][3]uint8{
		{{0x80, 0x5a, 0x36}, {0xc8, 0x9a, 0x5e}},
		{{0xff, 0xff, 0xff}, {0x30, 0x30, 0x30}},
	}
	for i, name := range CubeTextures {
		cube.textures[i] = loadTexture(res, name, fallbacks[i])
	}

	frag := shader.Get(gl.FRAGMENT_SHADER)
	frag.SetUniform("texture1", 0)
	frag.SetUniform("texture2", 1)
	return cube
}

// loadTexture uploads the named texture. When it cannot be loaded the error
// is logged and a checkerboard in the given colors is used instead.
func loadTexture(res *libres.Resources, name string, fallback [2][3]uint8) libgl.UnboundTexture {
	img, err := res.LoadTexture(name)
	if err != nil {
		slog.Error("could not load texture, using a checkerboard", "texture", name, "error", err)
		img = libio.Checkerboard(256, 8, fallback[0], fallback[1])
	}

	format, internalFormat := uint32(gl.RGBA), uint32(gl.RGBA8)
	if img.Channels == 3 {
		format, internalFormat = gl.RGB, gl.RGB8
	}

	tex := libgl.NewTexture2D()
	tex.SetDebugLabel(name)
	tex.Allocate(0, internalFormat, img.Width, img.Height)
	tex.Load(0, img.Width, img.Height, format, img.Pix)
	tex.GenerateMipmap()
	return tex
}

func (cube *Cube) Transform(model mgl32.Mat4) {
	cube.model = model
}

func (cube *Cube) Render(camera *libcam.Camera) {
	cube.vao.Bind()
	cube.shader.Bind()
	for i, tex := range cube.textures {
		tex.Bind(i)
		cube.sampler.Bind(i)
	}

	vert := cube.shader.Get(gl.VERTEX_SHADER)
	vert.SetUniform("model", cube.model)
	vert.SetUniform("view", camera.LookAt())
	vert.SetUniform("proj", camera.Projection())

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cubeVertices)))
}

func (cube *Cube) Delete() {
	cube.vao.Delete()
	cube.vbo.Delete()
	for _, tex := range cube.textures {
		tex.Delete()
	}
	cube.sampler.Delete()
}
