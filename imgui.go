package main

import (
	"gl-viewer/libgl"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

// ImGui renders Dear ImGui draw lists with the libgl wrappers and feeds it
// window input.
type ImGui struct {
	IO        imgui.IO
	FrameTime float64
	context   *imgui.Context
	vao       libgl.UnboundVertexArray
	vbo       libgl.UnboundStreamBuffer
	ebo       libgl.UnboundStreamBuffer
	atlas     libgl.UnboundTexture
	sampler   libgl.UnboundSampler
	shader    libgl.UnboundShaderPipeline
}

func NewImGui(win *glfw.Window, shader libgl.UnboundShaderPipeline) *ImGui {
	context := imgui.CreateContext(nil)

	io := imgui.CurrentIO()
	dispWidth, dispHeight := win.GetSize()
	io.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	imgui.StyleColorsDark()

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	vbo := libgl.NewStreamBuffer()
	vbo.SetDebugLabel("imgui vertices")
	ebo := libgl.NewStreamBuffer()
	ebo.SetDebugLabel("imgui indices")

	vao := libgl.NewVertexArray()
	vao.SetDebugLabel("imgui")
	vao.Format(0,
		libgl.Float32Attrib(2, vertexOffsetPos),
		libgl.Float32Attrib(2, vertexOffsetUv),
		libgl.VertexAttrib{Components: 4, Type: gl.UNSIGNED_BYTE, Normalized: true, Offset: vertexOffsetCol})
	vao.Attach(0, vbo, vertexSize)
	vao.AttachElements(ebo)

	image := io.Fonts().TextureDataRGBA32()
	atlas := libgl.NewTexture2D()
	atlas.SetDebugLabel("imgui font atlas")
	atlas.Allocate(1, gl.RGBA8, image.Width, image.Height)
	atlas.Load(0, image.Width, image.Height, gl.RGBA, image.Pixels)
	io.Fonts().SetTextureID(imgui.TextureID(atlas.Id()))

	sampler := libgl.NewSampler()
	sampler.SetDebugLabel("imgui")
	sampler.FilterMode(gl.LINEAR, gl.LINEAR)
	sampler.WrapMode(gl.CLAMP_TO_EDGE, gl.CLAMP_TO_EDGE)

	keys := map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyPageUp:     glfw.KeyPageUp,
		imgui.KeyPageDown:   glfw.KeyPageDown,
		imgui.KeyHome:       glfw.KeyHome,
		imgui.KeyEnd:        glfw.KeyEnd,
		imgui.KeyInsert:     glfw.KeyInsert,
		imgui.KeyDelete:     glfw.KeyDelete,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeySpace:      glfw.KeySpace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
		imgui.KeyA:          glfw.KeyA,
		imgui.KeyC:          glfw.KeyC,
		imgui.KeyV:          glfw.KeyV,
		imgui.KeyX:          glfw.KeyX,
		imgui.KeyY:          glfw.KeyY,
		imgui.KeyZ:          glfw.KeyZ,
	}
	for imguiKey, glfwKey := range keys {
		io.KeyMap(imguiKey, int(glfwKey))
	}

	return &ImGui{
		IO:        io,
		FrameTime: glfw.GetTime(),
		context:   context,
		vao:       vao,
		vbo:       vbo,
		ebo:       ebo,
		atlas:     atlas,
		sampler:   sampler,
		shader:    shader,
	}
}

func (gui *ImGui) MouseMoved(x, y float64) {
	gui.IO.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
}

// imguiMouseButtons is the size of Dear ImGui's MouseDown array.
const imguiMouseButtons = 5

func (gui *ImGui) MouseButton(button glfw.MouseButton, action glfw.Action) {
	if button < 0 || int(button) >= imguiMouseButtons {
		return
	}
	gui.IO.SetMouseButtonDown(int(button), action == glfw.Press)
}

func (gui *ImGui) Scroll(x, y float64) {
	gui.IO.AddMouseWheelDelta(float32(x), float32(y))
}

func (gui *ImGui) Char(char rune) {
	gui.IO.AddInputCharacters(string(char))
}

func (gui *ImGui) Key(key glfw.Key, action glfw.Action) {
	if key == glfw.KeyUnknown {
		return
	}
	if action == glfw.Press {
		gui.IO.KeyPress(int(key))
	}
	if action == glfw.Release {
		gui.IO.KeyRelease(int(key))
	}

	// Modifiers are not reliable across systems
	gui.IO.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	gui.IO.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	gui.IO.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	gui.IO.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

// NewFrame updates display size and delta time and starts a frame.
func (gui *ImGui) NewFrame(win *glfw.Window, time float64) {
	dispWidth, dispHeight := win.GetSize()
	gui.IO.SetDisplaySize(imgui.Vec2{X: float32(dispWidth), Y: float32(dispHeight)})
	delta := time - gui.FrameTime
	if delta <= 0 {
		delta = 1. / 60.
	}
	gui.IO.SetDeltaTime(float32(delta))
	gui.FrameTime = time
	imgui.NewFrame()
}

func (gui *ImGui) Draw(win *glfw.Window) {
	libgl.PushDebugGroup("Draw ImGui")
	defer libgl.PopDebugGroup()

	imgui.Render()

	dispWidth, dispHeight := win.GetSize()
	fbWidth, fbHeight := win.GetFramebufferSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	libgl.State.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	ortho := mgl32.Ortho2D(0, float32(dispWidth), float32(dispHeight), 0)

	gui.vao.Bind()
	gui.shader.Bind()
	gui.shader.Get(gl.VERTEX_SHADER).SetUniform("u_proj_mat", ortho)
	gui.sampler.Bind(0)

	libgl.State.Enable(libgl.Blend)
	libgl.State.Enable(libgl.ScissorTest)
	libgl.State.Disable(libgl.DepthTest)
	libgl.State.Disable(libgl.CullFace)
	libgl.State.BlendFunc(libgl.BlendSrcAlpha, libgl.BlendOneMinusSrcAlpha)
	defer libgl.State.Disable(libgl.ScissorTest)

	drawData := imgui.RenderedDrawData()
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbWidth) / float32(dispWidth),
		Y: float32(fbHeight) / float32(dispHeight),
	})

	var indexType uint32
	indexSize := imgui.IndexBufferLayout()
	switch indexSize {
	case 1:
		indexType = gl.UNSIGNED_BYTE
	case 2:
		indexType = gl.UNSIGNED_SHORT
	case 4:
		indexType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gui.vbo.Stream(vertexBufferSize, vertexBuffer)
		indexBuffer, indexBufferSize := list.IndexBuffer()
		gui.ebo.Stream(indexBufferSize, indexBuffer)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				continue
			}
			libgl.State.BindTextureUnit(0, uint32(cmd.TextureID()))
			clipRect := cmd.ClipRect()
			x, y := int32(clipRect.X), int32(fbHeight)-int32(clipRect.W)
			if y < 0 {
				y = 0
			}
			libgl.State.Scissor(x, y, int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
			gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, uintptr(cmd.IndexOffset()*indexSize), int32(cmd.VertexOffset()))
		}
	}
}

func (gui *ImGui) Delete() {
	gui.vao.Delete()
	gui.vbo.Delete()
	gui.ebo.Delete()
	gui.atlas.Delete()
	gui.sampler.Delete()
	gui.context.Destroy()
}
