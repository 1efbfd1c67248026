package main

import (
	"gl-viewer/libcam"
	"gl-viewer/libgl"
	"gl-viewer/libgui"
	"gl-viewer/libtheme"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

const (
	GridNone uint64 = 0x0
	GridShow uint64 = 0x1

	GridAxisX    uint64 = 0x010
	GridAxisY    uint64 = 0x020
	GridAxisZ    uint64 = 0x040
	GridAxisMask uint64 = 0x070

	GridPlaneXY   uint64 = 0x100
	GridPlaneYZ   uint64 = 0x200
	GridPlaneXZ   uint64 = 0x400
	GridPlaneMask uint64 = 0x700

	DefaultGridFlags = GridShow | GridAxisX | GridAxisZ | GridPlaneXZ
)

var (
	gridAxisFlags   = []uint64{GridAxisX, GridAxisY, GridAxisZ}
	gridAxisLabels  = []string{"X", "Y", "Z"}
	gridPlaneFlags  = []uint64{GridPlaneXY, GridPlaneYZ, GridPlaneXZ}
	gridPlaneLabels = []string{"XY", "YZ", "XZ"}
)

// GridVisible reports whether flags select anything to draw.
func GridVisible(flags uint64) bool {
	return flags&(GridAxisMask|GridPlaneMask) != GridNone
}

// Grid is an infinite ground grid drawn from a single screen-filling quad
// without vertex attributes.
type Grid struct {
	Flags  uint64
	vao    libgl.UnboundVertexArray
	shader libgl.UnboundShaderPipeline
}

func NewGrid(shader libgl.UnboundShaderPipeline) *Grid {
	vao := libgl.NewVertexArray()
	vao.SetDebugLabel("grid")
	return &Grid{
		Flags:  DefaultGridFlags,
		vao:    vao,
		shader: shader,
	}
}

// RenderUi edits the flags. Show is a checkbox, axes toggle freely and at
// most one plane is active.
func (grid *Grid) RenderUi() {
	show := grid.Flags&GridShow != 0
	axis := grid.Flags & GridAxisMask
	plane := grid.Flags & GridPlaneMask

	imgui.Checkbox("Show Grid", &show)
	libgui.ButtonFlagsGroup("Axis", &axis, gridAxisFlags, gridAxisLabels, false)
	libgui.ButtonFlagsGroup("Plane", &plane, gridPlaneFlags, gridPlaneLabels, true)

	grid.Flags = axis | plane
	if show {
		grid.Flags |= GridShow
	}
}

func (grid *Grid) Render(camera *libcam.Camera, theme *libtheme.Theme) {
	if !GridVisible(grid.Flags) {
		return
	}

	libgl.State.Enable(libgl.Blend)
	libgl.State.BlendFunc(libgl.BlendSrcAlpha, libgl.BlendOneMinusSrcAlpha)
	libgl.State.Disable(libgl.CullFace)
	defer libgl.State.Disable(libgl.Blend)

	grid.vao.Bind()
	grid.shader.Bind()

	view, projection := camera.LookAt(), camera.Projection()
	vert := grid.shader.Get(gl.VERTEX_SHADER)
	vert.SetUniform("u_view", view)
	vert.SetUniform("u_projection", projection)

	frag := grid.shader.Get(gl.FRAGMENT_SHADER)
	frag.SetUniform("u_view", view)
	frag.SetUniform("u_projection", projection)
	frag.SetUniform("u_camera", camera.Position())
	frag.SetUniform("u_near", camera.Near())
	frag.SetUniform("u_far", camera.Far())
	frag.SetUniform("u_flags", uint32(grid.Flags))
	frag.SetUniform("u_grid_color", theme.Get(libtheme.Grid).Vec3())
	frag.SetUniform("u_emphasis_color", theme.Get(libtheme.GridEmphasis).Vec3())
	frag.SetUniform("u_axis_x_color", theme.Get(libtheme.AxisX).Vec3())
	frag.SetUniform("u_axis_y_color", theme.Get(libtheme.AxisY).Vec3())
	frag.SetUniform("u_axis_z_color", theme.Get(libtheme.AxisZ).Vec3())

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (grid *Grid) Delete() {
	grid.vao.Delete()
}
