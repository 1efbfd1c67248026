package main

import (
	"gl-viewer/libcam"
	"gl-viewer/libgl"
	"gl-viewer/libtheme"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
)

var cubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

var cubeRotationAxis = mgl32.Vec3{1, 0.3, 0.5}.Normalize()

// CubeModel is the model matrix of the i-th cube at time t seconds. Each
// cube spins 15 degrees per second faster than the previous one.
func CubeModel(i int, t float64) mgl32.Mat4 {
	angle := float32(t) * 15 * float32(i+1)
	translate := mgl32.Translate3D(cubePositions[i].Elem())
	return translate.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), cubeRotationAxis))
}

// Engine owns the scene: the camera, the cubes and the grid. It is the
// navigation target the window forwards input to.
type Engine struct {
	Camera *libcam.Camera
	Cube   *Cube
	Grid   *Grid
	theme  *libtheme.Theme
}

func NewEngine(camera *libcam.Camera, cube *Cube, grid *Grid, theme *libtheme.Theme) *Engine {
	return &Engine{
		Camera: camera,
		Cube:   cube,
		Grid:   grid,
		theme:  theme,
	}
}

func (e *Engine) Render(event libcam.Event) {
	libgl.PushDebugGroup("Render scene")
	defer libgl.PopDebugGroup()

	libgl.State.Enable(libgl.DepthTest)
	libgl.State.DepthFunc(libgl.DepthFuncLess)
	libgl.State.DepthMask(true)

	for i := range cubePositions {
		e.Cube.Transform(CubeModel(i, event.CurrentTime))
		e.Cube.Render(e.Camera)
	}
	e.Grid.Render(e.Camera, e.theme)
}

func (e *Engine) SetViewport(width, height int) {
	e.Camera.SetDimensions(width, height)
}

func (e *Engine) ProcessMouse(event libcam.MouseEvent)       { e.Camera.ProcessMouse(event) }
func (e *Engine) ProcessScroll(event libcam.ScrollEvent)     { e.Camera.ProcessScroll(event) }
func (e *Engine) ProcessKeyboard(event libcam.KeyboardEvent) { e.Camera.ProcessKeyboard(event) }
func (e *Engine) Focus()                                     { e.Camera.Focus() }
func (e *Engine) UnFocus()                                   { e.Camera.UnFocus() }

func (e *Engine) GridUi() {
	e.Grid.RenderUi()
}

func (e *Engine) CameraUi() {
	cam := e.Camera

	imgui.Text("Controls")
	imgui.Separator()
	fov := cam.Fov()
	if imgui.DragFloatV("FOV", &fov, 1, libcam.MinFov, libcam.MaxFov, "%.0f", imgui.SliderFlagsNone) {
		cam.SetFov(fov)
	}
	speed := cam.Speed()
	if imgui.DragFloatV("Speed", &speed, 0.1, libcam.MinSpeed, libcam.MaxSpeed, "%.1f", imgui.SliderFlagsNone) {
		cam.SetSpeed(speed)
	}
	near, far := cam.Near(), cam.Far()
	nearChanged := imgui.DragFloatV("Near", &near, 0.1, libcam.MinNear, 200, "%.1f", imgui.SliderFlagsNone)
	farChanged := imgui.DragFloatV("Far", &far, 0.1, libcam.MinNear, 200, "%.1f", imgui.SliderFlagsNone)
	if nearChanged || farChanged {
		cam.SetPlanes(near, far)
	}

	imgui.Text("Transformations")
	imgui.Separator()
	pitch, yaw := cam.Pitch(), cam.Yaw()
	pitchChanged := imgui.DragFloatV("Pitch", &pitch, 1, -libcam.MaxPitch, libcam.MaxPitch, "%.0f", imgui.SliderFlagsNone)
	yawChanged := imgui.DragFloatV("Yaw", &yaw, 1, 0, 0, "%.0f", imgui.SliderFlagsNone)
	if pitchChanged || yawChanged {
		cam.SetOrientation(pitch, yaw)
	}
	position := [3]float32(cam.Position())
	if imgui.DragFloat3("XYZ", &position) {
		cam.SetPosition(mgl32.Vec3(position))
	}
}
