package libcam

import (
	"gl-viewer/libutil"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinFov      = 1
	MaxFov      = 89
	MaxPitch    = 89
	MinSpeed    = 0.1
	MaxSpeed    = 50
	MinNear     = 0.1
	MinPlaneGap = 0.1
)

type Defaults struct {
	Position    mgl32.Vec3
	Fov         float32
	Speed       float32
	Sensitivity float32
	Near, Far   float32
}

var DefaultSettings = Defaults{
	Position:    mgl32.Vec3{0, 1, 3},
	Fov:         50,
	Speed:       5,
	Sensitivity: 0.1,
	Near:        0.1,
	Far:         100,
}

// Camera is a fly camera driven by Euler angles in degrees.
// The zero value is not usable, see New.
type Camera struct {
	width, height int

	near, far float32

	firstMouse bool
	lastMouse  MouseEvent

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3

	fov         float32
	speed       float32
	sensitivity float32
	pitch       float32
	yaw         float32
}

func New(d Defaults) *Camera {
	cam := &Camera{
		firstMouse: true,
		front:      mgl32.Vec3{0, 0, -1},
		up:         mgl32.Vec3{0, 1, 0},
		yaw:        -90,
	}
	cam.Apply(d)
	return cam
}

// Apply replaces the configurable settings and keeps the orientation.
func (cam *Camera) Apply(d Defaults) {
	cam.position = d.Position
	cam.sensitivity = d.Sensitivity
	cam.SetFov(d.Fov)
	cam.SetSpeed(d.Speed)
	cam.SetPlanes(d.Near, d.Far)
}

func (cam *Camera) ProcessMouse(event MouseEvent) {
	if cam.firstMouse {
		cam.lastMouse = event
		cam.firstMouse = false
	}

	xOffset := float32(event.X-cam.lastMouse.X) * cam.sensitivity
	yOffset := float32(cam.lastMouse.Y-event.Y) * cam.sensitivity
	cam.lastMouse = event

	cam.yaw += xOffset
	cam.pitch = libutil.Clamp(cam.pitch+yOffset, -MaxPitch, MaxPitch)
	cam.updateFront()
}

func (cam *Camera) ProcessScroll(event ScrollEvent) {
	cam.fov = libutil.Clamp(cam.fov-float32(event.YOffset), MinFov, MaxFov)
}

func (cam *Camera) ProcessKeyboard(event KeyboardEvent) {
	step := cam.speed * float32(event.ElapsedTime)

	right := cam.front.Cross(cam.up).Normalize()
	// horizontal projection of the front vector, pointing backwards
	back := cam.front.Cross(cam.up).Cross(cam.up).Normalize()

	if event.Forward {
		cam.position = cam.position.Sub(back.Mul(step))
	}
	if event.Backward {
		cam.position = cam.position.Add(back.Mul(step))
	}
	if event.Down {
		cam.position = cam.position.Sub(cam.up.Mul(step))
	}
	if event.Up {
		cam.position = cam.position.Add(cam.up.Mul(step))
	}
	if event.Left {
		cam.position = cam.position.Sub(right.Mul(step))
	}
	if event.Right {
		cam.position = cam.position.Add(right.Mul(step))
	}
}

// Focus and UnFocus both discard the last cursor position so the first
// motion after a mode change does not jump.
func (cam *Camera) Focus()   { cam.firstMouse = true }
func (cam *Camera) UnFocus() { cam.firstMouse = true }

func (cam *Camera) SetDimensions(width, height int) {
	cam.width = width
	cam.height = height
}

func (cam *Camera) AspectRatio() float32 {
	if cam.height == 0 {
		return 1
	}
	return float32(cam.width) / float32(cam.height)
}

func (cam *Camera) LookAt() mgl32.Mat4 {
	return mgl32.LookAtV(cam.position, cam.position.Add(cam.front), cam.up)
}

func (cam *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(cam.fov*libutil.Deg2Rad, cam.AspectRatio(), cam.near, cam.far)
}

func (cam *Camera) SetFov(fov float32) {
	cam.fov = libutil.Clamp(fov, MinFov, MaxFov)
}

func (cam *Camera) SetSpeed(speed float32) {
	cam.speed = libutil.Clamp(speed, MinSpeed, MaxSpeed)
}

// SetPlanes accepts the planes in any order. Equal planes push far back by
// MinPlaneGap so the projection stays finite.
func (cam *Camera) SetPlanes(a, b float32) {
	cam.near = libutil.Max(libutil.Min(a, b), MinNear)
	cam.far = libutil.Max(libutil.Max(a, b), cam.near+MinPlaneGap)
}

func (cam *Camera) SetOrientation(pitch, yaw float32) {
	cam.pitch = libutil.Clamp(pitch, -MaxPitch, MaxPitch)
	cam.yaw = yaw
	cam.updateFront()
}

func (cam *Camera) SetPosition(position mgl32.Vec3) {
	cam.position = position
}

func (cam *Camera) updateFront() {
	yaw := cam.yaw * libutil.Deg2Rad
	pitch := cam.pitch * libutil.Deg2Rad
	cam.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

func (cam *Camera) Position() mgl32.Vec3 { return cam.position }
func (cam *Camera) Front() mgl32.Vec3    { return cam.front }
func (cam *Camera) Up() mgl32.Vec3       { return cam.up }
func (cam *Camera) Width() int           { return cam.width }
func (cam *Camera) Height() int          { return cam.height }
func (cam *Camera) Near() float32        { return cam.near }
func (cam *Camera) Far() float32         { return cam.far }
func (cam *Camera) Fov() float32         { return cam.fov }
func (cam *Camera) Speed() float32       { return cam.speed }
func (cam *Camera) Pitch() float32       { return cam.pitch }
func (cam *Camera) Yaw() float32         { return cam.yaw }
