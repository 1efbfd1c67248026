package libcam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], tol, "component %d of %v", i, actual)
	}
}

func TestDefaults(t *testing.T) {
	cam := New(DefaultSettings)
	assertVec(t, mgl32.Vec3{0, 1, 3}, cam.Position())
	assertVec(t, mgl32.Vec3{0, 0, -1}, cam.Front())
	assert.Equal(t, float32(50), cam.Fov())
	assert.Equal(t, float32(0.1), cam.Near())
	assert.Equal(t, float32(100), cam.Far())
	assert.Equal(t, float32(-90), cam.Yaw())
}

func TestFirstMouseEventOnlyRecords(t *testing.T) {
	cam := New(DefaultSettings)
	cam.ProcessMouse(MouseEvent{X: 500, Y: 300})
	assert.Equal(t, float32(-90), cam.Yaw())
	assert.Equal(t, float32(0), cam.Pitch())

	cam.ProcessMouse(MouseEvent{X: 510, Y: 280})
	assert.InDelta(t, -89, cam.Yaw(), tol)
	assert.InDelta(t, 2, cam.Pitch(), tol)
}

func TestFocusResetsFirstMouse(t *testing.T) {
	cam := New(DefaultSettings)
	cam.ProcessMouse(MouseEvent{X: 0, Y: 0})
	cam.UnFocus()
	cam.Focus()
	cam.ProcessMouse(MouseEvent{X: 1000, Y: 1000})
	assert.Equal(t, float32(-90), cam.Yaw())
	assert.Equal(t, float32(0), cam.Pitch())
}

func TestPitchIsClamped(t *testing.T) {
	cam := New(DefaultSettings)
	cam.ProcessMouse(MouseEvent{})
	cam.ProcessMouse(MouseEvent{Y: -10000})
	assert.Equal(t, float32(MaxPitch), cam.Pitch())
	cam.ProcessMouse(MouseEvent{Y: 10000})
	assert.Equal(t, float32(-MaxPitch), cam.Pitch())
	assert.InDelta(t, 1, cam.Front().Len(), tol)
}

func TestScrollChangesFov(t *testing.T) {
	cam := New(DefaultSettings)
	cam.ProcessScroll(ScrollEvent{YOffset: 10})
	assert.Equal(t, float32(40), cam.Fov())
	cam.ProcessScroll(ScrollEvent{YOffset: 100})
	assert.Equal(t, float32(MinFov), cam.Fov())
	cam.ProcessScroll(ScrollEvent{YOffset: -500})
	assert.Equal(t, float32(MaxFov), cam.Fov())
}

func TestKeyboardMovement(t *testing.T) {
	cases := []struct {
		name  string
		event KeyboardEvent
		delta mgl32.Vec3
	}{
		{"forward", KeyboardEvent{Forward: true}, mgl32.Vec3{0, 0, -5}},
		{"backward", KeyboardEvent{Backward: true}, mgl32.Vec3{0, 0, 5}},
		{"left", KeyboardEvent{Left: true}, mgl32.Vec3{-5, 0, 0}},
		{"right", KeyboardEvent{Right: true}, mgl32.Vec3{5, 0, 0}},
		{"up", KeyboardEvent{Up: true}, mgl32.Vec3{0, 5, 0}},
		{"down", KeyboardEvent{Down: true}, mgl32.Vec3{0, -5, 0}},
		{"opposite keys cancel", KeyboardEvent{Left: true, Right: true}, mgl32.Vec3{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := New(DefaultSettings)
			c.event.ElapsedTime = 1
			cam.ProcessKeyboard(c.event)
			assertVec(t, DefaultSettings.Position.Add(c.delta), cam.Position())
		})
	}
}

func TestForwardStaysHorizontalWhenLookingDown(t *testing.T) {
	cam := New(DefaultSettings)
	cam.SetOrientation(-45, -90)
	cam.ProcessKeyboard(KeyboardEvent{Event: Event{ElapsedTime: 0.5}, Forward: true})
	assertVec(t, mgl32.Vec3{0, 1, 2.5}, cam.Position())
}

func TestSetPlanesOrdersValues(t *testing.T) {
	cam := New(DefaultSettings)
	cam.SetPlanes(50, 2)
	assert.Equal(t, float32(2), cam.Near())
	assert.Equal(t, float32(50), cam.Far())
	cam.SetPlanes(0, 0)
	assert.Equal(t, float32(MinNear), cam.Near())
	assert.Greater(t, cam.Far(), cam.Near())
}

func TestEqualPlanesKeepProjectionFinite(t *testing.T) {
	cam := New(DefaultSettings)
	cam.SetDimensions(800, 600)
	cam.SetPlanes(5, 5)
	assert.Equal(t, float32(5), cam.Near())
	assert.InDelta(t, 5+MinPlaneGap, cam.Far(), tol)

	proj := cam.Projection()
	for i, v := range proj {
		assert.False(t, math.IsInf(float64(v), 0) || math.IsNaN(float64(v)), "element %d is %v", i, v)
	}
}

func TestApplyKeepsOrientation(t *testing.T) {
	cam := New(DefaultSettings)
	cam.SetOrientation(20, -45)
	cam.Apply(Defaults{
		Position:    mgl32.Vec3{1, 2, 3},
		Fov:         70,
		Speed:       12,
		Sensitivity: 0.2,
		Near:        1,
		Far:         40,
	})
	assertVec(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.Equal(t, float32(70), cam.Fov())
	assert.Equal(t, float32(12), cam.Speed())
	assert.Equal(t, float32(1), cam.Near())
	assert.Equal(t, float32(40), cam.Far())
	assert.Equal(t, float32(20), cam.Pitch())
	assert.Equal(t, float32(-45), cam.Yaw())
}

func TestAspectRatio(t *testing.T) {
	cam := New(DefaultSettings)
	assert.Equal(t, float32(1), cam.AspectRatio())
	cam.SetDimensions(1600, 900)
	assert.InDelta(t, 16.0/9.0, cam.AspectRatio(), tol)
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	cam := New(DefaultSettings)
	eye := cam.LookAt().Mul4x1(cam.Position().Vec4(1))
	assertVec(t, mgl32.Vec3{}, eye.Vec3())

	ahead := cam.LookAt().Mul4x1(cam.Position().Add(cam.Front()).Vec4(1))
	assertVec(t, mgl32.Vec3{0, 0, -1}, ahead.Vec3())
}

func TestProjectionUsesFov(t *testing.T) {
	cam := New(DefaultSettings)
	cam.SetDimensions(100, 100)
	cam.SetFov(90)
	// fov is clamped to 89
	expected := mgl32.Perspective(mgl32.DegToRad(89), 1, 0.1, 100)
	assert.True(t, expected.ApproxEqualThreshold(cam.Projection(), tol))
}
