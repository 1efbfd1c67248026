package main

import (
	"gl-viewer/libcam"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// MovementKeys binds the camera movement directions to keys.
type MovementKeys struct {
	Forward, Backward, Left, Right, Up, Down glfw.Key
}

var DefaultMovementKeys = MovementKeys{
	Forward:  glfw.KeyW,
	Backward: glfw.KeyS,
	Left:     glfw.KeyA,
	Right:    glfw.KeyD,
	Up:       glfw.KeySpace,
	Down:     glfw.KeyLeftShift,
}

// Input samples the keyboard once per frame so taps can be told apart from
// held keys.
type Input struct {
	curr inputState
	prev inputState
}

type inputState struct {
	keys []bool
}

func newInputState() inputState {
	return inputState{keys: make([]bool, glfw.KeyLast+1)}
}

func NewInput() *Input {
	return &Input{
		curr: newInputState(),
		prev: newInputState(),
	}
}

func (i *Input) IsKeyDown(key glfw.Key) bool {
	if key < 0 || int(key) >= len(i.curr.keys) {
		return false
	}
	return i.curr.keys[key]
}

func (i *Input) IsKeyTap(key glfw.Key) bool {
	if key < 0 || int(key) >= len(i.curr.keys) {
		return false
	}
	return i.curr.keys[key] && !i.prev.keys[key]
}

// Movement builds the keyboard event for the camera from the held keys.
func (i *Input) Movement(keys MovementKeys, event libcam.Event) libcam.KeyboardEvent {
	return libcam.KeyboardEvent{
		Event:    event,
		Forward:  i.IsKeyDown(keys.Forward),
		Backward: i.IsKeyDown(keys.Backward),
		Left:     i.IsKeyDown(keys.Left),
		Right:    i.IsKeyDown(keys.Right),
		Up:       i.IsKeyDown(keys.Up),
		Down:     i.IsKeyDown(keys.Down),
	}
}

func (i *Input) Update(ctx *glfw.Window) {
	i.update(func(key glfw.Key) bool {
		return ctx.GetKey(key) != glfw.Release
	})
}

func (i *Input) update(down func(key glfw.Key) bool) {
	keys := i.prev.keys
	i.prev = i.curr
	for key := glfw.KeySpace; key <= glfw.KeyLast; key++ {
		keys[key] = down(key)
	}
	i.curr = inputState{keys: keys}
}
