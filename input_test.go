package main

import (
	"testing"

	"gl-viewer/libcam"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func pressed(keys ...glfw.Key) func(glfw.Key) bool {
	return func(key glfw.Key) bool {
		for _, k := range keys {
			if k == key {
				return true
			}
		}
		return false
	}
}

func TestInputTap(t *testing.T) {
	input := NewInput()

	input.update(pressed(glfw.KeyI))
	assert.True(t, input.IsKeyDown(glfw.KeyI))
	assert.True(t, input.IsKeyTap(glfw.KeyI))

	input.update(pressed(glfw.KeyI))
	assert.True(t, input.IsKeyDown(glfw.KeyI))
	assert.False(t, input.IsKeyTap(glfw.KeyI))

	input.update(pressed())
	assert.False(t, input.IsKeyDown(glfw.KeyI))
	assert.False(t, input.IsKeyTap(glfw.KeyI))
}

func TestInputOutOfRange(t *testing.T) {
	input := NewInput()
	assert.False(t, input.IsKeyDown(glfw.KeyUnknown))
	assert.False(t, input.IsKeyTap(glfw.KeyLast+1))
}

func TestInputMovement(t *testing.T) {
	input := NewInput()
	input.update(pressed(glfw.KeyW, glfw.KeyD, glfw.KeyLeftShift))

	event := libcam.Event{CurrentTime: 2, ElapsedTime: 0.5}
	got := input.Movement(DefaultMovementKeys, event)
	assert.Equal(t, libcam.KeyboardEvent{
		Event:   event,
		Forward: true,
		Right:   true,
		Down:    true,
	}, got)
}
