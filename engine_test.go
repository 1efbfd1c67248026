package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCubeModelAtStart(t *testing.T) {
	for i, pos := range cubePositions {
		model := CubeModel(i, 0)
		assert.True(t, model.ApproxEqual(mgl32.Translate3D(pos.Elem())), "cube %d", i)
	}
}

func TestCubeModelKeepsTranslation(t *testing.T) {
	model := CubeModel(3, 2.5)
	assert.True(t, model.Col(3).Vec3().ApproxEqual(cubePositions[3]))
}

func TestCubeModelSpeedGrowsWithIndex(t *testing.T) {
	// after 12s the first cube turned 180 degrees and the second 360
	first := CubeModel(0, 12).Mat3()
	second := CubeModel(1, 12).Mat3()
	assert.False(t, first.ApproxEqualThreshold(mgl32.Ident3(), 1e-4))
	assert.True(t, second.ApproxEqualThreshold(mgl32.Ident3(), 1e-4))
}

func TestCubeModelRotatesAroundAxis(t *testing.T) {
	rotation := CubeModel(4, 1.7).Mat3()
	assert.True(t, rotation.Mul3x1(cubeRotationAxis).ApproxEqualThreshold(cubeRotationAxis, 1e-5))
}
