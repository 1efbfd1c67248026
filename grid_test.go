package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridDefaults(t *testing.T) {
	assert.Equal(t, uint64(0x451), DefaultGridFlags)
	assert.True(t, GridVisible(DefaultGridFlags))
}

func TestGridVisible(t *testing.T) {
	assert.False(t, GridVisible(GridNone))
	assert.False(t, GridVisible(GridShow))
	assert.True(t, GridVisible(GridAxisY))
	assert.True(t, GridVisible(GridPlaneYZ))
	assert.True(t, GridVisible(GridShow|GridAxisX|GridAxisZ))
}

func TestGridMasks(t *testing.T) {
	for _, f := range gridAxisFlags {
		assert.Equal(t, f, f&GridAxisMask)
		assert.Zero(t, f&GridPlaneMask)
	}
	for _, f := range gridPlaneFlags {
		assert.Equal(t, f, f&GridPlaneMask)
		assert.Zero(t, f&GridAxisMask)
	}
	assert.Len(t, gridAxisLabels, len(gridAxisFlags))
	assert.Len(t, gridPlaneLabels, len(gridPlaneFlags))
}
