package libgl

import (
	"log/slog"
	"testing"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestDebugSeverityLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, debugSeverityLevel(gl.DEBUG_SEVERITY_HIGH))
	assert.Equal(t, slog.LevelError, debugSeverityLevel(gl.DEBUG_SEVERITY_MEDIUM))
	assert.Equal(t, slog.LevelWarn, debugSeverityLevel(gl.DEBUG_SEVERITY_LOW))
	assert.Equal(t, slog.LevelDebug, debugSeverityLevel(gl.DEBUG_SEVERITY_NOTIFICATION))
}

func TestDebugNames(t *testing.T) {
	assert.Equal(t, "shader compiler", debugSourceName(gl.DEBUG_SOURCE_SHADER_COMPILER))
	assert.Equal(t, "performance", debugTypeName(gl.DEBUG_TYPE_PERFORMANCE))
	assert.Equal(t, "other", debugTypeName(0))
}
