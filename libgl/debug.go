package libgl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
)

type LabeledGlObject interface {
	SetDebugLabel(string)
}

func setObjectLabel(namespace, id uint32, label string) {
	if label == "" {
		return
	}
	bytes := []byte(label)
	gl.ObjectLabel(namespace, id, int32(len(bytes)), (*uint8)(unsafe.Pointer(&bytes[0])))
}

// Driver chatter emitted on buffer uploads and shader state changes, keyed
// by message type.
var ignoredDebugMessages = map[uint32][]uint32{
	gl.DEBUG_TYPE_OTHER:              {131185},
	gl.DEBUG_TYPE_PERFORMANCE:        {131218},
	gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR: {131222},
}

func debugSeverityLevel(severity uint32) slog.Level {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH, gl.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelError
	case gl.DEBUG_SEVERITY_LOW:
		return slog.LevelWarn
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func debugTypeName(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated behavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined behavior"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	}
	return "other"
}

func debugSourceName(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader compiler"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window system"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	}
	return "other"
}

// EnableDebugOutput routes GL debug messages into logger. Debug groups pushed
// with PushDebugGroup are tracked and attached to error messages.
func EnableDebugOutput(logger *slog.Logger) {
	var groupStack []string

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		switch gltype {
		case gl.DEBUG_TYPE_PUSH_GROUP:
			groupStack = append(groupStack, message)
			return
		case gl.DEBUG_TYPE_POP_GROUP:
			if len(groupStack) > 0 {
				groupStack = groupStack[:len(groupStack)-1]
			}
			return
		}

		level := debugSeverityLevel(severity)
		attrs := []slog.Attr{
			slog.String("type", debugTypeName(gltype)),
			slog.String("source", debugSourceName(source)),
			slog.Uint64("id", uint64(id)),
		}
		if level >= slog.LevelError && len(groupStack) > 0 {
			attrs = append(attrs, slog.String("stack", strings.Join(groupStack, " > ")))
		}
		logger.LogAttrs(context.Background(), level, fmt.Sprintf("gl: %s", strings.TrimSpace(message)), attrs...)
	}, nil)

	for gltype, ids := range ignoredDebugMessages {
		gl.DebugMessageControl(gl.DEBUG_SOURCE_API, gltype, gl.DONT_CARE, int32(len(ids)), &ids[0], false)
	}
}

// PushDebugGroup marks a section in GL debuggers and debug messages. Every
// call must be paired with PopDebugGroup.
func PushDebugGroup(name string) {
	gl.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, -1, gl.Str(name+"\x00"))
}

func PopDebugGroup() {
	gl.PopDebugGroup()
}
