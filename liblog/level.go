// Package liblog backs the in-app log console. It provides a slog handler
// that mirrors records into a bounded console and a colored terminal.
package liblog

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelName returns the console name of a level: Error, Warning, Info or
// Debug. Levels between the named ones round down.
func LevelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "Error"
	case level >= slog.LevelWarn:
		return "Warning"
	case level >= slog.LevelInfo:
		return "Info"
	default:
		return "Debug"
	}
}

// ParseLevel accepts level names case-insensitively, including slog's own
// spellings such as "warn".
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return slog.LevelError, nil
	case "warning", "warn":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Levels lists the named levels from most to least severe.
var Levels = []slog.Level{slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug}

// LevelIndex returns the position of level's name in Levels.
func LevelIndex(level slog.Level) int {
	name := LevelName(level)
	for i, l := range Levels {
		if LevelName(l) == name {
			return i
		}
	}
	return len(Levels) - 1
}
