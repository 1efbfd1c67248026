package liblog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler formats records as
//
//	[Level] file:function():line: message key=value ...
//
// and appends them to a Console. If a terminal writer is set the same line
// is printed there, colored by level.
type Handler struct {
	console *Console
	level   slog.Leveler
	term    *termenv.Output
	mu      *sync.Mutex
	attrs   string
	group   string
}

// NewHandler creates a handler. term may be nil to only fill the console.
func NewHandler(console *Console, term io.Writer, level slog.Leveler) *Handler {
	h := &Handler{
		console: console,
		level:   level,
		mu:      &sync.Mutex{},
	}
	if term != nil {
		h.term = termenv.NewOutput(term)
	}
	return h
}

func (h *Handler) Console() *Console {
	return h.console
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	sb := &strings.Builder{}
	sb.WriteString("[")
	sb.WriteString(LevelName(r.Level))
	sb.WriteString("] ")
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		fmt.Fprintf(sb, "%s:%s():%d: ", filepath.Base(frame.File), shortFunction(frame.Function), frame.Line)
	}
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(sb, h.group, a)
		return true
	})
	line := sb.String()

	if h.console != nil {
		h.console.Append(Line{Level: r.Level, Text: line})
	}

	if h.term != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
		_, err := fmt.Fprintln(h.term, h.colorize(r.Level, line))
		return err
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	sb := &strings.Builder{}
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(sb, h.group, a)
	}
	h2 := *h
	h2.attrs = sb.String()
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.group = h.group + name + "."
	return &h2
}

func (h *Handler) colorize(level slog.Level, line string) string {
	style := h.term.String(line)
	switch {
	case level >= slog.LevelError:
		style = style.Foreground(h.term.Color("1"))
	case level >= slog.LevelWarn:
		style = style.Foreground(h.term.Color("3"))
	case level < slog.LevelInfo:
		style = style.Faint()
	}
	return style.String()
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(group)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	value := a.Value.String()
	if strings.ContainsAny(value, " \t\"=") {
		value = fmt.Sprintf("%q", value)
	}
	sb.WriteString(value)
}

// shortFunction strips the import path from a runtime function name,
// leaving e.g. "(*Window).Run".
func shortFunction(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.IndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}
