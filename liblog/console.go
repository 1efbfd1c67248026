package liblog

import (
	"log/slog"
	"sync"
)

const DefaultCapacity = 1024

type Line struct {
	Level slog.Level
	Text  string
}

// Console is a bounded, thread-safe ring of formatted log lines. When full,
// appending drops the oldest line.
type Console struct {
	mu       sync.Mutex
	lines    []Line
	start    int
	count    int
	revision uint64
}

func NewConsole(capacity int) *Console {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Console{lines: make([]Line, capacity)}
}

func (c *Console) Append(line Line) {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := (c.start + c.count) % len(c.lines)
	c.lines[end] = line
	if c.count < len(c.lines) {
		c.count++
	} else {
		c.start = (c.start + 1) % len(c.lines)
	}
	c.revision++
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		c.lines[i] = Line{}
	}
	c.start = 0
	c.count = 0
	c.revision++
}

// Lines returns a copy of the buffered lines, oldest first.
func (c *Console) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, c.count)
	for i := 0; i < c.count; i++ {
		out[i] = c.lines[(c.start+i)%len(c.lines)]
	}
	return out
}

func (c *Console) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Console) Cap() int {
	return len(c.lines)
}

// Revision increases on every change, so views can tell when to scroll.
func (c *Console) Revision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revision
}
