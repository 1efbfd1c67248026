// Package libnav routes device input either to the GUI or to a 3D
// navigation target, depending on the current mode.
package libnav

import "gl-viewer/libcam"

type Mode uint8

const (
	Interface Mode = iota
	Navigation
)

func (m Mode) String() string {
	switch m {
	case Interface:
		return "interface"
	case Navigation:
		return "navigation"
	}
	return "unknown"
}

// Target receives input while navigating. libcam.Camera satisfies it.
type Target interface {
	ProcessMouse(event libcam.MouseEvent)
	ProcessScroll(event libcam.ScrollEvent)
	ProcessKeyboard(event libcam.KeyboardEvent)
	Focus()
	UnFocus()
}

// Listener is notified after every mode change, e.g. to grab the cursor
// or to turn off GUI input.
type Listener interface {
	ModeChanged(mode Mode)
}

type ListenerFunc func(mode Mode)

func (fn ListenerFunc) ModeChanged(mode Mode) { fn(mode) }

type Switch struct {
	mode      Mode
	target    Target
	listeners []Listener
}

func NewSwitch(target Target) *Switch {
	return &Switch{
		mode:   Interface,
		target: target,
	}
}

func (s *Switch) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Switch) Mode() Mode {
	return s.mode
}

func (s *Switch) Navigating() bool {
	return s.mode == Navigation
}

// Enter switches to navigation mode. It reports whether the mode changed.
func (s *Switch) Enter() bool {
	if s.mode == Navigation {
		return false
	}
	s.mode = Navigation
	s.target.Focus()
	s.notify()
	return true
}

// Leave switches back to interface mode. It reports whether the mode changed.
func (s *Switch) Leave() bool {
	if s.mode == Interface {
		return false
	}
	s.mode = Interface
	s.target.UnFocus()
	s.notify()
	return true
}

// Escape leaves navigation mode, or asks the caller to quit when the
// switch is already in interface mode.
func (s *Switch) Escape() (quit bool) {
	return !s.Leave()
}

func (s *Switch) Mouse(event libcam.MouseEvent) bool {
	if s.mode != Navigation {
		return false
	}
	s.target.ProcessMouse(event)
	return true
}

func (s *Switch) Scroll(event libcam.ScrollEvent) bool {
	if s.mode != Navigation {
		return false
	}
	s.target.ProcessScroll(event)
	return true
}

func (s *Switch) Keyboard(event libcam.KeyboardEvent) bool {
	if s.mode != Navigation {
		return false
	}
	s.target.ProcessKeyboard(event)
	return true
}

// Hint is the overlay text shown in the 3D view for the current mode.
func (s *Switch) Hint() string {
	if s.mode == Navigation {
		return "Press <Escape> to leave Navigation mode"
	}
	return "Press <i> or Double-Click to enter Navigation mode"
}

func (s *Switch) notify() {
	for _, l := range s.listeners {
		l.ModeChanged(s.mode)
	}
}
