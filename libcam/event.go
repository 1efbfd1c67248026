package libcam

// Event carries the frame clock, in seconds.
type Event struct {
	CurrentTime float64
	ElapsedTime float64
}

type MouseEvent struct {
	Event
	X, Y    float64
	Pressed bool
}

type ScrollEvent struct {
	Event
	XOffset float64
	YOffset float64
}

// KeyboardEvent is the movement key state sampled once per frame.
type KeyboardEvent struct {
	Event
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
}
