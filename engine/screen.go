package engine

// Key identifies one of the recognized task keys.
type Key int

const (
	KeyNone Key = iota
	KeyPresent
	KeyAbsent
	KeyStart
	KeyCancel
)

// String returns the key label written to the result file ("z", "m") or
// pressed to drive the session ("space", "escape").
func (k Key) String() string {
	switch k {
	case KeyPresent:
		return "z"
	case KeyAbsent:
		return "m"
	case KeyStart:
		return "space"
	case KeyCancel:
		return "escape"
	}
	return ""
}

// KeyEvent is one key press, stamped with the screen clock at the poll that
// observed it.
type KeyEvent struct {
	Key  Key
	AtMS uint64
}

// Input is everything a single Tick gathered: mapped key presses in arrival
// order and whether the window was closed.
type Input struct {
	Keys []KeyEvent
	Quit bool
}

// Frame describes what one tick should display. Exactly one of the message
// fields, Fixation, or the trial fields is used per frame.
type Frame struct {
	// Message is instructions or closing text; lines are split on \n.
	Message string
	// MessageImage, when set, replaces Message with a full-screen image.
	MessageImage string
	// Fixation draws the central fixation cross alone.
	Fixation bool
	// Background is the asset path to draw behind the letters; empty means
	// the plain window fill.
	Background string
	// Letters is the stimulus string, drawn centered over the background.
	Letters string
}

// Screen is the rendering and input surface a session runs on. Each Tick
// draws one frame and reports the keys pressed while the previous frame was
// up; Now reads the same millisecond clock that stamps those keys. The SDL
// window is the real implementation; tests drive the session with a scripted
// one, so trial timing and scoring never need a display.
type Screen interface {
	Now() uint64
	Tick(f Frame) Input
}
