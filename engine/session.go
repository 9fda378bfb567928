package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

// Session drives a whole experimental run: the instructions screen, the
// trial sequence and the closing screen.
type Session struct {
	Screen Screen
	Runner *Runner
	Trials []Trial

	Participant string
	Number      string

	Instructions      string
	InstructionsImage string
	Closing           string
	ClosingImage      string
	ClosingMS         uint64

	Log      hclog.Logger
	Progress io.Writer
}

// Run executes the session and returns the collected records. A nil result
// means the session was abandoned on the instructions screen and nothing
// should be written to disk. Cancelling mid-session keeps the records of the
// trials already completed; they are still returned so the caller can save
// them.
func (s *Session) Run() *ResultLog {
	if !s.gate() {
		return nil
	}

	log := &ResultLog{}
	for i, t := range s.Trials {
		if s.Progress != nil {
			fmt.Fprintf(s.Progress, "\rTrial: %d/%d ", i+1, len(s.Trials))
		}
		rec, err := s.Runner.RunTrial(t)
		if errors.Is(err, ErrWindowClosed) {
			return log
		}
		if errors.Is(err, ErrCancelled) {
			s.Log.Info("session cancelled early", "completed", len(log.Records))
			break
		}
		rec.Participant = s.Participant
		rec.Session = s.Number
		rec.TrialIndex = i + 1
		log.Append(rec)
	}

	s.closing()
	return log
}

// gate blocks on the instructions screen until the start key. Cancelling or
// closing the window here abandons the session.
func (s *Session) gate() bool {
	f := Frame{Message: s.Instructions, MessageImage: s.InstructionsImage}
	for {
		in := s.Screen.Tick(f)
		if in.Quit {
			return false
		}
		for _, ev := range in.Keys {
			switch ev.Key {
			case KeyStart:
				return true
			case KeyCancel:
				return false
			}
		}
	}
}

// closing shows the thank-you screen for its fixed duration. Key presses are
// ignored; closing the window ends it early.
func (s *Session) closing() {
	deadline := s.Screen.Now() + s.ClosingMS
	f := Frame{Message: s.Closing, MessageImage: s.ClosingImage}
	for s.Screen.Now() < deadline {
		if in := s.Screen.Tick(f); in.Quit {
			return
		}
	}
}
