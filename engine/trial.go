package engine

import (
	"math/rand"

	"github.com/hashicorp/go-hclog"
)

// Runner executes single trials against a Screen. The same Runner is reused
// for every trial of a session.
type Runner struct {
	Screen  Screen
	RNG     *rand.Rand
	Timing  TimingConfig
	Trigger *DLPIO8G
	Log     hclog.Logger
}

// RunTrial presents one trial and returns its record. The identity fields
// (participant, session, trial index) are left for the caller to fill in.
//
// A trial has three phases. The fixation cross is shown for a jittered
// duration; early response keys are discarded. The letter string is then
// drawn over the background for the full letter duration even when a
// response arrives during it. If no response was made, the background stays
// up alone until a response or until the response window closes.
//
// Returns ErrCancelled when the cancel key is pressed in any phase and
// ErrWindowClosed when the window is closed.
func (r *Runner) RunTrial(t Trial) (TrialRecord, error) {
	fix := r.Timing.FixationMinMS
	if r.Timing.FixationMaxMS > r.Timing.FixationMinMS {
		fix += uint64(r.RNG.Int63n(int64(r.Timing.FixationMaxMS-r.Timing.FixationMinMS) + 1))
	}

	fixStart := r.Screen.Now()
	for r.Screen.Now()-fixStart < fix {
		in := r.Screen.Tick(Frame{Fixation: true})
		if in.Quit {
			return TrialRecord{}, ErrWindowClosed
		}
		for _, ev := range in.Keys {
			if ev.Key == KeyCancel {
				return TrialRecord{}, ErrCancelled
			}
			// Response keys before stimulus onset are ignored.
		}
	}

	// Drain keys still queued from the fixation interval so an anticipatory
	// press is not scored as a near-zero RT response.
	in := r.Screen.Tick(Frame{Fixation: true})
	if in.Quit {
		return TrialRecord{}, ErrWindowClosed
	}
	for _, ev := range in.Keys {
		if ev.Key == KeyCancel {
			return TrialRecord{}, ErrCancelled
		}
	}

	onset := r.Screen.Now()
	if r.Trigger != nil {
		r.Trigger.LettersOn()
	}

	var resp KeyEvent
	for r.Screen.Now()-onset < r.Timing.LettersMS {
		in := r.Screen.Tick(Frame{Background: t.BackgroundPath, Letters: t.Letters})
		if in.Quit {
			return TrialRecord{}, ErrWindowClosed
		}
		for _, ev := range in.Keys {
			switch ev.Key {
			case KeyCancel:
				return TrialRecord{}, ErrCancelled
			case KeyPresent, KeyAbsent:
				if resp.Key == KeyNone {
					resp = ev
					if r.Trigger != nil {
						r.Trigger.ResponsePulse()
					}
				}
			}
		}
	}
	if r.Trigger != nil {
		r.Trigger.LettersOff()
	}

	for resp.Key == KeyNone && r.Screen.Now()-onset < r.Timing.ResponseMS {
		in := r.Screen.Tick(Frame{Background: t.BackgroundPath})
		if in.Quit {
			return TrialRecord{}, ErrWindowClosed
		}
		for _, ev := range in.Keys {
			switch ev.Key {
			case KeyCancel:
				return TrialRecord{}, ErrCancelled
			case KeyPresent, KeyAbsent:
				if resp.Key == KeyNone {
					resp = ev
					if r.Trigger != nil {
						r.Trigger.ResponsePulse()
					}
				}
			}
		}
	}

	rec := TrialRecord{
		Load:          t.Load,
		Background:    t.Background,
		TargetPresent: t.TargetPresent,
		Letters:       t.Letters,
		ResponseKey:   resp.Key,
		Correct:       Score(t.TargetPresent, resp.Key),
	}
	if resp.Key != KeyNone {
		rec.RTSeconds = float64(resp.AtMS-onset) / 1000.0
	}
	r.Log.Debug("trial complete",
		"load", t.Load, "background", t.Background, "target", t.TargetPresent,
		"response", resp.Key.String(), "correct", rec.Correct)
	return rec, nil
}

// Score reports whether a response key is the correct answer for the trial.
// No response is always incorrect.
func Score(targetPresent bool, key Key) bool {
	switch key {
	case KeyPresent:
		return targetPresent
	case KeyAbsent:
		return !targetPresent
	default:
		return false
	}
}
