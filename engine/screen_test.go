package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptScreen stands in for the SDL window in tests. Its clock advances by
// a fixed step per tick and a script function decides what input each frame
// produces. Every frame is recorded for assertions.
type scriptScreen struct {
	now    uint64
	step   uint64
	frames []Frame
	script func(f Frame, now uint64) Input
}

func newScriptScreen(step uint64, script func(f Frame, now uint64) Input) *scriptScreen {
	return &scriptScreen{step: step, script: script}
}

func (s *scriptScreen) Now() uint64 {
	return s.now
}

func (s *scriptScreen) Tick(f Frame) Input {
	s.frames = append(s.frames, f)
	s.now += s.step
	if s.script == nil {
		return Input{}
	}
	return s.script(f, s.now)
}

func press(k Key, at uint64) Input {
	return Input{Keys: []KeyEvent{{Key: k, AtMS: at}}}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "z", KeyPresent.String())
	assert.Equal(t, "m", KeyAbsent.String())
	assert.Equal(t, "space", KeyStart.String())
	assert.Equal(t, "escape", KeyCancel.String())
	assert.Equal(t, "", KeyNone.String())
}
