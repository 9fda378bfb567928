package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevelPrecedence(t *testing.T) {
	t.Setenv("LOADTASK_LOG_LEVEL", "error")

	// an explicit level beats the environment
	assert.True(t, NewLogger("debug").IsDebug())

	// the environment applies only when no level was configured
	env := NewLogger("")
	assert.True(t, env.IsError())
	assert.False(t, env.IsInfo())
}

func TestNewLoggerDefaultsToInfo(t *testing.T) {
	t.Setenv("LOADTASK_LOG_LEVEL", "")

	log := NewLogger("")
	assert.True(t, log.IsInfo())
	assert.False(t, log.IsDebug())
}
