package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "1", cfg.Session)
	assert.Equal(t, "backgrounds", cfg.BackgroundsDir)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 1280, cfg.ScreenWidth)
	assert.Equal(t, 720, cfg.ScreenHeight)
	assert.Equal(t, uint64(3500), cfg.Timing.FixationMinMS)
	assert.Equal(t, uint64(5500), cfg.Timing.FixationMaxMS)
	assert.Equal(t, uint64(200), cfg.Timing.LettersMS)
	assert.Equal(t, uint64(1500), cfg.Timing.ResponseMS)
	assert.True(t, cfg.VSync)
	assert.False(t, cfg.Fullscreen)
	assert.Equal(t, sdl.Color{R: 0, G: 0, B: 0, A: 255}, cfg.BGColor)
	assert.Contains(t, cfg.Instructions, "Press SPACE to begin.")
	assert.Contains(t, cfg.ClosingText, "Thank you for your time!")
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Participant = "p07"
	cfg.Seed = 42
	cfg.Fullscreen = true
	cfg.Timing.ResponseMS = 900
	cfg.BGColor = sdl.Color{R: 10, G: 20, B: 30, A: 255}

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("participant: p09\ntiming:\n  letters_ms: 150\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "p09", cfg.Participant)
	assert.Equal(t, uint64(150), cfg.Timing.LettersMS)

	// everything not in the file keeps its default
	assert.Equal(t, uint64(1500), cfg.Timing.ResponseMS)
	assert.Equal(t, 1280, cfg.ScreenWidth)
	assert.Equal(t, DefaultInstructions, cfg.Instructions)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 255, G: 0, B: 0, A: 255}, ParseColor("255,0,0"))
	assert.Equal(t, sdl.Color{R: 10, G: 20, B: 30, A: 40}, ParseColor("10,20,30,40"))
	assert.Equal(t, sdl.Color{R: 0, G: 0, B: 0, A: 255}, ParseColor(""))
}
