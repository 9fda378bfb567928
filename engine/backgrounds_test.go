package engine

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBackground(t *testing.T, dir, typ, name string) string {
	t.Helper()
	folder := filepath.Join(dir, typ)
	require.NoError(t, os.MkdirAll(folder, 0o755))
	path := filepath.Join(folder, name)
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))
	return path
}

func TestScanBackgrounds(t *testing.T) {
	dir := t.TempDir()
	a := writeBackground(t, dir, "ai", "one.png")
	b := writeBackground(t, dir, "ai", "two.JPG")
	writeBackground(t, dir, "ai", "notes.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ai", "nested"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internet"), 0o755))
	s1 := writeBackground(t, dir, "solid", "x.bmp")
	s2 := writeBackground(t, dir, "solid", "y.jpeg")
	// no paper folder at all

	pool := ScanBackgrounds(dir, hclog.NewNullLogger())

	assert.Equal(t, 2, pool.Count(BackgroundAI))
	assert.Equal(t, 0, pool.Count(BackgroundInternet))
	assert.Equal(t, 0, pool.Count(BackgroundPaper))
	assert.Equal(t, 2, pool.Count(BackgroundSolid))
	assert.Equal(t, 4, pool.Total())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		assert.Contains(t, []string{a, b}, pool.Pick(rng, BackgroundAI))
		assert.Contains(t, []string{s1, s2}, pool.Pick(rng, BackgroundSolid))
	}
	assert.Equal(t, "", pool.Pick(rng, BackgroundPaper))
	assert.Equal(t, "", pool.Pick(rng, BackgroundInternet))
}

func TestScanBackgroundsMissingRoot(t *testing.T) {
	pool := ScanBackgrounds(filepath.Join(t.TempDir(), "nope"), hclog.NewNullLogger())
	assert.Equal(t, 0, pool.Total())
}

func TestSynthesizeFallsBackPerTrial(t *testing.T) {
	dir := t.TempDir()
	a := writeBackground(t, dir, "ai", "one.png")
	pool := ScanBackgrounds(dir, hclog.NewNullLogger())

	rng := rand.New(rand.NewSource(2))
	trials := Synthesize(rng, NewPlan(rng), pool)
	require.Len(t, trials, len(Loads)*len(BackgroundTypes)*TrialsPerCell)

	for _, tr := range trials {
		if tr.Background == BackgroundAI {
			assert.Equal(t, a, tr.BackgroundPath)
		} else {
			assert.Equal(t, "", tr.BackgroundPath)
		}
		assert.Len(t, tr.Letters, StringLength)
	}
}
