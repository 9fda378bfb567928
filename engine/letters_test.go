package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDistinct(s string) int {
	seen := map[rune]bool{}
	for _, r := range s {
		seen[r] = true
	}
	return len(seen)
}

func TestMakeLetterStringLowLoad(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	assert.Equal(t, "XXXXXX", MakeLetterString(rng, LoadLow, true))

	for i := 0; i < 50; i++ {
		s := MakeLetterString(rng, LoadLow, false)
		require.Len(t, s, StringLength)
		assert.Equal(t, 1, countDistinct(s), "string %q", s)
		assert.NotContains(t, s, TargetLetter)
	}
}

func TestMakeLetterStringHighLoad(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 50; i++ {
		s := MakeLetterString(rng, LoadHigh, true)
		require.Len(t, s, StringLength)
		assert.Equal(t, 1, strings.Count(s, TargetLetter), "string %q", s)
		assert.Equal(t, StringLength, countDistinct(s), "string %q", s)
	}

	for i := 0; i < 50; i++ {
		s := MakeLetterString(rng, LoadHigh, false)
		require.Len(t, s, StringLength)
		assert.NotContains(t, s, TargetLetter)
		assert.Equal(t, StringLength, countDistinct(s), "string %q", s)
	}
}

func TestMakeLetterStringAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		for _, load := range Loads {
			for _, present := range []bool{true, false} {
				s := MakeLetterString(rng, load, present)
				for _, r := range s {
					assert.True(t, r >= 'A' && r <= 'Z', "letter %q in %q", r, s)
				}
			}
		}
	}
}

func TestMakeLetterStringSeedDeterminism(t *testing.T) {
	a := rand.New(rand.NewSource(9))
	b := rand.New(rand.NewSource(9))
	for i := 0; i < 20; i++ {
		assert.Equal(t,
			MakeLetterString(a, LoadHigh, i%2 == 0),
			MakeLetterString(b, LoadHigh, i%2 == 0))
	}
}
