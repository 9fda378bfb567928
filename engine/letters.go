package engine

import (
	"math/rand"
	"strings"
)

const (
	// TargetLetter is the letter the participant is asked to detect.
	TargetLetter = "X"
	// StringLength is the length of every stimulus letter string.
	StringLength = 6

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var nonTargets = []byte(strings.Replace(alphabet, TargetLetter, "", 1))

// MakeLetterString builds the 6-letter stimulus for one trial.
//
// Low load strings are homogeneous: the target repeated six times when
// present, otherwise a single random non-target letter repeated six times.
// High load strings are heterogeneous: the target plus five distinct random
// non-targets when present, otherwise six distinct non-targets; either way
// the positions are shuffled so the target location is uniform.
func MakeLetterString(rng *rand.Rand, load Load, targetPresent bool) string {
	if load == LoadLow {
		if targetPresent {
			return strings.Repeat(TargetLetter, StringLength)
		}
		pick := nonTargets[rng.Intn(len(nonTargets))]
		return strings.Repeat(string(pick), StringLength)
	}

	letters := make([]byte, 0, StringLength)
	if targetPresent {
		letters = append(letters, TargetLetter[0])
		letters = append(letters, sampleNonTargets(rng, StringLength-1)...)
	} else {
		letters = append(letters, sampleNonTargets(rng, StringLength)...)
	}
	rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return string(letters)
}

// sampleNonTargets draws n distinct non-target letters.
func sampleNonTargets(rng *rand.Rand, n int) []byte {
	idx := rng.Perm(len(nonTargets))[:n]
	out := make([]byte, n)
	for i, k := range idx {
		out[i] = nonTargets[k]
	}
	return out
}
