package engine

import (
	"math/rand"
)

// Trial is one fully synthesized trial: its condition plus the concrete
// stimuli the runner will present. BackgroundPath is empty when the asset
// pool has nothing for the condition's background type.
type Trial struct {
	Condition
	Letters        string
	BackgroundPath string
}

// Synthesize turns a condition plan into presentable trials by generating
// each letter string and sampling a background asset per trial. It runs once
// before the first trial so the display layer can preload every texture.
func Synthesize(rng *rand.Rand, plan []Condition, pool *AssetPool) []Trial {
	trials := make([]Trial, len(plan))
	for i, c := range plan {
		trials[i] = Trial{
			Condition:      c,
			Letters:        MakeLetterString(rng, c.Load, c.TargetPresent),
			BackgroundPath: pool.Pick(rng, c.Background),
		}
	}
	return trials
}
