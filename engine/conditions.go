package engine

import (
	"math/rand"
)

type Load string

const (
	LoadLow  Load = "low"
	LoadHigh Load = "high"
)

type BackgroundType string

const (
	BackgroundAI       BackgroundType = "ai"
	BackgroundInternet BackgroundType = "internet"
	BackgroundPaper    BackgroundType = "paper"
	BackgroundSolid    BackgroundType = "solid"
)

// Loads and BackgroundTypes fix the factorial design and the order in which
// cells are laid out before the final shuffle.
var (
	Loads           = []Load{LoadLow, LoadHigh}
	BackgroundTypes = []BackgroundType{BackgroundAI, BackgroundInternet, BackgroundPaper, BackgroundSolid}
)

const (
	// TrialsPerCell is the number of trials in each (load, background) cell.
	TrialsPerCell = 5
	// PresentPerCell is how many of those trials contain the target letter.
	PresentPerCell = 3
)

// Condition describes one trial of the 2x4 design. Conditions are generated
// once per session and never modified afterwards.
type Condition struct {
	Load          Load
	Background    BackgroundType
	TargetPresent bool
}

// NewPlan builds the full ordered trial plan for one session. Each of the 8
// cells contributes exactly TrialsPerCell conditions with PresentPerCell
// target-present among them, shuffled within the cell; the concatenated list
// is then shuffled as a whole, so per-cell counts are exact while the
// presentation order is fully randomized.
func NewPlan(rng *rand.Rand) []Condition {
	plan := make([]Condition, 0, len(Loads)*len(BackgroundTypes)*TrialsPerCell)

	for _, load := range Loads {
		for _, bg := range BackgroundTypes {
			cell := make([]bool, TrialsPerCell)
			for i := 0; i < PresentPerCell; i++ {
				cell[i] = true
			}
			rng.Shuffle(len(cell), func(i, j int) {
				cell[i], cell[j] = cell[j], cell[i]
			})
			for _, present := range cell {
				plan = append(plan, Condition{Load: load, Background: bg, TargetPresent: present})
			}
		}
	}

	rng.Shuffle(len(plan), func(i, j int) {
		plan[i], plan[j] = plan[j], plan[i]
	})
	return plan
}
