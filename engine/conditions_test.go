package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanCellCounts(t *testing.T) {
	plan := NewPlan(rand.New(rand.NewSource(7)))
	require.Len(t, plan, len(Loads)*len(BackgroundTypes)*TrialsPerCell)

	type cell struct {
		load Load
		bg   BackgroundType
	}
	total := map[cell]int{}
	present := map[cell]int{}
	for _, c := range plan {
		k := cell{c.Load, c.Background}
		total[k]++
		if c.TargetPresent {
			present[k]++
		}
	}

	require.Len(t, total, len(Loads)*len(BackgroundTypes))
	for k, n := range total {
		assert.Equal(t, TrialsPerCell, n, "cell %s/%s", k.load, k.bg)
		assert.Equal(t, PresentPerCell, present[k], "cell %s/%s", k.load, k.bg)
	}
}

func TestNewPlanSeedDeterminism(t *testing.T) {
	a := NewPlan(rand.New(rand.NewSource(11)))
	b := NewPlan(rand.New(rand.NewSource(11)))
	assert.Equal(t, a, b)

	c := NewPlan(rand.New(rand.NewSource(12)))
	assert.NotEqual(t, a, c)
}
