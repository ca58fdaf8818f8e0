package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutstock2d/cutstock2d/colset"
	"github.com/cutstock2d/cutstock2d/heuristic"
	"github.com/cutstock2d/cutstock2d/instance"
)

func buildInstance(t *testing.T) instance.Instance {
	t.Helper()
	inst, err := instance.NewInstance(100, 60, []instance.ItemType{
		{Index: 0, Length: 40, Width: 20, Demand: 5},
		{Index: 1, Length: 50, Width: 30, Demand: 4},
	})
	require.NoError(t, err)

	return inst
}

func TestSeedBasic_OneYPerStripOneXPerItem(t *testing.T) {
	inst := buildInstance(t)
	seed, err := heuristic.SeedBasic(inst)
	require.NoError(t, err)
	require.Len(t, seed.Y, len(inst.Strips))
	require.Len(t, seed.X, 2) // both items in buildInstance have Demand > 0

	for _, y := range seed.Y {
		require.NoError(t, colset.ValidateY(inst, y))
	}
	for _, x := range seed.X {
		require.NoError(t, colset.ValidateX(inst, x))
	}
}

func TestSeedBasic_SharedWidthItemsBothCovered(t *testing.T) {
	inst, err := instance.NewInstance(100, 60, []instance.ItemType{
		{Index: 0, Length: 40, Width: 20, Demand: 5},
		{Index: 1, Length: 60, Width: 20, Demand: 5},
	})
	require.NoError(t, err)
	seed, err := heuristic.SeedBasic(inst)
	require.NoError(t, err)

	covered := make([]bool, len(inst.Items))
	for _, x := range seed.X {
		for i, c := range x.Counts {
			if c > 0 {
				covered[i] = true
			}
		}
	}
	assert.True(t, covered[0], "item 0 not covered")
	assert.True(t, covered[1], "item 1 not covered")
}

func TestSeedBasic_CoversEveryDemandedItem(t *testing.T) {
	inst := buildInstance(t)
	seed, err := heuristic.SeedBasic(inst)
	require.NoError(t, err)

	covered := make([]bool, len(inst.Items))
	for _, x := range seed.X {
		for i, c := range x.Counts {
			if c > 0 {
				covered[i] = true
			}
		}
	}
	for i, it := range inst.Items {
		if it.Demand > 0 {
			assert.True(t, covered[i], "item %d not covered by seed", i)
		}
	}
}

func TestSeedFFD_ProducesValidColumns(t *testing.T) {
	inst := buildInstance(t)
	seed, err := heuristic.SeedFFD(inst)
	require.NoError(t, err)
	assert.NotEmpty(t, seed.X)
	for _, x := range seed.X {
		require.NoError(t, colset.ValidateX(inst, x))
	}
}
