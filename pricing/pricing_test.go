package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutstock2d/cutstock2d/instance"
)

func buildInstance(t *testing.T) instance.Instance {
	t.Helper()
	items := []instance.ItemType{
		{Index: 0, Length: 30, Width: 20, Demand: 3},
		{Index: 1, Length: 25, Width: 20, Demand: 2},
		{Index: 2, Length: 40, Width: 15, Demand: 4},
	}
	inst, err := instance.NewInstance(100, 60, items)
	require.NoError(t, err)

	return inst
}

func allBackends(t *testing.T) map[string]Pricer {
	t.Helper()
	kn, err := New(Knapsack)
	require.NoError(t, err)
	af, err := New(ArcFlow)
	require.NoError(t, err)
	dp, err := New(DP)
	require.NoError(t, err)

	return map[string]Pricer{"knapsack": kn, "arcflow": af, "dp": dp}
}

func TestBackendEquivalence_SP1(t *testing.T) {
	inst := buildInstance(t)
	pi := make([]float64, len(inst.Strips))
	for i := range pi {
		pi[i] = float64(i + 1)
	}

	var wantVal float64
	for name, p := range allBackends(t) {
		_, val, err := p.SolveSP1(inst, pi)
		require.NoErrorf(t, err, "backend %s", name)
		if wantVal == 0 {
			wantVal = val
		}
		assert.InDeltaf(t, wantVal, val, 1e-6, "backend %s disagrees on SP1 value", name)
	}
}

func TestBackendEquivalence_SP2(t *testing.T) {
	inst := buildInstance(t)
	beta := make([]float64, len(inst.Items))
	for i := range beta {
		beta[i] = float64(len(beta) - i)
	}

	for stripIdx := range inst.Strips {
		var wantVal float64
		first := true
		for name, p := range allBackends(t) {
			_, val, err := p.SolveSP2(inst, stripIdx, beta)
			require.NoErrorf(t, err, "backend %s strip %d", name, stripIdx)
			if first {
				wantVal = val
				first = false
			}
			assert.InDeltaf(t, wantVal, val, 1e-6, "backend %s disagrees on SP2 value for strip %d", name, stripIdx)
		}
	}
}

func TestSolveUnboundedKnapsack_LowestIndexTieBreak(t *testing.T) {
	items := []knapItem{
		{Index: 1, Size: 5, Value: 10},
		{Index: 0, Size: 5, Value: 10},
	}
	val, counts := solveUnboundedKnapsack(5, items)
	assert.Equal(t, 10.0, val)
	assert.Equal(t, 1, counts[0])
	assert.Equal(t, 0, counts[1])
}

func TestSolveArcFlow_RespectsCapacity(t *testing.T) {
	items := []knapItem{{Index: 0, Size: 7, Value: 3}}
	val, counts, err := solveArcFlow(20, items)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, val, 1e-6)
	assert.Equal(t, 2, counts[0])
}
