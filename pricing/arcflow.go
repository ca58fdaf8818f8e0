package pricing

import (
	"sort"

	"github.com/cutstock2d/cutstock2d/colset"
	"github.com/cutstock2d/cutstock2d/instance"
	"github.com/cutstock2d/cutstock2d/lpsolve"
)

// arcFlowPricer builds the positional DAG of spec.md §3 and solves the
// pricing subproblem as a max-weight unit source-to-sink flow through the
// LP oracle, per spec.md §4.4.
type arcFlowPricer struct{}

// NewArcFlow constructs the arc-flow pricing backend.
func NewArcFlow() Pricer { return arcFlowPricer{} }

type arcKey struct{ from, to int }

type arcInfo struct {
	profit  float64
	typeIdx int
}

// reachablePositions computes, for the given capacity axis and candidate
// types, which integer positions are reachable from 0 by cumulative sums
// of type sizes (spec.md §3).
func reachablePositions(capacity int, items []knapItem) []bool {
	reach := make([]bool, capacity+1)
	reach[0] = true
	for p := 1; p <= capacity; p++ {
		for _, it := range items {
			if it.Size <= p && reach[p-it.Size] {
				reach[p] = true

				break
			}
		}
	}

	return reach
}

// buildArcs instantiates one arc per distinct (s,e) pair reachable via
// some type's placement, with profit = max over contributing types (ties
// broken by lowest type Index, per spec.md §4.4), plus a zero-profit
// "waste" arc (s, capacity) for every reachable s < capacity so every
// reachable position can still reach the sink even if it underfills the
// axis — representing a valid, incomplete packing.
func buildArcs(capacity int, items []knapItem, reach []bool) map[arcKey]arcInfo {
	sorted := append([]knapItem(nil), items...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Index < sorted[b].Index })

	arcs := make(map[arcKey]arcInfo)
	for s := 0; s <= capacity; s++ {
		if !reach[s] {
			continue
		}
		for _, it := range sorted {
			e := s + it.Size
			if e > capacity || !reach[e] {
				continue
			}
			key := arcKey{from: s, to: e}
			if cur, ok := arcs[key]; !ok || it.Value > cur.profit+knapTieEps {
				arcs[key] = arcInfo{profit: it.Value, typeIdx: it.Index}
			}
		}
		if s < capacity {
			key := arcKey{from: s, to: capacity}
			if _, ok := arcs[key]; !ok {
				arcs[key] = arcInfo{profit: 0, typeIdx: -1}
			}
		}
	}

	return arcs
}

// solveArcFlow returns the optimal value and the chosen type multiset for
// the given capacity axis and candidate types.
func solveArcFlow(capacity int, items []knapItem) (float64, map[int]int, error) {
	if capacity <= 0 || len(items) == 0 {
		return 0, nil, nil
	}

	reach := reachablePositions(capacity, items)
	// The sink is always a node, even when no packing fills the axis exactly.
	reach[capacity] = true
	arcs := buildArcs(capacity, items, reach)

	// Stable row index per reachable position.
	rowOf := make(map[int]int)
	row := 0
	for p := 0; p <= capacity; p++ {
		if reach[p] {
			rowOf[p] = row
			row++
		}
	}
	m := row

	rowLB := make([]float64, m)
	rowLB[rowOf[0]] = 1
	rowLB[rowOf[capacity]] = 1
	rowUB := append([]float64(nil), rowLB...)

	type arcCol struct {
		key arcKey
		arcInfo
	}
	ordered := make([]arcCol, 0, len(arcs))
	for k, info := range arcs {
		ordered = append(ordered, arcCol{key: k, arcInfo: info})
	}
	sort.Slice(ordered, func(a, b int) bool {
		if ordered[a].key.from != ordered[b].key.from {
			return ordered[a].key.from < ordered[b].key.from
		}

		return ordered[a].key.to < ordered[b].key.to
	})

	cols := make([]lpsolve.ColumnSpec, len(ordered))
	for i, a := range ordered {
		coeffs := map[int]float64{rowOf[a.key.from]: 1}
		if a.key.to == capacity {
			coeffs[rowOf[capacity]] += 1
		} else {
			coeffs[rowOf[a.key.to]] += -1
		}
		cols[i] = lpsolve.ColumnSpec{Coeffs: coeffs, Obj: -a.profit, UB: 1}
	}

	o := lpsolve.Open()
	defer o.Close()

	if err := o.Build(rowLB, rowUB, cols); err != nil {
		return 0, nil, err
	}
	if err := o.Solve(); err != nil {
		return 0, nil, err
	}

	counts := make(map[int]int)
	var value float64
	for i, a := range ordered {
		v, err := o.Primal(i)
		if err != nil {
			return 0, nil, err
		}
		if v > 0.5 && a.typeIdx >= 0 {
			counts[a.typeIdx]++
			value += a.profit
		}
	}

	return value, counts, nil
}

func (arcFlowPricer) SolveSP1(inst instance.Instance, pi []float64) (colset.YColumn, float64, error) {
	items := make([]knapItem, 0, len(inst.Strips))
	for _, s := range inst.Strips {
		items = append(items, knapItem{Index: s.Index, Size: s.Width, Value: pi[s.Index]})
	}
	val, counts, err := solveArcFlow(inst.SheetWidth, items)
	if err != nil {
		return colset.YColumn{}, 0, err
	}

	y := colset.YColumn{Counts: make([]int, len(inst.Strips))}
	for idx, c := range counts {
		y.Counts[idx] = c
	}

	return y, val, nil
}

func (arcFlowPricer) SolveSP2(inst instance.Instance, stripType int, beta []float64) (colset.XColumn, float64, error) {
	strip := inst.Strips[stripType]
	items := make([]knapItem, 0, len(inst.Items))
	for _, it := range inst.Items {
		if it.Demand <= 0 || it.Width > strip.Width {
			continue
		}
		items = append(items, knapItem{Index: it.Index, Size: it.Length, Value: beta[it.Index]})
	}
	val, counts, err := solveArcFlow(inst.SheetLength, items)
	if err != nil {
		return colset.XColumn{}, 0, err
	}

	x := colset.XColumn{StripType: stripType, Counts: make([]int, len(inst.Items))}
	for idx, c := range counts {
		x.Counts[idx] = c
	}

	return x, val, nil
}
