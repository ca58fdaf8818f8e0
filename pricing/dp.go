package pricing

import (
	"sort"

	"github.com/cutstock2d/cutstock2d/colset"
	"github.com/cutstock2d/cutstock2d/instance"
)

const knapTieEps = 1e-9

// solveUnboundedKnapsack computes, for capacity and a set of candidate
// types, the optimal value of maximize sum(value_k*count_k) subject to
// sum(size_k*count_k) <= capacity, count_k >= 0 integer, via the classical
// f(p) = max_k(value_k + f(p-size_k)) recurrence, and traces back the
// chosen multiset. Ties in the argmax are broken by lowest Index — items
// are scanned in ascending Index order and only a strictly better
// candidate replaces the current best, so the first (lowest-index) type
// achieving the optimum at each position wins.
func solveUnboundedKnapsack(capacity int, items []knapItem) (float64, map[int]int) {
	if capacity < 0 {
		capacity = 0
	}
	sorted := append([]knapItem(nil), items...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Index < sorted[b].Index })

	f := make([]float64, capacity+1)
	choice := make([]int, capacity+1)
	size := make(map[int]int, len(sorted))
	for i := range choice {
		choice[i] = -1
	}
	for _, it := range sorted {
		size[it.Index] = it.Size
	}

	for p := 1; p <= capacity; p++ {
		best := f[p-1]
		bestIdx := -1
		for _, it := range sorted {
			if it.Size > p {
				continue
			}
			cand := it.Value + f[p-it.Size]
			if cand > best+knapTieEps {
				best = cand
				bestIdx = it.Index
			}
		}
		f[p] = best
		choice[p] = bestIdx
	}

	counts := make(map[int]int)
	p := capacity
	for p > 0 {
		idx := choice[p]
		if idx == -1 {
			p--
			continue
		}
		counts[idx]++
		p -= size[idx]
	}

	return f[capacity], counts
}

type dpPricer struct{}

// NewDP constructs the direct dynamic-programming pricing backend.
func NewDP() Pricer { return dpPricer{} }

func (dpPricer) SolveSP1(inst instance.Instance, pi []float64) (colset.YColumn, float64, error) {
	items := make([]knapItem, 0, len(inst.Strips))
	for _, s := range inst.Strips {
		items = append(items, knapItem{Index: s.Index, Size: s.Width, Value: pi[s.Index]})
	}
	val, counts := solveUnboundedKnapsack(inst.SheetWidth, items)

	y := colset.YColumn{Counts: make([]int, len(inst.Strips))}
	for idx, c := range counts {
		y.Counts[idx] = c
	}

	return y, val, nil
}

func (dpPricer) SolveSP2(inst instance.Instance, stripType int, beta []float64) (colset.XColumn, float64, error) {
	strip := inst.Strips[stripType]
	items := make([]knapItem, 0, len(inst.Items))
	for _, it := range inst.Items {
		if it.Demand <= 0 || it.Width > strip.Width {
			continue
		}
		items = append(items, knapItem{Index: it.Index, Size: it.Length, Value: beta[it.Index]})
	}
	val, counts := solveUnboundedKnapsack(inst.SheetLength, items)

	x := colset.XColumn{StripType: stripType, Counts: make([]int, len(inst.Items))}
	for idx, c := range counts {
		x.Counts[idx] = c
	}

	return x, val, nil
}
