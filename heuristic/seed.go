package heuristic

import (
	"errors"

	"github.com/cutstock2d/cutstock2d/colset"
	"github.com/cutstock2d/cutstock2d/instance"
)

// ErrNoFeasibleItem is returned by SeedBasic/SeedFFD when a demanded item's
// width has no matching strip type — this cannot happen for instances built
// by instance.NewInstance (every strip width comes from some item's
// width), so seeing it means the Instance was built some other way.
var ErrNoFeasibleItem = errors.New("heuristic: no item fits strip type")

// Seed is the result of an initial heuristic: one Y-column per strip type,
// and X-columns filling strips with feasible items (one per demanded item
// type from SeedBasic, one per first-fit-decreasing bin from SeedFFD).
type Seed struct {
	Y []colset.YColumn
	X []colset.XColumn
}

// SeedBasic implements spec.md §4.2: for each strip type j, emit the
// Y-column e_j (one strip of type j alone), guaranteeing strip-balance
// feasibility. Then, for every demanded item type i, emit the X-column
// (t, e_i) where t is the strip type whose width equals w_i — guaranteed
// to exist because strip widths are exactly the distinct demanded item
// widths (instance.deriveStrips). This covers every demand row with at
// least one unit-producing column, the feasibility property spec.md §4.2
// requires ("each item type i has at least one X-column producing one
// unit of i in the strip of equal width") for any demand set, including
// one where several item types share a width.
func SeedBasic(inst instance.Instance) (Seed, error) {
	var seed Seed
	for _, strip := range inst.Strips {
		y := colset.YColumn{Counts: make([]int, len(inst.Strips))}
		y.Counts[strip.Index] = 1
		if err := colset.ValidateY(inst, y); err != nil {
			return Seed{}, err
		}
		seed.Y = append(seed.Y, y)
	}

	for _, item := range inst.Items {
		if item.Demand <= 0 {
			continue
		}
		strip, ok := inst.StripForWidth(item.Width)
		if !ok {
			return Seed{}, ErrNoFeasibleItem
		}
		x := colset.XColumn{StripType: strip.Index, Counts: make([]int, len(inst.Items))}
		x.Counts[item.Index] = 1
		if err := colset.ValidateX(inst, x); err != nil {
			return Seed{}, err
		}
		seed.X = append(seed.X, x)
	}

	return seed, nil
}

// SeedFFD is a richer, opt-in seeding heuristic (spec.md §9's "quality
// improvement, not a correctness requirement"): for each strip type, pack
// items narrow enough for it, largest-length-first, greedily filling
// successive strips until every unit of demand routable to that strip
// width has a home. It still emits the mandatory e_j Y-column for every
// strip type (so RMP feasibility is never weaker than SeedBasic), plus one
// X-column per bin produced by the first-fit-decreasing pass.
func SeedFFD(inst instance.Instance) (Seed, error) {
	base, err := SeedBasic(inst)
	if err != nil {
		return Seed{}, err
	}
	seed := Seed{Y: append([]colset.YColumn(nil), base.Y...)}

	for _, strip := range inst.Strips {
		items := fittingItemsByLengthDesc(inst, strip)
		seed.X = append(seed.X, ffdBins(inst, strip, items)...)
	}
	// Fall back to the basic X-columns if FFD (due to empty fitting sets,
	// which cannot happen per SeedBasic above) produced no X-column at all.
	if len(seed.X) == 0 {
		seed.X = base.X
	}

	return seed, nil
}

func fittingItemsByLengthDesc(inst instance.Instance, strip instance.StripType) []instance.ItemType {
	out := make([]instance.ItemType, 0, len(inst.Items))
	for _, it := range inst.Items {
		if it.Demand > 0 && inst.FitsStrip(it, strip) {
			out = append(out, it)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Length > out[j-1].Length; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

// ffdBins packs copies of items (by remaining demand) into successive
// strips of the given type using first-fit-decreasing, returning one
// X-column per bin used.
func ffdBins(inst instance.Instance, strip instance.StripType, items []instance.ItemType) []colset.XColumn {
	remaining := make(map[int]int, len(items))
	for _, it := range items {
		remaining[it.Index] = it.Demand
	}

	var bins []colset.XColumn
	for {
		counts := make([]int, len(inst.Items))
		used := 0
		placedAny := false
		for _, it := range items {
			if remaining[it.Index] <= 0 {
				continue
			}
			for remaining[it.Index] > 0 && used+it.Length <= inst.SheetLength {
				counts[it.Index]++
				used += it.Length
				remaining[it.Index]--
				placedAny = true
			}
		}
		if !placedAny {
			break
		}
		bins = append(bins, colset.XColumn{StripType: strip.Index, Counts: counts})
	}

	return bins
}
