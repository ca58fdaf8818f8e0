package instance

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidInstance is the sentinel wrapped by every validation failure
// raised while constructing an Instance. Callers should use errors.Is to
// test for it and errors.Unwrap (or %w-formatted messages) to recover the
// specific cause.
var ErrInvalidInstance = errors.New("instance: invalid instance")

// ItemType is a single demanded rectangle: integer length, width, and
// demand, plus its stable index in [0, N). Index is assigned by row order
// in the source data and never changes, even if later items are elided.
type ItemType struct {
	Index  int
	Length int
	Width  int
	Demand int
}

// StripType is a horizontal slice of a sheet: full sheet length, a chosen
// width, and a stable index in [0, J). Strip types are derived from the
// distinct widths of items with positive demand, ordered descending by
// width (j < j' => Width(j) >= Width(j')); this ordering is an invariant
// relied on throughout pricing and is re-checked by Validate.
type StripType struct {
	Index int
	Width int
}

// Instance is the immutable problem data shared by every component.
// It is safe for concurrent read-only use; nothing in this package mutates
// an Instance after construction.
type Instance struct {
	SheetLength int
	SheetWidth  int
	Items       []ItemType
	Strips      []StripType
}

// invalid wraps msg as an ErrInvalidInstance cause.
func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("instance: %w: %s", ErrInvalidInstance, fmt.Sprintf(format, args...))
}

// NewInstance validates raw rows and sheet dimensions, derives strip types,
// and returns an Instance. It is the single construction path used by both
// loader.Load and tests: no Instance is ever built by any other route.
//
// Validation performed (see spec.md §4.1 / §6):
//   - sheetLength, sheetWidth > 0
//   - every item has length, width > 0 and demand >= 0
//   - every item's length <= sheetLength and width <= sheetWidth
//
// Strip types are derived from the distinct widths among items with
// Demand > 0 (a demand-0 item contributes nothing to produce and is kept
// only for index stability — see DESIGN.md "Open Question decisions",
// "Zero-demand items").
func NewInstance(sheetLength, sheetWidth int, items []ItemType) (Instance, error) {
	if sheetLength <= 0 {
		return Instance{}, invalid("sheet length must be positive, got %d", sheetLength)
	}
	if sheetWidth <= 0 {
		return Instance{}, invalid("sheet width must be positive, got %d", sheetWidth)
	}

	for _, it := range items {
		if it.Length <= 0 || it.Width <= 0 {
			return Instance{}, invalid("item %d: length and width must be positive, got (%d, %d)", it.Index, it.Length, it.Width)
		}
		if it.Demand < 0 {
			return Instance{}, invalid("item %d: demand must be non-negative, got %d", it.Index, it.Demand)
		}
		if it.Length > sheetLength {
			return Instance{}, invalid("item %d: length %d exceeds sheet length %d", it.Index, it.Length, sheetLength)
		}
		if it.Width > sheetWidth {
			return Instance{}, invalid("item %d: width %d exceeds sheet width %d", it.Index, it.Width, sheetWidth)
		}
	}

	strips := deriveStrips(items)

	inst := Instance{
		SheetLength: sheetLength,
		SheetWidth:  sheetWidth,
		Items:       items,
		Strips:      strips,
	}
	if err := inst.Validate(); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// deriveStrips collects the distinct widths of demanded items and orders
// them descending, assigning stable indices 0..J-1.
func deriveStrips(items []ItemType) []StripType {
	seen := make(map[int]bool, len(items))
	widths := make([]int, 0, len(items))
	for _, it := range items {
		if it.Demand <= 0 {
			continue
		}
		if !seen[it.Width] {
			seen[it.Width] = true
			widths = append(widths, it.Width)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(widths)))

	strips := make([]StripType, len(widths))
	for j, w := range widths {
		strips[j] = StripType{Index: j, Width: w}
	}

	return strips
}

// Validate re-checks the invariants of spec.md §8 that must hold for every
// constructed Instance: max item width/length within sheet bounds, and
// strip types strictly descending by distinct width. It is cheap (O(N+J))
// and is also useful as a post-condition check in tests.
func (inst Instance) Validate() error {
	for _, it := range inst.Items {
		if it.Width > inst.SheetWidth {
			return invalid("item %d: width %d exceeds sheet width %d", it.Index, it.Width, inst.SheetWidth)
		}
		if it.Length > inst.SheetLength {
			return invalid("item %d: length %d exceeds sheet length %d", it.Index, it.Length, inst.SheetLength)
		}
	}
	for j := 1; j < len(inst.Strips); j++ {
		if inst.Strips[j].Width >= inst.Strips[j-1].Width {
			return invalid("strip types not strictly descending at index %d", j)
		}
	}

	return nil
}

// StripForWidth returns the strip type whose width equals w, and whether
// one exists. Used by the initial heuristic and by reporting to map an
// item back onto the strip type it belongs in.
func (inst Instance) StripForWidth(w int) (StripType, bool) {
	for _, s := range inst.Strips {
		if s.Width == w {
			return s, true
		}
	}

	return StripType{}, false
}

// FitsStrip reports whether item i's width does not exceed strip type t's
// width — the feasibility test an X-column's non-zero entries must satisfy.
func (inst Instance) FitsStrip(item ItemType, strip StripType) bool {
	return item.Width <= strip.Width
}
