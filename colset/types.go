package colset

import (
	"fmt"

	"github.com/cutstock2d/cutstock2d/instance"
)

// YColumn is a strip pattern: Counts[j] is the number of strips of type j
// cut from one sheet. Objective coefficient is always 1 (one sheet
// consumed) — RMP callers do not store it on the column itself.
type YColumn struct {
	Counts []int
}

// XColumn is an item pattern for strip type StripType: Counts[i] is the
// number of items of type i cut from one strip of that type. Objective
// coefficient is always 0.
type XColumn struct {
	StripType int
	Counts    []int
}

// ErrInvalidColumn marks a column that violates a packing invariant
// (spec.md §8, invariants 1-2): it would never be produced by any of the
// pricing backends, and adding it to an RMP is a programmer error.
var ErrInvalidColumn = fmt.Errorf("colset: invalid column")

// ValidateY checks invariant 1: sum_j stripWidth(j)*Counts[j] <= sheet width.
func ValidateY(inst instance.Instance, y YColumn) error {
	if len(y.Counts) != len(inst.Strips) {
		return fmt.Errorf("%w: Y-column has %d entries, want %d", ErrInvalidColumn, len(y.Counts), len(inst.Strips))
	}
	total := 0
	for j, c := range y.Counts {
		if c < 0 {
			return fmt.Errorf("%w: negative strip count at %d", ErrInvalidColumn, j)
		}
		total += c * inst.Strips[j].Width
	}
	if total > inst.SheetWidth {
		return fmt.Errorf("%w: Y-column uses width %d > sheet width %d", ErrInvalidColumn, total, inst.SheetWidth)
	}

	return nil
}

// ValidateX checks invariant 2: Counts[i] == 0 whenever item i's width
// exceeds the strip's width, and sum_i length(i)*Counts[i] <= sheet length.
func ValidateX(inst instance.Instance, x XColumn) error {
	if x.StripType < 0 || x.StripType >= len(inst.Strips) {
		return fmt.Errorf("%w: strip type %d out of range", ErrInvalidColumn, x.StripType)
	}
	if len(x.Counts) != len(inst.Items) {
		return fmt.Errorf("%w: X-column has %d entries, want %d", ErrInvalidColumn, len(x.Counts), len(inst.Items))
	}
	strip := inst.Strips[x.StripType]
	total := 0
	for i, c := range x.Counts {
		if c < 0 {
			return fmt.Errorf("%w: negative item count at %d", ErrInvalidColumn, i)
		}
		item := inst.Items[i]
		if c > 0 && item.Width > strip.Width {
			return fmt.Errorf("%w: item %d (width %d) does not fit strip type %d (width %d)", ErrInvalidColumn, i, item.Width, x.StripType, strip.Width)
		}
		total += c * item.Length
	}
	if total > inst.SheetLength {
		return fmt.Errorf("%w: X-column uses length %d > sheet length %d", ErrInvalidColumn, total, inst.SheetLength)
	}

	return nil
}
