package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/cutstock2d/cutstock2d/bnb"
	"github.com/cutstock2d/cutstock2d/instance"
)

// ErrUnbalancedIncumbent marks an incumbent whose X-column multiplicities
// exceed the strip slots its Y-columns produced — the strip-balance rows
// are ">=", not "=", so this should never happen for an RMP-feasible
// incumbent, but BuildPlan guards against it rather than silently
// dropping items.
var ErrUnbalancedIncumbent = errors.New("report: X-columns exceed produced strip slots")

// Line is one corner of one rectangle in spec.md §6's output format:
// "X<TAB>Y<TAB>TAG".
type Line struct {
	X, Y int
	Tag  string
}

// ItemPlacement is one item instance cut from a strip slot, positioned in
// sheet coordinates: length-axis range [X0,X1), width-axis range [Y0,Y1).
type ItemPlacement struct {
	ItemType int
	X0, X1   int
	Y0, Y1   int
}

// StripSlot is one strip instance on a sheet: its type and width-axis
// range [Y0,Y1), full sheet length along the length axis, and the items
// placed in it.
type StripSlot struct {
	StripType int
	Y0, Y1    int
	Items     []ItemPlacement
}

// Sheet is one consumed stock sheet and its strip layout.
type Sheet struct {
	Index  int
	Strips []StripSlot
}

// CuttingPlan is the complete incumbent, expanded into concrete sheets.
type CuttingPlan struct {
	Sheets []Sheet
}

type slotRef struct {
	sheet int
	strip int
}

// BuildPlan implements spec.md §4.7: instantiate y_k copies of sheet per
// Y-pattern k (each copy's strip layout given by that pattern, strips laid
// out back-to-back along the width axis), then greedily pair X-column
// instances onto produced strip slots of the matching type, in column
// order — "any valid pairing honoring strip-balance equality".
func BuildPlan(inst instance.Instance, inc bnb.Incumbent) (CuttingPlan, error) {
	var plan CuttingPlan
	queues := make(map[int][]slotRef)

	for k, y := range inc.Columns.Y {
		count := roundCount(inc.YValues, k)
		for r := 0; r < count; r++ {
			sheetIdx := len(plan.Sheets)
			sheet := Sheet{Index: sheetIdx}
			y0 := 0
			for j, c := range y.Counts {
				for s := 0; s < c; s++ {
					width := inst.Strips[j].Width
					stripIdx := len(sheet.Strips)
					sheet.Strips = append(sheet.Strips, StripSlot{StripType: j, Y0: y0, Y1: y0 + width})
					queues[j] = append(queues[j], slotRef{sheet: sheetIdx, strip: stripIdx})
					y0 += width
				}
			}
			plan.Sheets = append(plan.Sheets, sheet)
		}
	}

	for p, x := range inc.Columns.X {
		count := roundCount(inc.XValues, p)
		for r := 0; r < count; r++ {
			q := queues[x.StripType]
			if len(q) == 0 {
				return CuttingPlan{}, fmt.Errorf("%w: strip type %d", ErrUnbalancedIncumbent, x.StripType)
			}
			ref := q[0]
			queues[x.StripType] = q[1:]

			slot := &plan.Sheets[ref.sheet].Strips[ref.strip]
			x0 := 0
			for i, c := range x.Counts {
				for u := 0; u < c; u++ {
					item := inst.Items[i]
					slot.Items = append(slot.Items, ItemPlacement{
						ItemType: i,
						X0:       x0,
						X1:       x0 + item.Length,
						Y0:       slot.Y0,
						Y1:       slot.Y0 + item.Width,
					})
					x0 += item.Length
				}
			}
		}
	}

	return plan, nil
}

func roundCount(values []float64, i int) int {
	if i >= len(values) {
		return 0
	}
	v := values[i]
	if v <= 0 {
		return 0
	}

	return int(math.Round(v))
}

// SheetLines renders one sheet as the rectangle-corner lines spec.md §6
// requires: the sheet boundary (tag "x"), each strip (tag "S<type>"), and
// each item (tag "I<type>"), each as four corners in bottom-left,
// top-left, top-right, bottom-right order.
func SheetLines(inst instance.Instance, sheet Sheet) []Line {
	var lines []Line
	lines = append(lines, rectLines(0, 0, inst.SheetLength, inst.SheetWidth, "x")...)

	for _, strip := range sheet.Strips {
		lines = append(lines, rectLines(0, strip.Y0, inst.SheetLength, strip.Y1, fmt.Sprintf("S%d", strip.StripType))...)
		for _, it := range strip.Items {
			lines = append(lines, rectLines(it.X0, it.Y0, it.X1, it.Y1, fmt.Sprintf("I%d", it.ItemType))...)
		}
	}

	return lines
}

func rectLines(x0, y0, x1, y1 int, tag string) []Line {
	return []Line{
		{X: x0, Y: y0, Tag: tag},
		{X: x0, Y: y1, Tag: tag},
		{X: x1, Y: y1, Tag: tag},
		{X: x1, Y: y0, Tag: tag},
	}
}
