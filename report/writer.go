package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cutstock2d/cutstock2d/instance"
)

// Writer is the external output collaborator spec.md §1/§6 describes: one
// call per used sheet, k starting at 0, with that sheet's corner lines
// already rendered by SheetLines. The core depends only on this interface.
type Writer interface {
	WriteSheet(k int, lines []Line) error
}

// FileWriter is the default Writer: one file per sheet at
// "<Dir>/Stock_<k>.txt", tab-separated "X\tY\tTAG" lines, matching
// spec.md §6's output format exactly.
type FileWriter struct {
	Dir string
}

// WriteSheet writes lines to Dir/Stock_<k>.txt, creating Dir if needed.
func (w FileWriter) WriteSheet(k int, lines []Line) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("report: create output dir: %w", err)
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("Stock_%d.txt", k))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, l := range lines {
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%s\n", l.X, l.Y, l.Tag); err != nil {
			return fmt.Errorf("report: write %s: %w", path, err)
		}
	}

	return bw.Flush()
}

// WritePlan renders and writes every sheet in plan through w, in sheet
// index order.
func WritePlan(w Writer, inst instance.Instance, plan CuttingPlan) error {
	for _, sheet := range plan.Sheets {
		if err := w.WriteSheet(sheet.Index, SheetLines(inst, sheet)); err != nil {
			return err
		}
	}

	return nil
}
