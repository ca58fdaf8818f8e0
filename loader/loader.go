package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cutstock2d/cutstock2d/instance"
)

// Load parses spec.md §6's tab-separated format from r:
//
//	<stocks_count>
//	<item_type_count>
//	<L>\t<W>
//	<l_1>\t<w_1>\t<d_1>\t<type_id_1>
//	...
//
// stocks_count and type_id are read but not used by the core (row order is
// the canonical item index). Any malformed token or out-of-range dimension
// is reported as instance.ErrInvalidInstance.
func Load(r io.Reader) (instance.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if _, err := nextLine(sc); err != nil {
		return instance.Instance{}, err // stocks_count, discarded
	}

	nLine, err := nextLine(sc)
	if err != nil {
		return instance.Instance{}, err
	}
	n, err := parseInt(nLine, "item_type_count")
	if err != nil {
		return instance.Instance{}, err
	}

	dimsLine, err := nextLine(sc)
	if err != nil {
		return instance.Instance{}, err
	}
	dims := strings.Split(dimsLine, "\t")
	if len(dims) != 2 {
		return instance.Instance{}, fmt.Errorf("loader: %w: sheet dims line must be L\\tW, got %q", instance.ErrInvalidInstance, dimsLine)
	}
	sheetLength, err := parseInt(dims[0], "L")
	if err != nil {
		return instance.Instance{}, err
	}
	sheetWidth, err := parseInt(dims[1], "W")
	if err != nil {
		return instance.Instance{}, err
	}

	items := make([]instance.ItemType, 0, n)
	for i := 0; i < n; i++ {
		line, err := nextLine(sc)
		if err != nil {
			return instance.Instance{}, err
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return instance.Instance{}, fmt.Errorf("loader: %w: item row %d needs at least l\\tw\\td, got %q", instance.ErrInvalidInstance, i, line)
		}
		length, err := parseInt(fields[0], "length")
		if err != nil {
			return instance.Instance{}, err
		}
		width, err := parseInt(fields[1], "width")
		if err != nil {
			return instance.Instance{}, err
		}
		demand, err := parseInt(fields[2], "demand")
		if err != nil {
			return instance.Instance{}, err
		}
		items = append(items, instance.ItemType{Index: i, Length: length, Width: width, Demand: demand})
	}

	if err := sc.Err(); err != nil {
		return instance.Instance{}, fmt.Errorf("loader: %w: %v", instance.ErrInvalidInstance, err)
	}

	return instance.NewInstance(sheetLength, sheetWidth, items)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return instance.Instance{}, fmt.Errorf("loader: %w: %v", instance.ErrInvalidInstance, err)
	}
	defer f.Close()

	return Load(f)
}

func nextLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("loader: %w: %v", instance.ErrInvalidInstance, err)
		}

		return "", fmt.Errorf("loader: %w: unexpected end of input", instance.ErrInvalidInstance)
	}

	return strings.TrimRight(sc.Text(), "\r"), nil
}

func parseInt(tok, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("loader: %w: %s: not an integer: %q", instance.ErrInvalidInstance, field, tok)
	}

	return v, nil
}
