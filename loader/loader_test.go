package loader_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutstock2d/cutstock2d/instance"
	"github.com/cutstock2d/cutstock2d/loader"
)

func TestLoad_ParsesWellFormedInstance(t *testing.T) {
	raw := "1\n2\n100\t60\n40\t20\t5\t0\n60\t20\t5\t1\n"

	inst, err := loader.Load(strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, 100, inst.SheetLength)
	assert.Equal(t, 60, inst.SheetWidth)
	require.Len(t, inst.Items, 2)
	assert.Equal(t, instance.ItemType{Index: 0, Length: 40, Width: 20, Demand: 5}, inst.Items[0])
	assert.Equal(t, instance.ItemType{Index: 1, Length: 60, Width: 20, Demand: 5}, inst.Items[1])
}

func TestLoad_IgnoresTrailingTypeIDColumn(t *testing.T) {
	raw := "3\n1\n50\t30\n10\t10\t1\t7\n"

	inst, err := loader.Load(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, inst.Items, 1)
	assert.Equal(t, 10, inst.Items[0].Length)
}

func TestLoad_TruncatedInputIsInvalidInstance(t *testing.T) {
	raw := "1\n2\n100\t60\n40\t20\t5\t0\n"

	_, err := loader.Load(strings.NewReader(raw))
	require.Error(t, err)
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestLoad_NonIntegerTokenIsInvalidInstance(t *testing.T) {
	raw := "1\n1\n100\t60\nwide\t20\t5\t0\n"

	_, err := loader.Load(strings.NewReader(raw))
	require.Error(t, err)
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestLoad_MalformedDimsLineIsInvalidInstance(t *testing.T) {
	raw := "1\n1\n100\n40\t20\t5\t0\n"

	_, err := loader.Load(strings.NewReader(raw))
	require.Error(t, err)
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestLoad_OversizedItemIsInvalidInstance(t *testing.T) {
	// spec.md §8 scenario 6: item (101, 20, 1) against a 100-length sheet.
	raw := "1\n1\n100\t60\n101\t20\t1\t0\n"

	_, err := loader.Load(strings.NewReader(raw))
	require.Error(t, err)
	assert.ErrorIs(t, err, instance.ErrInvalidInstance)
}

func TestLoadFile_MissingFileIsInvalidInstance(t *testing.T) {
	_, err := loader.LoadFile("/nonexistent/path/does-not-exist.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, instance.ErrInvalidInstance))
}
