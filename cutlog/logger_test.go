package cutlog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutstock2d/cutstock2d/cutlog"
)

func fixedNow() time.Time {
	return time.Date(2026, 7, 31, 10, 30, 0, 0, time.UTC)
}

func TestLogger_PrefixesTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := cutlog.New(cutlog.WithWriter(&buf), cutlog.WithNow(fixedNow))
	l.Info("hello %s", "world")

	assert.Equal(t, "[2026-07-31 10:30:00.000] INFO: hello world\n", buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := cutlog.New(cutlog.WithWriter(&buf), cutlog.WithNow(fixedNow), cutlog.WithLevel(cutlog.LevelWarn))
	l.Info("suppressed")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_WritesFileSinkTruncated(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "run")

	l := cutlog.New(cutlog.WithPrefix(prefix), cutlog.WithNow(fixedNow), cutlog.WithWriter(&bytes.Buffer{}))
	l.Info("first")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(prefix + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "first")

	l2 := cutlog.New(cutlog.WithPrefix(prefix), cutlog.WithNow(fixedNow), cutlog.WithWriter(&bytes.Buffer{}))
	l2.Info("second")
	require.NoError(t, l2.Close())

	content2, err := os.ReadFile(prefix + ".log")
	require.NoError(t, err)
	assert.NotContains(t, string(content2), "first")
	assert.Contains(t, string(content2), "second")
}
