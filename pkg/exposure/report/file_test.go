package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HumanExposure/cloet/pkg/exposure/report"
)

func TestFileWithPath(t *testing.T) {
	t.Parallel()

	res := evalSprayCoating(t)
	path := filepath.Join(t.TempDir(), "spray.txt")

	got, err := report.File(res, report.WithPath(path))
	require.NoError(t, err)
	assert.Equal(t, path, got)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, report.Text(res), string(content))
}

func TestFileDefaultName(t *testing.T) {
	t.Parallel()

	res := evalSprayCoating(t)
	dir := t.TempDir()

	path, err := report.File(res, report.WithDir(dir))
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name,
		"epa-oppt_automobile_spray_coating_high,conventional,crossdraft_"))
	assert.True(t, strings.HasSuffix(name, ".txt"))
	assert.Equal(t, dir, filepath.Dir(path))
}

func TestFileNeverOverwrites(t *testing.T) {
	t.Parallel()

	res := evalSprayCoating(t)
	dir := t.TempDir()

	first, err := report.File(res, report.WithDir(dir))
	require.NoError(t, err)

	second, err := report.File(res, report.WithDir(dir))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Contains(t, second, "_1.txt")

	third, err := report.File(res, report.WithDir(dir))
	require.NoError(t, err)
	assert.Contains(t, third, "_2.txt")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestFileOverwrite(t *testing.T) {
	t.Parallel()

	res := evalSprayCoating(t)
	path := filepath.Join(t.TempDir(), "spray.txt")

	first, err := report.File(res, report.WithPath(path), report.WithOverwrite())
	require.NoError(t, err)

	second, err := report.File(res, report.WithPath(path), report.WithOverwrite())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileStatError(t *testing.T) {
	t.Parallel()

	res := evalSprayCoating(t)

	// A regular file where a directory is expected makes Stat fail with
	// something other than not-exist; that must surface instead of being
	// read as a name collision.
	parent := filepath.Join(t.TempDir(), "reports")
	require.NoError(t, os.WriteFile(parent, []byte("not a directory"), 0o600))

	got, err := report.File(res, report.WithPath(filepath.Join(parent, "spray.txt")))
	assert.Empty(t, got)
	assert.ErrorIs(t, err, report.ErrReportWrite)
}

func TestFileCreateError(t *testing.T) {
	t.Parallel()

	res := evalSprayCoating(t)
	path := filepath.Join(t.TempDir(), "missing", "spray.txt")

	got, err := report.File(res, report.WithPath(path))
	assert.Empty(t, got)
	assert.ErrorIs(t, err, report.ErrReportWrite)
	assert.Contains(t, err.Error(), path)
}
