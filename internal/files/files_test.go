package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compasscli/internal/errors"
)

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	assert.NoError(t, RequireFile(path))

	err := RequireFile(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))

	err = RequireFile(dir)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "nope")))
}

func TestEnsureParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.xlsx")
	require.NoError(t, EnsureParentDir(path))
	assert.True(t, Exists(filepath.Dir(path)))
}

func TestIsCSV(t *testing.T) {
	assert.True(t, IsCSV("data/in.csv"))
	assert.True(t, IsCSV("data/IN.CSV"))
	assert.False(t, IsCSV("data/in.xlsx"))
}
