package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ts-errors.txt")
	content := "a.ts(1,1): error TS2322: x\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	text, err := LoadDiagnostics(path)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestLoadDiagnosticsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	_, err := LoadDiagnostics(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}
