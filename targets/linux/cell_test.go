//go:build linux && !tinygo

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laserdot/core"
)

func TestFileCell_ReadsFirstByte(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intensity")
	require.NoError(t, os.WriteFile(path, []byte{0x0a}, 0o644))

	v, err := fileCell{path: path}.ReadIntensity()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x0a), v)
}

func TestFileCell_MissingFileIsUnset(t *testing.T) {
	v, err := fileCell{path: filepath.Join(t.TempDir(), "absent")}.ReadIntensity()
	require.NoError(t, err)
	assert.Equal(t, uint8(core.IntensityUnset), v)
}

func TestFileCell_EmptyFileIsUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intensity")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	v, err := fileCell{path: path}.ReadIntensity()
	require.NoError(t, err)
	assert.Equal(t, uint8(core.IntensityUnset), v)
}
