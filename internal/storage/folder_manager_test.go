package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFolderManager_Resolve(t *testing.T) {
	tempDir := t.TempDir()
	logger, _ := zap.NewDevelopment()
	fm := NewFolderManager(0, logger)

	t.Run("resolves existing directory", func(t *testing.T) {
		dir, err := fm.Resolve(tempDir + string(filepath.Separator) + ".")

		require.NoError(t, err)
		assert.Equal(t, tempDir, dir)
	})

	t.Run("returns error for empty path", func(t *testing.T) {
		_, err := fm.Resolve("  ")

		assert.ErrorIs(t, err, ErrDirectoryUnreadable)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		_, err := fm.Resolve(filepath.Join(tempDir, "missing"))

		assert.ErrorIs(t, err, ErrDirectoryUnreadable)
	})

	t.Run("returns error for a file", func(t *testing.T) {
		file := filepath.Join(tempDir, "a.pdf")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		_, err := fm.Resolve(file)

		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}

func TestFolderManager_Open(t *testing.T) {
	tempDir := t.TempDir()
	fm := NewFolderManager(3, zap.NewNop())

	s, err := fm.Open(tempDir)

	require.NoError(t, err)
	assert.Equal(t, tempDir, s.Dir())
	require.IsType(t, &LocalFileStorage{}, s)
	assert.Equal(t, 3, s.(*LocalFileStorage).maxProbe)
}
