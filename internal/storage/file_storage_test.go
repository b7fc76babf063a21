package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 "+name), 0644))
	return path
}

func TestLocalFileStorage_ListSorted(t *testing.T) {
	tempDir := t.TempDir()
	logger, _ := zap.NewDevelopment()
	s := NewLocalFileStorage(tempDir, 0, logger)

	t.Run("returns files in lexicographic order without directories", func(t *testing.T) {
		for _, name := range []string{"c.pdf", "a.pdf", "B.pdf", "b.pdf"} {
			touch(t, tempDir, name)
		}
		require.NoError(t, os.Mkdir(filepath.Join(tempDir, "nested.pdf"), 0755))

		names, err := s.ListSorted()

		require.NoError(t, err)
		assert.Equal(t, []string{"B.pdf", "a.pdf", "b.pdf", "c.pdf"}, names)
	})

	t.Run("missing directory is unreadable", func(t *testing.T) {
		missing := NewLocalFileStorage(filepath.Join(tempDir, "gone"), 0, logger)

		_, err := missing.ListSorted()

		assert.ErrorIs(t, err, ErrDirectoryUnreadable)
	})
}

func TestLocalFileStorage_UniquePath(t *testing.T) {
	tempDir := t.TempDir()
	logger := zap.NewNop()

	t.Run("free name is returned as is", func(t *testing.T) {
		s := NewLocalFileStorage(tempDir, 0, logger)

		path, err := s.UniquePath("invoice_100.00元.pdf")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempDir, "invoice_100.00元.pdf"), path)
	})

	t.Run("linear probing picks first free suffix", func(t *testing.T) {
		s := NewLocalFileStorage(tempDir, 0, logger)
		touch(t, tempDir, "invoice_100.00元.pdf")
		touch(t, tempDir, "invoice_100.00元 (1).pdf")

		path, err := s.UniquePath("invoice_100.00元.pdf")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempDir, "invoice_100.00元 (2).pdf"), path)
	})

	t.Run("dangling symlink counts as taken", func(t *testing.T) {
		s := NewLocalFileStorage(tempDir, 0, logger)
		require.NoError(t, os.Symlink(filepath.Join(tempDir, "nowhere"), filepath.Join(tempDir, "link.pdf")))

		path, err := s.UniquePath("link.pdf")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempDir, "link (1).pdf"), path)
	})

	t.Run("bounded probe is exhausted", func(t *testing.T) {
		s := NewLocalFileStorage(tempDir, 2, logger)
		touch(t, tempDir, "x.pdf")
		touch(t, tempDir, "x (1).pdf")
		touch(t, tempDir, "x (2).pdf")

		_, err := s.UniquePath("x.pdf")

		assert.ErrorIs(t, err, ErrCollisionExhausted)
	})

	t.Run("reserved paths count as taken", func(t *testing.T) {
		s := NewLocalFileStorage(tempDir, 0, logger)
		touch(t, tempDir, "r.pdf")
		reserved := map[string]bool{filepath.Join(tempDir, "r (1).pdf"): true}

		path, err := s.UniquePathExcluding("r.pdf", reserved)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempDir, "r (2).pdf"), path)
		assert.NoFileExists(t, path)
	})
}

func TestLocalFileStorage_Move(t *testing.T) {
	tempDir := t.TempDir()
	s := NewLocalFileStorage(tempDir, 0, zap.NewNop())

	t.Run("moves within directory", func(t *testing.T) {
		src := touch(t, tempDir, "a.pdf")
		dst := filepath.Join(tempDir, "a_1元.pdf")

		require.NoError(t, s.Move(src, dst))

		assert.NoFileExists(t, src)
		assert.FileExists(t, dst)
	})

	t.Run("rejects destination outside directory", func(t *testing.T) {
		src := touch(t, tempDir, "b.pdf")

		err := s.Move(src, filepath.Join(tempDir, "..", "b.pdf"))

		assert.ErrorIs(t, err, ErrPathEscapes)
		assert.FileExists(t, src)
	})

	t.Run("missing source fails", func(t *testing.T) {
		err := s.Move(filepath.Join(tempDir, "missing.pdf"), filepath.Join(tempDir, "m.pdf"))
		assert.Error(t, err)
	})
}

func TestLocalFileStorage_Remove(t *testing.T) {
	tempDir := t.TempDir()
	s := NewLocalFileStorage(tempDir, 0, zap.NewNop())
	path := touch(t, tempDir, "tmp.xlsx")

	require.NoError(t, s.Remove(path))
	assert.NoFileExists(t, path)

	// idempotent
	assert.NoError(t, s.Remove(path))
}

func TestLocalFileStorage_ValidatePath(t *testing.T) {
	tempDir := t.TempDir()
	s := NewLocalFileStorage(tempDir, 0, zap.NewNop())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"file in directory", filepath.Join(tempDir, "a.pdf"), false},
		{"directory itself", tempDir, false},
		{"parent traversal", filepath.Join(tempDir, "..", "a.pdf"), true},
		{"sibling with shared prefix", tempDir + "-other/a.pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidatePath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPathEscapes)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
