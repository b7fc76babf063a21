package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/garyjia/fapiao-helper/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestIntegration_CollidingMovesKeepEveryFile moves two invoices onto the same
// tagged name and checks that neither file is lost.
func TestIntegration_CollidingMovesKeepEveryFile(t *testing.T) {
	tempDir := t.TempDir()
	logger, _ := zap.NewDevelopment()

	fm := storage.NewFolderManager(0, logger)
	s, err := fm.Open(tempDir)
	require.NoError(t, err)

	// 1. Two source invoices with different content
	first := filepath.Join(tempDir, "invoice.pdf")
	second := filepath.Join(tempDir, "invoice.PDF")
	require.NoError(t, os.WriteFile(first, []byte("first"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("second"), 0644))

	// 2. Both resolve to the same tagged name
	for _, src := range []string{first, second} {
		dst, err := s.UniquePath("invoice_100.00元.pdf")
		require.NoError(t, err)
		require.NoError(t, s.Move(src, dst))
	}

	// 3. Both contents survive under distinct names
	names, err := s.ListSorted()
	require.NoError(t, err)
	assert.Equal(t, []string{"invoice_100.00元 (1).pdf", "invoice_100.00元.pdf"}, names)

	data, err := os.ReadFile(filepath.Join(tempDir, "invoice_100.00元.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	data, err = os.ReadFile(filepath.Join(tempDir, "invoice_100.00元 (1).pdf"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
