package renamer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/garyjia/fapiao-helper/internal/invoice"
	"github.com/garyjia/fapiao-helper/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTextSource returns canned text keyed by file name
type MockTextSource struct {
	mock.Mock
}

func (m *MockTextSource) ReadText(path string) (string, error) {
	args := m.Called(filepath.Base(path))
	return args.String(0), args.Error(1)
}

// brokenMoveStorage fails every move
type brokenMoveStorage struct {
	storage.FileStorage
}

func (s brokenMoveStorage) Move(src, dst string) error {
	return errors.New("read-only file system")
}

type brokenMoveOpener struct {
	*storage.FolderManager
}

func (o brokenMoveOpener) Open(path string) (storage.FileStorage, error) {
	s, err := o.FolderManager.Open(path)
	if err != nil {
		return nil, err
	}
	return brokenMoveStorage{s}, nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4 "+name), 0644))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func newRenamer(src invoice.TextSource, maxProbe int) *Renamer {
	logger := zap.NewNop()
	return New(storage.NewFolderManager(maxProbe, logger), src, logger)
}

func TestRenamer_RenameAll_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.pdf", "b.pdf", "notes.txt")

	src := new(MockTextSource)
	src.On("ReadText", "a.pdf").Return("总计 ¥88.00", nil)
	src.On("ReadText", "b.pdf").Return("total, no currency marker", nil)

	result, err := newRenamer(src, 0).RenameAll(dir)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, []string{"a_88.00元.pdf", "b.pdf", "notes.txt"}, listDir(t, dir))

	require.Len(t, result.Files, 2)
	assert.Equal(t, FileOutcome{Name: "a.pdf", NewName: "a_88.00元.pdf", Status: StatusRenamed, Amount: "88.00"}, result.Files[0])
	assert.Equal(t, StatusFailed, result.Files[1].Status)
	assert.ErrorIs(t, result.Files[1].Err, ErrNoAmountFound)
	src.AssertNotCalled(t, "ReadText", "notes.txt")
}

func TestRenamer_RenameAll_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "x.pdf", "y.PDF")

	src := new(MockTextSource)
	src.On("ReadText", "x.pdf").Return("¥12.50 ¥99", nil).Once()
	src.On("ReadText", "y.PDF").Return("￥7", nil).Once()
	r := newRenamer(src, 0)

	first, err := r.RenameAll(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Renamed)
	assert.Equal(t, []string{"x_99元.pdf", "y_7元.pdf"}, listDir(t, dir))

	second, err := r.RenameAll(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Scanned)
	assert.Equal(t, 0, second.Renamed)
	assert.Equal(t, 0, second.Failed)
	assert.Equal(t, 2, second.Skipped)
	assert.Equal(t, []string{"x_99元.pdf", "y_7元.pdf"}, listDir(t, dir))
	src.AssertExpectations(t)
}

func TestRenamer_RenameAll_CollisionKeepsBothFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "invoice.PDF", "invoice.pdf")

	src := new(MockTextSource)
	src.On("ReadText", mock.Anything).Return("价税合计 ¥100.00", nil)

	result, err := newRenamer(src, 0).RenameAll(dir)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Renamed)
	assert.Equal(t, []string{"invoice_100.00元 (1).pdf", "invoice_100.00元.pdf"}, listDir(t, dir))

	data, err := os.ReadFile(filepath.Join(dir, "invoice_100.00元 (1).pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 invoice.pdf", string(data))

	// the collision marker is recognised as already tagged on the next pass
	again, err := newRenamer(src, 0).RenameAll(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Renamed)
	assert.Equal(t, 2, again.Skipped)
}

func TestRenamer_RenameAll_DryRunLeavesFolderUnchanged(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "invoice.PDF", "invoice.pdf", "none.pdf", "done_5元.pdf")

	src := new(MockTextSource)
	src.On("ReadText", "invoice.PDF").Return("¥100.00", nil)
	src.On("ReadText", "invoice.pdf").Return("¥100.00", nil)
	src.On("ReadText", "none.pdf").Return("no marker", nil)
	before := listDir(t, dir)

	result, err := newRenamer(src, 0).WithDryRun(true).RenameAll(dir)

	require.NoError(t, err)
	assert.Equal(t, before, listDir(t, dir))
	assert.True(t, result.DryRun)
	assert.Equal(t, 4, result.Scanned)
	assert.Equal(t, 0, result.Renamed)
	assert.Equal(t, 2, result.Planned)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Skipped)

	byName := make(map[string]FileOutcome)
	for _, f := range result.Files {
		byName[f.Name] = f
	}
	// the plan matches what a real pass would produce, collisions included
	assert.Equal(t, FileOutcome{Name: "invoice.PDF", NewName: "invoice_100.00元.pdf", Status: StatusPlanned, Amount: "100.00"}, byName["invoice.PDF"])
	assert.Equal(t, FileOutcome{Name: "invoice.pdf", NewName: "invoice_100.00元 (1).pdf", Status: StatusPlanned, Amount: "100.00"}, byName["invoice.pdf"])
	assert.Equal(t, StatusFailed, byName["none.pdf"].Status)
	assert.Equal(t, StatusSkipped, byName["done_5元.pdf"].Status)
}

func TestRenamer_RenameAll_Failures(t *testing.T) {
	t.Run("extraction error is counted and the pass continues", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "broken.pdf", "ok.pdf")

		src := new(MockTextSource)
		src.On("ReadText", "broken.pdf").Return("", errors.New("corrupt xref"))
		src.On("ReadText", "ok.pdf").Return("¥1", nil)

		result, err := newRenamer(src, 0).RenameAll(dir)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Renamed)
		assert.ErrorIs(t, result.Files[0].Err, invoice.ErrExtraction)
	})

	t.Run("move failure is counted", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a.pdf")

		src := new(MockTextSource)
		src.On("ReadText", "a.pdf").Return("¥5", nil)
		logger := zap.NewNop()
		r := New(brokenMoveOpener{storage.NewFolderManager(0, logger)}, src, logger)

		result, err := r.RenameAll(dir)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 0, result.Renamed)
		assert.ErrorIs(t, result.Files[0].Err, ErrMoveFailed)
		assert.Equal(t, []string{"a.pdf"}, listDir(t, dir))
	})

	t.Run("exhausted collision probe stops the pass", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a.pdf", "a_5元.txt")
		require.NoError(t, os.Symlink("nowhere", filepath.Join(dir, "a_5元.pdf")))
		require.NoError(t, os.Symlink("nowhere", filepath.Join(dir, "a_5元 (1).pdf")))

		src := new(MockTextSource)
		src.On("ReadText", "a.pdf").Return("¥5", nil)

		_, err := newRenamer(src, 1).RenameAll(dir)

		assert.ErrorIs(t, err, storage.ErrCollisionExhausted)
	})

	t.Run("unreadable directory is fatal", func(t *testing.T) {
		src := new(MockTextSource)

		_, err := newRenamer(src, 0).RenameAll(filepath.Join(t.TempDir(), "missing"))

		assert.ErrorIs(t, err, storage.ErrDirectoryUnreadable)
		src.AssertNotCalled(t, "ReadText", mock.Anything)
	})
}
