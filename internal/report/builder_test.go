package report

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/garyjia/fapiao-helper/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var reportNamePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{6}_报销\d+\.\d{2}元\.xlsx$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newBuilder(now time.Time) *Builder {
	logger := zap.NewNop()
	return NewBuilder(storage.NewFolderManager(0, logger), logger).WithClock(fixedClock(now))
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

func rawCell(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func assertAmountCell(t *testing.T, f *excelize.File, cell, want string) {
	t.Helper()
	got, err := decimal.NewFromString(rawCell(t, f, cell))
	require.NoError(t, err, cell)
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "%s = %s, want %s", cell, got, want)
}

func TestBuilder_Build_SingleRow(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a_88.00元.pdf", "b.pdf")
	now := time.Date(2026, 10, 17, 9, 30, 15, 0, time.Local)

	result, err := newBuilder(now).Build(dir)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("88")))
	assert.Equal(t, filepath.Join(dir, "2026-10-17-093015_报销88.00元.xlsx"), result.Path)
	assert.Regexp(t, reportNamePattern, filepath.Base(result.Path))
	assert.NoFileExists(t, filepath.Join(dir, ProvisionalName("2026-10-17-093015")))

	f, err := excelize.OpenFile(result.Path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "文件名", rawCell(t, f, "A1"))
	assert.Equal(t, "报销金额", rawCell(t, f, "B1"))
	assert.Equal(t, "a_88.00元.pdf", rawCell(t, f, "A2"))
	assertAmountCell(t, f, "B2", "88.00")
	assert.Equal(t, "总金额", rawCell(t, f, "A3"))
	assertAmountCell(t, f, "B3", "88.00")
	assert.Empty(t, rawCell(t, f, "A4"))

	formatted, err := f.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "88.00", formatted)

	width, err := f.GetColWidth(sheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(nameColWidth), width)
	width, err = f.GetColWidth(sheetName, "B")
	require.NoError(t, err)
	assert.Equal(t, float64(amountColWidth), width)
}

func TestBuilder_Build_RowsFollowNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"c_1元.pdf",
		"a_300.5元.JPG",
		"b_20.25元.png",
		"d_7元 (1).pdf",
		"e_9元.jpeg",
		"notes_5元.txt",
		"2026-01-01-000000_报销42.00元.xlsx",
	)

	result, err := newBuilder(time.Date(2026, 10, 17, 9, 30, 15, 0, time.Local)).Build(dir)

	require.NoError(t, err)
	names := make([]string, 0, len(result.Rows))
	for _, r := range result.Rows {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"a_300.5元.JPG", "b_20.25元.png", "c_1元.pdf", "d_7元 (1).pdf", "e_9元.jpeg"}, names)
	assert.Equal(t, 5, result.Count)
	assert.Equal(t, "337.75", result.Total.StringFixed(2))
	assert.Equal(t, "2026-10-17-093015_报销337.75元.xlsx", filepath.Base(result.Path))

	f, err := excelize.OpenFile(result.Path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "a_300.5元.JPG", rawCell(t, f, "A2"))
	assert.Equal(t, "e_9元.jpeg", rawCell(t, f, "A6"))
	assert.Equal(t, "总金额", rawCell(t, f, "A7"))
	assertAmountCell(t, f, "B7", "337.75")
}

func TestBuilder_Build_EmptyFolder(t *testing.T) {
	dir := t.TempDir()

	result, err := newBuilder(time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)).Build(dir)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.True(t, result.Total.IsZero())
	assert.Equal(t, filepath.Join(dir, "2026-01-02-030405_报销0.00元.xlsx"), result.Path)
	assert.FileExists(t, result.Path)
}

func TestBuilder_Build_KeepsProvisionalNameWhenRenameFails(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a_10元.pdf")
	stamp := "2026-10-17-093015"

	// a non-empty directory occupies the final name
	blocker := filepath.Join(dir, FinalName(stamp, decimal.NewFromInt(10)))
	require.NoError(t, os.Mkdir(blocker, 0755))
	writeFiles(t, blocker, "keep.txt")

	result, err := newBuilder(time.Date(2026, 10, 17, 9, 30, 15, 0, time.Local)).Build(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ProvisionalName(stamp)), result.Path)
	assert.FileExists(t, result.Path)
	assert.Equal(t, 1, result.Count)
}

func TestBuilder_Build_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a_10元.pdf")
	stamp := "2026-10-17-093015"

	// a directory occupies the provisional name
	blocker := filepath.Join(dir, ProvisionalName(stamp))
	require.NoError(t, os.Mkdir(blocker, 0755))

	_, err := newBuilder(time.Date(2026, 10, 17, 9, 30, 15, 0, time.Local)).Build(dir)

	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.DirExists(t, blocker)
	assert.NoFileExists(t, filepath.Join(dir, FinalName(stamp, decimal.NewFromInt(10))))
}

func TestBuilder_Build_UnreadableFolder(t *testing.T) {
	_, err := newBuilder(time.Now()).Build(filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, storage.ErrDirectoryUnreadable)
}

func TestBuilder_NextStamp(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 15, 400, time.Local)
	b := newBuilder(now)

	assert.Equal(t, "2026-10-17-093015", b.nextStamp())
	assert.Equal(t, "2026-10-17-093016", b.nextStamp())
	assert.Equal(t, "2026-10-17-093017", b.nextStamp())

	b.WithClock(fixedClock(now.Add(time.Minute)))
	assert.Equal(t, "2026-10-17-093115", b.nextStamp())
}

func TestFinalName(t *testing.T) {
	assert.Equal(t, "s_报销0.00元.xlsx", ProvisionalName("s"))
	assert.Equal(t, "s_报销1234.50元.xlsx", FinalName("s", decimal.RequireFromString("1234.5")))
}
