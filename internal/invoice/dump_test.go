package invoice

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpText(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "发票.pdf")

	src := new(MockTextSource)
	src.On("ReadText", pdfPath).Return("价税合计 ¥ 99.00 税额 ¥ 5.61", nil)

	dump, err := DumpText(src, pdfPath)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "发票.txt"), dump.OutputPath)
	assert.False(t, dump.Empty)
	require.True(t, dump.HasAmount)
	assert.Equal(t, "99.00", dump.Amount.Raw)

	data, err := os.ReadFile(dump.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "价税合计 ¥ 99.00 税额 ¥ 5.61", string(data))
}

func TestDumpText_EmptyText(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "scan.PDF")

	src := new(MockTextSource)
	src.On("ReadText", pdfPath).Return(" \n\t", nil)

	dump, err := DumpText(src, pdfPath)

	require.NoError(t, err)
	assert.True(t, dump.Empty)
	assert.False(t, dump.HasAmount)
	data, err := os.ReadFile(filepath.Join(dir, "scan.txt"))
	require.NoError(t, err)
	assert.Equal(t, EmptyTextPlaceholder, string(data))
}

func TestDumpText_ExtractionError(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "broken.pdf")

	src := new(MockTextSource)
	src.On("ReadText", pdfPath).Return("", errors.Join(ErrExtraction, errors.New("bad xref")))

	_, err := DumpText(src, pdfPath)

	assert.ErrorIs(t, err, ErrExtraction)
	assert.NoFileExists(t, filepath.Join(dir, "broken.txt"))
}

func TestTextDump_Preview(t *testing.T) {
	short := &TextDump{Text: "¥1"}
	assert.Equal(t, "¥1", short.Preview(500))
	assert.Equal(t, 2, short.Length())

	long := &TextDump{Text: strings.Repeat("票", 501)}
	preview := long.Preview(500)
	assert.Equal(t, strings.Repeat("票", 500)+"...", preview)
	assert.Equal(t, 501, long.Length())
}
