package processor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/report"
	"github.com/garyjia/fapiao-helper/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type MockRenamer struct {
	mock.Mock
}

func (m *MockRenamer) RenameAll(dir string) (*renamer.RenameResult, error) {
	args := m.Called(dir)
	res, _ := args.Get(0).(*renamer.RenameResult)
	return res, args.Error(1)
}

type MockReportBuilder struct {
	mock.Mock
}

func (m *MockReportBuilder) Build(dir string) (*report.Result, error) {
	args := m.Called(dir)
	res, _ := args.Get(0).(*report.Result)
	return res, args.Error(1)
}

type MockTextSource struct {
	mock.Mock
}

func (m *MockTextSource) ReadText(path string) (string, error) {
	args := m.Called(filepath.Base(path))
	return args.String(0), args.Error(1)
}

func TestProcessor_Process_CombinesStages(t *testing.T) {
	r := new(MockRenamer)
	b := new(MockReportBuilder)
	var calls []string
	r.On("RenameAll", "/in").Run(func(mock.Arguments) { calls = append(calls, "rename") }).
		Return(&renamer.RenameResult{Scanned: 3, Renamed: 2, Failed: 1}, nil)
	b.On("Build", "/in").Run(func(mock.Arguments) { calls = append(calls, "report") }).
		Return(&report.Result{Count: 4, Total: decimal.RequireFromString("10.5"), Path: "/in/r.xlsx"}, nil)

	result, err := New(r, b, zap.NewNop()).Process("/in")

	require.NoError(t, err)
	assert.Equal(t, []string{"rename", "report"}, calls)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Renamed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 4, result.Count)
	assert.Equal(t, "10.50", result.Total.StringFixed(2))
	assert.Equal(t, "/in/r.xlsx", result.ReportPath)
	assert.Equal(t, "/in", result.Dir)
}

func TestProcessor_Process_RenameFailureSkipsReport(t *testing.T) {
	r := new(MockRenamer)
	b := new(MockReportBuilder)
	r.On("RenameAll", "/gone").Return(nil, storage.ErrDirectoryUnreadable)

	_, err := New(r, b, zap.NewNop()).Process("/gone")

	assert.ErrorIs(t, err, storage.ErrDirectoryUnreadable)
	b.AssertNotCalled(t, "Build", mock.Anything)
}

func TestProcessor_Process_ReportFailure(t *testing.T) {
	r := new(MockRenamer)
	b := new(MockReportBuilder)
	r.On("RenameAll", "/in").Return(&renamer.RenameResult{}, nil)
	b.On("Build", "/in").Return(nil, report.ErrWriteFailed)

	_, err := New(r, b, zap.NewNop()).Process("/in")

	assert.ErrorIs(t, err, report.ErrWriteFailed)
}

func TestProcessor_Process_DryRunWritesNoReport(t *testing.T) {
	r := new(MockRenamer)
	b := new(MockReportBuilder)
	r.On("RenameAll", "/in").Return(&renamer.RenameResult{
		Scanned: 2,
		Planned: 1,
		Failed:  1,
		DryRun:  true,
		Files:   []renamer.FileOutcome{{Name: "a.pdf", NewName: "a_5元.pdf", Status: renamer.StatusPlanned, Amount: "5"}},
	}, nil)

	result, err := New(r, b, zap.NewNop()).Process("/in")

	require.NoError(t, err)
	b.AssertNotCalled(t, "Build", mock.Anything)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Planned)
	assert.Equal(t, 0, result.Renamed)
	assert.Empty(t, result.ReportPath)
	assert.Contains(t, result.Summary(), "预计改名：1\n")
}

func TestProcessResult_MarshalJSON_FixedTotal(t *testing.T) {
	result := &ProcessResult{
		Scanned: 1,
		Total:   decimal.RequireFromString("12.5"),
		Dir:     "/in",
		RunID:   "run-1",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "12.50", got["total"])
	assert.Equal(t, float64(1), got["scanned"])
	assert.Equal(t, "/in", got["dir"])
	assert.Equal(t, "run-1", got["run_id"])
	assert.NotContains(t, got, "dry_run")
}

func TestProcessResult_Summary(t *testing.T) {
	result := &ProcessResult{
		Scanned:    2,
		Renamed:    1,
		Failed:     1,
		Count:      1,
		Total:      decimal.RequireFromString("88"),
		ReportPath: "/in/2026-10-17-093015_报销88.00元.xlsx",
	}

	want := "PDF 扫描数量：2\n" +
		"成功改名：1\n" +
		"失败/跳过：1\n\n" +
		"报表条目数：1\n" +
		"合计金额：88.00 元\n" +
		"报表文件：/in/2026-10-17-093015_报销88.00元.xlsx"
	assert.Equal(t, want, result.Summary())
}

// TestProcessor_Process_EndToEnd runs the real stages over a folder with one
// taggable and one untaggable invoice.
func TestProcessor_Process_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	src := new(MockTextSource)
	src.On("ReadText", "a.pdf").Return("总计 ¥88.00", nil)
	src.On("ReadText", "b.pdf").Return("total, no currency marker", nil)

	logger := zap.NewNop()
	folders := storage.NewFolderManager(0, logger)
	builder := report.NewBuilder(folders, logger).
		WithClock(func() time.Time { return time.Date(2026, 10, 17, 9, 30, 15, 0, time.Local) })
	p := New(renamer.New(folders, src, logger), builder, logger)

	result, err := p.Process(dir)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "88.00", result.Total.StringFixed(2))
	assert.Equal(t, filepath.Join(dir, "2026-10-17-093015_报销88.00元.xlsx"), result.ReportPath)
	assert.FileExists(t, filepath.Join(dir, "a_88.00元.pdf"))
	assert.FileExists(t, filepath.Join(dir, "b.pdf"))

	f, err := excelize.OpenFile(result.ReportPath)
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "a_88.00元.pdf", name)
	label, err := f.GetCellValue("Sheet1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "总金额", label)

	// a second run renames nothing and reports the same total
	again, err := p.Process(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Renamed)
	assert.Equal(t, 1, again.Failed)
	assert.Equal(t, "88.00", again.Total.StringFixed(2))
	assert.Equal(t, filepath.Join(dir, "2026-10-17-093016_报销88.00元.xlsx"), again.ReportPath)
}
