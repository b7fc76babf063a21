package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/garyjia/fapiao-helper/internal/invoice"
	"github.com/garyjia/fapiao-helper/internal/models"
	"github.com/garyjia/fapiao-helper/internal/processor"
	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogger struct{}

func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

type mockFolderProcessor struct {
	processFunc func(dir string) (*processor.ProcessResult, error)
	renameFunc  func(dir string) (*renamer.RenameResult, error)
	reportFunc  func(dir string) (*report.Result, error)
}

func (m *mockFolderProcessor) Process(dir string) (*processor.ProcessResult, error) {
	return m.processFunc(dir)
}

func (m *mockFolderProcessor) Rename(dir string) (*renamer.RenameResult, error) {
	return m.renameFunc(dir)
}

func (m *mockFolderProcessor) Report(dir string) (*report.Result, error) {
	return m.reportFunc(dir)
}

type mockRunRepo struct {
	saved   []*models.ProcessingRun
	saveErr error
}

func (m *mockRunRepo) Save(ctx context.Context, run *models.ProcessingRun) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	run.ID = "run-1"
	m.saved = append(m.saved, run)
	return nil
}

func (m *mockRunRepo) ListRecent(ctx context.Context, limit int) ([]*models.ProcessingRun, error) {
	if limit < len(m.saved) {
		return m.saved[:limit], nil
	}
	return m.saved, nil
}

func (m *mockRunRepo) GetByID(ctx context.Context, id string) (*models.ProcessingRun, error) {
	for _, r := range m.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

type mockNotifier struct {
	summaries []string
	reports   []string
	err       error
}

func (m *mockNotifier) NotifyRun(ctx context.Context, summary, reportPath string) error {
	m.summaries = append(m.summaries, summary)
	m.reports = append(m.reports, reportPath)
	return m.err
}

func sampleResult(dir string) *processor.ProcessResult {
	return &processor.ProcessResult{
		Scanned:    2,
		Renamed:    1,
		Failed:     1,
		Count:      1,
		Total:      decimal.RequireFromString("88"),
		ReportPath: dir + "/2026-10-17-093015_报销88.00元.xlsx",
		Dir:        dir,
		StartedAt:  time.Date(2026, 10, 17, 9, 30, 15, 0, time.UTC),
		Files: []renamer.FileOutcome{
			{Name: "a.pdf", NewName: "a_88.00元.pdf", Status: renamer.StatusRenamed, Amount: "88.00"},
			{Name: "b.pdf", Status: renamer.StatusFailed, Err: renamer.ErrNoAmountFound},
		},
	}
}

func TestRunService_Process_RecordsAndNotifies(t *testing.T) {
	proc := &mockFolderProcessor{
		processFunc: func(dir string) (*processor.ProcessResult, error) { return sampleResult(dir), nil },
	}
	runs := &mockRunRepo{}
	notifier := &mockNotifier{}
	svc := NewRunService(proc, runs, notifier, RunOptions{}, &mockLogger{})

	result, err := svc.Process(context.Background(), "/in")

	require.NoError(t, err)
	assert.Equal(t, "run-1", result.RunID)

	require.Len(t, runs.saved, 1)
	saved := runs.saved[0]
	assert.Equal(t, "/in", saved.Dir)
	assert.Equal(t, 1, saved.ReportCount)
	assert.Equal(t, "88", saved.Total.String())
	require.Len(t, saved.Files, 2)
	assert.Equal(t, "renamed", saved.Files[0].Status)
	assert.Empty(t, saved.Files[0].Error)
	assert.Equal(t, "failed", saved.Files[1].Status)
	assert.Equal(t, renamer.ErrNoAmountFound.Error(), saved.Files[1].Error)

	assert.Equal(t, []string{result.Summary()}, notifier.summaries)
	assert.Equal(t, []string{result.ReportPath}, notifier.reports)
}

func TestRunService_Process_SideEffectFailuresDoNotFailRun(t *testing.T) {
	proc := &mockFolderProcessor{
		processFunc: func(dir string) (*processor.ProcessResult, error) { return sampleResult(dir), nil },
	}
	runs := &mockRunRepo{saveErr: errors.New("disk full")}
	notifier := &mockNotifier{err: errors.New("lark down")}
	svc := NewRunService(proc, runs, notifier, RunOptions{}, &mockLogger{})

	result, err := svc.Process(context.Background(), "/in")

	require.NoError(t, err)
	assert.Empty(t, result.RunID)
	assert.Len(t, notifier.summaries, 1)
}

func TestRunService_Process_Failure(t *testing.T) {
	proc := &mockFolderProcessor{
		processFunc: func(dir string) (*processor.ProcessResult, error) {
			return nil, invoice.ErrExtraction
		},
	}
	runs := &mockRunRepo{}
	notifier := &mockNotifier{}
	svc := NewRunService(proc, runs, notifier, RunOptions{}, &mockLogger{})

	_, err := svc.Process(context.Background(), "/in")

	assert.ErrorIs(t, err, invoice.ErrExtraction)
	assert.Empty(t, runs.saved)
	assert.Empty(t, notifier.summaries)
}

func TestRunService_Process_SkipReport(t *testing.T) {
	proc := &mockFolderProcessor{
		processFunc: func(dir string) (*processor.ProcessResult, error) {
			t.Fatal("full process should not run")
			return nil, nil
		},
		renameFunc: func(dir string) (*renamer.RenameResult, error) {
			return &renamer.RenameResult{Scanned: 3, Renamed: 2, Failed: 1}, nil
		},
	}
	notifier := &mockNotifier{}
	svc := NewRunService(proc, nil, notifier, RunOptions{SkipReport: true}, &mockLogger{})

	result, err := svc.Process(context.Background(), "/in")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 2, result.Renamed)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.ReportPath)
	assert.False(t, result.StartedAt.IsZero())
	assert.Equal(t, []string{""}, notifier.reports)
}

func TestRunService_History(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		svc := NewRunService(&mockFolderProcessor{}, nil, nil, RunOptions{}, &mockLogger{})

		_, err := svc.History(context.Background(), 10)
		assert.ErrorIs(t, err, ErrHistoryDisabled)
		_, err = svc.GetRun(context.Background(), "run-1")
		assert.ErrorIs(t, err, ErrHistoryDisabled)
	})

	t.Run("enabled", func(t *testing.T) {
		proc := &mockFolderProcessor{
			processFunc: func(dir string) (*processor.ProcessResult, error) { return sampleResult(dir), nil },
		}
		runs := &mockRunRepo{}
		svc := NewRunService(proc, runs, nil, RunOptions{}, &mockLogger{})
		_, err := svc.Process(context.Background(), "/in")
		require.NoError(t, err)

		list, err := svc.History(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, list, 1)

		run, err := svc.GetRun(context.Background(), "run-1")
		require.NoError(t, err)
		assert.Equal(t, "/in", run.Dir)
	})
}

func TestRunService_Stages(t *testing.T) {
	proc := &mockFolderProcessor{
		renameFunc: func(dir string) (*renamer.RenameResult, error) {
			return &renamer.RenameResult{Scanned: 1}, nil
		},
		reportFunc: func(dir string) (*report.Result, error) {
			return &report.Result{Count: 4}, nil
		},
	}
	svc := NewRunService(proc, nil, nil, RunOptions{}, &mockLogger{})

	renamed, err := svc.Rename(context.Background(), "/in")
	require.NoError(t, err)
	assert.Equal(t, 1, renamed.Scanned)

	rep, err := svc.Report(context.Background(), "/in")
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Count)
}
