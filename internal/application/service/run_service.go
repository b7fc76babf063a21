package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/garyjia/fapiao-helper/internal/application/port"
	"github.com/garyjia/fapiao-helper/internal/models"
	"github.com/garyjia/fapiao-helper/internal/processor"
	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/report"
)

// ErrHistoryDisabled is returned by history queries when no database is configured.
var ErrHistoryDisabled = errors.New("run history is disabled")

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RunService runs folders one at a time and records what happened
type RunService interface {
	Process(ctx context.Context, dir string) (*processor.ProcessResult, error)
	Rename(ctx context.Context, dir string) (*renamer.RenameResult, error)
	Report(ctx context.Context, dir string) (*report.Result, error)
	History(ctx context.Context, limit int) ([]*models.ProcessingRun, error)
	GetRun(ctx context.Context, id string) (*models.ProcessingRun, error)
}

// RunOptions tunes Process.
type RunOptions struct {
	// SkipReport runs only the rename stage.
	SkipReport bool
}

type runServiceImpl struct {
	processor port.FolderProcessor
	runs      port.RunRepository // nil when history is disabled
	notifier  port.RunNotifier   // nil when notifications are disabled
	opts      RunOptions
	logger    Logger

	// one folder run at a time, whichever front-end asked
	mu sync.Mutex
}

// NewRunService creates a new RunService. runs and notifier may be nil.
func NewRunService(
	processor port.FolderProcessor,
	runs port.RunRepository,
	notifier port.RunNotifier,
	opts RunOptions,
	logger Logger,
) RunService {
	return &runServiceImpl{
		processor: processor,
		runs:      runs,
		notifier:  notifier,
		opts:      opts,
		logger:    logger,
	}
}

// Process runs the folder, then stores and announces the result. History and
// notification failures are logged and do not fail the run.
func (s *runServiceImpl) Process(ctx context.Context, dir string) (*processor.ProcessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		result *processor.ProcessResult
		err    error
	)
	if s.opts.SkipReport {
		result, err = s.renameOnly(dir)
	} else {
		result, err = s.processor.Process(dir)
	}
	if err != nil {
		return nil, err
	}

	if s.runs != nil {
		run := toRunModel(result)
		if err := s.runs.Save(ctx, run); err != nil {
			s.logger.Error("Failed to record run", "dir", dir, "error", err)
		} else {
			result.RunID = run.ID
		}
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyRun(ctx, result.Summary(), result.ReportPath); err != nil {
			s.logger.Error("Failed to send run notification", "dir", dir, "error", err)
		}
	}

	s.logger.Info("Run completed", "dir", dir, "run_id", result.RunID)
	return result, nil
}

func (s *runServiceImpl) renameOnly(dir string) (*processor.ProcessResult, error) {
	started := time.Now()
	renamed, err := s.processor.Rename(dir)
	if err != nil {
		return nil, fmt.Errorf("rename stage: %w", err)
	}
	result := processor.FromRename(dir, started, renamed)
	result.Duration = time.Since(started)
	return result, nil
}

// Rename runs only the rename stage
func (s *runServiceImpl) Rename(ctx context.Context, dir string) (*renamer.RenameResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processor.Rename(dir)
}

// Report runs only the report stage
func (s *runServiceImpl) Report(ctx context.Context, dir string) (*report.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processor.Report(dir)
}

// History lists recent runs, newest first
func (s *runServiceImpl) History(ctx context.Context, limit int) ([]*models.ProcessingRun, error) {
	if s.runs == nil {
		return nil, ErrHistoryDisabled
	}
	runs, err := s.runs.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one stored run with its file outcomes
func (s *runServiceImpl) GetRun(ctx context.Context, id string) (*models.ProcessingRun, error) {
	if s.runs == nil {
		return nil, ErrHistoryDisabled
	}
	return s.runs.GetByID(ctx, id)
}

func toRunModel(result *processor.ProcessResult) *models.ProcessingRun {
	run := &models.ProcessingRun{
		Dir:         result.Dir,
		Scanned:     result.Scanned,
		Renamed:     result.Renamed,
		Failed:      result.Failed,
		ReportCount: result.Count,
		Total:       result.Total,
		ReportPath:  result.ReportPath,
		StartedAt:   result.StartedAt,
		Duration:    result.Duration,
		Files:       make([]models.RunFile, 0, len(result.Files)),
	}
	for _, f := range result.Files {
		file := models.RunFile{
			Name:    f.Name,
			NewName: f.NewName,
			Status:  string(f.Status),
			Amount:  f.Amount,
		}
		if f.Err != nil {
			file.Error = f.Err.Error()
		}
		run.Files = append(run.Files, file)
	}
	return run
}
