package port

import (
	"context"

	"github.com/garyjia/fapiao-helper/internal/models"
	"github.com/garyjia/fapiao-helper/internal/processor"
	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/report"
)

// FolderProcessor runs the rename and report stages over a folder
type FolderProcessor interface {
	Process(dir string) (*processor.ProcessResult, error)
	Rename(dir string) (*renamer.RenameResult, error)
	Report(dir string) (*report.Result, error)
}

// RunRepository defines persistence operations for ProcessingRun
type RunRepository interface {
	Save(ctx context.Context, run *models.ProcessingRun) error
	ListRecent(ctx context.Context, limit int) ([]*models.ProcessingRun, error)
	GetByID(ctx context.Context, id string) (*models.ProcessingRun, error)
}

// RunNotifier delivers a finished run's summary and report
type RunNotifier interface {
	NotifyRun(ctx context.Context, summary, reportPath string) error
}
