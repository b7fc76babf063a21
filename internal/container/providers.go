package container

import (
	"fmt"

	"github.com/garyjia/fapiao-helper/internal/application/port"
	"github.com/garyjia/fapiao-helper/internal/application/service"
	"github.com/garyjia/fapiao-helper/internal/invoice"
	"github.com/garyjia/fapiao-helper/internal/lark"
	"github.com/garyjia/fapiao-helper/internal/processor"
	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/report"
	"github.com/garyjia/fapiao-helper/internal/repository"
	"github.com/garyjia/fapiao-helper/internal/storage"
	"github.com/garyjia/fapiao-helper/pkg/database"
	"go.uber.org/zap"
)

// PipelineBundle holds the rename and report stages and what they share.
type PipelineBundle struct {
	TextSource invoice.TextSource
	Folders    *storage.FolderManager
	Renamer    *renamer.Renamer
	Reports    *report.Builder
	Processor  *processor.Processor
}

// DatabaseBundle holds the history database and its repository.
type DatabaseBundle struct {
	DB   *database.DB
	Runs *repository.RunRepository
}

// ProvidePipeline builds the folder pipeline from the PDF and rename settings.
func ProvidePipeline(pdfCfg *PDFConfig, renameCfg *RenameConfig, logger *zap.Logger) (*PipelineBundle, error) {
	if pdfCfg == nil || renameCfg == nil {
		return nil, fmt.Errorf("pipeline config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	source, err := invoice.NewTextSource(pdfCfg.Engine, pdfCfg.MaxPages, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create text source: %w", err)
	}

	folders := storage.NewFolderManager(renameCfg.MaxCollisionProbe, logger)
	r := renamer.New(folders, source, logger).WithDryRun(renameCfg.DryRun)
	b := report.NewBuilder(folders, logger)

	return &PipelineBundle{
		TextSource: source,
		Folders:    folders,
		Renamer:    r,
		Reports:    b,
		Processor:  processor.New(r, b, logger),
	}, nil
}

// ProvideDatabase opens the history database and applies pending migrations.
func ProvideDatabase(cfg *DatabaseConfig, logger *zap.Logger) (*DatabaseBundle, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	db, err := database.New(database.Config{
		Path:            cfg.Path,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := database.NewMigrator(db, logger).RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DatabaseBundle{
		DB:   db,
		Runs: repository.NewRunRepository(db, logger),
	}, nil
}

// ProvideLarkNotifier creates the notifier that posts run summaries to Lark.
func ProvideLarkNotifier(cfg *LarkConfig, logger *zap.Logger) (*lark.Notifier, error) {
	if cfg == nil {
		return nil, fmt.Errorf("lark config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	client := lark.NewClient(lark.Config{
		AppID:      cfg.AppID,
		AppSecret:  cfg.AppSecret,
		APITimeout: cfg.APITimeout,
	}, logger)

	return lark.NewNotifier(lark.NewMessageAPI(client, logger), cfg.ReceiveIDType, cfg.ReceiveID, logger), nil
}

// RunServiceDeps holds dependencies for the run service. Runs and Notifier may be nil.
type RunServiceDeps struct {
	Processor port.FolderProcessor
	Runs      port.RunRepository
	Notifier  port.RunNotifier
	Options   service.RunOptions
	Logger    *zap.Logger
}

// ProvideRunService creates the RunService used by every front-end.
func ProvideRunService(deps *RunServiceDeps) (service.RunService, error) {
	if deps == nil {
		return nil, fmt.Errorf("service dependencies are required")
	}
	if deps.Processor == nil {
		return nil, fmt.Errorf("processor is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return service.NewRunService(
		deps.Processor,
		deps.Runs,
		deps.Notifier,
		deps.Options,
		&zapLoggerAdapter{logger: deps.Logger},
	), nil
}
