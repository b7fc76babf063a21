package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/garyjia/fapiao-helper/internal/config"
	"github.com/garyjia/fapiao-helper/internal/container"
	"github.com/garyjia/fapiao-helper/pkg/utils"
)

// app is a started container plus the configuration it came from.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	container *container.Container
}

// openApp loads configuration, applies flag overrides, builds the logger and
// starts the container. The caller must Close the returned app.
func openApp(opts *globalOptions, overrides ...func(*config.Config)) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logger.Level = opts.logLevel
	}
	for _, override := range overrides {
		override(cfg)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	c, err := container.NewContainer(cfg.ToContainerConfig(), logger)
	if err != nil {
		return nil, err
	}
	if err := c.Start(); err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    logger,
		container: c,
	}, nil
}

func (a *app) Close() {
	if err := a.container.Close(); err != nil {
		a.logger.Warn("Container closed with errors", zap.Error(err))
	}
	_ = a.logger.Sync()
}
