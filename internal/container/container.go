package container

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/garyjia/fapiao-helper/internal/application/port"
	"github.com/garyjia/fapiao-helper/internal/application/service"
	"github.com/garyjia/fapiao-helper/internal/invoice"
	"github.com/garyjia/fapiao-helper/internal/processor"
	"github.com/garyjia/fapiao-helper/pkg/database"
	"go.uber.org/zap"
)

// Container manages all application dependencies and lifecycle.
// Components are initialized in dependency order and torn down in reverse.
type Container struct {
	config *Config
	logger *zap.Logger

	// Infrastructure - Data
	db   *database.DB
	runs port.RunRepository

	// Infrastructure - External
	notifier port.RunNotifier

	// Pipeline
	pipeline *PipelineBundle

	// Application
	runService service.RunService

	// Lifecycle
	mu     sync.RWMutex
	ready  atomic.Bool
	closed atomic.Bool
}

// HealthStatus represents the health of all components.
type HealthStatus struct {
	Overall    bool                       `json:"overall"`
	Components map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health of a single component.
type ComponentHealth struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// NewContainer creates a new container from configuration.
// It does not initialize components - call Start() to initialize.
func NewContainer(cfg *Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Container{
		config: cfg,
		logger: logger,
	}, nil
}

// Start initializes all components in dependency order:
// 1. Database and run repository (when enabled)
// 2. Lark notifier (when configured)
// 3. Folder pipeline
// 4. Run service
func (c *Container) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return fmt.Errorf("container has been closed")
	}

	if c.ready.Load() {
		return fmt.Errorf("container already started")
	}

	c.logger.Debug("Starting container initialization")

	// Step 1: Initialize database and repositories
	if err := c.initDatabase(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Step 2: Initialize external clients
	if err := c.initExternalClients(); err != nil {
		c.closeDatabase()
		return fmt.Errorf("failed to initialize external clients: %w", err)
	}

	// Step 3: Initialize the pipeline
	pipeline, err := ProvidePipeline(&c.config.PDF, &c.config.Rename, c.logger)
	if err != nil {
		c.closeDatabase()
		return fmt.Errorf("failed to initialize pipeline: %w", err)
	}
	c.pipeline = pipeline

	// Step 4: Initialize application services
	runService, err := ProvideRunService(&RunServiceDeps{
		Processor: c.pipeline.Processor,
		Runs:      c.runs,
		Notifier:  c.notifier,
		Options:   service.RunOptions{SkipReport: c.config.Report.Skip},
		Logger:    c.logger,
	})
	if err != nil {
		c.closeDatabase()
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	c.runService = runService

	c.ready.Store(true)
	c.logger.Debug("Container started",
		zap.Bool("history", c.runs != nil),
		zap.Bool("lark", c.notifier != nil))

	return nil
}

// Close gracefully shuts down all components in reverse order.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return fmt.Errorf("container already closed")
	}

	var err error
	if c.db != nil {
		if err = c.db.Close(); err != nil {
			c.logger.Error("Failed to close database", zap.Error(err))
			err = fmt.Errorf("close database: %w", err)
		}
		c.db = nil
	}

	c.closed.Store(true)
	c.ready.Store(false)
	return err
}

// Ready returns true when all components are initialized.
func (c *Container) Ready() bool {
	return c.ready.Load()
}

// Health returns health status of all components.
func (c *Container) Health() *HealthStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := &HealthStatus{
		Overall:    c.Ready(),
		Components: make(map[string]ComponentHealth),
	}

	// Check database
	switch {
	case !c.config.Database.Enabled:
		status.Components["database"] = ComponentHealth{Healthy: true, Message: "disabled"}
	case c.db == nil:
		status.Components["database"] = ComponentHealth{Healthy: false, Message: "not initialized"}
		status.Overall = false
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := c.db.Check(ctx)
		cancel()
		if err != nil {
			status.Components["database"] = ComponentHealth{
				Healthy: false,
				Message: err.Error(),
			}
			status.Overall = false
		} else {
			status.Components["database"] = ComponentHealth{Healthy: true}
		}
	}

	// Check notifier
	if c.notifier != nil {
		status.Components["lark"] = ComponentHealth{Healthy: true}
	} else {
		status.Components["lark"] = ComponentHealth{Healthy: true, Message: "disabled"}
	}

	// Check pipeline
	if c.pipeline != nil {
		status.Components["pipeline"] = ComponentHealth{Healthy: true, Message: c.config.PDF.Engine}
	} else {
		status.Components["pipeline"] = ComponentHealth{Healthy: false, Message: "not initialized"}
		status.Overall = false
	}

	return status
}

// initDatabase opens the history database when enabled.
func (c *Container) initDatabase() error {
	if !c.config.Database.Enabled {
		return nil
	}

	bundle, err := ProvideDatabase(&c.config.Database, c.logger)
	if err != nil {
		return err
	}

	c.db = bundle.DB
	c.runs = bundle.Runs
	return nil
}

// initExternalClients creates the Lark notifier when an app is configured.
func (c *Container) initExternalClients() error {
	if c.config.Lark.AppID == "" {
		return nil
	}

	notifier, err := ProvideLarkNotifier(&c.config.Lark, c.logger)
	if err != nil {
		return err
	}
	c.notifier = notifier
	return nil
}

func (c *Container) closeDatabase() {
	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
		c.runs = nil
	}
}

// Getters for accessing container components

// RunService returns the run service shared by all front-ends.
func (c *Container) RunService() service.RunService {
	return c.runService
}

// Processor returns the folder processor.
func (c *Container) Processor() *processor.Processor {
	if c.pipeline == nil {
		return nil
	}
	return c.pipeline.Processor
}

// TextSource returns the configured PDF text source.
func (c *Container) TextSource() invoice.TextSource {
	if c.pipeline == nil {
		return nil
	}
	return c.pipeline.TextSource
}

// Logger returns the container's logger.
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// Config returns the container's configuration.
func (c *Container) Config() *Config {
	return c.config
}

// zapLoggerAdapter adapts zap.Logger to the service.Logger interface.
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	fields := convertToZapFields(keysAndValues...)
	a.logger.Info(msg, fields...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	fields := convertToZapFields(keysAndValues...)
	a.logger.Error(msg, fields...)
}

// convertToZapFields converts key-value pairs to zap fields.
func convertToZapFields(keysAndValues ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if err, ok := keysAndValues[i+1].(error); ok {
			fields = append(fields, zap.NamedError(key, err))
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

// HTTPLogger returns a logger for the HTTP adapter.
func (c *Container) HTTPLogger() service.Logger {
	return &zapLoggerAdapter{logger: c.logger}
}
