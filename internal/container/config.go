// Package container wires the folder pipeline and its optional history and
// notification backends, and owns their lifecycle.
package container

import (
	"fmt"
	"time"

	"github.com/garyjia/fapiao-helper/internal/invoice"
	"github.com/garyjia/fapiao-helper/internal/storage"
)

// Config holds all configuration for the Container.
type Config struct {
	// PDF text extraction
	PDF PDFConfig

	// Rename stage settings
	Rename RenameConfig

	// Report stage settings
	Report ReportConfig

	// Run history database
	Database DatabaseConfig

	// Lark notifications
	Lark LarkConfig

	// Server configuration
	Server ServerConfig
}

// PDFConfig selects the text engine.
type PDFConfig struct {
	// Engine is mupdf, native or auto
	Engine string

	// MaxPages caps pages read per file, 0 reads all
	MaxPages int
}

// RenameConfig holds rename stage settings.
type RenameConfig struct {
	// MaxCollisionProbe bounds the " (n)" suffix search, 0 uses the default
	MaxCollisionProbe int

	// DryRun resolves target names without moving files
	DryRun bool
}

// ReportConfig holds report stage settings.
type ReportConfig struct {
	// Skip runs only the rename stage in Process
	Skip bool
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// Enabled turns run history on
	Enabled bool

	// Path to SQLite database file
	Path string

	// MaxOpenConns is the maximum number of open connections
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections
	MaxIdleConns int

	// ConnMaxLifetime is the maximum connection lifetime
	ConnMaxLifetime time.Duration
}

// LarkConfig holds Lark API settings.
type LarkConfig struct {
	// AppID is the Lark application ID, empty disables notifications
	AppID string

	// AppSecret is the Lark application secret
	AppSecret string

	// ReceiveIDType is chat_id, open_id, user_id or email
	ReceiveIDType string

	// ReceiveID is the chat or user that gets run summaries
	ReceiveID string

	// APITimeout is the timeout for API calls
	APITimeout time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host to bind to
	Host string

	// Port to listen on
	Port int

	// ReadTimeout for HTTP server
	ReadTimeout time.Duration

	// WriteTimeout for HTTP server
	WriteTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PDF: PDFConfig{
			Engine: invoice.EngineAuto,
		},
		Rename: RenameConfig{
			MaxCollisionProbe: storage.DefaultMaxProbe,
		},
		Database: DatabaseConfig{
			Path:            "data/fapiao.db",
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Lark: LarkConfig{
			ReceiveIDType: "chat_id",
			APITimeout:    30 * time.Second,
		},
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 5 * time.Minute,
		},
	}
}

// Validate checks that required configuration values are present.
func (c *Config) Validate() error {
	if c.Database.Enabled && c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	// Validate Lark configuration
	if c.Lark.AppID != "" {
		if c.Lark.AppSecret == "" {
			return fmt.Errorf("lark.app_secret is required")
		}
		if c.Lark.ReceiveID == "" {
			return fmt.Errorf("lark.receive_id is required")
		}
	}

	return nil
}
