package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix prefixes every environment override, e.g. FAPIAO_PDF_ENGINE.
const EnvPrefix = "FAPIAO"

// Config holds all application configuration
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	PDF      PDFConfig      `mapstructure:"pdf"`
	Rename   RenameConfig   `mapstructure:"rename"`
	Report   ReportConfig   `mapstructure:"report"`
	Database DatabaseConfig `mapstructure:"database"`
	Lark     LarkConfig     `mapstructure:"lark"`
	Server   ServerConfig   `mapstructure:"server"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// PDFConfig selects the text extraction engine.
type PDFConfig struct {
	Engine   string `mapstructure:"engine"`
	MaxPages int    `mapstructure:"max_pages"`
}

// RenameConfig bounds the collision probe used when renaming. DryRun plans
// renames without moving files and skips the report.
type RenameConfig struct {
	MaxCollisionProbe int  `mapstructure:"max_collision_probe"`
	DryRun            bool `mapstructure:"dry_run"`
}

// ReportConfig controls the report stage.
type ReportConfig struct {
	Skip bool `mapstructure:"skip"`
}

// DatabaseConfig holds the run history database configuration
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LarkConfig holds Lark API configuration. Notifications are sent only when AppID is set.
type LarkConfig struct {
	AppID         string        `mapstructure:"app_id"`
	AppSecret     string        `mapstructure:"app_secret"`
	ReceiveIDType string        `mapstructure:"receive_id_type"`
	ReceiveID     string        `mapstructure:"receive_id"`
	APITimeout    time.Duration `mapstructure:"api_timeout"`
}

// Enabled reports whether Lark notifications are configured.
func (c LarkConfig) Enabled() bool {
	return c.AppID != ""
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Address returns host:port for the HTTP listener.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load builds the configuration from defaults, an optional YAML file, a .env file
// in the working directory and the environment, in increasing precedence.
// An empty configPath skips the file.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv exports variables from path without overriding the real environment.
func loadDotEnv(path string) error {
	err := gotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.format", "console")

	// PDF defaults
	v.SetDefault("pdf.engine", "auto")
	v.SetDefault("pdf.max_pages", 0)

	// Rename defaults
	v.SetDefault("rename.max_collision_probe", 10000)
	v.SetDefault("rename.dry_run", false)

	// Report defaults
	v.SetDefault("report.skip", false)

	// Database defaults
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.path", "data/fapiao.db")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	// Lark defaults
	v.SetDefault("lark.app_id", "")
	v.SetDefault("lark.app_secret", "")
	v.SetDefault("lark.receive_id_type", "chat_id")
	v.SetDefault("lark.receive_id", "")
	v.SetDefault("lark.api_timeout", 30*time.Second)

	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 5*time.Minute)
}

// bindEnvVars binds the unprefixed credential variables
func bindEnvVars(v *viper.Viper) error {
	if err := v.BindEnv("lark.app_id", EnvPrefix+"_LARK_APP_ID", "LARK_APP_ID"); err != nil {
		return err
	}
	return v.BindEnv("lark.app_secret", EnvPrefix+"_LARK_APP_SECRET", "LARK_APP_SECRET")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.PDF.Engine {
	case "mupdf", "native", "auto":
	default:
		return fmt.Errorf("pdf.engine must be mupdf, native or auto, got %q", c.PDF.Engine)
	}
	if c.PDF.MaxPages < 0 {
		return fmt.Errorf("pdf.max_pages must not be negative")
	}

	if c.Rename.MaxCollisionProbe < 0 {
		return fmt.Errorf("rename.max_collision_probe must not be negative")
	}

	if c.Database.Enabled && c.Database.Path == "" {
		return fmt.Errorf("database.path is required when database.enabled is set")
	}

	// Validate Lark credentials
	if c.Lark.Enabled() {
		if c.Lark.AppSecret == "" {
			return fmt.Errorf("lark.app_secret is required")
		}
		if c.Lark.ReceiveID == "" {
			return fmt.Errorf("lark.receive_id is required")
		}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	return nil
}
