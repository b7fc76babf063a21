package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves into an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "stderr", cfg.Logger.OutputPath)
	assert.Equal(t, "auto", cfg.PDF.Engine)
	assert.Equal(t, 10000, cfg.Rename.MaxCollisionProbe)
	assert.False(t, cfg.Rename.DryRun)
	assert.False(t, cfg.Report.Skip)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "data/fapiao.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.False(t, cfg.Lark.Enabled())
	assert.Equal(t, "chat_id", cfg.Lark.ReceiveIDType)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := chdirTemp(t)
	path := writeConfig(t, dir, `
logger:
  level: debug
pdf:
  engine: native
  max_pages: 3
database:
  enabled: true
  path: runs.db
server:
  port: 9090
  read_timeout: 10s
`)
	t.Setenv("FAPIAO_PDF_ENGINE", "mupdf")
	t.Setenv("FAPIAO_REPORT_SKIP", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "mupdf", cfg.PDF.Engine)
	assert.Equal(t, 3, cfg.PDF.MaxPages)
	assert.True(t, cfg.Report.Skip)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "runs.db", cfg.Database.Path)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestLoad_LarkCredentialsFromDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("LARK_APP_ID=cli_test\nLARK_APP_SECRET=secret\nFAPIAO_LARK_RECEIVE_ID=oc_123\n"), 0644))
	for _, key := range []string{"LARK_APP_ID", "LARK_APP_SECRET", "FAPIAO_LARK_RECEIVE_ID"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Lark.Enabled())
	assert.Equal(t, "cli_test", cfg.Lark.AppID)
	assert.Equal(t, "secret", cfg.Lark.AppSecret)
	assert.Equal(t, "oc_123", cfg.Lark.ReceiveID)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := chdirTemp(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			PDF:    PDFConfig{Engine: "auto"},
			Server: ServerConfig{Port: 8080},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"unknown engine", func(c *Config) { c.PDF.Engine = "ocr" }, "pdf.engine"},
		{"negative pages", func(c *Config) { c.PDF.MaxPages = -1 }, "pdf.max_pages"},
		{"negative probe", func(c *Config) { c.Rename.MaxCollisionProbe = -1 }, "max_collision_probe"},
		{"database without path", func(c *Config) { c.Database.Enabled = true }, "database.path"},
		{"lark without secret", func(c *Config) {
			c.Lark.AppID = "cli"
			c.Lark.ReceiveID = "oc"
		}, "lark.app_secret"},
		{"lark without receiver", func(c *Config) {
			c.Lark.AppID = "cli"
			c.Lark.AppSecret = "s"
		}, "lark.receive_id"},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DryRunReachesContainerConfig(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FAPIAO_RENAME_DRY_RUN", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Rename.DryRun)
	cc := cfg.ToContainerConfig()
	assert.True(t, cc.Rename.DryRun)
	assert.Equal(t, cfg.Rename.MaxCollisionProbe, cc.Rename.MaxCollisionProbe)
	assert.Equal(t, cfg.PDF.Engine, cc.PDF.Engine)
}
