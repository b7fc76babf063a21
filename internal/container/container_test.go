package container

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/garyjia/fapiao-helper/internal/application/service"
	"github.com/garyjia/fapiao-helper/internal/invoice/invoicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewContainer_Validation(t *testing.T) {
	_, err := NewContainer(nil, zap.NewNop())
	assert.Error(t, err)

	_, err = NewContainer(DefaultConfig(), nil)
	assert.Error(t, err)

	cfg := DefaultConfig()
	cfg.Lark.AppID = "cli_x"
	_, err = NewContainer(cfg, zap.NewNop())
	assert.ErrorContains(t, err, "lark.app_secret")
}

func TestContainer_Lifecycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Enabled = true
	cfg.Database.Path = filepath.Join(t.TempDir(), "db", "fapiao.db")

	c, err := NewContainer(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Start())
	assert.True(t, c.Ready())
	assert.ErrorContains(t, c.Start(), "already started")

	health := c.Health()
	assert.True(t, health.Overall)
	assert.True(t, health.Components["database"].Healthy)
	assert.Equal(t, "disabled", health.Components["lark"].Message)
	assert.NotNil(t, c.TextSource())

	ctx := context.Background()
	dir := t.TempDir()
	result, err := c.RunService().Process(ctx, dir)
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.FileExists(t, result.ReportPath)

	runs, err := c.RunService().History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, dir, runs[0].Dir)

	require.NoError(t, c.Close())
	assert.False(t, c.Ready())
	assert.Error(t, c.Close())
	assert.Error(t, c.Start())
}

func TestContainer_DryRunPipeline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rename.DryRun = true

	c, err := NewContainer(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Start())
	defer c.Close()

	dir := t.TempDir()
	invoicetest.WritePDF(t, filepath.Join(dir, "a.pdf"), "Total ¥ 88.00")

	result, err := c.RunService().Process(context.Background(), dir)

	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Planned)
	assert.Empty(t, result.ReportPath)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "a_88.00元.pdf", result.Files[0].NewName)
	assert.FileExists(t, filepath.Join(dir, "a.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "a_88.00元.pdf"))
}

func TestContainer_HistoryDisabled(t *testing.T) {
	c, err := NewContainer(DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Start())
	defer c.Close()

	assert.Equal(t, "disabled", c.Health().Components["database"].Message)

	_, err = c.RunService().History(context.Background(), 5)
	assert.ErrorIs(t, err, service.ErrHistoryDisabled)
}

func TestContainer_UnknownEngine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PDF.Engine = "ocr"

	c, err := NewContainer(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Error(t, c.Start())
	assert.False(t, c.Ready())
}

func TestConvertToZapFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	adapter := &zapLoggerAdapter{logger: zap.New(core)}

	adapter.Error("Run failed", "dir", "/in", "error", errors.New("boom"), 42, "dropped", "dangling")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/in", fields["dir"])
	assert.Equal(t, "boom", fields["error"])
	assert.Len(t, fields, 2)
}
