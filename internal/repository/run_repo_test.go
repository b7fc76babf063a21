package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/garyjia/fapiao-helper/internal/models"
	"github.com/garyjia/fapiao-helper/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *RunRepository {
	t.Helper()
	logger := zap.NewNop()
	db, err := database.New(database.Config{
		Path:         filepath.Join(t.TempDir(), "runs.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.NewMigrator(db, logger).RunMigrations())
	return NewRunRepository(db, logger)
}

func TestRunRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	started := time.Date(2026, 10, 17, 9, 30, 15, 0, time.UTC)

	run := &models.ProcessingRun{
		Dir:         "/invoices",
		Scanned:     2,
		Renamed:     1,
		Failed:      1,
		ReportCount: 1,
		Total:       decimal.RequireFromString("88.00"),
		ReportPath:  "/invoices/2026-10-17-093015_报销88.00元.xlsx",
		StartedAt:   started,
		Duration:    1500 * time.Millisecond,
		Files: []models.RunFile{
			{Name: "a.pdf", NewName: "a_88.00元.pdf", Status: "renamed", Amount: "88.00"},
			{Name: "b.pdf", Status: "failed", Error: "no amount found"},
		},
	}

	require.NoError(t, repo.Save(ctx, run))
	require.NotEmpty(t, run.ID)

	got, err := repo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "/invoices", got.Dir)
	assert.Equal(t, 2, got.Scanned)
	assert.Equal(t, 1, got.ReportCount)
	assert.Equal(t, "88.00", got.Total.StringFixed(2))
	assert.Equal(t, run.ReportPath, got.ReportPath)
	assert.True(t, got.StartedAt.Equal(started))
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	require.Len(t, got.Files, 2)
	assert.Equal(t, run.Files, got.Files)
}

func TestRunRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunRepository_ListRecent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, &models.ProcessingRun{
			Dir:       "/invoices",
			Scanned:   i,
			Total:     decimal.NewFromInt(int64(i)),
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	runs, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 2, runs[0].Scanned)
	assert.Equal(t, 1, runs[1].Scanned)
	assert.Empty(t, runs[0].Files)
}
