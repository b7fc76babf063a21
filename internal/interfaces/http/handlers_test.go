package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyjia/fapiao-helper/internal/application/service"
	"github.com/garyjia/fapiao-helper/internal/container"
	"github.com/garyjia/fapiao-helper/internal/models"
	"github.com/garyjia/fapiao-helper/internal/processor"
	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/report"
	"github.com/garyjia/fapiao-helper/internal/repository"
	"github.com/garyjia/fapiao-helper/internal/storage"
)

type mockLogger struct{}

func (m *mockLogger) Info(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Error(msg string, keysAndValues ...interface{}) {}

type mockRunService struct {
	processFunc func(dir string) (*processor.ProcessResult, error)
	renameFunc  func(dir string) (*renamer.RenameResult, error)
	reportFunc  func(dir string) (*report.Result, error)
	historyFunc func(limit int) ([]*models.ProcessingRun, error)
	getRunFunc  func(id string) (*models.ProcessingRun, error)
}

func (m *mockRunService) Process(ctx context.Context, dir string) (*processor.ProcessResult, error) {
	return m.processFunc(dir)
}

func (m *mockRunService) Rename(ctx context.Context, dir string) (*renamer.RenameResult, error) {
	return m.renameFunc(dir)
}

func (m *mockRunService) Report(ctx context.Context, dir string) (*report.Result, error) {
	return m.reportFunc(dir)
}

func (m *mockRunService) History(ctx context.Context, limit int) ([]*models.ProcessingRun, error) {
	return m.historyFunc(limit)
}

func (m *mockRunService) GetRun(ctx context.Context, id string) (*models.ProcessingRun, error) {
	return m.getRunFunc(id)
}

type stubHealth struct {
	status *container.HealthStatus
}

func (s stubHealth) Health() *container.HealthStatus {
	return s.status
}

func healthy() stubHealth {
	return stubHealth{status: &container.HealthStatus{
		Overall:    true,
		Components: map[string]container.ComponentHealth{"pipeline": {Healthy: true, Message: "auto"}},
	}}
}

func newTestServer(svc service.RunService) *Server {
	return NewServer(DefaultServerConfig(), svc, healthy(), &mockLogger{})
}

func doRequest(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestHandlers_HealthCheck(t *testing.T) {
	w, resp := doRequest(t, newTestServer(&mockRunService{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, Version, data["version"])
	components := data["components"].(map[string]interface{})
	assert.Contains(t, components, "pipeline")
}

func TestHandlers_HealthCheck_Unhealthy(t *testing.T) {
	health := stubHealth{status: &container.HealthStatus{
		Overall: false,
		Components: map[string]container.ComponentHealth{
			"database": {Healthy: false, Message: "history schema missing"},
		},
	}}
	s := NewServer(DefaultServerConfig(), &mockRunService{}, health, &mockLogger{})

	w, resp := doRequest(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, false, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "unhealthy", data["status"])
	db := data["components"].(map[string]interface{})["database"].(map[string]interface{})
	assert.Equal(t, "history schema missing", db["message"])
}

func TestHandlers_ProcessFolder(t *testing.T) {
	svc := &mockRunService{
		processFunc: func(dir string) (*processor.ProcessResult, error) {
			return &processor.ProcessResult{
				Scanned:    2,
				Renamed:    1,
				Failed:     1,
				Count:      1,
				Total:      decimal.RequireFromString("88"),
				ReportPath: dir + "/r.xlsx",
				Dir:        dir,
				RunID:      "run-1",
				Files: []renamer.FileOutcome{
					{Name: "a.pdf", NewName: "a_88.00元.pdf", Status: renamer.StatusRenamed, Amount: "88.00"},
					{Name: "b.pdf", Status: renamer.StatusFailed, Err: renamer.ErrNoAmountFound},
				},
			}, nil
		},
	}

	w, resp := doRequest(t, newTestServer(svc), http.MethodPost, "/api/process", `{"dir":"/in"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["scanned"])
	assert.Equal(t, float64(1), data["renamed"])
	assert.Equal(t, "/in/r.xlsx", data["report_path"])
	assert.Equal(t, "88.00", data["total"])
	assert.Equal(t, "run-1", data["run_id"])
	assert.Contains(t, data["summary"], "合计金额：88.00 元")

	files := data["files"].([]interface{})
	require.Len(t, files, 2)
	failed := files[1].(map[string]interface{})
	assert.Equal(t, "failed", failed["status"])
	assert.Equal(t, renamer.ErrNoAmountFound.Error(), failed["error"])
}

func TestHandlers_ProcessFolder_BadRequests(t *testing.T) {
	svc := &mockRunService{
		processFunc: func(dir string) (*processor.ProcessResult, error) {
			return nil, fmt.Errorf("rename stage: %w", storage.ErrDirectoryUnreadable)
		},
	}
	s := newTestServer(svc)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"dir":`},
		{"missing dir", `{}`},
		{"blank dir", `{"dir":"  "}`},
		{"unreadable dir", `{"dir":"/gone"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(t, s, http.MethodPost, "/api/process", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, false, resp["success"])
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestHandlers_ProcessFolder_ServerError(t *testing.T) {
	svc := &mockRunService{
		processFunc: func(dir string) (*processor.ProcessResult, error) {
			return nil, fmt.Errorf("report stage: %w", report.ErrWriteFailed)
		},
	}

	w, _ := doRequest(t, newTestServer(svc), http.MethodPost, "/api/process", `{"dir":"/in"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandlers_Stages(t *testing.T) {
	svc := &mockRunService{
		renameFunc: func(dir string) (*renamer.RenameResult, error) {
			return &renamer.RenameResult{Scanned: 3, Renamed: 1, Skipped: 2}, nil
		},
		reportFunc: func(dir string) (*report.Result, error) {
			return &report.Result{Count: 2, Total: decimal.RequireFromString("10.5"), Path: dir + "/r.xlsx"}, nil
		},
	}
	s := newTestServer(svc)

	w, resp := doRequest(t, s, http.MethodPost, "/api/rename", `{"dir":"/in"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["skipped"])

	w, resp = doRequest(t, s, http.MethodPost, "/api/report", `{"dir":"/in"}`)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "10.50", data["total"])
	assert.Equal(t, "/in/r.xlsx", data["path"])
}

func TestHandlers_ListRuns(t *testing.T) {
	var gotLimit int
	svc := &mockRunService{
		historyFunc: func(limit int) ([]*models.ProcessingRun, error) {
			gotLimit = limit
			return []*models.ProcessingRun{{ID: "run-1", Dir: "/in"}}, nil
		},
	}
	s := newTestServer(svc)

	w, resp := doRequest(t, s, http.MethodGet, "/api/runs?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, gotLimit)
	runs := resp["data"].([]interface{})
	require.Len(t, runs, 1)

	w, _ = doRequest(t, s, http.MethodGet, "/api/runs?limit=1000", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, gotLimit)
}

func TestHandlers_ListRuns_HistoryDisabled(t *testing.T) {
	svc := &mockRunService{
		historyFunc: func(limit int) ([]*models.ProcessingRun, error) {
			return nil, service.ErrHistoryDisabled
		},
	}

	w, _ := doRequest(t, newTestServer(svc), http.MethodGet, "/api/runs", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandlers_GetRun(t *testing.T) {
	svc := &mockRunService{
		getRunFunc: func(id string) (*models.ProcessingRun, error) {
			if id == "run-1" {
				return &models.ProcessingRun{ID: id, Files: []models.RunFile{{Name: "a.pdf", Status: "renamed"}}}, nil
			}
			return nil, fmt.Errorf("%w: %s", repository.ErrRunNotFound, id)
		},
	}
	s := newTestServer(svc)

	w, resp := doRequest(t, s, http.MethodGet, "/api/runs/run-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "run-1", data["id"])
	assert.Len(t, data["files"], 1)

	w, _ = doRequest(t, s, http.MethodGet, "/api/runs/run-2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
