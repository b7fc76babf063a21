package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garyjia/fapiao-helper/internal/application/service"
	"github.com/garyjia/fapiao-helper/internal/container"
	"github.com/garyjia/fapiao-helper/internal/models"
	"github.com/garyjia/fapiao-helper/internal/processor"
	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/repository"
	"github.com/garyjia/fapiao-helper/internal/storage"
)

// Version is reported by the health check.
const Version = "1.0.0"

// Handlers contains all HTTP request handlers
type Handlers struct {
	runService service.RunService
	health     HealthReporter
	logger     Logger
}

// HealthReporter reports the health of the running components.
type HealthReporter interface {
	Health() *container.HealthStatus
}

// NewHandlers creates a new Handlers instance
func NewHandlers(runService service.RunService, health HealthReporter, logger Logger) *Handlers {
	return &Handlers{
		runService: runService,
		health:     health,
		logger:     logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string                               `json:"status"`
	Timestamp  string                               `json:"timestamp"`
	Version    string                               `json:"version"`
	Components map[string]container.ComponentHealth `json:"components"`
}

// FolderRequest names the folder to work on
type FolderRequest struct {
	Dir string `json:"dir" binding:"required"`
}

// ProcessResponse is a finished run plus its rendered summary
type ProcessResponse struct {
	RunID      string         `json:"run_id,omitempty"`
	Dir        string         `json:"dir"`
	Scanned    int            `json:"scanned"`
	Renamed    int            `json:"renamed"`
	Failed     int            `json:"failed"`
	Planned    int            `json:"planned,omitempty"`
	DryRun     bool           `json:"dry_run,omitempty"`
	Count      int            `json:"count"`
	Total      string         `json:"total"`
	ReportPath string         `json:"report_path"`
	StartedAt  time.Time      `json:"started_at"`
	DurationMS int64          `json:"duration_ms"`
	Summary    string         `json:"summary"`
	Files      []FileResponse `json:"files"`
}

// FileResponse is one PDF's outcome
type FileResponse struct {
	Name    string `json:"name"`
	NewName string `json:"new_name,omitempty"`
	Status  string `json:"status"`
	Amount  string `json:"amount,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RenameResponse is the outcome of the rename stage alone
type RenameResponse struct {
	Scanned int            `json:"scanned"`
	Renamed int            `json:"renamed"`
	Failed  int            `json:"failed"`
	Skipped int            `json:"skipped"`
	Planned int            `json:"planned,omitempty"`
	DryRun  bool           `json:"dry_run,omitempty"`
	Files   []FileResponse `json:"files"`
}

// ReportResponse is the outcome of the report stage alone
type ReportResponse struct {
	Count int    `json:"count"`
	Total string `json:"total"`
	Path  string `json:"path"`
}

// ListRunsRequest represents query parameters for listing runs
type ListRunsRequest struct {
	Limit int `form:"limit"`
}

// HealthCheck handles GET /health. It answers 503 while any component is unhealthy.
func (h *Handlers) HealthCheck(c *gin.Context) {
	status := h.health.Health()

	response := HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Version:    Version,
		Components: status.Components,
	}
	code := http.StatusOK
	if !status.Overall {
		response.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, Response{
		Success: status.Overall,
		Data:    response,
	})
}

// ProcessFolder handles POST /api/process
func (h *Handlers) ProcessFolder(c *gin.Context) {
	req, ok := h.bindFolder(c)
	if !ok {
		return
	}

	result, err := h.runService.Process(c.Request.Context(), req.Dir)
	if err != nil {
		h.fail(c, "Folder run failed", req.Dir, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    toProcessResponse(result),
	})
}

// RenameFolder handles POST /api/rename
func (h *Handlers) RenameFolder(c *gin.Context) {
	req, ok := h.bindFolder(c)
	if !ok {
		return
	}

	result, err := h.runService.Rename(c.Request.Context(), req.Dir)
	if err != nil {
		h.fail(c, "Rename failed", req.Dir, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: RenameResponse{
			Scanned: result.Scanned,
			Renamed: result.Renamed,
			Failed:  result.Failed,
			Skipped: result.Skipped,
			Planned: result.Planned,
			DryRun:  result.DryRun,
			Files:   toFileResponses(result.Files),
		},
	})
}

// BuildReport handles POST /api/report
func (h *Handlers) BuildReport(c *gin.Context) {
	req, ok := h.bindFolder(c)
	if !ok {
		return
	}

	result, err := h.runService.Report(c.Request.Context(), req.Dir)
	if err != nil {
		h.fail(c, "Report failed", req.Dir, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: ReportResponse{
			Count: result.Count,
			Total: result.Total.StringFixed(2),
			Path:  result.Path,
		},
	})
}

// ListRuns handles GET /api/runs
func (h *Handlers) ListRuns(c *gin.Context) {
	var req ListRunsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid query parameters",
		})
		return
	}

	// Set defaults
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}

	runs, err := h.runService.History(c.Request.Context(), req.Limit)
	if err != nil {
		h.fail(c, "Failed to list runs", "", err)
		return
	}
	if runs == nil {
		runs = []*models.ProcessingRun{}
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    runs,
	})
}

// GetRun handles GET /api/runs/:id
func (h *Handlers) GetRun(c *gin.Context) {
	run, err := h.runService.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get run", "", err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    run,
	})
}

func (h *Handlers) bindFolder(c *gin.Context) (FolderRequest, bool) {
	var req FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Dir) == "" {
		h.logger.Error("Invalid folder request", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "request body must be {\"dir\": \"<folder>\"}",
		})
		return req, false
	}
	return req, true
}

// fail maps service errors onto status codes.
func (h *Handlers) fail(c *gin.Context, msg, dir string, err error) {
	h.logger.Error(msg, "dir", dir, "error", err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrDirectoryUnreadable), errors.Is(err, storage.ErrNotADirectory):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrRunNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrHistoryDisabled):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, Response{
		Success: false,
		Error:   err.Error(),
	})
}

func toFileResponses(files []renamer.FileOutcome) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for _, f := range files {
		resp := FileResponse{
			Name:    f.Name,
			NewName: f.NewName,
			Status:  string(f.Status),
			Amount:  f.Amount,
		}
		if f.Err != nil {
			resp.Error = f.Err.Error()
		}
		out = append(out, resp)
	}
	return out
}

func toProcessResponse(result *processor.ProcessResult) ProcessResponse {
	return ProcessResponse{
		RunID:      result.RunID,
		Dir:        result.Dir,
		Scanned:    result.Scanned,
		Renamed:    result.Renamed,
		Failed:     result.Failed,
		Planned:    result.Planned,
		DryRun:     result.DryRun,
		Count:      result.Count,
		Total:      result.Total.StringFixed(2),
		ReportPath: result.ReportPath,
		StartedAt:  result.StartedAt,
		DurationMS: result.Duration.Milliseconds(),
		Summary:    result.Summary(),
		Files:      toFileResponses(result.Files),
	}
}
