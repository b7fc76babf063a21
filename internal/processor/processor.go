// Package processor runs the rename stage and the report stage over one folder.
package processor

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/garyjia/fapiao-helper/internal/renamer"
	"github.com/garyjia/fapiao-helper/internal/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FileRenamer is the rename stage.
type FileRenamer interface {
	RenameAll(dir string) (*renamer.RenameResult, error)
}

// ReportBuilder is the report stage.
type ReportBuilder interface {
	Build(dir string) (*report.Result, error)
}

// ProcessResult holds the values shown to the user after a run.
type ProcessResult struct {
	Scanned    int             `json:"scanned"`
	Renamed    int             `json:"renamed"`
	Failed     int             `json:"failed"`
	Planned    int             `json:"planned,omitempty"`
	DryRun     bool            `json:"dry_run,omitempty"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"-"`
	ReportPath string          `json:"report_path"`

	RunID     string                `json:"run_id,omitempty"`
	Dir       string                `json:"dir"`
	StartedAt time.Time             `json:"started_at"`
	Duration  time.Duration         `json:"duration"`
	Files     []renamer.FileOutcome `json:"-"`
}

// MarshalJSON writes Total with two fraction digits, as shown everywhere else.
func (r *ProcessResult) MarshalJSON() ([]byte, error) {
	type plain ProcessResult
	return json.Marshal(struct {
		*plain
		Total string `json:"total"`
	}{
		plain: (*plain)(r),
		Total: r.Total.StringFixed(2),
	})
}

// Summary renders the six result values for display. A dry run adds the
// number of planned renames.
func (r *ProcessResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PDF 扫描数量：%d\n", r.Scanned)
	fmt.Fprintf(&b, "成功改名：%d\n", r.Renamed)
	if r.DryRun {
		fmt.Fprintf(&b, "预计改名：%d\n", r.Planned)
	}
	fmt.Fprintf(&b, "失败/跳过：%d\n\n", r.Failed)
	fmt.Fprintf(&b, "报表条目数：%d\n", r.Count)
	fmt.Fprintf(&b, "合计金额：%s 元\n", r.Total.StringFixed(2))
	fmt.Fprintf(&b, "报表文件：%s", r.ReportPath)
	return b.String()
}

// Processor runs both stages strictly in sequence.
type Processor struct {
	renamer FileRenamer
	reports ReportBuilder
	now     func() time.Time
	logger  *zap.Logger
}

// New creates a Processor.
func New(r FileRenamer, b ReportBuilder, logger *zap.Logger) *Processor {
	return &Processor{
		renamer: r,
		reports: b,
		now:     time.Now,
		logger:  logger,
	}
}

// Process renames the folder's PDFs and then writes the report. A fatal rename
// error stops the run before any report is written, and a dry run writes none.
func (p *Processor) Process(dir string) (*ProcessResult, error) {
	started := p.now()
	p.logger.Info("Processing folder", zap.String("dir", dir))

	renamed, err := p.renamer.RenameAll(dir)
	if err != nil {
		p.logger.Error("Rename stage failed", zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("rename stage: %w", err)
	}

	result := FromRename(dir, started, renamed)
	if !renamed.DryRun {
		rep, err := p.reports.Build(dir)
		if err != nil {
			p.logger.Error("Report stage failed", zap.String("dir", dir), zap.Error(err))
			return nil, fmt.Errorf("report stage: %w", err)
		}
		result.Count = rep.Count
		result.Total = rep.Total
		result.ReportPath = rep.Path
	}
	result.Duration = p.now().Sub(started)

	p.logger.Info("Folder processed",
		zap.String("dir", dir),
		zap.Int("scanned", result.Scanned),
		zap.Int("renamed", result.Renamed),
		zap.Int("failed", result.Failed),
		zap.Int("count", result.Count),
		zap.String("total", result.Total.StringFixed(2)),
		zap.String("report", result.ReportPath),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// FromRename builds a result that carries only the rename stage's values.
func FromRename(dir string, started time.Time, renamed *renamer.RenameResult) *ProcessResult {
	return &ProcessResult{
		Scanned:   renamed.Scanned,
		Renamed:   renamed.Renamed,
		Failed:    renamed.Failed,
		Planned:   renamed.Planned,
		DryRun:    renamed.DryRun,
		Total:     decimal.Zero,
		Dir:       dir,
		StartedAt: started,
		Files:     renamed.Files,
	}
}

// Rename runs only the rename stage.
func (p *Processor) Rename(dir string) (*renamer.RenameResult, error) {
	return p.renamer.RenameAll(dir)
}

// Report runs only the report stage.
func (p *Processor) Report(dir string) (*report.Result, error) {
	return p.reports.Build(dir)
}
