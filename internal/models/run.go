package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessingRun is one stored Process call over a folder
type ProcessingRun struct {
	ID          string          `json:"id"`
	Dir         string          `json:"dir"`
	Scanned     int             `json:"scanned"`
	Renamed     int             `json:"renamed"`
	Failed      int             `json:"failed"`
	ReportCount int             `json:"report_count"`
	Total       decimal.Decimal `json:"total"`
	ReportPath  string          `json:"report_path"`
	StartedAt   time.Time       `json:"started_at"`
	Duration    time.Duration   `json:"duration"`
	CreatedAt   time.Time       `json:"created_at"`
	Files       []RunFile       `json:"files,omitempty"`
}

// RunFile is the stored outcome for one PDF of a run
type RunFile struct {
	Name    string `json:"name"`
	NewName string `json:"new_name,omitempty"`
	Status  string `json:"status"` // renamed, skipped, failed
	Amount  string `json:"amount,omitempty"`
	Error   string `json:"error,omitempty"`
}
