package report

import "errors"

var (
	// ErrWriteFailed is returned when the spreadsheet cannot be written. No report is produced.
	ErrWriteFailed = errors.New("failed to write report")
)
