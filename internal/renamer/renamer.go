// Package renamer tags invoice PDFs with the amount found in their text.
package renamer

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/garyjia/fapiao-helper/internal/invoice"
	"github.com/garyjia/fapiao-helper/internal/storage"
	"go.uber.org/zap"
)

// Status is the per-file result of a rename pass.
type Status string

const (
	StatusRenamed Status = "renamed"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
	// StatusPlanned marks a file a dry run would rename to NewName.
	StatusPlanned Status = "planned"
)

// FileOutcome records what happened to one PDF.
type FileOutcome struct {
	Name    string
	NewName string
	Status  Status
	Amount  string
	Err     error
}

// RenameResult aggregates a rename pass. Skipped files count towards Scanned only.
type RenameResult struct {
	Scanned int
	Renamed int
	Failed  int
	Skipped int
	Planned int
	DryRun  bool
	Files   []FileOutcome
}

// FolderOpener opens storage on a user supplied folder.
type FolderOpener interface {
	Open(path string) (storage.FileStorage, error)
}

// Renamer extracts an amount from each untagged PDF and renames it "<base>_<amount>元.pdf".
type Renamer struct {
	folders FolderOpener
	source  invoice.TextSource
	dryRun  bool
	logger  *zap.Logger
}

// New creates a Renamer.
func New(folders FolderOpener, source invoice.TextSource, logger *zap.Logger) *Renamer {
	return &Renamer{
		folders: folders,
		source:  source,
		logger:  logger,
	}
}

// WithDryRun makes RenameAll resolve outcomes and target names without moving files.
func (r *Renamer) WithDryRun(dryRun bool) *Renamer {
	r.dryRun = dryRun
	return r
}

// RenameAll processes every PDF of dir in name order. Per-file problems are
// counted and recorded; only an unreadable directory or an exhausted collision
// probe ends the pass with an error.
func (r *Renamer) RenameAll(dir string) (*RenameResult, error) {
	store, err := r.folders.Open(dir)
	if err != nil {
		return nil, err
	}

	names, err := store.ListSorted()
	if err != nil {
		return nil, err
	}

	result := &RenameResult{DryRun: r.dryRun}
	var planned map[string]bool
	if r.dryRun {
		planned = make(map[string]bool)
	}
	for _, name := range names {
		if !invoice.IsPDF(name) {
			continue
		}
		result.Scanned++

		outcome, err := r.renameOne(store, name, planned)
		if err != nil {
			return result, err
		}

		switch outcome.Status {
		case StatusRenamed:
			result.Renamed++
		case StatusSkipped:
			result.Skipped++
		case StatusPlanned:
			result.Planned++
		case StatusFailed:
			result.Failed++
			r.logger.Warn("Invoice not renamed",
				zap.String("file", name),
				zap.Error(outcome.Err))
		}
		result.Files = append(result.Files, outcome)
	}

	r.logger.Info("Rename pass finished",
		zap.String("dir", store.Dir()),
		zap.Int("scanned", result.Scanned),
		zap.Int("renamed", result.Renamed),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
		zap.Int("planned", result.Planned),
		zap.Bool("dry_run", r.dryRun))

	return result, nil
}

// renameOne returns an error only for conditions that must stop the pass. A
// non-nil planned set selects dry-run mode; it holds the targets already planned
// in this pass so two files never plan the same name.
func (r *Renamer) renameOne(store storage.FileStorage, name string, planned map[string]bool) (FileOutcome, error) {
	outcome := FileOutcome{Name: name}

	base, _ := invoice.SplitExt(name)
	if invoice.HasAmountSuffix(base) {
		outcome.Status = StatusSkipped
		return outcome, nil
	}

	src := store.Path(name)
	text, err := r.source.ReadText(src)
	if err != nil {
		if !errors.Is(err, invoice.ErrExtraction) {
			err = fmt.Errorf("%w: %v", invoice.ErrExtraction, err)
		}
		return failed(outcome, err), nil
	}

	amount, ok := invoice.ExtractMaxAmount(text)
	if !ok {
		return failed(outcome, ErrNoAmountFound), nil
	}
	outcome.Amount = amount.Raw

	dst, err := store.UniquePathExcluding(invoice.TaggedName(base, amount), planned)
	if err != nil {
		return outcome, err
	}

	if planned != nil {
		planned[dst] = true
		outcome.NewName = filepath.Base(dst)
		outcome.Status = StatusPlanned
		return outcome, nil
	}

	if err := store.Move(src, dst); err != nil {
		return failed(outcome, fmt.Errorf("%w: %v", ErrMoveFailed, err)), nil
	}

	outcome.NewName = filepath.Base(dst)
	outcome.Status = StatusRenamed
	r.logger.Debug("Invoice renamed",
		zap.String("file", name),
		zap.String("new_name", outcome.NewName),
		zap.String("amount", amount.Raw))
	return outcome, nil
}

func failed(outcome FileOutcome, err error) FileOutcome {
	outcome.Status = StatusFailed
	outcome.Err = err
	return outcome
}
