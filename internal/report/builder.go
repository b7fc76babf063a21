// Package report compiles the reimbursement spreadsheet from amount-tagged file names.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/garyjia/fapiao-helper/internal/invoice"
	"github.com/garyjia/fapiao-helper/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	// TimestampLayout names reports by run time, e.g. 2026-10-17-093015.
	TimestampLayout = "2006-01-02-150405"

	sheetName   = "Sheet1"
	moneyFormat = "#,##0.00"

	headerName   = "文件名"
	headerAmount = "报销金额"
	totalLabel   = "总金额"

	nameColWidth   = 60
	amountColWidth = 16
)

// Row is one tagged file and the amount read back from its name.
type Row struct {
	Name   string
	Amount decimal.Decimal
}

// Result describes a written report.
type Result struct {
	Count int
	Total decimal.Decimal
	Path  string
	Rows  []Row
}

// FolderOpener opens storage on a user supplied folder.
type FolderOpener interface {
	Open(path string) (storage.FileStorage, error)
}

// Builder writes one spreadsheet per call into the scanned folder.
type Builder struct {
	folders FolderOpener
	now     func() time.Time
	logger  *zap.Logger

	mu   sync.Mutex
	last time.Time
}

// NewBuilder creates a Builder using the wall clock.
func NewBuilder(folders FolderOpener, logger *zap.Logger) *Builder {
	return &Builder{
		folders: folders,
		now:     time.Now,
		logger:  logger,
	}
}

// WithClock replaces the time source.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// ProvisionalName is the report name used until the total is known.
func ProvisionalName(stamp string) string {
	return FinalName(stamp, decimal.Zero)
}

// FinalName embeds the grand total in the report name.
func FinalName(stamp string, total decimal.Decimal) string {
	return fmt.Sprintf("%s_报销%s元.xlsx", stamp, total.StringFixed(2))
}

// Build scans dir for tagged files and writes the report. The spreadsheet is saved
// under a provisional name first and then renamed to carry the total; when that
// rename fails the provisional path is returned.
func (b *Builder) Build(dir string) (*Result, error) {
	store, err := b.folders.Open(dir)
	if err != nil {
		return nil, err
	}

	stamp := b.nextStamp()
	provisional := store.Path(ProvisionalName(stamp))

	rows, total, err := b.collect(store)
	if err != nil {
		return nil, err
	}

	if err := b.write(provisional, rows, total); err != nil {
		b.cleanup(store, provisional)
		return nil, err
	}

	result := &Result{
		Count: len(rows),
		Total: total,
		Path:  provisional,
		Rows:  rows,
	}

	final := store.Path(FinalName(stamp, total))
	if final != provisional {
		if err := store.Move(provisional, final); err != nil {
			b.logger.Warn("Keeping provisional report name",
				zap.String("path", provisional),
				zap.Error(err))
		} else {
			result.Path = final
		}
	}

	b.logger.Info("Report written",
		zap.String("path", result.Path),
		zap.Int("rows", result.Count),
		zap.String("total", total.StringFixed(2)))

	return result, nil
}

// collect re-derives every amount from the file names, in name order.
func (b *Builder) collect(store storage.FileStorage) ([]Row, decimal.Decimal, error) {
	names, err := store.ListSorted()
	if err != nil {
		return nil, decimal.Zero, err
	}

	var rows []Row
	total := decimal.Zero
	for _, name := range names {
		amount, ok := invoice.AmountFromFileName(name)
		if !ok {
			continue
		}
		rows = append(rows, Row{Name: name, Amount: amount.Value})
		total = total.Add(amount.Value)
	}
	return rows, total, nil
}

func (b *Builder) write(path string, rows []Row, total decimal.Decimal) error {
	f := excelize.NewFile()
	defer f.Close()

	moneyFmt := moneyFormat
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return fmt.Errorf("%w: style: %v", ErrWriteFailed, err)
	}

	set := func(cell string, value interface{}) error {
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("%w: cell %s: %v", ErrWriteFailed, cell, err)
		}
		return nil
	}
	setAmount := func(row int, amount decimal.Decimal) error {
		cell := fmt.Sprintf("B%d", row)
		if err := set(cell, amount.InexactFloat64()); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, moneyStyle); err != nil {
			return fmt.Errorf("%w: style %s: %v", ErrWriteFailed, cell, err)
		}
		return nil
	}

	if err := set("A1", headerName); err != nil {
		return err
	}
	if err := set("B1", headerAmount); err != nil {
		return err
	}

	row := 2
	for _, r := range rows {
		if err := set(fmt.Sprintf("A%d", row), r.Name); err != nil {
			return err
		}
		if err := setAmount(row, r.Amount); err != nil {
			return err
		}
		row++
	}

	if err := set(fmt.Sprintf("A%d", row), totalLabel); err != nil {
		return err
	}
	if err := setAmount(row, total); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "A", "A", nameColWidth); err != nil {
		return fmt.Errorf("%w: column width: %v", ErrWriteFailed, err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", amountColWidth); err != nil {
		return fmt.Errorf("%w: column width: %v", ErrWriteFailed, err)
	}
	if err := f.SetColStyle(sheetName, "B", moneyStyle); err != nil {
		return fmt.Errorf("%w: column style: %v", ErrWriteFailed, err)
	}

	// excelize's SaveAs rejects long paths, so stream into a file we own
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		b.logger.Error("Failed to create report file",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// cleanup removes a partially written provisional file. Anything that is not a
// regular file was not created by this run and is left alone.
func (b *Builder) cleanup(store storage.FileStorage, path string) {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}
	if err := store.Remove(path); err != nil {
		b.logger.Warn("Failed to remove partial report",
			zap.String("file", filepath.Base(path)),
			zap.Error(err))
	}
}

// nextStamp returns the run timestamp, moved forward by whole seconds when the
// clock has not advanced past the previous call.
func (b *Builder) nextStamp() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.now().Truncate(time.Second)
	if !b.last.IsZero() && !t.After(b.last) {
		t = b.last.Add(time.Second)
	}
	b.last = t
	return t.Format(TimestampLayout)
}
