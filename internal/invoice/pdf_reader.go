package invoice

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// Engine names accepted by NewTextSource.
const (
	EngineMuPDF  = "mupdf"
	EngineNative = "native"
	EngineAuto   = "auto"
)

// TextSource reads the plain text of a document.
// Implementations return an error wrapping ErrExtraction on failure and an
// empty string for documents without extractable text.
type TextSource interface {
	ReadText(path string) (string, error)
}

// NewTextSource builds the TextSource for the configured engine. An empty
// engine selects auto.
func NewTextSource(engine string, maxPages int, logger *zap.Logger) (TextSource, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case EngineMuPDF:
		return NewFitzSource(maxPages, logger), nil
	case EngineNative:
		return NewNativeSource(logger), nil
	case EngineAuto, "":
		return NewFallbackSource(logger, NewFitzSource(maxPages, logger), NewNativeSource(logger)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, engine)
	}
}

// FitzSource extracts text with MuPDF.
type FitzSource struct {
	maxPages int
	logger   *zap.Logger
}

// NewFitzSource creates a MuPDF backed source. maxPages <= 0 reads every page.
func NewFitzSource(maxPages int, logger *zap.Logger) *FitzSource {
	return &FitzSource{
		maxPages: maxPages,
		logger:   logger,
	}
}

// ReadText joins the text of each page with a newline.
func (s *FitzSource) ReadText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrExtraction, path, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if s.maxPages > 0 && pageCount > s.maxPages {
		pageCount = s.maxPages
	}

	s.logger.Debug("Reading PDF text",
		zap.String("path", path),
		zap.Int("pages", pageCount))

	pages := make([]string, 0, pageCount)
	for n := 0; n < pageCount; n++ {
		text, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("%w: page %d of %s: %v", ErrExtraction, n+1, path, err)
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// NativeSource extracts text with a pure Go PDF parser. It needs no C toolchain
// but handles fewer font encodings than MuPDF.
type NativeSource struct {
	logger *zap.Logger
}

// NewNativeSource creates a pure Go source.
func NewNativeSource(logger *zap.Logger) *NativeSource {
	return &NativeSource{logger: logger}
}

// ReadText returns the plain text of the whole document.
func (s *NativeSource) ReadText(path string) (text string, err error) {
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if p := recover(); p != nil {
			s.logger.Warn("PDF parser panicked", zap.String("path", path), zap.Any("panic", p))
			text, err = "", fmt.Errorf("%w: parse %s: %v", ErrExtraction, path, p)
		}
	}()

	// pdf.Open never closes its file, and the caller renames it next
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrExtraction, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: stat %s: %v", ErrExtraction, path, err)
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrExtraction, path, err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrExtraction, path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrExtraction, path, err)
	}

	s.logger.Debug("Read PDF text", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return buf.String(), nil
}

// FallbackSource tries each source in order and returns the first success.
type FallbackSource struct {
	sources []TextSource
	logger  *zap.Logger
}

// NewFallbackSource chains sources.
func NewFallbackSource(logger *zap.Logger, sources ...TextSource) *FallbackSource {
	return &FallbackSource{
		sources: sources,
		logger:  logger,
	}
}

// ReadText returns the text from the first source that succeeds, or the last error.
func (s *FallbackSource) ReadText(path string) (string, error) {
	lastErr := fmt.Errorf("%w: no text source configured", ErrExtraction)
	for i, src := range s.sources {
		text, err := src.ReadText(path)
		if err == nil {
			return text, nil
		}
		if i < len(s.sources)-1 {
			s.logger.Debug("Text source failed, trying next",
				zap.String("path", path),
				zap.Int("source", i),
				zap.Error(err))
		}
		lastErr = err
	}
	return "", lastErr
}
