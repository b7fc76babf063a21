package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EmptyTextPlaceholder is written instead of text when a PDF yields none.
const EmptyTextPlaceholder = "[未能提取到文本内容]"

// TextDump is the result of saving a PDF's text next to it.
type TextDump struct {
	OutputPath string
	Text       string
	Empty      bool
	Amount     Amount
	HasAmount  bool
}

// DumpText extracts the text of pdfPath and writes it to the same path with a
// .txt extension, replacing any existing file.
func DumpText(source TextSource, pdfPath string) (*TextDump, error) {
	text, err := source.ReadText(pdfPath)
	if err != nil {
		return nil, err
	}

	dump := &TextDump{Text: text}
	if strings.TrimSpace(text) == "" {
		dump.Empty = true
		dump.Text = EmptyTextPlaceholder
	} else {
		dump.Amount, dump.HasAmount = ExtractMaxAmount(text)
	}

	base, _ := SplitExt(filepath.Base(pdfPath))
	dump.OutputPath = filepath.Join(filepath.Dir(pdfPath), base+".txt")
	if err := os.WriteFile(dump.OutputPath, []byte(dump.Text), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", dump.OutputPath, err)
	}
	return dump, nil
}

// Preview returns at most n runes of the text, marking a cut with "...".
func (d *TextDump) Preview(n int) string {
	runes := []rune(d.Text)
	if len(runes) <= n {
		return d.Text
	}
	return string(runes[:n]) + "..."
}

// Length is the text length in runes.
func (d *TextDump) Length() int {
	return len([]rune(d.Text))
}
