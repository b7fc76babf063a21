package invoice

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// AmountUnit is the character that closes every amount suffix.
	AmountUnit = "元"

	// PDFExt is the extension given to renamed invoices.
	PDFExt = ".pdf"
)

var (
	// amountSuffixPattern recognises a base name that already carries "_<amount>元",
	// optionally followed by the " (n)" marker added on name collisions.
	amountSuffixPattern = regexp.MustCompile(`_\d+(?:\.\d{1,2})?元(?: \(\d+\))?$`)

	// taggedFilePattern recognises a full file name that the report picks up.
	taggedFilePattern = regexp.MustCompile(`(?i)_(\d+(?:\.\d{1,2})?)元(?: \(\d+\))?\.(pdf|jpeg|jpg|png)$`)
)

// HasAmountSuffix reports whether a base name (without extension) is already tagged.
func HasAmountSuffix(base string) bool {
	return amountSuffixPattern.MatchString(base)
}

// TaggedName returns the base name of a PDF with the amount appended.
func TaggedName(base string, amount Amount) string {
	return base + "_" + amount.Raw + AmountUnit + PDFExt
}

// AmountFromFileName re-derives the amount embedded in a tagged file name.
// ok is false for names that do not follow the naming convention.
func AmountFromFileName(name string) (Amount, bool) {
	m := taggedFilePattern.FindStringSubmatch(name)
	if m == nil {
		return Amount{}, false
	}
	a, err := ParseAmount(m[1])
	if err != nil {
		return Amount{}, false
	}
	return a, true
}

// SplitExt splits a file name into its base and extension. A leading dot does
// not start an extension, so ".pdf" has none.
func SplitExt(name string) (base, ext string) {
	ext = filepath.Ext(name)
	base = strings.TrimSuffix(name, ext)
	if strings.Trim(base, ".") == "" {
		return name, ""
	}
	return base, ext
}

// IsPDF reports whether name has a .pdf extension in any letter case.
func IsPDF(name string) bool {
	_, ext := SplitExt(name)
	return strings.EqualFold(ext, PDFExt)
}
