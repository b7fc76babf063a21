package invoice

import (
	"errors"
	"fmt"
)

var (
	// ErrExtraction is returned when a document cannot be opened or its text cannot be read.
	ErrExtraction = errors.New("text extraction failed")

	// ErrUnsupportedEngine is returned for an unknown pdf engine name.
	ErrUnsupportedEngine = errors.New("unsupported pdf engine")
)

// AmountSyntaxError reports a literal that is not a valid amount.
type AmountSyntaxError struct {
	Literal string
}

func (e *AmountSyntaxError) Error() string {
	return fmt.Sprintf("invalid amount literal %q", e.Literal)
}
