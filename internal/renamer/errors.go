package renamer

import "errors"

var (
	// ErrNoAmountFound is recorded for documents whose text holds no currency-marked amount.
	ErrNoAmountFound = errors.New("no amount found")

	// ErrMoveFailed is recorded when the tagged file could not be moved into place.
	ErrMoveFailed = errors.New("move failed")
)
