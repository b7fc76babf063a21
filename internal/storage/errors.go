package storage

import "errors"

var (
	// ErrDirectoryUnreadable is returned when the target directory cannot be listed.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrNotADirectory is returned when the target path is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrCollisionExhausted is returned when no free name was found within the probe bound.
	ErrCollisionExhausted = errors.New("no free file name found")

	// ErrPathEscapes is returned for paths outside the storage directory.
	ErrPathEscapes = errors.New("path escapes base directory")
)
