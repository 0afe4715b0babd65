package manual

import "errors"

var (
	// ErrNoInputFiles is returned when the resolved input list is empty.
	ErrNoInputFiles = errors.New("no input files")

	// ErrUnsupportedFileExtension is returned for an input that is neither a
	// Markdown document, a stylesheet nor a script.
	ErrUnsupportedFileExtension = errors.New("unsupported input file extension")
)
