package convert

import "errors"

var (
	// ErrOutputExists is returned when the output file is already present.
	ErrOutputExists = errors.New("output file exists")

	// ErrCheckFailed is returned when the written file does not read back as
	// the expected FITS structure.
	ErrCheckFailed = errors.New("output check failed")

	// ErrNoMatch is returned by Batch when the pattern matches no file.
	ErrNoMatch = errors.New("no matching files")

	// ErrBatchFailed is returned by Batch when at least one file failed.
	ErrBatchFailed = errors.New("batch conversion failed")
)
