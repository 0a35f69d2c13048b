package metadata

import "errors"

// Sentinel errors for metadata lookups. Use errors.Is in callers.
var (
	// ErrNotFound means the file identifier is unknown to the source.
	ErrNotFound = errors.New("not found in repository")
	// ErrUnsupportedSource means a source locator could not be resolved.
	ErrUnsupportedSource = errors.New("unsupported metadata source")
	// ErrAliasNotFound means a .dbrc file has no entry for the alias.
	ErrAliasNotFound = errors.New("alias not found in dbrc")
)
