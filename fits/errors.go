package fits

import (
	"errors"
	"fmt"
)

// Sentinel errors for FITS stream operations. Use errors.Is in callers.
var (
	// ErrNotFITS means the stream does not start with a primary HDU signature.
	ErrNotFITS = errors.New("not a fits file")
	// ErrEmptyInput means the stream ended before the first block.
	ErrEmptyInput = errors.New("empty file")
	// ErrShortBlock means a block was only partially read.
	ErrShortBlock = errors.New("short block")
	// ErrMissingEndCard means the stream ended inside a header.
	ErrMissingEndCard = errors.New("END not found")
	// ErrMalformedCard means a card image violates the card grammar.
	ErrMalformedCard = errors.New("malformed card")
	// ErrCardTooLong means a formatted card would lose value text to truncation.
	ErrCardTooLong = errors.New("card exceeds 80 characters")
	// ErrHeaderCountMismatch means the file has more HDUs than the external header set.
	ErrHeaderCountMismatch = errors.New("no external header for hdu")
)

// MalformedCardError names the offending card image.
type MalformedCardError struct {
	Image  string
	Reason string
}

func (e *MalformedCardError) Error() string {
	return fmt.Sprintf("malformed card %q: %s", e.Image, e.Reason)
}

func (e *MalformedCardError) Is(target error) bool {
	return target == ErrMalformedCard
}

// ShortBlockError reports how many bytes a truncated block held.
type ShortBlockError struct {
	Got int
}

func (e *ShortBlockError) Error() string {
	return fmt.Sprintf("read %d bytes, expected %d", e.Got, BlockSize)
}

func (e *ShortBlockError) Is(target error) bool {
	return target == ErrShortBlock
}
