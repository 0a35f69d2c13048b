package fits

import (
	"bytes"
	"io"
)

const (
	// BlockSize is the FITS physical record length.
	BlockSize = 2880
	// CardSize is the length of one header card image.
	CardSize = 80
	// CardsPerBlock is the number of card images in a header block.
	CardsPerBlock = BlockSize / CardSize
)

var (
	simpleSignature   = []byte("SIMPLE  =")
	xtensionSignature = []byte("XTENSION=")
)

// BlockReader reads a FITS stream one 2880 byte block at a time.
type BlockReader struct {
	r      io.Reader
	blocks int64
}

// NewBlockReader wraps r.
func NewBlockReader(r io.Reader) *BlockReader {
	return &BlockReader{r: r}
}

// ReadBlock returns the next block. It returns io.EOF only when the stream
// ends exactly at a block boundary; a partial block is a *ShortBlockError.
func (b *BlockReader) ReadBlock() ([]byte, error) {
	block := make([]byte, BlockSize)
	n, err := io.ReadFull(b.r, block)
	switch err {
	case nil:
		b.blocks++
		return block, nil
	case io.EOF:
		return nil, io.EOF
	case io.ErrUnexpectedEOF:
		return nil, &ShortBlockError{Got: n}
	default:
		return nil, err
	}
}

// Blocks is the number of whole blocks read so far.
func (b *BlockReader) Blocks() int64 {
	return b.blocks
}

// Bytes is the number of bytes consumed by whole blocks so far.
func (b *BlockReader) Bytes() int64 {
	return b.blocks * BlockSize
}

// Cards slices a block into its 80 byte card images.
func Cards(block []byte) []string {
	cards := make([]string, 0, len(block)/CardSize)
	for i := 0; i+CardSize <= len(block); i += CardSize {
		cards = append(cards, string(block[i:i+CardSize]))
	}
	return cards
}

// IsPrimary reports whether block starts a primary HDU.
func IsPrimary(block []byte) bool {
	return bytes.HasPrefix(block, simpleSignature)
}

// IsExtension reports whether block starts an extension HDU.
func IsExtension(block []byte) bool {
	return bytes.HasPrefix(block, xtensionSignature)
}
