package fits

import "io"

// CopyData streams data blocks to w until the next extension header or the
// end of the stream. It returns the extension's first block, or io.EOF once
// the stream is exhausted.
func (b *BlockReader) CopyData(w io.Writer) (next []byte, blocks int, err error) {
	for {
		block, err := b.ReadBlock()
		if err != nil {
			return nil, blocks, err
		}
		if IsExtension(block) {
			return block, blocks, nil
		}
		if _, err := w.Write(block); err != nil {
			return nil, blocks, err
		}
		blocks++
	}
}
