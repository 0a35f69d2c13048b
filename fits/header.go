package fits

import "io"

// EndCard is the header terminator image.
var EndCard = pad("END")

// ReadHeader collects card images starting at first until the END card,
// which is included. Further blocks are pulled from b as needed.
func (b *BlockReader) ReadHeader(first []byte) ([]string, error) {
	var header []string
	block := first
	for block != nil {
		for _, card := range Cards(block) {
			header = append(header, card)
			if card == EndCard {
				return header, nil
			}
		}

		var err error
		block, err = b.ReadBlock()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return nil, ErrMissingEndCard
}

// hasKeyword reports whether any card in header carries keyword.
func hasKeyword(header []string, keyword string) bool {
	for _, card := range header {
		if Keyword(card) == keyword {
			return true
		}
	}
	return false
}
