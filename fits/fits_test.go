package fits

import (
	"bytes"
	"strings"
)

// cards pads every image to a full card.
func cards(images ...string) []string {
	out := make([]string, len(images))
	for i, image := range images {
		out[i] = padTo80(image)
	}
	return out
}

// withEnd pads images and terminates them with the END card.
func withEnd(images ...string) []string {
	return append(cards(images...), EndCard)
}

// headerBytes lays out images plus END as block-aligned header bytes.
func headerBytes(images ...string) []byte {
	var buf bytes.Buffer
	for _, c := range withEnd(images...) {
		buf.WriteString(c)
	}
	buf.WriteString(strings.Repeat(" ", Padding(len(images)+1)))
	return buf.Bytes()
}

// dataBlocks returns n blocks filled with fill.
func dataBlocks(n int, fill byte) []byte {
	return bytes.Repeat([]byte{fill}, n*BlockSize)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}
