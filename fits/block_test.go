package fits

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBlock(t *testing.T) {
	br := NewBlockReader(bytes.NewReader(dataBlocks(2, 'x')))

	for i := 0; i < 2; i++ {
		block, err := br.ReadBlock()
		require.NoError(t, err)
		assert.Len(t, block, BlockSize)
	}

	_, err := br.ReadBlock()
	assert.Equal(t, io.EOF, err)
	assert.EqualValues(t, 2, br.Blocks())
	assert.EqualValues(t, 2*BlockSize, br.Bytes())
}

func TestReadBlockShort(t *testing.T) {
	br := NewBlockReader(bytes.NewReader(concat(dataBlocks(1, 'x'), []byte("tail"))))

	_, err := br.ReadBlock()
	require.NoError(t, err)

	_, err = br.ReadBlock()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShortBlock))

	var sbe *ShortBlockError
	require.True(t, errors.As(err, &sbe))
	assert.Equal(t, 4, sbe.Got)
	assert.Equal(t, "read 4 bytes, expected 2880", err.Error())
}

func TestCards(t *testing.T) {
	block := headerBytes("SIMPLE  =                    T")
	got := Cards(block)
	require.Len(t, got, CardsPerBlock)
	assert.Equal(t, padTo80("SIMPLE  =                    T"), got[0])
	assert.Equal(t, EndCard, got[1])
}

func TestSignatures(t *testing.T) {
	assert.True(t, IsPrimary(headerBytes("SIMPLE  =                    T")))
	assert.False(t, IsPrimary(headerBytes("XTENSION= 'IMAGE   '")))
	assert.True(t, IsExtension(headerBytes("XTENSION= 'IMAGE   '")))
	assert.False(t, IsExtension(dataBlocks(1, 0)))
}

func TestReadHeader(t *testing.T) {
	images := make([]string, 0, 40)
	images = append(images, "SIMPLE  =                    T")
	for len(images) < 40 {
		images = append(images, "COMMENT filler")
	}
	stream := concat(headerBytes(images...), dataBlocks(1, 'd'))

	br := NewBlockReader(bytes.NewReader(stream))
	first, err := br.ReadBlock()
	require.NoError(t, err)

	header, err := br.ReadHeader(first)
	require.NoError(t, err)
	require.Len(t, header, 41)
	assert.Equal(t, EndCard, header[40])
	assert.EqualValues(t, 2, br.Blocks())
}

func TestReadHeaderMissingEnd(t *testing.T) {
	block := dataBlocks(1, ' ')
	copy(block, padTo80("SIMPLE  =                    T"))

	br := NewBlockReader(bytes.NewReader(nil))
	_, err := br.ReadHeader(block)
	assert.True(t, errors.Is(err, ErrMissingEndCard))
}

func TestReadHeaderShortContinuation(t *testing.T) {
	block := dataBlocks(1, ' ')
	copy(block, padTo80("SIMPLE  =                    T"))

	br := NewBlockReader(bytes.NewReader([]byte("short")))
	_, err := br.ReadHeader(block)
	assert.True(t, errors.Is(err, ErrShortBlock))
}

func TestCopyData(t *testing.T) {
	ext := headerBytes("XTENSION= 'IMAGE   '")
	stream := concat(dataBlocks(2, 'd'), ext)

	var out bytes.Buffer
	br := NewBlockReader(bytes.NewReader(stream))
	next, blocks, err := br.CopyData(&out)
	require.NoError(t, err)
	assert.Equal(t, 2, blocks)
	assert.Equal(t, dataBlocks(2, 'd'), out.Bytes())
	assert.Equal(t, ext, next)
}

func TestCopyDataToEnd(t *testing.T) {
	var out bytes.Buffer
	br := NewBlockReader(bytes.NewReader(dataBlocks(3, 'd')))
	next, blocks, err := br.CopyData(&out)
	assert.Equal(t, io.EOF, err)
	assert.Nil(t, next)
	assert.Equal(t, 3, blocks)
	assert.Equal(t, 3*BlockSize, out.Len())
}

func TestCopyDataNoData(t *testing.T) {
	var out bytes.Buffer
	br := NewBlockReader(bytes.NewReader(nil))
	_, blocks, err := br.CopyData(&out)
	assert.Equal(t, io.EOF, err)
	assert.Zero(t, blocks)
	assert.Zero(t, out.Len())
}
