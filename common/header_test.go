package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	h := Header{"OBJECT": "NGC 253", "NAXIS": int64(2), "EXTEND": true, "BLANK": nil}

	v, ok := h.String("OBJECT")
	assert.True(t, ok)
	assert.Equal(t, "NGC 253", v)

	_, ok = h.String("NAXIS")
	assert.False(t, ok)

	_, ok = h.String("MISSING")
	assert.False(t, ok)

	assert.True(t, h.Has("BLANK"))
	assert.True(t, h.Has("EXTEND"))
	assert.False(t, h.Has("MISSING"))
}
