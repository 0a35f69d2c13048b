package metadata

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileID = "HAWKI.2019-03-22T01:02:03.456"

var wantKeywords = []Keyword{
	{Name: "ORIGIN", Value: "ESO", Type: "C", Comment: "European Southern Observatory"},
	{Name: "EXPTIME", Value: "10.5", Type: "F"},
	{Name: "END"},
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "headers.yaml",
			content: `files:
  HAWKI.2019-03-22T01:02:03.456:
    hdrver: "2019-03-22T10:11:12.123"
    keywords:
      - {name: ORIGIN, value: ESO, type: C, comment: European Southern Observatory}
      - {name: EXPTIME, value: "10.5", type: F}
      - {name: END}
`,
		},
		{
			name: "json",
			file: "headers.json",
			content: `{"files": {"HAWKI.2019-03-22T01:02:03.456": {
  "hdrver": "2019-03-22T10:11:12.123",
  "keywords": [
    {"name": "ORIGIN", "value": "ESO", "type": "C", "comment": "European Southern Observatory"},
    {"name": "EXPTIME", "value": "10.5", "type": "F"},
    {"name": "END"}
  ]}}}`,
		},
		{
			name: "xml",
			file: "headers.XML",
			content: `<?xml version="1.0"?>
<archive>
  <file id="HAWKI.2019-03-22T01:02:03.456" hdrver="2019-03-22T10:11:12.123">
    <FITSKeyword name="ORIGIN" value="'ESO'" comment="European Southern Observatory"/>
    <FITSKeyword name="EXPTIME" value="10.5" type="F"/>
    <FITSKeyword name="END"/>
  </file>
</archive>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := LoadFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			defer src.Close()

			hdrver, err := src.LookupHeaderVersion(context.Background(), fileID)
			require.NoError(t, err)
			assert.Equal(t, "2019-03-22T10:11:12.123", hdrver)

			kws, err := src.LookupKeywords(context.Background(), fileID)
			require.NoError(t, err)
			assert.Equal(t, wantKeywords, kws)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(writeFile(t, "headers.txt", "x"))
	assert.True(t, errors.Is(err, ErrUnsupportedSource))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "broken.json", "{"))
	assert.Error(t, err)
}

func TestFileSourceNotFound(t *testing.T) {
	src := NewFileSource(&Document{})

	_, err := src.LookupHeaderVersion(context.Background(), "unknown")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = src.LookupKeywords(context.Background(), "unknown")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestXMLTypeInference(t *testing.T) {
	tests := []struct {
		value     string
		wantType  string
		wantValue string
	}{
		{value: "'OBJECT'", wantType: "C", wantValue: "OBJECT"},
		{value: "-42", wantType: "I", wantValue: "-42"},
		{value: "T", wantType: "L", wantValue: "T"},
		{value: "1.5E-3", wantType: "F", wantValue: "1.5E-3"},
		{value: "free text", wantType: "C", wantValue: "free text"},
		{value: "", wantType: "", wantValue: ""},
	}
	for _, tt := range tests {
		got := FITSKeyword{Name: "K", Value: tt.value}.keyword()
		assert.Equal(t, tt.wantType, got.Type, tt.value)
		assert.Equal(t, tt.wantValue, got.Value, tt.value)
	}

	explicit := FITSKeyword{Name: "K", Value: "'quoted'", Type: "C"}.keyword()
	assert.Equal(t, "'quoted'", explicit.Value)
}
