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

func TestOpen(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "  ")
	assert.True(t, errors.Is(err, ErrUnsupportedSource))

	path := writeFile(t, "headers.yml", "files: {}\n")
	src, err := Open(ctx, path)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)
	assert.NoError(t, src.Close())

	_, err = Open(ctx, writeFile(t, "headers.csv", ""))
	assert.True(t, errors.Is(err, ErrUnsupportedSource))
}

func TestOpenDBRCAlias(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".dbrc"), []byte(dbrcContent), 0o600))

	_, err := Open(context.Background(), "dbrc:NOPE")
	assert.True(t, errors.Is(err, ErrAliasNotFound))
}

func TestOpenDBRCMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Open(context.Background(), "dbrc:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dbrc")
}
