package convert

import (
	"context"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/rickbassham/hotfly/config"
	"github.com/rickbassham/hotfly/fits"
	"github.com/rickbassham/hotfly/metadata"
	"github.com/rickbassham/hotfly/telemetry"
)

// Stdio names standard input or output in place of a path.
const Stdio = "-"

func isStdio(path string) bool {
	return path == "" || path == Stdio
}

// File converts the FITS file at input into a new file at output. An empty
// path or "-" selects standard input or output.
//
// An existing output file is refused. When the conversion fails the partial
// output file is removed.
func File(ctx context.Context, src metadata.Source, fileID, input, output string, cfg *config.Config) (*telemetry.Data, error) {
	log := cfg.Logger()

	var in io.Reader = os.Stdin
	if !isStdio(input) {
		f, err := os.Open(input)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
	}

	if isStdio(output) {
		if cfg.CheckOutput() {
			log.Warn("output check skipped for standard output")
		}
		return Run(ctx, src, fileID, in, os.Stdout, cfg)
	}

	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, errors.Wrap(ErrOutputExists, output)
	}
	if err != nil {
		return nil, errors.Wrap(err, "create output")
	}

	data, err := Run(ctx, src, fileID, in, f, cfg)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = errors.Wrap(cerr, "close output")
	}
	if err == nil && cfg.CheckOutput() {
		err = Check(output, data)
	}
	if err != nil {
		if rerr := os.Remove(output); rerr != nil {
			log.Error("removing partial output failed", "path", output, "err", rerr)
		}
		return data, err
	}
	return data, nil
}

// Check reads the FITS file at path back and verifies it holds the HDUs
// counted in data, the first merged one carrying the header version.
func Check(path string, data *telemetry.Data) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open output")
	}
	defer f.Close()

	hs, err := fits.NewDecoder(f).ReadHeaders()
	if err != nil {
		return errors.Wrapf(ErrCheckFailed, "read back: %v", err)
	}
	if int64(len(hs)) != data.HDUs {
		return errors.Wrapf(ErrCheckFailed, "%d HDUs read back, %d written", len(hs), data.HDUs)
	}

	// A file holding only a wrapper primary has nothing merged to check.
	if data.HDUsMerged == 0 {
		return nil
	}
	first := 0
	if data.SkippedPrimary {
		first = 1
	}
	if hdrver, ok := hs[first].String("HDRVER"); !ok || strings.TrimSpace(hdrver) == "" {
		return errors.Wrapf(ErrCheckFailed, "hdu %d has no HDRVER", first)
	}
	return nil
}
