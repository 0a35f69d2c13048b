// Package convert rewrites FITS files with their archived headers.
//
// [Run] converts one stream, [File] adds the output file lifecycle around it
// and [Batch] converts every file matching a glob pattern.
package convert

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/rickbassham/hotfly/config"
	"github.com/rickbassham/hotfly/fits"
	"github.com/rickbassham/hotfly/metadata"
	"github.com/rickbassham/hotfly/telemetry"
)

// outputBufferSize is the write buffer in front of the output, a few blocks.
const outputBufferSize = 16 * fits.BlockSize

// Run looks up the archived header of fileID in src and rewrites the FITS
// stream in to out with it. The telemetry of the run is passed to the
// configured hook whether or not the run succeeds.
func Run(ctx context.Context, src metadata.Source, fileID string, in io.Reader, out io.Writer, cfg *config.Config) (data *telemetry.Data, err error) {
	start := time.Now()
	runID := uuid.NewString()
	log := cfg.Logger().With("run", runID, "file", fileID)
	cfg = cfg.Clone(config.WithLogger(log))

	data = &telemetry.Data{}
	defer func() {
		data.FileID = fileID
		data.RunID = runID
		data.Duration = time.Since(start)
		data.LastError = err
		cfg.EmitTelemetry(ctx, data)
	}()

	hdrver, err := src.LookupHeaderVersion(ctx, fileID)
	if err != nil {
		return data, errors.Wrap(err, "lookup header version")
	}
	kws, err := src.LookupKeywords(ctx, fileID)
	if err != nil {
		return data, errors.Wrap(err, "lookup keywords")
	}
	log.Debug("archived header", "hdrver", hdrver, "keywords", len(kws))

	headers, err := metadata.BuildHeaders(kws, cfg.StrictCardLength(), log)
	if err != nil {
		return data, errors.Wrap(err, "build headers")
	}

	tool, version := cfg.Tool()
	extras := []string{
		metadata.HeaderVersionCard(hdrver),
		metadata.ProvenanceCard(tool, version, cfg.Now()),
	}

	w := bufio.NewWriterSize(out, outputBufferSize)
	rewritten, err := fits.Rewrite(ctx, in, w, headers, extras, cfg)
	if rewritten != nil {
		*data = *rewritten
	}
	if err != nil {
		return data, errors.Wrap(err, "rewrite")
	}
	if err = w.Flush(); err != nil {
		return data, errors.Wrap(err, "flush output")
	}

	log.Debug("conversion finished", "hdus", data.HDUs, "bytes", data.OutputSize)
	return data, nil
}
