package fits

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/rickbassham/hotfly/config"
	"github.com/rickbassham/hotfly/telemetry"
)

// countingWriter is a wrapper around an io.Writer that counts the bytes
// written through it.
type countingWriter struct {
	W io.Writer // underlying writer
	N int64     // number of bytes written
}

func (c *countingWriter) Write(p []byte) (n int, err error) {
	n, err = c.W.Write(p)
	c.N += int64(n)
	return n, err
}

// Rewrite copies the FITS stream r to w, replacing every header by its merge
// with the matching external header. headers are the formatted external
// headers in HDU order and extras the cards injected into the primary one.
//
// The returned telemetry is filled in even when an error aborts the run; the
// caller is expected to discard w in that case.
func Rewrite(ctx context.Context, r io.Reader, w io.Writer, headers [][]string, extras []string, cfg *config.Config) (*telemetry.Data, error) {
	log := cfg.Logger()
	br := NewBlockReader(r)
	out := &countingWriter{W: w}
	data := &telemetry.Data{}
	defer func() {
		data.InputSize = br.Bytes()
		data.OutputSize = out.N
	}()

	block, err := br.ReadBlock()
	if err == io.EOF {
		return data, ErrEmptyInput
	}
	if err != nil {
		return data, err
	}
	if !IsPrimary(block) {
		return data, ErrNotFITS
	}

	state := &RunState{}
	for {
		if err := ctx.Err(); err != nil {
			return data, err
		}

		log.Debug(fmt.Sprintf("hdu %d/%d", state.HDU, len(headers)))
		header, err := br.ReadHeader(block)
		if err != nil {
			return data, errors.Wrapf(err, "hdu %d", data.HDUs)
		}

		res, err := Merge(state, header, headers, extras)
		if err != nil {
			return data, errors.Wrapf(err, "hdu %d", data.HDUs)
		}
		if res.Passthrough {
			log.Debug("skipping first hdu")
			data.SkippedPrimary = true
		} else {
			data.HDUsMerged++
		}

		if _, err := WriteHeader(out, res.Cards); err != nil {
			return data, errors.Wrapf(err, "hdu %d: write header", data.HDUs)
		}
		data.HDUs++
		data.CardsRetained += int64(res.Retained)
		data.CardsDropped += int64(res.Dropped)
		data.CardsExternal += int64(res.External)
		data.CardsSynthesized += int64(res.Synthesized)

		next, blocks, err := br.CopyData(out)
		data.DataBlocks += int64(blocks)
		if err == io.EOF {
			log.Debug("end of file")
			return data, nil
		}
		if err != nil {
			return data, errors.Wrapf(err, "hdu %d: copy data", data.HDUs-1)
		}
		block = next
	}
}
