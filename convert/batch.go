package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/yargevad/filepathx"
	"golang.org/x/sync/errgroup"

	"github.com/rickbassham/hotfly/config"
	"github.com/rickbassham/hotfly/metadata"
	"github.com/rickbassham/hotfly/telemetry"
)

var fileSuffixes = []string{".fits.fz", ".fits"}

// FileID derives the archive identifier from a file path: the base name
// without its .fits or .fits.fz extension.
func FileID(path string) string {
	base := filepath.Base(path)
	lower := strings.ToLower(base)
	for _, suffix := range fileSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return base[:len(base)-len(suffix)]
		}
	}
	return base
}

// Result is the outcome of one file of a batch.
type Result struct {
	Input  string
	Output string
	Data   *telemetry.Data
	Err    error
}

// Batch converts every file matching pattern into outputDir, keeping each
// file's path relative to the directory the pattern starts from, so files of
// the same name in different directories of a ** match do not collide. Up to
// jobs files are converted at once; jobs < 1 means one.
//
// Every file is attempted. The results are in match order, and ErrBatchFailed
// is returned when any of them failed.
func Batch(ctx context.Context, src metadata.Source, pattern, outputDir string, jobs int, cfg *config.Config) ([]Result, error) {
	log := cfg.Logger()

	files, err := filepathx.Glob(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "glob")
	}
	log.Info("searching for files", "pattern", pattern, "found", len(files))
	if len(files) == 0 {
		return nil, errors.Wrap(ErrNoMatch, pattern)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create output directory")
	}

	if jobs < 1 {
		jobs = 1
	}
	eg := &errgroup.Group{}
	eg.SetLimit(jobs)

	base := globBase(pattern)
	results := make([]Result, len(files))
	for i, file := range files {
		i, file := i, file
		results[i] = Result{Input: file, Output: outputPath(base, file, outputDir)}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			res := &results[i]
			if err := os.MkdirAll(filepath.Dir(res.Output), 0o755); err != nil {
				res.Err = errors.Wrap(err, "create output directory")
				return nil
			}
			res.Data, res.Err = File(ctx, src, FileID(file), res.Input, res.Output, cfg)
			if res.Err != nil {
				log.Error("conversion failed", "input", res.Input, "err", res.Err)
			}
			return nil
		})
	}
	_ = eg.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, errors.Wrapf(ErrBatchFailed, "%d of %d files", failed, len(files))
	}
	return results, nil
}

// globBase is the leading directory of pattern free of glob metacharacters.
func globBase(pattern string) string {
	dir := filepath.Dir(pattern)
	for strings.ContainsAny(dir, "*?[") {
		dir = filepath.Dir(dir)
	}
	return dir
}

func outputPath(base, file, outputDir string) string {
	rel, err := filepath.Rel(base, file)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(file)
	}
	return filepath.Join(outputDir, rel)
}
