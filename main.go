package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/rickbassham/hotfly/config"
	"github.com/rickbassham/hotfly/convert"
	"github.com/rickbassham/hotfly/logger"
	"github.com/rickbassham/hotfly/metadata"
	"github.com/rickbassham/hotfly/telemetry"
	"github.com/rickbassham/hotfly/version"
)

// CLI are the cli parameters for the hotfly binary
type CLI struct {
	Config   string           `short:"c" type:"path" help:"YAML settings file."`
	Metadata string           `short:"m" help:"Archived header source: postgres:// DSN, dbrc:ALIAS[@DBNAME] or a .yaml, .json or .xml header document. (default: dbrc:HEADONFLY)"`
	Debug    bool             `short:"d" help:"Debug logging."`
	Strict   bool             `help:"Fail on archived cards too long for one card image instead of truncating them."`
	Metrics  bool             `help:"Print metrics to log after each conversion."`
	Version  kong.VersionFlag `short:"V" help:"Print release version information."`

	Convert convertCmd `cmd:"" default:"withargs" help:"Rewrite the headers of one FITS file."`
	Batch   batchCmd   `cmd:"" help:"Rewrite the headers of every FITS file matching a pattern."`
}

type convertCmd struct {
	FileID string `arg:"" name:"file-id" help:"Archive identifier of the file."`
	Input  string `short:"i" default:"-" help:"Input FITS file. (\"-\" for STDIN)"`
	Output string `short:"o" default:"-" help:"Output FITS file, must not exist. (\"-\" for STDOUT)"`
	Check  bool   `help:"Read the output file back with a FITS reader."`
}

type batchCmd struct {
	Pattern   string `arg:"" help:"Glob matching the input files, ** descends into directories."`
	OutputDir string `required:"" type:"path" help:"Directory receiving the converted files."`
	Jobs      int    `short:"j" help:"Files converted in parallel. (default: settings file, else number of CPUs)"`
	Check     bool   `help:"Read every output file back with a FITS reader."`
}

// app is what the commands run with.
type app struct {
	settings settings
	log      logger.Logger
	metrics  bool
}

func (a *app) config(check bool) *config.Config {
	// setup metrics hook
	metricsToLog := func(ctx context.Context, d *telemetry.Data) {
		if a.metrics {
			a.log.Info("conversion finished", "metrics", d)
		}
	}

	return config.NewConfig(
		config.WithCheckOutput(check),
		config.WithLogger(a.log),
		config.WithStrictCardLength(a.settings.StrictCardLength),
		config.WithTelemetryHook(metricsToLog),
		config.WithTool("hotfly", version.Version),
	)
}

func (a *app) source(ctx context.Context) (metadata.Source, error) {
	a.log.Debug("opening metadata source", "locator", a.settings.Metadata)
	return metadata.Open(ctx, a.settings.Metadata)
}

func (c *convertCmd) Run(ctx context.Context, a *app) error {
	src, err := a.source(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = convert.File(ctx, src, c.FileID, c.Input, c.Output, a.config(c.Check))
	return err
}

func (c *batchCmd) Run(ctx context.Context, a *app) error {
	src, err := a.source(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	results, err := convert.Batch(ctx, src, c.Pattern, c.OutputDir, a.settings.Jobs, a.config(c.Check))
	a.log.Info("batch finished", "files", len(results))
	return err
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("hotfly"),
		kong.Description("Rewrites FITS headers with their archived version."),
		kong.UsageOnError(),
		kong.Vars{
			"version": "hotfly " + version.String(),
		},
	)

	s, err := loadSettings(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hotfly: %v\n", err)
		os.Exit(1)
	}
	s.override(&cli)

	log, closer := logger.Setup(s.loggerOptions(cli.Metrics))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	kctx.BindTo(ctx, (*context.Context)(nil))
	err = kctx.Run(&app{settings: s, log: log, metrics: cli.Metrics})
	stop()
	if err != nil {
		log.Error("hotfly failed", "err", err)
	}
	_ = closer.Close()
	if err != nil {
		os.Exit(1)
	}
}
