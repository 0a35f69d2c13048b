package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rickbassham/hotfly/logger"
	"github.com/rickbassham/hotfly/metadata"
)

type logSettings struct {
	Format     string `yaml:"format"`
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	MaxBackups int    `yaml:"maxBackups"`
	Compress   bool   `yaml:"compress"`
}

type settings struct {
	Metadata         string      `yaml:"metadata"`
	Logs             logSettings `yaml:"logs"`
	StrictCardLength bool        `yaml:"strictCardLength"`
	Jobs             int         `yaml:"jobs"`
}

// loadSettings reads the YAML settings file at path. An empty path yields
// the defaults.
func loadSettings(path string) (settings, error) {
	var s settings
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return s, errors.Wrap(err, "open settings")
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return s, errors.Wrapf(err, "decode settings %s", path)
		}

		baseDir := filepath.Dir(path)
		resolvePath := func(p string) string {
			p = strings.TrimSpace(p)
			if p == "" || filepath.IsAbs(p) {
				return p
			}
			candidate := filepath.Clean(filepath.Join(baseDir, p))
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
			return filepath.Clean(p)
		}
		if isDocument(s.Metadata) {
			s.Metadata = resolvePath(s.Metadata)
		}
		if s.Logs.File != "" && !filepath.IsAbs(s.Logs.File) {
			s.Logs.File = filepath.Join(baseDir, s.Logs.File)
		}
	}

	if s.Metadata == "" {
		s.Metadata = "dbrc:" + metadata.DefaultAlias
	}
	if s.Jobs <= 0 {
		s.Jobs = runtime.NumCPU()
	}
	if s.Logs.Level == "" {
		s.Logs.Level = "error"
	}
	if s.Logs.MaxSizeMB <= 0 {
		s.Logs.MaxSizeMB = 25
	}
	if s.Logs.MaxAgeDays <= 0 {
		s.Logs.MaxAgeDays = 7
	}
	if s.Logs.MaxBackups <= 0 {
		s.Logs.MaxBackups = 5
	}
	return s, nil
}

// isDocument reports whether a metadata locator names a file.
func isDocument(locator string) bool {
	return locator != "" && !strings.Contains(locator, "://") && !strings.HasPrefix(locator, "dbrc:")
}

// override applies the command line on top of the settings file.
func (s *settings) override(cli *CLI) {
	if cli.Metadata != "" {
		s.Metadata = cli.Metadata
	}
	if cli.Debug {
		s.Logs.Level = "debug"
	}
	if cli.Strict {
		s.StrictCardLength = true
	}
	if cli.Batch.Jobs > 0 {
		s.Jobs = cli.Batch.Jobs
	}
}

func (s settings) loggerOptions(metrics bool) logger.Options {
	level := logger.ParseLevel(s.Logs.Level)
	if metrics && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	return logger.Options{
		Format:     s.Logs.Format,
		Level:      level,
		File:       s.Logs.File,
		MaxSizeMB:  s.Logs.MaxSizeMB,
		MaxAgeDays: s.Logs.MaxAgeDays,
		MaxBackups: s.Logs.MaxBackups,
		Compress:   s.Logs.Compress,
	}
}
