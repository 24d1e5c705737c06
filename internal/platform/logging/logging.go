// Package logging configures the slog logger used for command
// diagnostics: a text handler on stderr, or a rotating log file when one
// is configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls log output. Fields map to PAGEMARK_* environment
// variables when parsed through platform config.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `env:"PAGEMARK_LOG_LEVEL" envDefault:"info"`
	// File is a log file path. Empty means stderr.
	File string `env:"PAGEMARK_LOG_FILE"`
	// MaxSizeMB is the rotation threshold for the log file.
	MaxSizeMB int `env:"PAGEMARK_LOG_MAX_SIZE_MB" envDefault:"10"`
	// MaxBackups is how many rotated files to keep.
	MaxBackups int `env:"PAGEMARK_LOG_MAX_BACKUPS" envDefault:"3"`
}

// New builds a logger from cfg. It returns the logger and a close
// function that releases the log file, a no-op for stderr output.
func New(cfg Config) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  true,
		}
		w = lj
		closeFn = lj.Close
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeFn, nil
}
