// Package logging provides structured logging for langsync using zerolog.
// Terminals get human-readable console output, GitHub Actions gets workflow
// commands and anything else gets JSON lines unless LOG_FORMAT says otherwise.
//
// Loggers travel in the context:
//
//	ctx = logging.WithLocale(logging.WithLogger(ctx, logger), "ko")
//	logging.FromContext(ctx).Debug().Msg("Writing compiled file")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// defaultLogger serves contexts that carry no logger.
var defaultLogger = envLogger()

// envLogger builds the logger used before the CLI configures one, from
// LOG_LEVEL and LOG_FORMAT. DEBUG turns on debug when no level is set.
func envLogger() zerolog.Logger {
	cfg := DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}

	// stderr only, the closer has nothing to release
	logger, _ := NewLoggerFromConfig(cfg)
	return logger
}

// Default returns the logger used when a context carries none.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the logger used when a context carries none.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
