package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/langsync/pkg/logging"
)

// NewLogger builds the logger described by config. The closer releases a
// log file named by --log-output.
func NewLogger(config *Config) (zerolog.Logger, io.Closer) {
	level := determineLogLevel(config)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor || os.Getenv("NO_COLOR") != "",
		AddCaller: level == "debug" || level == "trace",
	})
}

// determineLogLevel picks the level, first match wins: an explicit
// --log-level (or LANGSYNC_LOG_LEVEL, LOG_LEVEL), --quiet, --verbose,
// RUNNER_DEBUG=1 from a debug-enabled Actions run, then info.
func determineLogLevel(config *Config) string {
	switch {
	case config.LogLevel != "":
		level, ok := validateLogLevel(config.LogLevel)
		if !ok {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, level)
		}
		return level
	case config.Quiet:
		if config.Verbose {
			fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		}
		return "warn"
	case config.Verbose, os.Getenv("RUNNER_DEBUG") == "1":
		return "debug"
	default:
		return "info"
	}
}

// validateLogLevel normalizes level. Unknown levels report false and map
// to info.
func validateLogLevel(level string) (string, bool) {
	switch level = strings.ToLower(strings.TrimSpace(level)); level {
	case "trace", "debug", "info", "warn", "error":
		return level, true
	case "warning":
		return "warn", true
	default:
		return "info", false
	}
}
