package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/langsync/pkg/logging"
)

func TestSetDefault(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	// contexts without a logger fall back to the new default
	logging.FromContext(context.Background()).Warn().Msg("warning message")
	logging.FromContext(logging.WithLocale(context.Background(), "ko")).Info().Msg("info message")

	output := buf.String()
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
	if !strings.Contains(output, `"locale":"ko","message":"info message"`) {
		t.Errorf("Expected locale on info message, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithOperation(ctx, "sync")
	ctx = logging.WithLocale(ctx, "ko")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, `"operation":"sync"`)
	testLogger.AssertContains(t, `"locale":"ko"`)
	testLogger.AssertContains(t, "test message")
}

func TestConfiguration(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	configs := []struct {
		name   string
		config *logging.Config
		check  func(t *testing.T, output string)
	}{
		{
			name: "debug level",
			config: &logging.Config{
				Level:  "debug",
				Format: "json",
			},
			check: func(t *testing.T, output string) {
				if !strings.Contains(output, `"level":"debug"`) {
					t.Errorf("Expected debug level in output")
				}
			},
		},
		{
			name: "error level only",
			config: &logging.Config{
				Level:  "error",
				Format: "json",
			},
			check: func(t *testing.T, output string) {
				if strings.Contains(output, `"level":"info"`) {
					t.Errorf("Should not contain info level when set to error")
				}
				if !strings.Contains(output, `"level":"error"`) {
					t.Errorf("Expected error level in output")
				}
			},
		},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger, _ := logging.NewLoggerFromConfig(tc.config)
			logger = logger.Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			tc.check(t, buf.String())
		})
	}
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Trace().Msg("message 1")
	tl.Logger.Error().Msg("message 2")

	tl.AssertContains(t, "message 1")
	tl.AssertContains(t, `"level":"error","message":"message 2"`)
	if got := strings.Count(tl.Output(), "\n"); got != 2 {
		t.Errorf("Expected 2 entries, got %d", got)
	}
}
