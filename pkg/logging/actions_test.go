package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/langsync/pkg/logging"
)

func actionsLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(logging.NewActionsWriter(buf)).Level(zerolog.TraceLevel)
}

func TestActionsWriter(t *testing.T) {
	tests := []struct {
		name string
		log  func(l zerolog.Logger)
		want string
	}{
		{
			name: "warning annotates the file",
			log: func(l zerolog.Logger) {
				l.Warn().Str("file", "/p/lang/ko.json").Strs("stale_keys", []string{"a", "b"}).Msg("Updated locale")
			},
			want: "::warning file=/p/lang/ko.json::Updated locale file=/p/lang/ko.json stale_keys=[a,b]",
		},
		{
			name: "error escapes newlines",
			log:  func(l zerolog.Logger) { l.Error().Msg("bad\nthing") },
			want: "::error::bad%0Athing",
		},
		{
			name: "info is a plain line",
			log:  func(l zerolog.Logger) { l.Info().Int("locales", 2).Bool("dry_run", false).Msg("Sync complete") },
			want: "Sync complete dry_run=false locales=2",
		},
		{
			name: "debug uses the debug command",
			log:  func(l zerolog.Logger) { l.Debug().Msg("Read locale file") },
			want: "::debug::Read locale file",
		},
		{
			name: "values with spaces are quoted",
			log:  func(l zerolog.Logger) { l.Info().Str("reason", "not a locale").Msg("Skipped") },
			want: `Skipped reason="not a locale"`,
		},
		{
			name: "file property is escaped",
			log:  func(l zerolog.Logger) { l.Warn().Str("file", "C:/a,b.json").Msg("x") },
			want: "::warning file=C%3A/a%2Cb.json::x file=C:/a,b.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(actionsLogger(&buf))
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestActionsWriterPassesThroughNonJSON(t *testing.T) {
	var buf bytes.Buffer
	w := logging.NewActionsWriter(&buf)

	n, err := w.Write([]byte("plain text\n"))
	require.NoError(t, err)
	assert.Equal(t, len("plain text\n"), n)
	assert.Equal(t, "plain text\n", buf.String())
}

func TestGitHubFormatFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.log")

	logger, closer := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "info",
		Format: "github",
		Output: path,
	})
	logger.Warn().Msg("careful")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "::warning::careful"), string(content))
}

func TestAutoFormatInsideActions(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	path := filepath.Join(t.TempDir(), "auto.log")

	logger, closer := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "info",
		Format: "auto",
		Output: path,
	})
	logger.Error().Msg("failed")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "::error::failed"), string(content))
}
