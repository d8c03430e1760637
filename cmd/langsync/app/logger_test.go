package app

import (
	"testing"
)

// TestDetermineLogLevel tests the log level precedence logic.
func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		runnerDebug string
		expected    string
	}{
		{
			name:     "default level when no flags set",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "verbose flag sets debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet flag sets warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "verbose and quiet together use warn",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "explicit log-level overrides verbose",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "invalid log-level falls back to info",
			config:   &Config{LogLevel: "loud"},
			expected: "info",
		},
		{
			name:        "runner debug enables debug",
			config:      &Config{},
			runnerDebug: "1",
			expected:    "debug",
		},
		{
			name:        "quiet wins over runner debug",
			config:      &Config{Quiet: true},
			runnerDebug: "1",
			expected:    "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RUNNER_DEBUG", tt.runnerDebug)

			if got := determineLogLevel(tt.config); got != tt.expected {
				t.Errorf("determineLogLevel() = %s, want %s", got, tt.expected)
			}
		})
	}
}

// TestValidateLogLevel tests log level normalization.
func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
		ok    bool
	}{
		{"trace", "trace", true},
		{"debug", "debug", true},
		{"info", "info", true},
		{"warn", "warn", true},
		{"error", "error", true},
		{"WARNING", "warn", true},
		{" Debug ", "debug", true},
		{"loud", "info", false},
	}

	for _, tt := range tests {
		got, ok := validateLogLevel(tt.level)
		if got != tt.want || ok != tt.ok {
			t.Errorf("validateLogLevel(%q) = %q, %v, want %q, %v", tt.level, got, ok, tt.want, tt.ok)
		}
	}
}
