// Package application defines the dependencies commands receive from the
// CLI application container.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/langsync/pkg/sync"
	"github.com/agentstation/langsync/pkg/workspace"
)

// Application is implemented by the App in cmd/langsync/app. Commands accept
// this interface rather than the concrete App so they can be tested with Mock.
type Application interface {
	// Workspace opens the workspace described by the configuration.
	Workspace() (*workspace.Workspace, error)

	// SyncOptions returns the run options set by flags, env and config file.
	SyncOptions() []sync.Option

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	// Empty means auto-detect.
	OutputFormat() string

	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
