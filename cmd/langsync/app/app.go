// Package app provides the application container for the langsync CLI. It
// owns configuration and logging and hands commands their workspace and run
// options.
package app

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/agentstation/langsync/internal/cmd/application"
	"github.com/agentstation/langsync/pkg/constants"
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/logging"
	"github.com/agentstation/langsync/pkg/sync"
	"github.com/agentstation/langsync/pkg/workspace"
)

// App represents the langsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	viper  *viper.Viper
	config *Config

	// Logger, rebuilt from flags unless set with WithLogger
	logger      *zerolog.Logger
	logCloser   io.Closer
	fixedLogger bool

	// Filesystem, the OS unless replaced for tests
	fs afero.Fs
}

// New creates a new App instance with the given version information.
// The app is initialized from env, .env files and the config file; flags are
// applied when a command runs.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	if err := readConfigFile(v, ""); err != nil {
		return nil, err
	}
	app.viper = v
	app.config = configFromViper(v)

	app.rebuildLogger()

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Workspace opens the workspace described by the configuration.
func (a *App) Workspace() (*workspace.Workspace, error) {
	if err := a.config.Validate(); err != nil {
		return nil, err
	}
	return workspace.New(a.fs, a.config.Layout(), workspace.WithLenientJSON(a.config.LenientJSON))
}

// SyncOptions returns the run options from the configuration.
func (a *App) SyncOptions() []sync.Option {
	return []sync.Option{
		sync.WithDryRun(a.config.DryRun),
		sync.WithDiff(a.config.Diff || a.config.DryRun),
		sync.WithFailOnStale(a.config.FailOnStale),
		sync.WithLocales(a.config.Locales...),
		sync.WithTimeout(constants.CommandTimeout),
	}
}

// rebuildLogger replaces the logger with one built from the current
// configuration and closes the log file of the one it replaces. It also
// becomes the default for contexts that carry no logger.
func (a *App) rebuildLogger() {
	logger, closer := NewLogger(a.config)
	_ = a.closeLog()
	a.logger = &logger
	a.logCloser = closer
	logging.SetDefault(logger)
}

func (a *App) closeLog() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// Shutdown releases the log file, if any. It is safe to call more than once.
func (a *App) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapCanceled("shutdown", err)
	}
	a.logger.Debug().Msg("Shutting down")
	if err := a.closeLog(); err != nil {
		return errors.NewIOError("close", a.config.LogOutput, err)
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a fixed configuration. Flags, env and config files are
// not consulted afterwards.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		a.viper = nil
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		_ = a.closeLog()
		a.logger = logger
		a.fixedLogger = true
		return nil
	}
}

// WithFS sets the filesystem workspaces are opened on (useful for testing).
func WithFS(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
