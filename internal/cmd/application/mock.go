package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/langsync/pkg/sync"
	"github.com/agentstation/langsync/pkg/workspace"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    WorkspaceFunc: func() (*workspace.Workspace, error) {
//	        return workspace.New(afero.NewMemMapFs(), layout)
//	    },
//	}
//	cmd := scan.NewCommand(mock)
type Mock struct {
	WorkspaceFunc    func() (*workspace.Workspace, error)
	SyncOptionsFunc  func() []sync.Option
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Workspace returns a workspace using the mock function or nil.
func (m *Mock) Workspace() (*workspace.Workspace, error) {
	if m.WorkspaceFunc != nil {
		return m.WorkspaceFunc()
	}
	return nil, nil
}

// SyncOptions returns options using the mock function or none.
func (m *Mock) SyncOptions() []sync.Option {
	if m.SyncOptionsFunc != nil {
		return m.SyncOptionsFunc()
	}
	return nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
