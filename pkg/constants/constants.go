// Package constants provides shared constants used throughout the langsync codebase.
// This includes file permissions, naming defaults and other values that should
// be consistent across the CLI and the library packages.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for written locale files (rw-r--r--)
	FilePermissions = 0644
)

// Naming defaults. The same names are accepted as GitHub Action inputs.
const (
	// DefaultBasePath is the directory all other paths are relative to
	DefaultBasePath = "."

	// DefaultLangFilesPath is the compiled root, relative to the base path
	DefaultLangFilesPath = "."

	// DefaultEditableFilesPath is the editable root, relative to the base path
	DefaultEditableFilesPath = "."

	// DefaultEndWith is the mandatory filename suffix of every locale file
	DefaultEndWith = ".json"

	// DefaultEditableSuffix marks working files, inserted before DefaultEndWith
	DefaultEditableSuffix = ".editable"

	// DefaultBackupSuffix marks the snapshot of the previous default file
	DefaultBackupSuffix = ".backup"

	// DefaultLanguage is the locale treated as canonical
	DefaultLanguage = "en"
)

// CLI constants
const (
	// AppName is the binary and config file name
	AppName = "langsync"

	// EnvPrefix prefixes environment variables read by the CLI (LANGSYNC_BASE_PATH)
	EnvPrefix = "LANGSYNC"

	// ActionsInputPrefix prefixes inputs passed by GitHub Actions (INPUT_BASE-PATH)
	ActionsInputPrefix = "INPUT_"

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second

	// DiffContextLines is the number of context lines in dry-run diffs
	DiffContextLines = 3
)
