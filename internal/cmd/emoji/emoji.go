// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used in reports and status lines.
const (
	// Success marks a completed run or a written file.
	Success = "✓"

	// Warning marks stale translations that need attention.
	Warning = "!"

	// Optional marks a file left as it was.
	Optional = "-"

	// Info marks dry run notes.
	Info = "i"
)
