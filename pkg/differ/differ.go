// Package differ renders unified diffs of locale files for dry runs.
//
// Patches use the classic unified format (---/+++ headers, @@ hunks, lines
// prefixed with ' ', '-' or '+') produced by github.com/pmezard/go-difflib.
package differ

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/agentstation/langsync/pkg/constants"
)

// Unified returns the patch that turns before into after for path. It returns
// an empty string when the contents are equal. A negative contextLines uses
// constants.DiffContextLines; zero prints changed lines only.
func Unified(path string, before, after []byte, contextLines int) string {
	if bytes.Equal(before, after) {
		return ""
	}
	return render(difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: label("a/", path),
		ToFile:   label("b/", path),
		Context:  contextOrDefault(contextLines),
	})
}

// Added returns the patch that creates path with content.
func Added(path string, content []byte) string {
	return render(difflib.UnifiedDiff{
		A:        []string{},
		B:        splitLines(content),
		FromFile: "/dev/null",
		ToFile:   label("b/", path),
		Context:  constants.DiffContextLines,
	})
}

// Stat counts the added and removed lines of a patch.
func Stat(patch string) (added, removed int) {
	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}

func render(u difflib.UnifiedDiff) string {
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		// writes go to an in-memory buffer
		return ""
	}
	return s
}

// noNewline is appended to a last line that lacks a newline, as git does,
// so content differing only in the final newline still produces a patch.
const noNewline = "\n\\ No newline at end of file\n"

// splitLines terminates every line. A last line without a newline carries
// the no-newline marker.
func splitLines(b []byte) []string {
	if len(b) == 0 {
		return []string{}
	}
	s := string(b)
	if strings.HasSuffix(s, "\n") {
		return difflib.SplitLines(strings.TrimSuffix(s, "\n"))
	}
	lines := difflib.SplitLines(s)
	last := len(lines) - 1
	lines[last] = strings.TrimSuffix(lines[last], "\n") + noNewline
	return lines
}

// label builds a git style file label, so absolute paths do not produce a
// double slash.
func label(prefix, path string) string {
	return prefix + strings.TrimPrefix(filepath.ToSlash(path), "/")
}

func contextOrDefault(n int) int {
	if n < 0 {
		return constants.DiffContextLines
	}
	return n
}
