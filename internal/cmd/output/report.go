package output

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/langsync/internal/cmd/emoji"
	"github.com/agentstation/langsync/pkg/classify"
	"github.com/agentstation/langsync/pkg/differ"
	"github.com/agentstation/langsync/pkg/sync"
)

// SyncTable converts a sync result to one row per locale.
func SyncTable(r *sync.Result) Data {
	headers := []string{"Locale", "Overrides", "Stale", "Deleted", "Orphans", "Compiled", "Editable", "Lines"}

	rows := make([][]string, 0, len(r.Locales)+1)
	for _, lr := range r.Locales {
		locale := lr.Locale
		if lr.Bootstrapped {
			locale += " (new)"
		}
		stale := strconv.Itoa(lr.Stats.Stale)
		if lr.Stats.Stale > 0 {
			stale = emoji.Warning + " " + stale
		}
		rows = append(rows, []string{
			locale,
			strconv.Itoa(lr.Stats.Override),
			stale,
			strconv.Itoa(lr.Stats.Deleted),
			strconv.Itoa(lr.Stats.Orphan),
			fileStatus(lr.Compiled, r.DryRun),
			fileStatus(lr.Editable, r.DryRun),
			lineStat(lr.Compiled, lr.Editable),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft, AlignLeft, AlignRight},
	}
}

// ScanTable converts classified files to one row per file.
func ScanTable(files []classify.Decision) Data {
	caser := cases.Title(language.English)

	rows := make([][]string, 0, len(files))
	for _, d := range files {
		note := d.Reason
		if note == "" {
			note = "-"
		}
		locale := d.Locale
		if locale == "" {
			locale = "-"
		}
		rows = append(rows, []string{
			d.Name,
			caser.String(string(d.Root)),
			caser.String(d.Role.String()),
			locale,
			note,
		})
	}

	return Data{
		Headers: []string{"File", "Root", "Role", "Locale", "Note"},
		Rows:    rows,
	}
}

// WriteDiffs writes every collected patch of r to w.
func WriteDiffs(w io.Writer, r *sync.Result) error {
	for _, f := range r.Files() {
		if f.Diff == "" {
			continue
		}
		if _, err := io.WriteString(w, f.Diff); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes the one-line result summary with a status symbol.
func WriteSummary(w io.Writer, r *sync.Result) error {
	symbol := emoji.Success
	if len(r.StaleLocales()) > 0 {
		symbol = emoji.Warning
	}
	_, err := fmt.Fprintf(w, "%s %s\n", symbol, r.Summary())
	return err
}

// lineStat sums the added and removed lines of the collected diffs, or "-"
// when no diff was collected.
func lineStat(files ...sync.FileResult) string {
	var added, removed int
	seen := false
	for _, f := range files {
		if f.Diff == "" {
			continue
		}
		seen = true
		a, r := differ.Stat(f.Diff)
		added += a
		removed += r
	}
	if !seen {
		return "-"
	}
	return fmt.Sprintf("+%d/-%d", added, removed)
}

func fileStatus(f sync.FileResult, dryRun bool) string {
	switch {
	case !f.Changed:
		return emoji.Optional + " unchanged"
	case dryRun && !f.Existed:
		return emoji.Info + " would create"
	case dryRun:
		return emoji.Info + " would update"
	case !f.Existed:
		return emoji.Success + " created"
	default:
		return emoji.Success + " updated"
	}
}
