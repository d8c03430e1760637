package sync

import (
	"fmt"
	"strings"

	"github.com/agentstation/langsync/pkg/reconcile"
)

// Result represents the complete result of a sync run.
type Result struct {
	Locales []*LocaleResult `json:"locales" yaml:"locales"`

	// Backup is nil when the default snapshot was not rewritten.
	Backup *FileResult `json:"backup,omitempty" yaml:"backup,omitempty"`

	// Operation metadata
	DryRun bool `json:"dry_run" yaml:"dry_run"`
	Subset bool `json:"subset" yaml:"subset"`
}

// LocaleResult represents the result for a single locale.
type LocaleResult struct {
	Locale       string          `json:"locale" yaml:"locale"`
	Bootstrapped bool            `json:"bootstrapped" yaml:"bootstrapped"`
	Stats        reconcile.Stats `json:"stats" yaml:"stats"`
	StaleKeys    []string        `json:"stale_keys,omitempty" yaml:"stale_keys,omitempty"`

	Compiled FileResult `json:"compiled" yaml:"compiled"`
	Editable FileResult `json:"editable" yaml:"editable"`
}

// FileResult describes one written (or, in a dry run, computed) file.
type FileResult struct {
	Path    string `json:"path" yaml:"path"`
	Existed bool   `json:"existed" yaml:"existed"`
	Changed bool   `json:"changed" yaml:"changed"`
	Diff    string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Totals sums the key statistics of all locales.
func (r *Result) Totals() reconcile.Stats {
	var total reconcile.Stats
	for _, lr := range r.Locales {
		total = total.Add(lr.Stats)
	}
	return total
}

// Files returns every file result in write order.
func (r *Result) Files() []FileResult {
	var files []FileResult
	for _, lr := range r.Locales {
		files = append(files, lr.Compiled, lr.Editable)
	}
	if r.Backup != nil {
		files = append(files, *r.Backup)
	}
	return files
}

// ChangedFiles counts files whose content changed.
func (r *Result) ChangedFiles() int {
	n := 0
	for _, f := range r.Files() {
		if f.Changed {
			n++
		}
	}
	return n
}

// HasChanges returns true if any file content changed.
func (r *Result) HasChanges() bool {
	return r.ChangedFiles() > 0
}

// StaleLocales returns the locales with reset translations.
func (r *Result) StaleLocales() []string {
	var locales []string
	for _, lr := range r.Locales {
		if len(lr.StaleKeys) > 0 {
			locales = append(locales, lr.Locale)
		}
	}
	return locales
}

// HasChanges returns true if either file of the locale changed.
func (lr *LocaleResult) HasChanges() bool {
	return lr.Compiled.Changed || lr.Editable.Changed
}

// Summary returns a human-readable summary of the sync result.
func (r *Result) Summary() string {
	total := r.Totals()
	summary := fmt.Sprintf("%d locale(s): %d override(s), %d stale, %d deleted, %d orphan(s); %d file(s) changed",
		len(r.Locales), total.Override, total.Stale, total.Deleted, total.Orphan, r.ChangedFiles())

	var parts []string
	if r.DryRun {
		parts = append(parts, "(Dry run)")
	}
	if r.Subset {
		parts = append(parts, "(Backup not updated)")
	}
	if len(parts) > 0 {
		summary += " " + strings.Join(parts, " ")
	}
	return summary
}

// Summary returns a human-readable summary of the locale result.
func (lr *LocaleResult) Summary() string {
	s := fmt.Sprintf("%s: %d override(s), %d stale, %d deleted", lr.Locale, lr.Stats.Override, lr.Stats.Stale, lr.Stats.Deleted)
	if lr.Bootstrapped {
		s += " (new editable file)"
	}
	return s
}
