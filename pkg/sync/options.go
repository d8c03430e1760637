// Package sync runs a reconciliation over every locale of a workspace and
// writes the results back.
package sync

import (
	"fmt"
	"time"

	"github.com/agentstation/langsync/pkg/classify"
	"github.com/agentstation/langsync/pkg/constants"
	"github.com/agentstation/langsync/pkg/errors"
)

// Options controls a sync run.
type Options struct {
	// Orchestration control
	DryRun      bool          // Compute and report without writing
	FailOnStale bool          // Return an error when any translation was reset
	Timeout     time.Duration // Timeout for the entire run, 0 means none

	// Locale selection
	Locales []string // Which locales to reconcile (empty means all)

	// Output control
	Diff        bool // Collect unified diffs of files that change
	DiffContext int  // Context lines per hunk
}

// Apply applies the given options to the sync options.
func (s *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the default sync options.
func Defaults() *Options {
	return &Options{
		DryRun:      false,
		FailOnStale: false,
		Timeout:     0,
		Locales:     nil,
		Diff:        false,
		DiffContext: constants.DiffContextLines,
	}
}

// Option is a function that configures sync Options.
type Option func(*Options)

// Validate checks if the sync options are valid.
func (s *Options) Validate() error {
	if s.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   s.Timeout,
			Message: "timeout must be non-negative",
		}
	}
	if s.DiffContext < 0 {
		return &errors.ValidationError{
			Field:   "DiffContext",
			Value:   s.DiffContext,
			Message: "context lines must be non-negative",
		}
	}
	for _, locale := range s.Locales {
		if locale == "" {
			return &errors.ValidationError{
				Field:   "Locales",
				Value:   s.Locales,
				Message: "locale names must not be empty",
			}
		}
	}
	return nil
}

// Subset reports whether only some locales are reconciled.
func (s *Options) Subset() bool {
	return len(s.Locales) > 0
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(opts *Options) {
		opts.DryRun = dryRun
	}
}

// WithDiff configures collection of unified diffs.
func WithDiff(diff bool) Option {
	return func(opts *Options) {
		opts.Diff = diff
	}
}

// WithDiffContext configures the number of context lines in diffs.
func WithDiffContext(lines int) Option {
	return func(opts *Options) {
		opts.DiffContext = lines
	}
}

// WithLocales restricts the run to the given locales. The default locale
// snapshot is not rewritten in that case, so skipped locales still see the
// default text changes on their next run.
func WithLocales(locales ...string) Option {
	return func(opts *Options) {
		opts.Locales = locales
	}
}

// WithFailOnStale configures whether reset translations fail the run.
func WithFailOnStale(fail bool) Option {
	return func(opts *Options) {
		opts.FailOnStale = fail
	}
}

// WithTimeout configures the run timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// selectLocales filters discovered locales by the requested ones, keeping
// discovery order. Requesting an unknown or default locale is an error.
func (s *Options) selectLocales(discovered []string, c classify.Conventions) ([]string, error) {
	if !s.Subset() {
		return discovered, nil
	}

	wanted := make(map[string]bool, len(s.Locales))
	for _, locale := range s.Locales {
		if locale == c.DefaultLanguage {
			return nil, errors.NewValidationError("locales", locale, "the default locale is not reconciled")
		}
		wanted[locale] = true
	}

	var selected []string
	for _, locale := range discovered {
		if wanted[locale] {
			selected = append(selected, locale)
			delete(wanted, locale)
		}
	}
	for _, locale := range s.Locales {
		if wanted[locale] {
			return nil, errors.NewValidationError("locales", locale, fmt.Sprintf("no lang file found for locale %q", locale))
		}
	}
	return selected, nil
}
