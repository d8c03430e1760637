package reconcile

import (
	"github.com/agentstation/langsync/pkg/translations"
)

// ChangeKind classifies what happened to a key of the working map.
type ChangeKind string

const (
	// Unchanged keys still carry the default text.
	Unchanged ChangeKind = "unchanged"
	// Override keys carry a translation that is still valid.
	Override ChangeKind = "override"
	// Stale keys were reset to the new default text and need retranslation.
	Stale ChangeKind = "stale"
	// Deleted keys were removed from the default locale.
	Deleted ChangeKind = "deleted"
	// Orphan keys have no default or backup lineage and are kept as is.
	Orphan ChangeKind = "orphan"
)

// String returns the kind name.
func (k ChangeKind) String() string {
	return string(k)
}

// Change records the outcome for one key. New is empty for deleted keys.
type Change struct {
	Key  string     `json:"key" yaml:"key"`
	Kind ChangeKind `json:"kind" yaml:"kind"`
	Old  string     `json:"old" yaml:"old"`
	New  string     `json:"new,omitempty" yaml:"new,omitempty"`
}

// Result is the outcome of reconciling one locale.
type Result struct {
	Locale string

	// Editable is the new working map.
	Editable *translations.Map
	// Compiled holds only override and orphan keys, in working order.
	Compiled *translations.Map

	// Bootstrapped is set when the working map was seeded because the
	// locale had no working file.
	Bootstrapped bool

	// Changes lists every key of the starting working map in order.
	Changes []Change
}

// Stats counts keys per change kind.
type Stats struct {
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Override  int `json:"override" yaml:"override"`
	Stale     int `json:"stale" yaml:"stale"`
	Deleted   int `json:"deleted" yaml:"deleted"`
	Orphan    int `json:"orphan" yaml:"orphan"`
}

// Total is the number of keys considered.
func (s Stats) Total() int {
	return s.Unchanged + s.Override + s.Stale + s.Deleted + s.Orphan
}

// Add returns the sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Unchanged: s.Unchanged + other.Unchanged,
		Override:  s.Override + other.Override,
		Stale:     s.Stale + other.Stale,
		Deleted:   s.Deleted + other.Deleted,
		Orphan:    s.Orphan + other.Orphan,
	}
}

// Stats returns the per-kind key counts.
func (r *Result) Stats() Stats {
	var s Stats
	for _, c := range r.Changes {
		switch c.Kind {
		case Unchanged:
			s.Unchanged++
		case Override:
			s.Override++
		case Stale:
			s.Stale++
		case Deleted:
			s.Deleted++
		case Orphan:
			s.Orphan++
		}
	}
	return s
}

// StaleKeys returns the keys reset to the default text, in order.
func (r *Result) StaleKeys() []string {
	var keys []string
	for _, c := range r.Changes {
		if c.Kind == Stale {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// HasStale reports whether any key was reset.
func (r *Result) HasStale() bool {
	for _, c := range r.Changes {
		if c.Kind == Stale {
			return true
		}
	}
	return false
}
