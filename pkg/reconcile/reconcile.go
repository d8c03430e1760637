// Package reconcile merges a locale's working translations with the current
// default locale.
//
// Reconcile is a pure function of four translation maps: the current default,
// the backup of the default from the previous run, the locale's previously
// compiled overrides and its working (editable) file. It returns the new
// working file and the new compiled file; it never touches the filesystem.
//
// Per key, with d the default value and o the backup value:
//
//	d present, value == d        unchanged: kept in working, not compiled
//	d present, o present, o != d stale: reset to d, not compiled
//	d present, otherwise         override: kept in working and compiled
//	d absent, o present          deleted from working
//	d absent, o absent           orphan: kept in working and compiled
//
// Presence is decided by key membership, so an empty default string is a
// present value.
package reconcile

import (
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/translations"
)

// Input holds the maps for one locale. Inputs are never mutated.
type Input struct {
	// Locale is used in error messages only.
	Locale string

	Default  *translations.Map
	Backup   *translations.Map // nil is treated as empty
	Compiled *translations.Map // nil when the locale was never compiled
	Editable *translations.Map // nil when there is no working file yet
}

// Reconcile computes the new working and compiled maps for one locale.
func Reconcile(in Input) (*Result, error) {
	if in.Default == nil {
		return nil, errors.NewMissingDefaultFileError("", "")
	}
	if in.Compiled == nil {
		return nil, errors.NewMissingCompiledHistoryError(in.Locale)
	}

	backup := in.Backup
	if backup == nil {
		backup = translations.New(0)
	}

	result := &Result{Locale: in.Locale}

	var working *translations.Map
	if in.Editable == nil {
		working = bootstrap(in.Default, in.Compiled)
		result.Bootstrapped = true
	} else {
		working = in.Editable.Clone()
	}

	compiled := translations.New(working.Len())
	for _, key := range working.Keys() {
		value, _ := working.Get(key)
		d, hasDefault := in.Default.Get(key)
		o, hasBackup := backup.Get(key)

		change := Change{Key: key, Old: value, New: value}
		switch {
		case hasDefault && value == d:
			change.Kind = Unchanged
		case hasDefault && hasBackup && o != d:
			change.Kind = Stale
			change.New = d
			working.Set(key, d)
		case hasDefault:
			change.Kind = Override
			compiled.Set(key, value)
		case hasBackup:
			change.Kind = Deleted
			change.New = ""
			working.Delete(key)
		default:
			change.Kind = Orphan
			compiled.Set(key, value)
		}
		result.Changes = append(result.Changes, change)
	}

	result.Editable = working
	result.Compiled = compiled
	return result, nil
}

// bootstrap seeds a new working map from the default map and the locale's
// compiled overrides. Compiled keys unknown to the default are dropped.
func bootstrap(def, compiled *translations.Map) *translations.Map {
	working := def.Clone()
	for key, value := range compiled.All() {
		if def.Has(key) {
			working.Set(key, value)
		}
	}
	return working
}
