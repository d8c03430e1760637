// Package classify labels locale files by their name.
//
// A file name is parsed by stripping the mandatory suffix, then an optional
// editable marker, then an optional backup marker, in that order:
//
//	en.json            -> locale "en"
//	en.backup.json     -> locale "en", backup
//	ko.editable.json   -> locale "ko", editable
//
// The role of a file also depends on which root it was found in: the compiled
// root holds the default file, its backup and the compiled override files;
// the editable root holds working files only.
package classify

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/agentstation/langsync/pkg/errors"
)

// Role is the part a file plays in a run.
type Role string

const (
	// RoleDefault is the canonical default locale file.
	RoleDefault Role = "default"
	// RoleBackup is the snapshot of the default file from the previous run.
	RoleBackup Role = "backup"
	// RoleCompiled is a published override file for a non-default locale.
	RoleCompiled Role = "compiled"
	// RoleEditable is a working file for a non-default locale.
	RoleEditable Role = "editable"
	// RoleIgnored marks files that take no part in the run.
	RoleIgnored Role = "ignored"
)

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// Root identifies the directory a file was found in.
type Root string

const (
	// CompiledRoot holds default, backup and compiled files.
	CompiledRoot Root = "compiled"
	// EditableRoot holds editable working files.
	EditableRoot Root = "editable"
)

// Conventions are the naming rules shared by every file in a run.
type Conventions struct {
	Suffix          string // mandatory suffix, e.g. ".json"
	EditableMarker  string // e.g. ".editable"
	BackupMarker    string // e.g. ".backup"
	DefaultLanguage string // e.g. "en"
}

// Validate checks that the conventions can tell file kinds apart.
func (c Conventions) Validate() error {
	switch {
	case c.Suffix == "":
		return errors.NewValidationError("end-with", c.Suffix, "must not be empty")
	case c.DefaultLanguage == "":
		return errors.NewValidationError("default-language", c.DefaultLanguage, "must not be empty")
	case c.EditableMarker == "":
		return errors.NewValidationError("editable-suffix", c.EditableMarker, "must not be empty")
	case c.BackupMarker == "":
		return errors.NewValidationError("backup-suffix", c.BackupMarker, "must not be empty")
	case c.EditableMarker == c.BackupMarker:
		return errors.NewValidationError("backup-suffix", c.BackupMarker, "must differ from editable-suffix")
	}
	return nil
}

// DefaultFile is the file name of the default locale.
func (c Conventions) DefaultFile() string {
	return c.DefaultLanguage + c.Suffix
}

// BackupFile is the file name of the default locale snapshot.
func (c Conventions) BackupFile() string {
	return c.DefaultLanguage + c.BackupMarker + c.Suffix
}

// CompiledFile is the file name of a compiled override file.
func (c Conventions) CompiledFile(locale string) string {
	return locale + c.Suffix
}

// EditableFile is the file name of a working file.
func (c Conventions) EditableFile(locale string) string {
	return locale + c.EditableMarker + c.Suffix
}

// Entry is a parsed file name.
type Entry struct {
	Name     string `json:"name"`
	Locale   string `json:"locale"`
	Editable bool   `json:"editable"`
	Backup   bool   `json:"backup"`
}

// Parse splits a file name into locale and markers. It returns false when
// the name does not end with the mandatory suffix.
func Parse(name string, c Conventions) (Entry, bool) {
	if c.Suffix == "" || !strings.HasSuffix(name, c.Suffix) {
		return Entry{}, false
	}

	e := Entry{Name: name}
	base := strings.TrimSuffix(name, c.Suffix)

	if c.EditableMarker != "" && strings.HasSuffix(base, c.EditableMarker) {
		e.Editable = true
		base = strings.TrimSuffix(base, c.EditableMarker)
	}
	if c.BackupMarker != "" && strings.HasSuffix(base, c.BackupMarker) {
		e.Backup = true
		base = strings.TrimSuffix(base, c.BackupMarker)
	}

	e.Locale = base
	return e, true
}

// Decision is the outcome of classifying an entry, with a reason when the
// entry is ignored.
type Decision struct {
	Entry
	Root   Root   `json:"root"`
	Role   Role   `json:"role"`
	Reason string `json:"reason,omitempty"`

	// Misplaced is set when the file belongs to the other root. It is
	// expected when both roots are the same directory.
	Misplaced bool `json:"misplaced,omitempty"`
}

// Classify decides the role of an entry found in root.
func Classify(e Entry, root Root, c Conventions) Decision {
	d := Decision{Entry: e, Root: root, Role: RoleIgnored}
	isDefault := e.Locale == c.DefaultLanguage

	switch {
	case e.Locale == "":
		d.Reason = "empty locale name"
	case e.Editable && e.Backup:
		d.Reason = "file is marked both editable and backup"
	case root == CompiledRoot && e.Editable:
		d.Reason = "editable file in the compiled root"
		d.Misplaced = true
	case root == EditableRoot && !e.Editable:
		d.Reason = "non-editable file in the editable root"
		d.Misplaced = true
	case root == CompiledRoot && e.Backup && isDefault:
		d.Role = RoleBackup
	case root == CompiledRoot && e.Backup:
		d.Reason = fmt.Sprintf("backups are only kept for the default locale %q", c.DefaultLanguage)
	case root == CompiledRoot && isDefault:
		d.Role = RoleDefault
	case root == CompiledRoot:
		d.Role = RoleCompiled
	case isDefault:
		d.Reason = fmt.Sprintf("the default locale %q is edited in its default file", c.DefaultLanguage)
	default:
		d.Role = RoleEditable
	}

	return d
}

// ValidTag reports whether locale parses as a BCP 47 language tag.
func ValidTag(locale string) bool {
	_, err := language.Parse(locale)
	return err == nil
}
