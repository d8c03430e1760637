package workspace

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/agentstation/langsync/pkg/classify"
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/logging"
	"github.com/agentstation/langsync/pkg/translations"
)

// Snapshot is everything a run reads from disk.
type Snapshot struct {
	Default   *translations.Map
	Backup    *translations.Map // empty when HasBackup is false
	HasBackup bool

	Compiled map[string]*translations.Map // locale -> previously published file
	Editable map[string]*translations.Map // locale -> working file

	// Locales in discovery order: first sighting across the compiled root,
	// then the editable root.
	Locales []string

	// Files lists every classified file, including ignored ones.
	Files []classify.Decision
}

// Load scans both roots and decodes every participating file. The first
// malformed file fails the whole load.
func (w *Workspace) Load(ctx context.Context) (*Snapshot, error) {
	logger := logging.FromContext(ctx)

	decisions, err := w.Scan(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Compiled: make(map[string]*translations.Map),
		Editable: make(map[string]*translations.Map),
		Files:    decisions,
	}

	for _, d := range decisions {
		path := w.pathOf(d)
		event := logger.Debug()
		if d.Role == classify.RoleIgnored && !d.Misplaced {
			event = logger.Warn()
		}
		event.Str("file", path).
			Str("role", d.Role.String()).
			Str("locale", d.Locale).
			Bool("editable", d.Editable).
			Bool("backup", d.Backup).
			Str("reason", d.Reason).
			Msg("Found locale file")

		if d.Role == classify.RoleIgnored {
			continue
		}

		m, err := w.ReadMap(path)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("file", path).Int("keys", m.Len()).Msg("Read locale file")

		switch d.Role {
		case classify.RoleDefault:
			snap.Default = m
		case classify.RoleBackup:
			snap.Backup = m
			snap.HasBackup = true
		case classify.RoleCompiled:
			snap.Compiled[d.Locale] = m
			snap.addLocale(d.Locale)
		case classify.RoleEditable:
			snap.Editable[d.Locale] = m
			snap.addLocale(d.Locale)
		}
	}

	if snap.Default == nil {
		return nil, errors.NewMissingDefaultFileError(w.layout.CompiledRoot, w.layout.Conventions.DefaultFile())
	}
	if snap.Backup == nil {
		snap.Backup = translations.New(0)
	}

	for _, locale := range snap.Locales {
		if !classify.ValidTag(locale) {
			logger.Warn().Str("locale", locale).Msg("Locale name is not a valid BCP 47 language tag")
		}
	}

	logger.Info().
		Int("files", len(decisions)).
		Int("locales", len(snap.Locales)).
		Int("default_keys", snap.Default.Len()).
		Bool("backup", snap.HasBackup).
		Msg("Loaded lang files")

	return snap, nil
}

func (s *Snapshot) addLocale(locale string) {
	if !slices.Contains(s.Locales, locale) {
		s.Locales = append(s.Locales, locale)
	}
}

func (w *Workspace) pathOf(d classify.Decision) string {
	dir := w.layout.CompiledRoot
	if d.Root == classify.EditableRoot {
		dir = w.layout.EditableRoot
	}
	return filepath.Join(dir, d.Name)
}
