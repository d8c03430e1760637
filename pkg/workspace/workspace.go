// Package workspace reads and writes the locale files of a project.
//
// A Workspace scans the compiled root and the editable root, classifies each
// file with the classify package and decodes participating files into
// translation maps. All file access goes through an afero.Fs so the store can
// run against the OS or an in-memory filesystem.
package workspace

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/langsync/pkg/classify"
	"github.com/agentstation/langsync/pkg/constants"
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/logging"
	"github.com/agentstation/langsync/pkg/translations"
)

// Layout locates the two roots and names files inside them.
type Layout struct {
	CompiledRoot string
	EditableRoot string
	Conventions  classify.Conventions
}

// Workspace is a file store for one layout.
type Workspace struct {
	fs      afero.Fs
	layout  Layout
	lenient bool
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithLenientJSON accepts comments and trailing commas in locale files.
func WithLenientJSON(enabled bool) Option {
	return func(w *Workspace) {
		w.lenient = enabled
	}
}

// New creates a workspace. A nil fs means the OS filesystem.
func New(fs afero.Fs, layout Layout, opts ...Option) (*Workspace, error) {
	if err := layout.Conventions.Validate(); err != nil {
		return nil, errors.NewConfigError("workspace", "invalid naming conventions", err)
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}

	w := &Workspace{fs: fs, layout: layout}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Layout returns the workspace layout.
func (w *Workspace) Layout() Layout {
	return w.layout
}

// DefaultPath is the path of the default locale file.
func (w *Workspace) DefaultPath() string {
	return filepath.Join(w.layout.CompiledRoot, w.layout.Conventions.DefaultFile())
}

// BackupPath is the path of the default locale snapshot.
func (w *Workspace) BackupPath() string {
	return filepath.Join(w.layout.CompiledRoot, w.layout.Conventions.BackupFile())
}

// CompiledPath is the path of the compiled file for locale.
func (w *Workspace) CompiledPath(locale string) string {
	return filepath.Join(w.layout.CompiledRoot, w.layout.Conventions.CompiledFile(locale))
}

// EditablePath is the path of the working file for locale.
func (w *Workspace) EditablePath(locale string) string {
	return filepath.Join(w.layout.EditableRoot, w.layout.Conventions.EditableFile(locale))
}

// Scan classifies every file in both roots without reading contents.
// Files without the mandatory suffix are skipped.
func (w *Workspace) Scan(ctx context.Context) ([]classify.Decision, error) {
	var decisions []classify.Decision
	for _, root := range w.roots() {
		names, err := w.list(ctx, root.dir)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			entry, ok := classify.Parse(name, w.layout.Conventions)
			if !ok {
				continue
			}
			decisions = append(decisions, classify.Classify(entry, root.kind, w.layout.Conventions))
		}
	}
	return decisions, nil
}

// ReadMap reads and decodes one locale file.
func (w *Workspace) ReadMap(path string) (*translations.Map, error) {
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var m *translations.Map
	if w.lenient {
		m, err = translations.DecodeLenient(data)
	} else {
		m, err = translations.Decode(data)
	}
	if err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return m, nil
}

// ReadRaw returns the bytes of path and whether it exists.
func (w *Workspace) ReadRaw(path string) ([]byte, bool, error) {
	data, err := afero.ReadFile(w.fs, path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WrapIO("read", path, err)
	}
	return data, true, nil
}

// Render encodes m in the on-disk layout.
func Render(m *translations.Map) ([]byte, error) {
	return translations.Encode(m)
}

// WriteMap encodes m and writes it to path, creating parent directories.
// A file that already holds the same bytes is left untouched. It reports
// whether the file content changed.
func (w *Workspace) WriteMap(ctx context.Context, path string, m *translations.Map) (bool, error) {
	data, err := Render(m)
	if err != nil {
		return false, errors.NewIOError("encode", path, err)
	}

	old, exists, err := w.ReadRaw(path)
	if err != nil {
		return false, err
	}
	if exists && bytes.Equal(old, data) {
		logging.FromContext(ctx).Debug().Str("file", path).Msg("Locale file unchanged, not writing")
		return false, nil
	}

	if err := w.WriteRaw(ctx, path, data); err != nil {
		return false, err
	}
	return true, nil
}

// WriteRaw writes already rendered bytes to path, creating parent
// directories.
func (w *Workspace) WriteRaw(ctx context.Context, path string, data []byte) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(w.fs, path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("file", path).
		Int("bytes", len(data)).
		Msg("Wrote locale file")
	return nil
}

type scanRoot struct {
	dir  string
	kind classify.Root
}

func (w *Workspace) roots() []scanRoot {
	return []scanRoot{
		{dir: w.layout.CompiledRoot, kind: classify.CompiledRoot},
		{dir: w.layout.EditableRoot, kind: classify.EditableRoot},
	}
}

// list returns the regular file names in dir, sorted by name. A missing
// editable root is empty; a missing compiled root means there is no default
// file.
func (w *Workspace) list(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapCanceled("scan", err)
	}

	infos, err := afero.ReadDir(w.fs, dir)
	if os.IsNotExist(err) {
		if dir == w.layout.CompiledRoot {
			return nil, errors.NewMissingDefaultFileError(dir, w.layout.Conventions.DefaultFile())
		}
		logging.FromContext(ctx).Debug().Str("dir", dir).Msg("Editable root does not exist yet")
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapIO("list", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		names = append(names, info.Name())
	}
	return names, nil
}
