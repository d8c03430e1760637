package workspace

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/langsync/pkg/classify"
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/logging"
	"github.com/agentstation/langsync/pkg/translations"
)

var testConventions = classify.Conventions{
	Suffix:          ".json",
	EditableMarker:  ".editable",
	BackupMarker:    ".backup",
	DefaultLanguage: "en",
}

func newTestWorkspace(t *testing.T, files map[string]string, opts ...Option) (*Workspace, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj/lang", 0o755))
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}

	ws, err := New(fs, Layout{
		CompiledRoot: "/proj/lang",
		EditableRoot: "/proj/editable",
		Conventions:  testConventions,
	}, opts...)
	require.NoError(t, err)
	return ws, fs
}

func TestNewRejectsInvalidConventions(t *testing.T) {
	_, err := New(afero.NewMemMapFs(), Layout{Conventions: classify.Conventions{Suffix: ".json"}})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestPaths(t *testing.T) {
	ws, _ := newTestWorkspace(t, nil)
	assert.Equal(t, "/proj/lang/en.json", ws.DefaultPath())
	assert.Equal(t, "/proj/lang/en.backup.json", ws.BackupPath())
	assert.Equal(t, "/proj/lang/ko.json", ws.CompiledPath("ko"))
	assert.Equal(t, "/proj/editable/ko.editable.json", ws.EditablePath("ko"))
}

func TestLoad(t *testing.T) {
	ws, _ := newTestWorkspace(t, map[string]string{
		"/proj/lang/en.json":                `{"a": "X", "b": "Z"}`,
		"/proj/lang/en.backup.json":         `{"a": "X"}`,
		"/proj/lang/ko.json":                `{"a": "Y"}`,
		"/proj/lang/de.json":                `{}`,
		"/proj/lang/README.md":              "not a locale file",
		"/proj/lang/fr.backup.json":         `{"a": "ignored"}`,
		"/proj/editable/ja.editable.json":   `{"a": "J"}`,
		"/proj/editable/ko.editable.json":   `{"a": "Y", "b": "Z"}`,
		"/proj/editable/notes.txt":          "skip",
		"/proj/editable/en.editable.json":   `{"a": "X"}`,
		"/proj/editable/stray-compiled.json": `{}`,
	})

	snap, err := ws.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, snap.Default.Keys())
	assert.True(t, snap.HasBackup)
	assert.Equal(t, 1, snap.Backup.Len())

	// compiled root sorted by name first, then editable root
	assert.Equal(t, []string{"de", "ko", "ja"}, snap.Locales)
	assert.Contains(t, snap.Compiled, "ko")
	assert.Contains(t, snap.Compiled, "de")
	assert.NotContains(t, snap.Compiled, "fr")
	assert.Contains(t, snap.Editable, "ko")
	assert.Contains(t, snap.Editable, "ja")
	assert.NotContains(t, snap.Editable, "en")

	roles := map[string]classify.Role{}
	for _, d := range snap.Files {
		roles[string(d.Root)+"/"+d.Name] = d.Role
	}
	assert.Equal(t, classify.RoleIgnored, roles["compiled/fr.backup.json"])
	assert.Equal(t, classify.RoleIgnored, roles["editable/en.editable.json"])
	assert.NotContains(t, roles, "compiled/README.md")
}

func TestLoadSkipsNonMatchingFilesWithoutStopping(t *testing.T) {
	// "a.txt" sorts before every locale file; it must not end the scan.
	ws, _ := newTestWorkspace(t, map[string]string{
		"/proj/lang/a.txt":   "x",
		"/proj/lang/en.json": `{"k": "v"}`,
		"/proj/lang/ko.json": `{}`,
	})

	snap, err := ws.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ko"}, snap.Locales)
}

func TestLoadWithoutBackup(t *testing.T) {
	ws, _ := newTestWorkspace(t, map[string]string{
		"/proj/lang/en.json": `{"k": "v"}`,
	})

	snap, err := ws.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.HasBackup)
	require.NotNil(t, snap.Backup)
	assert.Equal(t, 0, snap.Backup.Len())
	assert.Empty(t, snap.Locales)
}

func TestLoadMissingDefault(t *testing.T) {
	ws, _ := newTestWorkspace(t, map[string]string{
		"/proj/lang/ko.json": `{}`,
	})

	_, err := ws.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsMissingDefault(err))
	assert.Contains(t, err.Error(), "en.json")
}

func TestLoadMissingCompiledRoot(t *testing.T) {
	ws, err := New(afero.NewMemMapFs(), Layout{
		CompiledRoot: "/nowhere",
		EditableRoot: "/nowhere/editable",
		Conventions:  testConventions,
	})
	require.NoError(t, err)

	_, err = ws.Load(context.Background())
	assert.True(t, errors.IsMissingDefault(err))
}

func TestLoadMalformedFileFailsRun(t *testing.T) {
	ws, _ := newTestWorkspace(t, map[string]string{
		"/proj/lang/en.json":              `{"k": "v"}`,
		"/proj/editable/ko.editable.json": `{"k": 1}`,
	})

	_, err := ws.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsMalformedInput(err))
	assert.Contains(t, err.Error(), "/proj/editable/ko.editable.json")
	assert.Contains(t, err.Error(), `value for key "k" must be a string`)
}

func TestLoadLenientJSON(t *testing.T) {
	files := map[string]string{
		"/proj/lang/en.json": "{\n  // comment\n  \"k\": \"v\",\n}",
	}

	strict, _ := newTestWorkspace(t, files)
	_, err := strict.Load(context.Background())
	assert.True(t, errors.IsMalformedInput(err))

	lenient, _ := newTestWorkspace(t, files, WithLenientJSON(true))
	snap, err := lenient.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Default.Len())
}

func TestLoadCanceled(t *testing.T) {
	ws, _ := newTestWorkspace(t, map[string]string{"/proj/lang/en.json": `{}`})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ws.Load(ctx)
	assert.True(t, errors.IsCanceled(err))
}

func TestLoadLogsIgnoredFiles(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	ws, _ := newTestWorkspace(t, map[string]string{
		"/proj/lang/en.json":        `{}`,
		"/proj/lang/fr.backup.json": `{}`,
		"/proj/lang/b@d.json":       `{}`,
	})
	_, err := ws.Load(ctx)
	require.NoError(t, err)

	tl.AssertContains(t, `"level":"warn"`)
	tl.AssertContains(t, "backups are only kept for the default locale")
	tl.AssertContains(t, "not a valid BCP 47 language tag")
	tl.AssertContains(t, "Loaded lang files")
}

func TestWriteMap(t *testing.T) {
	ws, fs := newTestWorkspace(t, nil)
	ctx := context.Background()
	path := "/proj/editable/nested/ko.editable.json"

	changed, err := ws.WriteMap(ctx, path, translations.FromPairs("b", "2", "a", "1"))
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"b\": \"2\",\n    \"a\": \"1\"\n}", string(data))

	changed, err = ws.WriteMap(ctx, path, translations.FromPairs("b", "2", "a", "1"))
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestWriteMapLeavesIdenticalFileUntouched(t *testing.T) {
	mem := afero.NewMemMapFs()
	path := "/proj/lang/ko.json"
	require.NoError(t, afero.WriteFile(mem, path, []byte("{\n    \"a\": \"1\"\n}"), 0o644))

	// any write on a read-only filesystem fails
	ws, err := New(afero.NewReadOnlyFs(mem), Layout{
		CompiledRoot: "/proj/lang",
		EditableRoot: "/proj/editable",
		Conventions:  testConventions,
	})
	require.NoError(t, err)

	changed, err := ws.WriteMap(context.Background(), path, translations.FromPairs("a", "1"))
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = ws.WriteMap(context.Background(), path, translations.FromPairs("a", "2"))
	require.Error(t, err)
}

func TestWriteRaw(t *testing.T) {
	ws, fs := newTestWorkspace(t, nil)
	path := "/proj/editable/deep/ja.editable.json"

	require.NoError(t, ws.WriteRaw(context.Background(), path, []byte("{}")))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestReadRaw(t *testing.T) {
	ws, _ := newTestWorkspace(t, map[string]string{"/proj/lang/en.json": `{}`})

	data, ok, err := ws.ReadRaw("/proj/lang/en.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", string(data))

	_, ok, err = ws.ReadRaw("/proj/lang/missing.json")
	require.NoError(t, err)
	assert.False(t, ok)
}
