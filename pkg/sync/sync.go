package sync

import (
	"bytes"
	"context"

	"github.com/agentstation/langsync/pkg/differ"
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/logging"
	"github.com/agentstation/langsync/pkg/reconcile"
	"github.com/agentstation/langsync/pkg/translations"
	"github.com/agentstation/langsync/pkg/workspace"
)

// Run reconciles every locale of ws in discovery order and writes the
// compiled and editable files of each. The default locale snapshot is
// written last, only after every locale succeeded.
//
// A failure stops the run. Locales finished before the failure keep their
// written files, and the partial result is returned with the error.
func Run(ctx context.Context, ws *workspace.Workspace, opts ...Option) (*Result, error) {
	options := Defaults().Apply(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	ctx = logging.WithOperation(ctx, "sync")
	logger := logging.FromContext(ctx)

	snap, err := ws.Load(ctx)
	if err != nil {
		return nil, err
	}

	locales, err := options.selectLocales(snap.Locales, ws.Layout().Conventions)
	if err != nil {
		return nil, err
	}

	result := &Result{
		DryRun: options.DryRun,
		Subset: options.Subset(),
	}

	for _, locale := range locales {
		if err := ctx.Err(); err != nil {
			return result, errors.WrapCanceled("sync", err)
		}

		lr, err := syncLocale(logging.WithLocale(ctx, locale), ws, snap, locale, options)
		if err != nil {
			return result, err
		}
		result.Locales = append(result.Locales, lr)
	}

	if options.Subset() {
		logger.Info().Strs("locales", locales).Msg("Partial run, keeping the previous default backup")
	} else {
		if err := ctx.Err(); err != nil {
			return result, errors.WrapCanceled("sync", err)
		}
		backup, err := prepareFile(ws, ws.BackupPath(), snap.Default, options)
		if err != nil {
			return result, err
		}
		if err := commitFiles(ctx, ws, options, backup); err != nil {
			return result, err
		}
		result.Backup = &backup.FileResult
		logger.Info().Str("file", backup.Path).Bool("changed", backup.Changed).Msg("Backed up default strings")
	}

	logger.Info().
		Int("locales", len(result.Locales)).
		Int("changed_files", result.ChangedFiles()).
		Bool("dry_run", options.DryRun).
		Msg("Sync complete")

	if options.FailOnStale {
		if stale := result.StaleLocales(); len(stale) > 0 {
			return result, &errors.StaleTranslationsError{Locales: stale, Keys: result.Totals().Stale}
		}
	}
	return result, nil
}

func syncLocale(ctx context.Context, ws *workspace.Workspace, snap *workspace.Snapshot, locale string, options *Options) (*LocaleResult, error) {
	logger := logging.FromContext(ctx)
	logger.Debug().Msg("Updating locale")

	rec, err := reconcile.Reconcile(reconcile.Input{
		Locale:   locale,
		Default:  snap.Default,
		Backup:   snap.Backup,
		Compiled: snap.Compiled[locale],
		Editable: snap.Editable[locale],
	})
	if err != nil {
		return nil, err
	}
	if rec.Bootstrapped {
		logger.Info().Msg("Editable file did not exist, creating it from the default strings")
	}

	lr := &LocaleResult{
		Locale:       locale,
		Bootstrapped: rec.Bootstrapped,
		Stats:        rec.Stats(),
		StaleKeys:    rec.StaleKeys(),
	}

	// both files are rendered before either is written
	compiled, err := prepareFile(ws, ws.CompiledPath(locale), rec.Compiled, options)
	if err != nil {
		return nil, err
	}
	editable, err := prepareFile(ws, ws.EditablePath(locale), rec.Editable, options)
	if err != nil {
		return nil, err
	}
	if err := commitFiles(ctx, ws, options, compiled, editable); err != nil {
		return nil, err
	}
	lr.Compiled = compiled.FileResult
	lr.Editable = editable.FileResult

	event := logger.Info()
	if len(lr.StaleKeys) > 0 {
		event = logger.Warn().Str("file", lr.Editable.Path).Strs("stale_keys", lr.StaleKeys)
	}
	event.
		Int("overrides", lr.Stats.Override).
		Int("stale", lr.Stats.Stale).
		Int("deleted", lr.Stats.Deleted).
		Int("orphans", lr.Stats.Orphan).
		Msg("Updated locale")
	return lr, nil
}

// pendingFile is a rendered file waiting to be written.
type pendingFile struct {
	FileResult
	data []byte
}

// prepareFile renders m for path, records whether the content changes and
// collects its diff. Nothing is written.
func prepareFile(ws *workspace.Workspace, path string, m *translations.Map, options *Options) (*pendingFile, error) {
	pf := &pendingFile{FileResult: FileResult{Path: path}}

	data, err := workspace.Render(m)
	if err != nil {
		return nil, errors.NewIOError("encode", path, err)
	}
	old, exists, err := ws.ReadRaw(path)
	if err != nil {
		return nil, err
	}
	pf.data = data
	pf.Existed = exists
	pf.Changed = !exists || !bytes.Equal(old, data)

	if options.Diff && pf.Changed {
		if exists {
			pf.Diff = differ.Unified(path, old, data, options.DiffContext)
		} else {
			pf.Diff = differ.Added(path, data)
		}
	}
	return pf, nil
}

// commitFiles writes the changed files in order. Unchanged files and dry
// runs write nothing.
func commitFiles(ctx context.Context, ws *workspace.Workspace, options *Options, files ...*pendingFile) error {
	logger := logging.FromContext(ctx)
	for _, pf := range files {
		switch {
		case options.DryRun:
			logger.Debug().Str("file", pf.Path).Bool("changed", pf.Changed).Msg("Dry run, not writing")
		case !pf.Changed:
			logger.Debug().Str("file", pf.Path).Msg("Locale file unchanged, not writing")
		default:
			if err := ws.WriteRaw(ctx, pf.Path, pf.data); err != nil {
				return err
			}
		}
	}
	return nil
}
