package sync

import (
	"context"
	"io"

	"github.com/agentstation/langsync/internal/cmd/application"
	"github.com/agentstation/langsync/internal/cmd/output"
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/logging"
	lsync "github.com/agentstation/langsync/pkg/sync"
)

// Execute runs a sync and prints its report to w. The report is printed
// even when the run fails on stale translations.
func Execute(ctx context.Context, app application.Application, w io.Writer) error {
	ctx = logging.WithLogger(ctx, app.Logger())

	ws, err := app.Workspace()
	if err != nil {
		return err
	}

	result, runErr := lsync.Run(ctx, ws, app.SyncOptions()...)
	if runErr != nil && !errors.Is(runErr, errors.ErrStaleTranslations) {
		return runErr
	}

	if err := writeReport(w, result, output.DetectFormat(app.OutputFormat())); err != nil {
		return err
	}
	return runErr
}

func writeReport(w io.Writer, result *lsync.Result, format output.Format) error {
	if format != output.FormatTable {
		return output.NewFormatter(format).Format(w, result)
	}

	if err := output.WriteDiffs(w, result); err != nil {
		return err
	}
	if len(result.Locales) > 0 {
		if err := output.NewFormatter(format).Format(w, output.SyncTable(result)); err != nil {
			return err
		}
	}
	return output.WriteSummary(w, result)
}
