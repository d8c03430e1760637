// Package scan provides the scan command implementation.
package scan

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/langsync/internal/cmd/application"
	"github.com/agentstation/langsync/internal/cmd/output"
	"github.com/agentstation/langsync/pkg/logging"
)

// NewCommand creates the scan command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List locale files and how sync would treat them",
		Args:  cobra.NoArgs,
		Long: `Scan lists every file of the compiled and editable directories that
ends with the configured suffix, with the role sync gives it: default,
backup, compiled, editable or ignored. Nothing is read or written.`,
		Example: `  langsync scan
  langsync scan -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "scan")

			ws, err := app.Workspace()
			if err != nil {
				return err
			}

			decisions, err := ws.Scan(ctx)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			if format == output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.ScanTable(decisions))
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), decisions)
		},
	}
}
