// Package sync provides the sync command implementation.
package sync

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/langsync/internal/cmd/application"
)

// NewCommand creates the sync command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile every locale with the default language file",
		Args:  cobra.NoArgs,
		Long: `Sync reconciles each locale's editable file with the current default
file and rewrites the locale's compiled and editable files.

For every key of a locale:
• the same text as the default is kept in the editable file only
• a translation of a default text that changed since the last run is reset
  to the new default text, to be translated again
• a key removed from the default is deleted
• any other translation is kept in both files

Locales without an editable file get one, seeded from the default file and
the locale's compiled translations. When every locale succeeded the default
file is copied to its backup for the next run.`,
		Example: `  langsync sync                                  # Reconcile all locales
  langsync sync --dry-run                        # Show the diffs without writing
  langsync sync --locales ko,ja                  # Reconcile some locales only
  langsync sync --lang-files-path lang --editable-files-path editable
  langsync sync --fail-on-stale                  # Fail when translations were reset`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Execute(cmd.Context(), app, cmd.OutOrStdout())
		},
	}

	addFlags(cmd)

	return cmd
}

// addFlags adds sync-specific flags. Values are read back through the app
// configuration, so each flag can also be set by env or config file.
func addFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "compute changes and print diffs without writing files")
	cmd.Flags().Bool("diff", false, "print unified diffs of the files that change")
	cmd.Flags().Bool("fail-on-stale", false, "exit non-zero when any translation was reset")
	cmd.Flags().StringSlice("locales", nil, "only reconcile these locales (the default backup is kept)")
}
