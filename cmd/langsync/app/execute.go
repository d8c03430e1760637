package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/langsync/cmd/langsync/cmd/scan"
	"github.com/agentstation/langsync/cmd/langsync/cmd/sync"
	"github.com/agentstation/langsync/internal/cmd/output"
	"github.com/agentstation/langsync/pkg/constants"
	"github.com/agentstation/langsync/pkg/errors"
)

// Execute runs the langsync CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Keep translation files in step with the default language",
		Version: a.version,
		Long: `langsync reconciles per-language translation files against a default
language file.

Every locale has a compiled file, holding only the keys whose translation
differs from the default text, and an editable working file, holding every
key. A backup of the default file from the previous run tells which default
texts changed: translations of changed texts are reset for retranslation,
keys removed from the default are deleted, and valid translations are kept.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	addGlobalFlags(rootCmd.PersistentFlags())
	addWorkspaceFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate(constants.AppName + " {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// addGlobalFlags adds flags that control output and logging.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.String(keyConfig, "", "config file (default is ./.langsync.yaml or $HOME/.langsync.yaml)")
	flags.BoolP(keyVerbose, "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP(keyQuiet, "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool(keyNoColor, false, "disable colored output")
	flags.StringP(keyFormat, "o", "", "output format: table, json, yaml (default: table on a terminal, json otherwise)")
	flags.String(keyLogLevel, "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
}

// addWorkspaceFlags adds the layout and naming flags shared by every command.
func addWorkspaceFlags(flags *pflag.FlagSet) {
	flags.String(keyBasePath, constants.DefaultBasePath, "directory the other paths are relative to")
	flags.String(keyLangFilesPath, constants.DefaultLangFilesPath, "directory of the default, backup and compiled files")
	flags.String(keyEditableFilesPath, constants.DefaultEditableFilesPath, "directory of the editable files")
	flags.String(keyEndWith, constants.DefaultEndWith, "suffix every locale file name ends with")
	flags.String(keyEditableSuffix, constants.DefaultEditableSuffix, "marker of editable files, placed before the suffix")
	flags.String(keyBackupSuffix, constants.DefaultBackupSuffix, "marker of the default backup file, placed before the suffix")
	flags.String(keyDefaultLanguage, constants.DefaultLanguage, "locale of the default file")
	flags.Bool(keyLenientJSON, false, "accept comments and trailing commas in locale files")
}

// setupCommand is called before any command runs. It applies parsed flags on
// top of env and config file values and rebuilds the logger.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if a.viper != nil {
		if err := a.viper.BindPFlags(cmd.Flags()); err != nil {
			return errors.NewConfigError("flags", "failed to bind flags", err)
		}
		if cmd.Flags().Changed(keyConfig) {
			if err := readConfigFile(a.viper, mustGetString(cmd, keyConfig)); err != nil {
				return err
			}
		}
		a.config = configFromViper(a.viper)
	}

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return errors.NewValidationError(keyFormat, a.config.Format, err.Error())
	}

	if !a.fixedLogger {
		a.rebuildLogger()
	}

	if a.config.ConfigFile != "" {
		a.logger.Debug().Str("file", a.config.ConfigFile).Msg("Using config file")
	}
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(sync.NewCommand(a))
	rootCmd.AddCommand(scan.NewCommand(a))
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", constants.AppName, a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
