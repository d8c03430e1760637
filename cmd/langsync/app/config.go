package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/langsync/pkg/classify"
	"github.com/agentstation/langsync/pkg/constants"
	"github.com/agentstation/langsync/pkg/errors"
	"github.com/agentstation/langsync/pkg/workspace"
)

// Config keys. They double as flag names, config file keys and, upper-cased
// with the LANGSYNC_ prefix, environment variable names.
const (
	keyConfig            = "config"
	keyVerbose           = "verbose"
	keyQuiet             = "quiet"
	keyNoColor           = "no-color"
	keyFormat            = "format"
	keyLogLevel          = "log-level"
	keyBasePath          = "base-path"
	keyLangFilesPath     = "lang-files-path"
	keyEditableFilesPath = "editable-files-path"
	keyEndWith           = "end-with"
	keyEditableSuffix    = "editable-suffix"
	keyBackupSuffix      = "backup-suffix"
	keyDefaultLanguage   = "default-language"
	keyLenientJSON       = "lenient-json"
	keyDryRun            = "dry-run"
	keyDiff              = "diff"
	keyFailOnStale       = "fail-on-stale"
	keyLocales           = "locales"
)

// actionInputs are the keys a GitHub Action passes as INPUT_<KEY> variables.
var actionInputs = []string{
	keyBasePath,
	keyLangFilesPath,
	keyEditableFilesPath,
	keyEndWith,
	keyEditableSuffix,
	keyBackupSuffix,
	keyDefaultLanguage,
	keyLenientJSON,
	keyDryRun,
	keyFailOnStale,
	keyLocales,
}

// Config holds the application configuration loaded from flags, environment
// variables, .env files and the config file.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Workspace layout
	BasePath          string
	LangFilesPath     string
	EditableFilesPath string
	EndWith           string
	EditableSuffix    string
	BackupSuffix      string
	DefaultLanguage   string
	LenientJSON       bool

	// Sync behavior
	DryRun      bool
	Diff        bool
	FailOnStale bool
	Locales     []string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// newViper creates a viper instance with defaults and environment bindings.
// Sources, highest precedence first:
//  1. Command-line flags (bound after cobra parses them)
//  2. LANGSYNC_* environment variables
//  3. INPUT_* environment variables set by GitHub Actions
//  4. .env.local, then .env
//  5. Config file (.langsync.yaml in the working or home directory)
//  6. Defaults
func newViper() (*viper.Viper, error) {
	loadEnvFiles()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, errors.NewConfigError("env", "failed to bind environment variables", err)
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBasePath, constants.DefaultBasePath)
	v.SetDefault(keyLangFilesPath, constants.DefaultLangFilesPath)
	v.SetDefault(keyEditableFilesPath, constants.DefaultEditableFilesPath)
	v.SetDefault(keyEndWith, constants.DefaultEndWith)
	v.SetDefault(keyEditableSuffix, constants.DefaultEditableSuffix)
	v.SetDefault(keyBackupSuffix, constants.DefaultBackupSuffix)
	v.SetDefault(keyDefaultLanguage, constants.DefaultLanguage)
	v.SetDefault("log-format", "auto")
	v.SetDefault("log-output", "stderr")
}

// bindEnv binds every action input to LANGSYNC_<KEY> first and
// INPUT_<KEY> second, so the prefixed variable wins when both are set.
func bindEnv(v *viper.Viper) error {
	for _, key := range actionInputs {
		if err := v.BindEnv(key, envName(key), constants.ActionsInputPrefix+strings.ToUpper(key)); err != nil {
			return err
		}
	}

	// Logging also honors the unprefixed names used by the logging package.
	for key, fallback := range map[string]string{
		keyLogLevel:  "LOG_LEVEL",
		"log-format": "LOG_FORMAT",
		"log-output": "LOG_OUTPUT",
	} {
		if err := v.BindEnv(key, envName(key), fallback); err != nil {
			return err
		}
	}
	return nil
}

func envName(key string) string {
	return constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// readConfigFile reads an explicit config file, or searches for
// .langsync.yaml. A missing searched file is not an error.
func readConfigFile(v *viper.Viper, explicit string) error {
	if explicit == "" {
		explicit = v.GetString(keyConfig)
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("." + constants.AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "failed to read config file", err)
	}
	return nil
}

// configFromViper builds a Config from the merged viper state.
func configFromViper(v *viper.Viper) *Config {
	return &Config{
		Verbose: v.GetBool(keyVerbose),
		Quiet:   v.GetBool(keyQuiet),
		NoColor: v.GetBool(keyNoColor),
		Format:  v.GetString(keyFormat),

		ConfigFile: v.ConfigFileUsed(),

		BasePath:          v.GetString(keyBasePath),
		LangFilesPath:     v.GetString(keyLangFilesPath),
		EditableFilesPath: v.GetString(keyEditableFilesPath),
		EndWith:           v.GetString(keyEndWith),
		EditableSuffix:    v.GetString(keyEditableSuffix),
		BackupSuffix:      v.GetString(keyBackupSuffix),
		DefaultLanguage:   v.GetString(keyDefaultLanguage),
		LenientJSON:       v.GetBool(keyLenientJSON),

		DryRun:      v.GetBool(keyDryRun),
		Diff:        v.GetBool(keyDiff),
		FailOnStale: v.GetBool(keyFailOnStale),
		Locales:     stringList(v.Get(keyLocales)),

		LogLevel:  v.GetString(keyLogLevel),
		LogFormat: v.GetString("log-format"),
		LogOutput: v.GetString("log-output"),
	}
}

// Conventions returns the file naming rules.
func (c *Config) Conventions() classify.Conventions {
	return classify.Conventions{
		Suffix:          c.EndWith,
		EditableMarker:  c.EditableSuffix,
		BackupMarker:    c.BackupSuffix,
		DefaultLanguage: c.DefaultLanguage,
	}
}

// Layout returns the workspace layout. Both roots are relative to the base
// path.
func (c *Config) Layout() workspace.Layout {
	return workspace.Layout{
		CompiledRoot: filepath.Join(c.BasePath, c.LangFilesPath),
		EditableRoot: filepath.Join(c.BasePath, c.EditableFilesPath),
		Conventions:  c.Conventions(),
	}
}

// Validate checks the naming rules.
func (c *Config) Validate() error {
	if err := c.Conventions().Validate(); err != nil {
		return errors.NewConfigError("config", "invalid naming conventions", err)
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides variables that are already set, so .env.local is loaded first
// to take precedence over .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// stringList accepts a list from a flag or config file, or a comma or space
// separated string from the environment.
func stringList(value any) []string {
	var raw []string
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		raw = strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t'
		})
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	}

	var out []string
	for _, item := range raw {
		// flag values arrive as one element "a,b" when quoted
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
