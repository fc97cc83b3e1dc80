// Package config provides CLI commands for managing archives configuration
// and color themes.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify archives configuration",
	Long: `View or modify archives configuration.

Use 'config show' to display the effective configuration.
Use subcommands to modify settings or create a config file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  archives config set tui.theme phosphor
  archives config set loading.interval_ms 100
  archives config set logging.level debug

Valid keys:
  loading.interval_ms      - Progress tick period in milliseconds
  loading.settle_ms        - Pause at 100% before the dossier opens
  loading.min_increment    - Smallest progress step per tick
  loading.max_increment    - Largest progress step per tick (exclusive)
  reveal.margin_lines      - Lines an element must be inside the viewport to reveal
  reveal.bar_stagger_ms    - Delay between stat bars
  reveal.bar_duration_ms   - Stat bar fill duration
  reveal.card_stagger_ms   - Delay between card entrances
  reveal.card_duration_ms  - Card entrance duration
  tabs.transition_ms       - Length of each half of a tab switch
  catalog.path             - Catalog YAML file (empty for built-in)
  catalog.assets_dir       - Directory image references resolve against
  tui.theme                - Color theme
  tui.frame_ms             - Animation frame period
  tui.mouse                - Mouse wheel scrolling (true/false)
  logging.enabled          - Write the debug log (true/false)
  logging.level            - debug, info, warn or error
  logging.max_size_mb      - Log size before rotation
  logging.max_backups      - Rotated logs kept
  logging.compress         - Gzip rotated logs (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at $XDG_CONFIG_HOME/archives/config.yaml with all available options.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for errors",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
}

// Register adds the config and themes commands to the given parent command.
// This is the main entry point for integrating the config subpackage with
// the root command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
	parent.AddCommand(themesCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "# Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintln(out, "# Config file: (none - using defaults)")
	}

	settings := viper.AllSettings()
	delete(settings, "config")
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// keyTypes lists the settable keys and how their values are parsed.
var keyTypes = map[string]string{
	"loading.interval_ms":     "int",
	"loading.settle_ms":       "int",
	"loading.min_increment":   "float",
	"loading.max_increment":   "float",
	"reveal.margin_lines":     "int",
	"reveal.bar_stagger_ms":   "int",
	"reveal.bar_duration_ms":  "int",
	"reveal.card_stagger_ms":  "int",
	"reveal.card_duration_ms": "int",
	"tabs.transition_ms":      "int",
	"catalog.path":            "string",
	"catalog.assets_dir":      "string",
	"tui.theme":               "theme",
	"tui.frame_ms":            "int",
	"tui.mouse":               "bool",
	"logging.enabled":         "bool",
	"logging.level":           "level",
	"logging.max_size_mb":     "int",
	"logging.max_backups":     "int",
	"logging.compress":        "bool",
}

// parseValue converts value to the type registered for key.
func parseValue(key, value string) (any, error) {
	keyType, ok := keyTypes[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'archives config set --help' to see valid keys", key)
	}

	switch keyType {
	case "theme":
		_, _ = styles.DiscoverCustomThemes(afero.NewOsFs(), appconfig.ThemesDir())
		if !styles.IsValidTheme(value) {
			return nil, fmt.Errorf("invalid theme: %s\nValid options: %s",
				value, strings.Join(styles.ValidThemes(), ", "))
		}
		return value, nil
	case "level":
		if !slices.Contains(appconfig.ValidLogLevels(), value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		return value, nil
	case "bool":
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return value == "true", nil
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		return intVal, nil
	case "float":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected number", key)
		}
		return f, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	viper.Set(key, typedValue)

	// The new value must leave the configuration valid as a whole
	var cfg appconfig.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to apply %s: %w", key, err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return appconfig.ValidationErrors(errs)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(appconfig.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

// configTemplate is written by 'config init'. Values match config.Default.
const configTemplate = `# Archives Configuration

# Simulated retrieval sequence
loading:
  # Progress tick period in milliseconds
  interval_ms: 200
  # Pause at 100%% before the dossier opens
  settle_ms: 500
  # Each tick adds a random step in [min_increment, max_increment)
  min_increment: 5
  max_increment: 20

# Scroll-triggered reveals
reveal:
  # Lines an element must be inside the viewport before it reveals
  margin_lines: 3
  bar_stagger_ms: 100
  bar_duration_ms: 1000
  card_stagger_ms: 200
  card_duration_ms: 800

# Card tabs
tabs:
  # Length of each half (fade out, fade in) of a tab switch
  transition_ms: 300

# Content
catalog:
  # Alternate catalog file; empty uses the built-in catalog
  path: ""
  # Directory image references are resolved against
  assets_dir: assets

# TUI (terminal user interface) settings
tui:
  # archive, phosphor, blueprint, mono or a custom theme name
  theme: archive
  frame_ms: 50
  mouse: true

# Debug log written to %s
logging:
  enabled: true
  level: info
  max_size_mb: 5
  max_backups: 3
  compress: false
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !configInitForce {
		return fmt.Errorf("config file already exists at %s\nUse 'archives config set' to modify values, or --force to overwrite", configFile)
	}

	if err := os.MkdirAll(appconfig.ConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(configTemplate, appconfig.LogDir())
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: ARCHIVES_* (e.g., ARCHIVES_TUI_THEME)")
	fmt.Fprintf(out, "Logs: %s\n", appconfig.LogDir())
	fmt.Fprintf(out, "Themes: %s\n", appconfig.ThemesDir())
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	var cfg appconfig.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	return reportValidation(cmd.OutOrStdout(), &cfg)
}

// reportValidation prints every problem in cfg and fails if there are any.
func reportValidation(out io.Writer, cfg *appconfig.Config) error {
	errs := cfg.Validate()
	if len(errs) == 0 {
		fmt.Fprintln(out, "Configuration is valid.")
		return nil
	}
	for _, e := range errs {
		fmt.Fprintf(out, "  - %s\n", e.Error())
	}
	return fmt.Errorf("configuration has %d error(s)", len(errs))
}
