package cmd

import (
	"strings"

	"github.com/Iron-Ham/archives/internal/cmd/config"
	appconfig "github.com/Iron-Ham/archives/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "archives",
	Short: "Cold War aviation archives in the terminal",
	Long: `Archives presents a small catalog of Soviet jet interceptors as an
animated terminal dossier: a simulated retrieval sequence, then a scrolling
page of aircraft cards with stat bars, specification sheets and secondary
profiles that reveal themselves as they scroll into view.

Running archives without a subcommand is the same as 'archives show'.`,
	Args:          cobra.NoArgs,
	RunE:          runShow,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/archives/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	addShowFlags(rootCmd)
	config.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("ARCHIVES")
	// Replace dots with underscores for nested keys in env vars
	// e.g., ARCHIVES_TUI_THEME for tui.theme
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
