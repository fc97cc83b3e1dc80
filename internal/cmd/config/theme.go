package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	appconfig "github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Manage color themes",
	Long: `Manage color themes for the archives.

Archives ships with built-in themes and loads custom themes from YAML files
in $XDG_CONFIG_HOME/archives/themes/.

Use 'themes list' to see all available themes.
Use 'themes export' to create a template for a custom theme.`,
	Args: cobra.NoArgs,
	RunE: runThemeList,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Export a theme to YAML",
	Long: `Export a theme to YAML format for customization or sharing.

If no output file is specified, the YAML is printed to stdout.

Examples:
  archives themes export archive                   # Print the default theme
  archives themes export phosphor night-ops.yaml   # Save to a file
  archives themes export mono > ~/.config/archives/themes/paper.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show information about a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

// themeFs is the filesystem custom themes are discovered on.
var themeFs = afero.NewOsFs()

func init() {
	themesCmd.AddCommand(themeListCmd)
	themesCmd.AddCommand(themeExportCmd)
	themesCmd.AddCommand(themeInfoCmd)
}

// discoverThemes loads custom themes and writes load failures to w.
func discoverThemes(w io.Writer) []error {
	styles.ClearCustomThemes()
	_, errs := styles.DiscoverCustomThemes(themeFs, appconfig.ThemesDir())
	if len(errs) > 0 {
		fmt.Fprintln(w, "Warning: Some themes failed to load:")
		for _, err := range errs {
			fmt.Fprintf(w, "  - %v\n", err)
		}
		fmt.Fprintln(w)
	}
	return errs
}

// requireTheme fails with a helpful message when name is unknown.
func requireTheme(name string, loadErrs []error) error {
	if styles.IsValidTheme(name) {
		return nil
	}
	for _, err := range loadErrs {
		errStr := err.Error()
		if strings.HasPrefix(errStr, name+".yaml:") || strings.HasPrefix(errStr, name+".yml:") {
			return fmt.Errorf("theme '%s' exists but failed to load: %v\n\nFix the errors in your theme file and try again", name, err)
		}
	}
	return fmt.Errorf("unknown theme: %s\n\nRun 'archives themes list' to see available themes.\nCustom themes should be placed in: %s", name, appconfig.ThemesDir())
}

func runThemeList(cmd *cobra.Command, args []string) error {
	discoverThemes(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	active := appconfig.Get().TUI.Theme

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  %s %s\n", marker(name, active), name)
	}

	// Custom themes
	customNames := styles.CustomThemeNames()
	if len(customNames) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		sort.Strings(customNames)
		for _, name := range customNames {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Author != "" {
				fmt.Fprintf(out, "  %s %s (by %s)\n", marker(name, active), name, theme.Author)
			} else {
				fmt.Fprintf(out, "  %s %s\n", marker(name, active), name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", appconfig.ThemesDir())
	return nil
}

func marker(name, active string) string {
	if name == active {
		return "*"
	}
	return "-"
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if err := requireTheme(themeName, discoverThemes(cmd.ErrOrStderr())); err != nil {
		return err
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	// If output file specified, write to file
	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if err := requireTheme(themeName, discoverThemes(cmd.ErrOrStderr())); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Theme: %s\n\n", themeName)
	if styles.IsBuiltinTheme(themeName) {
		fmt.Fprintln(out, "Type: Built-in")
	} else {
		fmt.Fprintln(out, "Type: Custom")
		if theme := styles.GetCustomTheme(styles.ThemeName(themeName)); theme != nil {
			if theme.Author != "" {
				fmt.Fprintf(out, "Author: %s\n", theme.Author)
			}
			if theme.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", theme.Description)
			}
		}
	}

	palette := styles.GetPalette(styles.ThemeName(themeName))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Colors:")
	fmt.Fprintf(out, "  Accent:   %s\n", palette.Accent)
	fmt.Fprintf(out, "  Gold:     %s\n", palette.Gold)
	fmt.Fprintf(out, "  Text:     %s\n", palette.Text)
	fmt.Fprintf(out, "  Muted:    %s\n", palette.Muted)
	fmt.Fprintf(out, "  Dim:      %s\n", palette.Dim)
	fmt.Fprintf(out, "  Surface:  %s\n", palette.Surface)
	fmt.Fprintf(out, "  Border:   %s\n", palette.Border)
	fmt.Fprintf(out, "  Positive: %s\n", palette.Positive)
	fmt.Fprintf(out, "  Negative: %s\n", palette.Negative)
	return nil
}
