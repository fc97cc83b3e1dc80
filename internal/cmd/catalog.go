package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/archives/internal/catalog"
	appconfig "github.com/Iron-Ham/archives/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the aircraft catalog",
	Long: `Inspect the aircraft catalog shown by the archives.

The built-in catalog is used unless --catalog or catalog.path names a YAML
file. Use 'catalog export' to get a starting point for a custom catalog.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as YAML or JSON",
	Long: `Export the catalog in the catalog file schema.

Examples:
  archives catalog export > catalog.yaml
  archives catalog export --format json --only 'mig-*'`,
	Args: cobra.NoArgs,
	RunE: runCatalogExport,
}

var (
	catalogFile         string
	catalogOnly         string
	catalogShowFormat   string
	catalogExportFormat string
)

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	catalogCmd.PersistentFlags().StringVar(&catalogOnly, "only", "", "Only entries whose ID matches this glob")
	catalogShowCmd.Flags().StringVarP(&catalogShowFormat, "format", "f", "text", "Output format: text, yaml or json")
	catalogExportCmd.Flags().StringVarP(&catalogExportFormat, "format", "f", "yaml", "Output format: yaml or json")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

// selectedCatalog resolves the catalog from the flags, then the config.
func selectedCatalog() (*catalog.Catalog, error) {
	path := catalogFile
	if path == "" {
		path = appconfig.Get().Catalog.Path
	}
	return loadCatalog(path, catalogOnly)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, err := selectedCatalog()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNATO\tYEAR\tBR")
	for _, e := range cat.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Designation, e.Year, e.Profile.BattleRating)
	}
	return w.Flush()
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	cat, err := selectedCatalog()
	if err != nil {
		return err
	}
	entry, err := cat.Lookup(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(catalogShowFormat) {
	case "yaml":
		return yaml.NewEncoder(out).Encode(entry)
	case "json":
		return writeJSON(out, entry)
	case "", "text":
		writeEntry(out, entry)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (use text, yaml or json)", catalogShowFormat)
	}
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cat, err := selectedCatalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(catalogExportFormat) {
	case "", "yaml":
		data, err := cat.Marshal()
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		return writeJSON(out, map[string]any{"version": "1", "entries": cat.Entries()})
	default:
		return fmt.Errorf("unsupported format %q (use yaml or json)", catalogExportFormat)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeEntry prints an entry the way it reads on a card.
func writeEntry(w io.Writer, e catalog.Entry) {
	fmt.Fprintf(w, "%s (%s)\n", e.Name, e.Year)
	fmt.Fprintf(w, "NATO: %s\n\n", e.Designation)
	fmt.Fprintf(w, "%s\n\n", e.Description)

	fmt.Fprintln(w, "Ratings:")
	for _, r := range e.Ratings.List() {
		fmt.Fprintf(w, "  %-14s %3d\n", r.Label, r.Value)
	}

	fmt.Fprintln(w, "\nTechnical specifications:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range e.Specs.Rows() {
		fmt.Fprintf(tw, "  %s\t%s\n", row.Label, row.Value)
	}
	_ = tw.Flush()

	p := e.Profile
	fmt.Fprintf(w, "\nWar Thunder profile (BR %s):\n", p.BattleRating)
	fmt.Fprintf(w, "  Nation: %s\n  Rank: %s\n  Role: %s\n", p.Nation, p.Rank, p.Role)
	writeList(w, "Armament", "•", p.Armament)
	writeList(w, "Advantages", "+", p.Advantages)
	writeList(w, "Disadvantages", "−", p.Disadvantages)
}

func writeList(w io.Writer, title, marker string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "    %s %s\n", marker, item)
	}
}
