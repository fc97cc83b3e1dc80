package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/archives/internal/assets"
	"github.com/Iron-Ham/archives/internal/catalog"
	appconfig "github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/errors"
	"github.com/Iron-Ham/archives/internal/logging"
	"github.com/Iron-Ham/archives/internal/plain"
	"github.com/Iron-Ham/archives/internal/tabs"
	"github.com/Iron-Ham/archives/internal/tui"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open the archives",
	Long: `Play the retrieval sequence and open the aircraft dossier.

When stdout is not a terminal, or with --plain, the loading progress is
reported on stderr and the fully revealed dossier is printed to stdout.

Examples:
  # Interactive dossier
  archives show

  # Skip the retrieval delay and show only MiG aircraft
  archives show --instant --only 'mig-*'

  # Print every card on its War Thunder tab
  archives show --plain --tab profile

  # Edit a custom catalog and watch the dossier follow
  archives show --catalog my-aircraft.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var (
	showPlain   bool
	showInstant bool
	showOnly    string
	showTab     string
	showCatalog string
	showTheme   string
	showWidth   int
	showWatch   bool
)

func init() {
	addShowFlags(showCmd)
	rootCmd.AddCommand(showCmd)
}

// addShowFlags registers the show flags on c. The root command carries
// them too, since it runs show by default.
func addShowFlags(c *cobra.Command) {
	c.Flags().BoolVar(&showPlain, "plain", false, "Print the dossier instead of opening the terminal UI")
	c.Flags().BoolVar(&showInstant, "instant", false, "Skip the retrieval sequence delays")
	c.Flags().StringVar(&showOnly, "only", "", "Show only entries whose ID matches this glob (e.g. 'mig-*')")
	c.Flags().StringVar(&showTab, "tab", "specs", "Initial tab of every card: specs or profile")
	c.Flags().StringVar(&showCatalog, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	c.Flags().StringVar(&showTheme, "theme", "", "Color theme (overrides tui.theme)")
	c.Flags().IntVar(&showWidth, "width", 0, "Plain output width (default: terminal width or 80)")
	c.Flags().BoolVar(&showWatch, "watch", false, "Reload the dossier when the catalog file changes")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if showCatalog != "" {
		cfg.Catalog.Path = showCatalog
	}
	if showTheme != "" {
		cfg.TUI.Theme = showTheme
	}

	tab, err := tabs.ParseTab(showTab)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg.Catalog.Path, showOnly)
	if err != nil {
		return err
	}
	if showWatch && cfg.Catalog.Path == "" {
		return errors.NewValidationError("--watch needs a catalog file (--catalog or catalog.path)").WithField("watch")
	}

	sessionID := uuid.NewString()
	logger := newLogger(cfg, sessionID, cmd.ErrOrStderr())
	defer func() { _ = logger.Close() }()

	if err := applyTheme(afero.NewOsFs(), appconfig.ThemesDir(), cfg.TUI.Theme, logger); err != nil {
		return err
	}

	logger.Info("archives opened",
		"catalog", cat.Source(),
		"entries", cat.Len(),
		"tab", tab.String(),
		"instant", showInstant)

	images := assets.NewOSResolver(cfg.Catalog.AssetsDir, logger)
	stdout := int(os.Stdout.Fd())

	if showPlain || !term.IsTerminal(stdout) {
		width := showWidth
		if width <= 0 {
			if w, _, err := term.GetSize(stdout); err == nil {
				width = w
			}
		}
		var progress io.Writer
		if term.IsTerminal(int(os.Stderr.Fd())) {
			progress = cmd.ErrOrStderr()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return plain.Run(ctx, plain.Options{
			Config:   cfg,
			Entries:  cat.Entries(),
			Images:   images,
			Logger:   logger,
			Tab:      tab,
			Width:    width,
			Instant:  showInstant,
			Out:      cmd.OutOrStdout(),
			Progress: progress,
		})
	}

	opts := tui.Options{
		Config:  cfg,
		Entries: cat.Entries(),
		Images:  images,
		Logger:  logger,
		Tab:     tab,
		Instant: showInstant,
	}
	if showWatch {
		opts.WatchPath = cfg.Catalog.Path
		opts.Only = showOnly
	}
	app := tui.New(opts)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// loadCatalog returns the built-in catalog, or the one at path, narrowed
// to the entries matching the only glob.
func loadCatalog(path, only string) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if path != "" {
		var err error
		cat, err = catalog.Load(path)
		if err != nil {
			return nil, err
		}
	}
	return cat.Filter(only)
}

// newLogger opens the debug log for a run. A log that cannot be opened is
// reported on warn and replaced by a no-op logger.
func newLogger(cfg *appconfig.Config, sessionID string, warn io.Writer) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(appconfig.LogDir(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		fmt.Fprintf(warn, "Warning: debug logging disabled: %v\n", err)
		return logging.NopLogger()
	}
	return logger.WithSession(sessionID)
}

// applyTheme loads the custom themes in dir and activates name.
func applyTheme(fs afero.Fs, dir, name string, logger *logging.Logger) error {
	loaded, errs := styles.DiscoverCustomThemes(fs, dir)
	for _, err := range errs {
		logger.Warn("custom theme skipped", "error", err)
	}
	if len(loaded) > 0 {
		logger.Debug("custom themes loaded", "themes", strings.Join(loaded, ","))
	}

	if name == "" {
		name = string(styles.ThemeArchive)
	}
	if !styles.IsValidTheme(name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ValidThemes(), ", "))
	}
	styles.SetActiveTheme(styles.ThemeName(name))
	return nil
}
