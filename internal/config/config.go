package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete archives configuration
type Config struct {
	Loading LoadingConfig `mapstructure:"loading"`
	Reveal  RevealConfig  `mapstructure:"reveal"`
	Tabs    TabsConfig    `mapstructure:"tabs"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MinIncrementFloor is the smallest accepted per-tick progress increment.
// It bounds a loading sequence to 10000 ticks.
const MinIncrementFloor = 0.01

// LoadingConfig controls the simulated loading sequence
type LoadingConfig struct {
	// IntervalMs is the tick period of the progress simulation (default: 200)
	IntervalMs int `mapstructure:"interval_ms"`
	// SettleMs is the pause between reaching 100% and completion (default: 500)
	SettleMs int `mapstructure:"settle_ms"`
	// MinIncrement and MaxIncrement bound the per-tick progress increment,
	// drawn uniformly from [MinIncrement, MaxIncrement) (default: 5, 20)
	MinIncrement float64 `mapstructure:"min_increment"`
	MaxIncrement float64 `mapstructure:"max_increment"`
}

// RevealConfig controls viewport-triggered reveals and their animations
type RevealConfig struct {
	// MarginLines shrinks the viewport on both edges before intersection
	// tests, so elements reveal only once they are well inside (default: 3)
	MarginLines int `mapstructure:"margin_lines"`
	// BarStaggerMs delays each stat bar by its index times this value (default: 100)
	BarStaggerMs int `mapstructure:"bar_stagger_ms"`
	// BarDurationMs is the fill duration of a stat bar (default: 1000)
	BarDurationMs int `mapstructure:"bar_duration_ms"`
	// CardStaggerMs delays each card's entrance by its index times this value (default: 200)
	CardStaggerMs int `mapstructure:"card_stagger_ms"`
	// CardDurationMs is the entrance duration of a card (default: 800)
	CardDurationMs int `mapstructure:"card_duration_ms"`
}

// TabsConfig controls the per-card tab transition
type TabsConfig struct {
	// TransitionMs is the length of each half (exit, enter) of a tab switch (default: 300)
	TransitionMs int `mapstructure:"transition_ms"`
}

// CatalogConfig selects the content shown
type CatalogConfig struct {
	// Path is an alternate catalog YAML file. Empty uses the built-in catalog.
	Path string `mapstructure:"path"`
	// AssetsDir is the directory image references are resolved against (default: "assets")
	AssetsDir string `mapstructure:"assets_dir"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme (default: "archive")
	Theme string `mapstructure:"theme"`
	// FrameMs is the animation frame period (default: 50)
	FrameMs int `mapstructure:"frame_ms"`
	// Mouse enables mouse-wheel scrolling (default: true)
	Mouse bool `mapstructure:"mouse"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Loading: LoadingConfig{
			IntervalMs:   200,
			SettleMs:     500,
			MinIncrement: 5,
			MaxIncrement: 20,
		},
		Reveal: RevealConfig{
			MarginLines:    3,
			BarStaggerMs:   100,
			BarDurationMs:  1000,
			CardStaggerMs:  200,
			CardDurationMs: 800,
		},
		Tabs: TabsConfig{
			TransitionMs: 300,
		},
		Catalog: CatalogConfig{
			Path:      "",
			AssetsDir: "assets",
		},
		TUI: TUIConfig{
			Theme:   "archive",
			FrameMs: 50,
			Mouse:   true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// Interval returns the loading tick period
func (c *LoadingConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Settle returns the pause between 100% and completion
func (c *LoadingConfig) Settle() time.Duration {
	return time.Duration(c.SettleMs) * time.Millisecond
}

// BarStagger returns the per-index stat bar delay
func (c *RevealConfig) BarStagger() time.Duration {
	return time.Duration(c.BarStaggerMs) * time.Millisecond
}

// BarDuration returns the stat bar fill duration
func (c *RevealConfig) BarDuration() time.Duration {
	return time.Duration(c.BarDurationMs) * time.Millisecond
}

// CardStagger returns the per-index card entrance delay
func (c *RevealConfig) CardStagger() time.Duration {
	return time.Duration(c.CardStaggerMs) * time.Millisecond
}

// CardDuration returns the card entrance duration
func (c *RevealConfig) CardDuration() time.Duration {
	return time.Duration(c.CardDurationMs) * time.Millisecond
}

// Transition returns the duration of one half of a tab switch
func (c *TabsConfig) Transition() time.Duration {
	return time.Duration(c.TransitionMs) * time.Millisecond
}

// Frame returns the animation frame period
func (c *TUIConfig) Frame() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Loading defaults
	viper.SetDefault("loading.interval_ms", defaults.Loading.IntervalMs)
	viper.SetDefault("loading.settle_ms", defaults.Loading.SettleMs)
	viper.SetDefault("loading.min_increment", defaults.Loading.MinIncrement)
	viper.SetDefault("loading.max_increment", defaults.Loading.MaxIncrement)

	// Reveal defaults
	viper.SetDefault("reveal.margin_lines", defaults.Reveal.MarginLines)
	viper.SetDefault("reveal.bar_stagger_ms", defaults.Reveal.BarStaggerMs)
	viper.SetDefault("reveal.bar_duration_ms", defaults.Reveal.BarDurationMs)
	viper.SetDefault("reveal.card_stagger_ms", defaults.Reveal.CardStaggerMs)
	viper.SetDefault("reveal.card_duration_ms", defaults.Reveal.CardDurationMs)

	// Tabs defaults
	viper.SetDefault("tabs.transition_ms", defaults.Tabs.TransitionMs)

	// Catalog defaults
	viper.SetDefault("catalog.path", defaults.Catalog.Path)
	viper.SetDefault("catalog.assets_dir", defaults.Catalog.AssetsDir)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.frame_ms", defaults.TUI.FrameMs)
	viper.SetDefault("tui.mouse", defaults.TUI.Mouse)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults if the
// loaded configuration is invalid
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "archives")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".archives"
	}
	return filepath.Join(home, ".config", "archives")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory holding logs and other run state
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "archives")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".archives", "state")
	}
	return filepath.Join(home, ".local", "state", "archives")
}

// LogDir returns the directory the debug log is written to
func LogDir() string {
	return filepath.Join(StateDir(), "logs")
}

// ThemesDir returns the directory custom theme files are loaded from
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}
