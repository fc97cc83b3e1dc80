package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Loading timings match the original page
	if cfg.Loading.IntervalMs != 200 {
		t.Errorf("Loading.IntervalMs = %d, want 200", cfg.Loading.IntervalMs)
	}
	if cfg.Loading.SettleMs != 500 {
		t.Errorf("Loading.SettleMs = %d, want 500", cfg.Loading.SettleMs)
	}
	if cfg.Loading.MinIncrement != 5 || cfg.Loading.MaxIncrement != 20 {
		t.Errorf("Loading increments = [%v, %v), want [5, 20)", cfg.Loading.MinIncrement, cfg.Loading.MaxIncrement)
	}

	if cfg.Reveal.MarginLines != 3 {
		t.Errorf("Reveal.MarginLines = %d, want 3", cfg.Reveal.MarginLines)
	}
	if cfg.Reveal.BarStaggerMs != 100 || cfg.Reveal.BarDurationMs != 1000 {
		t.Errorf("Reveal bar timings = %d/%d, want 100/1000", cfg.Reveal.BarStaggerMs, cfg.Reveal.BarDurationMs)
	}
	if cfg.Tabs.TransitionMs != 300 {
		t.Errorf("Tabs.TransitionMs = %d, want 300", cfg.Tabs.TransitionMs)
	}

	if cfg.Catalog.Path != "" {
		t.Errorf("Catalog.Path = %q, want empty (built-in)", cfg.Catalog.Path)
	}
	if cfg.TUI.Theme != "archive" {
		t.Errorf("TUI.Theme = %q, want archive", cfg.TUI.Theme)
	}
	if !cfg.TUI.Mouse {
		t.Error("TUI.Mouse should be true by default")
	}
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
}

func TestDurations(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"interval", cfg.Loading.Interval(), 200 * time.Millisecond},
		{"settle", cfg.Loading.Settle(), 500 * time.Millisecond},
		{"bar stagger", cfg.Reveal.BarStagger(), 100 * time.Millisecond},
		{"bar duration", cfg.Reveal.BarDuration(), time.Second},
		{"card stagger", cfg.Reveal.CardStagger(), 200 * time.Millisecond},
		{"card duration", cfg.Reveal.CardDuration(), 800 * time.Millisecond},
		{"transition", cfg.Tabs.Transition(), 300 * time.Millisecond},
		{"frame", cfg.TUI.Frame(), 50 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		if got := ConfigDir(); got != "/custom/config/archives" {
			t.Errorf("ConfigDir() = %q, want /custom/config/archives", got)
		}
		if got := ConfigFile(); got != "/custom/config/archives/config.yaml" {
			t.Errorf("ConfigFile() = %q", got)
		}
		if got := ThemesDir(); got != "/custom/config/archives/themes" {
			t.Errorf("ThemesDir() = %q", got)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)

		want := filepath.Join(home, ".config", "archives")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})
}

func TestStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	if got := StateDir(); got != "/var/state/archives" {
		t.Errorf("StateDir() = %q", got)
	}
	if got := LogDir(); got != "/var/state/archives/logs" {
		t.Errorf("LogDir() = %q", got)
	}
}

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Loading.IntervalMs != 200 || cfg.TUI.Theme != "archive" {
			t.Errorf("Load() = %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("loading.interval_ms", 50)
		viper.Set("tui.theme", "phosphor")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Loading.IntervalMs != 50 {
			t.Errorf("Loading.IntervalMs = %d, want 50", cfg.Loading.IntervalMs)
		}
		if cfg.TUI.Theme != "phosphor" {
			t.Errorf("TUI.Theme = %q, want phosphor", cfg.TUI.Theme)
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("loading.min_increment", 0)

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error")
		}

		// Get falls back to defaults
		if cfg := Get(); cfg.Loading.MinIncrement != 5 {
			t.Errorf("Get().Loading.MinIncrement = %v, want 5", cfg.Loading.MinIncrement)
		}
	})
}
