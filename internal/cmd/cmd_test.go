package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	appconfig "github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/errors"
	"github.com/Iron-Ham/archives/internal/logging"
	"github.com/Iron-Ham/archives/internal/tui/styles"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

// isolate points the config and state directories at temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "archives" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "archives")
	}

	// Compare by Name(), not Use which includes args
	expectedCmds := []string{"show", "catalog", "config", "logs", "themes"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, flag := range []string{"plain", "instant", "only", "tab", "catalog", "theme"} {
		if rootCmd.Flags().Lookup(flag) == nil {
			t.Errorf("root command missing --%s", flag)
		}
		if showCmd.Flags().Lookup(flag) == nil {
			t.Errorf("show command missing --%s", flag)
		}
	}
}

func TestShowPlain(t *testing.T) {
	isolate(t)
	t.Cleanup(func() {
		showPlain, showInstant = false, false
		showOnly, showTab, showWidth = "", "specs", 0
	})

	output, err := executeCommand(rootCmd, "show", "--plain", "--instant", "--only", "mig-21*", "--tab", "profile", "--width", "80")
	if err != nil {
		t.Fatalf("show error = %v\n%s", err, output)
	}
	if !strings.Contains(output, "MiG-21PD") {
		t.Error("output missing the selected entry")
	}
	if strings.Contains(output, "MiG-25BP") {
		t.Error("--only did not filter the catalog")
	}
	if !strings.Contains(output, "ARMAMENT") {
		t.Error("--tab profile did not switch the panels")
	}

	records, err := logging.ReadLogs(appconfig.LogDir())
	if err != nil {
		t.Fatalf("debug log not written: %v", err)
	}
	if len(records) == 0 || records[0].SessionID == "" {
		t.Error("log records carry no session ID")
	}
}

func TestShowRejectsBadTab(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { showTab = "specs" })

	_, err := executeCommand(rootCmd, "show", "--plain", "--tab", "weapons")
	if err == nil {
		t.Fatal("unknown tab accepted")
	}
}

func TestShowWatchNeedsCatalogFile(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { showWatch = false })

	_, err := executeCommand(rootCmd, "show", "--plain", "--instant", "--watch")
	if !errors.IsUserFacing(err) {
		t.Fatalf("error = %v, want a user-facing validation error", err)
	}
	if !strings.Contains(err.Error(), "--watch") {
		t.Errorf("error = %v, want it to name --watch", err)
	}
}

func TestLoadCatalog(t *testing.T) {
	cat, err := loadCatalog("", "mig-25*")
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}
	if cat.Len() != 1 || cat.Entries()[0].ID != "mig-25bp" {
		t.Errorf("filtered entries = %v", cat.Entries())
	}

	if _, err := loadCatalog("", "su-*"); err == nil {
		t.Error("empty filter result should be an error")
	}
	if _, err := loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("missing catalog file should be an error")
	}
}

func TestNewLogger(t *testing.T) {
	isolate(t)
	cfg := appconfig.Default()
	cfg.Logging.Enabled = false

	var warn bytes.Buffer
	logger := newLogger(cfg, "run-1", &warn)
	logger.Info("discarded")
	if _, err := os.Stat(filepath.Join(appconfig.LogDir(), logging.LogFileName)); !os.IsNotExist(err) {
		t.Error("disabled logging created a log file")
	}

	cfg.Logging.Enabled = true
	logger = newLogger(cfg, "run-2", &warn)
	logger.Info("kept")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	records, err := logging.ReadLogs(appconfig.LogDir())
	if err != nil {
		t.Fatalf("ReadLogs() error = %v", err)
	}
	if len(records) != 1 || records[0].SessionID != "run-2" {
		t.Errorf("records = %+v", records)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warning: %s", warn.String())
	}
}

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() {
		styles.SetActiveTheme(styles.ThemeArchive)
		styles.ClearCustomThemes()
	})

	fs := afero.NewMemMapFs()
	theme := []byte("name: Paper\nversion: \"1\"\ncolors:\n  accent: \"#111111\"\n  gold: \"#222222\"\n  text: \"#333333\"\n  muted: \"#444444\"\n")
	if err := afero.WriteFile(fs, "/themes/paper.yaml", theme, 0o644); err != nil {
		t.Fatal(err)
	}

	logger := logging.NopLogger()
	if err := applyTheme(fs, "/themes", "paper", logger); err != nil {
		t.Fatalf("applyTheme(paper) error = %v", err)
	}
	if styles.AccentColor != "#111111" {
		t.Errorf("AccentColor = %v, want custom accent", styles.AccentColor)
	}
	if err := applyTheme(fs, "/themes", "", logger); err != nil {
		t.Fatalf("applyTheme(\"\") error = %v", err)
	}
	if styles.AccentColor != styles.ArchivePalette().Accent {
		t.Error("empty theme name should select the default theme")
	}
	if err := applyTheme(fs, "/themes", "neon", logger); err == nil {
		t.Error("unknown theme accepted")
	}
}

func TestCatalogCommands(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { catalogOnly, catalogShowFormat, catalogExportFormat = "", "text", "yaml" })

	output, err := executeCommand(rootCmd, "catalog", "list")
	if err != nil {
		t.Fatalf("catalog list error = %v", err)
	}
	for _, want := range []string{"ID", "mig-21pd", "Fishbed-G", "mig-25bp"} {
		if !strings.Contains(output, want) {
			t.Errorf("catalog list missing %q:\n%s", want, output)
		}
	}

	output, err = executeCommand(rootCmd, "catalog", "show", "mig-21pd", "--format", "text")
	if err != nil {
		t.Fatalf("catalog show error = %v", err)
	}
	if !strings.Contains(output, "NATO: Fishbed-G") || !strings.Contains(output, "Technical specifications:") {
		t.Errorf("catalog show output:\n%s", output)
	}

	output, err = executeCommand(rootCmd, "catalog", "show", "mig-21pd", "--format", "json")
	if err != nil {
		t.Fatalf("catalog show --format json error = %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(output), &entry); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, output)
	}
	if entry["id"] != "mig-21pd" {
		t.Errorf("id = %v", entry["id"])
	}

	if _, err := executeCommand(rootCmd, "catalog", "show", "yak-38"); err == nil {
		t.Error("unknown entry accepted")
	}

	output, err = executeCommand(rootCmd, "catalog", "export", "--format", "yaml", "--only", "mig-25*")
	if err != nil {
		t.Fatalf("catalog export error = %v", err)
	}
	if !strings.Contains(output, "mig-25bp") || strings.Contains(output, "mig-21pd") {
		t.Errorf("export output:\n%s", output)
	}
}

func TestLogsCommand(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		logsDir, logsAll, logsLevel, logsGrep, logsFormat = "", false, "", "", "text"
	})

	now := time.Now().UTC()
	lines := []map[string]any{
		{"time": now.Add(-2 * time.Minute), "level": "INFO", "msg": "loading started", "session_id": "old", "component": "loading"},
		{"time": now.Add(-time.Minute), "level": "INFO", "msg": "loading started", "session_id": "new", "component": "loading"},
		{"time": now.Add(-30 * time.Second), "level": "WARN", "msg": "custom theme skipped", "session_id": "new", "component": "cmd"},
	}
	var data bytes.Buffer
	for _, l := range lines {
		b, _ := json.Marshal(l)
		data.Write(b)
		data.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(dir, logging.LogFileName), data.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := executeCommand(rootCmd, "logs", "--dir", dir)
	if err != nil {
		t.Fatalf("logs error = %v", err)
	}
	if got := strings.Count(output, "\n"); got != 2 {
		t.Errorf("latest run should show 2 records, got %d:\n%s", got, output)
	}

	output, err = executeCommand(rootCmd, "logs", "--dir", dir, "--all", "--level", "warn")
	if err != nil {
		t.Fatalf("logs --level error = %v", err)
	}
	if !strings.Contains(output, "custom theme skipped") || strings.Contains(output, "loading started") {
		t.Errorf("level filter output:\n%s", output)
	}

	output, err = executeCommand(rootCmd, "logs", "--dir", filepath.Join(dir, "none"))
	if err != nil {
		t.Fatalf("logs on missing dir error = %v", err)
	}
	if !strings.Contains(output, "No logs found") {
		t.Errorf("missing dir output:\n%s", output)
	}
}
