package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	appconfig "github.com/Iron-Ham/archives/internal/config"
	"github.com/Iron-Ham/archives/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View debug logs",
	Long: `View and filter the JSON debug log written by archives runs.

By default, shows the last 50 records of the most recent run. Use flags to
filter and format the output.

Examples:
  # Show last 50 records from the most recent run
  archives logs

  # Show everything from every run
  archives logs --all -n 0

  # Filter by log level
  archives logs --level warn

  # Show records from the last hour mentioning a phase change
  archives logs --since 1h --grep "phase"

  # Only the loading engine, as JSON
  archives logs --component loading --format json`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsSessionID string
	logsAll       bool
	logsTail      int
	logsLevel     string
	logsSince     string
	logsGrep      string
	logsComponent string
	logsFormat    string
	logsDir       string
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringVarP(&logsSessionID, "session", "s", "", "Run session ID (default: most recent)")
	logsCmd.Flags().BoolVar(&logsAll, "all", false, "Show records from every run")
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of records to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show records since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Only records whose message contains this text")
	logsCmd.Flags().StringVar(&logsComponent, "component", "", "Only records from this component (loading, tui, assets, ...)")
	logsCmd.Flags().StringVar(&logsFormat, "format", "text", "Output format: text or json")
	logsCmd.Flags().StringVar(&logsDir, "dir", "", "Log directory (default: the state directory)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	dir := logsDir
	if dir == "" {
		dir = appconfig.LogDir()
	}

	records, err := logging.ReadLogs(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(cmd.OutOrStdout(), "No logs found.")
			fmt.Fprintln(cmd.OutOrStdout(), "Logs are stored at:", dir)
			return nil
		}
		return err
	}

	filter := logging.Filter{
		Contains:  logsGrep,
		Component: logsComponent,
		SessionID: logsSessionID,
	}
	if logsLevel != "" {
		filter.Level = logging.ParseLevel(logsLevel)
	}
	if logsSince != "" {
		duration, err := time.ParseDuration(logsSince)
		if err != nil {
			return fmt.Errorf("invalid duration format: %w", err)
		}
		filter.Since = time.Now().Add(-duration)
	}
	if filter.SessionID == "" && !logsAll {
		filter.SessionID = latestSession(records)
	}

	records = logging.FilterRecords(records, filter)

	// Apply tail limit
	if logsTail > 0 && len(records) > logsTail {
		records = records[len(records)-logsTail:]
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching log entries found.")
		return nil
	}
	return logging.WriteRecords(cmd.OutOrStdout(), records, logsFormat)
}

// latestSession returns the session of the newest record. Records are
// sorted by time.
func latestSession(records []logging.Record) string {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].SessionID != "" {
			return records[i].SessionID
		}
	}
	return ""
}
