package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "loading.interval_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// themeNameRegex matches built-in and custom theme names
var themeNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLoading()...)
	errors = append(errors, c.validateReveal()...)
	errors = append(errors, c.validateTabs()...)
	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateLoading validates the LoadingConfig
func (c *Config) validateLoading() []ValidationError {
	var errors []ValidationError

	if c.Loading.IntervalMs < 10 || c.Loading.IntervalMs > 5000 {
		errors = append(errors, ValidationError{
			Field:   "loading.interval_ms",
			Value:   c.Loading.IntervalMs,
			Message: "must be between 10 and 5000",
		})
	}

	if c.Loading.SettleMs < 0 || c.Loading.SettleMs > 10000 {
		errors = append(errors, ValidationError{
			Field:   "loading.settle_ms",
			Value:   c.Loading.SettleMs,
			Message: "must be between 0 and 10000",
		})
	}

	if c.Loading.MinIncrement < MinIncrementFloor {
		errors = append(errors, ValidationError{
			Field:   "loading.min_increment",
			Value:   c.Loading.MinIncrement,
			Message: fmt.Sprintf("must be at least %v", MinIncrementFloor),
		})
	}

	if c.Loading.MaxIncrement < c.Loading.MinIncrement {
		errors = append(errors, ValidationError{
			Field:   "loading.max_increment",
			Value:   c.Loading.MaxIncrement,
			Message: fmt.Sprintf("must be at least loading.min_increment (%v)", c.Loading.MinIncrement),
		})
	}

	if c.Loading.MaxIncrement > 100 {
		errors = append(errors, ValidationError{
			Field:   "loading.max_increment",
			Value:   c.Loading.MaxIncrement,
			Message: "must not exceed 100",
		})
	}

	return errors
}

// validateReveal validates the RevealConfig
func (c *Config) validateReveal() []ValidationError {
	var errors []ValidationError

	if c.Reveal.MarginLines < 0 {
		errors = append(errors, ValidationError{
			Field:   "reveal.margin_lines",
			Value:   c.Reveal.MarginLines,
			Message: "must be non-negative",
		})
	}

	nonNegative := map[string]int{
		"reveal.bar_stagger_ms":   c.Reveal.BarStaggerMs,
		"reveal.bar_duration_ms":  c.Reveal.BarDurationMs,
		"reveal.card_stagger_ms":  c.Reveal.CardStaggerMs,
		"reveal.card_duration_ms": c.Reveal.CardDurationMs,
	}
	fields := make([]string, 0, len(nonNegative))
	for field := range nonNegative {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		if nonNegative[field] < 0 {
			errors = append(errors, ValidationError{
				Field:   field,
				Value:   nonNegative[field],
				Message: "must be non-negative",
			})
		}
	}

	return errors
}

// validateTabs validates the TabsConfig
func (c *Config) validateTabs() []ValidationError {
	var errors []ValidationError

	if c.Tabs.TransitionMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "tabs.transition_ms",
			Value:   c.Tabs.TransitionMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateCatalog validates the CatalogConfig
func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	if c.Catalog.Path != "" && !strings.HasSuffix(c.Catalog.Path, ".yaml") && !strings.HasSuffix(c.Catalog.Path, ".yml") {
		errors = append(errors, ValidationError{
			Field:   "catalog.path",
			Value:   c.Catalog.Path,
			Message: "must be a .yaml or .yml file",
		})
	}

	if strings.TrimSpace(c.Catalog.AssetsDir) == "" {
		errors = append(errors, ValidationError{
			Field:   "catalog.assets_dir",
			Value:   c.Catalog.AssetsDir,
			Message: "must not be empty",
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !themeNameRegex.MatchString(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must be a lowercase name (letters, digits, '-' or '_')",
		})
	}

	if c.TUI.FrameMs < 16 || c.TUI.FrameMs > 1000 {
		errors = append(errors, ValidationError{
			Field:   "tui.frame_ms",
			Value:   c.TUI.FrameMs,
			Message: "must be between 16 and 1000",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	const maxLogSizeMB = 1000
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
