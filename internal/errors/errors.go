// Package errors provides centralized error definitions and error handling utilities
// for the archives codebase. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - CatalogError: errors loading or validating the aircraft catalog
//   - AssetError: errors resolving image assets referenced by catalog entries
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
//	err := errors.NewCatalogError("duplicate id", errors.ErrDuplicateEntry).
//		WithEntryID("mig-21pd")
//
//	if errors.Is(err, errors.ErrDuplicateEntry) { ... }
//
//	var catErr *errors.CatalogError
//	if errors.As(err, &catErr) { ... }
//
// Asset errors never reach the view layer. The asset resolver logs them and
// reports the image as hidden instead.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Catalog-related sentinel errors
var (
	// ErrEntryNotFound indicates that no catalog entry has the requested ID.
	ErrEntryNotFound = New("catalog entry not found")
	// ErrDuplicateEntry indicates two catalog entries share an ID.
	ErrDuplicateEntry = New("duplicate catalog entry")
	// ErrInvalidRating indicates a rating outside [0,100].
	ErrInvalidRating = New("rating out of range")
	// ErrCatalogEmpty indicates that a catalog has no entries.
	ErrCatalogEmpty = New("catalog is empty")
	// ErrMalformedCatalog indicates the catalog document could not be decoded.
	ErrMalformedCatalog = New("malformed catalog document")
)

// Asset-related sentinel errors
var (
	// ErrAssetMissing indicates that an image reference has no backing file.
	ErrAssetMissing = New("asset missing")
	// ErrAssetUndecodable indicates that an image file has an unknown or corrupt header.
	ErrAssetUndecodable = New("asset cannot be decoded")
)

// Lifecycle sentinel errors
var (
	// ErrAlreadyStarted indicates a one-shot component was started twice.
	ErrAlreadyStarted = New("already started")
	// ErrDisposed indicates a component was used after disposal.
	ErrDisposed = New("disposed")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// ArchivesError is the base interface for all archives errors.
type ArchivesError interface {
	error
	Unwrap() error
	Is(target error) bool
	Severity() Severity
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// CatalogError represents errors loading or validating catalog entries.
//
// Example:
//
//	err := errors.NewCatalogError("rating out of range", errors.ErrInvalidRating)
//	err = err.WithEntryID("mig-25bp").WithField("ratings.speed")
//	fmt.Println(err) // "catalog error [entry=mig-25bp, field=ratings.speed]: rating out of range: rating out of range"
type CatalogError struct {
	baseError
	EntryID string
	Field   string
	Source  string
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(message string, cause error) *CatalogError {
	return &CatalogError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithEntryID adds the offending entry ID.
func (e *CatalogError) WithEntryID(id string) *CatalogError {
	e.EntryID = id
	return e
}

// WithField adds the offending field path.
func (e *CatalogError) WithField(field string) *CatalogError {
	e.Field = field
	return e
}

// WithSource adds the catalog file path.
func (e *CatalogError) WithSource(path string) *CatalogError {
	e.Source = path
	return e
}

// Error returns the formatted error message.
func (e *CatalogError) Error() string {
	var parts []string
	if e.Source != "" {
		parts = append(parts, fmt.Sprintf("source=%s", e.Source))
	}
	if e.EntryID != "" {
		parts = append(parts, fmt.Sprintf("entry=%s", e.EntryID))
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}

	prefix := "catalog error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("catalog error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *CatalogError) Is(target error) bool {
	if _, ok := target.(*CatalogError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// AssetError represents a failure to resolve an image asset.
// These are debug-level: a missing image is a cosmetic degradation.
type AssetError struct {
	baseError
	Ref  string
	Path string
}

// NewAssetError creates a new AssetError.
func NewAssetError(ref string, cause error) *AssetError {
	return &AssetError{
		baseError: baseError{
			message:  "cannot resolve image",
			cause:    cause,
			severity: SeverityDebug,
		},
		Ref: ref,
	}
}

// WithPath adds the resolved filesystem path.
func (e *AssetError) WithPath(path string) *AssetError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *AssetError) Error() string {
	prefix := fmt.Sprintf("asset error [ref=%s]", e.Ref)
	if e.Path != "" {
		prefix = fmt.Sprintf("asset error [ref=%s, path=%s]", e.Ref, e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *AssetError) Is(target error) bool {
	if _, ok := target.(*AssetError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("entry", "mig-23")
//	fmt.Println(err) // "entry 'mig-23' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("tab must be specs or profile")
//	err = err.WithField("tab").WithValue("stats")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to show on the CLI
// without a "internal error" preface.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var ae ArchivesError
	if As(err, &ae) {
		return ae.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Errors outside this package are reported as SeverityError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var ae ArchivesError
	if As(err, &ae) {
		return ae.Severity()
	}
	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
