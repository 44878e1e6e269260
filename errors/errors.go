package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

// Error code constants for structured errors.
const (
	CodeConfigError     = "CONFIG_ERROR"
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidConfig   = "INVALID_CONFIG"
	CodeManifestError   = "MANIFEST_ERROR"
	CodeRenderError     = "RENDER_ERROR"
)

// Plain sentinel errors.
var (
	ErrMissingHref    = errs.New("href is required")
	ErrMissingText    = errs.New("text is required")
	ErrEmptyCollapse  = errs.New("collapse must contain at least one item")
	ErrUnknownColor   = errs.New("unknown badge color")
	ErrUnknownIcon    = errs.New("unknown icon")
	ErrUnknownFormat  = errs.New("unknown manifest format")
	ErrUnknownPlacing = errs.New("unknown tooltip placement")
	ErrInvalidAttr    = errs.New("invalid attribute name")
)

// =============================================================================
// STRUCTURED ERROR
// =============================================================================

// SidenavError represents a structured error with a code.
type SidenavError = errs.Error

// ErrConfigError creates a config error.
func ErrConfigError(message string, cause error) *SidenavError {
	return errs.NewError(CodeConfigError, message, cause)
}

// ErrValidationError creates a validation error.
func ErrValidationError(field string, cause error) *SidenavError {
	return errs.NewError(CodeValidationError, fmt.Sprintf("validation error for field '%s'", field), cause)
}

func ErrInvalidConfig(configKey string, cause error) *SidenavError {
	return errs.NewError(CodeInvalidConfig, "invalid configuration for key '"+configKey+"'", cause)
}

// ErrManifestError reports a manifest that could not be read or decoded.
func ErrManifestError(source string, cause error) *SidenavError {
	return errs.NewError(CodeManifestError, "manifest '"+source+"'", cause)
}

// ErrRenderError reports a failure writing rendered markup.
func ErrRenderError(component string, cause error) *SidenavError {
	return errs.NewError(CodeRenderError, "failed to render "+component, cause)
}

// =============================================================================
// STANDARD ERRORS PACKAGE INTEGRATION
// =============================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors. Nil values are discarded.
func Join(errList ...error) error {
	return errors.Join(errList...)
}

// =============================================================================
// SENTINEL ERRORS (for use with Is)
// =============================================================================

var (
	ErrConfigErrorSentinel     = &SidenavError{Code: CodeConfigError}
	ErrValidationErrorSentinel = &SidenavError{Code: CodeValidationError}
	ErrInvalidConfigSentinel   = &SidenavError{Code: CodeInvalidConfig}
	ErrManifestErrorSentinel   = &SidenavError{Code: CodeManifestError}
	ErrRenderErrorSentinel     = &SidenavError{Code: CodeRenderError}
)

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	return Is(err, ErrValidationErrorSentinel)
}

// IsInvalidConfig checks if the error is an invalid configuration error.
func IsInvalidConfig(err error) bool {
	return Is(err, ErrInvalidConfigSentinel)
}

// IsManifestError checks if the error is a manifest error.
func IsManifestError(err error) bool {
	return Is(err, ErrManifestErrorSentinel)
}

// IsRenderError checks if the error is a render error.
func IsRenderError(err error) bool {
	return Is(err, ErrRenderErrorSentinel)
}

// Messages flattens a (possibly joined) error into one message per leaf.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, Messages(e)...)
		}

		return out
	}

	return []string{strings.TrimSpace(err.Error())}
}
