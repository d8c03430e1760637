// Package errors provides custom error types for the langsync system.
// These errors enable programmatic error checking with errors.Is and
// errors.As and carry enough context to print a useful terminal message.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are the standard library helpers, re-exported so callers need
// only one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the langsync system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingDefault indicates that the default locale file does not exist
	ErrMissingDefault = errors.New("missing default locale file")

	// ErrMissingHistory indicates that a locale has an editable file but was never compiled
	ErrMissingHistory = errors.New("missing compiled history")

	// ErrMalformedInput indicates that a locale file could not be parsed
	ErrMalformedInput = errors.New("malformed input")

	// ErrStaleTranslations indicates that translations were reset because the default text changed
	ErrStaleTranslations = errors.New("stale translations")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// MissingDefaultFileError is returned when no default locale file exists
// in the compiled root.
type MissingDefaultFileError struct {
	Dir  string
	File string
}

// Error implements the error interface
func (e *MissingDefaultFileError) Error() string {
	if e.File == "" {
		return "failed to load default lang file"
	}
	if e.Dir == "" {
		return fmt.Sprintf("failed to load default lang file %s", e.File)
	}
	return fmt.Sprintf("failed to load default lang file %s in %s", e.File, e.Dir)
}

// Is implements errors.Is support
func (e *MissingDefaultFileError) Is(target error) bool {
	return target == ErrMissingDefault
}

// NewMissingDefaultFileError creates a new MissingDefaultFileError
func NewMissingDefaultFileError(dir, file string) *MissingDefaultFileError {
	return &MissingDefaultFileError{Dir: dir, File: file}
}

// MissingCompiledHistoryError is returned when a locale was never compiled,
// so there is no history to seed or check its working file against.
type MissingCompiledHistoryError struct {
	Locale string
}

// Error implements the error interface
func (e *MissingCompiledHistoryError) Error() string {
	return fmt.Sprintf("the language file for '%s' could not be found", e.Locale)
}

// Is implements errors.Is support
func (e *MissingCompiledHistoryError) Is(target error) bool {
	return target == ErrMissingHistory
}

// NewMissingCompiledHistoryError creates a new MissingCompiledHistoryError
func NewMissingCompiledHistoryError(locale string) *MissingCompiledHistoryError {
	return &MissingCompiledHistoryError{Locale: locale}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "list", "mkdir"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// StaleTranslationsError reports locales whose translations were reset to
// the default text. It is only returned when the caller asked to fail on
// stale translations.
type StaleTranslationsError struct {
	Locales []string
	Keys    int
}

// Error implements the error interface
func (e *StaleTranslationsError) Error() string {
	return fmt.Sprintf("%d stale translation(s) need retranslation in: %s", e.Keys, strings.Join(e.Locales, ", "))
}

// Is implements errors.Is support
func (e *StaleTranslationsError) Is(target error) bool {
	return target == ErrStaleTranslations
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMissingDefault checks if an error reports a missing default locale file
func IsMissingDefault(err error) bool {
	return errors.Is(err, ErrMissingDefault)
}

// IsMissingHistory checks if an error reports a locale without compiled history
func IsMissingHistory(err error) bool {
	return errors.Is(err, ErrMissingHistory)
}

// IsMalformedInput checks if an error is a parse failure of a locale file
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapCanceled wraps a context error so that IsCanceled reports true
func WrapCanceled(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, ErrCanceled, err)
}
