// Package errors provides custom error types for the moviemap system.
// Store-layer errors (CorruptStoreError, MalformedRecordError, StoreWriteError)
// are fatal to the call that triggered them. Catalog-layer errors
// (EmptyCollectionError, NoMatchError, MovieNotFoundError, DuplicateMovieError)
// are expected outcomes that callers report and recover from.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors for the moviemap system
var (
	// ErrNotFound indicates that a requested movie was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a movie already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptStore indicates that stored content could not be parsed
	ErrCorruptStore = errors.New("corrupt store")

	// ErrMalformedRecord indicates that stored content parsed but is not a list of records
	ErrMalformedRecord = errors.New("malformed record")

	// ErrStoreWrite indicates that the collection could not be persisted
	ErrStoreWrite = errors.New("store write failed")

	// ErrEmptyCollection indicates that a query was given no movies
	ErrEmptyCollection = errors.New("empty collection")

	// ErrNoMatch indicates that a search matched nothing
	ErrNoMatch = errors.New("no match")
)

// CorruptStoreError is returned when the backing resource exists but cannot be parsed.
type CorruptStoreError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *CorruptStoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("could not parse %s", e.Path)
}

// Unwrap implements errors.Unwrap
func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}

// NewCorruptStoreError creates a new CorruptStoreError
func NewCorruptStoreError(path string, err error) *CorruptStoreError {
	return &CorruptStoreError{Path: path, Err: err}
}

// MalformedRecordError is returned when stored content is not a sequence of
// records or an element lacks a required field. Index is -1 when the
// content as a whole is not a sequence.
type MalformedRecordError struct {
	Path   string
	Index  int
	Reason string
}

// Error implements the error interface
func (e *MalformedRecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s is malformed: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s is malformed: entry %d: %s", e.Path, e.Index, e.Reason)
}

// Is implements errors.Is support
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// NewMalformedRecordError creates a new MalformedRecordError
func NewMalformedRecordError(path string, index int, reason string) *MalformedRecordError {
	return &MalformedRecordError{Path: path, Index: index, Reason: reason}
}

// StoreWriteError wraps the failure of a save. The on-disk state of Path is
// undefined after this error.
type StoreWriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StoreWriteError) Is(target error) bool {
	return target == ErrStoreWrite
}

// NewStoreWriteError creates a new StoreWriteError
func NewStoreWriteError(path string, err error) *StoreWriteError {
	return &StoreWriteError{Path: path, Err: err}
}

// EmptyCollectionError is returned by queries that need at least one movie.
type EmptyCollectionError struct {
	Operation string
}

// Error implements the error interface
func (e *EmptyCollectionError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("cannot %s: the collection is empty", e.Operation)
	}
	return "the collection is empty"
}

// Is implements errors.Is support
func (e *EmptyCollectionError) Is(target error) bool {
	return target == ErrEmptyCollection
}

// NewEmptyCollectionError creates a new EmptyCollectionError
func NewEmptyCollectionError(operation string) *EmptyCollectionError {
	return &EmptyCollectionError{Operation: operation}
}

// NoMatchError is returned when a search finds no titles.
type NoMatchError struct {
	Query string
}

// Error implements the error interface
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no movie title contains %q", e.Query)
}

// Is implements errors.Is support
func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// NewNoMatchError creates a new NoMatchError
func NewNoMatchError(query string) *NoMatchError {
	return &NoMatchError{Query: query}
}

// MovieNotFoundError is returned when no record has the given title.
type MovieNotFoundError struct {
	Title string
}

// Error implements the error interface
func (e *MovieNotFoundError) Error() string {
	return fmt.Sprintf("movie %q does not exist", e.Title)
}

// Is implements errors.Is support
func (e *MovieNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewMovieNotFoundError creates a new MovieNotFoundError
func NewMovieNotFoundError(title string) *MovieNotFoundError {
	return &MovieNotFoundError{Title: title}
}

// DuplicateMovieError is returned when an insert collides with an existing title.
// Existing is the stored title that caused the rejection; it differs from
// Title when substring matching is in effect.
type DuplicateMovieError struct {
	Title    string
	Existing string
}

// Error implements the error interface
func (e *DuplicateMovieError) Error() string {
	if e.Existing != "" && e.Existing != e.Title {
		return fmt.Sprintf("movie %q already exists (matches %q)", e.Title, e.Existing)
	}
	return fmt.Sprintf("movie %q already exists", e.Title)
}

// Is implements errors.Is support
func (e *DuplicateMovieError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewDuplicateMovieError creates a new DuplicateMovieError
func NewDuplicateMovieError(title, existing string) *DuplicateMovieError {
	return &DuplicateMovieError{Title: title, Existing: existing}
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

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsEmptyCollection checks if an error is an empty collection error
func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}

// IsNoMatch checks if an error is a no match error
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// IsStoreError reports whether err came from the store layer.
func IsStoreError(err error) bool {
	return errors.Is(err, ErrCorruptStore) ||
		errors.Is(err, ErrMalformedRecord) ||
		errors.Is(err, ErrStoreWrite)
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsRecoverable reports whether err is one of the expected catalog outcomes
// that a caller can report and carry on from. Configuration errors are never
// recoverable, whatever they wrap.
func IsRecoverable(err error) bool {
	if IsConfigError(err) {
		return false
	}
	return IsNotFound(err) ||
		IsAlreadyExists(err) ||
		IsEmptyCollection(err) ||
		IsNoMatch(err) ||
		IsValidationError(err)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapWrite wraps an error as a StoreWriteError
func WrapWrite(path string, err error) error {
	if err == nil {
		return nil
	}
	return NewStoreWriteError(path, err)
}
