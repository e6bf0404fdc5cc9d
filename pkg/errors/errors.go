// Package errors defines the error types pricemap returns. Callers test for
// them with Is, As and the IsX helpers instead of matching messages.
package errors

import (
	"encoding/csv"
	"errors"
	"fmt"
)

// Aliases so callers need only one errors import.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

var (
	// ErrInvalidInput is matched by every ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSource is an ID outside the four catalog sources.
	ErrUnknownSource = fmt.Errorf("unknown catalog source: %w", ErrInvalidInput)

	ErrMissingColumn = errors.New("missing column")
	ErrEmptyCatalog  = errors.New("empty catalog")
)

// ValidationError rejects an option or configuration value.
type ValidationError struct {
	Field   string
	Value   any
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError reports value as unacceptable for field.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// UnknownSource reports a catalog source ID that is not one of the four
// known sources.
func UnknownSource(id any) *ValidationError {
	return &ValidationError{
		Field:   "source",
		Value:   id,
		Message: fmt.Sprintf("%q is not a catalog source", fmt.Sprint(id)),
		Err:     ErrUnknownSource,
	}
}

// ConfigError is a failure reading CLI configuration.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component == "" {
		return "configuration error: " + e.Message
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// SourceError is a catalog that could not be turned into offers. Column is
// set when the header lacks a required column.
type SourceError struct {
	Source string
	Column string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("source %s: column %q not found", e.Source, e.Column)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool {
	return e.Column != "" && target == ErrMissingColumn
}

func NewSourceError(source string, err error) *SourceError {
	return &SourceError{Source: source, Err: err}
}

func NewMissingColumnError(source, column string) *SourceError {
	return &SourceError{Source: source, Column: column}
}

func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }
func IsMissingColumn(err error) bool   { return errors.Is(err, ErrMissingColumn) }
func IsEmptyCatalog(err error) bool    { return errors.Is(err, ErrEmptyCatalog) }

// ParseError is a catalog file that is not well-formed. Line and Column are
// 1-based and zero when unknown.
type ParseError struct {
	Format  string
	File    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("parse error in %s at %s:%d:%d: %s", e.Format, e.File, e.Line, e.Column, e.Message)
	case e.File != "":
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WrapParse turns err into a ParseError for file, lifting the position out
// of a csv.ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	pe := &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		pe.Line, pe.Column = csvErr.Line, csvErr.Column
		pe.Message = csvErr.Err.Error()
	}
	return pe
}

// IOError is a failed filesystem operation on a catalog or export file.
type IOError struct {
	Operation string // open, create, write
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// WrapIO returns nil when err is nil.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// ResourceError is a CLI setup step that failed.
type ResourceError struct {
	Operation string // load, create
	Resource  string // config, pricemap
	ID        string
	Err       error
}

func (e *ResourceError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Resource, e.Err)
	}
	return fmt.Sprintf("failed to %s %s %s: %v", e.Operation, e.Resource, e.ID, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// WrapResource returns nil when err is nil.
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return &ResourceError{Operation: operation, Resource: resource, ID: id, Err: err}
}
