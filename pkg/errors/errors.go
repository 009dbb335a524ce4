package errors

import (
	"errors"
	"fmt"
)

// ErrFileNotFound marks a stylesheet or metadata path that is absent from a theme tree.
// It is not fatal: the file is skipped.
var ErrFileNotFound = errors.New("file not found")

// ParseError represents malformed input: a hex color or a configuration file.
// Line is set only for file input when the decoder reports it.
type ParseError struct {
	Input   string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(input, message string, err error) error {
	return &ParseError{Input: input, Message: message, Err: err}
}

// NewFileParseError constructs a ParseError for a file with optional line metadata.
func NewFileParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Input: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Input, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %q: %s", e.Input, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceTreeError reports a source theme tree that could not be copied.
type SourceTreeError struct {
	Variant string
	Path    string
	Err     error
}

// NewSourceTreeError constructs a SourceTreeError.
func NewSourceTreeError(variant, path string, err error) error {
	return &SourceTreeError{Variant: variant, Path: path, Err: err}
}

func (e *SourceTreeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("variant %s: source tree %s: %v", e.Variant, e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *SourceTreeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// VariantError wraps a failure of one variant inside a batch run.
type VariantError struct {
	Variant string
	Err     error
}

// NewVariantError constructs a VariantError for the named variant.
func NewVariantError(variant string, err error) error {
	return &VariantError{Variant: variant, Err: err}
}

func (e *VariantError) Error() string {
	if e == nil {
		return ""
	}
	if e.Variant != "" {
		return fmt.Sprintf("variant %s failed: %v", e.Variant, e.Err)
	}
	return fmt.Sprintf("variant failed: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *VariantError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
