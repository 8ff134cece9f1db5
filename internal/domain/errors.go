// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested document or asset does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExtraction indicates front-matter extraction failed, typically
	// because a required field is missing or malformed.
	ErrExtraction = errors.New("extraction failed")

	// ErrDateParse indicates a front-matter date does not match the
	// expected format or is not a valid calendar date.
	ErrDateParse = errors.New("date parse failed")

	// ErrContentType indicates an asset's content type could not be
	// derived from its file extension.
	ErrContentType = errors.New("unknown content type")

	// ErrValidation indicates request validation failed.
	ErrValidation = errors.New("validation failed")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ExtractionError provides context for front-matter extraction failures.
type ExtractionError struct {
	Document string
	Field    string
	Cause    error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("extracting front matter from %q: missing required field %q", e.Document, e.Field)
	case e.Cause != nil:
		return fmt.Sprintf("extracting front matter from %q: %v", e.Document, e.Cause)
	default:
		return fmt.Sprintf("extracting front matter from %q failed", e.Document)
	}
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ExtractionError) Unwrap() error {
	return ErrExtraction
}

// NewMissingFieldError creates an extraction error for an absent required field.
func NewMissingFieldError(document, field string) error {
	return &ExtractionError{Document: document, Field: field}
}

// NewExtractionError creates an extraction error wrapping an underlying cause.
func NewExtractionError(document string, cause error) error {
	return &ExtractionError{Document: document, Cause: cause}
}

// DateParseError provides context for date parsing failures.
type DateParseError struct {
	Value string
	Cause error
}

// Error implements the error interface.
func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid post date %q (want %s)", e.Value, DateFormat)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *DateParseError) Unwrap() error {
	return ErrDateParse
}

// NewDateParseError creates a date parse error with context.
func NewDateParseError(value string, cause error) error {
	return &DateParseError{Value: value, Cause: cause}
}

// ContentTypeError provides context for asset content-type failures.
type ContentTypeError struct {
	Path string
	Ext  string
}

// Error implements the error interface.
func (e *ContentTypeError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("asset %q has no file extension", e.Path)
	}

	return fmt.Sprintf("no content type for asset %q (extension %q)", e.Path, e.Ext)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ContentTypeError) Unwrap() error {
	return ErrContentType
}

// NewContentTypeError creates a content type error with context.
func NewContentTypeError(path, ext string) error {
	return &ContentTypeError{Path: path, Ext: ext}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsExtraction checks if an error is a front-matter extraction error.
func IsExtraction(err error) bool {
	return errors.Is(err, ErrExtraction)
}

// IsDateParse checks if an error is a date parse error.
func IsDateParse(err error) bool {
	return errors.Is(err, ErrDateParse)
}

// IsContentType checks if an error is a content type error.
func IsContentType(err error) bool {
	return errors.Is(err, ErrContentType)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
