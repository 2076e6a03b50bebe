package model

import "fmt"

// HeaderNotFoundError signals that neither document heading synonym was
// found in the text. This is fatal for the document: no partial result is
// produced and the file must be flagged for manual review.
type HeaderNotFoundError struct {
	File string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("no document heading found in %s", e.File)
}

// ParseError represents a document-scoped parsing failure with field context.
type ParseError struct {
	File    string
	Field   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.File, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.File, e.Field, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(file, field, message string, cause error) *ParseError {
	return &ParseError{
		File:    file,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ExtractionError represents a text-extraction failure in the PDF layer.
type ExtractionError struct {
	File    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed [%s]: %s (%v)", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed [%s]: %s", e.File, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// NewExtractionError creates a new extraction error
func NewExtractionError(file, message string, cause error) *ExtractionError {
	return &ExtractionError{
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
