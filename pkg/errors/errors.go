package errors

import (
	"fmt"
)

// ParseError represents a document parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures application document validation issues.
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

// RenderError represents a failure while rendering a page.
type RenderError struct {
	Page string
	Err  error
}

// NewRenderError constructs a RenderError for the given page path.
func NewRenderError(page string, err error) error {
	return &RenderError{Page: page, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Page != "" {
		return fmt.Sprintf("render error on page %s: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CatalogError indicates a block catalog lookup or registration problem.
type CatalogError struct {
	Block   string
	Message string
	Err     error
}

// NewCatalogError constructs a CatalogError for the given block name.
func NewCatalogError(block string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &CatalogError{Block: block, Message: message, Err: err}
}

func (e *CatalogError) Error() string {
	if e == nil {
		return ""
	}
	if e.Block != "" {
		return fmt.Sprintf("catalog error [%s]: %s", e.Block, e.Message)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *CatalogError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
