package ingest

import (
	"errors"
	"fmt"
)

// ErrorKind classifies ingestion failures. Everything not covered here
// (ragged rows, unparsable cells, degenerate rows or columns) is recovered
// locally with the missing-value sentinel and never surfaces as an error.
type ErrorKind string

const (
	KindFileOpen      ErrorKind = "file_open"
	KindEmptyFile     ErrorKind = "empty_file"
	KindNoData        ErrorKind = "no_data"
	KindMalformedData ErrorKind = "malformed_data"
)

// ParseError is the error type returned by the ingestion pipeline.
// A ParseError is fatal for the file it names only; batch callers decide
// whether to continue with the remaining files.
type ParseError struct {
	Kind    ErrorKind
	Source  string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e == nil {
		return "unknown parse error"
	}
	if e.Source != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Source, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewFileOpenError reports a file that could not be opened or read.
func NewFileOpenError(source string, cause error) *ParseError {
	return &ParseError{
		Kind:    KindFileOpen,
		Source:  source,
		Message: "failed to open file",
		Cause:   cause,
	}
}

// NewEmptyFileError reports an input with no lines at all.
func NewEmptyFileError(source string) *ParseError {
	return &ParseError{
		Kind:    KindEmptyFile,
		Source:  source,
		Message: "file contains no lines",
	}
}

// NewNoDataError reports an input in which every line classified as metadata.
func NewNoDataError(source string) *ParseError {
	return &ParseError{
		Kind:    KindNoData,
		Source:  source,
		Message: "no data lines found",
	}
}

// NewMalformedDataError reports a data block that could not be tokenized
// into at least one column even under the tolerant row parser.
func NewMalformedDataError(source, message string) *ParseError {
	return &ParseError{
		Kind:    KindMalformedData,
		Source:  source,
		Message: message,
	}
}

// IsKind reports whether err is (or wraps) a ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}

// IsNoData reports whether err signals an input without any data lines.
func IsNoData(err error) bool { return IsKind(err, KindNoData) }

// IsEmptyFile reports whether err signals a zero-line input.
func IsEmptyFile(err error) bool { return IsKind(err, KindEmptyFile) }

// IsMalformedData reports whether err signals an untokenizable data block.
func IsMalformedData(err error) bool { return IsKind(err, KindMalformedData) }

// IsFileOpen reports whether err signals an unreadable file.
func IsFileOpen(err error) bool { return IsKind(err, KindFileOpen) }
