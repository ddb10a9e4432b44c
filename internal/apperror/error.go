// internal/apperror/error.go - application-level error classification
package apperror

import (
	"errors"

	"github.com/tilegen/tilegen/pkg/geoparse"
	"github.com/tilegen/tilegen/pkg/mvt"
	"github.com/tilegen/tilegen/pkg/tile"
)

// Code identifies the kind of failure an Error reports: one of the core
// pipeline's error kinds, or a CLI usage or I/O failure.
type Code string

const (
	CodeUsage  Code = "USAGE_ERROR"
	CodeParse  Code = "PARSE_ERROR"
	CodeRange  Code = "RANGE_ERROR"
	CodeEncode Code = "ENCODE_ERROR"
	CodeIO     Code = "IO_ERROR"
)

// Error wraps a failure with the code the CLI uses to pick an exit status.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an application error with the given code.
func New(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// ExitCode maps an error code to a CLI exit status: 2 usage, 3 parse, 4
// I/O. RangeError is surfaced as a usage error since it always originates
// from caller-supplied zoom arguments. EncodeError has no dedicated exit
// code (it indicates a bug, not bad input); it falls through to 1.
func (e *Error) ExitCode() int {
	switch e.Code {
	case CodeUsage, CodeRange:
		return 2
	case CodeParse:
		return 3
	case CodeIO:
		return 4
	default:
		return 1
	}
}

// Classify wraps an error returned from the core pipeline packages into an
// *Error carrying the right code, so callers only need to branch on one
// error type.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var perr *geoparse.ParseError
	if errors.As(err, &perr) {
		return New(CodeParse, "parse error", err)
	}
	var rerr *tile.RangeError
	if errors.As(err, &rerr) {
		return New(CodeRange, "invalid zoom range", err)
	}
	var eerr *mvt.EncodeError
	if errors.As(err, &eerr) {
		return New(CodeEncode, "internal encoding error", err)
	}
	return New(CodeIO, "unexpected error", err)
}
