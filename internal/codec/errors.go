package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors describing why a save file was rejected.
var (
	ErrShortHeader = errors.New("missing header lines")
	ErrMissingTag  = errors.New("missing type tag")
	ErrUnknownTag  = errors.New("unknown type tag")
	ErrFieldCount  = errors.New("wrong field count")
	ErrBadNumber   = errors.New("invalid integer")
	ErrBadBool     = errors.New("invalid boolean")
	ErrBadEscape   = errors.New("invalid escape sequence")
	ErrBadField    = errors.New("invalid field")
)

// ParseError reports a malformed save file. Line is 1-based; zero means the
// problem concerns the file as a whole.
type ParseError struct {
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Reason)
	}
	return "parse error: " + e.Reason
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func fieldErr(kind error, reason string) error {
	return &ParseError{Reason: reason, Err: kind}
}

// lineError stamps a line number onto err, wrapping it in a ParseError if it
// is not one already.
func lineError(line int, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		out := *pe
		out.Line = line
		return &out
	}
	return &ParseError{Line: line, Reason: err.Error(), Err: err}
}
