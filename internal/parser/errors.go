package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a parse failure. It unwraps to one of domain.ErrMalformedValue,
// domain.ErrUnrecognizedTag or domain.ErrUnterminatedString.
type Error struct {
	Kind    error
	Message string
	Near    string // input at the failure point, truncated
	Line    int    // 1-based, 0 when unknown
	Column  int    // 1-based byte column, 0 when unknown

	rest string // unconsumed input at the failure point
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Message)
	if e.Near != "" {
		msg += fmt.Sprintf(" near %q", e.Near)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Column, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }

const nearLen = 24

func fail(kind error, at string, format string, args ...any) *Error {
	near := at
	if i := strings.IndexByte(near, '\n'); i >= 0 {
		near = near[:i]
	}
	if len(near) > nearLen {
		near = near[:nearLen]
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Near:    near,
		rest:    at,
	}
}

// locate fills in the line and column of err relative to src. The failure
// point is always a suffix of src because parsers only ever re-slice their
// input.
func locate(err error, src string) error {
	var pe *Error
	if !errors.As(err, &pe) || len(pe.rest) > len(src) {
		return err
	}
	offset := len(src) - len(pe.rest)
	before := src[:offset]
	pe.Line = strings.Count(before, "\n") + 1
	pe.Column = offset - strings.LastIndexByte(before, '\n')
	return pe
}
