package scan

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Kind classifies a scan failure.
type Kind int

const (
	// KindMismatch indicates the input text did not match what was expected.
	KindMismatch Kind = iota
	// KindIO indicates the byte source feeding the input failed.
	KindIO
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindMismatch:
		return "mismatch"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Sentinels for errors.Is. A *Error matches the sentinel of its kind.
var (
	// ErrMismatch matches every text mismatch.
	ErrMismatch = errors.New("scan mismatch")

	// ErrIO matches every I/O failure.
	ErrIO = errors.New("scan i/o failure")
)

// Error explains why a scan attempt failed.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Msg describes a mismatch. Empty for I/O failures.
	Msg string
	// Offset is the byte offset of the cursor that detected a mismatch.
	Offset int
	// Err is the underlying I/O error. Nil for mismatches.
	Err error
}

// Mismatch returns a text mismatch error at the given byte offset.
func Mismatch(msg string, offset int) *Error {
	return &Error{Kind: KindMismatch, Msg: msg, Offset: offset}
}

// IOError wraps a failure of the byte source the input was read from.
func IOError(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

// Error returns "at offset <N>: <msg>" or "io error: <cause>".
func (e *Error) Error() string {
	if e.Kind == KindIO {
		return fmt.Sprintf("io error: %v", e.Err)
	}
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Msg)
}

// Unwrap returns the underlying I/O error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrMismatch:
		return e.Kind == KindMismatch
	case ErrIO:
		return e.Kind == KindIO
	default:
		return false
	}
}

// Position maps e's offset onto input as a shape-core AST position.
func (e *Error) Position(input string) ast.Position {
	return Locate(input, e.Offset)
}

// Or is the method form of Merge.
func (e *Error) Or(other error) error {
	if e == nil {
		return other
	}
	return Merge(e, other)
}

// Merge returns the more interesting of two scan failures:
//
//  1. An I/O failure wins over any mismatch. If both are I/O failures, a wins.
//  2. Otherwise the mismatch found further along the input wins. On a tie, b wins.
//
// A nil operand, including a nil *Error, yields the other one. Errors that
// are not a *Error are treated as I/O failures.
func Merge(a, b error) error {
	switch {
	case isNil(a) && isNil(b):
		return nil
	case isNil(a):
		return b
	case isNil(b):
		return a
	}

	ea, eb := asError(a), asError(b)
	switch {
	case ea.Kind == KindIO:
		return a
	case eb.Kind == KindIO:
		return b
	case ea.Offset > eb.Offset:
		return a
	default:
		return b
	}
}

func isNil(err error) bool {
	e, ok := err.(*Error)
	return err == nil || ok && e == nil
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e
	}
	return IOError(err)
}
