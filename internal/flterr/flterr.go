// Package flterr defines the diagnostic error taxonomy used across the
// toolkit: malformed wire input, left-recursive grammars, left-ambiguous
// grammars, and empty CLI input. Each carries both a technical Error()
// message for logs and an operator-facing Diagnostic() message meant to
// replace normal output.
package flterr

import (
	"errors"
	"fmt"
)

type kind int

const (
	kindMalformedEncoding kind = iota
	kindLeftRecursive
	kindLeftAmbiguous
	kindEmptyInput
)

// toolkitError is a diagnostic error: a technical message for logs and an
// operator-facing message meant to replace normal CLI output.
type toolkitError struct {
	kind  kind
	msg   string
	diag  string
	wrap  error
}

func (e *toolkitError) Error() string {
	return e.msg
}

// Diagnostic returns the message that should be printed to the operator in
// place of normal output.
func (e *toolkitError) Diagnostic() string {
	return e.diag
}

func (e *toolkitError) Unwrap() error {
	return e.wrap
}

func newError(k kind, diag, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("%s", diag)
	}
	return &toolkitError{kind: k, msg: technical, diag: diag}
}

func wrapError(k kind, e error, diag, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("%s", diag)
	}
	return &toolkitError{kind: k, msg: technical, diag: diag, wrap: e}
}

// MalformedEncoding returns a new error reporting that input text did not
// match the wire grammar of a parser.
func MalformedEncoding(diag, technical string) error {
	return newError(kindMalformedEncoding, diag, technical)
}

// MalformedEncodingf is MalformedEncoding with the diagnostic message built
// from a format string, and an automatically generated technical message.
func MalformedEncodingf(diagFormat string, a ...interface{}) error {
	return MalformedEncoding(fmt.Sprintf(diagFormat, a...), "")
}

// WrapMalformedEncoding is MalformedEncoding that also wraps a lower-level
// parse error for Unwrap/errors.As.
func WrapMalformedEncoding(e error, diag, technical string) error {
	return wrapError(kindMalformedEncoding, e, diag, technical)
}

// WrapMalformedEncodingf is WrapMalformedEncoding with a formatted
// diagnostic message.
func WrapMalformedEncodingf(e error, diagFormat string, a ...interface{}) error {
	return WrapMalformedEncoding(e, fmt.Sprintf(diagFormat, a...), "")
}

// LeftRecursive returns a new error reporting a left-recursive cycle. diag
// should already be formatted as "A => B => ... => A".
func LeftRecursive(diag, technical string) error {
	return newError(kindLeftRecursive, diag, technical)
}

// LeftRecursivef is LeftRecursive with a formatted diagnostic message.
func LeftRecursivef(diagFormat string, a ...interface{}) error {
	return LeftRecursive(fmt.Sprintf(diagFormat, a...), "")
}

// WrapLeftRecursive is LeftRecursive that also wraps a lower-level error.
func WrapLeftRecursive(e error, diag, technical string) error {
	return wrapError(kindLeftRecursive, e, diag, technical)
}

// WrapLeftRecursivef is WrapLeftRecursive with a formatted diagnostic
// message.
func WrapLeftRecursivef(e error, diagFormat string, a ...interface{}) error {
	return WrapLeftRecursive(e, fmt.Sprintf(diagFormat, a...), "")
}

// LeftAmbiguous returns a new error reporting that two bodies of the same
// nonterminal share a FIRST symbol.
func LeftAmbiguous(diag, technical string) error {
	return newError(kindLeftAmbiguous, diag, technical)
}

// LeftAmbiguousf is LeftAmbiguous with a formatted diagnostic message.
func LeftAmbiguousf(diagFormat string, a ...interface{}) error {
	return LeftAmbiguous(fmt.Sprintf(diagFormat, a...), "")
}

// WrapLeftAmbiguous is LeftAmbiguous that also wraps a lower-level error.
func WrapLeftAmbiguous(e error, diag, technical string) error {
	return wrapError(kindLeftAmbiguous, e, diag, technical)
}

// WrapLeftAmbiguousf is WrapLeftAmbiguous with a formatted diagnostic
// message.
func WrapLeftAmbiguousf(e error, diagFormat string, a ...interface{}) error {
	return WrapLeftAmbiguous(e, fmt.Sprintf(diagFormat, a...), "")
}

// EmptyInput returns a new error reporting that a CLI entry point read no
// line from standard input. Per the error handling design, callers treat
// this by exiting silently rather than printing the diagnostic.
func EmptyInput() error {
	return newError(kindEmptyInput, "", "no input line was read")
}

// IsEmptyInput returns whether err is (or wraps) an EmptyInput error.
func IsEmptyInput(err error) bool {
	var te *toolkitError
	return errors.As(err, &te) && te.kind == kindEmptyInput
}

// Diagnostic returns the message that should be printed to the operator in
// place of normal output. If err is not one of this package's error kinds,
// its Error() message is returned instead.
func Diagnostic(err error) string {
	if te, ok := err.(*toolkitError); ok {
		return te.Diagnostic()
	}
	return err.Error()
}
