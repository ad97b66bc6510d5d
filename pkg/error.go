package pkg

// Sentinel errors shared across turtledebug packages.
// They can be tested with errors.Is for reliable error checking.

import (
	"fmt"
	"strings"
)

// Error represents a chain of errors, innermost first.
type Error []error

// ErrLoadSource is returned when a Lua source file cannot be read or
// executed. Wrap it with the underlying error to preserve the chain.
var ErrLoadSource = MakeErrorf("failed to load source")

// ErrReadSession is returned when the session file cannot be read or
// parsed.
var ErrReadSession = MakeErrorf("failed to read session")

// ErrWriteSession is returned when the session file cannot be written.
var ErrWriteSession = MakeErrorf("failed to write session")

// ErrEmptyExpression is returned when an inspection is requested for an
// empty (or all-whitespace) path expression.
var ErrEmptyExpression = MakeErrorf("empty path expression")

// MakeError constructs an Error from the given errors. The errors are
// stored innermost first; nil arguments are skipped, and nil is
// returned when no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns all errors in the chain joined with ": ", innermost to
// outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range e {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the
// result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the
// result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns all
// errors it contains, starting from the innermost.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
