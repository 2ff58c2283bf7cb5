package gram

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Evaluation-domain errors flow as values through [Expr.Eval] and
// [Resolve]; defects propagate as ordinary Go errors and abort the
// enclosing production.
var (
	// ErrNotBound is the domain error for a variable or blank node with no
	// binding in the evaluation context.
	ErrNotBound = NewEvalError("variable not bound")

	// ErrEval is the generic domain error for semantic evaluation failures
	// such as type mismatches.
	ErrEval = NewEvalError("expression evaluation failed")

	// ErrOpaqueNode is the defect raised when resolution reaches an
	// attributed node without an evaluation function.
	ErrOpaqueNode = NewError("node is not evaluable")

	// ErrNoEvalFn is the defect raised when an evaluable node was built
	// without a bound evaluation function.
	ErrNoEvalFn = NewError("no evaluation function bound")

	// ErrExprCompile is the defect raised when an expr-lang program fails
	// to compile.
	ErrExprCompile = NewError("expression compilation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Errors come in two kinds: evaluation-domain errors, which are ordinary
// runtime conditions captured as values, and defects, which indicate a
// broken grammar or caller and always unwind. The kind survives Wrap and
// With.
type Error struct {
	msg    string
	err    error       // Wrapped error (for errors.Unwrap)
	attrs  []slog.Attr // Attributes for structured logging
	domain bool        // Evaluation-domain error rather than a defect
}

// NewError creates a new defect Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// NewEvalError creates a new evaluation-domain Error with a message.
func NewEvalError(msg string) *Error {
	return &Error{msg: msg, domain: true}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// IsDomainError reports whether err is, or wraps, an evaluation-domain
// error. Domain errors are the ones [Expr.Eval] returns as values.
func IsDomainError(err error) bool {
	ee := &Error{}

	return errors.As(err, &ee) && ee.domain
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel this error was derived from.
// Wrap and With return copies, so identity comparison alone would never
// match a sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg && t.domain == e.domain
}

// Domain reports whether the error belongs to the evaluation domain.
func (e *Error) Domain() bool { return e.domain }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:    e.msg,
		err:    err,
		attrs:  e.attrs, // Share attrs
		domain: e.domain,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:    e.msg,
		err:    e.err,
		attrs:  newAttrs,
		domain: e.domain,
	}
}
