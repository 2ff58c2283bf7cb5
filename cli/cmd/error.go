package cmd

import (
	"log/slog"
)

// Error represents a CLI command error with structured logging support.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error renders "<msg>: <err>", dropping either component that is unset.
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return ""
	}
}

func (e *Error) Unwrap() error { return e.err }

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

// Wrap returns a copy of e that wraps err as its cause.
// Attributes are shared with the receiver.
func (e *Error) Wrap(err error) *Error {
	wrapped := *e
	wrapped.err = err

	return &wrapped
}

// With returns a copy of e carrying the additional structured attributes.
// The receiver is never modified.
func (e *Error) With(attrs ...slog.Attr) *Error {
	extended := *e
	extended.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return &extended
}

var (
	ErrReadSource  = NewError("read result document")
	ErrJSONMarshal = NewError("marshal JSON")
	ErrYAMLMarshal = NewError("marshal YAML")
	ErrExpression  = NewError("compile expression")
	ErrWriteConfig = NewError("write configuration file")
	ErrFileExists  = NewError("file exists (use --force to overwrite)")
)
