package converter

import "errors"

var (
	// ErrParse marks conversions that failed because the markup could not be parsed.
	ErrParse = errors.New("parse failed")
	// ErrWrite marks conversions that failed because the output sink rejected a write.
	ErrWrite = errors.New("write failed")
)

// ConversionError is returned by every failed conversion. It matches its
// Kind (ErrParse or ErrWrite) and its cause with errors.Is and errors.As.
type ConversionError struct {
	Kind error
	Err  error
}

func (e *ConversionError) Error() string {
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *ConversionError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
