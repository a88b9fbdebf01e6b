package encio

import (
	"errors"
	"runtime"
)

// Errors in ieee754 are split in two, following the io/non-io line.
// IOError indicates a bad io.Writer, and the caller should stop using it.
// Error indicates the caller asked for something that cannot be done, such as an unusable configuration.
//
// They can be checked with
//
//	var encErr encio.Error
//	var ioErr encio.IOError
//	if errors.As(err, &encErr) {
//		//handle usage error
//	} else if errors.As(err, &ioErr) {
//		//handle io error
//	}
//
// These errors will be wrapped by IOError or Error.
var (
	// ErrMalformed is returned when input text cannot be turned into a float64.
	ErrMalformed = errors.New("malformed")

	// ErrBadConfig is returned when a configuration value cannot be used.
	ErrBadConfig = errors.New("bad config")

	// ErrBadWriter is returned when an io.Writer reports more bytes written than it was given.
	ErrBadWriter = errors.New("bad io.Writer implementation")
)

// NewIOError returns an IOError wrapping err with the given message.
// err is typically the error returned from the io.Writer, or another error describing why the writer isn't operating correctly.
// If message is empty, it is filled with the calling function's name.
func NewIOError(err error, message string) error {
	if err == nil {
		return NewError(errors.New("unknown error"), "trying to create new IOError", "encio.NewIOError")
	}
	if message == "" {
		message = "in " + GetCaller(1)
	}

	return IOError{
		Err:     err,
		Message: message,
	}
}

// IOError is returned when io errors occur.
type IOError struct {
	Err     error
	Message string
}

// Error implements error
func (e IOError) Error() string {
	if e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap implements errors's Unwrap()
func (e IOError) Unwrap() error {
	return e.Err
}

// NewError returns an Error wrapping err with message and caller.
// If caller is empty, it is automatically filled with the calling function's name.
func NewError(err error, message string, caller string) error {
	if caller == "" {
		caller = GetCaller(1)
	}

	return Error{
		Err:     err,
		Message: message,
		Caller:  caller,
	}
}

// Error is returned when a request cannot be carried out.
type Error struct {
	Err     error
	Message string
	Caller  string
}

// Error implements error
func (e Error) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap()
func (e Error) Unwrap() error {
	return e.Err
}

// GetCaller returns the name of the calling function, skipping skip functions.
// i.e. 0 returns the calling function, 1 the function calling that etc...
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "Unknown Function"
	}

	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}
