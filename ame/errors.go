package ame

import "errors"

var (
	// ErrTooShortLine is returned when a data line is shorter than a
	// required column range.
	ErrTooShortLine = errors.New("ame: line too short")
	// ErrStrIndex is returned when a column range falls inside a
	// multi-byte character of the line.
	ErrStrIndex = errors.New("ame: column range splits a multi-byte character")
	// ErrInvalidData is returned, wrapped in an IOError, when a line is
	// not valid UTF-8.
	ErrInvalidData = errors.New("ame: invalid UTF-8 data")
)

// IOError reports a failure reading from the underlying line source.
// Decode failures wrap ErrInvalidData; genuine read faults wrap the
// error reported by the source itself.
type IOError struct {
	Err error
}

// Error formats the read failure with the wrapped cause.
func (e *IOError) Error() string {
	return "ame: read error: " + e.Err.Error()
}

// Unwrap returns the underlying cause so IOError participates in
// errors.Is and errors.As.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseIntError reports an integer column that failed to parse. Err is
// the *strconv.NumError from the conversion and carries the offending
// text in its Num field.
type ParseIntError struct {
	Err error
}

func (e *ParseIntError) Error() string {
	return "ame: int parsing error: " + e.Err.Error()
}

func (e *ParseIntError) Unwrap() error {
	return e.Err
}

// ParseFloatError reports a float column that failed to parse. Err is
// the *strconv.NumError from the conversion and carries the offending
// text in its Num field.
type ParseFloatError struct {
	Err error
}

func (e *ParseFloatError) Error() string {
	return "ame: float parsing error: " + e.Err.Error()
}

func (e *ParseFloatError) Unwrap() error {
	return e.Err
}
