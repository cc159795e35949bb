// Package errs defines the failure kinds reported by hbs.
//
// Every component wraps its failures with one of the sentinel kinds so the
// caller can classify them with errors.Is while keeping the original cause:
//
//	if errors.Is(err, errs.ErrJSONParse) {
//	    // a data source was not valid JSON
//	}
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgumentType is returned when an option is neither a string nor a list of strings
	ErrInvalidArgumentType = errors.New("invalid argument type")
	// ErrJSONParse is returned when a data source cannot be decoded
	ErrJSONParse = errors.New("json parse error")
	// ErrModuleLoad is returned when a helper module cannot be loaded
	ErrModuleLoad = errors.New("module load error")
	// ErrFileIO is returned for read, write and mkdir failures
	ErrFileIO = errors.New("file i/o error")
	// ErrTemplateCompile is returned when a template cannot be parsed or executed
	ErrTemplateCompile = errors.New("template compile error")
	// ErrStdinNotJSON is returned when standard input is not a JSON object
	ErrStdinNotJSON = errors.New("stdin is not json")
)

// Error carries a failure kind, the source it relates to and the cause
type Error struct {
	Kind   error
	Source string
	Err    error
}

// Wrap builds an *Error of the given kind
func Wrap(kind error, source string, err error) error {
	return &Error{Kind: kind, Source: source, Err: err}
}

// Error implements error
func (e *Error) Error() string {
	switch {
	case e.Source != "" && e.Err != nil:
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Source, e.Err)
	case e.Source != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Source)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
