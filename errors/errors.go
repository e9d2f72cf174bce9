// Package errors is the repo's error toolkit: formatted construction,
// message wrapping over github.com/pkg/errors, and the multi-error
// list in multi.go.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errorf creates a new error from a format string.
var Errorf = fmt.Errorf

// New is an alias of Errorf.
var New = Errorf

// WrapfOrNil prefixes err with a formatted message. A nil err stays
// nil, so call sites can wrap unconditionally.
func WrapfOrNil(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}

// Wrapf prefixes err with a formatted message, or creates a new error
// from the message alone when err is nil. Never returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return Errorf(format, args...)
	}
	return WrapfOrNil(err, format, args...)
}

// WithStack and Cause come straight from github.com/pkg/errors.
var (
	WithStack = errors.WithStack
	Cause     = errors.Cause
)
