package errors

import "strings"

// Errors is a non-empty list of errors presented as a single error.
// A nil Errors means no error occurred, so callers can compare against
// nil without counting; any non-nil Errors holds at least one entry.
type Errors interface {
	error
	// Slice returns a copy of the underlying errors. Never empty.
	Slice() []error
	// Len is always > 0 for a non-nil Errors.
	Len() int
}

type errorList []error

func (l errorList) Slice() []error {
	return append([]error(nil), l...)
}

func (l errorList) Len() int {
	return len(l)
}

func (l errorList) Error() string {
	msgs := make([]string, 0, len(l))
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// flatten expands err into its component errors if it is itself an Errors.
func flatten(err error) []error {
	if errs, ok := err.(Errors); ok && errs != nil {
		return errs.Slice()
	}
	return []error{err}
}

// Append adds err to errs, ignoring nil errors. Either argument may be
// nil; the result is nil only when both are.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var l errorList
	if errs != nil {
		l = errorList(errs.Slice())
	}
	l = append(l, flatten(err)...)
	return l
}

// Combine merges two (possibly nil, possibly multi) errors into one.
func Combine(e, f error) error {
	if e == nil {
		return f
	}
	if f == nil {
		return e
	}
	return append(errorList(flatten(e)), flatten(f)...)
}

// Defer combines the result of an error-returning cleanup function,
// typically a Close, into *err:
//
//	defer errors.Defer(&err, f.Close)
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
