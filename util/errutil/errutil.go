// Package errutil provides utilty of errors.
package errutil

import (
	"errors"
	"io"
	"strings"
)

// Writer is wraper of io.Writer with internal Error.
// The first error of Write() is remaindered in internal,
// and trailing Write() is not executed.
type Writer struct {
	w   io.Writer
	err error
}

func NewErrWriter(w io.Writer) *Writer { return &Writer{w: w} }

// return internal error.
func (ew *Writer) Err() error { return ew.err }

func (ew *Writer) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, nil // do nothing
	}
	var n int
	n, ew.err = ew.w.Write(p)
	return n, nil
}

// MultiError collects errors and reports them as one.
// The zero value is ready to use.
type MultiError struct {
	errs []error
}

func NewMultiError() *MultiError {
	return &MultiError{errs: make([]error, 0, 4)}
}

// Add given error into Internal.
// nil error is ignored.
func (me *MultiError) Add(err error) {
	if err == nil {
		return
	}
	me.errs = append(me.errs, err)
}

// Len returns number of collected errors.
func (me *MultiError) Len() int { return len(me.errs) }

// Err returns collected errors joined to one error, or nil when nothing collected.
// The returned error matches each collected error by errors.Is.
func (me *MultiError) Err() error {
	switch len(me.errs) {
	case 0:
		return nil
	case 1:
		return me.errs[0]
	}
	return joinedError(append([]error(nil), me.errs...))
}

type joinedError []error

func (je joinedError) Error() string {
	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, err := range je {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (je joinedError) Is(target error) bool {
	for _, err := range je {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
