// Package errorkit holds the error kind type that bcl declares its sentinel errors with.
//
// Each failure a bcl container can report is a const of this type:
//
//	const ErrKeyNotFound errorkit.Error = "the given key was not present"
//
// Call sites attach the details of the failure with F,
// and callers still match the kind with errors.Is:
//
//	return ErrKeyNotFound.F("key: %v", key)
//
//	if errors.Is(err, collections.ErrKeyNotFound) { ... }
package errorkit

import (
	"errors"
	"fmt"
)

// Error is an error kind that can be declared with the const keyword.
type Error string

func (err Error) Error() string { return string(err) }

// Wrap returns an error of this kind caused by cause.
// errors.Is and errors.As see both the kind and the cause.
// A nil cause returns the bare kind.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return kindError{kind: err, cause: cause}
}

// F returns an error of this kind with a formatted detail message.
// A %w verb in format keeps the wrapped error matchable.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

// kindError renders as "[kind] detail".
type kindError struct {
	kind  Error
	cause error
}

func (e kindError) Error() string {
	return fmt.Sprintf("[%s] %s", e.kind, e.cause.Error())
}

func (e kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func (e kindError) As(target any) bool {
	return errors.As(e.kind, target) || errors.As(e.cause, target)
}
