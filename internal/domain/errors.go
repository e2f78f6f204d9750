package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ConflictError reports an exclusivity violation.
type ConflictError struct {
	Key        ExclusivityKey
	ExistingID string
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("exclusive license already active for work %s in %s/%s",
		e.Key.WorkID, e.Key.Territory, e.Key.MediaType)
	if e.ExistingID != "" {
		msg += " (license " + e.ExistingID + ")"
	}
	return msg
}

// ValidationError wraps one or more input problems.
type ValidationError struct {
	Problems error
}

func (e *ValidationError) Error() string {
	if e.Problems == nil {
		return "invalid input"
	}
	return "invalid input: " + e.Problems.Error()
}

func (e *ValidationError) Unwrap() error { return e.Problems }

// Invalid builds a ValidationError from a single message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Problems: fmt.Errorf(format, args...)}
}

// StorageError reports a failed call to the record store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError unless it already carries a domain
// error kind.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		nf *NotFoundError
		cf *ConflictError
		ve *ValidationError
		se *StorageError
	)
	if errors.As(err, &nf) || errors.As(err, &cf) || errors.As(err, &ve) ||
		errors.As(err, &se) || errors.Is(err, ErrForbidden) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// ErrForbidden reports a session lacking the role an operation needs.
var ErrForbidden = errors.New("operation not allowed for this role")
