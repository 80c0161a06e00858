// Package apperrors defines the error kinds the memorizer core reports to its callers.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category. The transport layer maps kinds to status codes.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindAccessDenied Kind = "access_denied"
	KindNotFound     Kind = "not_found"
	KindCycle        Kind = "cycle"
	KindDuplicateID  Kind = "duplicate_id"
	KindConflict     Kind = "conflict"
	KindStorage      Kind = "storage"
)

// Sentinels for errors.Is. Any *Error matches the sentinel of the same kind.
var (
	ErrValidation   = &Error{Kind: KindValidation}
	ErrAccessDenied = &Error{Kind: KindAccessDenied}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrCycle        = &Error{Kind: KindCycle}
	ErrDuplicateID  = &Error{Kind: KindDuplicateID}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrStorage      = &Error{Kind: KindStorage}
)

// Error carries a kind plus an optional offending field and a detail string.
type Error struct {
	Kind   Kind
	Field  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
// Errors that carry no kind are treated as storage failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// Validation reports a malformed or out-of-range input field.
func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Detail: fmt.Sprintf(format, args...)}
}

// NotFound reports that an entity does not exist.
func NotFound(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf("%s %v not found", entity, id)}
}

// AccessDenied reports that an entity exists but the caller lacks rights on it.
func AccessDenied(entity string, id any) *Error {
	return &Error{Kind: KindAccessDenied, Detail: fmt.Sprintf("access to %s %v is denied", entity, id)}
}

// Cycle reports that nesting labelID under parentID would close a loop.
func Cycle(labelID, parentID any) *Error {
	return &Error{Kind: KindCycle, Detail: fmt.Sprintf("label %v cannot be nested under %v", labelID, parentID)}
}

// DuplicateID reports that a record with the same caller-supplied id already exists.
func DuplicateID(entity string, id any) *Error {
	return &Error{Kind: KindDuplicateID, Detail: fmt.Sprintf("%s %v already exists", entity, id)}
}

// Conflict reports a write that lost against concurrent or pre-existing state.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Detail: fmt.Sprintf(format, args...)}
}

// Storage wraps a failure of the storage collaborator.
func Storage(op string, err error) *Error {
	return &Error{Kind: KindStorage, Detail: op, Err: err}
}

// AsStorage returns err unchanged when it already carries a kind and wraps it as a storage failure otherwise.
func AsStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return Storage(op, err)
}
