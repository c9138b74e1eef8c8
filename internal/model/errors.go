package model

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned by stores when a unique constraint rejects a write.
var ErrDuplicate = errors.New("duplicate")

// ErrorKind is the closed set of application error variants.
type ErrorKind int

const (
	// KindInternal is an unexpected failure; its message is never shown to clients.
	KindInternal ErrorKind = iota
	// KindValidation is a missing or invalid request field.
	KindValidation
	// KindConflict is a uniqueness violation.
	KindConflict
	// KindNotFound is a reference to a missing user.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is an application error with a client-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a KindValidation error.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewConflictError creates a KindConflict error.
func NewConflictError(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// NewNotFoundError creates a KindNotFound error.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// NewInternalError creates a KindInternal error wrapping err.
func NewInternalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal Server Error", Err: err}
}

// Client-facing messages.
const (
	MsgUserNotFound     = "User not found"
	MsgEmailTaken       = "A user with this email already exists."
	MsgNoFieldsToUpdate = "No fields to update"
	MsgMissingID        = "The id request param is missing."
	MsgInvalidPayload   = "Invalid request payload"
	MsgUserDeleted      = "User deleted successfully"
)

// ErrUserNotFound is the shared not-found error for user lookups.
func ErrUserNotFound() *Error {
	return NewNotFoundError(MsgUserNotFound)
}

// ErrEmailTaken is the shared conflict error for duplicate emails.
func ErrEmailTaken(err error) *Error {
	return NewConflictError(MsgEmailTaken, err)
}
