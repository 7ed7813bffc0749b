// Package faults defines the failure taxonomy shared by the domain
// services. Every service method returns either a result or an *Error
// with an enumerated Kind, so callers branch on the kind while the
// GraphQL layer maps it to a user-facing message.
package faults

import "fmt"

// Kind classifies a domain failure.
type Kind int

const (
	// Internal covers unexpected storage or infrastructure errors. The
	// cause is logged but never shown to the caller.
	Internal Kind = iota
	NotFound
	AlreadyExists
	NotOwner
	NotAllowed
	WrongPassword
	InvalidToken
	Invalid
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case AlreadyExists:
		return "already_exists"
	case NotOwner:
		return "not_owner"
	case NotAllowed:
		return "not_allowed"
	case WrongPassword:
		return "wrong_password"
	case InvalidToken:
		return "invalid_token"
	case Invalid:
		return "invalid"
	default:
		return "internal"
	}
}

// Error is a domain failure with a user-facing message and an optional
// wrapped cause (only ever set for Internal).
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Public returns the message safe to show to an API caller.
func (e *Error) Public() string { return e.Message }

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	fe, ok := err.(*Error)
	return ok && fe.Kind == kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Internal failure around an unexpected error. The public
// message stays generic; the cause travels with the error for logging.
func Wrap(err error, message string) *Error {
	return &Error{Kind: Internal, Message: message, cause: err}
}
