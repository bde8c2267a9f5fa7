package types

import (
	"errors"
	"fmt"
)

// Kind represents the category of error
type Kind int

const (
	KindOther Kind = iota
	// KindConfiguration is returned when client construction parameters are
	// invalid or missing. Never worth retrying.
	KindConfiguration
	// KindUpload covers transport and server failures of an upload call.
	KindUpload
	// KindStatus covers status transport failures, jobs that reached FAILED,
	// and polling that ran out of checks.
	KindStatus
	// KindRetrieve covers retrieval transport failures, unresolvable
	// addressing, and completed jobs missing a request id.
	KindRetrieve
	// KindLedger wraps failures of credit ledger reads and writes.
	KindLedger
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindUpload:
		return "upload"
	case KindStatus:
		return "status"
	case KindRetrieve:
		return "retrieve"
	case KindLedger:
		return "ledger"
	default:
		return "other"
	}
}

// Error represents a client error with a kind
type Error struct {
	kind Kind
	msg  string
	err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.err.Error())
	}
	return e.msg
}

// Kind returns the error kind
func (e *Error) Kind() Kind {
	return e.kind
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.err
}

// NewError creates a new error with the given kind and message
func NewError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func NewErrorf(kind Kind, msg string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(msg, args...)}
}

// WrapError wraps an existing error with a kind and message
func WrapError(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

// KindOf reports the kind of the outermost *Error in err's chain, or KindOther.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindOther
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
