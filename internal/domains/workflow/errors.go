package workflow

import (
	"errors"
	"fmt"
)

// =====================================================
// ERROR KINDS
// =====================================================

// Kind phân loại lỗi để handler map sang HTTP status
// thay vì so khớp chuỗi message.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindValidation   Kind = "VALIDATION_ERROR"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindInternal     Kind = "INTERNAL_ERROR"
)

// Error is the failure value returned by every coordinator operation.
type Error struct {
	Kind    Kind
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

// KindOf recovers the kind of err. Errors that did not come from the
// coordinator are reported as KindInternal.
func KindOf(err error) Kind {
	var wfErr *Error
	if errors.As(err, &wfErr) {
		return wfErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// =====================================================
// STORE SENTINELS
// =====================================================
// Repositories return these; the coordinator translates them.

var (
	ErrDraftNotFound       = errors.New("draft not found")
	ErrApprovalNotFound    = errors.New("approval record not found")
	ErrPublicationNotFound = errors.New("publication not found")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrDuplicate           = errors.New("duplicate record")
)

// =====================================================
// CONSTRUCTORS
// =====================================================

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NewInternalError(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}
