package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation               ErrorKind = "VALIDATION"
	KindInsufficientOriginalText ErrorKind = "INSUFFICIENT_ORIGINAL_TEXT"
	KindExternalLinksNotAllowed  ErrorKind = "EXTERNAL_LINKS_NOT_ALLOWED"
	KindEmbedAlreadyExists       ErrorKind = "EMBED_ALREADY_EXISTS"
	KindEmbedTargetNotFound      ErrorKind = "EMBED_TARGET_NOT_FOUND"
	KindEmbedTargetCrossCampus   ErrorKind = "EMBED_TARGET_CROSS_CAMPUS"
	KindEmbedTargetInactive      ErrorKind = "EMBED_TARGET_INACTIVE"
	KindEmbedAbuse               ErrorKind = "EMBED_ABUSE"
	KindRateLimitExceeded        ErrorKind = "RATE_LIMIT_EXCEEDED"
)

// Error is the closed error surface of the core: every gate rejection is
// one of the kinds above, with a human message and optional details.
type Error struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NewErrorWithDetails(kind ErrorKind, message string, details map[string]any) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// IsKind reports whether err is (or wraps) a core Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
