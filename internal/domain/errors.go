package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain rule violations so callers can branch on
// the class of failure instead of parsing messages.
type ErrorKind string

const (
	ErrInvalidCurrency   ErrorKind = "invalid_currency"
	ErrInvalidAmount     ErrorKind = "invalid_amount"
	ErrInvalidSku        ErrorKind = "invalid_sku"
	ErrInvalidQuantity   ErrorKind = "invalid_quantity"
	ErrInvalidIdentifier ErrorKind = "invalid_identifier"
	ErrCurrencyMismatch  ErrorKind = "currency_mismatch"
	ErrNegativeResult    ErrorKind = "negative_result"
	ErrInvalidFactor     ErrorKind = "invalid_factor"
	ErrDuplicateSku      ErrorKind = "duplicate_sku"
	ErrItemLimitExceeded ErrorKind = "item_limit_exceeded"
)

var ErrOrderNotFound = errors.New("order not found")

// Error is a domain rule violation with a machine-checkable kind and a
// human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or the empty string if err is not a
// domain error.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
