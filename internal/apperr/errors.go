package apperr

import (
	"errors"
	"fmt"
)

var ErrInvalidTransaction error = errors.New("invalid transaction")
var ErrForbidden error = errors.New("forbidden")

// ValidationError reports caller input that is structurally or semantically invalid.
// The message is returned to the caller as is.
type ValidationError struct {
	Message string
	cause   error
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// InvalidTransaction is a ValidationError raised while decoding a raw transaction.
func InvalidTransaction(message string) *ValidationError {
	return &ValidationError{Message: message, cause: ErrInvalidTransaction}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// SendTransactionError is returned when the execution service answers with a
// non-200 status or an explicit error field.
type SendTransactionError struct {
	Message string
}

func (e *SendTransactionError) Error() string {
	return e.Message
}

type ReceiptErrorKind int

const (
	// Transient means the receipt could not be fetched; the transaction may still be mined.
	Transient ReceiptErrorKind = iota
	// Malformed means a receipt exists but carries no logs.
	Malformed
	// OutOfRange means the transaction was executed and reverted.
	OutOfRange
)

func (k ReceiptErrorKind) String() string {
	switch k {
	case Transient:
		return "transient"
	case Malformed:
		return "malformed"
	case OutOfRange:
		return "out_of_range"
	}
	return fmt.Sprintf("ReceiptErrorKind(%d)", int(k))
}

type ReceiptError struct {
	Kind    ReceiptErrorKind
	Message string
	Err     error
}

func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReceiptError) Unwrap() error {
	return e.Err
}
