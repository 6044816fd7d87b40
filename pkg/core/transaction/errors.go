package transaction

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownType is returned for type tags matching no registered
	// transaction variant, see UnknownTypeError.
	ErrUnknownType = errors.New("unknown transaction type")
	// ErrMalformedAttribute is returned when an attribute's data doesn't
	// match its usage.
	ErrMalformedAttribute = errors.New("malformed attribute")
	// ErrMalformedWitness is returned for witness scripts exceeding the
	// allowed sizes.
	ErrMalformedWitness = errors.New("malformed witness")
	// ErrUnsupportedVersion is returned for versions above the maximum known
	// for the transaction type.
	ErrUnsupportedVersion = errors.New("unsupported transaction version")
	// ErrDataMismatch is returned when encoding a transaction whose Data
	// doesn't belong to its Type.
	ErrDataMismatch = errors.New("transaction data doesn't match its type")
	// ErrTrailingData is returned when bytes are left after the transaction.
	ErrTrailingData = errors.New("additional data after the transaction")
)

// UnknownTypeError carries the offending transaction type tag.
type UnknownTypeError struct {
	Type TXType
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: 0x%02x", ErrUnknownType, byte(e.Type))
}

// Unwrap returns ErrUnknownType.
func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// FieldError identifies the field that failed to decode.
type FieldError struct {
	// Field is a path like "attributes[1]" or "InvocationTX.Gas".
	Field string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// withField wraps err into FieldError for the given field, prefixing the
// path if err already identifies a nested field.
func withField(name string, err error) error {
	if fe, ok := err.(*FieldError); ok {
		sep := "."
		if strings.HasPrefix(fe.Field, "[") {
			sep = ""
		}
		return &FieldError{Field: name + sep + fe.Field, Err: fe.Err}
	}
	return &FieldError{Field: name, Err: err}
}
