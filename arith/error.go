// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arith

// ErrorKind identifies a kind of number error.  The kinds are shared by every
// number representation in this module so callers can identify failures the
// same way regardless of which representation produced them.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidString indicates a textual number does not match the grammar
	// expected for its representation.
	ErrInvalidString = ErrorKind("ErrInvalidString")

	// ErrInvalidLength indicates a byte string or fixed width hex literal does
	// not have exactly the width of its destination.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrValueTooLarge indicates a value exceeds the maximum value its
	// destination can represent.
	ErrValueTooLarge = ErrorKind("ErrValueTooLarge")

	// ErrValueTooSmall indicates a value is less than the minimum value its
	// destination can represent.
	ErrValueTooSmall = ErrorKind("ErrValueTooSmall")

	// ErrDivideByZero indicates a division or modulo with a zero divisor.
	ErrDivideByZero = ErrorKind("ErrDivideByZero")

	// ErrBoundary indicates a fixed width value was incremented past its
	// maximum or decremented past its minimum.
	ErrBoundary = ErrorKind("ErrBoundary")

	// ErrInvalidWidth indicates a request to extend a value to fewer words
	// than its minimal encoding requires.
	ErrInvalidWidth = ErrorKind("ErrInvalidWidth")

	// ErrInvalidBase58 indicates a string is not a valid base58 encoded
	// natural number.
	ErrInvalidBase58 = ErrorKind("ErrInvalidBase58")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a number related error.  It is used to indicate parse,
// range, and arithmetic precondition failures.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
