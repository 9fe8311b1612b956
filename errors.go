// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastint

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error. The error taxonomy
// is purely about input validity: once the inputs are validated the
// algorithms are total and deterministic.
const (
	// ErrInvalidDivisor signifies that a division was attempted with a zero
	// divisor.
	ErrInvalidDivisor ErrorCode = iota

	// ErrNegativeOperand signifies that a square root was requested for a
	// negative value.
	ErrNegativeOperand

	// ErrUnsupportedRadix signifies that a string conversion was requested
	// with a base outside the supported [2, MaxBase] range.
	ErrUnsupportedRadix

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidDivisor:   "ErrInvalidDivisor",
	ErrNegativeOperand:  "ErrNegativeOperand",
	ErrUnsupportedRadix: "ErrUnsupportedRadix",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies an invalid operand passed to one of the fastint entry
// points. The caller can use type assertions or IsErrorCode to access the
// ErrorCode field and ascertain the specific reason for the failure.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// makeError creates an Error given a set of arguments. The error code must
// be one of the error codes provided by this package.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is an Error with a matching error code.
func IsErrorCode(err error, c ErrorCode) bool {
	e, ok := err.(Error)
	return ok && e.ErrorCode == c
}
