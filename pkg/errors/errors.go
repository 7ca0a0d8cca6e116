/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure. Validation codes describe a single
// rejected configuration line; the remaining codes describe infrastructure
// failures (I/O, HTTP) that abort an operation as a whole.
type Code string

// Validation error codes. One of these is attached to every rejected line.
const (
	ErrCodeUnknownKeyword      Code = "UNKNOWN_KEYWORD"
	ErrCodeTooFewArguments     Code = "TOO_FEW_ARGUMENTS"
	ErrCodeTooManyArguments    Code = "TOO_MANY_ARGUMENTS"
	ErrCodeTakesNoArguments    Code = "TAKES_NO_ARGUMENTS"
	ErrCodeInvalidInteger      Code = "INVALID_INTEGER"
	ErrCodeInvalidAscii        Code = "INVALID_ASCII"
	ErrCodeInvalidCharacters   Code = "INVALID_CHARACTERS"
	ErrCodeInvalidEnumValue    Code = "INVALID_ENUM_VALUE"
	ErrCodeNoEnumValuesDefined Code = "NO_ENUM_VALUES_DEFINED"
	ErrCodeInvalidIPAddress    Code = "INVALID_IP_ADDRESS"
	ErrCodeInvalidNetwork      Code = "INVALID_NETWORK"
	ErrCodeMissingNetworkPart  Code = "MISSING_NETWORK_PART"
	ErrCodeInvalidStringFormat Code = "INVALID_STRING_FORMAT"
	ErrCodeMissingArgument     Code = "MISSING_ARGUMENT"
)

// Infrastructure error codes.
const (
	ErrCodeIOError           Code = "IO_ERROR"
	ErrCodeInternal          Code = "INTERNAL_ERROR"
	ErrCodeInvalidRequest    Code = "INVALID_REQUEST"
	ErrCodeMethodNotAllowed  Code = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"
)

// StructuredError is an error carrying a machine-readable code alongside a
// human-readable message. The message is what end users see in reports; the
// code is what callers branch on.
type StructuredError struct {
	Code    Code   `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	return e.Message
}

// New creates a StructuredError with the given code and message.
func New(code Code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with the given code and formatted message.
func Newf(code Code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code from err, unwrapping as needed.
// Returns the empty Code when err carries no StructuredError.
func CodeOf(err error) Code {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
