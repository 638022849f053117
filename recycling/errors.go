// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures of the Ask and Find-points operations.
type ErrorKind int

const (
	// ErrorKindUnknown is an unclassified failure.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindInvalidInput is a missing or empty required field.
	ErrorKindInvalidInput
	// ErrorKindModelUnavailable is a failed call to the language model.
	ErrorKindModelUnavailable
	// ErrorKindNoJSON is a model reply without a JSON object.
	ErrorKindNoJSON
	// ErrorKindMalformedJSON is a model reply whose JSON object does not parse.
	ErrorKindMalformedJSON
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidInput:
		return "invalid_input"
	case ErrorKindModelUnavailable:
		return "model_unavailable"
	case ErrorKindNoJSON:
		return "no_json_found"
	case ErrorKindMalformedJSON:
		return "malformed_json"
	default:
		return "unknown"
	}
}

// Error is the error returned by the recycling pipeline. RawResponse carries
// the model reply for extraction failures.
type Error struct {
	Kind        ErrorKind
	Message     string
	RawResponse string
	Err         error
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

// KindOf returns the kind of err, or ErrorKindUnknown if err is not an *Error.
func KindOf(err error) ErrorKind {
	var recErr *Error
	if errors.As(err, &recErr) {
		return recErr.Kind
	}

	return ErrorKindUnknown
}

// IsInvalidInput reports whether err is a caller input error.
func IsInvalidInput(err error) bool {
	return KindOf(err) == ErrorKindInvalidInput
}

// IsModelUnavailable reports whether err is a failed model call.
func IsModelUnavailable(err error) bool {
	return KindOf(err) == ErrorKindModelUnavailable
}

// IsExtractionError reports whether err is a failure to read a verdict out of the model reply.
func IsExtractionError(err error) bool {
	kind := KindOf(err)

	return kind == ErrorKindNoJSON || kind == ErrorKindMalformedJSON
}
