// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors implements functions to manipulate errors.
package errors

import (
	"fmt"
)

// New formats a string according to the format specifier and arguments and
// returns an error that has a "protolazy" prefix.
func New(f string, x ...interface{}) error {
	for i := 0; i < len(x); i++ {
		if e, ok := x[i].(*prefixError); ok {
			x[i] = e.s // avoid "protolazy: " prefix when chaining
		}
	}
	return &prefixError{s: fmt.Sprintf(f, x...)}
}

type prefixError struct{ s string }

func (e *prefixError) Error() string { return "protolazy: " + e.s }

// Kind classifies the failure modes a lazy accessor operation can report.
type Kind int

const (
	// OutOfRange is reported when a field number falls outside
	// [1, MaxFieldNumber].
	OutOfRange Kind = iota
	// WireTypeMismatch is reported when the wire type recorded for a field
	// is incompatible with the type requested by the caller.
	WireTypeMismatch
	// ValueTypeInvalid is reported when a setter receives a value of the
	// wrong kind, or a numeric value outside the target type's range.
	ValueTypeInvalid
	// ParseError is reported when the source buffer contains malformed or
	// truncated wire bytes.
	ParseError
	// InvalidState is reported when an operation would violate the
	// mutable/immutable contract of a sub-message view.
	InvalidState
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "OUT_OF_RANGE"
	case WireTypeMismatch:
		return "WIRE_TYPE_MISMATCH"
	case ValueTypeInvalid:
		return "VALUE_TYPE_INVALID"
	case ParseError:
		return "PARSE_ERROR"
	case InvalidState:
		return "INVALID_STATE"
	default:
		return "UNKNOWN"
	}
}

// KindError is an error tagged with one of the Kind classifications above.
// Callers that need to branch on failure mode should use errors.As to
// recover it.
type KindError struct {
	Kind Kind
	Msg  string
}

func (e *KindError) Error() string { return "protolazy: " + e.Kind.String() + ": " + e.Msg }

// Wrap constructs a KindError, formatting Msg like fmt.Sprintf.
func Wrap(k Kind, format string, x ...interface{}) error {
	return &KindError{Kind: k, Msg: fmt.Sprintf(format, x...)}
}
