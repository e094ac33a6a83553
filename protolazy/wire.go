// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protolazy implements the lazy field accessor that sits between
// protocol-buffers wire bytes and a generated message wrapper: it indexes a
// source buffer without decoding payloads, decodes individual fields only on
// first typed access, and re-serializes a mix of untouched raw ranges and
// mutated entries without requiring the caller's type descriptors.
package protolazy

import (
	"math"

	"github.com/alashui/protolazy/internal/checks"
	"github.com/alashui/protolazy/internal/errors"

	"google.golang.org/protobuf/encoding/protowire"
)

// FieldNumber identifies a field within a message by its declared number.
type FieldNumber = protowire.Number

// MaxFieldNumber is the largest field number the wire format can address.
const MaxFieldNumber FieldNumber = 1<<29 - 1

// defaultPivot matches the accessor's default storage-representation hint.
const defaultPivot FieldNumber = 24

// scalarKind tags the Go-level representation backing a Decoded or Repeated
// entry. It does not appear on the wire; the wire only knows wire types.
type scalarKind uint8

const (
	kindInvalid scalarKind = iota
	kindBool
	kindInt32
	kindUint32
	kindSint32
	kindInt64
	kindUint64
	kindSint64
	kindFixed32
	kindSfixed32
	kindFixed64
	kindSfixed64
	kindFloat
	kindDouble
	kindString
	kindBytes
)

// canonicalWireType returns the one wire type a write of kind always
// produces, per the mapping in the package's scalar encoding rules:
// varint for the integral/bool kinds, 64-bit for fixed64/sfixed64/double,
// length-delimited for string/bytes, and 32-bit for fixed32/sfixed32/float.
func canonicalWireType(kind scalarKind) protowire.Type {
	switch kind {
	case kindBool, kindInt32, kindUint32, kindSint32, kindInt64, kindUint64, kindSint64:
		return protowire.VarintType
	case kindFixed64, kindSfixed64, kindDouble:
		return protowire.Fixed64Type
	case kindString, kindBytes:
		return protowire.BytesType
	case kindFixed32, kindSfixed32, kindFloat:
		return protowire.Fixed32Type
	default:
		return protowire.Type(-1)
	}
}

// scalar is the materialized value of a Decoded entry or one element of a
// Repeated entry. Numeric kinds share the ival field as a raw bit pattern
// (sign-extended for signed kinds, zero-extended for unsigned, and
// reinterpreted via math.Float32bits/Float64bits for float/double); this
// keeps the tagged union to a single struct instead of one field per kind.
type scalar struct {
	kind scalarKind
	ival int64
	str  string
	buf  []byte
}

func wireTypeMismatch(want, got protowire.Type) error {
	return errors.Wrap(errors.WireTypeMismatch, "Expected wire type: %d but found: %d", want, got)
}

func parseErrorf(format string, args ...interface{}) error {
	return errors.Wrap(errors.ParseError, format, args...)
}

func outOfRangef(format string, args ...interface{}) error {
	return errors.Wrap(errors.OutOfRange, format, args...)
}

func valueTypeInvalidf(format string, args ...interface{}) error {
	return errors.Wrap(errors.ValueTypeInvalid, format, args...)
}

func invalidStatef(format string, args ...interface{}) error {
	return errors.Wrap(errors.InvalidState, format, args...)
}

// checksBounds reports whether field-number bounds are enforced for a read;
// writes additionally enforce bounds whenever CHECK_TYPE is on.
func checksBounds(forWrite bool) bool {
	return checks.Bounds || (forWrite && checks.Type)
}

// checksFloatRange reports whether SetFloat validates that a float64 input
// fits the float32 range before narrowing it, per the VALUE_TYPE_INVALID
// case in §4.3.
func checksFloatRange() bool {
	return checks.CriticalType
}

func isFiniteFloat64(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func isFiniteFloat32(v float32) bool {
	return !math.IsInf(float64(v), 0) && !math.IsNaN(float64(v))
}
