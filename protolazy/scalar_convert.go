// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// toScalar constructors and fromScalar readers convert between a Go-typed
// value and the bit-level scalar representation stored in a fieldEntry. Each
// pair is grounded on the canonical wire encoding described in §4.3.

func scalarFromBool(v bool) scalar {
	i := int64(0)
	if v {
		i = 1
	}
	return scalar{kind: kindBool, ival: i}
}

func scalarToBool(v scalar) bool {
	return v.ival != 0
}

func scalarFromInt32(v int32) scalar {
	return scalar{kind: kindInt32, ival: int64(v)}
}

func scalarToInt32(v scalar) int32 {
	return int32(v.ival)
}

func scalarFromUint32(v uint32) scalar {
	return scalar{kind: kindUint32, ival: int64(v)}
}

func scalarToUint32(v scalar) uint32 {
	return uint32(v.ival)
}

func scalarFromSint32(v int32) scalar {
	return scalar{kind: kindSint32, ival: int64(v)}
}

func scalarToSint32(v scalar) int32 {
	return int32(v.ival)
}

func scalarFromInt64(v int64) scalar {
	return scalar{kind: kindInt64, ival: int64(v)}
}

func scalarToInt64(v scalar) int64 {
	return v.ival
}

func scalarFromUint64(v uint64) scalar {
	return scalar{kind: kindUint64, ival: int64(v)}
}

func scalarToUint64(v scalar) uint64 {
	return uint64(v.ival)
}

func scalarFromSint64(v int64) scalar {
	return scalar{kind: kindSint64, ival: int64(v)}
}

func scalarToSint64(v scalar) int64 {
	return v.ival
}

func scalarFromFixed32(v uint32) scalar {
	return scalar{kind: kindFixed32, ival: int64(v)}
}

func scalarToFixed32(v scalar) uint32 {
	return uint32(v.ival)
}

func scalarFromSfixed32(v int32) scalar {
	return scalar{kind: kindSfixed32, ival: int64(v)}
}

func scalarToSfixed32(v scalar) int32 {
	return int32(v.ival)
}

func scalarFromFixed64(v uint64) scalar {
	return scalar{kind: kindFixed64, ival: int64(v)}
}

func scalarToFixed64(v scalar) uint64 {
	return uint64(v.ival)
}

func scalarFromSfixed64(v int64) scalar {
	return scalar{kind: kindSfixed64, ival: int64(v)}
}

func scalarToSfixed64(v scalar) int64 {
	return v.ival
}

func scalarFromFloat(v float32) scalar {
	return scalar{kind: kindFloat, ival: int64(math.Float32bits(v))}
}

func scalarToFloat(v scalar) float32 {
	return math.Float32frombits(uint32(v.ival))
}

func scalarFromDouble(v float64) scalar {
	return scalar{kind: kindDouble, ival: int64(math.Float64bits(v))}
}

func scalarToDouble(v scalar) float64 {
	return math.Float64frombits(uint64(v.ival))
}

func scalarFromString(v string) scalar {
	return scalar{kind: kindString, str: v}
}

func scalarToString(v scalar) string {
	return v.str
}

func scalarFromBytes(v []byte) scalar {
	return scalar{kind: kindBytes, buf: append([]byte(nil), v...)}
}

func scalarToBytes(v scalar) []byte {
	return v.buf
}

// decodeScalarPayload interprets payload (the field's value bytes, with the
// tag already stripped) according to kind's canonical wire encoding, ignoring
// whatever wire type the bytes actually arrived with. Callers that care about
// a wire-type mismatch check for it themselves before calling this; with
// CHECK_CRITICAL_TYPE disabled, applying a kind's decode rules to bytes of a
// different wire type is exactly the "undefined values permitted" case in §7.
func decodeScalarPayload(kind scalarKind, payload []byte) (scalar, error) {
	v, n, err := decodeScalarElement(kind, payload)
	if err != nil {
		return scalar{}, err
	}
	_ = n
	return v, nil
}

// decodeScalarElement is decodeScalarPayload's packed-aware sibling: it
// reports how many leading bytes of payload it consumed, so a packed
// repeated blob (back-to-back elements with no per-element tag) can be
// walked element by element.
func decodeScalarElement(kind scalarKind, payload []byte) (scalar, int, error) {
	switch kind {
	case kindBool:
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed bool payload")
		}
		return scalarFromBool(protowire.DecodeBool(v)), n, nil
	case kindInt32:
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed int32 payload")
		}
		return scalarFromInt32(int32(v)), n, nil
	case kindUint32:
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed uint32 payload")
		}
		return scalarFromUint32(uint32(v)), n, nil
	case kindSint32:
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed sint32 payload")
		}
		return scalarFromSint32(int32(protowire.DecodeZigZag(v))), n, nil
	case kindInt64:
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed int64 payload")
		}
		return scalarFromInt64(int64(v)), n, nil
	case kindUint64:
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed uint64 payload")
		}
		return scalarFromUint64(v), n, nil
	case kindSint64:
		v, n := protowire.ConsumeVarint(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed sint64 payload")
		}
		return scalarFromSint64(protowire.DecodeZigZag(v)), n, nil
	case kindFixed32:
		v, n := protowire.ConsumeFixed32(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed fixed32 payload")
		}
		return scalarFromFixed32(v), n, nil
	case kindSfixed32:
		v, n := protowire.ConsumeFixed32(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed sfixed32 payload")
		}
		return scalarFromSfixed32(int32(v)), n, nil
	case kindFixed64:
		v, n := protowire.ConsumeFixed64(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed fixed64 payload")
		}
		return scalarFromFixed64(v), n, nil
	case kindSfixed64:
		v, n := protowire.ConsumeFixed64(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed sfixed64 payload")
		}
		return scalarFromSfixed64(int64(v)), n, nil
	case kindFloat:
		v, n := protowire.ConsumeFixed32(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed float payload")
		}
		return scalar{kind: kindFloat, ival: int64(v)}, n, nil
	case kindDouble:
		v, n := protowire.ConsumeFixed64(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed double payload")
		}
		return scalar{kind: kindDouble, ival: int64(v)}, n, nil
	case kindString:
		v, n := protowire.ConsumeString(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed string payload")
		}
		return scalarFromString(v), n, nil
	case kindBytes:
		v, n := protowire.ConsumeBytes(payload)
		if n < 0 {
			return scalar{}, 0, parseErrorf("malformed bytes payload")
		}
		return scalarFromBytes(v), n, nil
	default:
		return scalar{}, 0, parseErrorf("unknown scalar kind %d", kind)
	}
}

