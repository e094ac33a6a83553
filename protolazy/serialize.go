// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import "google.golang.org/protobuf/encoding/protowire"

// Serialize implements §4.8: it walks every live entry in ascending
// field-number order and appends its encoding to a fresh buffer. Raw entries
// are re-emitted verbatim from the source buffer (zero-copy for untouched
// fields); Decoded, Repeated, and Message entries are encoded canonically.
// Serialize never mutates the accessor.
func (a *Accessor) Serialize() ([]byte, error) {
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	var out []byte
	var serializeErr error
	a.forEachOrdered(func(n FieldNumber, e *fieldEntry) bool {
		b, err := serializeEntry(a.src, n, e, out)
		if err != nil {
			serializeErr = err
			return false
		}
		out = b
		return true
	})
	if serializeErr != nil {
		return nil, serializeErr
	}
	return out, nil
}

func serializeEntry(src []byte, n FieldNumber, e *fieldEntry, out []byte) ([]byte, error) {
	switch e.tag {
	case tagCleared:
		return out, nil

	case tagRaw:
		for _, r := range e.ranges {
			out = append(out, src[r.offset:r.offset+r.length]...)
		}
		return out, nil

	case tagDecoded:
		out = protowire.AppendTag(out, n, e.wire)
		return appendScalarPayload(out, e.val), nil

	case tagRepeated:
		return appendRepeatedField(out, n, e)

	case tagMessage:
		child, err := e.child.Serialize()
		if err != nil {
			return nil, err
		}
		out = protowire.AppendTag(out, n, protowire.BytesType)
		out = protowire.AppendVarint(out, uint64(len(child)))
		return append(out, child...), nil

	default:
		return out, nil
	}
}

// appendScalarPayload appends v's canonical wire encoding (tag already
// written by the caller) to out.
func appendScalarPayload(out []byte, v scalar) []byte {
	switch v.kind {
	case kindBool:
		return protowire.AppendVarint(out, protowire.EncodeBool(v.ival != 0))
	case kindInt32:
		return protowire.AppendVarint(out, uint64(int64(int32(v.ival))))
	case kindUint32:
		return protowire.AppendVarint(out, uint64(uint32(v.ival)))
	case kindSint32:
		return protowire.AppendVarint(out, protowire.EncodeZigZag(int64(int32(v.ival))))
	case kindInt64:
		return protowire.AppendVarint(out, uint64(v.ival))
	case kindUint64:
		return protowire.AppendVarint(out, uint64(v.ival))
	case kindSint64:
		return protowire.AppendVarint(out, protowire.EncodeZigZag(v.ival))
	case kindFixed32:
		return protowire.AppendFixed32(out, uint32(v.ival))
	case kindSfixed32:
		return protowire.AppendFixed32(out, uint32(int32(v.ival)))
	case kindFixed64:
		return protowire.AppendFixed64(out, uint64(v.ival))
	case kindSfixed64:
		return protowire.AppendFixed64(out, uint64(v.ival))
	case kindFloat:
		return protowire.AppendFixed32(out, uint32(v.ival))
	case kindDouble:
		return protowire.AppendFixed64(out, uint64(v.ival))
	case kindString:
		return protowire.AppendString(out, v.str)
	case kindBytes:
		return protowire.AppendBytes(out, v.buf)
	default:
		return out
	}
}

// appendRepeatedField emits a Repeated entry, defaulting to unpacked
// (one tag per element) unless the entry's packed hint is set. Per §9's
// open question on mixed packed/unpacked re-emit, and because the wire
// format disallows packing length-delimited elements, string and bytes
// kinds always emit unpacked regardless of the hint.
func appendRepeatedField(out []byte, n FieldNumber, e *fieldEntry) ([]byte, error) {
	want := canonicalWireType(e.repKind)
	packable := want != protowire.BytesType
	if e.packed && packable && len(e.elems) > 0 {
		out = protowire.AppendTag(out, n, protowire.BytesType)
		var payload []byte
		for _, v := range e.elems {
			payload = appendScalarPayload(payload, v)
		}
		out = protowire.AppendVarint(out, uint64(len(payload)))
		return append(out, payload...), nil
	}
	for _, v := range e.elems {
		out = protowire.AppendTag(out, n, want)
		out = appendScalarPayload(out, v)
	}
	return out, nil
}
