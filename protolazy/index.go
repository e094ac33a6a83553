// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"github.com/alashui/protolazy/internal/checks"

	"google.golang.org/protobuf/encoding/protowire"
)

// buildIndex performs the one-shot lazy scan described in §4.1: it walks the
// source buffer from offset 0, decoding only tags and measuring payload
// lengths per wire type, and appends a byte range to the corresponding Raw
// entry for each field it encounters. It never decodes a payload value.
//
// Groups (wire types 3 and 4) are not supported. Under CHECK_CRITICAL_STATE
// a malformed tag, unsupported wire type, or truncated payload fails the
// scan with a parse error; with the check disabled, the scan simply stops at
// the first such point and whatever was indexed so far stands.
func (a *Accessor) buildIndex() error {
	b := a.src
	off := 0
	for off < len(b) {
		start := off
		num, wtyp, n := protowire.ConsumeTag(b[off:])
		if n < 0 || num == 0 {
			if checks.CriticalState {
				return parseErrorf("malformed tag at offset %d", start)
			}
			break
		}
		off += n

		payloadLen, err := consumeValueLength(wtyp, b[off:], start)
		if err != nil {
			if checks.CriticalState {
				return err
			}
			break
		}
		if payloadLen < 0 {
			if checks.CriticalState {
				return parseErrorf("truncated field at offset %d", start)
			}
			break
		}
		off += payloadLen

		a.appendRaw(FieldNumber(num), byteRange{offset: start, length: off - start}, wtyp)
	}
	a.indexed = true
	return nil
}

// consumeValueLength measures, without decoding, how many bytes of b are
// occupied by the payload of a field with the given wire type.
func consumeValueLength(wtyp protowire.Type, b []byte, tagOffset int) (int, error) {
	switch wtyp {
	case protowire.VarintType:
		_, m := protowire.ConsumeVarint(b)
		return m, nil
	case protowire.Fixed32Type:
		_, m := protowire.ConsumeFixed32(b)
		return m, nil
	case protowire.Fixed64Type:
		_, m := protowire.ConsumeFixed64(b)
		return m, nil
	case protowire.BytesType:
		_, m := protowire.ConsumeBytes(b)
		return m, nil
	default:
		return 0, parseErrorf("unsupported wire type %d (groups not supported) at offset %d", wtyp, tagOffset)
	}
}

// appendRaw records one occurrence of field n on the wire, creating its Raw
// entry if this is the first sighting. The entry's recorded wire type
// tracks the most recent occurrence, matching the last-wins rule applied to
// singular scalars.
func (a *Accessor) appendRaw(n FieldNumber, r byteRange, wtyp protowire.Type) {
	e := a.entryForWrite(n)
	if e.tag != tagRaw {
		// A prior write already replaced the Raw entry (only possible if the
		// accessor was mutated before its buffer was indexed, e.g. by
		// Set*, SetPacked* or SetMessage, which write without indexing
		// first); indexing must not clobber it.
		return
	}
	e.ranges = append(e.ranges, r)
	e.wire = wtyp
}
