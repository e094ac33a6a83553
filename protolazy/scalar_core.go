// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"github.com/alashui/protolazy/internal/checks"

	"google.golang.org/protobuf/encoding/protowire"
)

// getScalar implements the get semantics of §4.3: it ensures the index is
// built, treats a missing or Empty-cleared entry as absent, decodes a Raw
// entry's last byte range on first read, and otherwise returns the cached
// value. A read-only decode caches the value in place (valCached) but keeps
// the entry tagRaw so Serialize continues to re-emit the original bytes
// verbatim; only a Set call (below) actually collapses the entry and
// switches Serialize over to canonical emission. The bool result reports
// whether the field was present.
func (a *Accessor) getScalar(n FieldNumber, kind scalarKind) (scalar, bool, error) {
	if err := a.checkFieldNumber(n, false); err != nil {
		return scalar{}, false, err
	}
	if err := a.ensureIndexed(); err != nil {
		return scalar{}, false, err
	}
	e := a.entryAt(n)
	if e == nil || e.tag == tagCleared {
		return scalar{}, false, nil
	}

	want := canonicalWireType(kind)
	switch e.tag {
	case tagDecoded:
		if checks.CriticalType && e.wire != want {
			return scalar{}, false, wireTypeMismatch(want, e.wire)
		}
		v := e.val
		v.kind = kind
		return v, true, nil

	case tagRaw:
		if len(e.ranges) == 0 {
			return scalar{}, false, nil
		}
		if e.valCached {
			if checks.CriticalType && e.wire != want {
				return scalar{}, false, wireTypeMismatch(want, e.wire)
			}
			v := e.val
			v.kind = kind
			return v, true, nil
		}
		last := e.ranges[len(e.ranges)-1]
		wtyp := last.wireType(a.src)
		if checks.CriticalType && wtyp != want {
			return scalar{}, false, wireTypeMismatch(want, wtyp)
		}
		payload, err := last.payload(a.src)
		if err != nil {
			return scalar{}, false, err
		}
		v, err := decodeScalarPayload(kind, payload)
		if err != nil {
			return scalar{}, false, err
		}
		e.valCached = true
		e.wire = wtyp
		e.val = v
		return v, true, nil

	default:
		if checks.CriticalType {
			return scalar{}, false, wireTypeMismatch(want, e.wire)
		}
		return scalar{}, false, nil
	}
}

// setScalar implements the set semantics of §4.3: bounds-check the field
// number, then unconditionally replace the entry with a Decoded value of
// kind's canonical wire type, discarding whatever was there before.
func (a *Accessor) setScalar(n FieldNumber, v scalar) error {
	if err := a.checkFieldNumber(n, true); err != nil {
		return err
	}
	e := a.entryForWrite(n)
	e.tag = tagDecoded
	e.wire = canonicalWireType(v.kind)
	e.val = v
	e.valCached = false
	e.ranges = nil
	e.sawImmutableSnapshot = false
	return nil
}

// payload returns the value bytes of r (the tag stripped off), by
// re-decoding the tag from the range start. Ranges are small and this is
// only done once per range, on first decode.
func (r byteRange) payload(src []byte) ([]byte, error) {
	full := src[r.offset : r.offset+r.length]
	_, _, n := protowire.ConsumeTag(full)
	if n < 0 {
		return nil, parseErrorf("malformed tag while re-reading indexed range at offset %d", r.offset)
	}
	return full[n:], nil
}

// wireType returns the wire type recorded at the start of r.
func (r byteRange) wireType(src []byte) protowire.Type {
	full := src[r.offset : r.offset+r.length]
	_, wtyp, n := protowire.ConsumeTag(full)
	if n < 0 {
		return protowire.Type(-1)
	}
	return wtyp
}
