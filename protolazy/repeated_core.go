// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"github.com/alashui/protolazy/internal/checks"

	"google.golang.org/protobuf/encoding/protowire"
)

// getRepeated implements §4.4's read path: ensure the index is built, decode
// a Raw entry's ranges into an ordered element list on first read, and
// return the cached list thereafter. Like getScalar, a read-only decode
// caches into elems/repKind (repCached) without leaving tagRaw, so Serialize
// keeps re-emitting the original bytes until an actual write happens. A nil
// result with no error means the field is absent.
func (a *Accessor) getRepeated(n FieldNumber, kind scalarKind) ([]scalar, error) {
	if err := a.checkFieldNumber(n, false); err != nil {
		return nil, err
	}
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	e := a.entryAt(n)
	if e == nil || e.tag == tagCleared {
		return nil, nil
	}

	switch e.tag {
	case tagRepeated:
		if checks.CriticalType && e.repKind != kind {
			return nil, wireTypeMismatch(canonicalWireType(kind), canonicalWireType(e.repKind))
		}
		return e.elems, nil

	case tagRaw:
		if e.repCached && e.repKind == kind {
			return e.elems, nil
		}
		elems, packed, err := decodeRepeatedRanges(kind, e.ranges, a.src)
		if err != nil {
			return nil, err
		}
		e.repCached = true
		e.repKind = kind
		e.elems = elems
		e.packed = packed
		return elems, nil

	default:
		if checks.CriticalType {
			return nil, wireTypeMismatch(canonicalWireType(kind), e.wire)
		}
		return nil, nil
	}
}

// addRepeated appends one or more elements to field n's Repeated entry,
// materializing it from any existing Raw ranges (or reusing an already
// read-cached decode) first so that an add after a read still sees prior
// occurrences (§4.4's addUnpacked*). This is a write: it always leaves the
// entry tagRepeated with ranges dropped.
func (a *Accessor) addRepeated(n FieldNumber, kind scalarKind, packed bool, vals ...scalar) error {
	if err := a.checkFieldNumber(n, true); err != nil {
		return err
	}
	if err := a.ensureIndexed(); err != nil {
		return err
	}
	e := a.entryForWrite(n)
	switch {
	case e.tag == tagRepeated:
		// elems already holds prior writes.
	case e.tag == tagRaw && e.repCached && e.repKind == kind:
		// elems already holds the cached decode.
	case e.tag == tagRaw:
		elems, _, err := decodeRepeatedRanges(kind, e.ranges, a.src)
		if err != nil {
			return err
		}
		e.elems = elems
	default:
		e.elems = nil
	}
	e.tag = tagRepeated
	e.repKind = kind
	e.repCached = false
	e.ranges = nil
	e.elems = append(e.elems, vals...)
	e.packed = packed
	return nil
}

// setPacked replaces field n's Repeated entry outright with vals, to be
// re-emitted in packed form (string and bytes kinds are still emitted
// unpacked; see appendRepeatedField).
func (a *Accessor) setPacked(n FieldNumber, kind scalarKind, vals []scalar) error {
	if err := a.checkFieldNumber(n, true); err != nil {
		return err
	}
	e := a.entryForWrite(n)
	e.tag = tagRepeated
	e.repKind = kind
	e.repCached = false
	e.elems = append([]scalar(nil), vals...)
	e.packed = true
	e.ranges = nil
	return nil
}

// decodeRepeatedRanges walks ranges in encounter order, transparently
// handling the packed and unpacked wire forms described in §4.4: an
// occurrence whose wire type matches kind's canonical type is a single
// unpacked element, while a length-delimited occurrence for a packable kind
// is a run of back-to-back elements with no per-element tag. The returned
// bool reports whether the last occurrence seen was packed, used only as a
// re-emit hint.
func decodeRepeatedRanges(kind scalarKind, ranges []byteRange, src []byte) ([]scalar, bool, error) {
	want := canonicalWireType(kind)
	var elems []scalar
	lastPacked := false
	for _, r := range ranges {
		wtyp := r.wireType(src)
		payload, err := r.payload(src)
		if err != nil {
			return nil, false, err
		}
		switch {
		case wtyp == want:
			v, _, err := decodeScalarElement(kind, payload)
			if err != nil {
				return nil, false, err
			}
			elems = append(elems, v)
			lastPacked = false

		case wtyp == protowire.BytesType && want != protowire.BytesType:
			blob, bn := protowire.ConsumeBytes(payload)
			if bn < 0 {
				return nil, false, parseErrorf("malformed packed payload")
			}
			for len(blob) > 0 {
				v, n, err := decodeScalarElement(kind, blob)
				if err != nil {
					return nil, false, err
				}
				elems = append(elems, v)
				blob = blob[n:]
			}
			lastPacked = true

		default:
			if checks.CriticalType {
				return nil, false, wireTypeMismatch(want, wtyp)
			}
		}
	}
	return elems, lastPacked, nil
}
