// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import "google.golang.org/protobuf/encoding/protowire"

// byteRange is a half-open span [offset, offset+length) into an Accessor's
// source buffer, covering one occurrence of a field on the wire: the tag
// and its payload together, so that a Raw entry can be re-emitted verbatim.
type byteRange struct {
	offset int
	length int
}

// entryTag is the discriminant of the fieldEntry tagged union described in
// the package's data model: Raw, Decoded, Message, Repeated, and the
// Empty-cleared tombstone.
type entryTag uint8

const (
	tagRaw entryTag = iota
	tagDecoded
	tagMessage
	tagRepeated
	tagCleared
)

// fieldEntry is everything an Accessor knows about one field number. Exactly
// one of the per-tag field groups below is meaningful at a time; which one
// is selected by tag.
type fieldEntry struct {
	tag  entryTag
	wire protowire.Type

	// tagRaw: byte ranges in encounter order, not yet decoded. A field that
	// has only been read (never written) stays tagRaw even after its value
	// is decoded: valCached/repCached record that val/elems hold a usable
	// cache, while ranges survives so Serialize keeps re-emitting the
	// original bytes verbatim. Only a write (Set*/AddUnpacked*/SetPacked*)
	// advances the entry to tagDecoded/tagRepeated and drops ranges, per the
	// distinction the package's scenario tests draw between a read-only
	// access and a write.
	ranges []byteRange

	// tagDecoded (or cache of a tagRaw read): a materialized singular
	// scalar.
	val       scalar
	valCached bool

	// tagMessage: the attached (or snapshotted) child accessor and the
	// cached wrapper instance, so repeated accessor calls return the same
	// wrapper by reference.
	child   *Accessor
	wrapper Message

	// tagRepeated (or cache of a tagRaw read): an ordered list of decoded
	// elements, all of kind repKind, plus whether a re-serialize should
	// emit them packed.
	elems     []scalar
	repKind   scalarKind
	packed    bool
	repCached bool

	// sawImmutableSnapshot records that GetMessage produced a read-only
	// snapshot of this field's bytes; a later GetMessageOrNull or
	// GetMessageAttach on the same field is then refused under CHECK_TYPE,
	// per the mutability guard in §4.5.
	sawImmutableSnapshot bool
}

// hasValue reports whether the entry should be observed as present by
// HasFieldNumber and by the serializer.
func (e *fieldEntry) hasValue() bool {
	if e == nil {
		return false
	}
	switch e.tag {
	case tagCleared:
		return false
	case tagRaw:
		return len(e.ranges) > 0
	case tagRepeated:
		return len(e.elems) > 0
	default:
		return true
	}
}

// clone produces an independent copy suitable for Accessor.ShallowCopy: byte
// ranges and repeated elements get their own backing array so that a later
// mutation through one accessor is invisible to the other, while the child
// accessor of a Message entry is shared by reference, as specified.
func (e *fieldEntry) clone() *fieldEntry {
	ce := *e
	if e.ranges != nil {
		ce.ranges = append([]byteRange(nil), e.ranges...)
	}
	if e.elems != nil {
		ce.elems = append([]scalar(nil), e.elems...)
	}
	return &ce
}
