// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"github.com/alashui/protolazy/internal/checks"
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by a generated wrapper type that owns a child
// Accessor. ProtoAccessor exposes that accessor so setMessage and the
// attach family can share it by reference rather than copying.
type Message interface {
	ProtoAccessor() *Accessor
}

// Creator builds an empty wrapper of some generated message type around a
// child accessor. Callers typically pass a function value that does nothing
// but construct their wrapper struct and store acc in it.
type Creator func(acc *Accessor) Message

// GetMessage implements the immutable read path of §4.5: if the field is
// absent, it returns a fresh, unattached empty message; otherwise it returns
// the field's wrapper, decoding and merging Raw ranges into a child accessor
// on first read exactly like GetMessageOrNull, and sharing the same cached
// wrapper instance. The only difference from GetMessageOrNull is the
// not-attached-yet absent case and that this path marks the entry as
// immutably observed, which later refuses a GetMessageOrNull/GetMessageAttach
// on the same field (the mutability guard in §4.5).
func (a *Accessor) GetMessage(n FieldNumber, create Creator) (Message, error) {
	if err := a.checkFieldNumber(n, false); err != nil {
		return nil, err
	}
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	e := a.entryAt(n)
	if e == nil || !e.hasValue() {
		child := NewEmpty(a.pivot)
		return create(child), nil
	}

	wrapper, err := a.materializeMessage(n, e, create)
	if err != nil {
		return nil, err
	}
	e.sawImmutableSnapshot = true
	return wrapper, nil
}

// GetMessageOrNull returns nil if the field is absent; otherwise it returns
// the field's cached wrapper, attaching the decoded child accessor as the
// field's authoritative representation so later mutation through the
// wrapper is observed on serialize.
func (a *Accessor) GetMessageOrNull(n FieldNumber, create Creator) (Message, error) {
	if err := a.checkFieldNumber(n, false); err != nil {
		return nil, err
	}
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	e := a.entryAt(n)
	if e == nil || !e.hasValue() {
		return nil, nil
	}
	if checks.Type && e.sawImmutableSnapshot {
		return nil, invalidStatef("field %d was already read as an immutable snapshot via GetMessage", n)
	}
	return a.materializeMessage(n, e, create)
}

// GetMessageAttach returns the field's wrapper, creating and attaching an
// empty child accessor if the field was absent. pivot optionally overrides
// the new child's storage-representation hint; it has no effect if the
// field was already present.
func (a *Accessor) GetMessageAttach(n FieldNumber, create Creator, pivot ...FieldNumber) (Message, error) {
	if err := a.checkFieldNumber(n, true); err != nil {
		return nil, err
	}
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	e := a.entryForWrite(n)
	if checks.Type && e.sawImmutableSnapshot {
		return nil, invalidStatef("field %d was already read as an immutable snapshot via GetMessage", n)
	}
	if !e.hasValue() {
		child := NewEmpty(resolvePivot(pivot))
		wrapper := create(child)
		e.tag = tagMessage
		e.wire = canonicalWireType(kindBytes)
		e.child = child
		e.wrapper = wrapper
		e.ranges = nil
		return wrapper, nil
	}
	return a.materializeMessage(n, e, create)
}

// GetMessageAccessorOrNull returns the child accessor backing field n, or
// nil if the field is absent. If the field is present but not yet attached
// (still Raw), this produces a transient accessor over the merged payload
// without caching it: each call in that state yields a fresh instance, per
// §4.5.
func (a *Accessor) GetMessageAccessorOrNull(n FieldNumber, pivot ...FieldNumber) (*Accessor, error) {
	if err := a.checkFieldNumber(n, false); err != nil {
		return nil, err
	}
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	e := a.entryAt(n)
	if e == nil || !e.hasValue() {
		return nil, nil
	}
	if e.tag == tagMessage {
		return e.child, nil
	}
	payload, err := mergeRawRanges(e.ranges, a.src)
	if err != nil {
		return nil, err
	}
	return NewFromBuffer(payload, resolvePivot(pivot)), nil
}

// SetMessage replaces field n's entry with Message(wrapper's accessor), per
// §4.5: the wrapper's accessor is shared, not copied.
func (a *Accessor) SetMessage(n FieldNumber, wrapper Message) error {
	if err := a.checkFieldNumber(n, true); err != nil {
		return err
	}
	if checks.CriticalType && wrapper == nil {
		return valueTypeInvalidf("Given value is not a message instance: %v", wrapper)
	}
	e := a.entryForWrite(n)
	e.tag = tagMessage
	e.wire = canonicalWireType(kindBytes)
	e.child = wrapper.ProtoAccessor()
	e.wrapper = wrapper
	e.ranges = nil
	e.sawImmutableSnapshot = false
	return nil
}

// materializeMessage is the common attach/decode path shared by GetMessage,
// GetMessageOrNull, and GetMessageAttach once the field is known present: it
// builds (once) and caches the child accessor and wrapper, merging multiple
// length-delimited ranges per §4.5.
func (a *Accessor) materializeMessage(n FieldNumber, e *fieldEntry, create Creator) (Message, error) {
	if e.tag == tagMessage {
		return e.wrapper, nil
	}
	payload, err := mergeRawRanges(e.ranges, a.src)
	if err != nil {
		return nil, err
	}
	child := NewFromBuffer(payload, a.pivot)
	wrapper := create(child)
	e.tag = tagMessage
	e.wire = canonicalWireType(kindBytes)
	e.child = child
	e.wrapper = wrapper
	e.ranges = nil
	return wrapper, nil
}

// mergeRawRanges concatenates the message content (tag and inner
// length-prefix both stripped) of every range in encounter order,
// implementing proto3's merge-on-repeat rule for length-delimited
// sub-messages (§4.5's "merging on attach"). Unlike a scalar byte-string or
// string field, whose own Consume call expects that length prefix still in
// place, a sub-message's content starts after it — the prefix belongs to
// the outer field's wire encoding, not to the child accessor's buffer.
func mergeRawRanges(ranges []byteRange, src []byte) ([]byte, error) {
	if len(ranges) == 1 {
		return rangeMessageContent(ranges[0], src)
	}
	var merged []byte
	for _, r := range ranges {
		p, err := rangeMessageContent(r, src)
		if err != nil {
			return nil, err
		}
		merged = append(merged, p...)
	}
	return merged, nil
}

// rangeMessageContent returns r's message bytes with both the tag and the
// length-delimited payload's own inner length prefix stripped, the same
// unwrap decodeRepeatedRanges applies to a packed occurrence and
// decodeScalarElement applies when treating a bytes payload as a nested
// blob.
func rangeMessageContent(r byteRange, src []byte) ([]byte, error) {
	tagStripped, err := r.payload(src)
	if err != nil {
		return nil, err
	}
	content, n := protowire.ConsumeBytes(tagStripped)
	if n < 0 {
		return nil, parseErrorf("malformed length-delimited payload while merging message ranges")
	}
	return content, nil
}
