// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import "sort"

// Accessor is a lazy field accessor over a protocol-buffers wire-format
// buffer. It owns an optional source buffer and a storage map from field
// number to Entry (see the package's data model); indexing is memoized on
// first operation that needs it, and every typed read or write replaces at
// most one Entry.
//
// An Accessor and any child accessors reachable through its Message entries
// form a single ownership domain: none of this is safe for concurrent use,
// because even a read may lazily decode and cache a value.
type Accessor struct {
	src   []byte
	pivot FieldNumber

	indexed bool

	// dense holds entries for field numbers below pivot, indexed at n-1.
	// sparse holds entries for field numbers at or above pivot. The split is
	// purely a storage-representation choice (see Pivot) with no observable
	// effect on behavior.
	dense  []*fieldEntry
	sparse map[FieldNumber]*fieldEntry
}

// NewEmpty returns an Accessor with no source buffer, optionally overriding
// the default pivot (24).
func NewEmpty(pivot ...FieldNumber) *Accessor {
	return &Accessor{pivot: resolvePivot(pivot), indexed: true}
}

// NewFromBuffer returns an Accessor over b. Indexing is deferred until the
// first operation that needs it.
func NewFromBuffer(b []byte, pivot ...FieldNumber) *Accessor {
	return &Accessor{src: b, pivot: resolvePivot(pivot)}
}

func resolvePivot(pivot []FieldNumber) FieldNumber {
	if len(pivot) > 0 && pivot[0] > 0 {
		return pivot[0]
	}
	return defaultPivot
}

// Pivot returns the storage-representation hint this accessor was
// constructed with. It is advisory only.
func (a *Accessor) Pivot() FieldNumber {
	return a.pivot
}

// HasFieldNumber reports whether n is currently populated: an Entry exists,
// is not Empty-cleared, and (for Raw/Repeated) has at least one range or
// element.
func (a *Accessor) HasFieldNumber(n FieldNumber) (bool, error) {
	if err := a.checkFieldNumber(n, false); err != nil {
		return false, err
	}
	if err := a.ensureIndexed(); err != nil {
		return false, err
	}
	return a.entryAt(n).hasValue(), nil
}

// ClearField replaces n's Entry with an Empty-cleared tombstone. Clearing an
// already-cleared or absent field is a no-op.
func (a *Accessor) ClearField(n FieldNumber) error {
	if err := a.checkFieldNumber(n, true); err != nil {
		return err
	}
	if err := a.ensureIndexed(); err != nil {
		return err
	}
	e := a.entryForWrite(n)
	*e = fieldEntry{tag: tagCleared}
	return nil
}

// ShallowCopy returns a new Accessor with an independently owned storage
// map. Entries are copied by value; their immutable contents (byte ranges,
// scalar values, child-accessor references) are shared, and repeated-field
// lists get a fresh backing array so that later mutation on either side
// stays local. Sub-message child accessors are shared by reference: this is
// a shallow copy, and deep-copy is the caller's responsibility via
// Serialize+NewFromBuffer.
func (a *Accessor) ShallowCopy() (*Accessor, error) {
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	cp := &Accessor{src: a.src, pivot: a.pivot, indexed: true}
	if len(a.dense) > 0 {
		cp.dense = make([]*fieldEntry, len(a.dense))
		for i, e := range a.dense {
			if e != nil {
				cp.dense[i] = e.clone()
			}
		}
	}
	if len(a.sparse) > 0 {
		cp.sparse = make(map[FieldNumber]*fieldEntry, len(a.sparse))
		for n, e := range a.sparse {
			cp.sparse[n] = e.clone()
		}
	}
	return cp, nil
}

func (a *Accessor) checkFieldNumber(n FieldNumber, forWrite bool) error {
	if (n < 1 || n > MaxFieldNumber) && checksBounds(forWrite) {
		return outOfRangef("field number %d out of range [1, %d]", n, MaxFieldNumber)
	}
	return nil
}

func (a *Accessor) ensureIndexed() error {
	if a.indexed {
		return nil
	}
	return a.buildIndex()
}

// entryAt returns the entry stored for n, or nil if none exists yet. It
// never allocates.
func (a *Accessor) entryAt(n FieldNumber) *fieldEntry {
	if n < a.pivot {
		idx := int(n) - 1
		if idx < 0 || idx >= len(a.dense) {
			return nil
		}
		return a.dense[idx]
	}
	if a.sparse == nil {
		return nil
	}
	return a.sparse[n]
}

// entryForWrite returns the entry stored for n, allocating a fresh
// tagRaw-zero-value entry (and growing the dense slice, if needed) when one
// does not already exist.
func (a *Accessor) entryForWrite(n FieldNumber) *fieldEntry {
	if n < a.pivot {
		idx := int(n) - 1
		if idx >= len(a.dense) {
			grown := make([]*fieldEntry, idx+1)
			copy(grown, a.dense)
			a.dense = grown
		}
		if a.dense[idx] == nil {
			a.dense[idx] = &fieldEntry{}
		}
		return a.dense[idx]
	}
	if a.sparse == nil {
		a.sparse = make(map[FieldNumber]*fieldEntry)
	}
	e, ok := a.sparse[n]
	if !ok {
		e = &fieldEntry{}
		a.sparse[n] = e
	}
	return e
}

// forEachOrdered visits every entry in ascending field-number order, which
// is how Serialize walks the storage map. It stops early if f returns false.
func (a *Accessor) forEachOrdered(f func(FieldNumber, *fieldEntry) bool) {
	for i, e := range a.dense {
		if e == nil {
			continue
		}
		if !f(FieldNumber(i+1), e) {
			return
		}
	}
	if len(a.sparse) == 0 {
		return
	}
	nums := make([]FieldNumber, 0, len(a.sparse))
	for n := range a.sparse {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	for _, n := range nums {
		if !f(n, a.sparse[n]) {
			return
		}
	}
}
