// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"bytes"
	"testing"
)

// Invariant 1: has(n) is false after createEmpty and after clearField.
func TestInvariantEmptyAndCleared(t *testing.T) {
	a := NewEmpty()
	has, err := a.HasFieldNumber(5)
	if err != nil {
		t.Fatalf("HasFieldNumber: %v", err)
	}
	if has {
		t.Errorf("HasFieldNumber(5) on empty accessor = true, want false")
	}

	if err := a.SetInt32(5, 7); err != nil {
		t.Fatalf("SetInt32: %v", err)
	}
	if err := a.ClearField(5); err != nil {
		t.Fatalf("ClearField: %v", err)
	}
	has, err = a.HasFieldNumber(5)
	if err != nil {
		t.Fatalf("HasFieldNumber: %v", err)
	}
	if has {
		t.Errorf("HasFieldNumber(5) after ClearField = true, want false")
	}
}

// Invariant 2: round-trip-set for every scalar type.
func TestInvariantRoundTripSet(t *testing.T) {
	a := NewEmpty()

	if err := a.SetBool(1, true); err != nil {
		t.Fatal(err)
	}
	if v, err := a.GetBool(1); err != nil || v != true {
		t.Errorf("GetBool = %v, %v; want true, nil", v, err)
	}

	if err := a.SetInt32(2, -42); err != nil {
		t.Fatal(err)
	}
	if v, err := a.GetInt32(2); err != nil || v != -42 {
		t.Errorf("GetInt32 = %v, %v; want -42, nil", v, err)
	}

	if err := a.SetUint64(3, 1<<40); err != nil {
		t.Fatal(err)
	}
	if v, err := a.GetUint64(3); err != nil || v != 1<<40 {
		t.Errorf("GetUint64 = %v, %v; want %v, nil", v, err, uint64(1)<<40)
	}

	if err := a.SetString(4, "hello"); err != nil {
		t.Fatal(err)
	}
	if v, err := a.GetString(4); err != nil || v != "hello" {
		t.Errorf("GetString = %q, %v; want hello, nil", v, err)
	}

	if err := a.SetBytes(6, []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if v, err := a.GetBytes(6); err != nil || !bytes.Equal(v, []byte{1, 2, 3}) {
		t.Errorf("GetBytes = % x, %v; want 01 02 03, nil", v, err)
	}

	if err := a.SetDouble(7, 3.25); err != nil {
		t.Fatal(err)
	}
	if v, err := a.GetDouble(7); err != nil || v != 3.25 {
		t.Errorf("GetDouble = %v, %v; want 3.25, nil", v, err)
	}
}

// Invariant 3: round-trip-wire when no reads or writes have occurred.
func TestInvariantRoundTripWire(t *testing.T) {
	in := []byte{0x08, 0x01, 0x12, 0x03, 0x61, 0x62, 0x63, 0x1D, 0x02, 0x00, 0x00, 0x00}
	a := NewFromBuffer(in)
	out, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("Serialize() = % x, want % x", out, in)
	}
}

// Invariant 4: cache freeze — mutating the source buffer after a get does
// not change subsequent get results.
func TestInvariantCacheFreeze(t *testing.T) {
	buf := []byte{0x08, 0x01}
	a := NewFromBuffer(buf)
	v1, err := a.GetBool(1)
	if err != nil {
		t.Fatalf("GetBool: %v", err)
	}
	if !v1 {
		t.Fatalf("GetBool = false before mutation, want true")
	}
	buf[1] = 0x00 // flip the byte backing the already-cached value
	v2, err := a.GetBool(1)
	if err != nil {
		t.Fatalf("GetBool: %v", err)
	}
	if v2 != v1 {
		t.Errorf("GetBool after buffer mutation = %v, want unchanged %v", v2, v1)
	}
}

// Invariant 5: shallow-copy isolation.
func TestInvariantShallowCopyIsolation(t *testing.T) {
	a := NewEmpty()
	if err := a.SetInt32(1, 10); err != nil {
		t.Fatal(err)
	}
	cp, err := a.ShallowCopy()
	if err != nil {
		t.Fatalf("ShallowCopy: %v", err)
	}

	if err := cp.ClearField(1); err != nil {
		t.Fatal(err)
	}
	if v, err := a.GetInt32(1); err != nil || v != 10 {
		t.Errorf("original GetInt32 after copy clear = %v, %v; want 10, nil", v, err)
	}

	if err := a.SetInt32(2, 99); err != nil {
		t.Fatal(err)
	}
	if has, err := cp.HasFieldNumber(2); err != nil || has {
		t.Errorf("copy HasFieldNumber(2) after original set = %v, %v; want false, nil", has, err)
	}
}

// Invariant 6: last-wins for singular scalars.
func TestInvariantLastWins(t *testing.T) {
	a := NewFromBuffer([]byte{0x08, 0x01, 0x08, 0x00})
	v, err := a.GetBool(1)
	if err != nil {
		t.Fatalf("GetBool: %v", err)
	}
	if v != false {
		t.Errorf("GetBool = %v, want false", v)
	}
}

// Invariant 7: merge for sub-messages.
func TestInvariantSubMessageMerge(t *testing.T) {
	in := []byte{0x0A, 0x02, 0x08, 0x01, 0x0A, 0x02, 0x10, 0x01}
	a := NewFromBuffer(in)
	if _, err := a.GetMessageOrNull(1, newTestWrapper); err != nil {
		t.Fatalf("GetMessageOrNull: %v", err)
	}
	out, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{0x0A, 0x04, 0x08, 0x01, 0x10, 0x01}
	if !bytes.Equal(out, want) {
		t.Errorf("Serialize() = % x, want % x", out, want)
	}
}

// Invariant 8: bounds checks reject field numbers outside the legal range.
func TestInvariantBounds(t *testing.T) {
	a := NewEmpty()
	if _, err := a.GetBool(0); err == nil {
		t.Errorf("GetBool(0) succeeded, want OUT_OF_RANGE error")
	}
	if _, err := a.GetBool(MaxFieldNumber + 1); err == nil {
		t.Errorf("GetBool(MaxFieldNumber+1) succeeded, want OUT_OF_RANGE error")
	}
	if err := a.SetBool(-1, true); err == nil {
		t.Errorf("SetBool(-1, ...) succeeded, want OUT_OF_RANGE error")
	}
}

// Invariant 9: has(n) is false for empty repeated fields.
func TestInvariantEmptyRepeatedHasFalse(t *testing.T) {
	a := NewEmpty()
	if err := a.AddUnpackedInt32Iterable(1, nil); err != nil {
		t.Fatalf("AddUnpackedInt32Iterable: %v", err)
	}
	has, err := a.HasFieldNumber(1)
	if err != nil {
		t.Fatalf("HasFieldNumber: %v", err)
	}
	if has {
		t.Errorf("HasFieldNumber(1) with zero elements = true, want false")
	}
}

// Invariant 10: reference equality of sub-message wrappers.
func TestInvariantMessageReferenceEquality(t *testing.T) {
	in := []byte{0x0A, 0x02, 0x08, 0x01}
	a := NewFromBuffer(in)

	w1, err := a.GetMessageOrNull(1, newTestWrapper)
	if err != nil {
		t.Fatalf("GetMessageOrNull: %v", err)
	}
	w2, err := a.GetMessageOrNull(1, newTestWrapper)
	if err != nil {
		t.Fatalf("GetMessageOrNull: %v", err)
	}
	if w1 != w2 {
		t.Errorf("GetMessageOrNull called twice returned different wrappers")
	}
}
