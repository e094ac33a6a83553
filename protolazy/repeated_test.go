// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// A packed occurrence (wire type 2, three varints 1,2,3) followed by an
// unpacked occurrence (wire type 0, value 4) for the same field must merge
// transparently into a single ordered list.
func TestRepeatedMixedPackedUnpacked(t *testing.T) {
	in := []byte{
		0x0A, 0x03, 0x01, 0x02, 0x03, // field 1, packed: 1, 2, 3
		0x08, 0x04, // field 1, unpacked: 4
	}
	a := NewFromBuffer(in)
	got, err := a.GetRepeatedInt32Iterable(1)
	if err != nil {
		t.Fatalf("GetRepeatedInt32Iterable: %v", err)
	}
	want := []int32{1, 2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetRepeatedInt32Iterable mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatedAddUnpackedElement(t *testing.T) {
	a := NewEmpty()
	if err := a.AddUnpackedInt32Element(1, 5); err != nil {
		t.Fatalf("AddUnpackedInt32Element: %v", err)
	}
	if err := a.AddUnpackedInt32Element(1, 6); err != nil {
		t.Fatalf("AddUnpackedInt32Element: %v", err)
	}
	got, err := a.GetRepeatedInt32Iterable(1)
	if err != nil {
		t.Fatalf("GetRepeatedInt32Iterable: %v", err)
	}
	if diff := cmp.Diff([]int32{5, 6}, got); diff != "" {
		t.Errorf("GetRepeatedInt32Iterable mismatch (-want +got):\n%s", diff)
	}
	out, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{0x08, 0x05, 0x08, 0x06}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatedSetPackedIterable(t *testing.T) {
	a := NewEmpty()
	if err := a.SetPackedInt32Iterable(1, []int32{7, 8, 9}); err != nil {
		t.Fatalf("SetPackedInt32Iterable: %v", err)
	}
	out, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{0x0A, 0x03, 0x07, 0x08, 0x09}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Serialize() mismatch (-want +got):\n%s", diff)
	}
}

func TestRepeatedReadOnlyPreservesRaw(t *testing.T) {
	in := []byte{0x08, 0x01, 0x08, 0x02}
	a := NewFromBuffer(in)
	if _, err := a.GetRepeatedInt32Iterable(1); err != nil {
		t.Fatalf("GetRepeatedInt32Iterable: %v", err)
	}
	out, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("Serialize() after read-only mismatch (-want +got):\n%s", diff)
	}
}
