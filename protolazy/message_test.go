// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"bytes"
	"testing"
)

func TestGetMessageAbsentReturnsUnattachedEmpty(t *testing.T) {
	a := NewEmpty()
	m, err := a.GetMessage(1, newTestWrapper)
	if err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if m == nil {
		t.Fatalf("GetMessage on absent field returned nil")
	}
	if has, _ := a.HasFieldNumber(1); has {
		t.Errorf("HasFieldNumber(1) after GetMessage on absent field = true, want false (not attached)")
	}
}

func TestGetMessageOrNullAbsentReturnsNil(t *testing.T) {
	a := NewEmpty()
	m, err := a.GetMessageOrNull(1, newTestWrapper)
	if err != nil {
		t.Fatalf("GetMessageOrNull: %v", err)
	}
	if m != nil {
		t.Errorf("GetMessageOrNull on absent field = %v, want nil", m)
	}
}

func TestGetMessageAttachCreatesEmptyChild(t *testing.T) {
	a := NewEmpty()
	m, err := a.GetMessageAttach(1, newTestWrapper)
	if err != nil {
		t.Fatalf("GetMessageAttach: %v", err)
	}
	if has, _ := a.HasFieldNumber(1); !has {
		t.Errorf("HasFieldNumber(1) after GetMessageAttach = false, want true")
	}
	if err := m.ProtoAccessor().SetBool(1, true); err != nil {
		t.Fatalf("SetBool on child: %v", err)
	}
	out, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{0x0A, 0x02, 0x08, 0x01}
	if !bytes.Equal(out, want) {
		t.Errorf("Serialize() = % x, want % x", out, want)
	}
}

func TestGetMessageMutabilityGuard(t *testing.T) {
	in := []byte{0x0A, 0x02, 0x08, 0x01}
	a := NewFromBuffer(in)
	if _, err := a.GetMessage(1, newTestWrapper); err != nil {
		t.Fatalf("GetMessage: %v", err)
	}
	if _, err := a.GetMessageOrNull(1, newTestWrapper); err == nil {
		t.Errorf("GetMessageOrNull after GetMessage succeeded, want INVALID_STATE error")
	}
	if _, err := a.GetMessageAttach(1, newTestWrapper); err == nil {
		t.Errorf("GetMessageAttach after GetMessage succeeded, want INVALID_STATE error")
	}
}

func TestSetMessageSharesAccessor(t *testing.T) {
	a := NewEmpty()
	child := NewEmpty()
	if err := child.SetInt32(1, 5); err != nil {
		t.Fatalf("SetInt32: %v", err)
	}
	wrapper := newTestWrapper(child)
	if err := a.SetMessage(1, wrapper); err != nil {
		t.Fatalf("SetMessage: %v", err)
	}

	// Mutating the child after SetMessage must be visible through a's
	// serialization, since SetMessage shares the accessor rather than
	// copying it.
	if err := child.SetInt32(1, 9); err != nil {
		t.Fatalf("SetInt32: %v", err)
	}
	out, err := a.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{0x0A, 0x02, 0x08, 0x09}
	if !bytes.Equal(out, want) {
		t.Errorf("Serialize() = % x, want % x", out, want)
	}
}

func TestGetMessageAccessorOrNullTransientForRaw(t *testing.T) {
	in := []byte{0x0A, 0x02, 0x08, 0x01}
	a := NewFromBuffer(in)
	acc1, err := a.GetMessageAccessorOrNull(1)
	if err != nil {
		t.Fatalf("GetMessageAccessorOrNull: %v", err)
	}
	acc2, err := a.GetMessageAccessorOrNull(1)
	if err != nil {
		t.Fatalf("GetMessageAccessorOrNull: %v", err)
	}
	if acc1 == acc2 {
		t.Errorf("GetMessageAccessorOrNull on an un-attached Raw field returned the same transient accessor twice")
	}
	v, err := acc1.GetBool(1)
	if err != nil {
		t.Fatalf("GetBool on transient accessor: %v", err)
	}
	if !v {
		t.Errorf("transient accessor field 1 = false, want true")
	}
}
