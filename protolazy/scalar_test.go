// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"bytes"
	"testing"
)

func TestSint32ZigZagRoundTrip(t *testing.T) {
	a := NewEmpty()
	for _, v := range []int32{0, -1, 1, -2147483648, 2147483647} {
		if err := a.SetSint32(1, v); err != nil {
			t.Fatalf("SetSint32(%d): %v", v, err)
		}
		got, err := a.GetSint32(1)
		if err != nil {
			t.Fatalf("GetSint32: %v", err)
		}
		if got != v {
			t.Errorf("round-trip Sint32(%d) = %d", v, got)
		}
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	a := NewEmpty()
	if err := a.SetFixed64(1, 0xFFFFFFFFFFFFFFFF); err != nil {
		t.Fatalf("SetFixed64: %v", err)
	}
	got, err := a.GetFixed64(1)
	if err != nil {
		t.Fatalf("GetFixed64: %v", err)
	}
	if got != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("GetFixed64 = %#x, want 0xffffffffffffffff", got)
	}
}

func TestGetWithDefaultOnAbsentField(t *testing.T) {
	a := NewEmpty()
	if v, err := a.GetInt32WithDefault(1, 42); err != nil || v != 42 {
		t.Errorf("GetInt32WithDefault on absent field = %v, %v; want 42, nil", v, err)
	}
	if v, err := a.GetStringWithDefault(2, "fallback"); err != nil || v != "fallback" {
		t.Errorf("GetStringWithDefault on absent field = %q, %v; want fallback, nil", v, err)
	}
}

func TestGetAfterClearReturnsDefault(t *testing.T) {
	a := NewEmpty()
	if err := a.SetBytes(1, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := a.ClearField(1); err != nil {
		t.Fatal(err)
	}
	got, err := a.GetBytesWithDefault(1, []byte("default"))
	if err != nil {
		t.Fatalf("GetBytesWithDefault: %v", err)
	}
	if !bytes.Equal(got, []byte("default")) {
		t.Errorf("GetBytesWithDefault after clear = %q, want %q", got, "default")
	}
}

func TestSetFloatRejectsOutOfRangeDouble(t *testing.T) {
	a := NewEmpty()
	if err := a.SetFloat(1, 1e300); err == nil {
		t.Errorf("SetFloat(1e300) succeeded, want VALUE_TYPE_INVALID error")
	}
}
