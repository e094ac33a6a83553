// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"strings"
	"testing"
)

func TestNewPrefix(t *testing.T) {
	e1 := New("abc")
	got := e1.Error()
	if !strings.HasPrefix(got, "protolazy:") {
		t.Errorf("missing \"protolazy:\" prefix in %q", got)
	}
	if !strings.Contains(got, "abc") {
		t.Errorf("missing text \"abc\" in %q", got)
	}

	e2 := New("%v", e1)
	got = e2.Error()
	if !strings.HasPrefix(got, "protolazy:") {
		t.Errorf("missing \"protolazy:\" prefix in %q", got)
	}
	// Test to make sure prefix is removed from the embedded error.
	if strings.Contains(strings.TrimPrefix(got, "protolazy:"), "protolazy:") {
		t.Errorf("prefix \"protolazy:\" not elided in embedded error: %q", got)
	}
}

func TestWrapKind(t *testing.T) {
	err := Wrap(WireTypeMismatch, "Expected wire type: %d but found: %d", 0, 2)
	ke, ok := err.(*KindError)
	if !ok {
		t.Fatalf("Wrap returned %T, want *KindError", err)
	}
	if ke.Kind != WireTypeMismatch {
		t.Errorf("Kind = %v, want WireTypeMismatch", ke.Kind)
	}
	if got, want := ke.Kind.String(), "WIRE_TYPE_MISMATCH"; got != want {
		t.Errorf("Kind.String() = %q, want %q", got, want)
	}
	if !strings.Contains(ke.Error(), "Expected wire type: 0 but found: 2") {
		t.Errorf("Error() = %q, missing formatted message", ke.Error())
	}
}
