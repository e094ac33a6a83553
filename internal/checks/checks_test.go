// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checks

import "testing"

func TestDefaultChecksEnabled(t *testing.T) {
	if !Bounds || !Type || !CriticalType || !CriticalState {
		t.Errorf("default build should enable all checks, got Bounds=%v Type=%v CriticalType=%v CriticalState=%v",
			Bounds, Type, CriticalType, CriticalState)
	}
}
