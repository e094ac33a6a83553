// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !protolazy_unsafe

package checks

const (
	bounds        = true
	typ           = true
	criticalType  = true
	criticalState = true
)
