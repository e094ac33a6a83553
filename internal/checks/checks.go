// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checks provides a set of validation toggles controlled by build
// tags, following the same pattern protobuf-go uses for its Proto1Legacy
// flag: each toggle compiles to a constant so that a disabled check is
// eliminated by the compiler rather than costing a branch at runtime.
package checks

// Bounds gates field-number range validation (1 <= n <= MaxFieldNumber).
//
// Enabled by default; disabled when built with the "protolazy_unsafe" tag.
const Bounds = bounds

// Type gates non-critical type and state checks, including the
// mutable-after-immutable sub-message guard and setter-side bounds checks.
//
// Enabled by default; disabled when built with the "protolazy_unsafe" tag.
const Type = typ

// CriticalType gates value-type checks on setters and wire-type checks on
// getters.
//
// Enabled by default; disabled when built with the "protolazy_unsafe" tag.
const CriticalType = criticalType

// CriticalState gates parse and state checks that would otherwise yield
// silently corrupted output.
//
// Enabled by default; disabled when built with the "protolazy_unsafe" tag.
const CriticalState = criticalState
