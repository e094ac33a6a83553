// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

// This file exposes one Get<T>/Get<T>WithDefault/Set<T> trio per scalar wire
// type named in §6. Each is a thin conversion layer over getScalar/setScalar;
// the interesting behavior (lazy decode, caching, wire-type checks) lives
// there.

// GetBool returns field n's value, or the zero bool if the field is
// absent.
func (a *Accessor) GetBool(n FieldNumber) (bool, error) {
	return a.GetBoolWithDefault(n, false)
}

// GetBoolWithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetBoolWithDefault(n FieldNumber, def bool) (bool, error) {
	v, ok, err := a.getScalar(n, kindBool)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return scalarToBool(v), nil
}

// SetBool replaces field n with v, encoded as bool.
func (a *Accessor) SetBool(n FieldNumber, v bool) error {
	return a.setScalar(n, scalarFromBool(v))
}

// GetInt32 returns field n's value, or the zero int32 if the field is
// absent.
func (a *Accessor) GetInt32(n FieldNumber) (int32, error) {
	return a.GetInt32WithDefault(n, 0)
}

// GetInt32WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetInt32WithDefault(n FieldNumber, def int32) (int32, error) {
	v, ok, err := a.getScalar(n, kindInt32)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToInt32(v), nil
}

// SetInt32 replaces field n with v, encoded as int32.
func (a *Accessor) SetInt32(n FieldNumber, v int32) error {
	return a.setScalar(n, scalarFromInt32(v))
}

// GetUint32 returns field n's value, or the zero uint32 if the field is
// absent.
func (a *Accessor) GetUint32(n FieldNumber) (uint32, error) {
	return a.GetUint32WithDefault(n, 0)
}

// GetUint32WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetUint32WithDefault(n FieldNumber, def uint32) (uint32, error) {
	v, ok, err := a.getScalar(n, kindUint32)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToUint32(v), nil
}

// SetUint32 replaces field n with v, encoded as uint32.
func (a *Accessor) SetUint32(n FieldNumber, v uint32) error {
	return a.setScalar(n, scalarFromUint32(v))
}

// GetSint32 returns field n's value, or the zero int32 if the field is
// absent.
func (a *Accessor) GetSint32(n FieldNumber) (int32, error) {
	return a.GetSint32WithDefault(n, 0)
}

// GetSint32WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetSint32WithDefault(n FieldNumber, def int32) (int32, error) {
	v, ok, err := a.getScalar(n, kindSint32)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToSint32(v), nil
}

// SetSint32 replaces field n with v, encoded as sint32.
func (a *Accessor) SetSint32(n FieldNumber, v int32) error {
	return a.setScalar(n, scalarFromSint32(v))
}

// GetInt64 returns field n's value, or the zero int64 if the field is
// absent.
func (a *Accessor) GetInt64(n FieldNumber) (int64, error) {
	return a.GetInt64WithDefault(n, 0)
}

// GetInt64WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetInt64WithDefault(n FieldNumber, def int64) (int64, error) {
	v, ok, err := a.getScalar(n, kindInt64)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToInt64(v), nil
}

// SetInt64 replaces field n with v, encoded as int64.
func (a *Accessor) SetInt64(n FieldNumber, v int64) error {
	return a.setScalar(n, scalarFromInt64(v))
}

// GetUint64 returns field n's value, or the zero uint64 if the field is
// absent.
func (a *Accessor) GetUint64(n FieldNumber) (uint64, error) {
	return a.GetUint64WithDefault(n, 0)
}

// GetUint64WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetUint64WithDefault(n FieldNumber, def uint64) (uint64, error) {
	v, ok, err := a.getScalar(n, kindUint64)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToUint64(v), nil
}

// SetUint64 replaces field n with v, encoded as uint64.
func (a *Accessor) SetUint64(n FieldNumber, v uint64) error {
	return a.setScalar(n, scalarFromUint64(v))
}

// GetSint64 returns field n's value, or the zero int64 if the field is
// absent.
func (a *Accessor) GetSint64(n FieldNumber) (int64, error) {
	return a.GetSint64WithDefault(n, 0)
}

// GetSint64WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetSint64WithDefault(n FieldNumber, def int64) (int64, error) {
	v, ok, err := a.getScalar(n, kindSint64)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToSint64(v), nil
}

// SetSint64 replaces field n with v, encoded as sint64.
func (a *Accessor) SetSint64(n FieldNumber, v int64) error {
	return a.setScalar(n, scalarFromSint64(v))
}

// GetFixed32 returns field n's value, or the zero uint32 if the field is
// absent.
func (a *Accessor) GetFixed32(n FieldNumber) (uint32, error) {
	return a.GetFixed32WithDefault(n, 0)
}

// GetFixed32WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetFixed32WithDefault(n FieldNumber, def uint32) (uint32, error) {
	v, ok, err := a.getScalar(n, kindFixed32)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToFixed32(v), nil
}

// SetFixed32 replaces field n with v, encoded as fixed32.
func (a *Accessor) SetFixed32(n FieldNumber, v uint32) error {
	return a.setScalar(n, scalarFromFixed32(v))
}

// GetSfixed32 returns field n's value, or the zero int32 if the field is
// absent.
func (a *Accessor) GetSfixed32(n FieldNumber) (int32, error) {
	return a.GetSfixed32WithDefault(n, 0)
}

// GetSfixed32WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetSfixed32WithDefault(n FieldNumber, def int32) (int32, error) {
	v, ok, err := a.getScalar(n, kindSfixed32)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToSfixed32(v), nil
}

// SetSfixed32 replaces field n with v, encoded as sfixed32.
func (a *Accessor) SetSfixed32(n FieldNumber, v int32) error {
	return a.setScalar(n, scalarFromSfixed32(v))
}

// GetFixed64 returns field n's value, or the zero uint64 if the field is
// absent.
func (a *Accessor) GetFixed64(n FieldNumber) (uint64, error) {
	return a.GetFixed64WithDefault(n, 0)
}

// GetFixed64WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetFixed64WithDefault(n FieldNumber, def uint64) (uint64, error) {
	v, ok, err := a.getScalar(n, kindFixed64)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToFixed64(v), nil
}

// SetFixed64 replaces field n with v, encoded as fixed64.
func (a *Accessor) SetFixed64(n FieldNumber, v uint64) error {
	return a.setScalar(n, scalarFromFixed64(v))
}

// GetSfixed64 returns field n's value, or the zero int64 if the field is
// absent.
func (a *Accessor) GetSfixed64(n FieldNumber) (int64, error) {
	return a.GetSfixed64WithDefault(n, 0)
}

// GetSfixed64WithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetSfixed64WithDefault(n FieldNumber, def int64) (int64, error) {
	v, ok, err := a.getScalar(n, kindSfixed64)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToSfixed64(v), nil
}

// SetSfixed64 replaces field n with v, encoded as sfixed64.
func (a *Accessor) SetSfixed64(n FieldNumber, v int64) error {
	return a.setScalar(n, scalarFromSfixed64(v))
}

// GetFloat returns field n's value, or the zero float32 if the field is
// absent.
func (a *Accessor) GetFloat(n FieldNumber) (float32, error) {
	return a.GetFloatWithDefault(n, 0)
}

// GetFloatWithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetFloatWithDefault(n FieldNumber, def float32) (float32, error) {
	v, ok, err := a.getScalar(n, kindFloat)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToFloat(v), nil
}

// SetFloat stores v, converted to float32. It fails with VALUE_TYPE_INVALID
// under CHECK_CRITICAL_TYPE if v is outside the finite range of float32 and
// is not already a value representable in single precision (matching the
// float-range rule in §4.3's set semantics).
func (a *Accessor) SetFloat(n FieldNumber, v float64) error {
	f := float32(v)
	if checksFloatRange() {
		if isFiniteFloat64(v) && !isFiniteFloat32(f) {
			return valueTypeInvalidf("Must be a number, but got: %v (out of float32 range)", v)
		}
	}
	return a.setScalar(n, scalarFromFloat(f))
}

// GetDouble returns field n's value, or the zero float64 if the field is
// absent.
func (a *Accessor) GetDouble(n FieldNumber) (float64, error) {
	return a.GetDoubleWithDefault(n, 0)
}

// GetDoubleWithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetDoubleWithDefault(n FieldNumber, def float64) (float64, error) {
	v, ok, err := a.getScalar(n, kindDouble)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return scalarToDouble(v), nil
}

// SetDouble replaces field n with v, encoded as double.
func (a *Accessor) SetDouble(n FieldNumber, v float64) error {
	return a.setScalar(n, scalarFromDouble(v))
}

// GetString returns field n's value, or the zero string if the field is
// absent.
func (a *Accessor) GetString(n FieldNumber) (string, error) {
	return a.GetStringWithDefault(n, "")
}

// GetStringWithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetStringWithDefault(n FieldNumber, def string) (string, error) {
	v, ok, err := a.getScalar(n, kindString)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return scalarToString(v), nil
}

// SetString replaces field n with v, encoded as string.
func (a *Accessor) SetString(n FieldNumber, v string) error {
	return a.setScalar(n, scalarFromString(v))
}

// GetBytes returns field n's value, or the zero []byte if the field is
// absent.
func (a *Accessor) GetBytes(n FieldNumber) ([]byte, error) {
	return a.GetBytesWithDefault(n, nil)
}

// GetBytesWithDefault returns field n's value, or def if the field is absent.
func (a *Accessor) GetBytesWithDefault(n FieldNumber, def []byte) ([]byte, error) {
	v, ok, err := a.getScalar(n, kindBytes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return def, nil
	}
	return scalarToBytes(v), nil
}

// SetBytes replaces field n with v, encoded as bytes.
func (a *Accessor) SetBytes(n FieldNumber, v []byte) error {
	return a.setScalar(n, scalarFromBytes(v))
}

