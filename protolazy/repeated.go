// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

// This file exposes one GetRepeated<T>Iterable/AddUnpacked<T>Element/
// AddUnpacked<T>Iterable/SetPacked<T>Iterable quartet per scalar wire type,
// over the shared getRepeated/addRepeated/setPacked core in
// repeated_core.go.

// GetRepeatedBoolIterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedBoolIterable(n FieldNumber) ([]bool, error) {
	elems, err := a.getRepeated(n, kindBool)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]bool, len(elems))
	for i, v := range elems {
		out[i] = scalarToBool(v)
	}
	return out, nil
}

// AddUnpackedBoolElement appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedBoolElement(n FieldNumber, v bool) error {
	return a.addRepeated(n, kindBool, false, scalarFromBool(v))
}

// AddUnpackedBoolIterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedBoolIterable(n FieldNumber, vs []bool) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromBool(v)
	}
	return a.addRepeated(n, kindBool, false, scalars...)
}

// SetPackedBoolIterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedBoolIterable(n FieldNumber, vs []bool) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromBool(v)
	}
	return a.setPacked(n, kindBool, scalars)
}

// GetRepeatedInt32Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedInt32Iterable(n FieldNumber) ([]int32, error) {
	elems, err := a.getRepeated(n, kindInt32)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]int32, len(elems))
	for i, v := range elems {
		out[i] = scalarToInt32(v)
	}
	return out, nil
}

// AddUnpackedInt32Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedInt32Element(n FieldNumber, v int32) error {
	return a.addRepeated(n, kindInt32, false, scalarFromInt32(v))
}

// AddUnpackedInt32Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedInt32Iterable(n FieldNumber, vs []int32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromInt32(v)
	}
	return a.addRepeated(n, kindInt32, false, scalars...)
}

// SetPackedInt32Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedInt32Iterable(n FieldNumber, vs []int32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromInt32(v)
	}
	return a.setPacked(n, kindInt32, scalars)
}

// GetRepeatedUint32Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedUint32Iterable(n FieldNumber) ([]uint32, error) {
	elems, err := a.getRepeated(n, kindUint32)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]uint32, len(elems))
	for i, v := range elems {
		out[i] = scalarToUint32(v)
	}
	return out, nil
}

// AddUnpackedUint32Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedUint32Element(n FieldNumber, v uint32) error {
	return a.addRepeated(n, kindUint32, false, scalarFromUint32(v))
}

// AddUnpackedUint32Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedUint32Iterable(n FieldNumber, vs []uint32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromUint32(v)
	}
	return a.addRepeated(n, kindUint32, false, scalars...)
}

// SetPackedUint32Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedUint32Iterable(n FieldNumber, vs []uint32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromUint32(v)
	}
	return a.setPacked(n, kindUint32, scalars)
}

// GetRepeatedSint32Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedSint32Iterable(n FieldNumber) ([]int32, error) {
	elems, err := a.getRepeated(n, kindSint32)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]int32, len(elems))
	for i, v := range elems {
		out[i] = scalarToSint32(v)
	}
	return out, nil
}

// AddUnpackedSint32Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedSint32Element(n FieldNumber, v int32) error {
	return a.addRepeated(n, kindSint32, false, scalarFromSint32(v))
}

// AddUnpackedSint32Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedSint32Iterable(n FieldNumber, vs []int32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSint32(v)
	}
	return a.addRepeated(n, kindSint32, false, scalars...)
}

// SetPackedSint32Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedSint32Iterable(n FieldNumber, vs []int32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSint32(v)
	}
	return a.setPacked(n, kindSint32, scalars)
}

// GetRepeatedInt64Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedInt64Iterable(n FieldNumber) ([]int64, error) {
	elems, err := a.getRepeated(n, kindInt64)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]int64, len(elems))
	for i, v := range elems {
		out[i] = scalarToInt64(v)
	}
	return out, nil
}

// AddUnpackedInt64Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedInt64Element(n FieldNumber, v int64) error {
	return a.addRepeated(n, kindInt64, false, scalarFromInt64(v))
}

// AddUnpackedInt64Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedInt64Iterable(n FieldNumber, vs []int64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromInt64(v)
	}
	return a.addRepeated(n, kindInt64, false, scalars...)
}

// SetPackedInt64Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedInt64Iterable(n FieldNumber, vs []int64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromInt64(v)
	}
	return a.setPacked(n, kindInt64, scalars)
}

// GetRepeatedUint64Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedUint64Iterable(n FieldNumber) ([]uint64, error) {
	elems, err := a.getRepeated(n, kindUint64)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]uint64, len(elems))
	for i, v := range elems {
		out[i] = scalarToUint64(v)
	}
	return out, nil
}

// AddUnpackedUint64Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedUint64Element(n FieldNumber, v uint64) error {
	return a.addRepeated(n, kindUint64, false, scalarFromUint64(v))
}

// AddUnpackedUint64Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedUint64Iterable(n FieldNumber, vs []uint64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromUint64(v)
	}
	return a.addRepeated(n, kindUint64, false, scalars...)
}

// SetPackedUint64Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedUint64Iterable(n FieldNumber, vs []uint64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromUint64(v)
	}
	return a.setPacked(n, kindUint64, scalars)
}

// GetRepeatedSint64Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedSint64Iterable(n FieldNumber) ([]int64, error) {
	elems, err := a.getRepeated(n, kindSint64)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]int64, len(elems))
	for i, v := range elems {
		out[i] = scalarToSint64(v)
	}
	return out, nil
}

// AddUnpackedSint64Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedSint64Element(n FieldNumber, v int64) error {
	return a.addRepeated(n, kindSint64, false, scalarFromSint64(v))
}

// AddUnpackedSint64Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedSint64Iterable(n FieldNumber, vs []int64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSint64(v)
	}
	return a.addRepeated(n, kindSint64, false, scalars...)
}

// SetPackedSint64Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedSint64Iterable(n FieldNumber, vs []int64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSint64(v)
	}
	return a.setPacked(n, kindSint64, scalars)
}

// GetRepeatedFixed32Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedFixed32Iterable(n FieldNumber) ([]uint32, error) {
	elems, err := a.getRepeated(n, kindFixed32)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]uint32, len(elems))
	for i, v := range elems {
		out[i] = scalarToFixed32(v)
	}
	return out, nil
}

// AddUnpackedFixed32Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedFixed32Element(n FieldNumber, v uint32) error {
	return a.addRepeated(n, kindFixed32, false, scalarFromFixed32(v))
}

// AddUnpackedFixed32Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedFixed32Iterable(n FieldNumber, vs []uint32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromFixed32(v)
	}
	return a.addRepeated(n, kindFixed32, false, scalars...)
}

// SetPackedFixed32Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedFixed32Iterable(n FieldNumber, vs []uint32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromFixed32(v)
	}
	return a.setPacked(n, kindFixed32, scalars)
}

// GetRepeatedSfixed32Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedSfixed32Iterable(n FieldNumber) ([]int32, error) {
	elems, err := a.getRepeated(n, kindSfixed32)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]int32, len(elems))
	for i, v := range elems {
		out[i] = scalarToSfixed32(v)
	}
	return out, nil
}

// AddUnpackedSfixed32Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedSfixed32Element(n FieldNumber, v int32) error {
	return a.addRepeated(n, kindSfixed32, false, scalarFromSfixed32(v))
}

// AddUnpackedSfixed32Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedSfixed32Iterable(n FieldNumber, vs []int32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSfixed32(v)
	}
	return a.addRepeated(n, kindSfixed32, false, scalars...)
}

// SetPackedSfixed32Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedSfixed32Iterable(n FieldNumber, vs []int32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSfixed32(v)
	}
	return a.setPacked(n, kindSfixed32, scalars)
}

// GetRepeatedFixed64Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedFixed64Iterable(n FieldNumber) ([]uint64, error) {
	elems, err := a.getRepeated(n, kindFixed64)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]uint64, len(elems))
	for i, v := range elems {
		out[i] = scalarToFixed64(v)
	}
	return out, nil
}

// AddUnpackedFixed64Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedFixed64Element(n FieldNumber, v uint64) error {
	return a.addRepeated(n, kindFixed64, false, scalarFromFixed64(v))
}

// AddUnpackedFixed64Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedFixed64Iterable(n FieldNumber, vs []uint64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromFixed64(v)
	}
	return a.addRepeated(n, kindFixed64, false, scalars...)
}

// SetPackedFixed64Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedFixed64Iterable(n FieldNumber, vs []uint64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromFixed64(v)
	}
	return a.setPacked(n, kindFixed64, scalars)
}

// GetRepeatedSfixed64Iterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedSfixed64Iterable(n FieldNumber) ([]int64, error) {
	elems, err := a.getRepeated(n, kindSfixed64)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]int64, len(elems))
	for i, v := range elems {
		out[i] = scalarToSfixed64(v)
	}
	return out, nil
}

// AddUnpackedSfixed64Element appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedSfixed64Element(n FieldNumber, v int64) error {
	return a.addRepeated(n, kindSfixed64, false, scalarFromSfixed64(v))
}

// AddUnpackedSfixed64Iterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedSfixed64Iterable(n FieldNumber, vs []int64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSfixed64(v)
	}
	return a.addRepeated(n, kindSfixed64, false, scalars...)
}

// SetPackedSfixed64Iterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedSfixed64Iterable(n FieldNumber, vs []int64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromSfixed64(v)
	}
	return a.setPacked(n, kindSfixed64, scalars)
}

// GetRepeatedFloatIterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedFloatIterable(n FieldNumber) ([]float32, error) {
	elems, err := a.getRepeated(n, kindFloat)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]float32, len(elems))
	for i, v := range elems {
		out[i] = scalarToFloat(v)
	}
	return out, nil
}

// AddUnpackedFloatElement appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedFloatElement(n FieldNumber, v float32) error {
	return a.addRepeated(n, kindFloat, false, scalarFromFloat(v))
}

// AddUnpackedFloatIterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedFloatIterable(n FieldNumber, vs []float32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromFloat(v)
	}
	return a.addRepeated(n, kindFloat, false, scalars...)
}

// SetPackedFloatIterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedFloatIterable(n FieldNumber, vs []float32) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromFloat(v)
	}
	return a.setPacked(n, kindFloat, scalars)
}

// GetRepeatedDoubleIterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedDoubleIterable(n FieldNumber) ([]float64, error) {
	elems, err := a.getRepeated(n, kindDouble)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]float64, len(elems))
	for i, v := range elems {
		out[i] = scalarToDouble(v)
	}
	return out, nil
}

// AddUnpackedDoubleElement appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedDoubleElement(n FieldNumber, v float64) error {
	return a.addRepeated(n, kindDouble, false, scalarFromDouble(v))
}

// AddUnpackedDoubleIterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedDoubleIterable(n FieldNumber, vs []float64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromDouble(v)
	}
	return a.addRepeated(n, kindDouble, false, scalars...)
}

// SetPackedDoubleIterable replaces field n with vs, to be re-emitted as a
// single packed, length-delimited record.
func (a *Accessor) SetPackedDoubleIterable(n FieldNumber, vs []float64) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromDouble(v)
	}
	return a.setPacked(n, kindDouble, scalars)
}

// GetRepeatedStringIterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedStringIterable(n FieldNumber) ([]string, error) {
	elems, err := a.getRepeated(n, kindString)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([]string, len(elems))
	for i, v := range elems {
		out[i] = scalarToString(v)
	}
	return out, nil
}

// AddUnpackedStringElement appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedStringElement(n FieldNumber, v string) error {
	return a.addRepeated(n, kindString, false, scalarFromString(v))
}

// AddUnpackedStringIterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedStringIterable(n FieldNumber, vs []string) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromString(v)
	}
	return a.addRepeated(n, kindString, false, scalars...)
}

// SetPackedStringIterable replaces field n with vs. String elements cannot be
// packed on the wire, so they are re-emitted unpacked, one record per element.
func (a *Accessor) SetPackedStringIterable(n FieldNumber, vs []string) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromString(v)
	}
	return a.setPacked(n, kindString, scalars)
}

// GetRepeatedBytesIterable returns field n's elements in encounter order, or
// nil if the field is absent.
func (a *Accessor) GetRepeatedBytesIterable(n FieldNumber) ([][]byte, error) {
	elems, err := a.getRepeated(n, kindBytes)
	if err != nil {
		return nil, err
	}
	if elems == nil {
		return nil, nil
	}
	out := make([][]byte, len(elems))
	for i, v := range elems {
		out[i] = scalarToBytes(v)
	}
	return out, nil
}

// AddUnpackedBytesElement appends one element to field n, on the wire as an
// individual unpacked occurrence.
func (a *Accessor) AddUnpackedBytesElement(n FieldNumber, v []byte) error {
	return a.addRepeated(n, kindBytes, false, scalarFromBytes(v))
}

// AddUnpackedBytesIterable appends vs to field n, each as an individual
// unpacked occurrence.
func (a *Accessor) AddUnpackedBytesIterable(n FieldNumber, vs [][]byte) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromBytes(v)
	}
	return a.addRepeated(n, kindBytes, false, scalars...)
}

// SetPackedBytesIterable replaces field n with vs. Bytes elements cannot be
// packed on the wire, so they are re-emitted unpacked, one record per element.
func (a *Accessor) SetPackedBytesIterable(n FieldNumber, vs [][]byte) error {
	scalars := make([]scalar, len(vs))
	for i, v := range vs {
		scalars[i] = scalarFromBytes(v)
	}
	return a.setPacked(n, kindBytes, scalars)
}

