// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protolazy

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// FieldKind names the entry variant backing one of an Accessor's fields, for
// diagnostic display. It has no bearing on decoding and is not itself part
// of the wire format.
type FieldKind string

const (
	KindRaw      FieldKind = "raw"
	KindDecoded  FieldKind = "decoded"
	KindMessage  FieldKind = "message"
	KindRepeated FieldKind = "repeated"
)

// FieldInfo is a schema-free snapshot of one populated field, as reported by
// Accessor.DebugFields. It never interprets a payload according to a
// declared type: the accessor has no schema to consult, only what each
// entry's tag and wire type already record.
type FieldInfo struct {
	Number   FieldNumber
	Kind     FieldKind
	Wire     string
	Elements int // number of byte ranges (Raw), repeated elements, or 1 otherwise
}

// DebugFields ensures the index is built and returns a snapshot describing
// every currently populated field in ascending field-number order. It is
// read-only except for the same lazy indexing every other read triggers.
func (a *Accessor) DebugFields() ([]FieldInfo, error) {
	if err := a.ensureIndexed(); err != nil {
		return nil, err
	}
	var infos []FieldInfo
	a.forEachOrdered(func(n FieldNumber, e *fieldEntry) bool {
		if !e.hasValue() {
			return true
		}
		info := FieldInfo{Number: n, Wire: wireTypeName(e.wire)}
		switch e.tag {
		case tagRaw:
			info.Kind = KindRaw
			info.Elements = len(e.ranges)
		case tagMessage:
			info.Kind = KindMessage
			info.Elements = 1
		case tagRepeated:
			info.Kind = KindRepeated
			info.Elements = len(e.elems)
		default:
			info.Kind = KindDecoded
			info.Elements = 1
		}
		infos = append(infos, info)
		return true
	})
	return infos, nil
}

func wireTypeName(w protowire.Type) string {
	switch w {
	case protowire.VarintType:
		return "varint"
	case protowire.Fixed32Type:
		return "fixed32"
	case protowire.Fixed64Type:
		return "fixed64"
	case protowire.BytesType:
		return "bytes"
	default:
		return fmt.Sprintf("unknown(%d)", w)
	}
}

func (f FieldInfo) String() string {
	return fmt.Sprintf("%d: %s wire=%s n=%d", f.Number, f.Kind, f.Wire, f.Elements)
}
