// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

// TypeCode identifies the element type of an array. New codes may only be
// added with a major format-version bump; codes >= NumTypes are invalid.
type TypeCode uint8

const (
	Int8    TypeCode = 0
	Uint8   TypeCode = 1
	Int32   TypeCode = 2
	Uint32  TypeCode = 3
	Int64   TypeCode = 4
	Uint64  TypeCode = 5
	Float32 TypeCode = 6
	Float64 TypeCode = 7

	NumTypes = 8
)

// typeWidths maps a TypeCode to its fixed byte width. Index == TypeCode.
var typeWidths = [NumTypes]uint64{
	Int8:    1,
	Uint8:   1,
	Int32:   4,
	Uint32:  4,
	Int64:   8,
	Uint64:  8,
	Float32: 4,
	Float64: 8,
}

// Width returns the fixed byte width of one element of t. It fails closed:
// any code >= NumTypes is rejected as BadType.
func (t TypeCode) Width() (uint64, error) {
	if uint8(t) >= NumTypes {
		return 0, New(BadType, "TypeCode.Width", nil)
	}
	return typeWidths[t], nil
}

func (t TypeCode) String() string {
	switch t {
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}
