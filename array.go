// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kastore

import (
	"fmt"

	"github.com/go-kastore/kastore/internal/byteview"
)

// Array is a read-only, typed view of one item's array data. Its backing
// bytes alias the Store's buffer (mapped or owned) and are only valid for
// the Store's lifetime; do not retain an Array past Close.
type Array struct {
	raw []byte
	typ TypeCode
	n   uint64
}

// Type returns the element type of the array.
func (a Array) Type() TypeCode { return a.typ }

// Len returns the number of elements in the array. It may be 0.
func (a Array) Len() uint64 { return a.n }

// Bytes returns the raw, unconverted backing bytes of the array.
func (a Array) Bytes() []byte { return a.raw }

func (a Array) wrongType(want TypeCode) {
	panic(fmt.Sprintf("kastore: Array holds %s, not %s", a.typ, want))
}

func (a Array) Int8s() []int8 {
	if a.typ != TypeInt8 {
		a.wrongType(TypeInt8)
	}
	return byteview.Int8s(a.raw)
}

func (a Array) Uint8s() []uint8 {
	if a.typ != TypeUint8 {
		a.wrongType(TypeUint8)
	}
	return byteview.Uint8s(a.raw)
}

func (a Array) Int32s() []int32 {
	if a.typ != TypeInt32 {
		a.wrongType(TypeInt32)
	}
	return byteview.Int32s(a.raw)
}

func (a Array) Uint32s() []uint32 {
	if a.typ != TypeUint32 {
		a.wrongType(TypeUint32)
	}
	return byteview.Uint32s(a.raw)
}

func (a Array) Int64s() []int64 {
	if a.typ != TypeInt64 {
		a.wrongType(TypeInt64)
	}
	return byteview.Int64s(a.raw)
}

func (a Array) Uint64s() []uint64 {
	if a.typ != TypeUint64 {
		a.wrongType(TypeUint64)
	}
	return byteview.Uint64s(a.raw)
}

func (a Array) Float32s() []float32 {
	if a.typ != TypeFloat32 {
		a.wrongType(TypeFloat32)
	}
	return byteview.Float32s(a.raw)
}

func (a Array) Float64s() []float64 {
	if a.typ != TypeFloat64 {
		a.wrongType(TypeFloat64)
	}
	return byteview.Float64s(a.raw)
}
