// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kastore

import (
	"github.com/go-kastore/kastore/internal/byteview"
	"github.com/go-kastore/kastore/internal/kasfile"
)

// TypeCode identifies the element type of an array stored under a key.
// Codes >= 8 are invalid and reserved for a future major format version.
type TypeCode = kasfile.TypeCode

const (
	TypeInt8    = kasfile.Int8
	TypeUint8   = kasfile.Uint8
	TypeInt32   = kasfile.Int32
	TypeUint32  = kasfile.Uint32
	TypeInt64   = kasfile.Int64
	TypeUint64  = kasfile.Uint64
	TypeFloat32 = kasfile.Float32
	TypeFloat64 = kasfile.Float64
)

// typeCodeOf returns the TypeCode and raw byte view for a Go slice of one
// of the eight supported element types, or ok=false if array is not one of
// those types.
func typeCodeOf(array interface{}) (t TypeCode, raw []byte, length uint64, ok bool) {
	switch a := array.(type) {
	case []int8:
		return TypeInt8, byteview.BytesFromInt8s(a), uint64(len(a)), true
	case []uint8:
		return TypeUint8, byteview.BytesFromUint8s(a), uint64(len(a)), true
	case []int32:
		return TypeInt32, byteview.BytesFromInt32s(a), uint64(len(a)), true
	case []uint32:
		return TypeUint32, byteview.BytesFromUint32s(a), uint64(len(a)), true
	case []int64:
		return TypeInt64, byteview.BytesFromInt64s(a), uint64(len(a)), true
	case []uint64:
		return TypeUint64, byteview.BytesFromUint64s(a), uint64(len(a)), true
	case []float32:
		return TypeFloat32, byteview.BytesFromFloat32s(a), uint64(len(a)), true
	case []float64:
		return TypeFloat64, byteview.BytesFromFloat64s(a), uint64(len(a)), true
	default:
		return 0, nil, 0, false
	}
}
