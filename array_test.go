// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayWrongTypeAccessorPanics(t *testing.T) {
	arr := Array{typ: TypeInt32, raw: []byte{1, 0, 0, 0}, n: 1}
	assert.Panics(t, func() { arr.Float64s() })
	assert.NotPanics(t, func() { arr.Int32s() })
}

func TestArrayLenAndType(t *testing.T) {
	arr := Array{typ: TypeUint8, raw: []byte{1, 2, 3}, n: 3}
	assert.Equal(t, TypeUint8, arr.Type())
	assert.EqualValues(t, 3, arr.Len())
	assert.Equal(t, []byte{1, 2, 3}, arr.Bytes())
}
