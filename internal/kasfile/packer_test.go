// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackSingleSmallItem(t *testing.T) {
	items := []Item{
		{Key: []byte("x"), Type: Int32, Array: []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0}, ArrayLen: 3},
	}
	fileSize, err := Pack(items)
	require.NoError(t, err)

	assert.Equal(t, uint64(148), fileSize)
	assert.Equal(t, uint64(128), items[0].KeyStart)
	assert.Equal(t, uint64(136), items[0].ArrayStart)
}

func TestPackSortsByKeyShorterFirst(t *testing.T) {
	items := []Item{
		{Key: []byte("b"), Type: Uint8, ArrayLen: 0},
		{Key: []byte("aa"), Type: Uint8, ArrayLen: 0},
		{Key: []byte("a"), Type: Uint8, ArrayLen: 0},
	}
	_, err := Pack(items)
	require.NoError(t, err)

	var keys []string
	for _, it := range items {
		keys = append(keys, string(it.Key))
	}
	assert.Equal(t, []string{"a", "aa", "b"}, keys)
}

func TestPackEmptyStore(t *testing.T) {
	fileSize, err := Pack(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(HeaderSize), fileSize)
}

func TestPackZeroLengthArrayStaysAligned(t *testing.T) {
	items := []Item{
		{Key: []byte("empty"), Type: Float64, ArrayLen: 0},
	}
	_, err := Pack(items)
	require.NoError(t, err)
	assert.Zero(t, items[0].ArrayStart%8)
}

func TestPackKeysAreNotPadded(t *testing.T) {
	items := []Item{
		{Key: []byte("a"), Type: Uint8, ArrayLen: 0},
		{Key: []byte("bb"), Type: Uint8, ArrayLen: 0},
	}
	_, err := Pack(items)
	require.NoError(t, err)

	tableEnd := descriptorTableEnd(2)
	assert.Equal(t, tableEnd, items[0].KeyStart)
	assert.Equal(t, tableEnd+1, items[1].KeyStart)
}
