// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempStore(t *testing.T, items []Item) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.kas")

	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = WriteStore(f, items)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return path
}

func openTempStore(t *testing.T, path string, noMmap bool) *Reader {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	r, err := Open(f, noMmap)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestReaderRoundTripMmapAndBuffered(t *testing.T) {
	items := []Item{
		{Key: []byte("b"), Type: Uint8, Array: []byte{9}, ArrayLen: 1},
		{Key: []byte("aa"), Type: Int32, Array: []byte{1, 0, 0, 0, 2, 0, 0, 0}, ArrayLen: 2},
		{Key: []byte("a"), Type: Float64, ArrayLen: 0},
	}
	path := writeTempStore(t, items)

	for _, noMmap := range []bool{false, true} {
		r := openTempStore(t, path, noMmap)
		require.Len(t, r.Items, 3)
		assert.Equal(t, "a", string(r.Items[0].Key))
		assert.Equal(t, "aa", string(r.Items[1].Key))
		assert.Equal(t, "b", string(r.Items[2].Key))

		got, ok := Lookup(r.Items, []byte("aa"))
		require.True(t, ok)
		assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0}, got.Array)

		_, ok = Lookup(r.Items, []byte("nope"))
		assert.False(t, ok)
	}
}

func TestReaderEmptyStore(t *testing.T) {
	path := writeTempStore(t, nil)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize), info.Size())

	r := openTempStore(t, path, false)
	assert.Empty(t, r.Items)
}

func TestReaderRejectsTruncatedFile(t *testing.T) {
	path := writeTempStore(t, []Item{{Key: []byte("x"), Type: Int32, Array: []byte{1, 0, 0, 0}, ArrayLen: 1}})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)-1], 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = Open(f, true)
	require.Error(t, err)
	assert.Equal(t, BadFileFormat, err.(*Error).Kind)
}

func TestReaderRejectsBadMagic(t *testing.T) {
	path := writeTempStore(t, nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = Open(f, true)
	require.Error(t, err)
	assert.Equal(t, BadFileFormat, err.(*Error).Kind)
}

func TestReaderRejectsBadTypeCode(t *testing.T) {
	path := writeTempStore(t, []Item{{Key: []byte("x"), Type: Uint8, Array: []byte{1}, ArrayLen: 1}})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[HeaderSize] = 9 // descriptor 0's type byte
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = Open(f, true)
	require.Error(t, err)
	assert.Equal(t, BadType, err.(*Error).Kind)
}

func TestReaderRejectsTrailingGarbageBufferedAndMmap(t *testing.T) {
	path := writeTempStore(t, []Item{{Key: []byte("x"), Type: Int32, Array: []byte{1, 0, 0, 0}, ArrayLen: 1}})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	for _, noMmap := range []bool{false, true} {
		f, err := os.Open(path)
		require.NoError(t, err)

		_, err = Open(f, noMmap)
		require.Error(t, err)
		assert.Equal(t, BadFileFormat, err.(*Error).Kind)
		require.NoError(t, f.Close())
	}
}

func TestReaderRejectsMisalignedArrayStart(t *testing.T) {
	path := writeTempStore(t, []Item{{Key: []byte("x"), Type: Uint8, Array: []byte{1}, ArrayLen: 1}})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// descriptor 0's array_start field is bytes [HeaderSize+24 : HeaderSize+32)
	data[HeaderSize+24]++
	require.NoError(t, os.WriteFile(path, data, 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = Open(f, true)
	require.Error(t, err)
	assert.Equal(t, BadFileFormat, err.(*Error).Kind)
}
