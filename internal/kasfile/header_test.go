// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHeaderRoundtrips(t *testing.T) {
	origH := newFileHeader(3, 256)

	var buf [HeaderSize]byte
	require.NoError(t, origH.MarshalTo(buf[:]))

	var reserved [40]byte
	assert.Equal(t, reserved, [40]byte(buf[24:64]))

	var newH fileHeader
	require.NoError(t, newH.UnmarshalBytes(buf[:]))
	assert.Equal(t, *origH, newH)
}

func TestFileHeaderRejectsShortBuffer(t *testing.T) {
	var h fileHeader
	err := h.UnmarshalBytes(make([]byte, HeaderSize-1))
	require.Error(t, err)
	assert.Equal(t, BadFileFormat, err.(*Error).Kind)
}

func TestFileHeaderRejectsBadMagic(t *testing.T) {
	h := newFileHeader(0, HeaderSize)
	var buf [HeaderSize]byte
	require.NoError(t, h.MarshalTo(buf[:]))
	buf[0] ^= 0xff

	var newH fileHeader
	err := newH.UnmarshalBytes(buf[:])
	require.Error(t, err)
	assert.Equal(t, BadFileFormat, err.(*Error).Kind)
}

func TestFileHeaderRejectsVersionMismatch(t *testing.T) {
	h := newFileHeader(0, HeaderSize)
	var buf [HeaderSize]byte

	h.versionMajor = LibraryVersionMajor + 1
	require.NoError(t, h.MarshalTo(buf[:]))
	var tooNew fileHeader
	err := tooNew.UnmarshalBytes(buf[:])
	require.Error(t, err)
	assert.Equal(t, VersionTooNew, err.(*Error).Kind)

	h.versionMajor = LibraryVersionMajor - 1
	require.NoError(t, h.MarshalTo(buf[:]))
	var tooOld fileHeader
	err = tooOld.UnmarshalBytes(buf[:])
	require.Error(t, err)
	assert.Equal(t, VersionTooOld, err.(*Error).Kind)
}

func TestFileHeaderRejectsShortFileSize(t *testing.T) {
	h := newFileHeader(0, HeaderSize-1)
	var buf [HeaderSize]byte
	require.NoError(t, h.MarshalTo(buf[:]))

	var newH fileHeader
	err := newH.UnmarshalBytes(buf[:])
	require.Error(t, err)
	assert.Equal(t, BadFileFormat, err.(*Error).Kind)
}
