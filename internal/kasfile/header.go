// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import (
	"encoding/binary"
	"fmt"

	"github.com/go-kastore/kastore/internal/zero"
)

const (
	HeaderSize = 64

	// LibraryVersionMajor/Minor are the format version this package
	// writes and the major version it will read.
	LibraryVersionMajor = 1
	LibraryVersionMinor = 0
)

// magic mirrors the PNG magic-number convention: a high-bit byte to catch
// 7-bit transports, a recognizable tag, a CR/LF probe, a Ctrl-Z EOF probe,
// and a trailing LF.
var magic = [8]byte{0x89, 'K', 'A', 'S', '\r', '\n', 0x1a, '\n'}

type fileHeader struct {
	versionMajor uint16
	versionMinor uint16
	numItems     uint32
	fileSize     uint64
}

func newFileHeader(numItems uint32, fileSize uint64) *fileHeader {
	return &fileHeader{
		versionMajor: LibraryVersionMajor,
		versionMinor: LibraryVersionMinor,
		numItems:     numItems,
		fileSize:     fileSize,
	}
}

// MarshalTo writes the 64-byte header into buf, which must be at least
// HeaderSize bytes. Reserved bytes are left zero.
func (h *fileHeader) MarshalTo(buf []byte) error {
	if len(buf) < HeaderSize {
		return New(Generic, "fileHeader.MarshalTo", fmt.Errorf("buffer too short: %d < %d", len(buf), HeaderSize))
	}
	zero.Bytes(buf[:HeaderSize])
	copy(buf[0:8], magic[:])
	binary.LittleEndian.PutUint16(buf[8:10], h.versionMajor)
	binary.LittleEndian.PutUint16(buf[10:12], h.versionMinor)
	binary.LittleEndian.PutUint32(buf[12:16], h.numItems)
	binary.LittleEndian.PutUint64(buf[16:24], h.fileSize)
	// buf[24:64] reserved, left zero
	return nil
}

// UnmarshalBytes parses and validates a 64-byte header. It enforces magic,
// major-version compatibility, and the file_size >= HeaderSize invariant;
// the minor version is informational only.
func (h *fileHeader) UnmarshalBytes(buf []byte) error {
	if len(buf) < HeaderSize {
		return New(BadFileFormat, "fileHeader.UnmarshalBytes", fmt.Errorf("header too short: %d < %d", len(buf), HeaderSize))
	}
	if [8]byte(buf[0:8]) != magic {
		return New(BadFileFormat, "fileHeader.UnmarshalBytes", fmt.Errorf("bad magic number"))
	}

	h.versionMajor = binary.LittleEndian.Uint16(buf[8:10])
	h.versionMinor = binary.LittleEndian.Uint16(buf[10:12])
	h.numItems = binary.LittleEndian.Uint32(buf[12:16])
	h.fileSize = binary.LittleEndian.Uint64(buf[16:24])

	if h.versionMajor < LibraryVersionMajor {
		return New(VersionTooOld, "fileHeader.UnmarshalBytes", fmt.Errorf("file major version %d < library major version %d", h.versionMajor, LibraryVersionMajor))
	}
	if h.versionMajor > LibraryVersionMajor {
		return New(VersionTooNew, "fileHeader.UnmarshalBytes", fmt.Errorf("file major version %d > library major version %d", h.versionMajor, LibraryVersionMajor))
	}
	if h.fileSize < HeaderSize {
		return New(BadFileFormat, "fileHeader.UnmarshalBytes", fmt.Errorf("file_size %d shorter than header", h.fileSize))
	}

	return nil
}
