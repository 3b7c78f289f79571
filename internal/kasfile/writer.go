// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import (
	"bufio"
	"fmt"
	"io"
)

// FileWriter is usually an *os.File, but specified as an interface for
// easier testing (see writer_test.go's safeBuffer).
type FileWriter interface {
	io.Writer
	io.Closer
	Sync() error
}

const defaultBufferSize = 1 << 20

// WriteStore sorts items, packs their offsets, and streams the full file
// (header, descriptor table, keys, padded arrays) to fw. It returns the
// resulting file size. fw is flushed and synced but not closed: the caller
// (the Store) owns the file handle's lifetime.
func WriteStore(fw FileWriter, items []Item) (fileSize uint64, err error) {
	fileSize, err = Pack(items)
	if err != nil {
		return 0, err
	}

	w := bufio.NewWriterSize(fw, defaultBufferSize)

	var hdrBuf [HeaderSize]byte
	h := newFileHeader(uint32(len(items)), fileSize)
	if err := h.MarshalTo(hdrBuf[:]); err != nil {
		return 0, err
	}
	if _, err := w.Write(hdrBuf[:]); err != nil {
		return 0, New(IOError, "WriteStore", fmt.Errorf("header: %w", err))
	}

	var descBuf [DescriptorSize]byte
	for _, it := range items {
		d := descriptor{
			typ:        it.Type,
			keyStart:   it.KeyStart,
			keyLen:     uint64(len(it.Key)),
			arrayStart: it.ArrayStart,
			arrayLen:   it.ArrayLen,
		}
		if err := d.marshalTo(descBuf[:]); err != nil {
			return 0, err
		}
		if _, err := w.Write(descBuf[:]); err != nil {
			return 0, New(IOError, "WriteStore", fmt.Errorf("descriptor for key %q: %w", it.Key, err))
		}
	}

	for _, it := range items {
		if _, err := w.Write(it.Key); err != nil {
			return 0, New(IOError, "WriteStore", fmt.Errorf("key %q: %w", it.Key, err))
		}
	}

	var zeroPad [8]byte
	off := descriptorTableEnd(len(items))
	for _, it := range items {
		off += uint64(len(it.Key))
	}
	for _, it := range items {
		padLen := it.ArrayStart - off
		if padLen > 0 {
			if _, err := w.Write(zeroPad[:padLen]); err != nil {
				return 0, New(IOError, "WriteStore", fmt.Errorf("pad before key %q: %w", it.Key, err))
			}
		}
		if len(it.Array) > 0 {
			if _, err := w.Write(it.Array); err != nil {
				return 0, New(IOError, "WriteStore", fmt.Errorf("array for key %q: %w", it.Key, err))
			}
		}
		off = it.ArrayStart + uint64(len(it.Array))
	}

	if err := w.Flush(); err != nil {
		return 0, New(IOError, "WriteStore", fmt.Errorf("flush: %w", err))
	}
	if err := fw.Sync(); err != nil {
		return 0, New(IOError, "WriteStore", fmt.Errorf("sync: %w", err))
	}

	return fileSize, nil
}
