// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/edsrzf/mmap-go"
)

// Reader holds the whole-file buffer for an opened store -- either a
// read-only memory map or an owned, heap-allocated copy -- plus the parsed,
// validated descriptor table.
type Reader struct {
	buf          []byte
	mm           mmap.MMap // non-nil when buf is backed by a memory map
	Items        []Item
	VersionMajor uint16
	VersionMinor uint16
}

// Open reads and validates the header of f, then ingests the rest of the
// file either by mapping it read-only (the default) or by copying it into
// an owned buffer (if noMmap is set, or mapping fails for a reason other
// than corruption). It then parses and validates every descriptor.
func Open(f *os.File, noMmap bool) (*Reader, error) {
	var hdrBuf [HeaderSize]byte
	if _, err := io.ReadFull(f, hdrBuf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, New(BadFileFormat, "Open", fmt.Errorf("file shorter than header: %w", err))
		}
		return nil, New(IOError, "Open", err)
	}

	var h fileHeader
	if err := h.UnmarshalBytes(hdrBuf[:]); err != nil {
		return nil, err
	}

	r := &Reader{
		VersionMajor: h.versionMajor,
		VersionMinor: h.versionMinor,
	}

	if !noMmap {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err == nil {
			if uint64(len(m)) != h.fileSize {
				_ = m.Unmap()
				return nil, New(BadFileFormat, "Open", fmt.Errorf("mapped length %d != header file_size %d", len(m), h.fileSize))
			}
			r.mm = m
			r.buf = []byte(m)
		}
		// fall through to buffered read if mapping failed for a reason
		// other than file-format corruption (e.g. unsupported platform)
	}

	if r.buf == nil {
		info, err := f.Stat()
		if err != nil {
			return nil, New(IOError, "Open", err)
		}
		if uint64(info.Size()) != h.fileSize {
			return nil, New(BadFileFormat, "Open", fmt.Errorf("file length %d != header file_size %d", info.Size(), h.fileSize))
		}

		buf := make([]byte, h.fileSize)
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, New(IOError, "Open", err)
		}
		if _, err := io.ReadFull(f, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, New(BadFileFormat, "Open", fmt.Errorf("file shorter than file_size %d: %w", h.fileSize, err))
			}
			return nil, New(IOError, "Open", err)
		}
		r.buf = buf
	}

	items, err := parseItems(r.buf, h.numItems, h.fileSize)
	if err != nil {
		_ = r.Close()
		return nil, err
	}
	r.Items = items

	return r, nil
}

func parseItems(buf []byte, numItems uint32, fileSize uint64) ([]Item, error) {
	if numItems == 0 {
		return nil, nil
	}

	tableEnd := descriptorTableEnd(int(numItems))
	if tableEnd > fileSize {
		return nil, New(BadFileFormat, "parseItems", fmt.Errorf("descriptor table end %d beyond file size %d", tableEnd, fileSize))
	}

	items := make([]Item, numItems)
	for i := uint32(0); i < numItems; i++ {
		off := HeaderSize + uint64(i)*DescriptorSize
		d, err := unmarshalDescriptor(buf[off:off+DescriptorSize], fileSize)
		if err != nil {
			return nil, err
		}

		width, _ := d.typ.Width() // already validated by unmarshalDescriptor
		items[i] = Item{
			Key:        buf[d.keyStart : d.keyStart+d.keyLen],
			Type:       d.typ,
			Array:      buf[d.arrayStart : d.arrayStart+d.arrayLen*width],
			ArrayLen:   d.arrayLen,
			KeyStart:   d.keyStart,
			ArrayStart: d.arrayStart,
		}
	}

	if err := validateCanonical(items, fileSize); err != nil {
		return nil, err
	}

	return items, nil
}

// validateCanonical checks that items -- in the order they were found in
// the descriptor table -- are sorted by key and packed exactly the way Pack
// would have packed them. Any deviation (overlapping items, holes beyond
// alignment padding, a non-canonical ordering) is BadFileFormat: readers
// only accept the one canonical layout for a given item set.
func validateCanonical(items []Item, fileSize uint64) error {
	for i := 1; i < len(items); i++ {
		if CompareKeys(items[i-1].Key, items[i].Key) >= 0 {
			return New(BadFileFormat, "validateCanonical", fmt.Errorf("descriptor table not sorted at index %d", i))
		}
	}

	expected := make([]Item, len(items))
	for i, it := range items {
		expected[i] = Item{Key: it.Key, Type: it.Type, ArrayLen: it.ArrayLen}
	}
	gotFileSize, err := layout(expected)
	if err != nil {
		return err
	}
	if gotFileSize != fileSize {
		return New(BadFileFormat, "validateCanonical", fmt.Errorf("expected file size %d, header says %d", gotFileSize, fileSize))
	}
	for i := range items {
		if items[i].KeyStart != expected[i].KeyStart {
			return New(BadFileFormat, "validateCanonical", fmt.Errorf("item %d: key_start %d != expected %d", i, items[i].KeyStart, expected[i].KeyStart))
		}
		if items[i].ArrayStart != expected[i].ArrayStart {
			return New(BadFileFormat, "validateCanonical", fmt.Errorf("item %d: array_start %d != expected %d", i, items[i].ArrayStart, expected[i].ArrayStart))
		}
	}

	return nil
}

// Lookup binary-searches the (already validated, sorted) descriptor table
// for key.
func Lookup(items []Item, key []byte) (Item, bool) {
	i := sort.Search(len(items), func(i int) bool {
		return CompareKeys(items[i].Key, key) >= 0
	})
	if i < len(items) && CompareKeys(items[i].Key, key) == 0 {
		return items[i], true
	}
	return Item{}, false
}

// Mapped reports whether the reader's buffer is backed by a memory map
// rather than an owned, heap-allocated copy.
func (r *Reader) Mapped() bool {
	return r.mm != nil
}

// Close releases the reader's buffer: unmapping it if it was memory-mapped,
// or simply dropping the reference if it was heap-allocated.
func (r *Reader) Close() error {
	if r.mm != nil {
		err := r.mm.Unmap()
		r.mm = nil
		r.buf = nil
		if err != nil {
			return New(IOError, "Close", err)
		}
		return nil
	}
	r.buf = nil
	return nil
}
