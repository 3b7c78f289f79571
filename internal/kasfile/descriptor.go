// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-kastore/kastore/internal/zero"
)

const DescriptorSize = 64

// descriptor is the fixed 64-byte on-disk record describing one item:
//
//	0       type byte
//	1..8    reserved
//	8..16   key_start  (uint64 LE)
//	16..24  key_len    (uint64 LE)
//	24..32  array_start (uint64 LE)
//	32..40  array_len   (uint64 LE)
//	40..64  reserved
type descriptor struct {
	typ        TypeCode
	keyStart   uint64
	keyLen     uint64
	arrayStart uint64
	arrayLen   uint64
}

func (d descriptor) marshalTo(buf []byte) error {
	if len(buf) < DescriptorSize {
		return New(Generic, "descriptor.marshalTo", fmt.Errorf("buffer too short: %d < %d", len(buf), DescriptorSize))
	}
	zero.Bytes(buf[:DescriptorSize])
	buf[0] = uint8(d.typ)
	binary.LittleEndian.PutUint64(buf[8:16], d.keyStart)
	binary.LittleEndian.PutUint64(buf[16:24], d.keyLen)
	binary.LittleEndian.PutUint64(buf[24:32], d.arrayStart)
	binary.LittleEndian.PutUint64(buf[32:40], d.arrayLen)
	return nil
}

// unmarshalDescriptor parses one descriptor and validates it against the
// file's total size: type must be a recognized code, and both the key
// region and the array region must lie entirely within the file.
func unmarshalDescriptor(buf []byte, fileSize uint64) (descriptor, error) {
	var d descriptor
	if len(buf) < DescriptorSize {
		return d, New(BadFileFormat, "unmarshalDescriptor", fmt.Errorf("descriptor too short: %d < %d", len(buf), DescriptorSize))
	}

	typ := TypeCode(buf[0])
	width, err := typ.Width()
	if err != nil {
		return d, New(BadType, "unmarshalDescriptor", fmt.Errorf("type code %d", buf[0]))
	}

	d.typ = typ
	d.keyStart = binary.LittleEndian.Uint64(buf[8:16])
	d.keyLen = binary.LittleEndian.Uint64(buf[16:24])
	d.arrayStart = binary.LittleEndian.Uint64(buf[24:32])
	d.arrayLen = binary.LittleEndian.Uint64(buf[32:40])

	if d.keyLen == 0 {
		return d, New(BadFileFormat, "unmarshalDescriptor", fmt.Errorf("zero-length key"))
	}
	// Overflow-safe bounds check: d.keyStart+d.keyLen can wrap past
	// fileSize on a crafted descriptor, so bound keyLen against the
	// remaining space instead of comparing the (possibly wrapped) sum.
	if d.keyStart > fileSize || d.keyLen > fileSize-d.keyStart {
		return d, New(BadFileFormat, "unmarshalDescriptor", fmt.Errorf("key region [%d,%d) beyond file size %d", d.keyStart, d.keyStart+d.keyLen, fileSize))
	}

	if d.arrayLen != 0 && width != 0 && d.arrayLen > math.MaxUint64/width {
		return d, New(BadFileFormat, "unmarshalDescriptor", fmt.Errorf("array_len %d overflows with width %d", d.arrayLen, width))
	}
	arrayBytes := d.arrayLen * width
	if d.arrayStart%8 != 0 {
		return d, New(BadFileFormat, "unmarshalDescriptor", fmt.Errorf("array_start %d not 8-byte aligned", d.arrayStart))
	}
	if d.arrayStart > fileSize || arrayBytes > fileSize-d.arrayStart {
		return d, New(BadFileFormat, "unmarshalDescriptor", fmt.Errorf("array region [%d,%d) beyond file size %d", d.arrayStart, d.arrayStart+arrayBytes, fileSize))
	}

	return d, nil
}
