// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import "bytes"

// Item is one (key, type, array) record, whether newly put in write mode or
// parsed out of a file in read mode. In write mode Key is the store's private
// copy of the caller's key and Array is borrowed from the caller (see the
// root package); in read mode both point directly into the store's buffer.
type Item struct {
	Key      []byte
	Type     TypeCode
	Array    []byte // raw element bytes, length == ArrayLen * Type.Width()
	ArrayLen uint64

	// KeyStart and ArrayStart are byte offsets within the file. They are
	// meaningless before Pack (write mode) or before a successful parse
	// (read mode).
	KeyStart   uint64
	ArrayStart uint64
}

// CompareKeys implements the total order the packer and the reader both
// use: byte-wise comparison over the shorter of the two keys, with ties
// broken by shorter-key-first. This is exactly bytes.Compare's contract.
func CompareKeys(a, b []byte) int {
	return bytes.Compare(a, b)
}
