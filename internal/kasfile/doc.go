// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package kasfile implements the on-disk layout of a KAS store: the
// 64-byte file header, the fixed-size descriptor table, the packer that
// computes key/array offsets, and the writer and reader that turn that
// layout into (and out of) bytes.
//
// A store file looks like:
//
//	+--------------------+
//	| 64-byte file header |
//	+--------------------+
//	| descriptor 0         |
//	| descriptor 1         |
//	| ...                  |
//	+--------------------+
//	| key 0 | key 1 | ...  |  (no padding between keys)
//	+--------------------+
//	| pad | array 0       |  (array regions are 8-byte aligned)
//	| pad | array 1       |
//	| ...                  |
//	+--------------------+
//
// Every region's extent is fully determined by the sorted key order and the
// items' lengths; there is exactly one canonical layout for a given set of
// items, and the reader rejects any file that isn't laid out that way.
package kasfile
