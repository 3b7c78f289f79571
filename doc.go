// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package kastore implements a simple, portable, write-once key-array
// store: a single file mapping short byte-string keys to typed, homogeneous
// numeric arrays. The format is fixed-layout and self-describing, so a
// reader can memory-map the file and hand out pointers directly into array
// data with no copying and no per-value decoding.
//
// A Store is opened once in either read or write mode. In write mode, Put
// accumulates items in memory; nothing touches disk until Close. In read
// mode, Open ingests the whole file up front (by memory-mapping it, or by
// copying it into an owned buffer if mapping is unavailable or disabled),
// and Get looks items up by binary search over the sorted descriptor table.
//
//	w, err := kastore.Open("data.kas", kastore.ModeWrite, 0)
//	_ = w.Put([]byte("scores"), []int32{1, 2, 3}, 0)
//	_ = w.Close()
//
//	r, err := kastore.Open("data.kas", kastore.ModeRead, 0)
//	arr, err := r.Get([]byte("scores"))
//	scores := arr.Int32s()
//	_ = r.Close()
package kastore
