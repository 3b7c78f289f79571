// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import "sort"

func alignUp8(off uint64) uint64 {
	return (off + 7) &^ 7
}

// descriptorTableEnd returns the file offset immediately past the
// descriptor table for a store holding n items.
func descriptorTableEnd(n int) uint64 {
	return HeaderSize + DescriptorSize*uint64(n)
}

// layout assigns KeyStart and ArrayStart to every item in items, in the
// order items is currently in, and returns the resulting file size. It does
// not sort: callers that need canonical ordering must sort first (Pack), and
// callers that are validating an already-read file call it on the order the
// descriptors were found in, then compare the result against what was on
// disk.
func layout(items []Item) (fileSize uint64, err error) {
	off := descriptorTableEnd(len(items))
	for i := range items {
		items[i].KeyStart = off
		off += uint64(len(items[i].Key))
	}

	for i := range items {
		off = alignUp8(off)
		items[i].ArrayStart = off
		width, werr := items[i].Type.Width()
		if werr != nil {
			return 0, werr
		}
		off += items[i].ArrayLen * width
	}

	return off, nil
}

// Pack sorts items by key (ties broken by shorter-key-first, per
// CompareKeys) and assigns their on-disk offsets. It returns the resulting
// file size.
func Pack(items []Item) (fileSize uint64, err error) {
	sort.Slice(items, func(i, j int) bool {
		return CompareKeys(items[i].Key, items[j].Key) < 0
	})
	return layout(items)
}
