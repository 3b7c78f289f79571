// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package zero zeroes byte buffers in place, for callers that need to
// distinguish "freshly allocated" (already zero) from "reused scratch space
// that must be reset" before a header or descriptor is marshaled into it.
package zero

func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
