// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package zero

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	for _, input := range [][]byte{
		{},
		{'a', 'b', 'c'},
	} {
		initialLen := len(input)
		initialCap := cap(input)
		expected := make([]byte, len(input))
		Bytes(input)
		require.Equal(t, expected, input)
		require.Equal(t, initialLen, len(input))
		require.Equal(t, initialCap, cap(input))
	}
}

func TestBytesOverwritesNonZero(t *testing.T) {
	input := []byte{1, 2, 3, 4}
	Bytes(input)
	require.Equal(t, []byte{0, 0, 0, 0}, input)
}
