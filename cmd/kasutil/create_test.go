// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kastore/kastore"
)

func TestParseItem(t *testing.T) {
	key, typ, values, err := parseItem("x=int32:1,2,3")
	require.NoError(t, err)
	assert.Equal(t, "x", key)
	assert.Equal(t, "int32", typ.String())
	assert.Equal(t, []string{"1", "2", "3"}, values)
}

func TestParseItemEmptyValues(t *testing.T) {
	key, typ, values, err := parseItem("empty=float64:")
	require.NoError(t, err)
	assert.Equal(t, "empty", key)
	assert.Equal(t, "float64", typ.String())
	assert.Empty(t, values)
}

func TestParseItemRejectsMalformed(t *testing.T) {
	_, _, _, err := parseItem("no-colon-or-equals")
	require.Error(t, err)
}

func TestParseItemRejectsUnknownType(t *testing.T) {
	_, _, _, err := parseItem("k=blob:1")
	require.Error(t, err)
}

func TestBuildArrayRoundTrip(t *testing.T) {
	arr, err := buildArray(kastore.TypeInt32, []string{"1", "-2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -2, 3}, arr)
}
