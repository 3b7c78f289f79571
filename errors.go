// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kastore

import "github.com/go-kastore/kastore/internal/kasfile"

// Kind is the stable error taxonomy for the store: every error this package
// returns can be classified into exactly one Kind, and that classification
// does not change across versions.
type Kind = kasfile.Kind

const (
	Generic       = kasfile.Generic
	IOError       = kasfile.IOError
	BadMode       = kasfile.BadMode
	NoMemory      = kasfile.NoMemory
	BadFileFormat = kasfile.BadFileFormat
	VersionTooOld = kasfile.VersionTooOld
	VersionTooNew = kasfile.VersionTooNew
	BadType       = kasfile.BadType
	DuplicateKey  = kasfile.DuplicateKey
	KeyNotFound   = kasfile.KeyNotFound
	EmptyKey      = kasfile.EmptyKey
)

// Error is returned by every Store operation. Callers that need to branch
// on the failure category should use errors.As to recover an *Error and
// inspect its Kind, or errors.Is against one of the ErrXxx sentinels below.
type Error = kasfile.Error

var (
	ErrBadMode      = kasfile.Sentinel(BadMode)
	ErrBadFormat    = kasfile.Sentinel(BadFileFormat)
	ErrVersionOld   = kasfile.Sentinel(VersionTooOld)
	ErrVersionNew   = kasfile.Sentinel(VersionTooNew)
	ErrBadType      = kasfile.Sentinel(BadType)
	ErrDuplicateKey = kasfile.Sentinel(DuplicateKey)
	ErrKeyNotFound  = kasfile.Sentinel(KeyNotFound)
	ErrEmptyKey     = kasfile.Sentinel(EmptyKey)
)
