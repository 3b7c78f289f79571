// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kasfile

import "fmt"

// Kind is the stable error taxonomy for the store. It is stable across
// versions: callers may match on Kind with errors.Is/errors.As without
// depending on message text.
type Kind int

const (
	Generic Kind = iota
	IOError
	BadMode
	NoMemory
	BadFileFormat
	VersionTooOld
	VersionTooNew
	BadType
	DuplicateKey
	KeyNotFound
	EmptyKey
)

func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case IOError:
		return "io error"
	case BadMode:
		return "bad mode"
	case NoMemory:
		return "no memory"
	case BadFileFormat:
		return "bad file format"
	case VersionTooOld:
		return "version too old"
	case VersionTooNew:
		return "version too new"
	case BadType:
		return "bad type"
	case DuplicateKey:
		return "duplicate key"
	case KeyNotFound:
		return "key not found"
	case EmptyKey:
		return "empty key"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every store operation. Op
// names the failing operation (e.g. "Open", "Put"); Err, when non-nil, is
// the underlying cause (an I/O error, typically) and is reachable via
// errors.Unwrap.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("kastore: %s: %s: %s", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("kastore: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows errors.Is(err, AnotherError) to match purely on Kind, so
// sentinel-style comparisons work even though each Error carries a
// different Op/Err.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Sentinel returns a comparable *Error with no wrapped cause, suitable for
// use with errors.Is(err, kasfile.Sentinel(KeyNotFound)).
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
