// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package kastore

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-kastore/kastore/internal/kasfile"
)

// Mode selects whether a Store is opened for reading or for writing.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

// ParseMode accepts exactly "read" or "write", mirroring the C-API contract
// of an open mode string. Any other value is BadMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "read":
		return ModeRead, nil
	case "write":
		return ModeWrite, nil
	default:
		return 0, kasfile.New(BadMode, "ParseMode", fmt.Errorf("mode must be \"read\" or \"write\", got %q", s))
	}
}

// Flags is a bitset of Open options. The only recognized bit is NoMmap; all
// others are reserved and must be zero.
type Flags uint32

const (
	// NoMmap forces buffered reads even on platforms where memory
	// mapping is available.
	NoMmap Flags = 1 << 0
)

type state int

const (
	stateUninitialized state = iota
	stateOpen
	stateClosed
)

// Option configures a Store at Open time.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets an optional logger the store uses for progress updates
// (items packed and bytes written on Close, mmap-vs-buffered on Open). If
// not provided, no logging output is produced.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Store is a handle onto one KAS file, opened for either reading or
// writing. It is not safe for concurrent use by multiple goroutines; open
// distinct Stores over distinct files to use them concurrently.
type Store struct {
	mode  Mode
	state state

	filename string

	// write mode
	items  []kasfile.Item
	keySet map[string]struct{}

	// read mode
	reader       *kasfile.Reader
	versionMajor uint16
	versionMinor uint16

	logger *slog.Logger
}

// Open opens filename in the given mode. In ModeWrite, Open does not touch
// the file: Close creates it (truncating any existing file) and writes the
// whole store out. In ModeRead, the file is validated and ingested
// immediately; Open fails if the file is not a well-formed KAS store.
func Open(filename string, mode Mode, flags Flags, opts ...Option) (*Store, error) {
	if flags&^NoMmap != 0 {
		return nil, kasfile.New(Generic, "Open", fmt.Errorf("unsupported flag bits set: %#x", uint32(flags)&^uint32(NoMmap)))
	}

	var o options
	o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		mode:     mode,
		filename: filename,
		logger:   o.logger,
	}

	switch mode {
	case ModeWrite:
		// Nothing touches disk yet: the file is created and the items
		// are packed and streamed out on Close.
		s.keySet = make(map[string]struct{})
	case ModeRead:
		f, err := os.Open(filename)
		if err != nil {
			return nil, kasfile.New(IOError, "Open", err)
		}
		r, err := kasfile.Open(f, flags&NoMmap != 0)
		closeErr := f.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			_ = r.Close()
			return nil, kasfile.New(IOError, "Open", closeErr)
		}
		s.reader = r
		s.versionMajor = r.VersionMajor
		s.versionMinor = r.VersionMinor
		s.logger.Debug("opened store for reading", "file", filename, "items", len(r.Items), "mmap", r.Mapped())
	default:
		return nil, kasfile.New(BadMode, "Open", fmt.Errorf("unrecognized mode %v", mode))
	}

	s.state = stateOpen
	return s, nil
}

// Mode returns the mode the store was opened with.
func (s *Store) Mode() Mode { return s.mode }

// Version returns the file format version of a store opened in ModeRead.
// It is meaningless in ModeWrite.
func (s *Store) Version() (major, minor uint16) { return s.versionMajor, s.versionMinor }

// Put adds a key/array pair to a store opened in ModeWrite. array must be
// one of the eight supported Go slice types ([]int8, []uint8, []int32,
// []uint32, []int64, []uint64, []float32, []float64). The key is copied
// into the store's own storage; array is retained by reference and must
// remain valid and unmodified until Close.
//
// Putting a key that is already present returns DuplicateKey and leaves the
// store exactly as it was before the call.
func (s *Store) Put(key []byte, array interface{}, flags Flags) error {
	if s.state != stateOpen || s.mode != ModeWrite {
		return kasfile.New(BadMode, "Put", fmt.Errorf("store is not open for writing"))
	}
	if flags != 0 {
		return kasfile.New(Generic, "Put", fmt.Errorf("unsupported flag bits set: %#x", uint32(flags)))
	}
	if len(key) == 0 {
		return kasfile.New(EmptyKey, "Put", nil)
	}

	typ, raw, n, ok := typeCodeOf(array)
	if !ok {
		return kasfile.New(BadType, "Put", fmt.Errorf("unsupported array type %T", array))
	}

	return s.putRaw(key, typ, raw, n)
}

// PutRaw adds a key/array pair given pre-encoded little-endian bytes and an
// explicit type code, for callers that already have raw array bytes rather
// than a typed Go slice. data must be exactly n elements of typ's width.
func (s *Store) PutRaw(key []byte, typ TypeCode, data []byte, n uint64) error {
	if s.state != stateOpen || s.mode != ModeWrite {
		return kasfile.New(BadMode, "PutRaw", fmt.Errorf("store is not open for writing"))
	}
	if len(key) == 0 {
		return kasfile.New(EmptyKey, "PutRaw", nil)
	}
	width, err := typ.Width()
	if err != nil {
		return err
	}
	if uint64(len(data)) != n*width {
		return kasfile.New(Generic, "PutRaw", fmt.Errorf("data length %d != %d elements of width %d", len(data), n, width))
	}

	return s.putRaw(key, typ, data, n)
}

func (s *Store) putRaw(key []byte, typ TypeCode, raw []byte, n uint64) error {
	keyStr := string(key)
	if _, dup := s.keySet[keyStr]; dup {
		return kasfile.New(DuplicateKey, "Put", fmt.Errorf("key %q already present", key))
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	s.items = append(s.items, kasfile.Item{
		Key:      keyCopy,
		Type:     typ,
		Array:    raw,
		ArrayLen: n,
	})
	s.keySet[keyStr] = struct{}{}

	return nil
}

// Get looks up key in a store opened in ModeRead. The returned Array's
// bytes alias the store's buffer and are valid until Close.
func (s *Store) Get(key []byte) (Array, error) {
	if s.state != stateOpen || s.mode != ModeRead {
		return Array{}, kasfile.New(BadMode, "Get", fmt.Errorf("store is not open for reading"))
	}

	item, ok := kasfile.Lookup(s.reader.Items, key)
	if !ok {
		return Array{}, kasfile.New(KeyNotFound, "Get", fmt.Errorf("key %q not found", key))
	}

	return Array{raw: item.Array, typ: item.Type, n: item.ArrayLen}, nil
}

// NumItems returns the number of items in a store opened in ModeRead.
func (s *Store) NumItems() int {
	if s.mode != ModeRead || s.reader == nil {
		return 0
	}
	return len(s.reader.Items)
}

// Keys returns every key in a store opened in ModeRead, in lexicographic
// (on-disk) order. The returned byte slices alias the store's buffer.
func (s *Store) Keys() [][]byte {
	if s.mode != ModeRead || s.reader == nil {
		return nil
	}
	keys := make([][]byte, len(s.reader.Items))
	for i, it := range s.reader.Items {
		keys[i] = it.Key
	}
	return keys
}

// Close releases every resource the store acquired: in ModeWrite it packs
// and flushes the file to disk; in ModeRead it unmaps or frees the read
// buffer. Close is always terminal, even on failure, and always attempts
// every release step; it returns the first error encountered.
func (s *Store) Close() error {
	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed

	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	switch s.mode {
	case ModeWrite:
		f, err := os.OpenFile(s.filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			record(kasfile.New(IOError, "Close", err))
			break
		}
		fileSize, err := kasfile.WriteStore(f, s.items)
		record(err)
		if cerr := f.Close(); cerr != nil {
			record(kasfile.New(IOError, "Close", cerr))
		}
		if err == nil {
			s.logger.Debug("closed store", "file", s.filename, "items", len(s.items), "bytes", fileSize)
		}
		s.items = nil
		s.keySet = nil
	case ModeRead:
		if s.reader != nil {
			record(s.reader.Close())
		}
		s.reader = nil
	}

	return firstErr
}
