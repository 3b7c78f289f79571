// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-kastore/kastore"
)

type itemFlags []string

func (i *itemFlags) String() string { return strings.Join(*i, ",") }

func (i *itemFlags) Set(v string) error {
	*i = append(*i, v)
	return nil
}

// parseItem parses one --item flag of the form key=type:v1,v2,v3.
func parseItem(spec string) (key string, typ kastore.TypeCode, values []string, err error) {
	keyPart, rest, ok := strings.Cut(spec, "=")
	if !ok {
		return "", 0, nil, fmt.Errorf("item %q: expected key=type:v1,v2,...", spec)
	}
	typePart, valuesPart, ok := strings.Cut(rest, ":")
	if !ok {
		return "", 0, nil, fmt.Errorf("item %q: expected key=type:v1,v2,...", spec)
	}

	typ, err = parseTypeName(typePart)
	if err != nil {
		return "", 0, nil, fmt.Errorf("item %q: %w", spec, err)
	}

	if valuesPart == "" {
		return keyPart, typ, nil, nil
	}
	return keyPart, typ, strings.Split(valuesPart, ","), nil
}

func parseTypeName(name string) (kastore.TypeCode, error) {
	switch name {
	case "int8":
		return kastore.TypeInt8, nil
	case "uint8":
		return kastore.TypeUint8, nil
	case "int32":
		return kastore.TypeInt32, nil
	case "uint32":
		return kastore.TypeUint32, nil
	case "int64":
		return kastore.TypeInt64, nil
	case "uint64":
		return kastore.TypeUint64, nil
	case "float32":
		return kastore.TypeFloat32, nil
	case "float64":
		return kastore.TypeFloat64, nil
	default:
		return 0, fmt.Errorf("unrecognized type %q", name)
	}
}

func buildArray(typ kastore.TypeCode, values []string) (interface{}, error) {
	switch typ {
	case kastore.TypeInt8:
		out := make([]int8, len(values))
		for i, v := range values {
			n, err := strconv.ParseInt(v, 10, 8)
			if err != nil {
				return nil, err
			}
			out[i] = int8(n)
		}
		return out, nil
	case kastore.TypeUint8:
		out := make([]uint8, len(values))
		for i, v := range values {
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				return nil, err
			}
			out[i] = uint8(n)
		}
		return out, nil
	case kastore.TypeInt32:
		out := make([]int32, len(values))
		for i, v := range values {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, err
			}
			out[i] = int32(n)
		}
		return out, nil
	case kastore.TypeUint32:
		out := make([]uint32, len(values))
		for i, v := range values {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return nil, err
			}
			out[i] = uint32(n)
		}
		return out, nil
	case kastore.TypeInt64:
		out := make([]int64, len(values))
		for i, v := range values {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case kastore.TypeUint64:
		out := make([]uint64, len(values))
		for i, v := range values {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case kastore.TypeFloat32:
		out := make([]float32, len(values))
		for i, v := range values {
			n, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return nil, err
			}
			out[i] = float32(n)
		}
		return out, nil
	case kastore.TypeFloat64:
		out := make([]float64, len(values))
		for i, v := range values {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unrecognized type code %v", typ)
	}
}

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	var items itemFlags
	fs.Var(&items, "item", "key=type:v1,v2,v3 (repeatable)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: kasutil create --item key=type:v1,v2,v3 [--item ...] <file>")
	}
	path := fs.Arg(0)

	s, err := kastore.Open(path, kastore.ModeWrite, 0)
	if err != nil {
		return err
	}

	for _, spec := range items {
		key, typ, values, err := parseItem(spec)
		if err != nil {
			_ = s.Close()
			return err
		}
		array, err := buildArray(typ, values)
		if err != nil {
			_ = s.Close()
			return fmt.Errorf("item %q: %w", spec, err)
		}
		if err := s.Put([]byte(key), array, 0); err != nil {
			_ = s.Close()
			return err
		}
	}

	return s.Close()
}
