// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kastore/kastore"
)

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: kasutil dump <file>")
	}
	path := fs.Arg(0)

	s, err := kastore.Open(path, kastore.ModeRead, 0)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	major, minor := s.Version()
	fmt.Fprintf(os.Stdout, "%s: version %d.%d, %d item(s)\n", path, major, minor, s.NumItems())
	for _, key := range s.Keys() {
		arr, err := s.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "  %-20q %-8s %d element(s)\n", key, arr.Type(), arr.Len())
	}
	return nil
}
