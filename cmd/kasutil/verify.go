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

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: kasutil verify <file>")
	}
	path := fs.Arg(0)

	s, err := kastore.Open(path, kastore.ModeRead, 0)
	if err != nil {
		fmt.Fprintf(os.Stdout, "%s: FAIL: %s\n", path, err)
		os.Exit(exitCodeFor(err))
	}
	defer func() { _ = s.Close() }()

	fmt.Fprintf(os.Stdout, "%s: OK, %d item(s)\n", path, s.NumItems())
	return nil
}
