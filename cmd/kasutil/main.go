// Copyright 2024 The kastore Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-kastore/kastore"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: kasutil <dump|verify|create> [flags] <file>\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "dump":
		err = runDump(rest)
	case "verify":
		err = runVerify(rest)
	case "create":
		err = runCreate(rest)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("kasutil %s: %s", cmd, err)
	}
}

func exitCodeFor(err error) int {
	kerr, ok := err.(*kastore.Error)
	if !ok {
		return 1
	}
	return int(kerr.Kind) + 1
}
