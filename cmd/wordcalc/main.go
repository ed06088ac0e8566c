// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command wordcalc evaluates integer operations on byte string, hex, and
// decimal encoded numbers.
//
// Usage:
//
//	wordcalc [OPTIONS] <op> <a> [b]
//
// Options select the representation of the operands and the result:
//
//	-C, --configfile=  Path to configuration file
//	-b, --base=        Representation of operands and results {bytes, hex, dec}
//	-d, --discipline=  Sign discipline {nat, twos, signmag}
//	-e, --endian=      Byte order of byte strings {big, little}
//	-w, --width=       Fixed width in bytes of byte strings or 0 for resizable
//	    --case=        Letter case of hex results {lower, upper}
//	    --debuglevel=  Logging level for all subsystems
//
// For example, the following adds one to the largest signed byte at a fixed
// width of one byte and prints 0x80:
//
//	wordcalc -w 1 add 127 1
package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) == 0 {
		fatalf("no operation specified\n%s\n\n%s\n", usageMessage, opsHelp)
	}

	result, err := run(cfg, args)
	if err != nil {
		fatalf("%s: %v\n", args[0], err)
	}
	fmt.Println(result)
}
