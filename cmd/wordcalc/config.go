// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/hexnum"
	"github.com/decred/wordnum/words"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultBase       = "bytes"
	defaultDiscipline = "twos"
	defaultEndian     = "big"
	defaultCase       = "lower"
	defaultLogLevel   = "info"
)

var (
	appName      = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	usageMessage = fmt.Sprintf("Use %s -h to show usage", appName)
)

// config defines the configuration options for wordcalc.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	Base       string `short:"b" long:"base" description:"Representation of operands and results {bytes, hex, dec}"`
	Discipline string `short:"d" long:"discipline" description:"Sign discipline {nat, twos, signmag}"`
	Endian     string `short:"e" long:"endian" description:"Byte order of byte strings {big, little}"`
	Width      int    `short:"w" long:"width" description:"Fixed width in bytes of byte strings {1, 2, 4, 8, 10, 16, 20, 32, 64} or 0 for resizable"`
	Case       string `long:"case" description:"Letter case of hex results {lower, upper}"`
	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	SampleConf bool   `long:"sampleconfig" description:"Print a commented sample config file and exit"`

	// The following values are derived from the options above.
	disc    arith.Discipline
	endian  words.Endian
	hexCase hexnum.Case
}

// validWidths are the byte widths of the fixed precision types.
var validWidths = map[int]bool{
	0: true, 1: true, 2: true, 4: true, 8: true, 10: true, 16: true, 20: true,
	32: true, 64: true,
}

// parseDiscipline returns the discipline named by s.  The short name nat is
// accepted as well as the discipline names.
func parseDiscipline(s string) (arith.Discipline, error) {
	if s == "nat" {
		return arith.Unsigned, nil
	}
	return arith.ParseDiscipline(s)
}

// parseEndian returns the byte order named by s.
func parseEndian(s string) (words.Endian, error) {
	switch s {
	case "big":
		return words.BigEndian, nil
	case "little":
		return words.LittleEndian, nil
	}
	return 0, fmt.Errorf("unknown byte order %q", s)
}

// validate checks the option values and fills in the derived fields.
func (cfg *config) validate() error {
	switch cfg.Base {
	case "bytes", "hex", "dec":
	default:
		str := "the specified base [%v] is invalid -- supported bases are " +
			"bytes, hex, and dec"
		return fmt.Errorf(str, cfg.Base)
	}

	var err error
	cfg.disc, err = parseDiscipline(cfg.Discipline)
	if err != nil {
		return err
	}
	cfg.endian, err = parseEndian(cfg.Endian)
	if err != nil {
		return err
	}
	cfg.hexCase, err = hexnum.ParseCase(cfg.Case)
	if err != nil {
		return err
	}

	if !validWidths[cfg.Width] {
		str := "the specified width [%d] is invalid -- supported widths are " +
			"1, 2, 4, 8, 10, 16, 20, 32, and 64 bytes or 0 for resizable"
		return fmt.Errorf(str, cfg.Width)
	}
	if cfg.Width != 0 && cfg.Base != "bytes" {
		str := "a fixed width only applies to the bytes base, not %v"
		return fmt.Errorf(str, cfg.Base)
	}
	if cfg.Width != 0 && cfg.disc == arith.SignMagnitude {
		return errors.New("fixed width values do not support the " +
			"sign-magnitude discipline")
	}
	return nil
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// Option parsing stops at the operation so negative operands are not mistaken
// for options.  The remaining arguments are the operation and its operands.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		Base:       defaultBase,
		Discipline: defaultDiscipline,
		Endian:     defaultEndian,
		Case:       defaultCase,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash|
		flags.PassAfterNonOption)
	preParser.Usage = "[OPTIONS] <op> <a> [b]"
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, opsHelp)
			return nil, nil, err
		}
	}

	parser := flags.NewParser(&cfg, flags.Default|flags.PassAfterNonOption)
	parser.Usage = preParser.Usage
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			err := fmt.Errorf("error parsing config file: %w", err)
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usageMessage)
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Print the sample config and exit when requested.
	if cfg.SampleConf {
		fmt.Print(sampleConfig)
		os.Exit(0)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("loadConfig: %w", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}
	if err := cfg.validate(); err != nil {
		err := fmt.Errorf("loadConfig: %w", err)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
