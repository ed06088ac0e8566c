// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decred/wordnum/arith"
)

// TestRun ensures operations evaluate in every configured representation.
func TestRun(t *testing.T) {
	tests := []struct {
		name string   // test description
		args []string // command line arguments
		want string   // expected result
	}{
		{"resizable twos add grows", []string{"add", "0x7f", "0x01"}, "0x0080"},
		{"resizable twos shl", []string{"shl", "0x01", "8"}, "0x0100"},
		{"resizable twos div", []string{"div", "-7", "2"}, "0xfd"},
		{"little endian natural add", []string{"-d", "nat", "-e", "little",
			"add", "0x0001", "1"}, "0x0101"},
		{"sign-magnitude negate", []string{"-d", "signmag", "neg", "0x05"},
			"0x85"},
		{"upper case bytes", []string{"--case", "upper", "not", "0x0a"},
			"0xF5"},
		{"fixed width wraps", []string{"-w", "1", "add", "127", "1"}, "0x80"},
		{"fixed width little endian", []string{"-w", "2", "-e", "little", "-d",
			"nat", "inc", "0x00ff"}, "0x0100"},
		{"fixed width unsigned negate", []string{"-w", "1", "-d", "nat", "neg",
			"1"}, "0xff"},
		{"hex mul", []string{"-b", "hex", "mul", "0xff", "0x02"}, "0xfe"},
		{"hex upper case", []string{"-b", "hex", "--case", "upper", "mul",
			"0xff", "0x02"}, "0xFE"},
		{"hex trim", []string{"-b", "hex", "trim", "0xffff"}, "0xff"},
		{"hex minsize", []string{"-b", "hex", "minsize", "0x0080"}, "2"},
		{"hex extend", []string{"-b", "hex", "extend", "0xff", "3"}, "0xffffff"},
		{"hex sign-magnitude extend", []string{"-b", "hex", "-d", "signmag",
			"extend", "0x85", "2"}, "0x8005"},
		{"dec signed sub", []string{"-b", "dec", "sub", "3", "-5"}, "8"},
		{"dec signed mod", []string{"-b", "dec", "mod", "-7", "2"}, "-1"},
		{"dec natural saturates", []string{"-b", "dec", "-d", "nat", "sub", "3",
			"5"}, "0"},
		{"dec cmp", []string{"-b", "dec", "cmp", "-1", "1"}, "-1"},
		{"dec xor", []string{"-b", "dec", "xor", "-1", "256"}, "-257"},
		{"convert dec to hex", []string{"-b", "dec", "convert", "-1", "hex"},
			"0xff"},
		{"convert bytes to dec", []string{"-d", "nat", "convert", "0x0100",
			"dec"}, "256"},
		{"base58", []string{"-b", "dec", "-d", "nat", "base58", "255"}, "5Q"},
		{"unbase58", []string{"-b", "dec", "-d", "nat", "unbase58", "5Q"},
			"255"},
		{"compact", []string{"-b", "dec", "compact", "-128"}, "02808000"},
		{"uncompact", []string{"-b", "dec", "uncompact", "1b01ffff"},
			"822746001558867634396720755489252044824951830461345467639791616"},
		{"work", []string{"-b", "dec", "work", "1b01ffff"}, "140738562105344"},
	}

	for _, test := range tests {
		cfg, args, err := loadConfig(test.args)
		if err != nil {
			t.Errorf("%q: unexpected config error: %v", test.name, err)
			continue
		}
		got, err := run(cfg, args)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q: mismatched result -- got %s, want %s", test.name, got,
				test.want)
			continue
		}
	}
}

// TestRunErrors ensures invalid operations and operands are rejected with the
// expected errors.
func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string   // test description
		args []string // command line arguments
		err  error    // expected error, nil to only require a failure
	}{
		{"no operation", nil, nil},
		{"unknown operation", []string{"pow", "0x01", "0x02"}, nil},
		{"missing operand", []string{"add", "0x01"}, nil},
		{"bad literal", []string{"add", "0x1", "0x01"}, arith.ErrInvalidString},
		{"bad shift", []string{"shl", "0x01", "-1"}, nil},
		{"divide by zero", []string{"div", "0x01", "0x00"},
			arith.ErrDivideByZero},
		{"fixed width boundary", []string{"-w", "1", "-d", "nat", "inc", "255"},
			arith.ErrBoundary},
		{"fixed width overflow", []string{"-w", "1", "add", "128", "1"},
			arith.ErrValueTooLarge},
		{"extend below minimal", []string{"-b", "hex", "extend", "0x0100", "1"},
			arith.ErrInvalidWidth},
		{"natural decimal not", []string{"-b", "dec", "-d", "nat", "not", "5"},
			errUnsupported},
		{"fixed width trim", []string{"-w", "4", "trim", "1"}, errUnsupported},
		{"negative base58", []string{"-b", "dec", "base58", "-1"},
			arith.ErrValueTooSmall},
		{"bad base58", []string{"unbase58", "0OIl"}, arith.ErrInvalidBase58},
		{"bad compact bits", []string{"uncompact", "xyz"}, nil},
		{"convert to unknown base", []string{"convert", "0x01", "oct"}, nil},
	}

	for _, test := range tests {
		cfg, args, err := loadConfig(test.args)
		if err != nil {
			t.Errorf("%q: unexpected config error: %v", test.name, err)
			continue
		}
		_, err = run(cfg, args)
		if err == nil {
			t.Errorf("%q: expected error", test.name)
			continue
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("%q: mismatched error -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}
}

// TestLoadConfigErrors ensures invalid option values are rejected.
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string   // test description
		args []string // command line arguments
	}{
		{"unknown base", []string{"--base=oct", "add", "1", "2"}},
		{"unknown discipline", []string{"-d", "ones", "add", "1", "2"}},
		{"unknown endian", []string{"-e", "middle", "add", "1", "2"}},
		{"unknown case", []string{"--case", "mixed", "add", "1", "2"}},
		{"unsupported width", []string{"-w", "3", "add", "1", "2"}},
		{"width with hex", []string{"-b", "hex", "-w", "4", "add", "1", "2"}},
		{"width with sign-magnitude", []string{"-d", "signmag", "-w", "4",
			"add", "1", "2"}},
		{"bad debug level", []string{"--debuglevel", "loud", "add", "1", "2"}},
		{"unknown option", []string{"--radix", "2", "add", "1", "2"}},
	}

	for _, test := range tests {
		if _, _, err := loadConfig(test.args); err == nil {
			t.Errorf("%q: expected error", test.name)
		}
	}
	setLogLevels(defaultLogLevel)
}

// TestConfigFile ensures options are read from a config file and that command
// line options take precedence.
func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordcalc.conf")
	contents := []byte("[Application Options]\nbase=dec\ndiscipline=nat\n")
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("unable to write config file: %v", err)
	}

	tests := []struct {
		name string   // test description
		args []string // command line arguments
		want string   // expected result
	}{
		{"from file", []string{"-C", path, "sub", "2", "3"}, "0"},
		{"override", []string{"-C", path, "-d", "twos", "sub", "2", "3"}, "-1"},
	}

	for _, test := range tests {
		cfg, args, err := loadConfig(test.args)
		if err != nil {
			t.Errorf("%q: unexpected config error: %v", test.name, err)
			continue
		}
		got, err := run(cfg, args)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q: mismatched result -- got %s, want %s", test.name, got,
				test.want)
			continue
		}
	}

	// The sample config only holds comments, so it yields the defaults.
	sample := filepath.Join(t.TempDir(), "sample.conf")
	if err := os.WriteFile(sample, []byte(sampleConfig), 0600); err != nil {
		t.Fatalf("unable to write sample config file: %v", err)
	}
	cfg, args, err := loadConfig([]string{"-C", sample, "add", "1", "2"})
	if err != nil {
		t.Fatalf("unexpected sample config error: %v", err)
	}
	if cfg.Base != defaultBase || cfg.Discipline != defaultDiscipline ||
		cfg.Endian != defaultEndian || cfg.Width != 0 {

		t.Errorf("sample config changed the defaults: %+v", cfg)
	}
	if got, err := run(cfg, args); err != nil || got != "0x03" {
		t.Errorf("mismatched sample config result -- got %s (%v), want 0x03",
			got, err)
	}

	missing := filepath.Join(t.TempDir(), "missing.conf")
	if _, _, err := loadConfig([]string{"-C", missing, "add", "1", "2"}); err == nil {
		t.Errorf("missing config file: expected error")
	}
}

// TestParseAndSetDebugLevels ensures debug level specifications are validated.
func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		name  string // test description
		spec  string // debug level specification
		valid bool   // whether or not the specification is valid
	}{
		{"all subsystems", "trace", true},
		{"per subsystem", "BNUM=debug,HNUM=trace", true},
		{"single pair", "CMPT=warn", true},
		{"unknown level", "loud", false},
		{"unknown subsystem", "FOO=debug", false},
		{"bad pair level", "CALC=loud", false},
		{"missing separator", "CALC=debug,trace", false},
	}

	for _, test := range tests {
		err := parseAndSetDebugLevels(test.spec)
		if (err == nil) != test.valid {
			t.Errorf("%q: mismatched result -- got %v, want valid %v",
				test.name, err, test.valid)
			continue
		}
	}
	setLogLevels(defaultLogLevel)

	want := []string{"BNUM", "CALC", "CMPT", "DNUM", "HNUM"}
	got := supportedSubsystems()
	if len(got) != len(want) {
		t.Fatalf("mismatched subsystems -- got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mismatched subsystems -- got %v, want %v", got, want)
		}
	}
}
