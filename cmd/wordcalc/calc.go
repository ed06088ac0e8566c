// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/bounded"
	"github.com/decred/wordnum/bytenum"
	"github.com/decred/wordnum/compact"
	"github.com/decred/wordnum/decnum"
	"github.com/decred/wordnum/hexnum"
	"github.com/decred/wordnum/words"
)

// opsHelp describes the operations accepted after the options.
const opsHelp = `Operations:
  add sub mul div mod and or xor cmp <a> <b>
  shl shr <a> <bits>
  not neg inc dec trim minsize <a>
  extend <a> <bytes>
  convert <a> <base>     re-encode a in another base
  base58 <a>             encode a natural number as base58
  unbase58 <s>           decode a base58 natural number
  compact <a>            encode a as compact bits
  uncompact <bits>       decode compact bits given as hex
  work <bits>            work represented by compact target bits`

// errUnsupported is returned for operations the configured representation does
// not define.
var errUnsupported = errors.New("operation is not defined for the configured " +
	"representation")

// number is the method set shared by every value family.
type number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	DivMod(T) (T, T, error)
	Lsh(uint) T
	Rsh(uint) T
	And(T) T
	Or(T) T
	Xor(T) T
	Cmp(T) int
	BigInt() *big.Int
}

// calculator evaluates operations in one representation.
type calculator interface {
	// eval applies op to the operands and returns the result text.
	eval(op string, args []string) (string, error)

	// toBig parses s and returns its value.
	toBig(s string) (*big.Int, error)

	// fromBig returns the text of v.
	fromBig(v *big.Int) (string, error)
}

// engine is a calculator over the value type T.
type engine[T number[T]] struct {
	parse   func(string) (T, error)
	format  func(T) string
	convert func(*big.Int) (T, error)
}

// arity is the number of operands of each operation an engine evaluates.
var arity = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2, "mod": 2, "and": 2, "or": 2,
	"xor": 2, "cmp": 2, "shl": 2, "shr": 2, "extend": 2,
	"not": 1, "neg": 1, "inc": 1, "dec": 1, "trim": 1, "minsize": 1,
}

func checkArity(op string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("operation %s takes %d operand(s), got %d", op, n,
			len(args))
	}
	return nil
}

func (e engine[T]) toBig(s string) (*big.Int, error) {
	x, err := e.parse(s)
	if err != nil {
		return nil, err
	}
	return x.BigInt(), nil
}

func (e engine[T]) fromBig(v *big.Int) (string, error) {
	x, err := e.convert(v)
	if err != nil {
		return "", err
	}
	return e.format(x), nil
}

// unary evaluates the single operand operations, which are only defined by
// some of the value families.
func (e engine[T]) unary(op string, a T) (string, error) {
	switch op {
	case "not":
		if x, ok := any(a).(interface{ Not() T }); ok {
			return e.format(x.Not()), nil
		}

	case "neg":
		if x, ok := any(a).(interface{ Negate() T }); ok {
			return e.format(x.Negate()), nil
		}

	case "inc":
		switch x := any(a).(type) {
		case interface{ Increment() T }:
			return e.format(x.Increment()), nil
		case interface{ Increment() (T, error) }:
			r, err := x.Increment()
			if err != nil {
				return "", err
			}
			return e.format(r), nil
		}

	case "dec":
		switch x := any(a).(type) {
		case interface{ Decrement() T }:
			return e.format(x.Decrement()), nil
		case interface{ Decrement() (T, error) }:
			r, err := x.Decrement()
			if err != nil {
				return "", err
			}
			return e.format(r), nil
		}

	case "trim":
		if x, ok := any(a).(interface{ Trim() T }); ok {
			return e.format(x.Trim()), nil
		}

	case "minsize":
		if x, ok := any(a).(interface{ MinimalSize() int }); ok {
			return strconv.Itoa(x.MinimalSize()), nil
		}
	}
	return "", fmt.Errorf("%s: %w", op, errUnsupported)
}

func (e engine[T]) eval(op string, args []string) (string, error) {
	n, ok := arity[op]
	if !ok {
		return "", fmt.Errorf("unknown operation %q", op)
	}
	if err := checkArity(op, args, n); err != nil {
		return "", err
	}
	a, err := e.parse(args[0])
	if err != nil {
		return "", err
	}
	if n == 1 {
		return e.unary(op, a)
	}

	switch op {
	case "shl", "shr":
		bits, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return "", fmt.Errorf("invalid shift amount %q", args[1])
		}
		if op == "shl" {
			return e.format(a.Lsh(uint(bits))), nil
		}
		return e.format(a.Rsh(uint(bits))), nil

	case "extend":
		size, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("invalid size %q", args[1])
		}
		x, ok := any(a).(interface{ Extend(int) (T, error) })
		if !ok {
			return "", fmt.Errorf("%s: %w", op, errUnsupported)
		}
		r, err := x.Extend(size)
		if err != nil {
			return "", err
		}
		return e.format(r), nil
	}

	b, err := e.parse(args[1])
	if err != nil {
		return "", err
	}
	switch op {
	case "add":
		return e.format(a.Add(b)), nil
	case "sub":
		return e.format(a.Sub(b)), nil
	case "mul":
		return e.format(a.Mul(b)), nil
	case "div", "mod":
		q, r, err := a.DivMod(b)
		if err != nil {
			return "", err
		}
		if op == "div" {
			return e.format(q), nil
		}
		return e.format(r), nil
	case "and":
		return e.format(a.And(b)), nil
	case "or":
		return e.format(a.Or(b)), nil
	case "xor":
		return e.format(a.Xor(b)), nil
	}
	return strconv.Itoa(a.Cmp(b)), nil
}

// hexVerb returns the fmt verb printing hex in the letter case c.
func hexVerb(c hexnum.Case) string {
	if c == hexnum.Upper {
		return "%X"
	}
	return "%x"
}

func numEngine[D arith.Rule, E words.Order](c hexnum.Case) calculator {
	var zero bytenum.Num[D, E]
	return engine[bytenum.Num[D, E]]{
		parse: zero.SetString,
		format: func(x bytenum.Num[D, E]) string {
			return fmt.Sprintf(hexVerb(c), x)
		},
		convert: zero.SetBigInt,
	}
}

func boundedEngine[D bounded.Signedness, E words.Order, S bounded.Size](c hexnum.Case) calculator {
	var zero bounded.Bounded[D, E, S, byte]
	return engine[bounded.Bounded[D, E, S, byte]]{
		parse: zero.SetString,
		format: func(x bounded.Bounded[D, E, S, byte]) string {
			return fmt.Sprintf(hexVerb(c), x)
		},
		convert: zero.SetBigInt,
	}
}

// boundedBySize returns the fixed precision calculator with width bytes.
func boundedBySize[D bounded.Signedness, E words.Order](width int, c hexnum.Case) calculator {
	switch width {
	case 1:
		return boundedEngine[D, E, bounded.Size1](c)
	case 2:
		return boundedEngine[D, E, bounded.Size2](c)
	case 4:
		return boundedEngine[D, E, bounded.Size4](c)
	case 8:
		return boundedEngine[D, E, bounded.Size8](c)
	case 10:
		return boundedEngine[D, E, bounded.Size10](c)
	case 16:
		return boundedEngine[D, E, bounded.Size16](c)
	case 20:
		return boundedEngine[D, E, bounded.Size20](c)
	case 32:
		return boundedEngine[D, E, bounded.Size32](c)
	}
	return boundedEngine[D, E, bounded.Size64](c)
}

func hexEngine[D arith.Rule](c hexnum.Case) calculator {
	return engine[hexnum.Int[D]]{
		parse: hexnum.Parse[D],
		format: func(x hexnum.Int[D]) string {
			return x.WithCase(c).String()
		},
		convert: func(v *big.Int) (hexnum.Int[D], error) {
			return hexnum.FromBigInt[D](v, c)
		},
	}
}

// bytesCalculator returns the calculator for byte strings with the configured
// discipline, byte order, and width.
func bytesCalculator(cfg *config) calculator {
	c := cfg.hexCase
	if cfg.Width != 0 {
		switch {
		case cfg.disc == arith.Unsigned && cfg.endian == words.BigEndian:
			return boundedBySize[arith.Nat, words.Big](cfg.Width, c)
		case cfg.disc == arith.Unsigned:
			return boundedBySize[arith.Nat, words.Little](cfg.Width, c)
		case cfg.endian == words.BigEndian:
			return boundedBySize[arith.Twos, words.Big](cfg.Width, c)
		}
		return boundedBySize[arith.Twos, words.Little](cfg.Width, c)
	}

	little := cfg.endian == words.LittleEndian
	switch cfg.disc {
	case arith.Unsigned:
		if little {
			return numEngine[arith.Nat, words.Little](c)
		}
		return numEngine[arith.Nat, words.Big](c)
	case arith.SignMagnitude:
		if little {
			return numEngine[arith.SignMag, words.Little](c)
		}
		return numEngine[arith.SignMag, words.Big](c)
	}
	if little {
		return numEngine[arith.Twos, words.Little](c)
	}
	return numEngine[arith.Twos, words.Big](c)
}

// newCalculator returns the calculator for the base with the remaining
// settings taken from the config.
func newCalculator(base string, cfg *config) (calculator, error) {
	switch base {
	case "bytes":
		return bytesCalculator(cfg), nil

	case "hex":
		switch cfg.disc {
		case arith.Unsigned:
			return hexEngine[arith.Nat](cfg.hexCase), nil
		case arith.SignMagnitude:
			return hexEngine[arith.SignMag](cfg.hexCase), nil
		}
		return hexEngine[arith.Twos](cfg.hexCase), nil

	case "dec":
		if cfg.disc == arith.Unsigned {
			return engine[decnum.Dec]{
				parse:   decnum.ParseDec,
				format:  decnum.Dec.String,
				convert: decnum.DecFromBigInt,
			}, nil
		}
		return engine[decnum.Signed]{
			parse:  decnum.ParseSigned,
			format: decnum.Signed.String,
			convert: func(v *big.Int) (decnum.Signed, error) {
				return decnum.SignedFromBigInt(v), nil
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown base %q", base)
}

// parseBits parses compact bits written as up to eight hex digits.
func parseBits(s string) (compact.Bits, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid compact bits %q", s)
	}
	return compact.Bits(v), nil
}

// run evaluates the operation named by the first argument on the remaining
// arguments and returns the result text.
func run(cfg *config, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("no operation specified")
	}
	op, args := args[0], args[1:]
	calc, err := newCalculator(cfg.Base, cfg)
	if err != nil {
		return "", err
	}
	log.Debugf("Evaluating %s in %s %v representation", op, cfg.Base, cfg.disc)

	switch op {
	case "convert":
		if err := checkArity(op, args, 2); err != nil {
			return "", err
		}
		target, err := newCalculator(args[1], cfg)
		if err != nil {
			return "", err
		}
		v, err := calc.toBig(args[0])
		if err != nil {
			return "", err
		}
		return target.fromBig(v)

	case "base58":
		if err := checkArity(op, args, 1); err != nil {
			return "", err
		}
		v, err := calc.toBig(args[0])
		if err != nil {
			return "", err
		}
		n, err := bytenum.NaturalBE{}.SetBigInt(v)
		if err != nil {
			return "", err
		}
		return bytenum.EncodeBase58(n), nil

	case "unbase58":
		if err := checkArity(op, args, 1); err != nil {
			return "", err
		}
		n, err := bytenum.DecodeBase58[words.Big](args[0])
		if err != nil {
			return "", err
		}
		return calc.fromBig(n.BigInt())

	case "compact":
		if err := checkArity(op, args, 1); err != nil {
			return "", err
		}
		v, err := calc.toBig(args[0])
		if err != nil {
			return "", err
		}
		n, err := bytenum.IntegerBE{}.SetBigInt(v)
		if err != nil {
			return "", err
		}
		bits, err := compact.FromInteger(n)
		if err != nil {
			return "", err
		}
		return bits.String(), nil

	case "uncompact", "work":
		if err := checkArity(op, args, 1); err != nil {
			return "", err
		}
		bits, err := parseBits(args[0])
		if err != nil {
			return "", err
		}
		if op == "work" {
			return calc.fromBig(compact.CalcWork(bits).BigInt())
		}
		return calc.fromBig(bits.Integer().BigInt())
	}

	return calc.eval(op, args)
}
