// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexnum

import (
	"fmt"
	"strings"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/internal/digits"
)

// Case is the letter case of the hex digits of a value.
type Case uint8

// These constants define the supported letter cases.
const (
	Lower Case = iota
	Upper
)

// String returns the case as a human-readable name.
func (c Case) String() string {
	if c == Upper {
		return "upper"
	}
	return "lower"
}

// ParseCase returns the case named by s, which is either lower or upper.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(s) {
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	}
	str := fmt.Sprintf("unknown letter case %q", s)
	return Lower, arith.MakeError(arith.ErrInvalidString, str)
}

// Int is an arbitrary precision integer encoded as hex text and interpreted
// with the sign discipline D.
//
// The zero value is the minimal zero "0x".
type Int[D arith.Rule] struct {
	s  string
	up bool
}

// Hex text aliases for every discipline.
type (
	Natural = Int[arith.Nat]
	Integer = Int[arith.Twos]
	SignMag = Int[arith.SignMag]
)

func (x Int[D]) disc() arith.Discipline {
	return arith.DisciplineOf[D]()
}

// with returns a value with the digits s in the letter case of x.
func (x Int[D]) with(s string) Int[D] {
	return Int[D]{s: digits.Recase(s, x.up), up: x.up}
}

// parse validates a literal and splits it into its digits and letter case.
func parse(s string) (string, bool, error) {
	if !strings.HasPrefix(s, "0x") {
		str := fmt.Sprintf("hex literal %q does not start with 0x", s)
		return "", false, arith.MakeError(arith.ErrInvalidString, str)
	}
	ds := s[2:]
	up, ok := digits.HexCase(ds)
	if !ok {
		str := fmt.Sprintf("hex literal %q has invalid digits or mixed case", s)
		return "", false, arith.MakeError(arith.ErrInvalidString, str)
	}
	if len(ds)%2 != 0 {
		str := fmt.Sprintf("hex literal %q has an odd number of digits", s)
		return "", false, arith.MakeError(arith.ErrInvalidString, str)
	}
	return ds, up, nil
}

// Parse returns the value of a hex literal matching 0x([0-9a-f]{2})* or
// 0x([0-9A-F]{2})*.  The encoding is kept as given and is not trimmed.
func Parse[D arith.Rule](s string) (Int[D], error) {
	ds, up, err := parse(s)
	if err != nil {
		return Int[D]{}, err
	}
	return Int[D]{s: ds, up: up}, nil
}

// Read parses s like Parse and reports whether or not it succeeded instead of
// returning an error.
func Read[D arith.Rule](s string) (Int[D], bool) {
	x, err := Parse[D](s)
	if err != nil {
		log.Tracef("Rejected %v literal: %v", arith.DisciplineOf[D](), err)
		return Int[D]{}, false
	}
	return x, true
}

// MustParse is like Parse but panics on invalid input.  It is intended for
// literals in source code.
func MustParse[D arith.Rule](s string) Int[D] {
	x, err := Parse[D](s)
	if err != nil {
		panic("invalid hex literal in source file: " + s)
	}
	return x
}

// String returns the encoding as a 0x prefixed hex literal in the letter case
// of the value.
func (x Int[D]) String() string {
	return "0x" + x.s
}

// Digits returns the hex digits of the encoding without the prefix.
func (x Int[D]) Digits() string {
	return x.s
}

// Case returns the letter case of the value.
func (x Int[D]) Case() Case {
	if x.up {
		return Upper
	}
	return Lower
}

// WithCase returns the same encoding written in the letter case c.
func (x Int[D]) WithCase(c Case) Int[D] {
	up := c == Upper
	return Int[D]{s: digits.Recase(x.s, up), up: up}
}

// Discipline returns the sign discipline of the value.
func (x Int[D]) Discipline() arith.Discipline {
	return x.disc()
}

// Len returns the number of bytes in the encoding.
func (x Int[D]) Len() int {
	return len(x.s) / 2
}

// topSet returns whether or not the most significant bit of an encoding is
// set.
func topSet(s string) bool {
	if s == "" {
		return false
	}
	v, _ := digits.Value(s[0])
	return v >= 8
}

// split separates an encoding into its sign and trimmed magnitude digits.  A
// sign-magnitude negative zero reports negative with an empty magnitude.
func split(d arith.Discipline, s string, up bool) (bool, string) {
	if digits.Trim(s) == "" {
		return false, ""
	}
	switch d {
	case arith.Unsigned:
		return false, digits.Trim(s)

	case arith.TwosComplement:
		if !topSet(s) {
			return false, digits.Trim(s)
		}
		return true, digits.AddSmall(16, digits.Complement(16, s, up), 1, up)

	case arith.SignMagnitude:
		if !topSet(s) {
			return false, digits.Trim(s)
		}
		v, _ := digits.Value(s[0])
		return true, digits.Trim(string(digits.Char(v-8, up)) + s[1:])
	}
	panic(fmt.Sprintf("hexnum: unknown discipline %v", d))
}

// join builds the minimal encoding for the passed sign and magnitude.  A
// negative magnitude has no natural encoding, so natural numbers saturate to
// zero.
func join(d arith.Discipline, neg bool, mag string, up bool) string {
	mag = digits.Trim(mag)
	if mag == "" {
		return ""
	}
	n := (len(mag) + 1) / 2 * 2
	enc := digits.Pad(digits.Recase(mag, up), n)
	switch d {
	case arith.Unsigned:
		if neg {
			return ""
		}
		return enc

	case arith.TwosComplement:
		if !neg {
			if topSet(enc) {
				enc = "00" + enc
			}
			return enc
		}

		// The complement plus one is 16^n - mag which always fits in n
		// digits.  A clear top bit means the magnitude needs another byte.
		enc = digits.AddSmall(16, digits.Complement(16, enc, up), 1, up)
		enc = digits.Pad(enc, n)
		if !topSet(enc) {
			enc = digits.Recase("ff", up) + enc
		}
		return enc

	case arith.SignMagnitude:
		if topSet(enc) {
			enc = "00" + enc
		}
		if neg {
			v, _ := digits.Value(enc[0])
			enc = string(digits.Char(v+8, up)) + enc[1:]
		}
		return enc
	}
	panic(fmt.Sprintf("hexnum: unknown discipline %v", d))
}

// sign returns the sign and magnitude of x.
func (x Int[D]) sign() (bool, string) {
	return split(x.disc(), x.s, x.up)
}

// build returns the minimal value with the passed sign and magnitude in the
// letter case of x.
func (x Int[D]) build(neg bool, mag string) Int[D] {
	return Int[D]{s: join(x.disc(), neg, mag, x.up), up: x.up}
}

// MinimalSize returns the number of bytes of the minimal encoding.
func (x Int[D]) MinimalSize() int {
	return len(x.Trim().s) / 2
}

// IsMinimal returns whether or not the encoding has no redundant bytes.
func (x Int[D]) IsMinimal() bool {
	return x.MinimalSize() == x.Len()
}

// Trim returns the minimal encoding of the value.  Both sign-magnitude zeros
// trim to "0x".
func (x Int[D]) Trim() Int[D] {
	return x.build(x.sign())
}

// Extend returns the value encoded in exactly size bytes.  It fails when size
// is less than the minimal size.
func (x Int[D]) Extend(size int) (Int[D], error) {
	t := x.Trim()
	m := len(t.s) / 2
	if size < m {
		str := fmt.Sprintf("cannot extend %v value %v to %d bytes since its "+
			"minimal size is %d", x.disc(), x, size, m)
		return Int[D]{}, arith.MakeError(arith.ErrInvalidWidth, str)
	}
	if size == m {
		return t, nil
	}

	pad := strings.Repeat("00", size-m)
	switch {
	case x.disc() == arith.TwosComplement && topSet(t.s):
		pad = digits.Recase(strings.Repeat("ff", size-m), x.up)

	case x.disc() == arith.SignMagnitude && topSet(t.s):
		v, _ := digits.Value(t.s[0])
		t.s = string(digits.Char(v-8, x.up)) + t.s[1:]
		pad = "80" + pad[2:]
	}
	return x.with(pad + t.s), nil
}

// IsZero returns whether or not the value is zero.  Both sign-magnitude zeros
// are zero.
func (x Int[D]) IsZero() bool {
	_, mag := x.sign()
	return mag == ""
}

// IsNegative returns whether or not the value is less than zero.
func (x Int[D]) IsNegative() bool {
	neg, mag := x.sign()
	return neg && mag != ""
}

// HasSignFlag returns whether or not the sign bit of the encoding is set.
// Unlike IsNegative it is true for a sign-magnitude negative zero.
func (x Int[D]) HasSignFlag() bool {
	return x.disc() != arith.Unsigned && topSet(x.s)
}

// Sign returns the sign of the value.
func (x Int[D]) Sign() arith.Sign {
	switch {
	case x.IsZero():
		return arith.Zero
	case x.IsNegative():
		return arith.Negative
	}
	return arith.Positive
}

// BitLen returns the number of bits needed to represent the absolute value.
func (x Int[D]) BitLen() uint {
	_, mag := x.sign()
	if mag == "" {
		return 0
	}
	v, _ := digits.Value(mag[0])
	n := uint(len(mag)-1) * 4
	for ; v > 0; v >>= 1 {
		n++
	}
	return n
}

// Cmp compares the values of x and y and returns -1, 0, or 1.
func (x Int[D]) Cmp(y Int[D]) int {
	xn, xm := x.sign()
	yn, ym := y.sign()
	xn = xn && xm != ""
	yn = yn && ym != ""
	if xn != yn {
		if xn {
			return -1
		}
		return 1
	}
	c := digits.Cmp(xm, ym)
	if xn {
		return -c
	}
	return c
}

// Equal returns whether or not x and y have the same value regardless of
// their encodings.
func (x Int[D]) Equal(y Int[D]) bool {
	return x.Cmp(y) == 0
}

// Identical returns whether or not x and y encode the same bytes.  Letter case
// is ignored.
func (x Int[D]) Identical(y Int[D]) bool {
	return strings.EqualFold(x.s, y.s)
}
