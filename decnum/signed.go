// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package decnum

import (
	"fmt"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/hexnum"
	"github.com/decred/wordnum/internal/digits"
)

// Signed is an integer encoded as decimal text with an optional leading minus
// sign.
//
// The zero value is zero.
type Signed struct {
	neg bool
	mag string
}

// signed returns the integer with the passed sign and magnitude.  Zero is
// never negative.
func signed(neg bool, mag string) Signed {
	mag = digits.Trim(mag)
	return Signed{neg: neg && mag != "", mag: mag}
}

// ParseSigned returns the integer written as s, which must match
// 0|-?[1-9][0-9]*.
func ParseSigned(s string) (Signed, error) {
	if !digits.IsSignedDecimal(s) {
		str := fmt.Sprintf("malformed signed decimal literal %q", s)
		return Signed{}, arith.MakeError(arith.ErrInvalidString, str)
	}
	if s[0] == '-' {
		return signed(true, s[1:]), nil
	}
	return signed(false, s), nil
}

// ReadSigned parses s like ParseSigned and reports whether or not it
// succeeded instead of returning an error.
func ReadSigned(s string) (Signed, bool) {
	x, err := ParseSigned(s)
	if err != nil {
		log.Tracef("Rejected literal: %v", err)
		return Signed{}, false
	}
	return x, true
}

// MustParseSigned is like ParseSigned but panics on invalid input.  It is
// intended for literals in source code.
func MustParseSigned(s string) Signed {
	x, err := ParseSigned(s)
	if err != nil {
		panic("invalid decimal literal in source file: " + s)
	}
	return x
}

// String returns the decimal text of the integer.
func (x Signed) String() string {
	switch {
	case x.mag == "":
		return "0"
	case x.neg:
		return "-" + x.mag
	}
	return x.mag
}

// IsZero returns whether or not the integer is zero.
func (x Signed) IsZero() bool {
	return x.mag == ""
}

// IsNegative returns whether or not the integer is less than zero.
func (x Signed) IsNegative() bool {
	return x.neg
}

// Sign returns the sign of the integer.
func (x Signed) Sign() arith.Sign {
	switch {
	case x.mag == "":
		return arith.Zero
	case x.neg:
		return arith.Negative
	}
	return arith.Positive
}

// BitLen returns the number of bits needed to represent the absolute value.
func (x Signed) BitLen() uint {
	return Dec{mag: x.mag}.BitLen()
}

// Cmp compares x and y and returns -1, 0, or 1.
func (x Signed) Cmp(y Signed) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := digits.Cmp(x.mag, y.mag)
	if x.neg {
		return -c
	}
	return c
}

// Equal returns whether or not x and y are the same integer.
func (x Signed) Equal(y Signed) bool {
	return x == y
}

// add adds two signed magnitudes.
func add(an bool, am string, bn bool, bm string) Signed {
	if an == bn {
		return signed(an, digits.Add(10, am, bm, false))
	}
	if digits.Cmp(am, bm) >= 0 {
		return signed(an, digits.Sub(10, am, bm, false))
	}
	return signed(bn, digits.Sub(10, bm, am, false))
}

// Add returns x + y.
func (x Signed) Add(y Signed) Signed {
	return add(x.neg, x.mag, y.neg, y.mag)
}

// Sub returns x - y.
func (x Signed) Sub(y Signed) Signed {
	return add(x.neg, x.mag, !y.neg, y.mag)
}

// Mul returns x * y.
func (x Signed) Mul(y Signed) Signed {
	return signed(x.neg != y.neg, digits.Mul(10, x.mag, y.mag, false))
}

// DivMod returns the quotient and remainder of x / y.  The quotient truncates
// toward zero and the remainder takes the sign of x.
func (x Signed) DivMod(y Signed) (Signed, Signed, error) {
	if y.mag == "" {
		str := fmt.Sprintf("division of %v by zero", x)
		return Signed{}, Signed{}, arith.MakeError(arith.ErrDivideByZero, str)
	}
	q, r := digits.DivMod(10, x.mag, y.mag, false)
	return signed(x.neg != y.neg, q), signed(x.neg, r), nil
}

// Div returns the quotient of x / y truncated toward zero.
func (x Signed) Div(y Signed) (Signed, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, which has the sign of x.
func (x Signed) Mod(y Signed) (Signed, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Lsh returns x << bits.
func (x Signed) Lsh(bits uint) Signed {
	return signed(x.neg, digits.Shl(10, x.mag, bits, false))
}

// Rsh returns x >> bits rounded toward negative infinity, which matches an
// arithmetic shift of the two's complement encoding.
func (x Signed) Rsh(bits uint) Signed {
	if !x.neg {
		return signed(false, digits.Shr(10, x.mag, bits, false))
	}
	mag := digits.Shr(10, digits.Sub(10, x.mag, "1", false), bits, false)
	return signed(true, digits.AddSmall(10, mag, 1, false))
}

// Increment returns x + 1.
func (x Signed) Increment() Signed {
	return x.Add(Signed{mag: "1"})
}

// Decrement returns x - 1.
func (x Signed) Decrement() Signed {
	return x.Sub(Signed{mag: "1"})
}

// Negate returns -x.
func (x Signed) Negate() Signed {
	return signed(!x.neg, x.mag)
}

// Abs returns the absolute value of x.
func (x Signed) Abs() Signed {
	return Signed{mag: x.mag}
}

// And returns the bitwise and of the two's complement forms of x and y.
func (x Signed) And(y Signed) Signed {
	return signedFromMag(x.Hex(hexnum.Lower).And(y.Hex(hexnum.Lower)).Magnitude())
}

// Or returns the bitwise or of the two's complement forms of x and y.
func (x Signed) Or(y Signed) Signed {
	return signedFromMag(x.Hex(hexnum.Lower).Or(y.Hex(hexnum.Lower)).Magnitude())
}

// Xor returns the bitwise exclusive or of the two's complement forms of x and
// y.
func (x Signed) Xor(y Signed) Signed {
	return signedFromMag(x.Hex(hexnum.Lower).Xor(y.Hex(hexnum.Lower)).Magnitude())
}

// Not returns the bitwise complement of x, which is -x - 1.
func (x Signed) Not() Signed {
	return x.Negate().Decrement()
}

// Dec returns x as a natural number.  It fails when x is negative.
func (x Signed) Dec() (Dec, error) {
	if x.neg {
		str := fmt.Sprintf("negative value %v has no natural encoding", x)
		return Dec{}, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	return Dec{mag: x.mag}, nil
}

// Format implements fmt.Formatter.  The d, s, and v verbs print the decimal
// text while x and X print the 0x prefixed two's complement hex text in lower
// and upper case.
func (x Signed) Format(f fmt.State, verb rune) {
	switch verb {
	case 'd', 's', 'v':
		fmt.Fprint(f, x.String())
	case 'x':
		fmt.Fprint(f, x.Hex(hexnum.Lower).String())
	case 'X':
		fmt.Fprint(f, x.Hex(hexnum.Upper).String())
	default:
		fmt.Fprintf(f, "%%!%c(decnum=%s)", verb, x.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x Signed) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Signed) UnmarshalText(text []byte) error {
	v, err := ParseSigned(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
