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

// Dec is a natural number encoded as decimal text.
//
// The zero value is zero.
type Dec struct {
	mag string
}

// ParseDec returns the natural number written as s, which must match
// 0|[1-9][0-9]*.
func ParseDec(s string) (Dec, error) {
	if !digits.IsDecimal(s) {
		str := fmt.Sprintf("malformed natural decimal literal %q", s)
		return Dec{}, arith.MakeError(arith.ErrInvalidString, str)
	}
	return Dec{mag: digits.Trim(s)}, nil
}

// ReadDec parses s like ParseDec and reports whether or not it succeeded
// instead of returning an error.
func ReadDec(s string) (Dec, bool) {
	x, err := ParseDec(s)
	if err != nil {
		log.Tracef("Rejected literal: %v", err)
		return Dec{}, false
	}
	return x, true
}

// MustParseDec is like ParseDec but panics on invalid input.  It is intended
// for literals in source code.
func MustParseDec(s string) Dec {
	x, err := ParseDec(s)
	if err != nil {
		panic("invalid decimal literal in source file: " + s)
	}
	return x
}

// String returns the decimal text of the number.
func (x Dec) String() string {
	if x.mag == "" {
		return "0"
	}
	return x.mag
}

// IsZero returns whether or not the number is zero.
func (x Dec) IsZero() bool {
	return x.mag == ""
}

// Sign returns the sign of the number.
func (x Dec) Sign() arith.Sign {
	if x.mag == "" {
		return arith.Zero
	}
	return arith.Positive
}

// BitLen returns the number of bits needed to represent the number.
func (x Dec) BitLen() uint {
	return x.Hex(hexnum.Lower).BitLen()
}

// Cmp compares x and y and returns -1, 0, or 1.
func (x Dec) Cmp(y Dec) int {
	return digits.Cmp(x.mag, y.mag)
}

// Equal returns whether or not x and y are the same number.
func (x Dec) Equal(y Dec) bool {
	return x.mag == y.mag
}

// Add returns x + y.
func (x Dec) Add(y Dec) Dec {
	return Dec{mag: digits.Add(10, x.mag, y.mag, false)}
}

// Sub returns x - y, or zero when y is greater than x.
func (x Dec) Sub(y Dec) Dec {
	if digits.Cmp(x.mag, y.mag) < 0 {
		log.Tracef("Natural subtraction %v - %v saturated at zero", x, y)
		return Dec{}
	}
	return Dec{mag: digits.Sub(10, x.mag, y.mag, false)}
}

// Mul returns x * y.
func (x Dec) Mul(y Dec) Dec {
	return Dec{mag: digits.Mul(10, x.mag, y.mag, false)}
}

// DivMod returns the quotient and remainder of x / y.
func (x Dec) DivMod(y Dec) (Dec, Dec, error) {
	if y.mag == "" {
		str := fmt.Sprintf("division of %v by zero", x)
		return Dec{}, Dec{}, arith.MakeError(arith.ErrDivideByZero, str)
	}
	q, r := digits.DivMod(10, x.mag, y.mag, false)
	return Dec{mag: q}, Dec{mag: r}, nil
}

// Div returns the quotient of x / y.
func (x Dec) Div(y Dec) (Dec, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y.
func (x Dec) Mod(y Dec) (Dec, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Lsh returns x << bits.
func (x Dec) Lsh(bits uint) Dec {
	return Dec{mag: digits.Shl(10, x.mag, bits, false)}
}

// Rsh returns x >> bits.
func (x Dec) Rsh(bits uint) Dec {
	return Dec{mag: digits.Shr(10, x.mag, bits, false)}
}

// Increment returns x + 1.
func (x Dec) Increment() Dec {
	return Dec{mag: digits.AddSmall(10, x.mag, 1, false)}
}

// Decrement returns x - 1.  Decrementing zero returns zero.
func (x Dec) Decrement() Dec {
	if x.mag == "" {
		return x
	}
	return Dec{mag: digits.Sub(10, x.mag, "1", false)}
}

// And returns the bitwise and of x and y.
func (x Dec) And(y Dec) Dec {
	return decFromMag(x.Hex(hexnum.Lower).And(y.Hex(hexnum.Lower)).Magnitude())
}

// Or returns the bitwise or of x and y.
func (x Dec) Or(y Dec) Dec {
	return decFromMag(x.Hex(hexnum.Lower).Or(y.Hex(hexnum.Lower)).Magnitude())
}

// Xor returns the bitwise exclusive or of x and y.
func (x Dec) Xor(y Dec) Dec {
	return decFromMag(x.Hex(hexnum.Lower).Xor(y.Hex(hexnum.Lower)).Magnitude())
}

// Signed returns x as a signed number.
func (x Dec) Signed() Signed {
	return Signed{mag: x.mag}
}

// Format implements fmt.Formatter.  The d, s, and v verbs print the decimal
// text while x and X print the 0x prefixed hex text in lower and upper case.
func (x Dec) Format(f fmt.State, verb rune) {
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
func (x Dec) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Dec) UnmarshalText(text []byte) error {
	v, err := ParseDec(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
