// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexnum

import (
	"fmt"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/internal/digits"
)

// addSigned adds two signed magnitudes.
func addSigned(an bool, am string, bn bool, bm string, up bool) (bool, string) {
	if an == bn {
		return an, digits.Add(16, am, bm, up)
	}
	if digits.Cmp(am, bm) >= 0 {
		return an, digits.Sub(16, am, bm, up)
	}
	return bn, digits.Sub(16, bm, am, up)
}

// Add returns x + y.
func (x Int[D]) Add(y Int[D]) Int[D] {
	xn, xm := x.sign()
	yn, ym := y.sign()
	return x.build(addSigned(xn, xm, yn, ym, x.up))
}

// Sub returns x - y.  Natural subtraction saturates at zero.
func (x Int[D]) Sub(y Int[D]) Int[D] {
	xn, xm := x.sign()
	yn, ym := y.sign()
	neg, mag := addSigned(xn, xm, !yn, ym, x.up)
	if x.disc() == arith.Unsigned && neg && mag != "" {
		log.Tracef("Natural subtraction %v - %v saturated at zero", x, y)
	}
	return x.build(neg, mag)
}

// Mul returns x * y.
func (x Int[D]) Mul(y Int[D]) Int[D] {
	xn, xm := x.sign()
	yn, ym := y.sign()
	return x.build(xn != yn, digits.Mul(16, xm, ym, x.up))
}

// DivMod returns the quotient and remainder of x / y.  The quotient truncates
// toward zero and the remainder takes the sign of x.
func (x Int[D]) DivMod(y Int[D]) (Int[D], Int[D], error) {
	yn, ym := y.sign()
	if ym == "" {
		str := fmt.Sprintf("division of %v by zero", x)
		return Int[D]{}, Int[D]{}, arith.MakeError(arith.ErrDivideByZero, str)
	}
	xn, xm := x.sign()
	q, r := digits.DivMod(16, xm, ym, x.up)
	return x.build(xn != yn, q), x.build(xn, r), nil
}

// Div returns the quotient of x / y truncated toward zero.
func (x Int[D]) Div(y Int[D]) (Int[D], error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, which has the sign of x.
func (x Int[D]) Mod(y Int[D]) (Int[D], error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Lsh returns x << bits.
func (x Int[D]) Lsh(bits uint) Int[D] {
	neg, mag := x.sign()
	return x.build(neg, digits.Shl(16, mag, bits, x.up))
}

// Rsh returns x >> bits.  Two's complement values shift arithmetically, which
// rounds toward negative infinity, while sign-magnitude values shift their
// magnitude.
func (x Int[D]) Rsh(bits uint) Int[D] {
	neg, mag := x.sign()
	if x.disc() == arith.TwosComplement && neg {
		mag = digits.Sub(16, mag, "1", x.up)
		mag = digits.AddSmall(16, digits.Shr(16, mag, bits, x.up), 1, x.up)
		return x.build(true, mag)
	}
	return x.build(neg, digits.Shr(16, mag, bits, x.up))
}

// one returns the minimal encoding of one.
func (x Int[D]) one() Int[D] {
	return x.build(false, "1")
}

// Increment returns x + 1.
func (x Int[D]) Increment() Int[D] {
	return x.Add(x.one())
}

// Decrement returns x - 1.  Decrementing natural zero returns zero.
func (x Int[D]) Decrement() Int[D] {
	return x.Sub(x.one())
}

// Negate returns -x.  Natural numbers negate to zero and sign-magnitude zero
// negates to the one byte negative zero "0x80".
func (x Int[D]) Negate() Int[D] {
	neg, mag := x.sign()
	switch x.disc() {
	case arith.Unsigned:
		return Int[D]{up: x.up}

	case arith.SignMagnitude:
		if mag == "" {
			if x.HasSignFlag() {
				return Int[D]{up: x.up}
			}
			return x.with("80")
		}
	}
	return x.build(!neg, mag)
}

// Abs returns the absolute value of x.
func (x Int[D]) Abs() Int[D] {
	_, mag := x.sign()
	return x.build(false, mag)
}

// twos returns the two's complement digits of x extended to n bytes.
func twos(d arith.Discipline, s string, n int, up bool) string {
	neg, mag := split(d, s, up)
	t := Int[arith.Twos]{s: join(arith.TwosComplement, neg, mag, up), up: up}
	e, _ := t.Extend(n)
	return e.s
}

// bitwise applies op nibble by nibble to the two's complement encodings of the
// operands extended to a common width.  Natural numbers have no sign bits to
// extend, so they are padded with zeros instead.
func (x Int[D]) bitwise(y Int[D], op func(a, b int) int) Int[D] {
	d := x.disc()
	n := x.MinimalSize()
	if m := y.MinimalSize(); m > n {
		n = m
	}
	var a, b string
	if d == arith.Unsigned {
		a = digits.Pad(digits.Trim(x.s), 2*n)
		b = digits.Pad(digits.Trim(y.s), 2*n)
	} else {
		// Sign-magnitude values may need one more byte in two's complement.
		n++
		a = twos(d, x.s, n, x.up)
		b = twos(d, y.s, n, x.up)
	}

	r := make([]byte, 2*n)
	for i := range r {
		va, _ := digits.Value(a[i])
		vb, _ := digits.Value(b[i])
		r[i] = digits.Char(op(va, vb)&0xf, x.up)
	}
	if d == arith.Unsigned {
		return x.with(string(r)).Trim()
	}
	neg, mag := split(arith.TwosComplement, string(r), x.up)
	return x.build(neg, mag)
}

// And returns the bitwise and of x and y.
func (x Int[D]) And(y Int[D]) Int[D] {
	return x.bitwise(y, func(a, b int) int { return a & b })
}

// Or returns the bitwise or of x and y.
func (x Int[D]) Or(y Int[D]) Int[D] {
	return x.bitwise(y, func(a, b int) int { return a | b })
}

// Xor returns the bitwise exclusive or of x and y.
func (x Int[D]) Xor(y Int[D]) Int[D] {
	return x.bitwise(y, func(a, b int) int { return a ^ b })
}

// Not returns the bitwise complement of x.  Natural numbers complement every
// digit of their current encoding while signed values produce -x - 1.
func (x Int[D]) Not() Int[D] {
	if x.disc() == arith.Unsigned {
		return x.with(digits.Complement(16, x.s, x.up)).Trim()
	}
	neg, mag := x.sign()
	if neg && mag != "" {
		return x.build(false, digits.Sub(16, mag, "1", x.up))
	}
	return x.build(true, digits.AddSmall(16, mag, 1, x.up))
}
