// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arith

import (
	"fmt"

	"github.com/decred/wordnum/words"
)

// addSigned adds two signed magnitudes.
func addSigned[W words.Word](an bool, am nat[W], bn bool, bm nat[W]) (bool, nat[W]) {
	if an == bn {
		return an, natAdd(am, bm)
	}
	if natCmp(am, bm) >= 0 {
		return an, natSub(am, bm)
	}
	return bn, natSub(bm, am)
}

// Add returns the minimal encoding of a + b.  The result takes the endianness
// of a.
func Add[W words.Word](d Discipline, a, b words.Seq[W]) words.Seq[W] {
	an, am := split(d, a)
	bn, bm := split(d, b)
	neg, mag := addSigned(an, am, bn, bm)
	return join(d, a.Endian(), neg, mag)
}

// Sub returns the minimal encoding of a - b.  Unsigned subtraction saturates
// at zero when b > a.
func Sub[W words.Word](d Discipline, a, b words.Seq[W]) words.Seq[W] {
	an, am := split(d, a)
	bn, bm := split(d, b)
	neg, mag := addSigned(an, am, !bn, bm)
	return join(d, a.Endian(), neg, mag)
}

// Mul returns the minimal encoding of a * b.  The sign of the product is the
// exclusive or of the operand signs and the magnitude is the schoolbook
// product of the operand magnitudes.
func Mul[W words.Word](d Discipline, a, b words.Seq[W]) words.Seq[W] {
	an, am := split(d, a)
	bn, bm := split(d, b)
	return join(d, a.Endian(), an != bn, natMul(am, bm))
}

// DivMod returns the quotient and remainder of a / b.  The quotient truncates
// toward zero and the remainder takes the sign of the dividend, so
// a = q*b + r always holds.
func DivMod[W words.Word](d Discipline, a, b words.Seq[W]) (q, r words.Seq[W], err error) {
	bn, bm := split(d, b)
	if len(bm) == 0 {
		str := fmt.Sprintf("division of %v by zero", a)
		return q, r, MakeError(ErrDivideByZero, str)
	}
	an, am := split(d, a)
	qm, rm := natDivMod(am, bm)
	e := a.Endian()
	return join(d, e, an != bn, qm), join(d, e, an, rm), nil
}

// Div returns the truncated quotient of a / b.
func Div[W words.Word](d Discipline, a, b words.Seq[W]) (words.Seq[W], error) {
	q, _, err := DivMod(d, a, b)
	return q, err
}

// Mod returns the remainder of a / b which takes the sign of a.
func Mod[W words.Word](d Discipline, a, b words.Seq[W]) (words.Seq[W], error) {
	_, r, err := DivMod(d, a, b)
	return r, err
}

// Lsh returns the minimal encoding of s * 2^n.  The sign is unchanged.
func Lsh[W words.Word](d Discipline, s words.Seq[W], n uint) words.Seq[W] {
	neg, mag := split(d, s)
	return join(d, s.Endian(), neg, natShl(mag, n))
}

// Rsh returns the minimal encoding of s shifted right by n bits.
//
// Unsigned values shift in zeros.  Two's complement values shift in copies of
// the sign bit, which is floor(s / 2^n).  Sign-magnitude values shift the
// magnitude and keep the sign flag.
func Rsh[W words.Word](d Discipline, s words.Seq[W], n uint) words.Seq[W] {
	neg, mag := split(d, s)
	if d == TwosComplement && neg && len(mag) != 0 {
		one := nat[W]{1}
		mag = natAdd(natShr(natSub(mag, one), n), one)
		return join(d, s.Endian(), true, mag)
	}
	return join(d, s.Endian(), neg, natShr(mag, n))
}

// One returns the minimal encoding of one.
func One[W words.Word](d Discipline, e words.Endian) words.Seq[W] {
	return join(d, e, false, nat[W]{1})
}

// Increment returns the minimal encoding of s + 1.
func Increment[W words.Word](d Discipline, s words.Seq[W]) words.Seq[W] {
	return Add(d, s, One[W](d, s.Endian()))
}

// Decrement returns the minimal encoding of s - 1.  Decrementing unsigned zero
// returns zero.
func Decrement[W words.Word](d Discipline, s words.Seq[W]) words.Seq[W] {
	return Sub(d, s, One[W](d, s.Endian()))
}

// bitwise applies op word by word to the operands extended to a common width.
// Two's complement operands are sign extended so the result is the same as if
// both values had infinitely many sign bits.  Sign-magnitude operands are
// processed through their two's complement encodings.
func bitwise[W words.Word](d Discipline, a, b words.Seq[W], op func(x, y W) W) words.Seq[W] {
	if d == SignMagnitude {
		ta, _ := Convert(d, TwosComplement, a)
		tb, _ := Convert(d, TwosComplement, b)
		r := bitwise(TwosComplement, ta, tb, op)
		c, _ := Convert(TwosComplement, d, r)
		return c
	}

	n := MinimalSize(d, a)
	if m := MinimalSize(d, b); m > n {
		n = m
	}
	xa, _ := Extend(d, a, n)
	xb, _ := Extend(d, b, n)
	r := words.New[W](a.Endian(), n)
	for i := 0; i < n; i++ {
		r.SetWord(i, op(xa.Word(i), xb.Word(i)))
	}
	return Trim(d, r)
}

// And returns the bitwise and of a and b.
func And[W words.Word](d Discipline, a, b words.Seq[W]) words.Seq[W] {
	return bitwise(d, a, b, func(x, y W) W { return x & y })
}

// Or returns the bitwise or of a and b.
func Or[W words.Word](d Discipline, a, b words.Seq[W]) words.Seq[W] {
	return bitwise(d, a, b, func(x, y W) W { return x | y })
}

// Xor returns the bitwise exclusive or of a and b.
func Xor[W words.Word](d Discipline, a, b words.Seq[W]) words.Seq[W] {
	return bitwise(d, a, b, func(x, y W) W { return x ^ y })
}

// Not returns the bitwise complement.
//
// Unsigned values are complemented at the width of s, so the result depends on
// the width of the operand.  Signed values produce -s - 1 at any width.
func Not[W words.Word](d Discipline, s words.Seq[W]) words.Seq[W] {
	switch d {
	case Unsigned:
		r := words.New[W](s.Endian(), s.Len())
		for i := 0; i < s.Len(); i++ {
			r.SetWord(i, ^s.Word(i))
		}
		return Trim(d, r)

	case SignMagnitude:
		t, _ := Convert(d, TwosComplement, s)
		c, _ := Convert(TwosComplement, d, Not(TwosComplement, t))
		return c
	}

	n := MinimalSize(d, s)
	if n == 0 {
		n = 1
	}
	x, _ := Extend(d, s, n)
	r := words.New[W](s.Endian(), n)
	for i := 0; i < n; i++ {
		r.SetWord(i, ^x.Word(i))
	}
	return Trim(d, r)
}

// mustSameWidth panics when the operands of a fixed width operation differ in
// width.
func mustSameWidth[W words.Word](a, b words.Seq[W]) {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("arith: mismatched widths %d and %d", a.Len(),
			b.Len()))
	}
}

// AddWrap returns a + b modulo 2^(n*w) where n is the common width of the
// operands.  The result is identical for unsigned and two's complement values.
func AddWrap[W words.Word](a, b words.Seq[W]) words.Seq[W] {
	mustSameWidth(a, b)
	r := words.New[W](a.Endian(), a.Len())
	var c W
	for i := 0; i < a.Len(); i++ {
		var z W
		z, c = addWW(a.Word(i), b.Word(i), c)
		r.SetWord(i, z)
	}
	return r
}

// SubWrap returns a - b modulo 2^(n*w) where n is the common width of the
// operands.
func SubWrap[W words.Word](a, b words.Seq[W]) words.Seq[W] {
	mustSameWidth(a, b)
	r := words.New[W](a.Endian(), a.Len())
	var bw W
	for i := 0; i < a.Len(); i++ {
		var z W
		z, bw = subWW(a.Word(i), b.Word(i), bw)
		r.SetWord(i, z)
	}
	return r
}

// MulWrap returns a * b modulo 2^(n*w) where n is the common width of the
// operands.
func MulWrap[W words.Word](a, b words.Seq[W]) words.Seq[W] {
	mustSameWidth(a, b)
	return natMul(natFromSeq(a), natFromSeq(b)).toSeq(a.Endian(), a.Len())
}

// NegateWrap returns -s modulo 2^(n*w) where n is the width of s.
func NegateWrap[W words.Word](s words.Seq[W]) words.Seq[W] {
	return natNegWidth(natFromSeq(s), s.Len()).toSeq(s.Endian(), s.Len())
}

// NotWrap returns the complement of every word of s.
func NotWrap[W words.Word](s words.Seq[W]) words.Seq[W] {
	r := words.New[W](s.Endian(), s.Len())
	for i := 0; i < s.Len(); i++ {
		r.SetWord(i, ^s.Word(i))
	}
	return r
}

// LshWrap returns s << n modulo 2^(n*w) where n is the width of s.
func LshWrap[W words.Word](s words.Seq[W], n uint) words.Seq[W] {
	return natShl(natFromSeq(s), n).toSeq(s.Endian(), s.Len())
}

// RshWrap returns s >> n at the width of s, shifting in zeros for unsigned
// values and copies of the sign bit for two's complement values.
func RshWrap[W words.Word](d Discipline, s words.Seq[W], n uint) words.Seq[W] {
	return Wrap(d, Rsh(d, s, n), s.Len())
}

// BitwiseWrap applies op word by word to two operands of the same width.
func BitwiseWrap[W words.Word](a, b words.Seq[W], op func(x, y W) W) words.Seq[W] {
	mustSameWidth(a, b)
	r := words.New[W](a.Endian(), a.Len())
	for i := 0; i < a.Len(); i++ {
		r.SetWord(i, op(a.Word(i), b.Word(i)))
	}
	return r
}
