// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytenum

import (
	"math/big"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/words"
)

// Num is an arbitrary precision integer whose encoding is a byte string in
// the endianness E interpreted with the sign discipline D.
//
// The zero value is a valid zero.  Values are immutable and every method
// returns a new Num.
type Num[D arith.Rule, E words.Order] struct {
	b []byte
}

// Resizable integer aliases for every supported combination.
type (
	NaturalBE = Num[arith.Nat, words.Big]
	NaturalLE = Num[arith.Nat, words.Little]
	IntegerBE = Num[arith.Twos, words.Big]
	IntegerLE = Num[arith.Twos, words.Little]
	SignMagBE = Num[arith.SignMag, words.Big]
	SignMagLE = Num[arith.SignMag, words.Little]
)

// FromSeq returns a Num holding the value of the byte sequence s without
// trimming it.  The sequence is reordered to the endianness of the result.
func FromSeq[D arith.Rule, E words.Order](s words.Seq[byte]) Num[D, E] {
	return Num[D, E]{b: s.WithEndian(words.EndianOf[E]()).Words()}
}

func (n Num[D, E]) disc() arith.Discipline {
	return arith.DisciplineOf[D]()
}

func (n Num[D, E]) wrap(s words.Seq[byte]) Num[D, E] {
	return FromSeq[D, E](s)
}

// Seq returns the encoding as a byte sequence.
func (n Num[D, E]) Seq() words.Seq[byte] {
	return words.FromWords(words.EndianOf[E](), n.b)
}

// Discipline returns the sign discipline of the number.
func (n Num[D, E]) Discipline() arith.Discipline {
	return n.disc()
}

// Endian returns the byte order of the encoding.
func (n Num[D, E]) Endian() words.Endian {
	return words.EndianOf[E]()
}

// SetBytes returns a number whose encoding is a copy of b, which must be in
// the endianness of the number.  The bytes are not trimmed.
func (n Num[D, E]) SetBytes(b []byte) Num[D, E] {
	c := make([]byte, len(b))
	copy(c, b)
	return Num[D, E]{b: c}
}

// Bytes returns a copy of the encoding.
func (n Num[D, E]) Bytes() []byte {
	c := make([]byte, len(n.b))
	copy(c, n.b)
	return c
}

// Len returns the number of bytes in the encoding.
func (n Num[D, E]) Len() int {
	return len(n.b)
}

// SetUint64 returns the minimal encoding of v.
func (n Num[D, E]) SetUint64(v uint64) Num[D, E] {
	return n.wrap(arith.FromUint64[byte](n.disc(), n.Endian(), v))
}

// SetInt64 returns the minimal encoding of v.  Negative values cannot be
// represented by natural numbers.
func (n Num[D, E]) SetInt64(v int64) (Num[D, E], error) {
	s, err := arith.FromInt64[byte](n.disc(), n.Endian(), v)
	if err != nil {
		return Num[D, E]{}, err
	}
	return n.wrap(s), nil
}

// SetBigInt returns the minimal encoding of v.  Negative values cannot be
// represented by natural numbers.
func (n Num[D, E]) SetBigInt(v *big.Int) (Num[D, E], error) {
	s, err := arith.FromBig[byte](n.disc(), n.Endian(), v)
	if err != nil {
		return Num[D, E]{}, err
	}
	return n.wrap(s), nil
}

// BigInt returns the value as a big integer.
func (n Num[D, E]) BigInt() *big.Int {
	return arith.ToBig(n.disc(), n.Seq())
}

// Uint64 returns the value as a uint64 or an error when it does not fit.
func (n Num[D, E]) Uint64() (uint64, error) {
	return arith.ToUint64(n.disc(), n.Seq())
}

// Int64 returns the value as an int64 or an error when it does not fit.
func (n Num[D, E]) Int64() (int64, error) {
	return arith.ToInt64(n.disc(), n.Seq())
}

// MinimalSize returns the number of bytes of the minimal encoding.
func (n Num[D, E]) MinimalSize() int {
	return arith.MinimalSize(n.disc(), n.Seq())
}

// IsMinimal returns whether or not the encoding has no redundant bytes.
func (n Num[D, E]) IsMinimal() bool {
	return arith.IsMinimal(n.disc(), n.Seq())
}

// Trim returns the minimal encoding of the number.
func (n Num[D, E]) Trim() Num[D, E] {
	return n.wrap(arith.Trim(n.disc(), n.Seq()))
}

// Extend returns the value encoded in exactly size bytes.  It fails when size
// is less than the minimal size.
func (n Num[D, E]) Extend(size int) (Num[D, E], error) {
	s, err := arith.Extend(n.disc(), n.Seq(), size)
	if err != nil {
		return Num[D, E]{}, err
	}
	return n.wrap(s), nil
}

// IsZero returns whether or not the value is zero.  Both sign-magnitude
// zeros are zero.
func (n Num[D, E]) IsZero() bool {
	return arith.IsZero(n.disc(), n.Seq())
}

// IsNegative returns whether or not the value is less than zero.
func (n Num[D, E]) IsNegative() bool {
	return arith.IsNegative(n.disc(), n.Seq())
}

// Sign returns the sign of the value.
func (n Num[D, E]) Sign() arith.Sign {
	return arith.SignOf(n.disc(), n.Seq())
}

// BitLen returns the number of bits needed to represent the absolute value.
func (n Num[D, E]) BitLen() uint {
	return arith.BitLen(n.disc(), n.Seq())
}

// Cmp compares the values of n and m and returns -1, 0, or 1.
func (n Num[D, E]) Cmp(m Num[D, E]) int {
	return arith.Compare(n.disc(), n.Seq(), m.Seq())
}

// Equal returns whether or not n and m have the same value regardless of their
// encodings.
func (n Num[D, E]) Equal(m Num[D, E]) bool {
	return arith.Equal(n.disc(), n.Seq(), m.Seq())
}

// Identical returns whether or not n and m have byte for byte identical
// encodings.
func (n Num[D, E]) Identical(m Num[D, E]) bool {
	return words.Identical(n.Seq(), m.Seq())
}

// CmpUint64 compares the value with v and returns -1, 0, or 1.
func (n Num[D, E]) CmpUint64(v uint64) int {
	return arith.CmpUint64(n.disc(), n.Seq(), v)
}

// CmpInt64 compares the value with v and returns -1, 0, or 1.
func (n Num[D, E]) CmpInt64(v int64) int {
	return arith.CmpInt64(n.disc(), n.Seq(), v)
}

// Add returns n + m.
func (n Num[D, E]) Add(m Num[D, E]) Num[D, E] {
	return n.wrap(arith.Add(n.disc(), n.Seq(), m.Seq()))
}

// Sub returns n - m.  Natural subtraction saturates at zero.
func (n Num[D, E]) Sub(m Num[D, E]) Num[D, E] {
	if n.disc() == arith.Unsigned && n.Cmp(m) < 0 {
		log.Tracef("Natural subtraction %v - %v saturated at zero", n, m)
	}
	return n.wrap(arith.Sub(n.disc(), n.Seq(), m.Seq()))
}

// Mul returns n * m.
func (n Num[D, E]) Mul(m Num[D, E]) Num[D, E] {
	return n.wrap(arith.Mul(n.disc(), n.Seq(), m.Seq()))
}

// DivMod returns the quotient and remainder of n / m truncated toward zero.
func (n Num[D, E]) DivMod(m Num[D, E]) (Num[D, E], Num[D, E], error) {
	q, r, err := arith.DivMod(n.disc(), n.Seq(), m.Seq())
	if err != nil {
		return Num[D, E]{}, Num[D, E]{}, err
	}
	return n.wrap(q), n.wrap(r), nil
}

// Div returns the quotient of n / m truncated toward zero.
func (n Num[D, E]) Div(m Num[D, E]) (Num[D, E], error) {
	q, _, err := n.DivMod(m)
	return q, err
}

// Mod returns the remainder of n / m, which has the sign of n.
func (n Num[D, E]) Mod(m Num[D, E]) (Num[D, E], error) {
	_, r, err := n.DivMod(m)
	return r, err
}

// Lsh returns n << bits.
func (n Num[D, E]) Lsh(bits uint) Num[D, E] {
	return n.wrap(arith.Lsh(n.disc(), n.Seq(), bits))
}

// Rsh returns n >> bits.  Two's complement values shift arithmetically while
// sign-magnitude values shift their magnitude.
func (n Num[D, E]) Rsh(bits uint) Num[D, E] {
	return n.wrap(arith.Rsh(n.disc(), n.Seq(), bits))
}

// Increment returns n + 1.
func (n Num[D, E]) Increment() Num[D, E] {
	return n.wrap(arith.Increment(n.disc(), n.Seq()))
}

// Decrement returns n - 1.  Decrementing natural zero returns zero.
func (n Num[D, E]) Decrement() Num[D, E] {
	return n.wrap(arith.Decrement(n.disc(), n.Seq()))
}

// Negate returns -n.  Natural numbers negate to zero.
func (n Num[D, E]) Negate() Num[D, E] {
	return n.wrap(arith.Negate(n.disc(), n.Seq()))
}

// Abs returns the absolute value of n.
func (n Num[D, E]) Abs() Num[D, E] {
	return n.wrap(arith.Abs(n.disc(), n.Seq()))
}

// And returns the bitwise and of n and m.
func (n Num[D, E]) And(m Num[D, E]) Num[D, E] {
	return n.wrap(arith.And(n.disc(), n.Seq(), m.Seq()))
}

// Or returns the bitwise or of n and m.
func (n Num[D, E]) Or(m Num[D, E]) Num[D, E] {
	return n.wrap(arith.Or(n.disc(), n.Seq(), m.Seq()))
}

// Xor returns the bitwise exclusive or of n and m.
func (n Num[D, E]) Xor(m Num[D, E]) Num[D, E] {
	return n.wrap(arith.Xor(n.disc(), n.Seq(), m.Seq()))
}

// Not returns the bitwise complement of n.  Natural numbers complement every
// byte of their current encoding.
func (n Num[D, E]) Not() Num[D, E] {
	return n.wrap(arith.Not(n.disc(), n.Seq()))
}

// convert re-encodes n under another discipline with the same endianness.
func convert[To, From arith.Rule, E words.Order](n Num[From, E]) (Num[To, E], error) {
	s, err := arith.Convert(arith.DisciplineOf[From](), arith.DisciplineOf[To](),
		n.Seq())
	if err != nil {
		return Num[To, E]{}, err
	}
	return FromSeq[To, E](s), nil
}

// ToTwos returns the minimal two's complement encoding of n.
func ToTwos[D arith.Rule, E words.Order](n Num[D, E]) Num[arith.Twos, E] {
	r, _ := convert[arith.Twos](n)
	return r
}

// ToSignMag returns the minimal sign-magnitude encoding of n.
func ToSignMag[D arith.Rule, E words.Order](n Num[D, E]) Num[arith.SignMag, E] {
	r, _ := convert[arith.SignMag](n)
	return r
}

// ToNat returns the minimal natural encoding of n.  It fails for negative
// values.
func ToNat[D arith.Rule, E words.Order](n Num[D, E]) (Num[arith.Nat, E], error) {
	return convert[arith.Nat](n)
}

// ToBigEndian returns n encoded with big endian byte order.
func ToBigEndian[D arith.Rule, E words.Order](n Num[D, E]) Num[D, words.Big] {
	return FromSeq[D, words.Big](n.Seq())
}

// ToLittleEndian returns n encoded with little endian byte order.
func ToLittleEndian[D arith.Rule, E words.Order](n Num[D, E]) Num[D, words.Little] {
	return FromSeq[D, words.Little](n.Seq())
}
