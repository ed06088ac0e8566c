// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

import (
	"fmt"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/words"
)

// Signedness is the set of sign disciplines a fixed precision integer may use.
type Signedness interface {
	arith.Nat | arith.Twos
	arith.Rule
}

// Size is implemented by the type level word counts.
type Size interface {
	Words() int
}

// Word counts usable as the size parameter of a Bounded.
type (
	Size1  struct{}
	Size2  struct{}
	Size4  struct{}
	Size8  struct{}
	Size10 struct{}
	Size16 struct{}
	Size20 struct{}
	Size32 struct{}
	Size64 struct{}
)

func (Size1) Words() int  { return 1 }
func (Size2) Words() int  { return 2 }
func (Size4) Words() int  { return 4 }
func (Size8) Words() int  { return 8 }
func (Size10) Words() int { return 10 }
func (Size16) Words() int { return 16 }
func (Size20) Words() int { return 20 }
func (Size32) Words() int { return 32 }
func (Size64) Words() int { return 64 }

// Bounded is a fixed precision integer of S words of type W stored in the
// order E and interpreted with the discipline D.
//
// The zero value is a valid zero.  Values are immutable and every method
// returns a new Bounded.
type Bounded[D Signedness, E words.Order, S Size, W words.Word] struct {
	// w is either nil, which represents zero, or exactly S.Words() words in
	// storage order.
	w []W
}

// Fixed precision integer aliases with byte words in big endian order.
type (
	U8   = Bounded[arith.Nat, words.Big, Size1, byte]
	U16  = Bounded[arith.Nat, words.Big, Size2, byte]
	U32  = Bounded[arith.Nat, words.Big, Size4, byte]
	U64  = Bounded[arith.Nat, words.Big, Size8, byte]
	U80  = Bounded[arith.Nat, words.Big, Size10, byte]
	U128 = Bounded[arith.Nat, words.Big, Size16, byte]
	U160 = Bounded[arith.Nat, words.Big, Size20, byte]
	U256 = Bounded[arith.Nat, words.Big, Size32, byte]
	U512 = Bounded[arith.Nat, words.Big, Size64, byte]

	I8   = Bounded[arith.Twos, words.Big, Size1, byte]
	I16  = Bounded[arith.Twos, words.Big, Size2, byte]
	I32  = Bounded[arith.Twos, words.Big, Size4, byte]
	I64  = Bounded[arith.Twos, words.Big, Size8, byte]
	I128 = Bounded[arith.Twos, words.Big, Size16, byte]
	I160 = Bounded[arith.Twos, words.Big, Size20, byte]
	I256 = Bounded[arith.Twos, words.Big, Size32, byte]
	I512 = Bounded[arith.Twos, words.Big, Size64, byte]
)

// Little endian and 64-bit word variants.
type (
	U256LE = Bounded[arith.Nat, words.Little, Size32, byte]
	I256LE = Bounded[arith.Twos, words.Little, Size32, byte]
	U128W  = Bounded[arith.Nat, words.Little, Size2, uint64]
	U256W  = Bounded[arith.Nat, words.Little, Size4, uint64]
	I256W  = Bounded[arith.Twos, words.Little, Size4, uint64]
	U512W  = Bounded[arith.Nat, words.Little, Size8, uint64]
)

func width[S Size]() int {
	var s S
	return s.Words()
}

func (x Bounded[D, E, S, W]) disc() arith.Discipline {
	return arith.DisciplineOf[D]()
}

// Seq returns the value as a word sequence of exactly Width words.
func (x Bounded[D, E, S, W]) Seq() words.Seq[W] {
	e := words.EndianOf[E]()
	if x.w == nil {
		return words.New[W](e, width[S]())
	}
	return words.FromWords(e, x.w)
}

// with wraps a sequence that already holds Width words.
func (x Bounded[D, E, S, W]) with(s words.Seq[W]) Bounded[D, E, S, W] {
	return Bounded[D, E, S, W]{w: s.WithEndian(words.EndianOf[E]()).Words()}
}

// fit returns the value of s, which may have any width, or a range error when
// it does not fit.
func (x Bounded[D, E, S, W]) fit(s words.Seq[W]) (Bounded[D, E, S, W], error) {
	d := x.disc()
	r, err := arith.ConvertWidth(d, d, s, width[S]())
	if err != nil {
		return Bounded[D, E, S, W]{}, err
	}
	return x.with(r), nil
}

// wrap returns the value of s reduced to Width words.
func (x Bounded[D, E, S, W]) wrap(s words.Seq[W]) Bounded[D, E, S, W] {
	return x.with(arith.Wrap(x.disc(), s, width[S]()))
}

// Width returns the number of words in the value.
func (x Bounded[D, E, S, W]) Width() int {
	return width[S]()
}

// Bits returns the precision of the value in bits.
func (x Bounded[D, E, S, W]) Bits() uint {
	return uint(width[S]()) * words.Bits[W]()
}

// Discipline returns the sign discipline of the value.
func (x Bounded[D, E, S, W]) Discipline() arith.Discipline {
	return x.disc()
}

// Max returns the largest value representable by the type.
func (x Bounded[D, E, S, W]) Max() Bounded[D, E, S, W] {
	n := width[S]()
	s := words.New[W](words.EndianOf[E](), n)
	for i := 0; i < n; i++ {
		s.SetWord(i, ^W(0))
	}
	if x.disc() == arith.TwosComplement {
		s.SetWord(n-1, ^W(0)>>1)
	}
	return x.with(s)
}

// Min returns the smallest value representable by the type.
func (x Bounded[D, E, S, W]) Min() Bounded[D, E, S, W] {
	n := width[S]()
	s := words.New[W](words.EndianOf[E](), n)
	if x.disc() == arith.TwosComplement {
		s.SetWord(n-1, words.TopBit[W]())
	}
	return x.with(s)
}

// IsZero returns whether or not the value is zero.
func (x Bounded[D, E, S, W]) IsZero() bool {
	for _, w := range x.w {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsNegative returns whether or not the value is less than zero.
func (x Bounded[D, E, S, W]) IsNegative() bool {
	return arith.IsNegative(x.disc(), x.Seq())
}

// Sign returns the sign of the value.
func (x Bounded[D, E, S, W]) Sign() arith.Sign {
	return arith.SignOf(x.disc(), x.Seq())
}

// BitLen returns the number of bits required to represent the absolute value.
func (x Bounded[D, E, S, W]) BitLen() uint {
	return arith.BitLen(x.disc(), x.Seq())
}

// Cmp compares x and y and returns -1, 0, or 1.
func (x Bounded[D, E, S, W]) Cmp(y Bounded[D, E, S, W]) int {
	return arith.Compare(x.disc(), x.Seq(), y.Seq())
}

// Equal returns whether or not x and y are the same value.
func (x Bounded[D, E, S, W]) Equal(y Bounded[D, E, S, W]) bool {
	return x.Cmp(y) == 0
}

// CmpUint64 compares the value with v and returns -1, 0, or 1.
func (x Bounded[D, E, S, W]) CmpUint64(v uint64) int {
	return arith.CmpUint64(x.disc(), x.Seq(), v)
}

// CmpInt64 compares the value with v and returns -1, 0, or 1.
func (x Bounded[D, E, S, W]) CmpInt64(v int64) int {
	return arith.CmpInt64(x.disc(), x.Seq(), v)
}

// Add returns x + y modulo 2^Bits.
func (x Bounded[D, E, S, W]) Add(y Bounded[D, E, S, W]) Bounded[D, E, S, W] {
	return x.with(arith.AddWrap(x.Seq(), y.Seq()))
}

// Sub returns x - y modulo 2^Bits.
func (x Bounded[D, E, S, W]) Sub(y Bounded[D, E, S, W]) Bounded[D, E, S, W] {
	return x.with(arith.SubWrap(x.Seq(), y.Seq()))
}

// Mul returns x * y modulo 2^Bits.
func (x Bounded[D, E, S, W]) Mul(y Bounded[D, E, S, W]) Bounded[D, E, S, W] {
	return x.with(arith.MulWrap(x.Seq(), y.Seq()))
}

// Negate returns -x modulo 2^Bits.  Negating the minimum signed value
// produces itself.
func (x Bounded[D, E, S, W]) Negate() Bounded[D, E, S, W] {
	return x.with(arith.NegateWrap(x.Seq()))
}

// Abs returns the absolute value of x.  The absolute value of the minimum
// signed value is itself.
func (x Bounded[D, E, S, W]) Abs() Bounded[D, E, S, W] {
	if x.IsNegative() {
		return x.Negate()
	}
	return x
}

// DivMod returns the quotient and remainder of x / y truncated toward zero.
// Dividing the minimum signed value by -1 wraps to the minimum value.
func (x Bounded[D, E, S, W]) DivMod(y Bounded[D, E, S, W]) (Bounded[D, E, S, W], Bounded[D, E, S, W], error) {
	q, r, err := arith.DivMod(x.disc(), x.Seq(), y.Seq())
	if err != nil {
		return Bounded[D, E, S, W]{}, Bounded[D, E, S, W]{}, err
	}
	return x.wrap(q), x.wrap(r), nil
}

// Div returns the quotient of x / y truncated toward zero.
func (x Bounded[D, E, S, W]) Div(y Bounded[D, E, S, W]) (Bounded[D, E, S, W], error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, which has the sign of x.
func (x Bounded[D, E, S, W]) Mod(y Bounded[D, E, S, W]) (Bounded[D, E, S, W], error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Lsh returns x << bits modulo 2^Bits.
func (x Bounded[D, E, S, W]) Lsh(bits uint) Bounded[D, E, S, W] {
	return x.with(arith.LshWrap(x.Seq(), bits))
}

// Rsh returns x >> bits.  Signed values shift in copies of the sign bit.
func (x Bounded[D, E, S, W]) Rsh(bits uint) Bounded[D, E, S, W] {
	return x.with(arith.RshWrap(x.disc(), x.Seq(), bits))
}

// And returns the bitwise and of x and y.
func (x Bounded[D, E, S, W]) And(y Bounded[D, E, S, W]) Bounded[D, E, S, W] {
	return x.with(arith.BitwiseWrap(x.Seq(), y.Seq(), func(a, b W) W {
		return a & b
	}))
}

// Or returns the bitwise or of x and y.
func (x Bounded[D, E, S, W]) Or(y Bounded[D, E, S, W]) Bounded[D, E, S, W] {
	return x.with(arith.BitwiseWrap(x.Seq(), y.Seq(), func(a, b W) W {
		return a | b
	}))
}

// Xor returns the bitwise exclusive or of x and y.
func (x Bounded[D, E, S, W]) Xor(y Bounded[D, E, S, W]) Bounded[D, E, S, W] {
	return x.with(arith.BitwiseWrap(x.Seq(), y.Seq(), func(a, b W) W {
		return a ^ b
	}))
}

// Not returns the bitwise complement of x.
func (x Bounded[D, E, S, W]) Not() Bounded[D, E, S, W] {
	return x.with(arith.NotWrap(x.Seq()))
}

// one returns the value one.
func (x Bounded[D, E, S, W]) one() Bounded[D, E, S, W] {
	s := words.New[W](words.EndianOf[E](), width[S]())
	s.SetWord(0, 1)
	return x.with(s)
}

// Increment returns x + 1.  It fails with ErrBoundary when x is the maximum
// value.
func (x Bounded[D, E, S, W]) Increment() (Bounded[D, E, S, W], error) {
	if x.Equal(x.Max()) {
		str := fmt.Sprintf("cannot increment the maximum value %v", x)
		return Bounded[D, E, S, W]{}, arith.MakeError(arith.ErrBoundary, str)
	}
	return x.Add(x.one()), nil
}

// Decrement returns x - 1.  It fails with ErrBoundary when x is the minimum
// value.
func (x Bounded[D, E, S, W]) Decrement() (Bounded[D, E, S, W], error) {
	if x.Equal(x.Min()) {
		str := fmt.Sprintf("cannot decrement the minimum value %v", x)
		return Bounded[D, E, S, W]{}, arith.MakeError(arith.ErrBoundary, str)
	}
	return x.Sub(x.one()), nil
}
