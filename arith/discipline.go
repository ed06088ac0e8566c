// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arith

import (
	"fmt"

	"github.com/decred/wordnum/words"
)

// Discipline identifies the rule used to interpret the sign of a word
// sequence.
type Discipline uint8

const (
	// Unsigned interprets every bit as magnitude.  Values are never negative.
	Unsigned Discipline = iota

	// TwosComplement interprets the most significant bit as the sign bit of a
	// two's complement number.  There is exactly one representation of zero.
	TwosComplement

	// SignMagnitude interprets the most significant bit as a sign flag and the
	// remaining bits as the magnitude.  Zero has a positive and a negative
	// representation which compare equal.
	SignMagnitude
)

// String returns the discipline as a human-readable name.
func (d Discipline) String() string {
	switch d {
	case Unsigned:
		return "unsigned"
	case TwosComplement:
		return "twos"
	case SignMagnitude:
		return "signmag"
	}
	return fmt.Sprintf("Discipline(%d)", uint8(d))
}

// ParseDiscipline returns the discipline for one of the names produced by
// Discipline.String.
func ParseDiscipline(s string) (Discipline, error) {
	switch s {
	case "unsigned":
		return Unsigned, nil
	case "twos":
		return TwosComplement, nil
	case "signmag":
		return SignMagnitude, nil
	}
	str := fmt.Sprintf("unknown sign discipline %q", s)
	return 0, MakeError(ErrInvalidString, str)
}

// Rule is implemented by the type level discipline markers so that value
// types carry their discipline as a type parameter.
type Rule interface {
	Discipline() Discipline
}

// Nat marks the unsigned discipline.
type Nat struct{}

// Discipline returns Unsigned.
func (Nat) Discipline() Discipline { return Unsigned }

// Twos marks the two's complement discipline.
type Twos struct{}

// Discipline returns TwosComplement.
func (Twos) Discipline() Discipline { return TwosComplement }

// SignMag marks the sign-magnitude discipline.
type SignMag struct{}

// Discipline returns SignMagnitude.
func (SignMag) Discipline() Discipline { return SignMagnitude }

// DisciplineOf returns the discipline selected by the marker R.
func DisciplineOf[R Rule]() Discipline {
	var r R
	return r.Discipline()
}

// Sign is the tri-state sign of a value.
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// String returns the sign as a human-readable name.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	}
	return fmt.Sprintf("Sign(%d)", int8(s))
}

// split separates a sequence into its sign and normalized magnitude according
// to the discipline.  A sign-magnitude negative zero reports negative with an
// empty magnitude.
func split[W words.Word](d Discipline, s words.Seq[W]) (bool, nat[W]) {
	mag := natFromSeq(s)
	if len(mag) == 0 {
		return false, nil
	}
	top := words.TopBit[W]()
	switch d {
	case Unsigned:
		return false, mag.norm()

	case TwosComplement:
		if mag[len(mag)-1]&top == 0 {
			return false, mag.norm()
		}
		return true, natNegWidth(mag, len(mag)).norm()

	case SignMagnitude:
		neg := mag[len(mag)-1]&top != 0
		mag[len(mag)-1] &^= top
		return neg, mag.norm()
	}
	panic(fmt.Sprintf("arith: unknown discipline %v", d))
}

// join builds the minimal sequence for the passed sign and magnitude.  A
// negative magnitude has no unsigned encoding, so unsigned saturates to zero.
func join[W words.Word](d Discipline, e words.Endian, neg bool, mag nat[W]) words.Seq[W] {
	mag = mag.norm()
	if len(mag) == 0 {
		return words.New[W](e, 0)
	}
	top := words.TopBit[W]()
	n := len(mag)
	switch d {
	case Unsigned:
		if neg {
			return words.New[W](e, 0)
		}
		return mag.toSeq(e, n)

	case TwosComplement:
		if !neg {
			if mag[n-1]&top != 0 {
				n++
			}
			return mag.toSeq(e, n)
		}

		// The most negative value at a width has a magnitude of exactly the
		// top bit followed by zeros, so anything larger needs another word.
		if mag[n-1] > top || (mag[n-1] == top && len(mag[:n-1].norm()) != 0) {
			n++
		}
		return Trim(d, natNegWidth(mag, n).toSeq(e, n))

	case SignMagnitude:
		if mag[n-1]&top != 0 {
			n++
		}
		s := mag.toSeq(e, n)
		if neg {
			s.SetWord(n-1, s.Word(n-1)|top)
		}
		return s
	}
	panic(fmt.Sprintf("arith: unknown discipline %v", d))
}

// IsZero returns whether or not the sequence represents zero.  Both
// sign-magnitude zeros are zero.
func IsZero[W words.Word](d Discipline, s words.Seq[W]) bool {
	n := s.Len()
	for i := 0; i < n; i++ {
		w := s.Word(i)
		if d == SignMagnitude && i == n-1 {
			w &^= words.TopBit[W]()
		}
		if w != 0 {
			return false
		}
	}
	return true
}

// IsNegative returns whether or not the sequence represents a value less than
// zero.  Unsigned values are never negative and a sign-magnitude negative zero
// is not negative.
func IsNegative[W words.Word](d Discipline, s words.Seq[W]) bool {
	if s.Len() == 0 {
		return false
	}
	switch d {
	case TwosComplement:
		return s.Top()&words.TopBit[W]() != 0
	case SignMagnitude:
		return s.Top()&words.TopBit[W]() != 0 && !IsZero(d, s)
	}
	return false
}

// IsPositive returns whether or not the sequence represents a value greater
// than zero.
func IsPositive[W words.Word](d Discipline, s words.Seq[W]) bool {
	return !IsZero(d, s) && !IsNegative(d, s)
}

// SignOf returns the sign of the value represented by the sequence.
func SignOf[W words.Word](d Discipline, s words.Seq[W]) Sign {
	switch {
	case IsZero(d, s):
		return Zero
	case IsNegative(d, s):
		return Negative
	}
	return Positive
}

// HasSignFlag reports whether the sign bit of the most significant word is
// set.  Unlike IsNegative it is true for a sign-magnitude negative zero.
func HasSignFlag[W words.Word](d Discipline, s words.Seq[W]) bool {
	if d == Unsigned || s.Len() == 0 {
		return false
	}
	return s.Top()&words.TopBit[W]() != 0
}

// Compare returns -1, 0, or 1 depending on whether a is less than, equal to,
// or greater than b.  The operands may have different widths and
// endiannesses.
func Compare[W words.Word](d Discipline, a, b words.Seq[W]) int {
	an, am := split(d, a)
	bn, bm := split(d, b)
	if len(am) == 0 {
		an = false
	}
	if len(bm) == 0 {
		bn = false
	}
	if an != bn {
		if an {
			return -1
		}
		return 1
	}
	c := natCmp(am, bm)
	if an {
		return -c
	}
	return c
}

// Equal returns whether or not the sequences represent the same value.
func Equal[W words.Word](d Discipline, a, b words.Seq[W]) bool {
	return Compare(d, a, b) == 0
}

// Abs returns the minimal encoding of the absolute value.
func Abs[W words.Word](d Discipline, s words.Seq[W]) words.Seq[W] {
	_, mag := split(d, s)
	return join(d, s.Endian(), false, mag)
}

// BitLen returns the number of bits required to represent the magnitude.
func BitLen[W words.Word](d Discipline, s words.Seq[W]) uint {
	_, mag := split(d, s)
	return natBitLen(mag)
}

// Negate returns the minimal encoding of the negated value.
//
// Unsigned values have no negative, so the unsigned negation of any value
// saturates to zero.  Sign-magnitude negation flips the sign flag, so negating
// a positive zero produces the one word negative zero while negating a negative
// zero produces the minimal positive zero.
func Negate[W words.Word](d Discipline, s words.Seq[W]) words.Seq[W] {
	switch d {
	case Unsigned:
		return words.New[W](s.Endian(), 0)

	case SignMagnitude:
		top := words.TopBit[W]()
		if IsZero(d, s) {
			if HasSignFlag(d, s) {
				return words.New[W](s.Endian(), 0)
			}
			r := words.New[W](s.Endian(), 1)
			r.SetWord(0, top)
			return r
		}
		r := s.Clone()
		r.SetWord(r.Len()-1, r.Top()^top)
		return Trim(d, r)
	}

	neg, mag := split(d, s)
	return join(d, s.Endian(), !neg, mag)
}

// Convert re-encodes a sequence from one discipline to another and returns the
// minimal encoding.  A negative value cannot be converted to unsigned.
func Convert[W words.Word](from, to Discipline, s words.Seq[W]) (words.Seq[W], error) {
	neg, mag := split(from, s)
	if neg && len(mag) != 0 && to == Unsigned {
		str := fmt.Sprintf("negative %v value %v has no unsigned encoding",
			from, s)
		return words.Seq[W]{}, MakeError(ErrValueTooSmall, str)
	}
	return join(to, s.Endian(), neg, mag), nil
}

// ConvertWidth re-encodes a sequence from one discipline to another with
// exactly n words.  It fails when the value does not fit.
func ConvertWidth[W words.Word](from, to Discipline, s words.Seq[W], n int) (words.Seq[W], error) {
	c, err := Convert(from, to, s)
	if err != nil {
		return words.Seq[W]{}, err
	}
	if !Fits(to, c, n) {
		kind := ErrValueTooLarge
		if IsNegative(to, c) {
			kind = ErrValueTooSmall
		}
		str := fmt.Sprintf("%v value %v requires %d words which exceeds %d",
			to, s, MinimalSize(to, c), n)
		return words.Seq[W]{}, MakeError(kind, str)
	}
	return Extend(to, c, n)
}
