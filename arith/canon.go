// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arith

import (
	"fmt"

	"github.com/decred/wordnum/words"
)

// MinimalSize returns the number of words in the shortest encoding of the
// value under the discipline.
//
// The rules per discipline are:
//
//   - Unsigned: most significant zero words are dropped, so zero is empty
//   - Two's complement: a most significant 0x00 word is dropped while the next
//     word has a clear top bit and an all ones word is dropped while the next
//     word has a set top bit, so the sign never changes
//   - Sign-magnitude: when the most significant word holds nothing but the
//     sign flag, the zero words below it are dropped and one zero word is kept
//     only when the first nonzero word would otherwise collide with the flag
func MinimalSize[W words.Word](d Discipline, s words.Seq[W]) int {
	n := s.Len()
	top, ones := words.TopBit[W](), ^W(0)
	switch d {
	case Unsigned:
		for n > 0 && s.Word(n-1) == 0 {
			n--
		}
		return n

	case TwosComplement:
		for n > 0 {
			t := s.Word(n - 1)
			if t == 0 && (n == 1 || s.Word(n-2)&top == 0) {
				n--
				continue
			}
			if t == ones && n > 1 && s.Word(n-2)&top != 0 {
				n--
				continue
			}
			break
		}
		return n

	case SignMagnitude:
		if n == 0 || s.Word(n-1)&^top != 0 {
			return n
		}
		i := n - 2
		for i >= 0 && s.Word(i) == 0 {
			i--
		}
		switch {
		case i < 0:
			return 0
		case s.Word(i)&top != 0:
			return i + 2
		}
		return i + 1
	}
	panic(fmt.Sprintf("arith: unknown discipline %v", d))
}

// IsMinimal returns whether or not the sequence is the shortest encoding of its
// value.
func IsMinimal[W words.Word](d Discipline, s words.Seq[W]) bool {
	return MinimalSize(d, s) == s.Len()
}

// Trim returns the shortest encoding of the value.  For sign-magnitude the
// sign flag moves to the new most significant word, and both zeros trim to the
// empty sequence.
func Trim[W words.Word](d Discipline, s words.Seq[W]) words.Seq[W] {
	m := MinimalSize(d, s)
	r := s.Resize(m)
	if d == SignMagnitude && m > 0 && m < s.Len() && HasSignFlag(d, s) {
		r.SetWord(m-1, r.Word(m-1)|words.TopBit[W]())
	}
	return r
}

// Extend returns the encoding of the value with exactly n words.  It is the
// inverse of Trim: the new most significant words are zero for unsigned and
// non-negative values, all ones for negative two's complement values, and zero
// with the sign flag moved to the new most significant word for negative
// sign-magnitude values.
//
// It fails with ErrInvalidWidth when n is less than the minimal size.
func Extend[W words.Word](d Discipline, s words.Seq[W], n int) (words.Seq[W], error) {
	m := MinimalSize(d, s)
	if n < m {
		str := fmt.Sprintf("cannot extend %v value %v to %d words since its "+
			"minimal size is %d", d, s, n, m)
		return words.Seq[W]{}, MakeError(ErrInvalidWidth, str)
	}

	t := Trim(d, s)
	r := t.Resize(n)
	if m == 0 || n == m {
		return r, nil
	}
	top := words.TopBit[W]()
	switch d {
	case TwosComplement:
		if t.Top()&top != 0 {
			for i := m; i < n; i++ {
				r.SetWord(i, ^W(0))
			}
		}

	case SignMagnitude:
		if t.Top()&top != 0 {
			r.SetWord(m-1, r.Word(m-1)&^top)
			r.SetWord(n-1, top)
		}
	}
	return r, nil
}

// Wrap returns the value reduced to exactly n words.  Values that fit are
// extended and values that do not keep their n least significant words, which
// is arithmetic modulo 2^(n*w) for the unsigned and two's complement
// disciplines.
func Wrap[W words.Word](d Discipline, s words.Seq[W], n int) words.Seq[W] {
	if Fits(d, s, n) {
		r, _ := Extend(d, s, n)
		return r
	}
	return s.Resize(n)
}

// Fits returns whether or not the value can be encoded in n words.
func Fits[W words.Word](d Discipline, s words.Seq[W], n int) bool {
	return MinimalSize(d, s) <= n
}
