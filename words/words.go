// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package words

import (
	"fmt"
	"math/bits"
)

// Word is the set of unsigned machine words a sequence may be built from.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the number of bits in a word of type W.
func Bits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// ByteSize returns the number of bytes in a word of type W.
func ByteSize[W Word]() int {
	return int(Bits[W]() / 8)
}

// TopBit returns a word with only its most significant bit set.
func TopBit[W Word]() W {
	return W(1) << (Bits[W]() - 1)
}

// Endian identifies the storage order of the words in a sequence.
type Endian uint8

const (
	// BigEndian stores the most significant word first.
	BigEndian Endian = iota

	// LittleEndian stores the least significant word first.
	LittleEndian
)

// String returns the endianness as a human-readable name.
func (e Endian) String() string {
	switch e {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	}
	return fmt.Sprintf("Endian(%d)", uint8(e))
}

// Order is implemented by the type level endianness markers so that value
// types can carry their storage order as a type parameter.
type Order interface {
	Endian() Endian
}

// Big marks big endian storage.
type Big struct{}

// Endian returns BigEndian.
func (Big) Endian() Endian { return BigEndian }

// Little marks little endian storage.
type Little struct{}

// Endian returns LittleEndian.
func (Little) Endian() Endian { return LittleEndian }

// EndianOf returns the endianness selected by the order marker O.
func EndianOf[O Order]() Endian {
	var o O
	return o.Endian()
}

// Seq is an ordered sequence of words tagged with its storage endianness.
//
// Logical positions always count from the least significant word, so Word(0)
// is the least significant word regardless of how the words are stored.
// Storage positions follow the slice order, so At(0) is the first stored word.
//
// A Seq owns its buffer.  Every method that produces a new sequence copies,
// with the exception of SetWord which writes into the receiver's buffer and is
// intended for building a freshly allocated sequence.
type Seq[W Word] struct {
	w []W
	e Endian
}

// New returns a zero filled sequence of n words with the given endianness.
func New[W Word](e Endian, n int) Seq[W] {
	if n < 0 {
		panic(fmt.Sprintf("words: negative length %d", n))
	}
	return Seq[W]{w: make([]W, n), e: e}
}

// FromWords returns a sequence holding a copy of the passed words, which are
// interpreted in storage order for the given endianness.
func FromWords[W Word](e Endian, ws []W) Seq[W] {
	s := Seq[W]{w: make([]W, len(ws)), e: e}
	copy(s.w, ws)
	return s
}

// FromBytes packs a byte string, interpreted with the given endianness, into a
// sequence of words with the same endianness.  When the length of b is not a
// multiple of the word size, the value is zero extended at its most
// significant end.
func FromBytes[W Word](e Endian, b []byte) Seq[W] {
	wb := ByteSize[W]()
	n := (len(b) + wb - 1) / wb
	s := New[W](e, n)
	for i := 0; i < len(b); i++ {
		// Logical byte position counted from the least significant byte.
		var v byte
		if e == BigEndian {
			v = b[len(b)-1-i]
		} else {
			v = b[i]
		}
		idx := i / wb
		s.SetWord(idx, s.Word(idx)|W(v)<<(8*uint(i%wb)))
	}
	return s
}

// Len returns the number of words in the sequence.
func (s Seq[W]) Len() int {
	return len(s.w)
}

// Endian returns the storage order of the sequence.
func (s Seq[W]) Endian() Endian {
	return s.e
}

// storageIndex converts a logical position to a storage position.
func (s Seq[W]) storageIndex(i int) int {
	if i < 0 || i >= len(s.w) {
		panic(fmt.Sprintf("words: logical index %d out of range [0, %d)", i,
			len(s.w)))
	}
	if s.e == BigEndian {
		return len(s.w) - 1 - i
	}
	return i
}

// Word returns the word at logical position i, where position 0 is the least
// significant word.  It panics when i is out of range.
func (s Seq[W]) Word(i int) W {
	return s.w[s.storageIndex(i)]
}

// SetWord sets the word at logical position i.  It panics when i is out of
// range.
func (s Seq[W]) SetWord(i int, v W) {
	s.w[s.storageIndex(i)] = v
}

// At returns the word at storage position i.  It panics when i is out of
// range.
func (s Seq[W]) At(i int) W {
	if i < 0 || i >= len(s.w) {
		panic(fmt.Sprintf("words: storage index %d out of range [0, %d)", i,
			len(s.w)))
	}
	return s.w[i]
}

// Top returns the most significant word.  It panics on an empty sequence.
func (s Seq[W]) Top() W {
	return s.Word(len(s.w) - 1)
}

// Words returns a copy of the words in storage order.
func (s Seq[W]) Words() []W {
	out := make([]W, len(s.w))
	copy(out, s.w)
	return out
}

// Bytes returns the value as a byte string in the sequence's endianness.  The
// result is always Len() times the word size long.
func (s Seq[W]) Bytes() []byte {
	wb := ByteSize[W]()
	out := make([]byte, len(s.w)*wb)
	for i := 0; i < len(out); i++ {
		v := byte(s.Word(i/wb) >> (8 * uint(i%wb)))
		if s.e == BigEndian {
			out[len(out)-1-i] = v
		} else {
			out[i] = v
		}
	}
	return out
}

// Clone returns a deep copy of the sequence.
func (s Seq[W]) Clone() Seq[W] {
	return FromWords(s.e, s.w)
}

// Resize returns a copy of the sequence holding n words.  Growing fills the
// new most significant positions with zero and shrinking drops the most
// significant words.  The fill is not sign aware; use the canonicalization
// routines for that.
func (s Seq[W]) Resize(n int) Seq[W] {
	r := New[W](s.e, n)
	for i := 0; i < n && i < len(s.w); i++ {
		r.SetWord(i, s.Word(i))
	}
	return r
}

// WithEndian returns the same value stored with the passed endianness.
func (s Seq[W]) WithEndian(e Endian) Seq[W] {
	if e == s.e {
		return s.Clone()
	}
	r := New[W](e, len(s.w))
	for i := range s.w {
		r.SetWord(i, s.Word(i))
	}
	return r
}

// Each calls f for every word in storage order until f returns false.
func (s Seq[W]) Each(f func(i int, w W) bool) {
	for i, w := range s.w {
		if !f(i, w) {
			return
		}
	}
}

// EachReverse calls f for every word in reverse storage order until f returns
// false.
func (s Seq[W]) EachReverse(f func(i int, w W) bool) {
	for i := len(s.w) - 1; i >= 0; i-- {
		if !f(i, s.w[i]) {
			return
		}
	}
}

// Identical reports whether two sequences hold the same words in the same
// order with the same endianness.
func Identical[W Word](a, b Seq[W]) bool {
	if a.e != b.e || len(a.w) != len(b.w) {
		return false
	}
	for i := range a.w {
		if a.w[i] != b.w[i] {
			return false
		}
	}
	return true
}

// String returns the words in storage order as hex with a 0x prefix.
func (s Seq[W]) String() string {
	digits := ByteSize[W]() * 2
	buf := make([]byte, 0, 2+len(s.w)*digits)
	buf = append(buf, "0x"...)
	for _, w := range s.w {
		buf = append(buf, fmt.Sprintf("%0*x", digits, uint64(w))...)
	}
	return string(buf)
}
