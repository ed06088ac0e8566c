// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/dcrd/math/uint256"
	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/bytenum"
	"github.com/decred/wordnum/internal/digits"
	"github.com/decred/wordnum/words"
	holiman "github.com/holiman/uint256"
)

// fromByteSeq returns the value of a byte sequence of any width or a range
// error when it does not fit.
func (x Bounded[D, E, S, W]) fromByteSeq(b words.Seq[byte]) (Bounded[D, E, S, W], error) {
	d := x.disc()
	size := width[S]() * words.ByteSize[W]()
	ext, err := arith.ConvertWidth(d, d, b, size)
	if err != nil {
		return Bounded[D, E, S, W]{}, err
	}
	return x.with(words.FromBytes[W](ext.Endian(), ext.Bytes())), nil
}

// SetUint64 returns the value v.  It fails when v does not fit.
func (x Bounded[D, E, S, W]) SetUint64(v uint64) (Bounded[D, E, S, W], error) {
	return x.fit(arith.FromUint64[W](x.disc(), words.EndianOf[E](), v))
}

// SetInt64 returns the value v.  It fails when v does not fit, which includes
// every negative value for unsigned types.
func (x Bounded[D, E, S, W]) SetInt64(v int64) (Bounded[D, E, S, W], error) {
	s, err := arith.FromInt64[W](x.disc(), words.EndianOf[E](), v)
	if err != nil {
		return Bounded[D, E, S, W]{}, err
	}
	return x.fit(s)
}

// SetBigInt returns the value v.  It fails when v does not fit.
func (x Bounded[D, E, S, W]) SetBigInt(v *big.Int) (Bounded[D, E, S, W], error) {
	s, err := arith.FromBig[W](x.disc(), words.EndianOf[E](), v)
	if err != nil {
		return Bounded[D, E, S, W]{}, err
	}
	return x.fit(s)
}

// setBytes interprets exactly Width words worth of bytes in the order e.
func (x Bounded[D, E, S, W]) setBytes(e words.Endian, b []byte) (Bounded[D, E, S, W], error) {
	if size := width[S]() * words.ByteSize[W](); len(b) != size {
		str := fmt.Sprintf("byte string of length %d does not match the "+
			"%d byte width", len(b), size)
		return Bounded[D, E, S, W]{}, arith.MakeError(arith.ErrInvalidLength, str)
	}
	return x.with(words.FromBytes[W](e, b)), nil
}

// SetBytes interprets b as a big endian encoding of the value.  It must be
// exactly the width of the type in bytes.
func (x Bounded[D, E, S, W]) SetBytes(b []byte) (Bounded[D, E, S, W], error) {
	return x.setBytes(words.BigEndian, b)
}

// SetBytesLE interprets b as a little endian encoding of the value.  It must
// be exactly the width of the type in bytes.
func (x Bounded[D, E, S, W]) SetBytesLE(b []byte) (Bounded[D, E, S, W], error) {
	return x.setBytes(words.LittleEndian, b)
}

// SetNum returns the value of a resizable integer.  It fails when the minimal
// encoding of n is wider than the type.
func (x Bounded[D, E, S, W]) SetNum(n bytenum.Num[D, E]) (Bounded[D, E, S, W], error) {
	return x.fromByteSeq(n.Seq())
}

// SetString parses s and returns its value.
//
// A string matching 0|-?[1-9][0-9]* is a decimal literal whose value must fit
// the type.  Anything else must be a big endian hex literal prefixed with 0x
// with exactly two digits per byte of width in a single letter case.
func (x Bounded[D, E, S, W]) SetString(s string) (Bounded[D, E, S, W], error) {
	if digits.IsSignedDecimal(s) {
		n, err := bytenum.Num[D, E]{}.SetString(s)
		if err != nil {
			return Bounded[D, E, S, W]{}, err
		}
		return x.SetNum(n)
	}

	ds, ok := strings.CutPrefix(s, "0x")
	if !ok {
		str := fmt.Sprintf("literal %q is neither decimal nor 0x prefixed hex", s)
		return Bounded[D, E, S, W]{}, arith.MakeError(arith.ErrInvalidString, str)
	}
	if _, ok := digits.HexCase(ds); !ok || ds == "" {
		str := fmt.Sprintf("malformed literal %q", s)
		return Bounded[D, E, S, W]{}, arith.MakeError(arith.ErrInvalidString, str)
	}
	if want := 2 * width[S]() * words.ByteSize[W](); len(ds) != want {
		str := fmt.Sprintf("hex literal %q has %d digits instead of %d", s,
			len(ds), want)
		return Bounded[D, E, S, W]{}, arith.MakeError(arith.ErrInvalidLength, str)
	}
	b, _ := hex.DecodeString(ds)
	return x.SetBytes(b)
}

// Read parses s like SetString and reports whether or not it succeeded
// instead of returning an error.
func (x Bounded[D, E, S, W]) Read(s string) (Bounded[D, E, S, W], bool) {
	v, err := x.SetString(s)
	if err != nil {
		return Bounded[D, E, S, W]{}, false
	}
	return v, true
}

// Uint64 returns the value as a uint64 or an error when it does not fit.
func (x Bounded[D, E, S, W]) Uint64() (uint64, error) {
	return arith.ToUint64(x.disc(), x.Seq())
}

// Int64 returns the value as an int64 or an error when it does not fit.
func (x Bounded[D, E, S, W]) Int64() (int64, error) {
	return arith.ToInt64(x.disc(), x.Seq())
}

// BigInt returns the value as a big integer.
func (x Bounded[D, E, S, W]) BigInt() *big.Int {
	return arith.ToBig(x.disc(), x.Seq())
}

// Bytes returns the big endian encoding of the value in exactly the width of
// the type in bytes.
func (x Bounded[D, E, S, W]) Bytes() []byte {
	return x.Seq().WithEndian(words.BigEndian).Bytes()
}

// BytesLE returns the little endian encoding of the value in exactly the width
// of the type in bytes.
func (x Bounded[D, E, S, W]) BytesLE() []byte {
	return x.Seq().WithEndian(words.LittleEndian).Bytes()
}

// Words returns a copy of the words of the value in storage order.
func (x Bounded[D, E, S, W]) Words() []W {
	return x.Seq().Words()
}

// Num returns the minimal resizable integer with the same value.
func (x Bounded[D, E, S, W]) Num() bytenum.Num[D, E] {
	b := words.FromWords(words.BigEndian, x.Bytes())
	return bytenum.FromSeq[D, E](b).Trim()
}

// Resize returns the value of x in a type with a different word count.  It
// fails when the value does not fit.
func Resize[D Signedness, E words.Order, To Size, W words.Word, From Size](x Bounded[D, E, From, W]) (Bounded[D, E, To, W], error) {
	var r Bounded[D, E, To, W]
	return r.fit(x.Seq())
}

// ToBigEndian returns the value of x stored in big endian order.
func ToBigEndian[D Signedness, E words.Order, S Size, W words.Word](x Bounded[D, E, S, W]) Bounded[D, words.Big, S, W] {
	var r Bounded[D, words.Big, S, W]
	return r.with(x.Seq())
}

// ToLittleEndian returns the value of x stored in little endian order.
func ToLittleEndian[D Signedness, E words.Order, S Size, W words.Word](x Bounded[D, E, S, W]) Bounded[D, words.Little, S, W] {
	var r Bounded[D, words.Little, S, W]
	return r.with(x.Seq())
}

// ToSigned reinterprets an unsigned value as a signed value of the same
// width.  It fails when the value exceeds the maximum signed value.
func ToSigned[E words.Order, S Size, W words.Word](x Bounded[arith.Nat, E, S, W]) (Bounded[arith.Twos, E, S, W], error) {
	var r Bounded[arith.Twos, E, S, W]
	if x.Seq().Top()&words.TopBit[W]() != 0 {
		str := fmt.Sprintf("unsigned value %v exceeds the maximum signed value", x)
		return r, arith.MakeError(arith.ErrValueTooLarge, str)
	}
	return r.with(x.Seq()), nil
}

// ToUnsigned reinterprets a signed value as an unsigned value of the same
// width.  It fails when the value is negative.
func ToUnsigned[E words.Order, S Size, W words.Word](x Bounded[arith.Twos, E, S, W]) (Bounded[arith.Nat, E, S, W], error) {
	var r Bounded[arith.Nat, E, S, W]
	if x.IsNegative() {
		str := fmt.Sprintf("negative value %d has no unsigned encoding", x)
		return r, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	return r.with(x.Seq()), nil
}

// FromUint256 returns the value of a uint256.Uint256.
func FromUint256(n *uint256.Uint256) U256 {
	b := n.Bytes()
	x, _ := U256{}.SetBytes(b[:])
	return x
}

// ToUint256 returns the value as a uint256.Uint256.
func ToUint256(x U256) *uint256.Uint256 {
	var b [32]byte
	copy(b[:], x.Bytes())
	return new(uint256.Uint256).SetBytes(&b)
}

// FromHoliman returns the value of a holiman uint256.Int.
func FromHoliman(n *holiman.Int) U256 {
	b := n.Bytes32()
	x, _ := U256{}.SetBytes(b[:])
	return x
}

// ToHoliman returns the value as a holiman uint256.Int.
func ToHoliman(x U256) *holiman.Int {
	return new(holiman.Int).SetBytes32(x.Bytes())
}
