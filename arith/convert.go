// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arith

import (
	"fmt"
	"math"
	"math/big"

	"github.com/decred/wordnum/words"
)

// FromUint64 returns the minimal encoding of v.
func FromUint64[W words.Word](d Discipline, e words.Endian, v uint64) words.Seq[W] {
	return join(d, e, false, natFromUint64[W](v))
}

// FromInt64 returns the minimal encoding of v.  Negative values have no
// unsigned encoding.
func FromInt64[W words.Word](d Discipline, e words.Endian, v int64) (words.Seq[W], error) {
	if v >= 0 {
		return FromUint64[W](d, e, uint64(v)), nil
	}
	if d == Unsigned {
		str := fmt.Sprintf("negative value %d has no unsigned encoding", v)
		return words.Seq[W]{}, MakeError(ErrValueTooSmall, str)
	}
	// The magnitude of math.MinInt64 does not fit an int64, so negate in the
	// unsigned domain.
	mag := uint64(^v) + 1
	return join(d, e, true, natFromUint64[W](mag)), nil
}

// ToUint64 returns the value as a uint64.  It fails when the value is negative
// or larger than math.MaxUint64.
func ToUint64[W words.Word](d Discipline, s words.Seq[W]) (uint64, error) {
	neg, mag := split(d, s)
	if neg && len(mag) != 0 {
		str := fmt.Sprintf("%v value %v is negative", d, s)
		return 0, MakeError(ErrValueTooSmall, str)
	}
	v, ok := natToUint64(mag)
	if !ok {
		str := fmt.Sprintf("%v value %v exceeds the maximum uint64", d, s)
		return 0, MakeError(ErrValueTooLarge, str)
	}
	return v, nil
}

// ToInt64 returns the value as an int64.  It fails when the value is outside
// the range of an int64.
func ToInt64[W words.Word](d Discipline, s words.Seq[W]) (int64, error) {
	neg, mag := split(d, s)
	v, ok := natToUint64(mag)
	switch {
	case !neg && (!ok || v > math.MaxInt64):
		str := fmt.Sprintf("%v value %v exceeds the maximum int64", d, s)
		return 0, MakeError(ErrValueTooLarge, str)

	case neg && (!ok || v > 1<<63):
		str := fmt.Sprintf("%v value %v is less than the minimum int64", d, s)
		return 0, MakeError(ErrValueTooSmall, str)

	case neg:
		return int64(-v), nil
	}
	return int64(v), nil
}

// FromBig returns the minimal encoding of the passed big integer.  Negative
// values have no unsigned encoding.
func FromBig[W words.Word](d Discipline, e words.Endian, v *big.Int) (words.Seq[W], error) {
	neg := v.Sign() < 0
	if neg && d == Unsigned {
		str := fmt.Sprintf("negative value %v has no unsigned encoding", v)
		return words.Seq[W]{}, MakeError(ErrValueTooSmall, str)
	}
	mag := natFromSeq(words.FromBytes[W](words.BigEndian, v.Bytes()))
	return join(d, e, neg, mag), nil
}

// ToBig returns the value as a big integer.
func ToBig[W words.Word](d Discipline, s words.Seq[W]) *big.Int {
	neg, mag := split(d, s)
	b := mag.toSeq(words.BigEndian, len(mag)).Bytes()
	v := new(big.Int).SetBytes(b)
	if neg {
		v.Neg(v)
	}
	return v
}

// CmpUint64 compares the value against v without allocating a sequence for v.
func CmpUint64[W words.Word](d Discipline, s words.Seq[W], v uint64) int {
	if IsNegative(d, s) {
		return -1
	}
	if IsZero(d, s) {
		if v == 0 {
			return 0
		}
		return -1
	}
	x, err := ToUint64(d, s)
	if err != nil {
		return 1
	}
	switch {
	case x < v:
		return -1
	case x > v:
		return 1
	}
	return 0
}

// CmpInt64 compares the value against v.
func CmpInt64[W words.Word](d Discipline, s words.Seq[W], v int64) int {
	x, err := ToInt64(d, s)
	if err != nil {
		if IsNegative(d, s) {
			return -1
		}
		return 1
	}
	switch {
	case x < v:
		return -1
	case x > v:
		return 1
	}
	return 0
}
