// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexnum

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/bytenum"
	"github.com/decred/wordnum/internal/digits"
	"github.com/decred/wordnum/words"
)

// FromMagnitude returns the minimal value with the passed sign and magnitude,
// which is given as hex digits without a prefix.  Natural numbers saturate
// negative values to zero.
func FromMagnitude[D arith.Rule](neg bool, mag string, c Case) Int[D] {
	return Int[D]{up: c == Upper}.build(neg, mag)
}

// Magnitude returns the sign of x along with the hex digits of its absolute
// value without leading zeros.
func (x Int[D]) Magnitude() (bool, string) {
	neg, mag := x.sign()
	return neg && mag != "", mag
}

// FromUint64 returns the minimal encoding of v.
func FromUint64[D arith.Rule](v uint64, c Case) Int[D] {
	return FromMagnitude[D](false, strconv.FormatUint(v, 16), c)
}

// FromInt64 returns the minimal encoding of v.  Negative values cannot be
// represented by natural numbers.
func FromInt64[D arith.Rule](v int64, c Case) (Int[D], error) {
	if v < 0 && arith.DisciplineOf[D]() == arith.Unsigned {
		str := fmt.Sprintf("negative value %d has no natural encoding", v)
		return Int[D]{}, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return FromMagnitude[D](v < 0, strconv.FormatUint(mag, 16), c), nil
}

// Uint64 returns the value as a uint64 or an error when it does not fit.
func (x Int[D]) Uint64() (uint64, error) {
	neg, mag := x.Magnitude()
	if neg {
		str := fmt.Sprintf("negative value %v does not fit a uint64", x)
		return 0, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	if len(mag) > 16 {
		str := fmt.Sprintf("value %v does not fit a uint64", x)
		return 0, arith.MakeError(arith.ErrValueTooLarge, str)
	}
	if mag == "" {
		return 0, nil
	}
	v, _ := strconv.ParseUint(mag, 16, 64)
	return v, nil
}

// Int64 returns the value as an int64 or an error when it does not fit.
func (x Int[D]) Int64() (int64, error) {
	neg, mag := x.Magnitude()
	var v uint64
	if len(mag) <= 16 && mag != "" {
		v, _ = strconv.ParseUint(mag, 16, 64)
	}
	switch {
	case neg && (len(mag) > 16 || v > 1<<63):
		str := fmt.Sprintf("value %v does not fit an int64", x)
		return 0, arith.MakeError(arith.ErrValueTooSmall, str)
	case !neg && (len(mag) > 16 || v > 1<<63-1):
		str := fmt.Sprintf("value %v does not fit an int64", x)
		return 0, arith.MakeError(arith.ErrValueTooLarge, str)
	case neg:
		return int64(-v), nil
	}
	return int64(v), nil
}

// FromBigInt returns the minimal encoding of v.  Negative values cannot be
// represented by natural numbers.
func FromBigInt[D arith.Rule](v *big.Int, c Case) (Int[D], error) {
	if v.Sign() < 0 && arith.DisciplineOf[D]() == arith.Unsigned {
		str := fmt.Sprintf("negative value %v has no natural encoding", v)
		return Int[D]{}, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	mag := new(big.Int).Abs(v).Text(16)
	return FromMagnitude[D](v.Sign() < 0, mag, c), nil
}

// BigInt returns the value as a big integer.
func (x Int[D]) BigInt() *big.Int {
	neg, mag := x.Magnitude()
	v := new(big.Int)
	if mag == "" {
		return v
	}
	v.SetString(mag, 16)
	if neg {
		v.Neg(v)
	}
	return v
}

// Decimal returns the value as a decimal string with a leading minus sign for
// negative values.
func (x Int[D]) Decimal() string {
	neg, mag := x.Magnitude()
	dec := digits.Convert(mag, 16, 10, false)
	switch {
	case dec == "":
		return "0"
	case neg:
		return "-" + dec
	}
	return dec
}

// FromBytes returns a value whose encoding is the big endian byte string b.
// The bytes are not trimmed.
func FromBytes[D arith.Rule](b []byte, c Case) Int[D] {
	up := c == Upper
	return Int[D]{s: digits.Recase(hex.EncodeToString(b), up), up: up}
}

// Bytes returns the encoding as a big endian byte string.
func (x Int[D]) Bytes() []byte {
	b, _ := hex.DecodeString(x.s)
	return b
}

// FromNum returns the hex text of the encoding of a byte backed number.  The
// encoding is kept byte for byte and written most significant byte first.
func FromNum[D arith.Rule, E words.Order](n bytenum.Num[D, E], c Case) Int[D] {
	return FromBytes[D](bytenum.ToBigEndian(n).Bytes(), c)
}

// ToNum returns the byte backed number with the same encoding as x stored in
// the byte order E.
func ToNum[E words.Order, D arith.Rule](x Int[D]) bytenum.Num[D, E] {
	s := words.FromWords(words.BigEndian, x.Bytes())
	return bytenum.FromSeq[D, E](s)
}

// convert re-encodes x under another discipline.
func convert[To, From arith.Rule](x Int[From]) (Int[To], error) {
	neg, mag := x.Magnitude()
	if neg && arith.DisciplineOf[To]() == arith.Unsigned {
		str := fmt.Sprintf("negative %v value %v has no natural encoding",
			x.disc(), x)
		return Int[To]{}, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	return FromMagnitude[To](neg, mag, x.Case()), nil
}

// ToTwos returns the minimal two's complement encoding of x.
func ToTwos[D arith.Rule](x Int[D]) Int[arith.Twos] {
	r, _ := convert[arith.Twos](x)
	return r
}

// ToSignMag returns the minimal sign-magnitude encoding of x.
func ToSignMag[D arith.Rule](x Int[D]) Int[arith.SignMag] {
	r, _ := convert[arith.SignMag](x)
	return r
}

// ToNat returns the minimal natural encoding of x.  It fails for negative
// values.
func ToNat[D arith.Rule](x Int[D]) (Int[arith.Nat], error) {
	return convert[arith.Nat](x)
}

// Format implements fmt.Formatter.  The x verb prints the encoding in lower
// case and X in upper case, d prints the decimal value, and s and v print the
// encoding in the letter case of the value.
func (x Int[D]) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		fmt.Fprint(f, x.String())
	case 'x':
		fmt.Fprint(f, x.WithCase(Lower).String())
	case 'X':
		fmt.Fprint(f, x.WithCase(Upper).String())
	case 'd':
		fmt.Fprint(f, x.Decimal())
	default:
		fmt.Fprintf(f, "%%!%c(hexnum=%s)", verb, x.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x Int[D]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int[D]) UnmarshalText(text []byte) error {
	v, err := Parse[D](string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
