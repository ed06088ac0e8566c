// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package decnum

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/bytenum"
	"github.com/decred/wordnum/hexnum"
	"github.com/decred/wordnum/internal/digits"
	"github.com/decred/wordnum/words"
)

// decFromMag returns the natural number with the passed hex magnitude.  The
// sign is ignored.
func decFromMag(_ bool, mag string) Dec {
	return Dec{mag: digits.Convert(mag, 16, 10, false)}
}

// signedFromMag returns the integer with the passed sign and hex magnitude.
func signedFromMag(neg bool, mag string) Signed {
	return signed(neg, digits.Convert(mag, 16, 10, false))
}

// Hex returns the minimal natural hex text of x in the letter case c.
func (x Dec) Hex(c hexnum.Case) hexnum.Natural {
	mag := digits.Convert(x.mag, 10, 16, c == hexnum.Upper)
	return hexnum.FromMagnitude[arith.Nat](false, mag, c)
}

// Hex returns the minimal two's complement hex text of x in the letter case c.
func (x Signed) Hex(c hexnum.Case) hexnum.Integer {
	mag := digits.Convert(x.mag, 10, 16, c == hexnum.Upper)
	return hexnum.FromMagnitude[arith.Twos](x.neg, mag, c)
}

// DecFromHex returns the natural number whose value is the hex text h under
// its discipline.  It fails when h is negative.
func DecFromHex[D arith.Rule](h hexnum.Int[D]) (Dec, error) {
	neg, mag := h.Magnitude()
	if neg {
		str := fmt.Sprintf("negative value %d has no natural encoding", h)
		return Dec{}, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	return decFromMag(neg, mag), nil
}

// SignedFromHex returns the integer whose value is the hex text h under its
// discipline.
func SignedFromHex[D arith.Rule](h hexnum.Int[D]) Signed {
	return signedFromMag(h.Magnitude())
}

// Bytes returns the minimal big endian encoding of x.
func (x Dec) Bytes() []byte {
	return x.Hex(hexnum.Lower).Bytes()
}

// Bytes returns the minimal big endian two's complement encoding of x.
func (x Signed) Bytes() []byte {
	return x.Hex(hexnum.Lower).Bytes()
}

// DecFromBytes returns the natural number encoded by the big endian byte
// string b.
func DecFromBytes(b []byte) Dec {
	return decFromMag(hexnum.FromBytes[arith.Nat](b, hexnum.Lower).Magnitude())
}

// SignedFromBytes returns the integer encoded by the big endian two's
// complement byte string b.
func SignedFromBytes(b []byte) Signed {
	return signedFromMag(hexnum.FromBytes[arith.Twos](b, hexnum.Lower).Magnitude())
}

// Num returns x as a minimal byte backed natural number.
func (x Dec) Num() bytenum.NaturalBE {
	return hexnum.ToNum[words.Big](x.Hex(hexnum.Lower))
}

// Num returns x as a minimal byte backed two's complement integer.
func (x Signed) Num() bytenum.IntegerBE {
	return hexnum.ToNum[words.Big](x.Hex(hexnum.Lower))
}

// DecFromUint64 returns the natural number v.
func DecFromUint64(v uint64) Dec {
	return Dec{mag: digits.Trim(strconv.FormatUint(v, 10))}
}

// SignedFromInt64 returns the integer v.
func SignedFromInt64(v int64) Signed {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return signed(v < 0, strconv.FormatUint(mag, 10))
}

// Uint64 returns x as a uint64 or an error when it does not fit.
func (x Dec) Uint64() (uint64, error) {
	if x.mag == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(x.mag, 10, 64)
	if err != nil {
		str := fmt.Sprintf("value %v does not fit a uint64", x)
		return 0, arith.MakeError(arith.ErrValueTooLarge, str)
	}
	return v, nil
}

// Int64 returns x as an int64 or an error when it does not fit.
func (x Signed) Int64() (int64, error) {
	v, err := strconv.ParseInt(x.String(), 10, 64)
	if err != nil {
		kind := arith.ErrValueTooLarge
		if x.neg {
			kind = arith.ErrValueTooSmall
		}
		str := fmt.Sprintf("value %v does not fit an int64", x)
		return 0, arith.MakeError(kind, str)
	}
	return v, nil
}

// BigInt returns x as a big integer.
func (x Dec) BigInt() *big.Int {
	return x.Signed().BigInt()
}

// BigInt returns x as a big integer.
func (x Signed) BigInt() *big.Int {
	v, _ := new(big.Int).SetString(x.String(), 10)
	return v
}

// DecFromBigInt returns the natural number v.  It fails when v is negative.
func DecFromBigInt(v *big.Int) (Dec, error) {
	return SignedFromBigInt(v).Dec()
}

// SignedFromBigInt returns the integer v.
func SignedFromBigInt(v *big.Int) Signed {
	return signed(v.Sign() < 0, new(big.Int).Abs(v).Text(10))
}

// Apd returns x as a finite apd decimal with a zero exponent.
func (x Dec) Apd() *apd.Decimal {
	return x.Signed().Apd()
}

// Apd returns x as a finite apd decimal with a zero exponent.
func (x Signed) Apd() *apd.Decimal {
	d := &apd.Decimal{Form: apd.Finite, Negative: x.neg}
	d.Coeff.SetString(x.Abs().String(), 10)
	return d
}

// DecFromApd returns the natural number with the value of d.  It fails when d
// is not an integer or is negative.
func DecFromApd(d *apd.Decimal) (Dec, error) {
	v, err := SignedFromApd(d)
	if err != nil {
		return Dec{}, err
	}
	return v.Dec()
}

// SignedFromApd returns the integer with the value of d.  It fails when d is
// not a finite integer.  The exponent is applied to the coefficient digits, so
// 12E+3 is 12000 and 1200E-2 is 12.
func SignedFromApd(d *apd.Decimal) (Signed, error) {
	if d.Form != apd.Finite {
		str := fmt.Sprintf("decimal %v is not finite", d)
		return Signed{}, arith.MakeError(arith.ErrInvalidString, str)
	}
	coeff := digits.Trim(new(big.Int).Abs(&d.Coeff).Text(10))
	if coeff == "" {
		return Signed{}, nil
	}
	exp := int(d.Exponent)
	if exp >= 0 {
		return signed(d.Negative, coeff+strings.Repeat("0", exp)), nil
	}
	frac := -exp
	if frac > len(coeff) || strings.Trim(coeff[len(coeff)-frac:], "0") != "" {
		str := fmt.Sprintf("decimal %v is not an integer", d)
		return Signed{}, arith.MakeError(arith.ErrInvalidString, str)
	}
	return signed(d.Negative, coeff[:len(coeff)-frac]), nil
}
