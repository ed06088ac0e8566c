// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compact

import (
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/bounded"
	"github.com/decred/wordnum/bytenum"
)

const (
	signBit      = 0x00800000
	mantissaMask = 0x007fffff
)

// Bits is a number in the compact encoding.
type Bits uint32

// Exponent returns the base 256 exponent stored in the top byte.
func (b Bits) Exponent() uint8 {
	return uint8(b >> 24)
}

// Mantissa returns the 23-bit mantissa.
func (b Bits) Mantissa() uint32 {
	return uint32(b) & mantissaMask
}

// IsNegative returns whether or not the encoding is of a negative number.  A
// zero mantissa is never negative.
func (b Bits) IsNegative() bool {
	return b&signBit != 0 && b.Mantissa() != 0
}

// String returns the bits as eight hex digits.
func (b Bits) String() string {
	return fmt.Sprintf("%08x", uint32(b))
}

// U256 decodes the bits into an unsigned 256-bit integer.
//
// The encoding can express negative numbers as well as numbers much larger
// than 256 bits, so the magnitude is returned along with flags that report
// whether or not the sign bit was set and whether or not the magnitude
// overflowed.  The returned value is zero when it overflows.
func (b Bits) U256() (n bounded.U256, isNegative bool, overflows bool) {
	mantissa := b.Mantissa()
	exponent := uint(b.Exponent())
	if mantissa == 0 {
		return n, false, false
	}
	isNegative = b&signBit != 0

	if exponent <= 3 {
		n, _ = n.SetUint64(uint64(mantissa >> (8 * (3 - exponent))))
		return n, isNegative, false
	}

	// The value is mantissa << 8*(exponent-3).  A 23-bit mantissa always fits
	// up to an exponent of 32.  Each exponent above that leaves one byte less
	// room for it and anything above 34 never fits.
	overflows = exponent >= 35 || (exponent >= 34 && mantissa > 0xff) ||
		(exponent >= 33 && mantissa > 0xffff)
	if overflows {
		return n, isNegative, true
	}
	n, _ = n.SetUint64(uint64(mantissa))
	return n.Lsh(8 * (exponent - 3)), isNegative, false
}

// Integer decodes the bits into an arbitrary precision two's complement
// integer.  Every encoding has an exact value, so unlike U256 nothing is
// reported through flags.
func (b Bits) Integer() bytenum.IntegerBE {
	exponent := uint(b.Exponent())
	n := bytenum.IntegerBE{}.SetUint64(uint64(b.Mantissa()))
	if exponent <= 3 {
		n = n.Rsh(8 * (3 - exponent))
	} else {
		n = n.Lsh(8 * (exponent - 3))
	}
	if b.IsNegative() {
		n = n.Negate()
	}
	return n
}

// magnitude is implemented by the unsigned numbers that can be encoded.
type magnitude[T any] interface {
	BitLen() uint
	Rsh(bits uint) T
	Uint64() (uint64, error)
}

// encode packs a magnitude and sign into compact bits.  It fails when the
// exponent does not fit in a byte.
func encode[T magnitude[T]](mag T, isNegative bool) (Bits, error) {
	// The exponent is the number of bytes needed for the magnitude.
	exponent := (mag.BitLen() + 7) / 8
	if exponent == 0 {
		return 0, nil
	}

	var mantissa uint64
	if exponent <= 3 {
		mantissa, _ = mag.Uint64()
		mantissa <<= 8 * (3 - exponent)
	} else {
		mantissa, _ = mag.Rsh(8 * (exponent - 3)).Uint64()
	}

	// A mantissa with the sign bit set does not fit in 23 bits, so drop its
	// low byte and bump the exponent.
	if mantissa&signBit != 0 {
		mantissa >>= 8
		exponent++
	}
	if exponent > 0xff {
		str := fmt.Sprintf("magnitude of %d bits needs exponent %d which "+
			"exceeds the max of 255", mag.BitLen(), exponent)
		return 0, arith.MakeError(arith.ErrValueTooLarge, str)
	}

	bits := Bits(exponent<<24) | Bits(mantissa)
	if isNegative {
		bits |= signBit
	}
	return bits, nil
}

// FromU256 encodes an unsigned 256-bit integer.  Only the most significant 23
// bits of the value are kept.
func FromU256(n bounded.U256) Bits {
	// 256 bits need at most an exponent of 33.
	bits, _ := encode(n, false)
	return bits
}

// FromInteger encodes an arbitrary precision integer.  Only the most
// significant 23 bits of the magnitude are kept.  It fails with
// arith.ErrValueTooLarge when the magnitude needs more than 255 bytes.
func FromInteger(n bytenum.IntegerBE) (Bits, error) {
	mag, err := bytenum.ToNat(n.Abs())
	if err != nil {
		return 0, err
	}
	return encode(mag, n.IsNegative())
}

// CalcWork calculates the work represented by a target encoded as bits, which
// is 2^256 / (target+1).  Lower targets require more work.  For legacy
// reasons the result is zero when the target is negative, zero, or overflows.
func CalcWork(bits Bits) bounded.U256 {
	target, isNegative, overflows := bits.U256()
	if isNegative || overflows || target.IsZero() {
		return bounded.U256{}
	}

	// 2^256 does not fit, so compute the equivalent (2^256-target-1) /
	// (target+1) + 1 where 2^256-target-1 is the complement of the target.
	// A target of 2^256-1 is not encodable, but it would have a work of one.
	divisor, err := target.Increment()
	if err != nil {
		one, _ := bounded.U256{}.SetUint64(1)
		return one
	}
	work, _ := target.Not().Div(divisor)
	work, _ = work.Increment()
	return work
}

// HashToU256 interprets a hash as a little endian unsigned 256-bit integer so
// it can be compared with a target.
func HashToU256(hash *chainhash.Hash) bounded.U256 {
	n, _ := bounded.U256{}.SetBytesLE(hash[:])
	return n
}

// checkProofOfWorkRange returns the target encoded by bits after ensuring it
// is positive, fits in 256 bits, and does not exceed powLimit.
func checkProofOfWorkRange(bits Bits, powLimit bounded.U256) (bounded.U256, error) {
	target, isNegative, overflows := bits.U256()
	if isNegative {
		str := fmt.Sprintf("target difficulty bits %v is a negative value", bits)
		return bounded.U256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	if overflows {
		str := fmt.Sprintf("target difficulty bits %v is higher than the max "+
			"limit %x", bits, powLimit)
		return bounded.U256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	if target.IsZero() {
		str := "target difficulty is zero"
		return bounded.U256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	if target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("target difficulty %x is higher than max %x", target,
			powLimit)
		return bounded.U256{}, ruleError(ErrUnexpectedDifficulty, str)
	}
	return target, nil
}

// CheckProofOfWorkRange ensures the target encoded by bits is positive and no
// higher than powLimit.
func CheckProofOfWorkRange(bits Bits, powLimit bounded.U256) error {
	_, err := checkProofOfWorkRange(bits, powLimit)
	if err != nil {
		log.Tracef("Rejected bits %v: %v", bits, err)
	}
	return err
}

// CheckProofOfWork ensures the hash is no higher than the target encoded by
// bits and that the target itself is in range per powLimit.
func CheckProofOfWork(powHash *chainhash.Hash, bits Bits, powLimit bounded.U256) error {
	target, err := checkProofOfWorkRange(bits, powLimit)
	if err != nil {
		log.Tracef("Rejected bits %v: %v", bits, err)
		return err
	}

	hashNum := HashToU256(powHash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("proof of work hash %x is higher than expected max "+
			"of %x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}
	return nil
}
