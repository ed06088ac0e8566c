// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package compact implements the 32-bit compact number encoding commonly used
for proof of work difficulty targets.

The encoding is similar to a floating point number with a base 256 exponent:

	-------------------------------------------------
	|   Exponent     |    Sign    |    Mantissa     |
	|-----------------------------------------------|
	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
	-------------------------------------------------

	N = (-1^sign) * mantissa * 256^(exponent-3)

Bits decode either into a fixed precision bounded.U256, which reports negative
and overflowing encodings through flags, or into an arbitrary precision
bytenum.IntegerBE, which represents every encoding exactly.

Only 23 bits of precision survive encoding, so values wider than that keep
just their most significant digits.

# Errors

Errors returned by the target checks are of type RuleError and wrap one of
the ErrorKind values, so callers can test for a specific failure with
errors.Is.  Range errors from FromInteger are arith.Error values.
*/
package compact
