// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package arith implements sign disciplines, canonicalization, and an arithmetic
kernel over endianness-tagged word sequences.

# Disciplines

A sequence of words carries no sign of its own.  One of three disciplines is
selected to interpret it:

  - Unsigned: every bit is magnitude
  - TwosComplement: the most significant bit is the sign bit of a two's
    complement number
  - SignMagnitude: the most significant bit is a sign flag and the remaining
    bits are the magnitude, so zero may be positive or negative

The same bytes therefore mean different values:

	bytes    unsigned   twos   signmag
	0x80     128        -128   -0
	0xff     255        -1     -127
	0x0080   128        128    128
	0x8001   32769      -32767 -1

# Canonical Form

Every discipline defines a minimal encoding.  MinimalSize, IsMinimal, Trim, and
Extend convert between the minimal encoding and wider encodings of the same
value.  Zero is minimally the empty sequence in every discipline.

# Arithmetic

The exact operations (Add, Sub, Mul, DivMod, Lsh, Rsh, And, Or, Xor, Not,
Increment, Decrement) accept operands of any width and return minimal
encodings.  Unsigned subtraction saturates at zero.  The Wrap family operates on
operands of one fixed width and returns results of that width modulo 2^width,
which is what fixed width integers are built on.

All word sizes supported by the words package may be used.
*/
package arith
