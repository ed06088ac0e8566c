// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package hexnum implements arbitrary precision integers that are stored as hex
text.

An Int holds the digits of a 0x prefixed hex literal with an even number of
digits, most significant digit first.  The digits are interpreted under one
of three sign disciplines selected by a type parameter:

	literal   Natural   Integer   SignMag
	0x        0         0         0
	0x7f      127       127       127
	0xff      255       -1        -127
	0x00ff    255       255       255
	0x80      128       -128      0 (negative zero)

Natural, Integer and SignMag are aliases for Int[arith.Nat], Int[arith.Twos]
and Int[arith.SignMag].

Arithmetic is performed digit by digit on the text and every result is the
minimal encoding of its value.  The encoding passed to Parse is kept as is,
so "0x", "0x00" and "0x0000" are all natural zero but only "0x" is minimal.

The letter case of a literal is remembered and every value derived from it is
written in the same case.  A literal without letters is lower case.

Values computed here agree with the byte backed values of package bytenum for
the same discipline, which is what ToNum and FromNum convert between.
*/
package hexnum
