// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bounded implements fixed precision integers of any word size, word
count, and endianness.

A Bounded value is parameterized at the type level by its sign discipline
(arith.Nat or arith.Twos), its storage order (words.Big or words.Little), its
word count (Size1 through Size64), and its word type (uint8 through uint64).
Every arithmetic operation is performed modulo 2^(width in bits), so callers
may rely on "wrap around" semantics, while conversions into a bounded value
are range checked and fail rather than truncate.

For example, consider the 256-bit unsigned types U256 and U256W, which hold the
same values with different layouts:

	U256:  32 uint8 words, most significant word first
	U256W:  4 uint64 words, least significant word first

The value 2^64 + 1 is stored by U256 as the bytes 0x00 ... 0x01 0x00 ... 0x01
and by U256W as the words {1, 1, 0, 0}.  Both print as the same 64 digit hex
string since text forms are always most significant digit first.

Incrementing the maximum value or decrementing the minimum value of a type is
reported as an error of kind arith.ErrBoundary instead of wrapping.

Conversions are provided to and from math/big, the resizable integers of
package bytenum, and the 256-bit unsigned integer types of
github.com/decred/dcrd/math/uint256 and github.com/holiman/uint256.
*/
package bounded
