// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bytenum implements arbitrary precision integers backed by resizable
byte strings.

A Num is parameterized by a sign discipline and an endianness, both chosen at
the type level, so mixing disciplines or byte orders in a single operation is
a compile error:

	NaturalBE, NaturalLE  unsigned
	IntegerBE, IntegerLE  two's complement
	SignMagBE, SignMagLE  sign and magnitude

The bytes of a Num are its encoding.  SetBytes keeps them exactly as given,
including redundant leading bytes, while every arithmetic operation trims its
operands and produces a minimal result.  The one exception is negating a
sign-magnitude zero, which yields the single byte negative zero 0x80.

Natural numbers additionally encode to and from base58, where zero is "1".

# Errors

Errors returned by this package are of type arith.Error and can be checked
against the arith error kinds with errors.Is.
*/
package bytenum
