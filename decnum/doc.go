// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package decnum implements arbitrary precision integers that are stored as
decimal text.

Dec holds a natural number written as 0 or [1-9][0-9]* and Signed holds an
integer that may additionally carry a leading minus sign.  Negative zero is
not a valid Signed literal.  There is no sign-magnitude decimal type.

Arithmetic is performed digit by digit on the text.  Natural subtraction
saturates at zero and decrementing natural zero leaves it at zero.  Bitwise
operations are defined on the binary value, so they are computed through the
hex text of package hexnum.

Both types convert to and from hex text, byte strings, platform integers,
math/big integers, and integral apd decimals.
*/
package decnum
