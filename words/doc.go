// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package words provides endianness-tagged sequences of unsigned machine words.

A sequence is the storage layer shared by every number representation in this
module.  It knows nothing about signs; it only maps logical positions, counted
from the least significant word, to storage positions according to its
endianness:

	big endian 0x0102 stored as [0x01 0x02]:     Word(0) = 0x02, At(0) = 0x01
	little endian 0x0102 stored as [0x02 0x01]:  Word(0) = 0x02, At(0) = 0x02

The endianness is available both as a runtime value (Endian) and as a type
level marker (Big, Little) for value types that fix it at compile time.
*/
package words
