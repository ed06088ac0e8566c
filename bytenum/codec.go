// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytenum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/decred/base58"
	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/words"
	"github.com/fxamacker/cbor/v2"
)

// base58Alphabet is the alphabet used by the base58 encoding.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MarshalCBOR implements cbor.Marshaler by encoding the value as a CBOR
// integer or bignum.
func (n Num[D, E]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(n.BigInt())
}

// UnmarshalCBOR implements cbor.Unmarshaler.  The decoded value is stored in
// its minimal encoding.
func (n *Num[D, E]) UnmarshalCBOR(data []byte) error {
	var v big.Int
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	r, err := n.SetBigInt(&v)
	if err != nil {
		return err
	}
	*n = r
	return nil
}

// EncodeBase58 returns the base58 encoding of a natural number.  Zero encodes
// as "1".
func EncodeBase58[E words.Order](n Num[arith.Nat, E]) string {
	b := n.Trim().Seq().WithEndian(words.BigEndian).Bytes()
	if len(b) == 0 {
		return "1"
	}
	return base58.Encode(b)
}

// DecodeBase58 decodes a base58 natural number.  The string must match
// 1|[2-9A-HJ-NP-Za-km-z][1-9A-HJ-NP-Za-km-z]* so every value has exactly one
// encoding.
func DecodeBase58[E words.Order](s string) (Num[arith.Nat, E], error) {
	valid := s != "" && (s == "1" || s[0] != '1')
	for i := 0; valid && i < len(s); i++ {
		valid = strings.IndexByte(base58Alphabet, s[i]) >= 0
	}
	if !valid {
		str := fmt.Sprintf("malformed base58 natural number %q", s)
		log.Tracef("Rejected base58 literal %q", s)
		return Num[arith.Nat, E]{}, arith.MakeError(arith.ErrInvalidBase58, str)
	}
	if s == "1" {
		return Num[arith.Nat, E]{}, nil
	}
	b := base58.Decode(s)
	return FromSeq[arith.Nat, E](words.FromWords(words.BigEndian, b)), nil
}
