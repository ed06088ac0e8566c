// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bounded

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// String returns the value as 0x prefixed lower case hex with two digits per
// byte of width, most significant digit first.
func (x Bounded[D, E, S, W]) String() string {
	return "0x" + hex.EncodeToString(x.Bytes())
}

// Decimal returns the value as a decimal string with a leading minus sign for
// negative values.
func (x Bounded[D, E, S, W]) Decimal() string {
	return x.Num().Decimal()
}

// Format implements fmt.Formatter.  The x and X verbs print the full width hex
// form with a 0x prefix, d prints the decimal value, and s and v print the same
// as x.
func (x Bounded[D, E, S, W]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		fmt.Fprint(f, x.String())
	case 'X':
		fmt.Fprint(f, "0x"+strings.ToUpper(hex.EncodeToString(x.Bytes())))
	case 'd':
		fmt.Fprint(f, x.Decimal())
	default:
		fmt.Fprintf(f, "%%!%c(bounded=%s)", verb, x.String())
	}
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (x Bounded[D, E, S, W]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  It accepts every form
// SetString accepts.
func (x *Bounded[D, E, S, W]) UnmarshalText(text []byte) error {
	v, err := x.SetString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler by encoding the value as a CBOR
// integer or bignum.
func (x Bounded[D, E, S, W]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(x.BigInt())
}

// UnmarshalCBOR implements cbor.Unmarshaler.  It fails when the decoded value
// does not fit the type.
func (x *Bounded[D, E, S, W]) UnmarshalCBOR(data []byte) error {
	var v big.Int
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	r, err := x.SetBigInt(&v)
	if err != nil {
		return err
	}
	*x = r
	return nil
}
