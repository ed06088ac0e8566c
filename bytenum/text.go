// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytenum

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/internal/digits"
	"github.com/decred/wordnum/words"
)

// parseHex decodes a 0x prefixed hex literal with an even number of digits in
// a single letter case into bytes.
func parseHex(s string) ([]byte, error) {
	ds := strings.TrimPrefix(s, "0x")
	if _, ok := digits.HexCase(ds); !ok || len(ds)%2 != 0 {
		str := fmt.Sprintf("malformed hex literal %q", s)
		return nil, arith.MakeError(arith.ErrInvalidString, str)
	}
	return hex.DecodeString(ds)
}

// magnitudeBytes returns the big endian unsigned bytes of a decimal magnitude.
func magnitudeBytes(dec string) []byte {
	h := digits.Convert(dec, 10, 16, false)
	if len(h)%2 != 0 {
		h = "0" + h
	}
	b, _ := hex.DecodeString(h)
	return b
}

// SetString parses s and returns its minimal encoding.
//
// A string with a 0x prefix is a hex literal of the encoding itself in the
// storage order of the number, with an even number of digits in a single
// letter case.  Anything else is a decimal literal matching
// 0|-?[1-9][0-9]*.  Natural numbers reject negative decimals with a range
// error.
func (n Num[D, E]) SetString(s string) (Num[D, E], error) {
	d := n.disc()
	if strings.HasPrefix(s, "0x") {
		b, err := parseHex(s)
		if err != nil {
			return Num[D, E]{}, err
		}
		return n.wrap(arith.Trim(d, words.FromWords(n.Endian(), b))), nil
	}

	if !digits.IsSignedDecimal(s) {
		str := fmt.Sprintf("malformed decimal literal %q", s)
		return Num[D, E]{}, arith.MakeError(arith.ErrInvalidString, str)
	}
	neg := strings.HasPrefix(s, "-")
	mag := words.FromWords(words.BigEndian, magnitudeBytes(strings.TrimPrefix(s, "-")))
	if neg && d == arith.Unsigned {
		str := fmt.Sprintf("negative value %s is not a natural number", s)
		return Num[D, E]{}, arith.MakeError(arith.ErrValueTooSmall, str)
	}
	v, err := arith.Convert(arith.Unsigned, d, mag)
	if err != nil {
		return Num[D, E]{}, err
	}
	if neg {
		v = arith.Negate(d, v)
	}
	return n.wrap(v), nil
}

// Read parses s like SetString and reports whether or not it succeeded
// instead of returning an error.
func (n Num[D, E]) Read(s string) (Num[D, E], bool) {
	v, err := n.SetString(s)
	if err != nil {
		log.Tracef("Rejected %v literal: %v", n.disc(), err)
		return Num[D, E]{}, false
	}
	return v, true
}

// String returns the encoding as 0x prefixed lower case hex in storage order.
func (n Num[D, E]) String() string {
	return "0x" + hex.EncodeToString(n.b)
}

// Decimal returns the value as a decimal string with a leading minus sign for
// negative values.
func (n Num[D, E]) Decimal() string {
	d := n.disc()
	s := n.Seq()
	mag, _ := arith.Convert(d, arith.Unsigned, arith.Abs(d, s))
	dec := digits.Convert(hex.EncodeToString(mag.WithEndian(words.BigEndian).Bytes()),
		16, 10, false)
	switch {
	case dec == "":
		return "0"
	case arith.IsNegative(d, s):
		return "-" + dec
	}
	return dec
}

// Format implements fmt.Formatter.  The x and X verbs print the encoding as 0x
// prefixed hex, d prints the decimal value, and s and v print the same as x.
func (n Num[D, E]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x', 's', 'v':
		fmt.Fprint(f, n.String())
	case 'X':
		fmt.Fprint(f, "0x"+strings.ToUpper(hex.EncodeToString(n.b)))
	case 'd':
		fmt.Fprint(f, n.Decimal())
	default:
		fmt.Fprintf(f, "%%!%c(bytenum=%s)", verb, n.String())
	}
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (n Num[D, E]) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  It accepts every form
// SetString accepts.
func (n *Num[D, E]) UnmarshalText(text []byte) error {
	v, err := n.SetString(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
