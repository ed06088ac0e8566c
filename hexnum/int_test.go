// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexnum

import (
	"errors"
	"fmt"
	"testing"

	"github.com/decred/wordnum/arith"
)

// TestParse ensures literals are validated before they are accepted and that
// accepted encodings are kept as given.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		in   string // literal to parse
		err  error  // expected error
		up   bool   // expected letter case
	}{{
		name: "empty encoding",
		in:   "0x",
	}, {
		name: "redundant zeros kept",
		in:   "0x0000",
	}, {
		name: "lower case letters",
		in:   "0xdeadbeef",
	}, {
		name: "upper case letters",
		in:   "0xDEADBEEF",
		up:   true,
	}, {
		name: "missing prefix",
		in:   "deadbeef",
		err:  arith.ErrInvalidString,
	}, {
		name: "upper case prefix",
		in:   "0Xff",
		err:  arith.ErrInvalidString,
	}, {
		name: "odd digit count",
		in:   "0x123",
		err:  arith.ErrInvalidString,
	}, {
		name: "mixed case",
		in:   "0xAbcd",
		err:  arith.ErrInvalidString,
	}, {
		name: "invalid digit",
		in:   "0x0g",
		err:  arith.ErrInvalidString,
	}, {
		name: "sign is not hex",
		in:   "-0x01",
		err:  arith.ErrInvalidString,
	}, {
		name: "empty string",
		in:   "",
		err:  arith.ErrInvalidString,
	}}

	for _, test := range tests {
		x, err := Parse[arith.Twos](test.in)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: mismatched error -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		_, ok := Read[arith.Twos](test.in)
		if ok != (test.err == nil) {
			t.Errorf("%q: mismatched read result -- got %v, want %v", test.name,
				ok, test.err == nil)
			continue
		}
		if test.err != nil {
			continue
		}
		if x.String() != test.in {
			t.Errorf("%q: mismatched encoding -- got %v, want %v", test.name, x,
				test.in)
			continue
		}
		if got := x.Case() == Upper; got != test.up {
			t.Errorf("%q: mismatched case -- got %v, want %v", test.name,
				x.Case(), test.up)
			continue
		}
	}
}

// TestCanonical ensures the minimal size, trimming, and extension rules hold
// for every discipline.
func TestCanonical(t *testing.T) {
	t.Parallel()

	type canon struct {
		minSize int
		trim    string
		zero    bool
		neg     bool
		dec     string
	}
	tests := []struct {
		name string // test description
		in   string // literal under test
		nat  canon  // expected natural results
		twos canon  // expected two's complement results
		sm   canon  // expected sign-magnitude results
	}{{
		name: "empty zero",
		in:   "0x",
		nat:  canon{0, "0x", true, false, "0"},
		twos: canon{0, "0x", true, false, "0"},
		sm:   canon{0, "0x", true, false, "0"},
	}, {
		name: "one byte zero",
		in:   "0x00",
		nat:  canon{0, "0x", true, false, "0"},
		twos: canon{0, "0x", true, false, "0"},
		sm:   canon{0, "0x", true, false, "0"},
	}, {
		name: "two byte zero",
		in:   "0x0000",
		nat:  canon{0, "0x", true, false, "0"},
		twos: canon{0, "0x", true, false, "0"},
		sm:   canon{0, "0x", true, false, "0"},
	}, {
		name: "top bit set",
		in:   "0x80",
		nat:  canon{1, "0x80", false, false, "128"},
		twos: canon{1, "0x80", false, true, "-128"},
		sm:   canon{0, "0x", true, false, "0"},
	}, {
		name: "all ones",
		in:   "0xffff",
		nat:  canon{2, "0xffff", false, false, "65535"},
		twos: canon{1, "0xff", false, true, "-1"},
		sm:   canon{2, "0xffff", false, true, "-32767"},
	}, {
		name: "padded positive",
		in:   "0x000080",
		nat:  canon{1, "0x80", false, false, "128"},
		twos: canon{2, "0x0080", false, false, "128"},
		sm:   canon{2, "0x0080", false, false, "128"},
	}, {
		name: "sign flag above zeros",
		in:   "0x800001",
		nat:  canon{3, "0x800001", false, false, "8388609"},
		twos: canon{3, "0x800001", false, true, "-8388607"},
		sm:   canon{1, "0x81", false, true, "-1"},
	}, {
		name: "sign flag above a large byte",
		in:   "0x8000ff",
		nat:  canon{3, "0x8000ff", false, false, "8388863"},
		twos: canon{3, "0x8000ff", false, true, "-8388353"},
		sm:   canon{2, "0x80ff", false, true, "-255"},
	}, {
		name: "redundant sign extension",
		in:   "0xffff80",
		nat:  canon{3, "0xffff80", false, false, "16777088"},
		twos: canon{1, "0x80", false, true, "-128"},
		sm:   canon{3, "0xffff80", false, true, "-8388480"},
	}}

	check := func(name, disc string, x interface {
		MinimalSize() int
		IsMinimal() bool
		IsZero() bool
		IsNegative() bool
		Decimal() string
		Len() int
		String() string
	}, trimmed string, want canon) {
		t.Helper()
		if got := x.MinimalSize(); got != want.minSize {
			t.Errorf("%q (%s): mismatched minimal size -- got %d, want %d",
				name, disc, got, want.minSize)
		}
		if got := x.IsMinimal(); got != (x.Len() == want.minSize) {
			t.Errorf("%q (%s): mismatched minimal flag -- got %v", name, disc,
				got)
		}
		if trimmed != want.trim {
			t.Errorf("%q (%s): mismatched trim -- got %s, want %s", name, disc,
				trimmed, want.trim)
		}
		if got := x.IsZero(); got != want.zero {
			t.Errorf("%q (%s): mismatched zero -- got %v, want %v", name, disc,
				got, want.zero)
		}
		if got := x.IsNegative(); got != want.neg {
			t.Errorf("%q (%s): mismatched negative -- got %v, want %v", name,
				disc, got, want.neg)
		}
		if got := x.Decimal(); got != want.dec {
			t.Errorf("%q (%s): mismatched decimal -- got %s, want %s", name,
				disc, got, want.dec)
		}
	}

	for _, test := range tests {
		nat := MustParse[arith.Nat](test.in)
		check(test.name, "natural", nat, nat.Trim().String(), test.nat)
		twos := MustParse[arith.Twos](test.in)
		check(test.name, "twos", twos, twos.Trim().String(), test.twos)
		sm := MustParse[arith.SignMag](test.in)
		check(test.name, "signmag", sm, sm.Trim().String(), test.sm)

		// Extending the trimmed value back to the original width must give
		// the original encoding except for non-canonical zeros.
		if !sm.IsZero() {
			ext, err := sm.Trim().Extend(sm.Len())
			if err != nil || ext.String() != test.in {
				t.Errorf("%q: mismatched sign-magnitude extension -- got %v "+
					"(%v), want %s", test.name, ext, err, test.in)
			}
		}
		ext, err := twos.Trim().Extend(twos.Len())
		if err != nil || ext.String() != test.in {
			t.Errorf("%q: mismatched two's complement extension -- got %v "+
				"(%v), want %s", test.name, ext, err, test.in)
		}
	}
}

// TestExtend ensures extending moves sign bits to the new top byte and that
// extending below the minimal size fails.
func TestExtend(t *testing.T) {
	t.Parallel()

	twos, err := MustParse[arith.Twos]("0xFF").Extend(3)
	if err != nil || twos.String() != "0xFFFFFF" {
		t.Fatalf("mismatched two's complement extension -- got %v (%v)", twos,
			err)
	}
	sm, err := MustParse[arith.SignMag]("0x81").Extend(2)
	if err != nil || sm.String() != "0x8001" {
		t.Fatalf("mismatched sign-magnitude extension -- got %v (%v)", sm, err)
	}
	nat, err := MustParse[arith.Nat]("0x0001").Extend(4)
	if err != nil || nat.String() != "0x00000001" {
		t.Fatalf("mismatched natural extension -- got %v (%v)", nat, err)
	}
	_, err = MustParse[arith.Nat]("0x0100").Extend(1)
	if !errors.Is(err, arith.ErrInvalidWidth) {
		t.Fatalf("mismatched error -- got %v, want %v", err,
			arith.ErrInvalidWidth)
	}
}

// TestSignMagnitudeZero ensures both sign-magnitude zeros behave as zero while
// keeping distinct encodings.
func TestSignMagnitudeZero(t *testing.T) {
	t.Parallel()

	pos := SignMag{}
	neg := pos.Negate()
	if neg.String() != "0x80" {
		t.Fatalf("mismatched negated zero -- got %v, want 0x80", neg)
	}
	if !neg.IsZero() || neg.IsNegative() || !neg.HasSignFlag() {
		t.Fatalf("negative zero is not a flagged zero")
	}
	if !neg.Equal(pos) || neg.Identical(pos) {
		t.Fatalf("negative zero must equal but not be identical to zero")
	}
	if got := neg.Negate().String(); got != "0x" {
		t.Fatalf("mismatched double negation -- got %v, want 0x", got)
	}
	if got := neg.Increment().String(); got != "0x01" {
		t.Fatalf("mismatched increment of negative zero -- got %v, want 0x01",
			got)
	}
	if got := neg.Decrement().String(); got != "0x81" {
		t.Fatalf("mismatched decrement of negative zero -- got %v, want 0x81",
			got)
	}
}

// TestConversions ensures values convert between disciplines, platform
// integers, and big integers with range checks.
func TestConversions(t *testing.T) {
	t.Parallel()

	if got := ToTwos(MustParse[arith.SignMag]("0x81")).String(); got != "0xff" {
		t.Errorf("mismatched two's complement -- got %v, want 0xff", got)
	}
	if got := ToSignMag(MustParse[arith.Twos]("0x80")).String(); got != "0x8080" {
		t.Errorf("mismatched sign-magnitude -- got %v, want 0x8080", got)
	}
	if got := ToTwos(MustParse[arith.Nat]("0xFF")).String(); got != "0x00FF" {
		t.Errorf("mismatched widened natural -- got %v, want 0x00FF", got)
	}
	if _, err := ToNat(MustParse[arith.Twos]("0xff")); !errors.Is(err, arith.ErrValueTooSmall) {
		t.Errorf("mismatched error -- got %v, want %v", err,
			arith.ErrValueTooSmall)
	}

	ints := []int64{0, 1, -1, 127, -128, 128, -129, 255, -32768, 1<<63 - 1,
		-1 << 63}
	for _, v := range ints {
		twos, err := FromInt64[arith.Twos](v, Lower)
		if err != nil {
			t.Errorf("%d: unexpected error: %v", v, err)
			continue
		}
		sm, _ := FromInt64[arith.SignMag](v, Upper)
		if twos.Decimal() != fmt.Sprint(v) || sm.Decimal() != fmt.Sprint(v) {
			t.Errorf("%d: mismatched decimal -- got %s and %s", v,
				twos.Decimal(), sm.Decimal())
			continue
		}
		if got, err := twos.Int64(); err != nil || got != v {
			t.Errorf("%d: mismatched int64 -- got %d (%v)", v, got, err)
			continue
		}
		if got, err := sm.Int64(); err != nil || got != v {
			t.Errorf("%d: mismatched sign-magnitude int64 -- got %d (%v)", v,
				got, err)
			continue
		}
		if twos.BigInt().Int64() != v {
			t.Errorf("%d: mismatched big int -- got %v", v, twos.BigInt())
			continue
		}
		back, _ := FromBigInt[arith.Twos](twos.BigInt(), Lower)
		if !back.Identical(twos) {
			t.Errorf("%d: mismatched big int round trip -- got %v, want %v", v,
				back, twos)
			continue
		}
	}

	if got, _ := FromInt64[arith.Twos](-129, Lower); got.String() != "0xff7f" {
		t.Errorf("mismatched encoding of -129 -- got %v, want 0xff7f", got)
	}
	if got := FromUint64[arith.Nat](0xabcdef, Upper); got.String() != "0xABCDEF" {
		t.Errorf("mismatched encoding -- got %v, want 0xABCDEF", got)
	}
	if _, err := FromInt64[arith.Nat](-1, Lower); !errors.Is(err, arith.ErrValueTooSmall) {
		t.Errorf("mismatched error -- got %v, want %v", err,
			arith.ErrValueTooSmall)
	}

	rangeTests := []struct {
		name string // test description
		in   Integer
		u64  error // expected uint64 error
		i64  error // expected int64 error
	}{{
		name: "negative one",
		in:   MustParse[arith.Twos]("0xff"),
		u64:  arith.ErrValueTooSmall,
	}, {
		name: "max uint64",
		in:   MustParse[arith.Twos]("0x00ffffffffffffffff"),
		i64:  arith.ErrValueTooLarge,
	}, {
		name: "2^64",
		in:   MustParse[arith.Twos]("0x010000000000000000"),
		u64:  arith.ErrValueTooLarge,
		i64:  arith.ErrValueTooLarge,
	}, {
		name: "below min int64",
		in:   MustParse[arith.Twos]("0xff7fffffffffffffff"),
		u64:  arith.ErrValueTooSmall,
		i64:  arith.ErrValueTooSmall,
	}}
	for _, test := range rangeTests {
		if _, err := test.in.Uint64(); !errors.Is(err, test.u64) {
			t.Errorf("%q: mismatched uint64 error -- got %v, want %v",
				test.name, err, test.u64)
		}
		if _, err := test.in.Int64(); !errors.Is(err, test.i64) {
			t.Errorf("%q: mismatched int64 error -- got %v, want %v",
				test.name, err, test.i64)
		}
	}
}

// TestFormat ensures the fmt verbs print the expected forms.
func TestFormat(t *testing.T) {
	t.Parallel()

	x := MustParse[arith.Twos]("0xAB")
	got := fmt.Sprintf("%x %X %d %v %s %q", x, x, x, x, x, x)
	want := "0xab 0xAB -85 0xAB 0xAB %!q(hexnum=0xAB)"
	if got != want {
		t.Fatalf("mismatched format -- got %s, want %s", got, want)
	}

	var y Natural
	if err := y.UnmarshalText([]byte("0x0Ff")); err == nil {
		t.Fatalf("accepted malformed text %v", y)
	}
	if err := y.UnmarshalText([]byte("0x00ff")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, _ := y.MarshalText()
	if string(text) != "0x00ff" {
		t.Fatalf("mismatched text -- got %s, want 0x00ff", text)
	}
}
