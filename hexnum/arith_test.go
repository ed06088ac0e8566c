// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hexnum

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/wordnum/arith"
	"github.com/decred/wordnum/bytenum"
	"github.com/decred/wordnum/words"
)

// TestArithmetic ensures the text arithmetic produces the expected minimal
// encodings.
func TestArithmetic(t *testing.T) {
	t.Parallel()

	twos := MustParse[arith.Twos]
	nat := MustParse[arith.Nat]
	sm := MustParse[arith.SignMag]

	tests := []struct {
		name string  // test description
		got  fmtable // result of the operation
		want string  // expected encoding
	}{
		{"twos -1 + -1", twos("0xff").Add(twos("0xff")), "0xfe"},
		{"twos 127 + 1 widens", twos("0x7f").Add(twos("0x01")), "0x0080"},
		{"twos -128 - 1 widens", twos("0x80").Sub(twos("0x01")), "0xff7f"},
		{"twos increment of -1", twos("0xff").Increment(), "0x"},
		{"twos decrement of zero", twos("0x").Decrement(), "0xff"},
		{"twos -128 * -1", twos("0x80").Mul(twos("0xff")), "0x0080"},
		{"twos redundant operands", twos("0xffff").Add(twos("0x000001")), "0x"},
		{"twos arithmetic shift", twos("0xf9").Rsh(1), "0xfc"},
		{"twos shift to -1", twos("0x80").Rsh(100), "0xff"},
		{"twos left shift", twos("0xff").Lsh(8), "0xff00"},
		{"twos not zero", twos("0x00").Not(), "0xff"},
		{"twos not", twos("0x0f").Not(), "0xf0"},
		{"twos and", twos("0xff").And(twos("0x1234")), "0x1234"},
		{"twos or", twos("0x80").Or(twos("0x7f")), "0xff"},
		{"twos xor", twos("0xff").Xor(twos("0x0100")), "0xfeff"},
		{"twos negate min", twos("0x80").Negate(), "0x0080"},
		{"twos abs", twos("0xff7f").Abs(), "0x0081"},
		{"natural saturating sub", nat("0x01").Sub(nat("0x02")), "0x"},
		{"natural decrement zero", nat("0x").Decrement(), "0x"},
		{"natural carry", nat("0xff").Add(nat("0x01")), "0x0100"},
		{"natural shift left", nat("0x01").Lsh(17), "0x020000"},
		{"natural shift back", nat("0x01").Lsh(17).Rsh(17), "0x01"},
		{"natural not keeps width", nat("0x000f").Not(), "0xfff0"},
		{"natural xor", nat("0xff00").Xor(nat("0x0ff0")), "0xf0f0"},
		{"natural negate", nat("0x05").Negate(), "0x"},
		{"natural mul", nat("0xFF").Mul(nat("0xff")), "0xFE01"},
		{"signmag increment negative zero", sm("0x80").Increment(), "0x01"},
		{"signmag -1 + -1", sm("0x81").Add(sm("0x81")), "0x82"},
		{"signmag 127 + 1", sm("0x7f").Add(sm("0x01")), "0x0080"},
		{"signmag sub", sm("0x01").Sub(sm("0x03")), "0x82"},
		{"signmag mul", sm("0x83").Mul(sm("0x85")), "0x0f"},
		{"signmag shift", sm("0x87").Rsh(1), "0x83"},
		{"signmag not", sm("0x").Not(), "0x81"},
		{"signmag xor", sm("0x81").Xor(sm("0x01")), "0x82"},
		{"signmag and", sm("0x81").And(sm("0x7f")), "0x7f"},
		{"upper case result", nat("0xAB").Add(nat("0x01")), "0xAC"},
		{"case of receiver wins", nat("0x0a").Add(nat("0xA0")), "0xaa"},
	}

	for _, test := range tests {
		if got := test.got.String(); got != test.want {
			t.Errorf("%q: mismatched result -- got %s, want %s", test.name, got,
				test.want)
			continue
		}
	}
}

// fmtable is implemented by every hex value.
type fmtable interface {
	String() string
}

// TestDivMod ensures division truncates toward zero and rejects zero divisors.
func TestDivMod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		a, b string // dividend and divisor
		q, r string // expected quotient and remainder
	}{
		{"positive", "0x07", "0x02", "0x03", "0x01"},
		{"negative dividend", "0xf9", "0x02", "0xfd", "0xff"},
		{"negative divisor", "0x07", "0xfe", "0xfd", "0x01"},
		{"both negative", "0xf9", "0xfe", "0x03", "0xff"},
		{"min by -1", "0x80", "0xff", "0x0080", "0x"},
		{"small by large", "0x05", "0x0100", "0x", "0x05"},
		{"wide", "0x0102030405060708090a", "0x0b0c", "0x175b288e653523d9", "0x07de"},
	}

	for _, test := range tests {
		a, b := MustParse[arith.Twos](test.a), MustParse[arith.Twos](test.b)
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if q.String() != test.q || r.String() != test.r {
			t.Errorf("%q: mismatched result -- got %v r %v, want %s r %s",
				test.name, q, r, test.q, test.r)
			continue
		}
		if !q.Mul(b).Add(r).Equal(a) {
			t.Errorf("%q: quotient and remainder do not recombine", test.name)
			continue
		}
	}

	_, err := MustParse[arith.Nat]("0x01").Div(MustParse[arith.Nat]("0x0000"))
	if !errors.Is(err, arith.ErrDivideByZero) {
		t.Fatalf("mismatched error -- got %v, want %v", err,
			arith.ErrDivideByZero)
	}
	_, err = MustParse[arith.SignMag]("0x01").Mod(MustParse[arith.SignMag]("0x80"))
	if !errors.Is(err, arith.ErrDivideByZero) {
		t.Fatalf("mismatched error for negative zero -- got %v, want %v", err,
			arith.ErrDivideByZero)
	}
}

// TestComparisons ensures values compare numerically regardless of width.
func TestComparisons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		a, b string // operands
		twos int    // expected two's complement comparison
		nat  int    // expected natural comparison
	}{
		{"equal with padding", "0x0001", "0x01", 0, 0},
		{"negative below positive", "0xff", "0x01", -1, 1},
		{"wider negative", "0xff00", "0xff", -1, 1},
		{"zeros", "0x", "0x0000", 0, 0},
	}

	for _, test := range tests {
		ta, tb := MustParse[arith.Twos](test.a), MustParse[arith.Twos](test.b)
		if got := ta.Cmp(tb); got != test.twos {
			t.Errorf("%q: mismatched two's complement result -- got %d, want %d",
				test.name, got, test.twos)
			continue
		}
		na, nb := MustParse[arith.Nat](test.a), MustParse[arith.Nat](test.b)
		if got := na.Cmp(nb); got != test.nat {
			t.Errorf("%q: mismatched natural result -- got %d, want %d",
				test.name, got, test.nat)
			continue
		}
	}

	if got := MustParse[arith.Twos]("0x80").BitLen(); got != 8 {
		t.Errorf("mismatched bit length -- got %d, want 8", got)
	}
	if got := MustParse[arith.Nat]("0x0100").BitLen(); got != 9 {
		t.Errorf("mismatched bit length -- got %d, want 9", got)
	}
}

// agree checks random text arithmetic against the byte backed arithmetic of
// the same discipline.
func agree[D arith.Rule](t *testing.T, rng *rand.Rand, seed int64) {
	t.Helper()

	randBytes := func() []byte {
		b := make([]byte, rng.Intn(12))
		rng.Read(b)
		return b
	}
	for i := 0; i < 200; i++ {
		ab, bb := randBytes(), randBytes()
		a, b := FromBytes[D](ab, Lower), FromBytes[D](bb, Lower)
		na := bytenum.Num[D, words.Big]{}.SetBytes(ab)
		nb := bytenum.Num[D, words.Big]{}.SetBytes(bb)
		shift := uint(rng.Intn(20))

		checks := []struct {
			op   string
			got  Int[D]
			want bytenum.Num[D, words.Big]
		}{
			{"trim", a.Trim(), na.Trim()},
			{"add", a.Add(b), na.Add(nb)},
			{"sub", a.Sub(b), na.Sub(nb)},
			{"mul", a.Mul(b), na.Mul(nb)},
			{"lsh", a.Lsh(shift), na.Lsh(shift)},
			{"rsh", a.Rsh(shift), na.Rsh(shift)},
			{"and", a.And(b), na.And(nb)},
			{"or", a.Or(b), na.Or(nb)},
			{"xor", a.Xor(b), na.Xor(nb)},
			{"not", a.Not(), na.Not()},
			{"negate", a.Negate(), na.Negate()},
			{"abs", a.Abs(), na.Abs()},
			{"increment", a.Increment(), na.Increment()},
			{"decrement", a.Decrement(), na.Decrement()},
		}
		if !nb.IsZero() {
			q, r, _ := a.DivMod(b)
			nq, nr, _ := na.DivMod(nb)
			checks = append(checks, struct {
				op   string
				got  Int[D]
				want bytenum.Num[D, words.Big]
			}{"quo", q, nq}, struct {
				op   string
				got  Int[D]
				want bytenum.Num[D, words.Big]
			}{"rem", r, nr})
		}
		for _, c := range checks {
			want := FromNum(c.want, Lower)
			if c.got.String() != want.String() {
				t.Fatalf("seed %d: %v %s(%v, %v, %d): mismatched result -- got "+
					"%v, want %v\n%s", seed, a.disc(), c.op, a, b, shift, c.got,
					want, spew.Sdump(ab, bb))
			}
		}
		if a.Cmp(b) != na.Cmp(nb) {
			t.Fatalf("seed %d: cmp(%v, %v): mismatched result -- got %d, want %d",
				seed, a, b, a.Cmp(b), na.Cmp(nb))
		}
		if a.Decimal() != na.Decimal() {
			t.Fatalf("seed %d: decimal(%v): mismatched result -- got %s, want %s",
				seed, a, a.Decimal(), na.Decimal())
		}
		if got := ToNum[words.Little](a); !bytenum.ToBigEndian(got).Identical(na) {
			t.Fatalf("seed %d: mismatched bytes for %v -- got %x", seed, a,
				got.Bytes())
		}
	}
}

// TestNumAgreement ensures random text arithmetic agrees with the byte backed
// arithmetic for every discipline.
func TestNumAgreement(t *testing.T) {
	t.Parallel()

	seed := time.Now().Unix()
	rng := rand.New(rand.NewSource(seed))
	agree[arith.Nat](t, rng, seed)
	agree[arith.Twos](t, rng, seed)
	agree[arith.SignMag](t, rng, seed)
}
