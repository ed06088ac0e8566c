// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytenum

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/wordnum/arith"
)

// mustParse parses the passed literal and will panic if there is an error.
// This is only provided for the hard-coded constants so errors in the source
// code can be detected. It will only (and must only) be called with
// hard-coded values.
func mustParse[N interface{ SetString(string) (N, error) }](s string) N {
	var zero N
	n, err := zero.SetString(s)
	if err != nil {
		panic("invalid number in source file: " + s)
	}
	return n
}

// TestSetBytesKeepsEncoding ensures SetBytes stores the bytes as given while
// arithmetic results are minimal.
func TestSetBytesKeepsEncoding(t *testing.T) {
	t.Parallel()

	var n IntegerBE
	n = n.SetBytes([]byte{0xff, 0xff})
	if n.Len() != 2 || n.IsMinimal() {
		t.Fatalf("mismatched encoding -- got %v, want 0xffff", n)
	}
	if n.MinimalSize() != 1 {
		t.Fatalf("mismatched minimal size -- got %d, want 1", n.MinimalSize())
	}
	minusOne, _ := IntegerBE{}.SetInt64(-1)
	if !n.Equal(minusOne) || n.Identical(minusOne) {
		t.Fatalf("mismatched equality of %v and %v", n, minusOne)
	}
	if got := n.Trim(); !got.Identical(minusOne) {
		t.Fatalf("mismatched trim -- got %v, want %v", got, minusOne)
	}
	if got := n.Add(IntegerBE{}); !got.Identical(minusOne) {
		t.Fatalf("mismatched sum -- got %v, want %v", got, minusOne)
	}

	// Mutating the source slice must not affect the number.
	src := []byte{0x01, 0x02}
	m := NaturalLE{}.SetBytes(src)
	src[0] = 0xff
	if got := m.String(); got != "0x0102" {
		t.Fatalf("SetBytes aliased its input -- got %s", got)
	}
	if got, _ := m.Uint64(); got != 0x0201 {
		t.Fatalf("mismatched little endian value -- got %x, want 201", got)
	}
}

// TestIntegerArithmetic ensures the arithmetic methods of two's complement
// numbers produce the expected values and minimal encodings.
func TestIntegerArithmetic(t *testing.T) {
	t.Parallel()

	type binaryFn func(a, b IntegerBE) IntegerBE
	add := binaryFn(IntegerBE.Add)
	sub := binaryFn(IntegerBE.Sub)
	mul := binaryFn(IntegerBE.Mul)
	and := binaryFn(IntegerBE.And)
	or := binaryFn(IntegerBE.Or)
	xor := binaryFn(IntegerBE.Xor)

	tests := []struct {
		name string   // test description
		op   binaryFn // operation to apply
		a    string   // first operand
		b    string   // second operand
		want string   // expected minimal encoding
	}{
		{"127 + 1", add, "127", "1", "0x0080"},
		{"-128 + -1", add, "-128", "-1", "0xff7f"},
		{"-1 + 1", add, "-1", "1", "0x"},
		{"non-minimal operands", add, "0x0000ff", "0xffff", "0x00fe"},
		{"1 - 2", sub, "1", "2", "0xff"},
		{"-128 - 1", sub, "-128", "1", "0xff7f"},
		{"-128 * -128", mul, "-128", "-128", "0x4000"},
		{"-1 * 255", mul, "-1", "255", "0xff01"},
		{"-1 and 15", and, "-1", "15", "0x0f"},
		{"-128 or 127", or, "-128", "127", "0xff"},
		{"240 xor 15", xor, "240", "15", "0x00ff"},
	}

	for _, test := range tests {
		got := test.op(mustParse[IntegerBE](test.a), mustParse[IntegerBE](test.b))
		if got.String() != test.want {
			t.Errorf("%q: mismatched result -- got %v, want %s", test.name,
				got, test.want)
			continue
		}
		if !got.IsMinimal() {
			t.Errorf("%q: result %v is not minimal", test.name, got)
			continue
		}
	}
}

// TestUnaryMethods ensures the unary methods behave as expected for each
// discipline including the natural and sign-magnitude special cases.
func TestUnaryMethods(t *testing.T) {
	t.Parallel()

	if got := mustParse[NaturalBE]("0").Decrement(); got.String() != "0x" {
		t.Errorf("natural decrement of zero -- got %v, want 0x", got)
	}
	if got := mustParse[NaturalBE]("255").Increment(); got.String() != "0x0100" {
		t.Errorf("natural increment -- got %v, want 0x0100", got)
	}
	if got := mustParse[NaturalBE]("5").Negate(); !got.IsZero() {
		t.Errorf("natural negate -- got %v, want zero", got)
	}
	if got := mustParse[IntegerBE]("127").Increment(); got.String() != "0x0080" {
		t.Errorf("integer increment -- got %v, want 0x0080", got)
	}
	if got := mustParse[IntegerBE]("-128").Abs(); got.String() != "0x0080" {
		t.Errorf("integer abs -- got %v, want 0x0080", got)
	}
	if got := mustParse[IntegerBE]("0").Not(); got.String() != "0xff" {
		t.Errorf("integer not -- got %v, want 0xff", got)
	}

	// Negating a sign-magnitude zero is the only operation that produces a
	// non-minimal result.
	negZero := SignMagBE{}.Negate()
	if negZero.String() != "0x80" || !negZero.IsZero() || negZero.IsNegative() {
		t.Errorf("sign-magnitude negate of zero -- got %v, want 0x80", negZero)
	}
	if got := negZero.Negate(); got.String() != "0x" {
		t.Errorf("sign-magnitude negate of negative zero -- got %v, want 0x",
			got)
	}
	if got := negZero.Increment(); got.String() != "0x01" {
		t.Errorf("sign-magnitude increment of negative zero -- got %v", got)
	}
	if got := mustParse[SignMagBE]("-127").Decrement(); got.String() != "0x8080" {
		t.Errorf("sign-magnitude decrement -- got %v, want 0x8080", got)
	}
	if got := mustParse[SignMagBE]("-3").Rsh(1); got.String() != "0x81" {
		t.Errorf("sign-magnitude shift -- got %v, want 0x81", got)
	}
	if got := mustParse[IntegerBE]("-3").Rsh(1); got.String() != "0xfe" {
		t.Errorf("two's complement shift -- got %v, want 0xfe", got)
	}
	if got := mustParse[IntegerBE]("-3").Lsh(7); got.String() != "0xfe80" {
		t.Errorf("two's complement left shift -- got %v, want 0xfe80", got)
	}
}

// TestDivision ensures division truncates toward zero and rejects zero
// divisors.
func TestDivision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string // test description
		a    string // dividend
		b    string // divisor
		q    string // expected quotient
		r    string // expected remainder
	}{
		{"7 / 2", "7", "2", "3", "1"},
		{"-7 / 2", "-7", "2", "-3", "-1"},
		{"7 / -2", "7", "-2", "-3", "1"},
		{"-7 / -2", "-7", "-2", "3", "-1"},
		{"0 / 5", "0", "5", "0", "0"},
	}

	for _, test := range tests {
		q, r, err := mustParse[SignMagLE](test.a).DivMod(mustParse[SignMagLE](test.b))
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if q.Decimal() != test.q || r.Decimal() != test.r {
			t.Errorf("%q: mismatched result -- got (%s, %s), want (%s, %s)",
				test.name, q.Decimal(), r.Decimal(), test.q, test.r)
			continue
		}
	}

	_, err := mustParse[IntegerBE]("1").Div(IntegerBE{})
	if !errors.Is(err, arith.ErrDivideByZero) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			arith.ErrDivideByZero)
	}
	_, err = mustParse[NaturalBE]("1").Mod(NaturalBE{}.SetBytes([]byte{0, 0}))
	if !errors.Is(err, arith.ErrDivideByZero) {
		t.Fatalf("mismatched err -- got %v, want %v", err,
			arith.ErrDivideByZero)
	}
}

// TestConversions ensures conversions between disciplines and byte orders
// preserve the value.
func TestConversions(t *testing.T) {
	t.Parallel()

	if got := ToTwos(mustParse[NaturalBE]("0x80")); got.String() != "0x0080" {
		t.Errorf("natural to two's complement -- got %v, want 0x0080", got)
	}
	if got := ToSignMag(mustParse[IntegerBE]("-1")); got.String() != "0x81" {
		t.Errorf("two's complement to sign-magnitude -- got %v, want 0x81",
			got)
	}
	if got := ToTwos(mustParse[SignMagBE]("-128")); got.String() != "0x80" {
		t.Errorf("sign-magnitude to two's complement -- got %v, want 0x80",
			got)
	}
	if _, err := ToNat(mustParse[IntegerBE]("-1")); !errors.Is(err,
		arith.ErrValueTooSmall) {

		t.Errorf("mismatched err -- got %v, want %v", err,
			arith.ErrValueTooSmall)
	}
	nat, err := ToNat(mustParse[SignMagBE]("0x8000"))
	if err != nil || !nat.IsZero() {
		t.Errorf("negative zero to natural -- got %v, %v", nat, err)
	}

	le := ToLittleEndian(mustParse[IntegerBE]("0x0102"))
	if le.String() != "0x0201" {
		t.Errorf("to little endian -- got %v, want 0x0201", le)
	}
	if be := ToBigEndian(le); be.String() != "0x0102" {
		t.Errorf("to big endian -- got %v, want 0x0102", be)
	}

	if _, err := (NaturalBE{}).SetInt64(-5); !errors.Is(err,
		arith.ErrValueTooSmall) {

		t.Errorf("mismatched err -- got %v, want %v", err,
			arith.ErrValueTooSmall)
	}
	huge := mustParse[NaturalBE]("18446744073709551616")
	if _, err := huge.Uint64(); !errors.Is(err, arith.ErrValueTooLarge) {
		t.Errorf("mismatched err -- got %v, want %v", err,
			arith.ErrValueTooLarge)
	}
	if huge.CmpUint64(^uint64(0)) != 1 || huge.BitLen() != 65 {
		t.Errorf("mismatched comparison or bit length for %v", huge)
	}
	if got := mustParse[IntegerLE]("-5").CmpInt64(-4); got != -1 {
		t.Errorf("mismatched int64 comparison -- got %d, want -1", got)
	}
	ext, err := mustParse[IntegerBE]("-2").Extend(4)
	if err != nil || ext.String() != "0xfffffffe" {
		t.Errorf("mismatched extend -- got %v, %v", ext, err)
	}
	if _, err := mustParse[IntegerBE]("128").Extend(1); !errors.Is(err,
		arith.ErrInvalidWidth) {

		t.Errorf("mismatched err -- got %v, want %v", err,
			arith.ErrInvalidWidth)
	}
}

// TestNumAgreement ensures random arithmetic agrees with math/big for every
// resizable integer type.
func TestNumAgreement(t *testing.T) {
	t.Parallel()

	seed := time.Now().Unix()
	rng := rand.New(rand.NewSource(seed))
	randBig := func(signed bool) *big.Int {
		v := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1),
			uint(rng.Intn(130))+1))
		if signed && rng.Intn(2) == 0 {
			v.Neg(v)
		}
		return v
	}

	for i := 0; i < 200; i++ {
		av, bv := randBig(true), randBig(true)
		a, _ := IntegerLE{}.SetBigInt(av)
		b, _ := IntegerLE{}.SetBigInt(bv)
		sa, _ := SignMagBE{}.SetBigInt(av)
		sb, _ := SignMagBE{}.SetBigInt(bv)

		checks := []struct {
			op   string
			got  *big.Int
			want *big.Int
		}{
			{"add", a.Add(b).BigInt(), new(big.Int).Add(av, bv)},
			{"sub", a.Sub(b).BigInt(), new(big.Int).Sub(av, bv)},
			{"mul", a.Mul(b).BigInt(), new(big.Int).Mul(av, bv)},
			{"signmag add", sa.Add(sb).BigInt(), new(big.Int).Add(av, bv)},
			{"signmag mul", sa.Mul(sb).BigInt(), new(big.Int).Mul(av, bv)},
			{"decimal", mustParse[IntegerLE](a.Decimal()).BigInt(), av},
			{"text", mustParse[SignMagBE](sa.Decimal()).BigInt(), av},
		}
		for _, c := range checks {
			if c.got.Cmp(c.want) != 0 {
				t.Fatalf("seed %d: %s(%v, %v): mismatched result -- got %v, "+
					"want %v\n%s", seed, c.op, av, bv, c.got, c.want,
					spew.Sdump(a, b))
			}
		}
		if a.Decimal() != av.String() {
			t.Fatalf("seed %d: mismatched decimal -- got %s, want %s", seed,
				a.Decimal(), av)
		}
	}
}
