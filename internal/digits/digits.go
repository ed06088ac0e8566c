// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digits implements unsigned arithmetic directly on ASCII digit
// strings in base 10 or base 16.
//
// Digit strings are big endian, carry no prefix or sign, and may have leading
// zeros on input.  Every routine that produces a magnitude returns it without
// leading zeros, so zero is the empty string.  Hex letters are produced in
// lower case unless upper is set and are accepted in either case.
package digits

import "strings"

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Value returns the numeric value of a hex or decimal digit character along
// with whether or not it is a digit at all.
func Value(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// Char returns the character for the digit value v.
func Char(v int, upper bool) byte {
	if upper {
		return upperDigits[v]
	}
	return lowerDigits[v]
}

// val returns the value of a digit that is already known to be valid.
func val(c byte) int {
	v, _ := Value(c)
	return v
}

// IsDecimal returns whether or not s matches 0|[1-9][0-9]*.
func IsDecimal(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '0' {
		return len(s) == 1
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsSignedDecimal returns whether or not s matches 0|-?[1-9][0-9]*.  Negative
// zero is rejected.
func IsSignedDecimal(s string) bool {
	if strings.HasPrefix(s, "-") {
		return s != "-0" && IsDecimal(s[1:])
	}
	return IsDecimal(s)
}

// HexCase inspects a string of hex digits without a prefix.  It returns
// whether or not the letters are upper case along with whether or not the
// string is made only of hex digits whose letters share one case.  A string
// with no letters is valid and reports lower case.
func HexCase(s string) (upper bool, ok bool) {
	var lower bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
			lower = true
		case c >= 'A' && c <= 'F':
			upper = true
		default:
			return false, false
		}
	}
	if lower && upper {
		return false, false
	}
	return upper, true
}

// Trim removes leading zeros.  Zero becomes the empty string.
func Trim(a string) string {
	i := 0
	for i < len(a) && a[i] == '0' {
		i++
	}
	return a[i:]
}

// Pad left pads a with zeros to at least n digits.
func Pad(a string, n int) string {
	if len(a) >= n {
		return a
	}
	return strings.Repeat("0", n-len(a)) + a
}

// Recase rewrites the hex letters of a in the requested case.
func Recase(a string, upper bool) string {
	if upper {
		return strings.ToUpper(a)
	}
	return strings.ToLower(a)
}

// Cmp compares two magnitudes in the same base and returns -1, 0, or 1.
func Cmp(a, b string) int {
	a, b = Trim(a), Trim(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := 0; i < len(a); i++ {
		va, vb := val(a[i]), val(b[i])
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
	}
	return 0
}

// Add returns a + b.
func Add(base int, a, b string, upper bool) string {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]byte, n+1)
	carry := 0
	for i := 0; i < n; i++ {
		s := carry
		if i < len(a) {
			s += val(a[len(a)-1-i])
		}
		if i < len(b) {
			s += val(b[len(b)-1-i])
		}
		out[n-i] = Char(s%base, upper)
		carry = s / base
	}
	out[0] = Char(carry, upper)
	return Trim(string(out))
}

// Sub returns a - b.  The caller must ensure a >= b.
func Sub(base int, a, b string, upper bool) string {
	out := make([]byte, len(a))
	borrow := 0
	for i := 0; i < len(a); i++ {
		d := val(a[len(a)-1-i]) - borrow
		if i < len(b) {
			d -= val(b[len(b)-1-i])
		}
		borrow = 0
		if d < 0 {
			d += base
			borrow = 1
		}
		out[len(a)-1-i] = Char(d, upper)
	}
	return Trim(string(out))
}

// Mul returns a * b using the schoolbook method.
func Mul(base int, a, b string, upper bool) string {
	a, b = Trim(a), Trim(b)
	if a == "" || b == "" {
		return ""
	}
	acc := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		da := val(a[i])
		carry := 0
		for j := len(b) - 1; j >= 0; j-- {
			pos := i + j + 1
			t := acc[pos] + da*val(b[j]) + carry
			acc[pos] = t % base
			carry = t / base
		}
		acc[i] += carry
	}
	out := make([]byte, len(acc))
	for i, v := range acc {
		out[i] = Char(v, upper)
	}
	return Trim(string(out))
}

// MulSmall returns a * m for a small non-negative multiplier.
func MulSmall(base int, a string, m int, upper bool) string {
	if m == 0 {
		return ""
	}
	var out []byte
	carry := 0
	for i := len(a) - 1; i >= 0; i-- {
		t := val(a[i])*m + carry
		out = append(out, Char(t%base, upper))
		carry = t / base
	}
	for carry > 0 {
		out = append(out, Char(carry%base, upper))
		carry /= base
	}
	reverse(out)
	return Trim(string(out))
}

// AddSmall returns a + v for a small non-negative addend.
func AddSmall(base int, a string, v int, upper bool) string {
	var out []byte
	carry := v
	for i := len(a) - 1; i >= 0; i-- {
		t := val(a[i]) + carry
		out = append(out, Char(t%base, upper))
		carry = t / base
	}
	for carry > 0 {
		out = append(out, Char(carry%base, upper))
		carry /= base
	}
	reverse(out)
	return Trim(string(out))
}

// DivSmall returns the quotient and remainder of a / d for a small positive
// divisor.
func DivSmall(base int, a string, d int, upper bool) (string, int) {
	out := make([]byte, len(a))
	r := 0
	for i := 0; i < len(a); i++ {
		cur := r*base + val(a[i])
		out[i] = Char(cur/d, upper)
		r = cur % d
	}
	return Trim(string(out)), r
}

// DivMod returns the quotient and remainder of a / b using schoolbook long
// division.  It panics when b is zero.
func DivMod(base int, a, b string, upper bool) (q, r string) {
	b = Trim(b)
	if b == "" {
		panic("digits: division by zero")
	}
	a = Trim(a)
	quo := make([]byte, len(a))
	for i := 0; i < len(a); i++ {
		r = Trim(r + a[i:i+1])
		n := 0
		for Cmp(r, b) >= 0 {
			r = Sub(base, r, b, upper)
			n++
		}
		quo[i] = Char(n, upper)
	}
	return Trim(string(quo)), Recase(r, upper)
}

// Convert returns the magnitude a written in base from as digits in base to.
func Convert(a string, from, to int, upper bool) string {
	var out string
	for i := 0; i < len(a); i++ {
		out = AddSmall(to, MulSmall(to, out, from, upper), val(a[i]), upper)
	}
	return out
}

// Complement returns the digit-wise complement of a in the given base, so each
// digit d becomes base-1-d.  The width of a is preserved.
func Complement(base int, a string, upper bool) string {
	out := make([]byte, len(a))
	for i := 0; i < len(a); i++ {
		out[i] = Char(base-1-val(a[i]), upper)
	}
	return string(out)
}

// Pow2 returns 2^n in the passed base.
func Pow2(base int, n uint, upper bool) string {
	out := "1"
	for n >= 16 {
		out = MulSmall(base, out, 1<<16, upper)
		n -= 16
	}
	return MulSmall(base, out, 1<<n, upper)
}

// Shl returns a * 2^n.
func Shl(base int, a string, n uint, upper bool) string {
	a = Trim(a)
	if a == "" {
		return ""
	}
	if base == 16 {
		a = MulSmall(base, a, 1<<(n%4), upper)
		return a + strings.Repeat("0", int(n/4))
	}
	for n >= 16 {
		a = MulSmall(base, a, 1<<16, upper)
		n -= 16
	}
	return MulSmall(base, a, 1<<n, upper)
}

// Shr returns a / 2^n rounded toward zero.
func Shr(base int, a string, n uint, upper bool) string {
	a = Trim(a)
	if base == 16 {
		drop := int(n / 4)
		if drop >= len(a) {
			return ""
		}
		q, _ := DivSmall(base, a[:len(a)-drop], 1<<(n%4), upper)
		return q
	}
	for n >= 16 && a != "" {
		a, _ = DivSmall(base, a, 1<<16, upper)
		n -= 16
	}
	if a == "" {
		return ""
	}
	q, _ := DivSmall(base, a, 1<<n, upper)
	return q
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
