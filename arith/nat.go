// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package arith

import (
	"math/bits"

	"github.com/decred/wordnum/words"
)

// nat is an unsigned magnitude stored as little endian words, that is, nat[0]
// is the least significant word.  All of the routines below return normalized
// values, meaning there are no most significant zero words, so zero is the
// empty slice.
type nat[W words.Word] []W

// norm strips the most significant zero words.
func (z nat[W]) norm() nat[W] {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// toSeq stores the low n words of the magnitude in a sequence with the given
// endianness.  Missing high order words are zero.
func (z nat[W]) toSeq(e words.Endian, n int) words.Seq[W] {
	s := words.New[W](e, n)
	for i := 0; i < n && i < len(z); i++ {
		s.SetWord(i, z[i])
	}
	return s
}

// natFromSeq reads every word of the sequence as an unsigned magnitude.  The
// result is not normalized so callers may inspect the full width.
func natFromSeq[W words.Word](s words.Seq[W]) nat[W] {
	z := make(nat[W], s.Len())
	for i := range z {
		z[i] = s.Word(i)
	}
	return z
}

// natFromUint64 splits v into words.
func natFromUint64[W words.Word](v uint64) nat[W] {
	w := words.Bits[W]()
	var z nat[W]
	for v != 0 {
		z = append(z, W(v))
		if w == 64 {
			break
		}
		v >>= w
	}
	return z
}

// natToUint64 returns the magnitude as a uint64 and whether or not it fits.
func natToUint64[W words.Word](x nat[W]) (uint64, bool) {
	x = x.norm()
	if natBitLen(x) > 64 {
		return 0, false
	}
	w := words.Bits[W]()
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		if w < 64 {
			v <<= w
		}
		v |= uint64(x[i])
	}
	return v, true
}

// addWW returns x + y + c along with the carry out.  The carry in must be 0 or
// 1.
func addWW[W words.Word](x, y, c W) (z, carry W) {
	s, c1 := bits.Add64(uint64(x), uint64(y), uint64(c))
	if w := words.Bits[W](); w < 64 {
		return W(s), W(s >> w)
	}
	return W(s), W(c1)
}

// subWW returns x - y - b along with the borrow out.  The borrow in must be 0
// or 1.
func subWW[W words.Word](x, y, b W) (z, borrow W) {
	d, b1 := bits.Sub64(uint64(x), uint64(y), uint64(b))
	return W(d), W(b1)
}

// mulWW returns the double width product x * y as its high and low words.
func mulWW[W words.Word](x, y W) (hi, lo W) {
	h, l := bits.Mul64(uint64(x), uint64(y))
	if w := words.Bits[W](); w < 64 {
		return W(l >> w), W(l)
	}
	return W(h), W(l)
}

// natCmp compares two magnitudes and returns -1, 0, or 1.
func natCmp[W words.Word](x, y nat[W]) int {
	x, y = x.norm(), y.norm()
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// natAdd returns x + y.
func natAdd[W words.Word](x, y nat[W]) nat[W] {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat[W], len(x)+1)
	var c W
	for i := range x {
		var yi W
		if i < len(y) {
			yi = y[i]
		}
		z[i], c = addWW(x[i], yi, c)
	}
	z[len(x)] = c
	return z.norm()
}

// natSub returns x - y.  The caller must ensure x >= y.
func natSub[W words.Word](x, y nat[W]) nat[W] {
	z := make(nat[W], len(x))
	var b W
	for i := range x {
		var yi W
		if i < len(y) {
			yi = y[i]
		}
		z[i], b = subWW(x[i], yi, b)
	}
	return z.norm()
}

// natMul returns x * y using the schoolbook method.
func natMul[W words.Word](x, y nat[W]) nat[W] {
	x, y = x.norm(), y.norm()
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat[W], len(x)+len(y))
	for i, xi := range x {
		var c W
		for j, yj := range y {
			// z[i+j] + xi*yj + c always fits in two words.
			hi, lo := mulWW(xi, yj)
			var c1, c2 W
			lo, c1 = addWW(lo, z[i+j], 0)
			lo, c2 = addWW(lo, c, 0)
			z[i+j] = lo
			c = hi + c1 + c2
		}
		z[i+len(y)] = c
	}
	return z.norm()
}

// natShl returns x << n.
func natShl[W words.Word](x nat[W], n uint) nat[W] {
	x = x.norm()
	if len(x) == 0 {
		return nil
	}
	w := words.Bits[W]()
	ws, b := int(n/w), n%w
	z := make(nat[W], len(x)+ws+1)
	for i, v := range x {
		z[i+ws] |= v << b
		if b > 0 {
			z[i+ws+1] |= v >> (w - b)
		}
	}
	return z.norm()
}

// natShr returns x >> n.
func natShr[W words.Word](x nat[W], n uint) nat[W] {
	x = x.norm()
	w := words.Bits[W]()
	ws, b := int(n/w), n%w
	if ws >= len(x) {
		return nil
	}
	z := make(nat[W], len(x)-ws)
	for i := range z {
		v := x[i+ws] >> b
		if b > 0 && i+ws+1 < len(x) {
			v |= x[i+ws+1] << (w - b)
		}
		z[i] = v
	}
	return z.norm()
}

// natBitLen returns the number of bits required to represent x.
func natBitLen[W words.Word](x nat[W]) uint {
	x = x.norm()
	if len(x) == 0 {
		return 0
	}
	top := uint(bits.Len64(uint64(x[len(x)-1])))
	return uint(len(x)-1)*words.Bits[W]() + top
}

// natBit returns the value of bit i of x.
func natBit[W words.Word](x nat[W], i uint) uint {
	w := words.Bits[W]()
	idx := int(i / w)
	if idx >= len(x) {
		return 0
	}
	return uint(x[idx]>>(i%w)) & 1
}

// natDivWord returns x / v and x % v for a single word divisor v != 0.
func natDivWord[W words.Word](x nat[W], v W) (nat[W], W) {
	w := words.Bits[W]()
	q := make(nat[W], len(x))
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		if w == 64 {
			var qi uint64
			qi, r = bits.Div64(r, uint64(x[i]), uint64(v))
			q[i] = W(qi)
			continue
		}
		cur := r<<w | uint64(x[i])
		q[i] = W(cur / uint64(v))
		r = cur % uint64(v)
	}
	return q.norm(), W(r)
}

// natDivMod returns the quotient and remainder of u / v.  The divisor must not
// be zero.
//
// Multi-word divisors use binary long division, which keeps the routine
// identical for every word size.
func natDivMod[W words.Word](u, v nat[W]) (q, r nat[W]) {
	u, v = u.norm(), v.norm()
	if len(v) == 0 {
		panic("arith: division by zero")
	}
	if natCmp(u, v) < 0 {
		return nil, append(nat[W](nil), u...)
	}
	if len(v) == 1 {
		q, rw := natDivWord(u, v[0])
		if rw == 0 {
			return q, nil
		}
		return q, nat[W]{rw}
	}

	w := words.Bits[W]()
	q = make(nat[W], len(u))
	for i := int(natBitLen(u)) - 1; i >= 0; i-- {
		r = natShl(r, 1)
		if natBit(u, uint(i)) == 1 {
			if len(r) == 0 {
				r = nat[W]{1}
			} else {
				r[0] |= 1
			}
		}
		if natCmp(r, v) >= 0 {
			r = natSub(r, v)
			q[uint(i)/w] |= W(1) << (uint(i) % w)
		}
	}
	return q.norm(), r.norm()
}

// natNegWidth returns 2^(n*w) - x truncated to exactly n words, which is the
// two's complement negation of x at a width of n words.  The result is not
// normalized.
func natNegWidth[W words.Word](x nat[W], n int) nat[W] {
	z := make(nat[W], n)
	c := W(1)
	for i := range z {
		var xi W
		if i < len(x) {
			xi = x[i]
		}
		z[i], c = addWW(^xi, 0, c)
	}
	return z
}
