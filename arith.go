package uintx

import "math/bits"

// Low-level limb vector primitives. All slices are little-endian and, unless
// stated otherwise, of equal length. These are the only places carries are
// propagated by hand; everything above composes them.

// addVV sets z = x + y and returns the carry-out. z may alias x or y.
func addVV(z, x, y []uint64) (carry uint64) {
	for i := range z {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// subVV sets z = x - y and returns the borrow-out. z may alias x or y.
func subVV(z, x, y []uint64) (borrow uint64) {
	for i := range z {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// addMulVVW sets z = z + x*y and returns the carry-out word.
func addMulVVW(z, x []uint64, y uint64) (carry uint64) {
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		lo, c := bits.Add64(lo, carry, 0)
		hi += c
		z[i], c = bits.Add64(z[i], lo, 0)
		// hi ≤ 2⁶⁴-2, so hi + c never wraps
		carry = hi + c
	}
	return carry
}

// shl1VV shifts z left by one bit in place and returns the bit shifted out.
func shl1VV(z []uint64) (carry uint64) {
	for i := range z {
		next := z[i] >> (limbBits - 1)
		z[i] = z[i]<<1 | carry
		carry = next
	}
	return carry
}

func cmpVV(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func isZeroVV(x []uint64) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}

// isOneVV reports whether x == 1.
func isOneVV(x []uint64) bool {
	if x[0] != 1 {
		return false
	}
	for _, w := range x[1:] {
		if w != 0 {
			return false
		}
	}
	return true
}

func bitLenVV(x []uint64) uint {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return uint(i)*limbBits + uint(bits.Len64(x[i]))
		}
	}
	return 0
}

// mulVV returns the full double-width product x*y as len(x)+len(y) limbs.
func mulVV(x, y []uint64) []uint64 {
	t := make([]uint64, len(x)+len(y))
	for i, yi := range y {
		t[i+len(x)] = addMulVVW(t[i:i+len(x)], x, yi)
	}
	return t
}

// remVV returns p mod m as len(m) limbs, by restoring binary division:
// bits of p are shifted into a running remainder kept below m by one
// conditional subtraction per bit. len(p) may exceed len(m). m must be
// non-zero.
func remVV(p, m []uint64) []uint64 {
	r := make([]uint64, len(m))
	for i := int(bitLenVV(p)) - 1; i >= 0; i-- {
		carry := shl1VV(r)
		r[0] |= (p[i/limbBits] >> (uint(i) % limbBits)) & 1
		// r was < m, so 2r+1 < 2m: a single subtraction restores r < m.
		// When the shift carried out, r wrapped past 2⁶⁴ˡᵉⁿ ≥ m and the
		// borrow cancels against the carry.
		if carry != 0 || cmpVV(r, m) >= 0 {
			subVV(r, r, m)
		}
	}
	return r
}

// mulModVV returns x*y mod m. Operands need not be reduced.
func mulModVV(x, y, m []uint64) []uint64 {
	return remVV(mulVV(x, y), m)
}

// Add returns x + y, wrapping at the width.
func (x Uint[T]) Add(y Uint[T]) Uint[T] {
	z := make([]uint64, nbLimbs[T]())
	addVV(z, x.sl(), y.sl())
	z[len(z)-1] &= topMask[T]()
	return Uint[T]{limbs: z}
}

// Sub returns x - y, wrapping at the width.
func (x Uint[T]) Sub(y Uint[T]) Uint[T] {
	z := make([]uint64, nbLimbs[T]())
	subVV(z, x.sl(), y.sl())
	z[len(z)-1] &= topMask[T]()
	return Uint[T]{limbs: z}
}

// Mul returns x * y, wrapping at the width.
func (x Uint[T]) Mul(y Uint[T]) Uint[T] {
	n := nbLimbs[T]()
	t := mulVV(x.sl(), y.sl())
	z := t[:n:n]
	z[n-1] &= topMask[T]()
	return Uint[T]{limbs: z}
}

// Or returns x | y.
func (x Uint[T]) Or(y Uint[T]) Uint[T] {
	z := make([]uint64, nbLimbs[T]())
	xs, ys := x.sl(), y.sl()
	for i := range z {
		z[i] = xs[i] | ys[i]
	}
	return Uint[T]{limbs: z}
}

// And returns x & y.
func (x Uint[T]) And(y Uint[T]) Uint[T] {
	z := make([]uint64, nbLimbs[T]())
	xs, ys := x.sl(), y.sl()
	for i := range z {
		z[i] = xs[i] & ys[i]
	}
	return Uint[T]{limbs: z}
}

// Xor returns x ^ y.
func (x Uint[T]) Xor(y Uint[T]) Uint[T] {
	z := make([]uint64, nbLimbs[T]())
	xs, ys := x.sl(), y.sl()
	for i := range z {
		z[i] = xs[i] ^ ys[i]
	}
	return Uint[T]{limbs: z}
}

// Lsh returns x << k, wrapping at the width.
func (x Uint[T]) Lsh(k uint) Uint[T] {
	n := nbLimbs[T]()
	z := make([]uint64, n)
	xs := x.sl()
	limbShift, bitShift := int(k/limbBits), k%limbBits
	for i := n - 1; i >= limbShift; i-- {
		z[i] = xs[i-limbShift] << bitShift
		if bitShift > 0 && i > limbShift {
			z[i] |= xs[i-limbShift-1] >> (limbBits - bitShift)
		}
	}
	z[n-1] &= topMask[T]()
	return Uint[T]{limbs: z}
}

// Rsh returns x >> k.
func (x Uint[T]) Rsh(k uint) Uint[T] {
	n := nbLimbs[T]()
	z := make([]uint64, n)
	xs := x.sl()
	limbShift, bitShift := int(k/limbBits), k%limbBits
	for i := 0; i < n-limbShift; i++ {
		z[i] = xs[i+limbShift] >> bitShift
		if bitShift > 0 && i+limbShift+1 < n {
			z[i] |= xs[i+limbShift+1] << (limbBits - bitShift)
		}
	}
	return Uint[T]{limbs: z}
}

// Mod returns x mod m. It panics if m is zero.
func (x Uint[T]) Mod(m Uint[T]) Uint[T] {
	ms := m.sl()
	if isZeroVV(ms) {
		panic("uintx: division by zero")
	}
	return Uint[T]{limbs: remVV(x.sl(), ms)}
}
