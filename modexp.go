package uintx

// PowMod returns x^e mod m for any non-zero modulus, odd or even.
//
// It is plain binary exponentiation: the bits of e are scanned from the most
// significant down, the accumulator is squared at every step and multiplied
// by the (reduced) base when the bit is set, with a full reduction mod m
// after each product. No precomputation is needed; for repeated calls
// against one odd modulus prefer [Montgomery.Exp].
//
// m == 0 is a precondition violation and panics. e == 0 yields 1 mod m,
// which is 0 when m == 1.
func (x Uint[T]) PowMod(e, m Uint[T]) Uint[T] {
	ms := m.sl()
	if isZeroVV(ms) {
		panic("uintx: modulus is zero")
	}
	if isOneVV(ms) {
		return Zero[T]()
	}
	base := remVV(x.sl(), ms)
	acc := make([]uint64, len(ms))
	acc[0] = 1
	for i := int(e.BitLen()) - 1; i >= 0; i-- {
		acc = mulModVV(acc, acc, ms)
		if e.Bit(uint(i)) == 1 {
			acc = mulModVV(acc, base, ms)
		}
	}
	return Uint[T]{limbs: acc}
}
