package uintx

import (
	"fmt"
	"math/bits"

	"github.com/fxamacker/cbor/v2"
)

// InvRing returns the multiplicative inverse of x in the ring of integers
// modulo 2⁶⁴. Only odd values are invertible; ok is false iff x is even.
//
// The inverse is lifted by Newton-Hensel iteration: y ← y·(2 - x·y) doubles
// the number of correct low bits, and any odd x is its own inverse mod 8, so
// five iterations reach 64 bits.
func InvRing(x uint64) (inv uint64, ok bool) {
	if x&1 == 0 {
		return 0, false
	}
	y := x
	for i := 0; i < 5; i++ {
		y *= 2 - x*y
	}
	return y, true
}

// redcConstant returns inv = -m[0]⁻¹ mod 2⁶⁴ for an odd modulus, the
// per-limb constant consumed by REDC.
func redcConstant(m0 uint64) uint64 {
	inv, _ := InvRing(m0)
	return -inv
}

// montMulVV returns x*y*R⁻¹ mod m with R = 2^(64·len(m)), for x, y < m and
// m odd, inv = -m[0]⁻¹ mod 2⁶⁴.
//
// Interleaved operand scanning: each round folds in one limb of x, then adds
// f·m with f chosen via inv so the lowest limb of the accumulator cancels,
// and shifts down one limb. The accumulator stays below 2m throughout
// (tracked as n limbs plus a one-bit overflow), so a single conditional
// subtraction at the end normalizes into [0, m). No division anywhere.
func montMulVV(x, y, m []uint64, inv uint64) []uint64 {
	n := len(m)
	t := make([]uint64, n)
	var overflow uint64
	for i := 0; i < n; i++ {
		c1 := addMulVVW(t, y, x[i])
		f := t[0] * inv
		c2 := addMulVVW(t, m, f)
		// t[0] == 0 now; dividing by 2⁶⁴ is dropping it.
		copy(t, t[1:])
		hi, c := bits.Add64(c1, c2, 0)
		var c2b uint64
		t[n-1], c2b = bits.Add64(hi, overflow, 0)
		// the running value stays < 2m, so the folded carries fit one bit
		overflow = c + c2b
	}
	if overflow != 0 || cmpVV(t, m) >= 0 {
		subVV(t, t, m)
	}
	return t
}

// doubleModVV sets v = 2v mod m in place, for v < m.
func doubleModVV(v, m []uint64) {
	carry := shl1VV(v)
	if carry != 0 || cmpVV(v, m) >= 0 {
		subVV(v, v, m)
	}
}

// toMontVV returns x·R mod m for x < m, by 64·len(m) modular doublings.
func toMontVV(x, m []uint64) []uint64 {
	v := make([]uint64, len(m))
	copy(v, x)
	for i := 0; i < len(m)*limbBits; i++ {
		doubleModVV(v, m)
	}
	return v
}

// PowModRedc returns x^e mod m for an odd modulus, using Montgomery
// multiplication throughout. inv must be the REDC constant of this exact
// modulus: -m[0]⁻¹ mod 2⁶⁴, i.e. the negation of [InvRing] of the lowest
// limb. The base is converted into Montgomery form once, the whole bit scan
// runs in Montgomery form, and the accumulator is converted back by a final
// REDC multiplication by 1.
//
// An even or zero modulus is a precondition violation and panics; route
// those to [PowMod]. m == 1 degenerates the Montgomery machinery and is
// special-cased to return 0.
func (x Uint[T]) PowModRedc(e, m Uint[T], inv uint64) Uint[T] {
	ms := m.sl()
	if ms[0]&1 == 0 {
		panic("uintx: REDC modulus must be odd and non-zero")
	}
	if isOneVV(ms) {
		return Zero[T]()
	}
	n := len(ms)
	one := make([]uint64, n)
	one[0] = 1
	baseM := toMontVV(remVV(x.sl(), ms), ms)
	acc := toMontVV(one, ms) // R mod m, the Montgomery form of 1
	for i := int(e.BitLen()) - 1; i >= 0; i-- {
		acc = montMulVV(acc, acc, ms, inv)
		if e.Bit(uint(i)) == 1 {
			acc = montMulVV(acc, baseM, ms, inv)
		}
	}
	return Uint[T]{limbs: montMulVV(acc, one, ms, inv)}
}

// Montgomery caches the per-modulus REDC setup: the modulus itself, the REDC
// constant and R² mod m. Deriving it costs a few modular doublings; reusing
// it across many exponentiations against the same modulus amortizes that
// setup, which is the scenario the REDC path exists for.
type Montgomery[T Params] struct {
	m   Uint[T]
	inv uint64
	r2  []uint64 // R² mod m; montMul by r2 converts into Montgomery form
}

// NewMontgomery validates m and precomputes its REDC constants. It returns
// ErrZeroModulus or ErrEvenModulus when m cannot support REDC.
func NewMontgomery[T Params](m Uint[T]) (*Montgomery[T], error) {
	ms := m.sl()
	if isZeroVV(ms) {
		return nil, ErrZeroModulus
	}
	if ms[0]&1 == 0 {
		return nil, ErrEvenModulus
	}
	mc := &Montgomery[T]{
		m:   Uint[T]{limbs: append([]uint64(nil), ms...)},
		inv: redcConstant(ms[0]),
	}
	if !isOneVV(ms) {
		one := make([]uint64, len(ms))
		one[0] = 1
		r := toMontVV(one, ms) // R mod m
		for i := 0; i < len(ms)*limbBits; i++ {
			doubleModVV(r, ms)
		}
		mc.r2 = r // R² mod m
	}
	return mc, nil
}

// Modulus returns the modulus the context was built for.
func (mc *Montgomery[T]) Modulus() Uint[T] { return mc.m }

// Inv returns the REDC constant -m[0]⁻¹ mod 2⁶⁴, for callers driving
// [Uint.PowModRedc] directly.
func (mc *Montgomery[T]) Inv() uint64 { return mc.inv }

// Exp returns base^e mod m using the cached REDC setup. Conversion into
// Montgomery form is a single REDC multiplication by R², cheaper than the
// doubling ladder PowModRedc performs when handed a bare inv.
//
// The m == 1 boundary returns 0.
func (mc *Montgomery[T]) Exp(base, e Uint[T]) Uint[T] {
	ms := mc.m.sl()
	if isOneVV(ms) {
		return Zero[T]()
	}
	n := len(ms)
	one := make([]uint64, n)
	one[0] = 1
	baseM := montMulVV(remVV(base.sl(), ms), mc.r2, ms, mc.inv)
	acc := montMulVV(one, mc.r2, ms, mc.inv) // R mod m
	for i := int(e.BitLen()) - 1; i >= 0; i-- {
		acc = montMulVV(acc, acc, ms, mc.inv)
		if e.Bit(uint(i)) == 1 {
			acc = montMulVV(acc, baseM, ms, mc.inv)
		}
	}
	return Uint[T]{limbs: montMulVV(acc, one, ms, mc.inv)}
}

// montgomeryRaw is the serialized form of a context. Only the modulus is
// stored; the derived constants are recomputed on load.
type montgomeryRaw struct {
	Modulus []byte `cbor:"1,keyasint"`
}

// MarshalBinary encodes the context as CBOR.
func (mc *Montgomery[T]) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&montgomeryRaw{Modulus: mc.m.Bytes()})
}

// UnmarshalBinary decodes a context serialized by MarshalBinary and rebuilds
// the derived constants, validating the modulus as NewMontgomery does.
func (mc *Montgomery[T]) UnmarshalBinary(data []byte) error {
	var raw montgomeryRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("uintx: decode montgomery context: %w", err)
	}
	m, err := FromBytes[T](raw.Modulus)
	if err != nil {
		return err
	}
	rebuilt, err := NewMontgomery(m)
	if err != nil {
		return err
	}
	*mc = *rebuilt
	return nil
}
