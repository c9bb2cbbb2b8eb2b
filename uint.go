package uintx

import (
	"errors"
	"math/big"
)

// Params describes a member of the fixed-width unsigned integer family. The
// width is resolved at compile time through the type parameter of [Uint];
// declaring a new width is declaring a new empty struct with a NbBits method.
type Params interface {
	// NbBits returns the bit width of the integer type. Must be positive and
	// constant for a given type.
	NbBits() uint
}

var (
	// ErrWidthMismatch is returned by constructors when the input carries
	// more limbs, or set bits above the width, than the target type holds.
	ErrWidthMismatch = errors.New("uintx: value does not fit the declared width")
	// ErrZeroModulus is returned by NewMontgomery for a zero modulus.
	ErrZeroModulus = errors.New("uintx: modulus must be non-zero")
	// ErrEvenModulus is returned by NewMontgomery for an even modulus.
	ErrEvenModulus = errors.New("uintx: modulus must be odd")
)

const limbBits = 64

// Uint is an immutable unsigned integer of exactly T.NbBits() bits, stored as
// ceil(NbBits/64) little-endian 64-bit limbs. Bits at positions ≥ NbBits()
// are always zero. The zero value of Uint is the number zero.
type Uint[T Params] struct {
	limbs []uint64
}

func nbLimbs[T Params]() int {
	var t T
	return int((t.NbBits() + limbBits - 1) / limbBits)
}

// topMask returns the mask applied to the most significant limb.
func topMask[T Params]() uint64 {
	var t T
	if r := t.NbBits() % limbBits; r != 0 {
		return (uint64(1) << r) - 1
	}
	return ^uint64(0)
}

// sl returns the limbs of x, materializing the zero value if needed. Callers
// must not write through the returned slice.
func (x Uint[T]) sl() []uint64 {
	if x.limbs != nil {
		return x.limbs
	}
	return make([]uint64, nbLimbs[T]())
}

// Zero returns the zero value of the width T.
func Zero[T Params]() Uint[T] {
	return Uint[T]{limbs: make([]uint64, nbLimbs[T]())}
}

// One returns 1 at the width T.
func One[T Params]() Uint[T] {
	l := make([]uint64, nbLimbs[T]())
	l[0] = 1
	return Uint[T]{limbs: l}
}

// FromUint64 returns v truncated to the width T.
func FromUint64[T Params](v uint64) Uint[T] {
	l := make([]uint64, nbLimbs[T]())
	l[0] = v
	if len(l) == 1 {
		l[0] &= topMask[T]()
	}
	return Uint[T]{limbs: l}
}

// FromLimbs constructs a value from little-endian limbs. The slice must have
// exactly ceil(NbBits/64) entries and carry no bits above NbBits-1;
// otherwise ErrWidthMismatch is returned. The slice is copied.
func FromLimbs[T Params](limbs []uint64) (Uint[T], error) {
	n := nbLimbs[T]()
	if len(limbs) != n {
		return Uint[T]{}, ErrWidthMismatch
	}
	if limbs[n-1]&^topMask[T]() != 0 {
		return Uint[T]{}, ErrWidthMismatch
	}
	l := make([]uint64, n)
	copy(l, limbs)
	return Uint[T]{limbs: l}, nil
}

// FromBig converts a big.Int. It returns ErrWidthMismatch if v is negative or
// has more than NbBits bits.
func FromBig[T Params](v *big.Int) (Uint[T], error) {
	var t T
	if v.Sign() < 0 || uint(v.BitLen()) > t.NbBits() {
		return Uint[T]{}, ErrWidthMismatch
	}
	l := make([]uint64, nbLimbs[T]())
	b := v.Bytes() // big-endian
	for i := 0; i < len(b); i++ {
		pos := len(b) - 1 - i // byte position from the little end
		l[pos/8] |= uint64(b[i]) << (8 * (pos % 8))
	}
	return Uint[T]{limbs: l}, nil
}

// FromBytes interprets b as a big-endian unsigned integer. Inputs longer than
// the width, or with set bits above it, are rejected with ErrWidthMismatch.
func FromBytes[T Params](b []byte) (Uint[T], error) {
	return FromBig[T](new(big.Int).SetBytes(b))
}

// Limbs returns a copy of the little-endian limbs of x.
func (x Uint[T]) Limbs() []uint64 {
	l := make([]uint64, nbLimbs[T]())
	copy(l, x.sl())
	return l
}

// BigInt returns x as a big.Int.
func (x Uint[T]) BigInt() *big.Int {
	xs := x.sl()
	b := make([]byte, len(xs)*8)
	for i, w := range xs {
		for j := 0; j < 8; j++ {
			b[len(b)-1-i*8-j] = byte(w >> (8 * j))
		}
	}
	return new(big.Int).SetBytes(b)
}

// Bytes returns x as a big-endian byte slice of ceil(NbBits/8) bytes.
func (x Uint[T]) Bytes() []byte {
	var t T
	n := int((t.NbBits() + 7) / 8)
	b := make([]byte, n)
	x.BigInt().FillBytes(b)
	return b
}

// String returns x in hexadecimal, 0x-prefixed.
func (x Uint[T]) String() string {
	return "0x" + x.BigInt().Text(16)
}

// IsZero reports whether x == 0.
func (x Uint[T]) IsZero() bool {
	return isZeroVV(x.sl())
}

// Equal reports whether x == y.
func (x Uint[T]) Equal(y Uint[T]) bool {
	return cmpVV(x.sl(), y.sl()) == 0
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Uint[T]) Cmp(y Uint[T]) int {
	return cmpVV(x.sl(), y.sl())
}

// Bit returns bit i of x (0 or 1). Bits at or above the width are zero.
func (x Uint[T]) Bit(i uint) uint64 {
	xs := x.sl()
	if i >= uint(len(xs))*limbBits {
		return 0
	}
	return (xs[i/limbBits] >> (i % limbBits)) & 1
}

// BitLen returns the position of the highest set bit of x, plus one. It is 0
// iff x is zero.
func (x Uint[T]) BitLen() uint {
	return bitLenVV(x.sl())
}

// IsOdd reports whether the least significant bit of x is set.
func (x Uint[T]) IsOdd() bool {
	return x.sl()[0]&1 == 1
}
