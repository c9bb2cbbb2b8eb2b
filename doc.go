// Package uintx implements fixed bit-width unsigned integers and modular
// exponentiation over them, with a generic division-based path and a
// Montgomery-reduction (REDC) path for odd moduli.
//
// The bit width is a compile-time parameter: a value of type [Uint] has
// exactly ceil(T.NbBits()/64) 64-bit limbs, and never grows or reallocates.
// Common widths (U64 ... U4096) are declared in this package; any other width
// is obtained by declaring a type implementing [Params]:
//
//	type U96 struct{}
//
//	func (U96) NbBits() uint { return 96 }
//
// Values are immutable: every operation returns a fresh value and never
// mutates its operands, so values can be shared freely between goroutines.
//
// For many exponentiations against one odd modulus, precompute a
// [Montgomery] context once and call [Montgomery.Exp]; the one-time setup
// (the REDC constant and R² mod m) is then amortized across calls.
package uintx
