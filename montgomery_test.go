package uintx

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestInvRingSmall(t *testing.T) {
	for x := uint64(0); x < 1<<16; x++ {
		inv, ok := InvRing(x)
		if x&1 == 0 {
			require.False(t, ok, "x=%d", x)
			continue
		}
		require.True(t, ok, "x=%d", x)
		require.Equal(t, uint64(1), x*inv, "x=%d", x)
	}
}

func TestInvRingProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)
	properties.Property("x * InvRing(x) == 1 mod 2^64 for odd x", prop.ForAll(
		func(x uint64) bool {
			x |= 1
			inv, ok := InvRing(x)
			return ok && x*inv == 1
		},
		gen.UInt64(),
	))
	properties.Property("InvRing rejects even x", prop.ForAll(
		func(x uint64) bool {
			_, ok := InvRing(x &^ 1)
			return !ok
		},
		gen.UInt64(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRedcConstant(t *testing.T) {
	// m0 * (-m0^-1) ≡ -1 mod 2^64
	for _, m0 := range []uint64{1, 3, 497, 561, ^uint64(0), 0xffffffff00000001} {
		require.Equal(t, ^uint64(0), m0*redcConstant(m0), "m0=%d", m0)
	}
}

func TestNewMontgomeryErrors(t *testing.T) {
	_, err := NewMontgomery(Zero[U256]())
	require.ErrorIs(t, err, ErrZeroModulus)

	_, err = NewMontgomery(FromUint64[U256](42))
	require.ErrorIs(t, err, ErrEvenModulus)

	mc, err := NewMontgomery(FromUint64[U256](497))
	require.NoError(t, err)
	require.Equal(t, int64(497), mc.Modulus().BigInt().Int64())
}

func TestPowModRedcPanicsOnBadModulus(t *testing.T) {
	require.Panics(t, func() {
		FromUint64[U256](2).PowModRedc(One[U256](), FromUint64[U256](42), 0)
	})
	require.Panics(t, func() {
		FromUint64[U256](2).PowModRedc(One[U256](), Zero[U256](), 0)
	})
}

// TestMontgomeryRSquare checks the precomputed R² mod m against big.Int.
func TestMontgomeryRSquare(t *testing.T) {
	m := FromUint64[U256](561)
	mc, err := NewMontgomery(m)
	require.NoError(t, err)

	r := new(big.Int).Lsh(big.NewInt(1), uint(nbLimbs[U256]())*limbBits)
	ref := new(big.Int).Mul(r, r)
	ref.Mod(ref, m.BigInt())
	got := Uint[U256]{limbs: mc.r2}
	require.Equal(t, 0, got.BigInt().Cmp(ref))
}

// TestMontgomeryRoundTrip: entering Montgomery form and leaving it via a
// REDC multiplication by 1 is the identity on [0, m).
func TestMontgomeryRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("fromMont(toMont(x)) == x mod m", prop.ForAll(
		func(x, m Uint[U256]) bool {
			m = m.Or(One[U256]())
			ms := m.sl()
			inv := redcConstant(ms[0])
			one := make([]uint64, len(ms))
			one[0] = 1
			red := remVV(x.sl(), ms)
			back := montMulVV(toMontVV(red, ms), one, ms, inv)
			return cmpVV(back, red) == 0
		},
		genUint[U256](), genUint[U256](),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func testMontgomeryExp[T Params](t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("Montgomery.Exp matches PowMod", prop.ForAll(
		func(base, exp, m Uint[T]) bool {
			m = m.Or(One[T]())
			mc, err := NewMontgomery(m)
			if err != nil {
				return false
			}
			return mc.Exp(base, exp).Equal(base.PowMod(exp, m))
		},
		genUint[T](), genUint[T](), genUint[T](),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMontgomeryExp(t *testing.T) {
	t.Run("U64", testMontgomeryExp[U64])
	t.Run("u96", testMontgomeryExp[u96])
	t.Run("U256", testMontgomeryExp[U256])
	t.Run("U512", testMontgomeryExp[U512])
}

func TestMontgomeryExpBoundary(t *testing.T) {
	// m == 1 is odd but degenerates the Montgomery machinery; it is
	// special-cased to return 0, consistently with PowMod.
	mc, err := NewMontgomery(One[U256]())
	require.NoError(t, err)
	require.True(t, mc.Exp(FromUint64[U256](7), FromUint64[U256](560)).IsZero())
	require.True(t, FromUint64[U256](7).PowModRedc(FromUint64[U256](560), One[U256](), redcConstant(1)).IsZero())
}

func TestMontgomerySerialization(t *testing.T) {
	m, err := FromBig[U256](new(big.Int).SetBytes([]byte("a rather large odd modulus!")))
	require.NoError(t, err)
	m = m.Or(One[U256]())

	mc, err := NewMontgomery(m)
	require.NoError(t, err)
	data, err := mc.MarshalBinary()
	require.NoError(t, err)

	var back Montgomery[U256]
	require.NoError(t, back.UnmarshalBinary(data))

	if diff := cmp.Diff(mc.Modulus().Limbs(), back.Modulus().Limbs()); diff != "" {
		t.Fatalf("modulus mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, mc.Inv(), back.Inv())

	base, exp := FromUint64[U256](1234567), FromUint64[U256](89)
	require.True(t, mc.Exp(base, exp).Equal(back.Exp(base, exp)))

	require.Error(t, back.UnmarshalBinary([]byte{0xff}))
}
