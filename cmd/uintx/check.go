package main

import (
	"fmt"
	"io"
	"math/big"
	"runtime"

	"github.com/consensys/uintx"
	"github.com/consensys/uintx/logger"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"
)

// checkCmd cross-validates the three exponentiation paths (PowMod,
// PowModRedc, Montgomery.Exp) and math/big. The 8-bit width is swept
// exhaustively: every odd modulus against every base and exponent. Wider
// widths are sampled from a deterministic blake2b stream, so a reported
// failure reproduces bit for bit.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "verifies the REDC exponentiation path against the generic one",
	RunE:  runCheck,
}

var (
	fSamples int
	fJobs    int
	fSeed    string
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVar(&fSamples, "samples", 512, "random samples for the 256-bit sweep")
	checkCmd.Flags().IntVar(&fJobs, "jobs", runtime.NumCPU(), "parallel workers")
	checkCmd.Flags().StringVar(&fSeed, "seed", "uintx-check", "seed of the deterministic input stream")
}

// u8 is the sweep width: small enough that all odd moduli, bases and
// exponents fit in one pass.
type u8 struct{}

func (u8) NbBits() uint { return 8 }

func runCheck(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	log.Info().Int("jobs", fJobs).Msg("exhaustive 8-bit sweep")
	g := new(errgroup.Group)
	g.SetLimit(fJobs)
	for m := uint64(1); m < 1<<8; m += 2 {
		m := m
		g.Go(func() error {
			mu := uintx.FromUint64[u8](m)
			mc, err := uintx.NewMontgomery(mu)
			if err != nil {
				return err
			}
			inv, _ := uintx.InvRing(m)
			inv = -inv
			for base := uint64(0); base < 1<<8; base++ {
				for exp := uint64(0); exp < 1<<8; exp++ {
					b, e := uintx.FromUint64[u8](base), uintx.FromUint64[u8](exp)
					want := b.PowMod(e, mu)
					if got := b.PowModRedc(e, mu, inv); !got.Equal(want) {
						return fmt.Errorf("PowModRedc(%d, %d, %d) = %s, PowMod = %s", base, exp, m, got, want)
					}
					if got := mc.Exp(b, e); !got.Equal(want) {
						return fmt.Errorf("Montgomery.Exp(%d, %d, %d) = %s, PowMod = %s", base, exp, m, got, want)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Int("moduli", 128).Msg("exhaustive 8-bit sweep passed")

	log.Info().Int("samples", fSamples).Str("seed", fSeed).Msg("sampled 256-bit sweep")
	stream, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return err
	}
	if _, err := stream.Write([]byte(fSeed)); err != nil {
		return err
	}
	type sample struct {
		base, exp, mod uintx.Uint[uintx.U256]
	}
	samples := make([]sample, fSamples)
	for i := range samples {
		var s sample
		if s.base, err = drawU256(stream); err != nil {
			return err
		}
		if s.exp, err = drawU256(stream); err != nil {
			return err
		}
		if s.mod, err = drawU256(stream); err != nil {
			return err
		}
		s.mod = s.mod.Or(uintx.One[uintx.U256]()) // REDC needs an odd modulus
		samples[i] = s
	}
	g = new(errgroup.Group)
	g.SetLimit(fJobs)
	for i, s := range samples {
		i, s := i, s
		g.Go(func() error {
			mc, err := uintx.NewMontgomery(s.mod)
			if err != nil {
				return err
			}
			want := s.base.PowMod(s.exp, s.mod)
			if got := mc.Exp(s.base, s.exp); !got.Equal(want) {
				return fmt.Errorf("sample %d: Montgomery.Exp = %s, PowMod = %s (m=%s)", i, got, want, s.mod)
			}
			ref := new(big.Int).Exp(s.base.BigInt(), s.exp.BigInt(), s.mod.BigInt())
			if want.BigInt().Cmp(ref) != 0 {
				return fmt.Errorf("sample %d: PowMod = %s, big.Int = %s (m=%s)", i, want, ref.Text(16), s.mod)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("sampled 256-bit sweep passed")
	return nil
}

func drawU256(stream io.Reader) (uintx.Uint[uintx.U256], error) {
	var buf [32]byte
	if _, err := io.ReadFull(stream, buf[:]); err != nil {
		return uintx.Uint[uintx.U256]{}, err
	}
	return uintx.FromBytes[uintx.U256](buf[:])
}
