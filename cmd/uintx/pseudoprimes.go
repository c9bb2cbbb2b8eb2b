package main

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/uintx"
	"github.com/consensys/uintx/logger"
	"github.com/spf13/cobra"
)

// pseudoprimesCmd lists Fermat pseudoprimes: odd composites n with
// base^(n-1) ≡ 1 mod n. Carmichael numbers (561, 1105, 1729, ...) show up
// for every base coprime to them; they are the classic stress input for a
// modexp implementation.
var pseudoprimesCmd = &cobra.Command{
	Use:   "pseudoprimes",
	Short: "scans for Fermat pseudoprimes using the generic modexp path",
	RunE:  runPseudoprimes,
}

var (
	fLimit uint64
	fBase  uint64
)

func init() {
	rootCmd.AddCommand(pseudoprimesCmd)
	pseudoprimesCmd.Flags().Uint64Var(&fLimit, "limit", 2000, "scan odd composites up to this bound")
	pseudoprimesCmd.Flags().Uint64Var(&fBase, "base", 2, "Fermat base")
}

func runPseudoprimes(cmd *cobra.Command, args []string) error {
	log := logger.Logger()

	composite := bitset.New(uint(fLimit) + 1)
	for i := uint64(2); i*i <= fLimit; i++ {
		if composite.Test(uint(i)) {
			continue
		}
		for j := i * i; j <= fLimit; j += i {
			composite.Set(uint(j))
		}
	}

	one := uintx.One[uintx.U64]()
	base := uintx.FromUint64[uintx.U64](fBase)
	var found int
	for n := uint64(3); n <= fLimit; n += 2 {
		if !composite.Test(uint(n)) {
			continue
		}
		m := uintx.FromUint64[uintx.U64](n)
		if base.PowMod(m.Sub(one), m).Equal(one) {
			cmd.Println(n)
			found++
		}
	}
	log.Info().Uint64("base", fBase).Uint64("limit", fLimit).Int("found", found).Msg("pseudoprime scan done")
	return nil
}
