// Command uintx is a small toolbox around the uintx arithmetic core: it
// verifies the REDC exponentiation path against the generic one and runs a
// Fermat pseudoprime scan on top of PowMod.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uintx",
	Short: "fixed-width modular exponentiation toolbox",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
