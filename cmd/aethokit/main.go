package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "aethokit",
	Version: version,
	Short:   "A command-line client for the Aethokit Gas Sponsorship API",
	Long: `Aethokit lets you send Solana transactions without holding SOL for fees.
A remote gas tank co-signs your partially-signed transactions and pays
the fees on your behalf.

Setup:
  export AETHOKIT_GAS_KEY=<your gas key>
  export AETHOKIT_SENDER_KEY=<base58 private key of the sending account>

Examples:
  aethokit address                                # Show the sponsor's gas address
  aethokit sponsor 0.01 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU
  aethokit sponsor 1.5 <recipient> --network mainnet`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(sponsorCmd)
}
