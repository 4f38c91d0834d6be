package main

import (
	"fmt"

	"github.com/aethokit/aethokit-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Show the sponsor's gas address",
	Long: `Fetch the funding address of the gas tank associated with your gas key.
Transactions submitted for sponsorship must name this address as their
fee payer.

Example:
  aethokit address`,
	Args: cobra.NoArgs,
	RunE: runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	gasKey, err := loadGasKey()
	if err != nil {
		return err
	}

	client, err := aethokit.New(aethokit.Config{GasKey: gasKey})
	if err != nil {
		return err
	}

	gasAddress, err := client.GetGasAddress(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch gas address: %w", err)
	}

	fmt.Printf("⛽ Gas address: %s\n", color.GreenString(gasAddress))
	return nil
}
