package main

import (
	"fmt"

	"github.com/aethokit/aethokit-go"
	solanapay "github.com/aethokit/aethokit-go/chains/solana"
	"github.com/fatih/color"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var sponsorCmd = &cobra.Command{
	Use:   "sponsor [amount] [address]",
	Short: "Send SOL with fees paid by the gas tank",
	Long: `Send SOL to another address without paying the transaction fee yourself.
The transfer is signed locally with your sender key, then submitted to
the sponsorship service, which co-signs it as fee payer and broadcasts
it.

Examples:
  aethokit sponsor 0.01 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU
  aethokit sponsor 1.5 <recipient> --network mainnet
  aethokit sponsor 0.25 <recipient> --rpc https://my-rpc.example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runSponsor,
}

func init() {
	sponsorCmd.Flags().String("network", NetworkDevnet, "network to broadcast on (mainnet, devnet)")
	sponsorCmd.Flags().String("rpc", "", "custom Solana RPC endpoint (overrides --network)")
}

func runSponsor(cmd *cobra.Command, args []string) error {
	amountStr := args[0]
	recipientAddress := args[1]

	network, _ := cmd.Flags().GetString("network")
	rpcURL, _ := cmd.Flags().GetString("rpc")

	hint := network
	if rpcURL == "" {
		var err error
		rpcURL, err = rpcEndpoint(network)
		if err != nil {
			return err
		}
	} else {
		hint = rpcURL
	}

	lamports, err := parseAmount(amountStr)
	if err != nil {
		return err
	}

	recipient, err := solanapay.ParseAddress(recipientAddress)
	if err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	sender, err := loadSenderKey()
	if err != nil {
		return err
	}

	gasKey, err := loadGasKey()
	if err != nil {
		return err
	}

	client, err := aethokit.New(aethokit.Config{
		GasKey:       gasKey,
		RPCOrNetwork: hint,
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	gasAddress, err := client.GetGasAddress(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch gas address: %w", err)
	}
	fmt.Printf("⛽ Fee payer: %s\n", color.CyanString(gasAddress))

	feePayer, err := solanapay.ParseAddress(gasAddress)
	if err != nil {
		return fmt.Errorf("service returned an invalid gas address: %w", err)
	}

	recent, err := rpc.New(rpcURL).GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	transfer := solanapay.NewSponsoredTransfer(sender, recipient, feePayer, lamports, recent.Value.Blockhash.String())
	serialized, err := transfer.BuildAndSign()
	if err != nil {
		return err
	}

	fmt.Printf("📤 Sending %s to %s...\n", solanapay.FormatBalance(lamports), recipientAddress)

	hash, err := client.SponsorTx(ctx, serialized)
	if err != nil {
		return fmt.Errorf("failed to sponsor transaction: %w", err)
	}

	fmt.Printf("✅ Transaction sponsored!\n")
	fmt.Printf("🔗 Hash: %s\n", color.GreenString(hash))
	return nil
}

// parseAmount converts a SOL amount string to lamports, rejecting
// values below one lamport of precision.
func parseAmount(amountStr string) (uint64, error) {
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}
	if amount.IsNegative() || amount.IsZero() {
		return 0, fmt.Errorf("amount must be positive")
	}

	lamports := amount.Mul(decimal.NewFromInt(1_000_000_000))
	if !lamports.IsInteger() {
		return 0, fmt.Errorf("amount %s is more precise than one lamport", amountStr)
	}
	value := lamports.BigInt()
	if !value.IsUint64() {
		return 0, fmt.Errorf("amount %s is too large", amountStr)
	}
	return value.Uint64(), nil
}
