package solana

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/mr-tron/base58"
)

// SponsoredTransfer builds a transfer whose fees are paid by a sponsor
// account. The sender signs the transaction; the sponsor's signature
// slot is left empty so the sponsorship service can fill it in before
// broadcasting.
type SponsoredTransfer struct {
	Instructions    []solana.Instruction
	Sender          solana.PrivateKey
	FeePayer        solana.PublicKey
	RecentBlockhash string
}

// NewSponsoredTransfer builds a SOL transfer of the given amount in
// lamports from the sender to the recipient, with feePayer (the
// sponsor's gas address) covering the fees.
func NewSponsoredTransfer(sender solana.PrivateKey, recipient, feePayer solana.PublicKey, lamports uint64, recentBlockhash string) *SponsoredTransfer {
	instruction := system.NewTransferInstruction(
		lamports,
		sender.PublicKey(),
		recipient,
	).Build()

	return &SponsoredTransfer{
		Instructions:    []solana.Instruction{instruction},
		Sender:          sender,
		FeePayer:        feePayer,
		RecentBlockhash: recentBlockhash,
	}
}

// AddInstruction appends an extra instruction to the transfer.
func (tx *SponsoredTransfer) AddInstruction(instruction solana.Instruction) {
	tx.Instructions = append(tx.Instructions, instruction)
}

// BuildAndSign assembles the transaction, signs it with the sender only
// and returns the base64-encoded wire form expected by the sponsorship
// service. The fee payer's signature remains zeroed.
func (tx *SponsoredTransfer) BuildAndSign() (string, error) {
	if tx.RecentBlockhash == "" {
		return "", fmt.Errorf("blockhash is empty")
	}
	if !ValidateBase58(tx.RecentBlockhash) {
		return "", fmt.Errorf("invalid blockhash format: %s", tx.RecentBlockhash)
	}

	blockhash, err := solana.HashFromBase58(tx.RecentBlockhash)
	if err != nil {
		return "", fmt.Errorf("invalid blockhash format: %w", err)
	}

	stx, err := solana.NewTransaction(
		tx.Instructions,
		blockhash,
		solana.TransactionPayer(tx.FeePayer),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	// Sign with the sender only; the sponsor co-signs server-side.
	_, err = stx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(tx.Sender.PublicKey()) {
			return &tx.Sender
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	serialized, err := stx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}

	return base64.StdEncoding.EncodeToString(serialized), nil
}

// ValidateBase58 validates that a string is valid base58 and decodes to
// a 32-byte value (the size of Solana hashes and public keys).
func ValidateBase58(s string) bool {
	if s == "" {
		return false
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(decoded) == 32
}

// ParseAddress parses a base58-encoded Solana address.
func ParseAddress(address string) (solana.PublicKey, error) {
	// Base58 doesn't use 0, O, I, or l; catch these before handing the
	// string to the library for a clearer message.
	for i, c := range address {
		if strings.ContainsRune("0OIl", c) {
			return solana.PublicKey{}, fmt.Errorf("invalid character '%c' at position %d in Solana address", c, i)
		}
	}

	pubKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid Solana address (%s): %w", address, err)
	}
	return pubKey, nil
}

func ValidateAddress(address string) error {
	_, err := ParseAddress(address)
	return err
}

func LamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / 1000000000.0
}

func SOLToLamports(sol float64) uint64 {
	return uint64(sol * 1000000000.0)
}

func FormatBalance(lamports uint64) string {
	return fmt.Sprintf("%.9f SOL", LamportsToSOL(lamports))
}
