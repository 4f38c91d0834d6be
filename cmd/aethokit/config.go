package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/term"
)

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"
)

// rpcEndpoint returns the Solana RPC URL for a network name.
func rpcEndpoint(network string) (string, error) {
	switch network {
	case NetworkMainnet:
		return rpc.MainNetBeta_RPC, nil
	case NetworkDevnet:
		return rpc.DevNet_RPC, nil
	default:
		return "", fmt.Errorf("unsupported network: %s. Supported networks: mainnet, devnet", network)
	}
}

// loadGasKey reads the gas key from AETHOKIT_GAS_KEY, falling back to
// an interactive prompt so the key never ends up in shell history.
func loadGasKey() (string, error) {
	if key := os.Getenv("AETHOKIT_GAS_KEY"); key != "" {
		return key, nil
	}

	fmt.Print("Enter your gas key: ")
	key, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read gas key: %w", err)
	}
	fmt.Println() // New line after hidden input

	return string(key), nil
}

// loadSenderKey reads the sending account's private key from
// AETHOKIT_SENDER_KEY.
func loadSenderKey() (solana.PrivateKey, error) {
	encoded := os.Getenv("AETHOKIT_SENDER_KEY")
	if encoded == "" {
		return nil, fmt.Errorf("no sender key found. Set AETHOKIT_SENDER_KEY to a base58-encoded private key")
	}

	key, err := solana.PrivateKeyFromBase58(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid sender key: %w", err)
	}
	return key, nil
}
