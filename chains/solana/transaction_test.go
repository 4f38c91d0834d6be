package solana

import (
	"encoding/base64"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndSign_LeavesFeePayerUnsigned(t *testing.T) {
	sender := solana.NewWallet().PrivateKey
	recipient := solana.NewWallet().PublicKey()
	feePayer := solana.NewWallet().PublicKey()
	blockhash := solana.NewWallet().PublicKey().String() // any 32-byte base58 value

	transfer := NewSponsoredTransfer(sender, recipient, feePayer, 10_000_000, blockhash)
	encoded, err := transfer.BuildAndSign()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(raw))
	require.NoError(t, err)

	// The sponsor must be account 0 (the fee payer slot) and unsigned.
	require.NotEmpty(t, tx.Message.AccountKeys)
	assert.Equal(t, feePayer, tx.Message.AccountKeys[0])
	require.Len(t, tx.Signatures, 2)
	assert.True(t, tx.Signatures[0].IsZero(), "fee payer signature should be empty")
	assert.False(t, tx.Signatures[1].IsZero(), "sender signature should be present")
}

func TestBuildAndSign_RejectsBadBlockhash(t *testing.T) {
	sender := solana.NewWallet().PrivateKey
	recipient := solana.NewWallet().PublicKey()
	feePayer := solana.NewWallet().PublicKey()

	transfer := NewSponsoredTransfer(sender, recipient, feePayer, 1, "")
	_, err := transfer.BuildAndSign()
	require.Error(t, err)

	transfer = NewSponsoredTransfer(sender, recipient, feePayer, 1, "not-a-blockhash")
	_, err = transfer.BuildAndSign()
	require.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	valid := solana.NewWallet().PublicKey().String()
	parsed, err := ParseAddress(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, parsed.String())

	_, err = ParseAddress("0invalid")
	assert.Error(t, err)

	_, err = ParseAddress("tooshort")
	assert.Error(t, err)
}

func TestValidateBase58(t *testing.T) {
	assert.True(t, ValidateBase58(solana.NewWallet().PublicKey().String()))
	assert.False(t, ValidateBase58(""))
	assert.False(t, ValidateBase58("0OIl"))
	assert.False(t, ValidateBase58("abc")) // valid base58 but not 32 bytes
}

func TestLamportConversions(t *testing.T) {
	assert.Equal(t, uint64(1_500_000_000), SOLToLamports(1.5))
	assert.Equal(t, 1.5, LamportsToSOL(1_500_000_000))
	assert.Equal(t, "0.010000000 SOL", FormatBalance(10_000_000))
}
