package solana

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Mint is an SPL mint together with the program that owns it.
type Mint struct {
	token.Mint
	// Owner program of the mint account
	Owner solana.PublicKey
}

// DecodeMint decodes raw SPL mint account data.
func DecodeMint(data []byte) (*Mint, error) {
	mint := token.Mint{}
	if err := mint.Decode(data); err != nil {
		return nil, err
	}
	return &Mint{Mint: mint}, nil
}
