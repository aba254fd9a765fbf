package solana

import (
	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

type AccountState uint8

const (
	AccountStateUninitialized AccountState = 0
	AccountStateInitialized   AccountState = 1
	AccountStateFrozen        AccountState = 2
)

// TokenAccount is a decoded SPL token holding account, such as a
// market's escrow account.
type TokenAccount struct {
	Address solana.PublicKey
	// Mint the account holds
	Mint solana.PublicKey

	// Owner of the account
	Owner solana.PublicKey

	// Number of tokens the account holds
	Amount uint64

	// Authority that can transfer tokens from the account
	Delegate *solana.PublicKey

	// Number of tokens the delegate is authorized to transfer
	DelegatedAmount uint64

	// True if the account is initialized
	IsInitialized bool

	// True if the account is frozen
	IsFrozen bool

	// True if the account holds wrapped native SOL
	IsNative bool

	// Rent-exempt reserve for native accounts; the amount that must
	// remain in the balance until the account is closed.
	RentExemptReserve *uint64

	// Optional authority to close the account
	CloseAuthority *solana.PublicKey
}

// tokenAccountLayout is the raw 165-byte SPL token account layout with
// its COption flag words.
type tokenAccountLayout struct {
	Mint                 solana.PublicKey
	Owner                solana.PublicKey
	Amount               uint64
	DelegateOption       uint32
	Delegate             *solana.PublicKey
	State                uint8
	IsNativeOption       uint32
	IsNative             *uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       *solana.PublicKey
}

// DecodeTokenAccount decodes raw SPL token account data.
func DecodeTokenAccount(data []byte) (*TokenAccount, error) {
	raw := &tokenAccountLayout{}
	if err := binary.NewBinDecoder(data).Decode(raw); err != nil {
		return nil, err
	}
	out := &TokenAccount{
		Mint:            raw.Mint,
		Owner:           raw.Owner,
		Amount:          raw.Amount,
		DelegatedAmount: raw.DelegatedAmount,
		IsInitialized:   AccountState(raw.State) != AccountStateUninitialized,
		IsFrozen:        AccountState(raw.State) == AccountStateFrozen,
		IsNative:        raw.IsNativeOption > 0,
	}
	if raw.DelegateOption > 0 {
		out.Delegate = raw.Delegate
	}
	if raw.IsNativeOption > 0 {
		out.RentExemptReserve = raw.IsNative
	}
	if raw.CloseAuthorityOption > 0 {
		out.CloseAuthority = raw.CloseAuthority
	}
	return out, nil
}
