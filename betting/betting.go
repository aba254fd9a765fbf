package betting

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

var (
	ErrAccountDataTooShort    = errors.New("account data too short")
	ErrDiscriminatorMismatch  = errors.New("account discriminator mismatch")
	ErrStakeNegative          = errors.New("stake must not be negative")
	ErrStakePrecisionExceeded = errors.New("stake precision exceeds mint decimals")
	ErrStakeOverflow          = errors.New("stake does not fit the token's integer representation")
)

// AccountFetcher is the read capability the client needs from an RPC
// endpoint. *rpc.Client satisfies it; tests supply a stub.
type AccountFetcher interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
}

// Betting reads the betting program's on-chain accounts and derives its
// PDAs for one purchaser wallet.
type Betting struct {
	fetcher    AccountFetcher
	programID  solana.PublicKey
	purchaser  solana.PublicKey
	commitment rpc.CommitmentType
	logger     *zap.Logger
}

func NewBetting(
	fetcher AccountFetcher,
	programID solana.PublicKey,
	purchaser solana.PublicKey,
	commitment rpc.CommitmentType,
	logger *zap.Logger,
) *Betting {
	if commitment == "" {
		commitment = rpc.CommitmentFinalized
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Betting{
		fetcher:    fetcher,
		programID:  programID,
		purchaser:  purchaser,
		commitment: commitment,
		logger:     logger,
	}
}

// ProgramID returns the betting program this client is bound to.
func (b *Betting) ProgramID() solana.PublicKey { return b.programID }

// Purchaser returns the wallet the client derives position PDAs for.
func (b *Betting) Purchaser() solana.PublicKey { return b.purchaser }
