package betting

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	solanago "github.com/krazyTry/betmarket-go/solana"
)

// ProgramAccount pairs a decoded account with its address.
type ProgramAccount[T any] struct {
	Pubkey  solana.PublicKey
	Account T
}

// MintInfo is the token metadata the library needs from an SPL mint.
type MintInfo struct {
	Address solana.PublicKey
	// Owner program of the mint account
	Owner         solana.PublicKey
	Decimals      uint8
	Supply        uint64
	MintAuthority *solana.PublicKey
}

type MarketsResponse struct {
	Markets []ProgramAccount[MarketAccount]
}

type MarketOutcomesResponse struct {
	Outcomes []ProgramAccount[MarketOutcomeAccount]
}

type EscrowBalanceResponse struct {
	EscrowPda solana.PublicKey
	Amount    uint64
}

func (b *Betting) fetchAccount(ctx context.Context, dependency string, account solana.PublicKey) (*rpc.Account, *Error) {
	acc, err := solanago.GetAccountInfo(ctx, b.fetcher, account, b.commitment)
	if err != nil {
		kind := ErrKindRPCFailure
		if errors.Is(err, rpc.ErrNotFound) {
			kind = ErrKindAccountNotFound
		}
		b.logger.Warn("account fetch failed",
			zap.String("account", account.String()),
			zap.Error(err),
		)
		return nil, &Error{Kind: kind, Dependency: dependency, Cause: err}
	}
	if acc == nil || acc.Value == nil {
		return nil, &Error{Kind: ErrKindAccountNotFound, Dependency: dependency}
	}
	return acc.Value, nil
}

// GetMarket fetches and decodes one market account.
func (b *Betting) GetMarket(ctx context.Context, market solana.PublicKey) ClientResponse[MarketAccount] {
	response := NewResponseFactory(MarketAccount{})
	acc, fetchErr := b.fetchAccount(ctx, "GetMarket", market)
	if fetchErr != nil {
		response.AddError(*fetchErr)
		return response.Body()
	}
	parsed, err := ParseMarketAccount(acc.Data.GetBinary())
	if err != nil {
		response.AddError(Error{Kind: ErrKindAccountDecodeFailed, Dependency: "GetMarket", Cause: err})
		return response.Body()
	}
	b.logger.Debug("fetched market",
		zap.String("market", market.String()),
		zap.Uint16("outcomes", parsed.MarketOutcomesCount),
	)
	response.AddResponseData(*parsed)
	return response.Body()
}

// GetMintInfo fetches and decodes the SPL mint backing a market.
func (b *Betting) GetMintInfo(ctx context.Context, mint solana.PublicKey) ClientResponse[MintInfo] {
	response := NewResponseFactory(MintInfo{})
	acc, fetchErr := b.fetchAccount(ctx, "GetMintInfo", mint)
	if fetchErr != nil {
		response.AddError(*fetchErr)
		return response.Body()
	}
	parsed, err := solanago.DecodeMint(acc.Data.GetBinary())
	if err != nil {
		response.AddError(Error{Kind: ErrKindAccountDecodeFailed, Dependency: "GetMintInfo", Cause: err})
		return response.Body()
	}
	parsed.Owner = acc.Owner
	response.AddResponseData(MintInfo{
		Address:       mint,
		Owner:         parsed.Owner,
		Decimals:      parsed.Decimals,
		Supply:        parsed.Supply,
		MintAuthority: parsed.MintAuthority,
	})
	return response.Body()
}

// GetMarkets lists every market account of the program in the given
// status, using a discriminator plus status-byte memcmp filter.
func (b *Betting) GetMarkets(ctx context.Context, status MarketStatus) ClientResponse[MarketsResponse] {
	response := NewResponseFactory(MarketsResponse{})
	opts := solanago.GenProgramAccountFilter(AccountKeyMarket, b.commitment,
		solanago.Memcmp{Offset: marketStatusOffset, Bytes: []byte{byte(status)}},
	)
	accounts, err := b.fetcher.GetProgramAccountsWithOpts(ctx, b.programID, opts)
	if err != nil {
		response.AddError(Error{Kind: ErrKindRPCFailure, Dependency: "GetMarkets", Cause: err})
		return response.Body()
	}
	markets := make([]ProgramAccount[MarketAccount], 0, len(accounts))
	for _, acc := range accounts {
		parsed, err := ParseMarketAccount(acc.Account.Data.GetBinary())
		if err != nil {
			b.logger.Warn("skipping undecodable market account",
				zap.String("account", acc.Pubkey.String()),
				zap.Error(err),
			)
			continue
		}
		markets = append(markets, ProgramAccount[MarketAccount]{Pubkey: acc.Pubkey, Account: *parsed})
	}
	response.AddResponseData(MarketsResponse{Markets: markets})
	return response.Body()
}

// GetMarketOutcomes lists the outcome accounts of one market.
func (b *Betting) GetMarketOutcomes(ctx context.Context, market solana.PublicKey) ClientResponse[MarketOutcomesResponse] {
	response := NewResponseFactory(MarketOutcomesResponse{})
	opts := solanago.GenProgramAccountFilter(AccountKeyMarketOutcome, b.commitment,
		solanago.Memcmp{Offset: outcomeMarketOffset, Bytes: market.Bytes()},
	)
	accounts, err := b.fetcher.GetProgramAccountsWithOpts(ctx, b.programID, opts)
	if err != nil {
		response.AddError(Error{Kind: ErrKindRPCFailure, Dependency: "GetMarketOutcomes", Cause: err})
		return response.Body()
	}
	outcomes := make([]ProgramAccount[MarketOutcomeAccount], 0, len(accounts))
	for _, acc := range accounts {
		parsed, err := ParseMarketOutcomeAccount(acc.Account.Data.GetBinary())
		if err != nil {
			b.logger.Warn("skipping undecodable outcome account",
				zap.String("account", acc.Pubkey.String()),
				zap.Error(err),
			)
			continue
		}
		outcomes = append(outcomes, ProgramAccount[MarketOutcomeAccount]{Pubkey: acc.Pubkey, Account: *parsed})
	}
	response.AddResponseData(MarketOutcomesResponse{Outcomes: outcomes})
	return response.Body()
}

// GetEscrowBalance derives the market's escrow PDA, fetches its token
// account and reports the escrowed amount.
func (b *Betting) GetEscrowBalance(ctx context.Context, market solana.PublicKey) ClientResponse[EscrowBalanceResponse] {
	response := NewResponseFactory(EscrowBalanceResponse{})
	escrowResponse := FindEscrowPda(b.programID, market)
	if !escrowResponse.Success {
		response.AddErrors(escrowResponse.Errors)
		return response.Body()
	}
	escrow := escrowResponse.Data.Pda
	response.AddResponseData(EscrowBalanceResponse{EscrowPda: escrow})

	acc, fetchErr := b.fetchAccount(ctx, "GetEscrowBalance", escrow)
	if fetchErr != nil {
		response.AddError(*fetchErr)
		return response.Body()
	}
	tokenAccount, err := solanago.DecodeTokenAccount(acc.Data.GetBinary())
	if err != nil {
		response.AddError(Error{Kind: ErrKindAccountDecodeFailed, Dependency: "GetEscrowBalance", Cause: err})
		return response.Body()
	}
	response.AddResponseData(EscrowBalanceResponse{EscrowPda: escrow, Amount: tokenAccount.Amount})
	return response.Body()
}
