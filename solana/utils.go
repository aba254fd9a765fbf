package solana

import (
	"context"
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

// Narrow read capabilities of an RPC endpoint; *rpc.Client satisfies
// all of them, tests supply stubs.
type (
	AccountInfoFetcher interface {
		GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	}

	TokenAccountFetcher interface {
		GetTokenAccountsByOwner(ctx context.Context, owner solana.PublicKey, conf *rpc.GetTokenAccountsConfig, opts *rpc.GetTokenAccountsOpts) (*rpc.GetTokenAccountsResult, error)
	}

	BlockhashFetcher interface {
		GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	}
)

// AccountDiscriminator returns the anchor 8-byte discriminator that
// prefixes every account of the given name.
func AccountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out[:]
}

// GenProgramAccountFilter builds getProgramAccounts options selecting
// accounts of one anchor account type, optionally narrowed by extra
// memcmp filters.
func GenProgramAccountFilter(accountName string, commitment rpc.CommitmentType, extra ...Memcmp) *rpc.GetProgramAccountsOpts {
	opt := &rpc.GetProgramAccountsOpts{
		Commitment: commitment,
		Encoding:   solana.EncodingBase64,
		Filters: []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  AccountDiscriminator(accountName),
				},
			},
		},
	}
	for _, m := range extra {
		opt.Filters = append(opt.Filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: m.Offset,
				Bytes:  m.Bytes,
			},
		})
	}
	return opt
}

func GetAccountInfo(ctx context.Context, fetcher AccountInfoFetcher, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetAccountInfoResult, error) {
	if commitment == "" {
		commitment = rpc.CommitmentFinalized
	}
	return fetcher.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: commitment})
}

func GetLatestBlockhash(ctx context.Context, fetcher BlockhashFetcher) (solana.Hash, error) {
	recent, err := fetcher.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}
	return recent.Value.Blockhash, nil
}

// GetMintBalance sums the owner's holdings of one mint across their
// token accounts, reading the jsonParsed account form.
func GetMintBalance(ctx context.Context, fetcher TokenAccountFetcher, owner, mint solana.PublicKey) (uint64, error) {
	resp, err := fetcher.GetTokenAccountsByOwner(ctx, owner, &rpc.GetTokenAccountsConfig{
		ProgramId: &solana.TokenProgramID,
	}, &rpc.GetTokenAccountsOpts{
		Encoding:   solana.EncodingJSONParsed,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return 0, err
	}

	var balance uint64
	for _, v := range resp.Value {
		raw := v.Account.Data.GetRawJSON()
		if gjson.GetBytes(raw, "parsed.info.mint").String() != mint.String() {
			continue
		}
		balance += gjson.GetBytes(raw, "parsed.info.tokenAmount.amount").Uint()
	}
	return balance, nil
}
