package betting

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	solanago "github.com/krazyTry/betmarket-go/solana"
)

var testProgramID = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

// stubFetcher serves canned account bytes with no network.
type stubFetcher struct {
	accounts        map[solana.PublicKey][]byte
	errs            map[solana.PublicKey]error
	programAccounts rpc.GetProgramAccountsResult
	programErr      error
	accountCalls    []solana.PublicKey
	programCalls    int
}

func (s *stubFetcher) GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	s.accountCalls = append(s.accountCalls, account)
	if err, ok := s.errs[account]; ok {
		return nil, err
	}
	data, ok := s.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: &rpc.Account{
		Owner: solana.TokenProgramID,
		Data:  accountData(data),
	}}, nil
}

func (s *stubFetcher) GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	s.programCalls++
	if s.programErr != nil {
		return nil, s.programErr
	}
	return s.programAccounts, nil
}

func newTestBetting(fetcher *stubFetcher, purchaser solana.PublicKey) *Betting {
	return NewBetting(fetcher, testProgramID, purchaser, rpc.CommitmentFinalized, nil)
}

func accountData(raw []byte) *rpc.DataBytesOrJSON {
	var d rpc.DataBytesOrJSON
	payload := fmt.Sprintf(`[%q,"base64"]`, base64.StdEncoding.EncodeToString(raw))
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		panic(err)
	}
	return &d
}

func encodeAccount(t *testing.T, accountName string, v interface{}) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(v); err != nil {
		t.Fatalf("encode %s fixture: %v", accountName, err)
	}
	return append(solanago.AccountDiscriminator(accountName), buf.Bytes()...)
}

func marketFixture(mint solana.PublicKey) MarketAccount {
	return MarketAccount{
		Authority:           solana.NewWallet().PublicKey(),
		Event:               solana.NewWallet().PublicKey(),
		MintAccount:         mint,
		MarketStatus:        MarketStatusOpen,
		MarketType:          "EventResultWinner",
		DecimalLimit:        3,
		Published:           true,
		MarketOutcomesCount: 3,
		MarketLockTimestamp: 1924992000,
		Title:               "Full Time Result",
	}
}

// mintFixture builds raw SPL mint bytes (COption flag words present).
func mintFixture(decimals uint8, supply uint64) []byte {
	authority := solana.NewWallet().PublicKey()
	data := make([]byte, 0, 82)
	data = append(data, 1, 0, 0, 0) // mint authority present
	data = append(data, authority[:]...)
	data = binary.LittleEndian.AppendUint64(data, supply)
	data = append(data, decimals)
	data = append(data, 1)          // initialized
	data = append(data, 1, 0, 0, 0) // freeze authority present
	data = append(data, authority[:]...)
	return data
}

// tokenAccountFixture builds the raw 165-byte SPL token account layout.
func tokenAccountFixture(mint, owner solana.PublicKey, amount uint64) []byte {
	data := make([]byte, 0, 165)
	data = append(data, mint[:]...)
	data = append(data, owner[:]...)
	data = binary.LittleEndian.AppendUint64(data, amount)
	data = append(data, 0, 0, 0, 0)           // delegate: none
	data = append(data, make([]byte, 32)...)  // delegate bytes
	data = append(data, 1)                    // state: initialized
	data = append(data, 0, 0, 0, 0)           // isNative: none
	data = binary.LittleEndian.AppendUint64(data, 0)
	data = binary.LittleEndian.AppendUint64(data, 0) // delegated amount
	data = append(data, 0, 0, 0, 0)           // close authority: none
	data = append(data, make([]byte, 32)...)  // close authority bytes
	return data
}
