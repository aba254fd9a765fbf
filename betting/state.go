package betting

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	solanago "github.com/krazyTry/betmarket-go/solana"
)

// Anchor account names of the betting program; the 8-byte
// discriminator prefix of each account is sha256("account:"+name)[:8].
const (
	AccountKeyMarket             = "Market"
	AccountKeyMarketOutcome      = "MarketOutcome"
	AccountKeyMarketMatchingPool = "MarketMatchingPool"
	AccountKeyMarketPosition     = "MarketPosition"
)

type MarketStatus uint8

const (
	MarketStatusInitializing MarketStatus = iota
	MarketStatusOpen
	MarketStatusLocked
	MarketStatusReadyForSettlement
	MarketStatusSettled
	MarketStatusComplete
)

// MarketAccount is the betting program's market state.
type MarketAccount struct {
	Authority                 solana.PublicKey
	Event                     solana.PublicKey
	MintAccount               solana.PublicKey
	MarketStatus              MarketStatus
	MarketType                string
	DecimalLimit              uint8
	Published                 bool
	Suspended                 bool
	MarketOutcomesCount       uint16
	MarketWinningOutcomeIndex *uint16 `bin:"optional"`
	MarketLockTimestamp       int64
	MarketSettleTimestamp     *int64 `bin:"optional"`
	Title                     string
}

// MarketOutcomeAccount is one outcome of a market.
type MarketOutcomeAccount struct {
	Market             solana.PublicKey
	Index              uint16
	Title              string
	LatestMatchedPrice float64
	MatchedTotal       uint64
}

// MarketMatchingPoolAccount queues unmatched liquidity for one
// outcome/price/side combination.
type MarketMatchingPoolAccount struct {
	Market             solana.PublicKey
	MarketOutcomeIndex uint16
	Price              float64
	ForOutcome         bool
	Purchaser          solana.PublicKey
	LiquidityAmount    uint64
	MatchedAmount      uint64
}

// MarketPositionAccount tracks a purchaser's exposure per outcome.
type MarketPositionAccount struct {
	Purchaser          solana.PublicKey
	Market             solana.PublicKey
	Paid               bool
	MarketOutcomeSums  []uint64
	UnmatchedExposures []uint64
}

// Byte offsets used by getProgramAccounts memcmp filters. The layouts
// above are fixed up to these fields, so the offsets are stable.
const (
	marketStatusOffset  = 8 + 32*3 // discriminator + authority + event + mint
	outcomeMarketOffset = 8        // discriminator
)

func checkedAccountBytes(accountName string, data []byte) ([]byte, error) {
	if len(data) < 8 {
		return nil, ErrAccountDataTooShort
	}
	if !bytes.Equal(data[:8], solanago.AccountDiscriminator(accountName)) {
		return nil, ErrDiscriminatorMismatch
	}
	return data[8:], nil
}

func ParseMarketAccount(data []byte) (*MarketAccount, error) {
	body, err := checkedAccountBytes(AccountKeyMarket, data)
	if err != nil {
		return nil, err
	}
	out := new(MarketAccount)
	if err := bin.NewBorshDecoder(body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode market account: %w", err)
	}
	return out, nil
}

func ParseMarketOutcomeAccount(data []byte) (*MarketOutcomeAccount, error) {
	body, err := checkedAccountBytes(AccountKeyMarketOutcome, data)
	if err != nil {
		return nil, err
	}
	out := new(MarketOutcomeAccount)
	if err := bin.NewBorshDecoder(body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode market outcome account: %w", err)
	}
	return out, nil
}

func ParseMarketMatchingPoolAccount(data []byte) (*MarketMatchingPoolAccount, error) {
	body, err := checkedAccountBytes(AccountKeyMarketMatchingPool, data)
	if err != nil {
		return nil, err
	}
	out := new(MarketMatchingPoolAccount)
	if err := bin.NewBorshDecoder(body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode matching pool account: %w", err)
	}
	return out, nil
}

func ParseMarketPositionAccount(data []byte) (*MarketPositionAccount, error) {
	body, err := checkedAccountBytes(AccountKeyMarketPosition, data)
	if err != nil {
		return nil, err
	}
	out := new(MarketPositionAccount)
	if err := bin.NewBorshDecoder(body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode market position account: %w", err)
	}
	return out, nil
}
