package betting

import (
	"context"
	"math"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

type StakeIntegerResponse struct {
	StakeInteger uint64
}

type UiStakeResponse struct {
	UiStake float64
}

var maxUint64Decimal = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// UiStakeToInteger converts a human-readable stake to the market
// token's smallest integer unit (stake × 10^decimals). The market
// fetch failing short-circuits before the mint is ever read.
func (b *Betting) UiStakeToInteger(ctx context.Context, stake float64, market solana.PublicKey) ClientResponse[StakeIntegerResponse] {
	response := NewResponseFactory(StakeIntegerResponse{})

	marketResponse := b.GetMarket(ctx, market)
	if !marketResponse.Success {
		response.AddErrors(marketResponse.Errors)
		return response.Body()
	}

	mintResponse := b.GetMintInfo(ctx, marketResponse.Data.MintAccount)
	if !mintResponse.Success {
		response.AddErrors(mintResponse.Errors)
		return response.Body()
	}

	stakeInteger, err := uiAmountToInteger(stake, mintResponse.Data.Decimals)
	if err != nil {
		response.AddError(Error{Kind: ErrKindInvalidInput, Dependency: "UiStakeToInteger", Cause: err})
		return response.Body()
	}
	response.AddResponseData(StakeIntegerResponse{StakeInteger: stakeInteger})
	return response.Body()
}

// IntegerToUiStake converts a stake from the market token's smallest
// integer unit back to its human-readable form.
func (b *Betting) IntegerToUiStake(ctx context.Context, stakeInteger uint64, market solana.PublicKey) ClientResponse[UiStakeResponse] {
	response := NewResponseFactory(UiStakeResponse{})

	marketResponse := b.GetMarket(ctx, market)
	if !marketResponse.Success {
		response.AddErrors(marketResponse.Errors)
		return response.Body()
	}

	mintResponse := b.GetMintInfo(ctx, marketResponse.Data.MintAccount)
	if !mintResponse.Success {
		response.AddErrors(mintResponse.Errors)
		return response.Body()
	}

	uiStake := decimal.NewFromBigInt(new(big.Int).SetUint64(stakeInteger), 0).
		Shift(-int32(mintResponse.Data.Decimals)).
		InexactFloat64()
	response.AddResponseData(UiStakeResponse{UiStake: uiStake})
	return response.Body()
}

func uiAmountToInteger(amount float64, decimals uint8) (uint64, error) {
	if amount < 0 {
		return 0, ErrStakeNegative
	}
	shifted := decimal.NewFromFloat(amount).Shift(int32(decimals))
	if !shifted.IsInteger() {
		return 0, ErrStakePrecisionExceeded
	}
	if shifted.Cmp(maxUint64Decimal) > 0 {
		return 0, ErrStakeOverflow
	}
	return shifted.BigInt().Uint64(), nil
}
