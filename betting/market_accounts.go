package betting

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// MarketAccountsForCreateBetOrder aggregates every address a bet-order
// creation instruction needs, plus the full market record.
type MarketAccountsForCreateBetOrder struct {
	EscrowPda             solana.PublicKey
	MarketOutcomePda      solana.PublicKey
	MarketMatchingPoolPda solana.PublicKey
	MarketPositionPda     solana.PublicKey
	Market                MarketAccount
}

// GetMarketAccounts fetches the market record and derives the four
// addresses a bet order against it needs. The market fetch failing
// short-circuits; the four derivations are independent and run
// concurrently. Every sub-response is checked before merging, so a
// failed derivation can never surface as a successful aggregate.
func (b *Betting) GetMarketAccounts(
	ctx context.Context,
	market solana.PublicKey,
	forOutcome bool,
	marketOutcomeIndex uint16,
	price float64,
) ClientResponse[MarketAccountsForCreateBetOrder] {
	response := NewResponseFactory(MarketAccountsForCreateBetOrder{})

	marketResponse := b.GetMarket(ctx, market)
	if !marketResponse.Success {
		response.AddErrors(marketResponse.Errors)
		return response.Body()
	}

	var (
		outcomeResponse  ClientResponse[FindPdaResponse]
		poolResponse     ClientResponse[FindPdaResponse]
		positionResponse ClientResponse[FindPdaResponse]
		escrowResponse   ClientResponse[FindPdaResponse]
		wg               sync.WaitGroup
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		outcomeResponse = FindMarketOutcomePda(b.programID, market, marketOutcomeIndex)
	}()
	go func() {
		defer wg.Done()
		poolResponse = FindMarketMatchingPoolPda(b.programID, market, marketOutcomeIndex, price, forOutcome)
	}()
	go func() {
		defer wg.Done()
		positionResponse = FindMarketPositionPda(b.programID, market, b.purchaser)
	}()
	go func() {
		defer wg.Done()
		escrowResponse = FindEscrowPda(b.programID, market)
	}()
	wg.Wait()

	for _, sub := range []ClientResponse[FindPdaResponse]{
		outcomeResponse, poolResponse, positionResponse, escrowResponse,
	} {
		if !sub.Success {
			response.AddErrors(sub.Errors)
		}
	}
	if response.Failed() {
		return response.Body()
	}

	response.AddResponseData(MarketAccountsForCreateBetOrder{
		EscrowPda:             escrowResponse.Data.Pda,
		MarketOutcomePda:      outcomeResponse.Data.Pda,
		MarketMatchingPoolPda: poolResponse.Data.Pda,
		MarketPositionPda:     positionResponse.Data.Pda,
		Market:                marketResponse.Data,
	})
	return response.Body()
}
