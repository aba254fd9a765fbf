package betting

import (
	"strconv"

	"github.com/gagliardetto/solana-go"
)

// FindPdaResponse carries one derived program address.
type FindPdaResponse struct {
	Pda solana.PublicKey
}

// deriveAddress is a variable so tests can observe derivation
// scheduling.
var deriveAddress = solana.FindProgramAddress

func findPda(dependency string, seeds [][]byte, programID solana.PublicKey) ClientResponse[FindPdaResponse] {
	response := NewResponseFactory(FindPdaResponse{})
	pda, _, err := deriveAddress(seeds, programID)
	if err != nil {
		response.AddError(Error{Kind: ErrKindDerivationFailed, Dependency: dependency, Cause: err})
		return response.Body()
	}
	response.AddResponseData(FindPdaResponse{Pda: pda})
	return response.Body()
}

// FindEscrowPda derives the market's escrow token account address.
func FindEscrowPda(programID, market solana.PublicKey) ClientResponse[FindPdaResponse] {
	seeds := [][]byte{
		[]byte("escrow"),
		market.Bytes(),
	}
	return findPda("FindEscrowPda", seeds, programID)
}

// FindMarketOutcomePda derives the outcome account address for one
// outcome index of a market. The index is seeded as its decimal string,
// matching the on-chain program.
func FindMarketOutcomePda(programID, market solana.PublicKey, marketOutcomeIndex uint16) ClientResponse[FindPdaResponse] {
	seeds := [][]byte{
		market.Bytes(),
		[]byte(strconv.FormatUint(uint64(marketOutcomeIndex), 10)),
	}
	return findPda("FindMarketOutcomePda", seeds, programID)
}

// FindMarketMatchingPoolPda derives the matching pool address keyed by
// outcome, price and side. Price is seeded with exactly three decimal
// places.
func FindMarketMatchingPoolPda(
	programID, market solana.PublicKey,
	marketOutcomeIndex uint16,
	price float64,
	forOutcome bool,
) ClientResponse[FindPdaResponse] {
	seeds := [][]byte{
		market.Bytes(),
		[]byte(strconv.FormatUint(uint64(marketOutcomeIndex), 10)),
		[]byte(strconv.FormatFloat(price, 'f', 3, 64)),
		[]byte(strconv.FormatBool(forOutcome)),
	}
	return findPda("FindMarketMatchingPoolPda", seeds, programID)
}

// FindMarketPositionPda derives the purchaser's position account
// address for a market.
func FindMarketPositionPda(programID, market, purchaser solana.PublicKey) ClientResponse[FindPdaResponse] {
	seeds := [][]byte{
		market.Bytes(),
		purchaser.Bytes(),
	}
	return findPda("FindMarketPositionPda", seeds, programID)
}

// FindMarketPda derives the market account address from its event,
// market type and mint.
func FindMarketPda(programID, event, mint solana.PublicKey, marketType string) ClientResponse[FindPdaResponse] {
	seeds := [][]byte{
		event.Bytes(),
		[]byte(marketType),
		mint.Bytes(),
	}
	return findPda("FindMarketPda", seeds, programID)
}
