package betmarket

import (
	"github.com/krazyTry/betmarket-go/betting"
)

// NewBettingClient creates a new betting program client.
//
// Example:
//
// client := NewBettingClient(rpcClient, programID, purchaser.PublicKey(), rpc.CommitmentFinalized, nil)
//
// accounts := client.GetMarketAccounts(ctx, marketPk, true, 1, 3.125)
//
// stake := client.UiStakeToInteger(ctx, 20, marketPk)
var NewBettingClient = betting.NewBetting
