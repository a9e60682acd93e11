package actions

import (
	"context"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// InsertCoins feeds a coin input line into the machine. Invalid tokens
// land in Result.Rejected without failing the action.
type InsertCoins struct {
	Coins string

	Result vending.CoinResult
}

func (a *InsertCoins) Perform(ctx context.Context, machine *vending.Machine) error {
	a.Result = machine.InsertCoins(a.Coins)
	return nil
}
