package actions

import (
	"context"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// PurchaseItem runs one regular-item purchase attempt.
type PurchaseItem struct {
	Name     string
	Decision vending.Decision

	Result vending.PurchaseResult
}

func (a *PurchaseItem) Perform(ctx context.Context, machine *vending.Machine) error {
	result, err := machine.PurchaseItem(ctx, a.Name, a.Decision)
	if err != nil {
		return err
	}
	a.Result = result
	return nil
}

// PurchaseSpecialItem runs one special-item purchase attempt. A shortfall
// is not an error: the result comes back pending with the amount owed.
type PurchaseSpecialItem struct {
	Name     string
	Decision vending.Decision

	Result vending.SpecialPurchaseResult
}

func (a *PurchaseSpecialItem) Perform(ctx context.Context, machine *vending.Machine) error {
	result, err := machine.PurchaseSpecialItem(ctx, a.Name, a.Decision)
	if err != nil {
		return err
	}
	a.Result = result
	return nil
}
