package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// RestockItem adds stock to one item, subject to the restock ceiling.
type RestockItem struct {
	Catalog  vending.CatalogKind
	Name     string
	Quantity int

	NewQuantity int
}

func (a *RestockItem) Perform(ctx context.Context, machine *vending.Machine) error {
	total, err := machine.RestockItem(a.Catalog, a.Name, a.Quantity)
	if err != nil {
		return err
	}
	a.NewQuantity = total
	return nil
}

// SetItemPrice updates one item's price.
type SetItemPrice struct {
	Catalog vending.CatalogKind
	Name    string
	Price   decimal.Decimal
}

func (a *SetItemPrice) Perform(ctx context.Context, machine *vending.Machine) error {
	return machine.SetItemPrice(a.Catalog, a.Name, a.Price)
}

// RestockAll hard-resets every slot of one catalog to the default stock.
type RestockAll struct {
	Catalog vending.CatalogKind
}

func (a *RestockAll) Perform(ctx context.Context, machine *vending.Machine) error {
	return machine.RestockAllItems(a.Catalog)
}

// CollectPayment collects teller cash into the machine balance.
type CollectPayment struct {
	Collected decimal.Decimal
}

func (a *CollectPayment) Perform(ctx context.Context, machine *vending.Machine) error {
	a.Collected = machine.CollectPayment()
	return nil
}

// ReplenishMoney loads teller cash into the machine float.
type ReplenishMoney struct {
	Replenished decimal.Decimal
}

func (a *ReplenishMoney) Perform(ctx context.Context, machine *vending.Machine) error {
	a.Replenished = machine.ReplenishMoney()
	return nil
}
