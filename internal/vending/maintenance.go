package vending

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/vendo-server/internal/catalog"
	"github.com/carson-networks/vendo-server/internal/vending/venderr"
)

// CatalogKind selects which catalog a maintenance operation targets.
type CatalogKind string

const (
	CatalogRegular CatalogKind = "regular"
	CatalogSpecial CatalogKind = "special"
)

// RestockCeiling is the maximum quantity a slot may hold after a
// targeted restock.
const RestockCeiling = 10

func (m *Machine) pick(kind CatalogKind) (*catalog.Catalog, error) {
	switch kind {
	case CatalogRegular:
		return m.regular, nil
	case CatalogSpecial:
		return m.special, nil
	default:
		return nil, venderr.ErrInvalidValue
	}
}

// RestockItem adds additional units to the named item's stock and
// returns the new quantity. The additional quantity must be positive and
// the result may not exceed the restock ceiling.
func (m *Machine) RestockItem(kind CatalogKind, name string, additional int) (int, error) {
	c, err := m.pick(kind)
	if err != nil {
		return 0, err
	}

	if additional <= 0 {
		return 0, venderr.ErrInvalidValue
	}

	index, err := c.FindIndexByName(name)
	if err != nil {
		return 0, err
	}
	item, err := c.Item(index)
	if err != nil {
		return 0, err
	}

	total := item.Quantity + additional
	if total > RestockCeiling {
		return 0, venderr.ErrExceedsCeiling
	}

	if err := c.SetQuantity(index, total); err != nil {
		return 0, err
	}
	return total, nil
}

// SetItemPrice updates the named item's price. The price must be positive.
func (m *Machine) SetItemPrice(kind CatalogKind, name string, price decimal.Decimal) error {
	c, err := m.pick(kind)
	if err != nil {
		return err
	}

	index, err := c.FindIndexByName(name)
	if err != nil {
		return err
	}
	return c.SetPrice(index, price)
}

// RestockAllItems hard-resets every occupied slot of the selected catalog
// to the default quantity.
func (m *Machine) RestockAllItems(kind CatalogKind) error {
	c, err := m.pick(kind)
	if err != nil {
		return err
	}
	c.RestockAll(catalog.DefaultQuantity)
	return nil
}

// collectableAmount counts the cash a teller can collect from the coin
// box. The original machine never implemented the count, so it is always
// zero; the collection plumbing below stays real.
func (m *Machine) collectableAmount() decimal.Decimal {
	return decimal.Zero
}

// replenishableAmount counts the cash a teller is loading into the float.
// Zero for the same reason as collectableAmount.
func (m *Machine) replenishableAmount() decimal.Decimal {
	return decimal.Zero
}

// CollectPayment moves collectable cash into the machine balance and
// resets the accumulated payment. Returns the amount collected.
func (m *Machine) CollectPayment() decimal.Decimal {
	collected := m.collectableAmount()
	if collected.IsPositive() {
		m.ledger.AdjustMachineBalance(collected)
		m.ledger.ResetAccumulated()
	}
	return collected
}

// ReplenishMoney loads replenishable cash into the machine balance.
// Returns the amount replenished.
func (m *Machine) ReplenishMoney() decimal.Decimal {
	replenished := m.replenishableAmount()
	if replenished.IsPositive() {
		m.ledger.AdjustMachineBalance(replenished)
	}
	return replenished
}
