package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/vendo-server/internal/vending/venderr"
)

// Item represents one sellable item in a catalog slot.
type Item struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Calories int
}

// Empty reports whether the slot holds no item. Removed slots become
// empty and are skipped by name lookups.
func (i Item) Empty() bool {
	return i.Name == ""
}

// Catalog is a fixed-capacity table of item slots. Identity is by name;
// names are unique within a catalog but the regular and special catalogs
// are independent namespaces.
type Catalog struct {
	slots []Item
}

// New creates a catalog with the given slot capacity.
func New(capacity int) *Catalog {
	return &Catalog{slots: make([]Item, capacity)}
}

// Capacity returns the number of slots, occupied or not.
func (c *Catalog) Capacity() int {
	return len(c.slots)
}

// Items returns a copy of all slots, including empty ones, in slot order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.slots))
	copy(out, c.slots)
	return out
}

// Item returns the slot at index.
func (c *Catalog) Item(index int) (Item, error) {
	if index < 0 || index >= len(c.slots) {
		return Item{}, venderr.ErrOutOfRange
	}
	return c.slots[index], nil
}

// FindIndexByName returns the slot index of the named item. The match is
// case sensitive and empty slots are skipped.
func (c *Catalog) FindIndexByName(name string) (int, error) {
	for i, slot := range c.slots {
		if !slot.Empty() && slot.Name == name {
			return i, nil
		}
	}
	return -1, venderr.ErrItemNotFound
}

// Put places an item into the slot at index, replacing whatever was there.
func (c *Catalog) Put(index int, item Item) error {
	if index < 0 || index >= len(c.slots) {
		return venderr.ErrOutOfRange
	}
	c.slots[index] = item
	return nil
}

// SetQuantity overwrites the quantity of the slot at index. It does not
// clamp against any maximum; restock ceilings are the caller's concern.
func (c *Catalog) SetQuantity(index, newQuantity int) error {
	if index < 0 || index >= len(c.slots) {
		return venderr.ErrOutOfRange
	}
	if newQuantity < 0 {
		return venderr.ErrInvalidValue
	}
	c.slots[index].Quantity = newQuantity
	return nil
}

// SetPrice overwrites the price of the slot at index.
func (c *Catalog) SetPrice(index int, newPrice decimal.Decimal) error {
	if index < 0 || index >= len(c.slots) {
		return venderr.ErrOutOfRange
	}
	if !newPrice.IsPositive() {
		return venderr.ErrInvalidValue
	}
	c.slots[index].Price = newPrice
	return nil
}

// Remove clears the slot at index. The slot becomes unfindable by name.
func (c *Catalog) Remove(index int) error {
	if index < 0 || index >= len(c.slots) {
		return venderr.ErrOutOfRange
	}
	c.slots[index] = Item{}
	return nil
}

// RestockAll hard-resets the quantity of every occupied slot to
// defaultQuantity, regardless of the current value.
func (c *Catalog) RestockAll(defaultQuantity int) {
	for i := range c.slots {
		if c.slots[i].Empty() {
			continue
		}
		c.slots[i].Quantity = defaultQuantity
	}
}
