package catalog

import "github.com/shopspring/decimal"

const (
	// RegularSlots is the slot capacity of the regular (meal) catalog.
	RegularSlots = 8
	// SpecialSlots is the slot capacity of the special-purchase catalog.
	SpecialSlots = 10
	// DefaultQuantity is the stock level every slot is seeded and
	// restocked to.
	DefaultQuantity = 10
)

type seedRow struct {
	name     string
	price    int64
	calories int
}

var regularSeed = []seedRow{
	{"Tapsilog", 85, 300},
	{"Tocilog", 80, 350},
	{"Chicksilog", 85, 400},
	{"Bangsilog", 80, 250},
	{"Longsilog", 80, 200},
	{"Cornsilog", 60, 150},
	{"Malingsilog", 60, 250},
	{"Hotsilog", 50, 180},
}

var specialSeed = []seedRow{
	{"Rice", 10, 150},
	{"Egg", 5, 70},
	{"Hotdog", 15, 150},
	{"Bangus", 20, 200},
	{"Tocino", 15, 120},
	{"Tapa", 15, 130},
	{"Chicken", 25, 250},
	{"Maling", 8, 110},
	{"Longganisa", 10, 180},
	{"Corned Beef", 12, 160},
}

func seeded(capacity int, rows []seedRow) *Catalog {
	c := New(capacity)
	for i, row := range rows {
		c.slots[i] = Item{
			Name:     row.name,
			Price:    decimal.NewFromInt(row.price),
			Quantity: DefaultQuantity,
			Calories: row.calories,
		}
	}
	return c
}

// SeedRegular returns the regular catalog populated with the default
// meal lineup.
func SeedRegular() *Catalog {
	return seeded(RegularSlots, regularSeed)
}

// SeedSpecial returns the special-purchase catalog populated with the
// default combo components.
func SeedSpecial() *Catalog {
	return seeded(SpecialSlots, specialSeed)
}
