// Package venderr defines the error kinds shared by the catalog, ledger,
// and transaction engine. Every failure is locally recoverable: the
// operation that returned it left all machine state unchanged.
package venderr

import "errors"

var (
	// ErrItemNotFound is returned when a name resolves to no occupied slot.
	ErrItemNotFound = errors.New("item not found")

	// ErrOutOfStock is returned when the located item has zero quantity.
	ErrOutOfStock = errors.New("item out of stock")

	// ErrInsufficientFunds is returned when the accumulated payment does
	// not cover the item price.
	ErrInsufficientFunds = errors.New("insufficient accumulated payment")

	// ErrInsufficientChange is returned when the change owed exceeds the
	// machine's cash float. The sale is refused, not partially completed.
	ErrInsufficientChange = errors.New("insufficient change in the machine")

	// ErrInvalidValue is returned for a non-positive price or quantity.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidCoin is returned per rejected coin token; the rest of the
	// coin input is still honored.
	ErrInvalidCoin = errors.New("invalid coin denomination")

	// ErrExceedsCeiling is returned when a restock would push a slot past
	// the restock ceiling.
	ErrExceedsCeiling = errors.New("restock exceeds ceiling")

	// ErrOutOfRange is returned for a slot index outside the catalog.
	ErrOutOfRange = errors.New("slot index out of range")
)
