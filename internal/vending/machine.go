package vending

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/vendo-server/internal/catalog"
	"github.com/carson-networks/vendo-server/internal/vending/venderr"
)

// TransactionKind distinguishes the two purchase settlement rules.
type TransactionKind string

const (
	KindRegular TransactionKind = "regular"
	KindSpecial TransactionKind = "special"
)

// TransactionEntry is one completed purchase, immutable once appended.
type TransactionEntry struct {
	ItemName   string
	Kind       TransactionKind
	AmountPaid decimal.Decimal
	Change     decimal.Decimal
}

// TransactionLog receives the entry for every completed purchase.
//
//go:generate mockery --name TransactionLog --output mock_TransactionLog.go
type TransactionLog interface {
	Append(ctx context.Context, entry TransactionEntry) error
}

// Decision is the caller-supplied outcome of the confirmation step.
type Decision int

const (
	Proceed Decision = iota
	Cancel
)

// PurchaseState is the terminal state of a purchase attempt.
type PurchaseState string

const (
	StateCompleted PurchaseState = "completed"
	StateCancelled PurchaseState = "cancelled"
	StatePending   PurchaseState = "pending"
)

// PurchaseResult describes the outcome of a regular-item purchase.
type PurchaseResult struct {
	State      PurchaseState
	ItemName   string
	Price      decimal.Decimal
	AmountPaid decimal.Decimal
	Change     decimal.Decimal
}

// SpecialPurchaseResult describes the outcome of a special-item purchase
// attempt. A Pending result carries the shortfall still owed; a Completed
// result carries the overpayment rolled into the accumulated balance.
type SpecialPurchaseResult struct {
	State     PurchaseState
	ItemName  string
	Price     decimal.Decimal
	Shortfall decimal.Decimal
	CarryOver decimal.Decimal
}

// Machine is one vending machine session: both catalogs, the cash ledger,
// and the transaction log. A Machine is not safe for concurrent use; all
// access is serialized through the operator.
type Machine struct {
	regular *catalog.Catalog
	special *catalog.Catalog
	ledger  *Ledger
	log     TransactionLog
}

// NewMachine creates a machine session over the given catalogs and ledger.
func NewMachine(regular, special *catalog.Catalog, ledger *Ledger, log TransactionLog) *Machine {
	return &Machine{
		regular: regular,
		special: special,
		ledger:  ledger,
		log:     log,
	}
}

// Ledger exposes the session's cash state.
func (m *Machine) Ledger() *Ledger {
	return m.ledger
}

// InsertCoins validates and accepts a whitespace-separated coin input.
// Invalid tokens are rejected individually; the accepted total is added
// to the accumulated payment.
func (m *Machine) InsertCoins(input string) CoinResult {
	accepted, rejected := ParseCoins(input)
	m.ledger.AddAccumulated(accepted)
	return CoinResult{
		Accepted:    accepted,
		Accumulated: m.ledger.Accumulated(),
		Rejected:    rejected,
	}
}

// PurchaseItem runs the regular-item purchase protocol:
// locate, stock check, funds check, confirm, change feasibility, commit.
// Every failure and a Cancel decision leave all state unchanged. On
// commit the item quantity drops by one, the change is paid out of the
// machine balance, the entry is logged, and the accumulated payment
// resets to zero.
func (m *Machine) PurchaseItem(ctx context.Context, name string, decision Decision) (PurchaseResult, error) {
	index, err := m.regular.FindIndexByName(name)
	if err != nil {
		return PurchaseResult{}, err
	}
	item, err := m.regular.Item(index)
	if err != nil {
		return PurchaseResult{}, err
	}

	if item.Quantity == 0 {
		return PurchaseResult{}, venderr.ErrOutOfStock
	}

	paid := m.ledger.Accumulated()
	if paid.LessThan(item.Price) {
		return PurchaseResult{}, venderr.ErrInsufficientFunds
	}

	if decision == Cancel {
		return PurchaseResult{State: StateCancelled, ItemName: item.Name, Price: item.Price}, nil
	}

	change := paid.Sub(item.Price)
	if change.GreaterThan(m.ledger.MachineBalance()) {
		return PurchaseResult{}, venderr.ErrInsufficientChange
	}

	if err := m.regular.SetQuantity(index, item.Quantity-1); err != nil {
		return PurchaseResult{}, err
	}
	m.ledger.AdjustMachineBalance(change.Neg())
	m.ledger.ResetAccumulated()

	result := PurchaseResult{
		State:      StateCompleted,
		ItemName:   item.Name,
		Price:      item.Price,
		AmountPaid: paid,
		Change:     change,
	}

	err = m.log.Append(ctx, TransactionEntry{
		ItemName:   item.Name,
		Kind:       KindRegular,
		AmountPaid: paid,
		Change:     change,
	})
	return result, err
}

// PurchaseSpecialItem runs the special-item purchase protocol. The
// settlement rule differs from the regular path: a shortfall leaves the
// attempt pending and retryable with no mutation, and on completion the
// overpayment becomes the new accumulated balance instead of being
// disbursed as change.
func (m *Machine) PurchaseSpecialItem(ctx context.Context, name string, decision Decision) (SpecialPurchaseResult, error) {
	if decision == Cancel {
		return SpecialPurchaseResult{State: StateCancelled, ItemName: name}, nil
	}

	index, err := m.special.FindIndexByName(name)
	if err != nil {
		return SpecialPurchaseResult{}, err
	}
	item, err := m.special.Item(index)
	if err != nil {
		return SpecialPurchaseResult{}, err
	}

	if item.Quantity == 0 {
		return SpecialPurchaseResult{}, venderr.ErrOutOfStock
	}

	remaining := item.Price.Sub(m.ledger.Accumulated())
	if remaining.IsPositive() {
		return SpecialPurchaseResult{
			State:     StatePending,
			ItemName:  item.Name,
			Price:     item.Price,
			Shortfall: remaining,
		}, nil
	}

	carryOver := remaining.Abs()
	if err := m.special.SetQuantity(index, item.Quantity-1); err != nil {
		return SpecialPurchaseResult{}, err
	}
	m.ledger.setAccumulated(carryOver)

	result := SpecialPurchaseResult{
		State:     StateCompleted,
		ItemName:  item.Name,
		Price:     item.Price,
		CarryOver: carryOver,
	}

	err = m.log.Append(ctx, TransactionEntry{
		ItemName:   item.Name,
		Kind:       KindSpecial,
		AmountPaid: item.Price,
		Change:     decimal.Zero,
	})
	return result, err
}

// Snapshot is a point-in-time read of the machine for the query surface.
type Snapshot struct {
	Regular         []catalog.Item
	Special         []catalog.Item
	Accumulated     decimal.Decimal
	MachineBalance  decimal.Decimal
	StartingBalance decimal.Decimal
}

// Snapshot copies the current catalog and ledger state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Regular:         m.regular.Items(),
		Special:         m.special.Items(),
		Accumulated:     m.ledger.Accumulated(),
		MachineBalance:  m.ledger.MachineBalance(),
		StartingBalance: m.ledger.StartingBalance(),
	}
}
