package vending

import "github.com/shopspring/decimal"

// Ledger tracks the cash state of one machine session: the machine's own
// float (machine balance), a separate starting balance used as a
// change-feasibility reserve, and the payment a customer has tendered but
// not yet spent (accumulated payment).
type Ledger struct {
	machineBalance  decimal.Decimal
	startingBalance decimal.Decimal
	accumulated     decimal.Decimal
}

// NewLedger creates a ledger with the given machine and starting balances.
// The accumulated payment starts at zero.
func NewLedger(machineBalance, startingBalance decimal.Decimal) *Ledger {
	return &Ledger{
		machineBalance:  machineBalance,
		startingBalance: startingBalance,
	}
}

// MachineBalance returns the cash float available for disbursing change.
func (l *Ledger) MachineBalance() decimal.Decimal {
	return l.machineBalance
}

// StartingBalance returns the change-feasibility reserve.
func (l *Ledger) StartingBalance() decimal.Decimal {
	return l.startingBalance
}

// Accumulated returns the payment tendered but not yet consumed.
func (l *Ledger) Accumulated() decimal.Decimal {
	return l.accumulated
}

// AddAccumulated adds tendered cash to the accumulated payment.
func (l *Ledger) AddAccumulated(amount decimal.Decimal) {
	l.accumulated = l.accumulated.Add(amount)
}

// ResetAccumulated sets the accumulated payment to zero.
func (l *Ledger) ResetAccumulated() {
	l.accumulated = decimal.Zero
}

func (l *Ledger) setAccumulated(amount decimal.Decimal) {
	l.accumulated = amount
}

// AdjustMachineBalance adds delta to the machine balance unconditionally.
// Negative deltas pay cash out of the float.
func (l *Ledger) AdjustMachineBalance(delta decimal.Decimal) {
	l.machineBalance = l.machineBalance.Add(delta)
}

// TryDeductFromStartingBalance deducts amount from the starting balance
// iff it is covered, and reports whether the deduction happened. The
// starting balance never goes negative.
func (l *Ledger) TryDeductFromStartingBalance(amount decimal.Decimal) bool {
	if l.startingBalance.LessThan(amount) {
		return false
	}
	l.startingBalance = l.startingBalance.Sub(amount)
	return true
}
