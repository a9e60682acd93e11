package vending

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/vendo-server/internal/catalog"
	"github.com/carson-networks/vendo-server/internal/vending/venderr"
)

// mockTransactionLog is a mock for TransactionLog.
type mockTransactionLog struct {
	mock.Mock
}

func (m *mockTransactionLog) Append(ctx context.Context, entry TransactionEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func newTestMachine(t *testing.T) (*Machine, *mockTransactionLog) {
	t.Helper()
	log := new(mockTransactionLog)
	ledger := NewLedger(d("200"), d("100"))
	m := NewMachine(catalog.SeedRegular(), catalog.SeedSpecial(), ledger, log)
	return m, log
}

func regularQuantity(t *testing.T, m *Machine, name string) int {
	t.Helper()
	for _, item := range m.Snapshot().Regular {
		if item.Name == name {
			return item.Quantity
		}
	}
	t.Fatalf("item %q not in regular catalog", name)
	return 0
}

func specialQuantity(t *testing.T, m *Machine, name string) int {
	t.Helper()
	for _, item := range m.Snapshot().Special {
		if item.Name == name {
			return item.Quantity
		}
	}
	t.Fatalf("item %q not in special catalog", name)
	return 0
}

func TestInsertCoins_AddsAccepted(t *testing.T) {
	m, _ := newTestMachine(t)

	result := m.InsertCoins("10 20 abc 5000 50")

	assert.True(t, result.Accepted.Equal(d("80")))
	assert.True(t, result.Accumulated.Equal(d("80")))
	assert.Equal(t, []string{"abc", "5000"}, result.Rejected)
	assert.True(t, m.Ledger().Accumulated().Equal(d("80")))
}

func TestInsertCoins_AccumulatesAcrossCalls(t *testing.T) {
	m, _ := newTestMachine(t)

	m.InsertCoins("50")
	result := m.InsertCoins("20 5")

	assert.True(t, result.Accumulated.Equal(d("75")))
}

// -- PurchaseItem tests --

func TestPurchaseItem_Success(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("100")

	log.On("Append", mock.Anything, mock.MatchedBy(func(e TransactionEntry) bool {
		return e.ItemName == "Hotsilog" &&
			e.Kind == KindRegular &&
			e.AmountPaid.Equal(d("100")) &&
			e.Change.Equal(d("50"))
	})).Return(nil)

	result, err := m.PurchaseItem(context.Background(), "Hotsilog", Proceed)

	assert.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.Equal(t, "Hotsilog", result.ItemName)
	assert.True(t, result.Price.Equal(d("50")))
	assert.True(t, result.AmountPaid.Equal(d("100")))
	assert.True(t, result.Change.Equal(d("50")))

	assert.Equal(t, 9, regularQuantity(t, m, "Hotsilog"))
	assert.True(t, m.Ledger().Accumulated().IsZero())
	assert.True(t, m.Ledger().MachineBalance().Equal(d("150")), "change paid out of the float")
	log.AssertExpectations(t)
}

func TestPurchaseItem_ExactPayment(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("50")

	log.On("Append", mock.Anything, mock.MatchedBy(func(e TransactionEntry) bool {
		return e.Change.IsZero()
	})).Return(nil)

	result, err := m.PurchaseItem(context.Background(), "Hotsilog", Proceed)

	assert.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.True(t, result.Change.IsZero())
	assert.True(t, m.Ledger().MachineBalance().Equal(d("200")), "no change means the float is untouched")
}

func TestPurchaseItem_NotFound(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("100")

	_, err := m.PurchaseItem(context.Background(), "Sisig", Proceed)

	assert.ErrorIs(t, err, venderr.ErrItemNotFound)
	assert.True(t, m.Ledger().Accumulated().Equal(d("100")), "failure leaves accumulated payment")
	log.AssertNotCalled(t, "Append")
}

func TestPurchaseItem_OutOfStock(t *testing.T) {
	m, log := newTestMachine(t)
	log.On("Append", mock.Anything, mock.Anything).Return(nil)

	// Drain the slot to zero.
	for i := 0; i < catalog.DefaultQuantity; i++ {
		m.InsertCoins("50")
		_, err := m.PurchaseItem(context.Background(), "Hotsilog", Proceed)
		assert.NoError(t, err)
	}
	assert.Equal(t, 0, regularQuantity(t, m, "Hotsilog"))

	m.InsertCoins("50")
	_, err := m.PurchaseItem(context.Background(), "Hotsilog", Proceed)
	assert.ErrorIs(t, err, venderr.ErrOutOfStock)
	assert.Equal(t, 0, regularQuantity(t, m, "Hotsilog"), "never reduced below zero")
}

func TestPurchaseItem_InsufficientFunds(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("20 20")

	_, err := m.PurchaseItem(context.Background(), "Hotsilog", Proceed)

	assert.ErrorIs(t, err, venderr.ErrInsufficientFunds)
	assert.True(t, m.Ledger().Accumulated().Equal(d("40")), "accumulated unchanged")
	assert.Equal(t, 10, regularQuantity(t, m, "Hotsilog"))
	log.AssertNotCalled(t, "Append")
}

func TestPurchaseItem_Cancelled(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("100")

	result, err := m.PurchaseItem(context.Background(), "Hotsilog", Cancel)

	assert.NoError(t, err)
	assert.Equal(t, StateCancelled, result.State)
	assert.True(t, m.Ledger().Accumulated().Equal(d("100")), "cancel keeps the accumulated payment")
	assert.Equal(t, 10, regularQuantity(t, m, "Hotsilog"))
	assert.True(t, m.Ledger().MachineBalance().Equal(d("200")))
	log.AssertNotCalled(t, "Append")
}

func TestPurchaseItem_InsufficientChange(t *testing.T) {
	log := new(mockTransactionLog)
	ledger := NewLedger(d("10"), d("100")) // float smaller than the change owed
	m := NewMachine(catalog.SeedRegular(), catalog.SeedSpecial(), ledger, log)
	m.InsertCoins("100")

	_, err := m.PurchaseItem(context.Background(), "Hotsilog", Proceed)
	assert.ErrorIs(t, err, venderr.ErrInsufficientChange)

	// Idempotent failure: same inputs, same failure, no drift.
	_, err = m.PurchaseItem(context.Background(), "Hotsilog", Proceed)
	assert.ErrorIs(t, err, venderr.ErrInsufficientChange)

	assert.True(t, m.Ledger().Accumulated().Equal(d("100")))
	assert.True(t, m.Ledger().MachineBalance().Equal(d("10")))
	assert.Equal(t, 10, regularQuantity(t, m, "Hotsilog"))
	log.AssertNotCalled(t, "Append")
}

func TestPurchaseItem_LogError(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("50")

	log.On("Append", mock.Anything, mock.Anything).Return(errors.New("log unavailable"))

	result, err := m.PurchaseItem(context.Background(), "Hotsilog", Proceed)

	assert.Error(t, err)
	assert.Equal(t, StateCompleted, result.State, "commit already applied")
}

// -- PurchaseSpecialItem tests --

func TestPurchaseSpecialItem_PendingOnShortfall(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("10")

	result, err := m.PurchaseSpecialItem(context.Background(), "Hotdog", Proceed)

	assert.NoError(t, err)
	assert.Equal(t, StatePending, result.State)
	assert.True(t, result.Shortfall.Equal(d("5")))
	assert.True(t, m.Ledger().Accumulated().Equal(d("10")), "pending attempt mutates nothing")
	assert.Equal(t, 10, specialQuantity(t, m, "Hotdog"))
	log.AssertNotCalled(t, "Append")
}

func TestPurchaseSpecialItem_CompletesAfterMorePayment(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("10")

	pending, err := m.PurchaseSpecialItem(context.Background(), "Hotdog", Proceed)
	assert.NoError(t, err)
	assert.Equal(t, StatePending, pending.State)

	m.InsertCoins("10")

	log.On("Append", mock.Anything, mock.MatchedBy(func(e TransactionEntry) bool {
		return e.ItemName == "Hotdog" &&
			e.Kind == KindSpecial &&
			e.AmountPaid.Equal(d("15")) &&
			e.Change.IsZero()
	})).Return(nil)

	result, err := m.PurchaseSpecialItem(context.Background(), "Hotdog", Proceed)

	assert.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.True(t, result.CarryOver.Equal(d("5")), "overpayment rolls into the accumulated balance")
	assert.True(t, m.Ledger().Accumulated().Equal(d("5")))
	assert.Equal(t, 9, specialQuantity(t, m, "Hotdog"))
	assert.True(t, m.Ledger().MachineBalance().Equal(d("200")), "no machine change disbursed")
	log.AssertExpectations(t)
}

func TestPurchaseSpecialItem_ExactPayment(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("5")

	log.On("Append", mock.Anything, mock.Anything).Return(nil)

	result, err := m.PurchaseSpecialItem(context.Background(), "Egg", Proceed)

	assert.NoError(t, err)
	assert.Equal(t, StateCompleted, result.State)
	assert.True(t, result.CarryOver.IsZero())
	assert.True(t, m.Ledger().Accumulated().IsZero())
}

func TestPurchaseSpecialItem_Cancelled(t *testing.T) {
	m, log := newTestMachine(t)
	m.InsertCoins("50")

	result, err := m.PurchaseSpecialItem(context.Background(), "Hotdog", Cancel)

	assert.NoError(t, err)
	assert.Equal(t, StateCancelled, result.State)
	assert.True(t, m.Ledger().Accumulated().Equal(d("50")))
	assert.Equal(t, 10, specialQuantity(t, m, "Hotdog"))
	log.AssertNotCalled(t, "Append")
}

func TestPurchaseSpecialItem_NotFound(t *testing.T) {
	m, _ := newTestMachine(t)

	// Regular-catalog names are a different namespace.
	_, err := m.PurchaseSpecialItem(context.Background(), "Hotsilog", Proceed)

	assert.ErrorIs(t, err, venderr.ErrItemNotFound)
}

func TestPurchaseSpecialItem_OutOfStock(t *testing.T) {
	m, log := newTestMachine(t)
	log.On("Append", mock.Anything, mock.Anything).Return(nil)

	for i := 0; i < catalog.DefaultQuantity; i++ {
		m.InsertCoins("5")
		result, err := m.PurchaseSpecialItem(context.Background(), "Egg", Proceed)
		assert.NoError(t, err)
		assert.Equal(t, StateCompleted, result.State)
	}
	assert.Equal(t, 0, specialQuantity(t, m, "Egg"))

	m.InsertCoins("5")
	_, err := m.PurchaseSpecialItem(context.Background(), "Egg", Proceed)
	assert.ErrorIs(t, err, venderr.ErrOutOfStock)
}

func TestSnapshot(t *testing.T) {
	m, _ := newTestMachine(t)
	m.InsertCoins("20")

	snap := m.Snapshot()

	assert.Len(t, snap.Regular, catalog.RegularSlots)
	assert.Len(t, snap.Special, catalog.SpecialSlots)
	assert.True(t, snap.Accumulated.Equal(d("20")))
	assert.True(t, snap.MachineBalance.Equal(d("200")))
	assert.True(t, snap.StartingBalance.Equal(d("100")))
}
