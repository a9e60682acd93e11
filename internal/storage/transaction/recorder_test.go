package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// mockTable is a mock for ITransactionTable.
type mockTable struct {
	mock.Mock
}

func (m *mockTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Transaction), args.Error(1)
}

func (m *mockTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Transaction), args.Error(1)
}

func TestRecorder_Append(t *testing.T) {
	table := new(mockTable)
	table.On("Insert", mock.Anything, mock.MatchedBy(func(c *TransactionCreate) bool {
		return c.ItemName == "Hotsilog" &&
			c.Kind == "regular" &&
			c.AmountPaid.Equal(decimal.NewFromInt(100)) &&
			c.Change.Equal(decimal.NewFromInt(50))
	})).Return(uuid.Must(uuid.NewV4()), nil)

	err := NewRecorder(table).Append(context.Background(), vending.TransactionEntry{
		ItemName:   "Hotsilog",
		Kind:       vending.KindRegular,
		AmountPaid: decimal.NewFromInt(100),
		Change:     decimal.NewFromInt(50),
	})

	assert.NoError(t, err)
	table.AssertExpectations(t)
}

func TestRecorder_AppendError(t *testing.T) {
	table := new(mockTable)
	table.On("Insert", mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("database unavailable"))

	err := NewRecorder(table).Append(context.Background(), vending.TransactionEntry{
		ItemName: "Egg",
		Kind:     vending.KindSpecial,
	})

	assert.Error(t, err)
}
