package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents one recorded purchase. Rows are append-only and
// immutable once inserted; Seq is the insertion order.
type Transaction struct {
	ID         uuid.UUID
	Seq        int64
	ItemName   string
	Kind       string
	AmountPaid decimal.Decimal
	Change     decimal.Decimal
	CreatedAt  time.Time
}

// TransactionCreate is the input for recording a new transaction.
type TransactionCreate struct {
	ItemName   string
	Kind       string
	AmountPaid decimal.Decimal
	Change     decimal.Decimal
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	Kind   *string
	Limit  int
	Offset int
	MaxSeq *int64
}

// ITransactionTable defines the interface for transaction storage
// operations. This abstraction allows swapping the implementation
// without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
