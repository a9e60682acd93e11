package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a recorded purchase in the service layer.
type Transaction struct {
	ID         uuid.UUID
	Seq        int64
	ItemName   string
	Kind       string
	AmountPaid decimal.Decimal
	Change     decimal.Decimal
	CreatedAt  time.Time
}

// TransactionCursor identifies a position in a paginated result set and
// carries the limit and maxSeq so subsequent pages are consistent.
type TransactionCursor struct {
	Position int
	Limit    int
	MaxSeq   int64
}
