package service

import (
	"context"

	"github.com/carson-networks/vendo-server/internal/storage"
	"github.com/carson-networks/vendo-server/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService handles transaction-history reads.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns a page of the purchase history, newest first,
// using cursor-based pagination. The sequence bound locked in on the
// first page keeps subsequent pages stable while new purchases land. An
// empty kind lists both catalogs.
func (s *TransactionService) ListTransactions(ctx context.Context, kind string, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxSeq *int64
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxSeq = &cursor.MaxSeq
	}

	var kindFilter *string
	if kind != "" {
		kindFilter = &kind
	}

	filter := &transaction.TransactionFilter{
		Kind:   kindFilter,
		Limit:  limit,
		Offset: offset,
		MaxSeq: maxSeq,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxSeq := rows[0].Seq
		if maxSeq != nil {
			cursorMaxSeq = *maxSeq
		}

		nextCursor = &TransactionCursor{
			Position: offset + limit,
			Limit:    limit,
			MaxSeq:   cursorMaxSeq,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:         row.ID,
			Seq:        row.Seq,
			ItemName:   row.ItemName,
			Kind:       row.Kind,
			AmountPaid: row.AmountPaid,
			Change:     row.Change,
			CreatedAt:  row.CreatedAt,
		}
	}

	return convertedTransactions, nextCursor, nil
}
