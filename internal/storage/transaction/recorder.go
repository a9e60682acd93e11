package transaction

import (
	"context"

	"github.com/carson-networks/vendo-server/internal/vending"
)

var _ vending.TransactionLog = (*Recorder)(nil)

// Recorder adapts the transactions table to the engine's TransactionLog.
type Recorder struct {
	table ITransactionTable
}

func NewRecorder(table ITransactionTable) *Recorder {
	return &Recorder{table: table}
}

// Append records a completed purchase. The generated row ID is of no
// interest to the engine.
func (r *Recorder) Append(ctx context.Context, entry vending.TransactionEntry) error {
	_, err := r.table.Insert(ctx, &TransactionCreate{
		ItemName:   entry.ItemName,
		Kind:       string(entry.Kind),
		AmountPaid: entry.AmountPaid,
		Change:     entry.Change,
	})
	return err
}
