package transaction

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var _ ITransactionTable = (*Table)(nil)

// Table is the sqlite implementation of ITransactionTable. Decimal
// amounts are stored as text to avoid float drift.
type Table struct {
	db *sql.DB
}

func NewTable(db *sql.DB) *Table {
	return &Table{db: db}
}

// FindByID retrieves a transaction by ID.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row := t.db.QueryRowContext(ctx, `
		SELECT seq, id, item_name, kind, amount_paid, change_given, created_at
		FROM transactions
		WHERE id = ?`, id.String())
	return scanTransaction(row)
}

// Insert records a new transaction and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	_, err = t.db.ExecContext(ctx, `
		INSERT INTO transactions (id, item_name, kind, amount_paid, change_given, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(),
		create.ItemName,
		create.Kind,
		create.AmountPaid.String(),
		create.Change.String(),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter, newest first. When the
// filter carries a positive limit, one extra row is fetched so callers
// can probe for a next page.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	query := `
		SELECT seq, id, item_name, kind, amount_paid, change_given, created_at
		FROM transactions`
	var args []any
	var where []string

	if filter != nil {
		if filter.Kind != nil {
			where = append(where, "kind = ?")
			args = append(args, *filter.Kind)
		}
		if filter.MaxSeq != nil {
			where = append(where, "seq <= ?")
			args = append(args, *filter.MaxSeq)
		}
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}

	query += " ORDER BY seq DESC"

	if filter != nil && filter.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(filter.Limit+1)
		if filter.Offset > 0 {
			query += " OFFSET " + strconv.Itoa(filter.Offset)
		}
	}

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var (
		tx        Transaction
		rawID     string
		rawPaid   string
		rawChange string
		rawTime   string
	)

	err := row.Scan(&tx.Seq, &rawID, &tx.ItemName, &tx.Kind, &rawPaid, &rawChange, &rawTime)
	if err != nil {
		return nil, err
	}

	if tx.ID, err = uuid.FromString(rawID); err != nil {
		return nil, err
	}
	if tx.AmountPaid, err = decimal.NewFromString(rawPaid); err != nil {
		return nil, err
	}
	if tx.Change, err = decimal.NewFromString(rawChange); err != nil {
		return nil, err
	}
	if tx.CreatedAt, err = time.Parse(time.RFC3339Nano, rawTime); err != nil {
		return nil, err
	}

	return &tx, nil
}
