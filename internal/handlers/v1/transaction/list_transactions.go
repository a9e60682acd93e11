package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/service"
)

// ListTransactionsCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxSeq so subsequent pages use consistent parameters.
type ListTransactionsCursor struct {
	Position int   `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit    int   `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxSeq   int64 `json:"maxSeq" doc:"Upper bound on the transaction sequence locked in from the first page"`
}

// ListTransactionsBody is the request body for listing transactions.
type ListTransactionsBody struct {
	Kind   string                  `json:"kind,omitempty" doc:"Optional filter, regular or special"`
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Page of transactions, newest first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, kind string, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns a paginated list of recorded purchases using cursor-based pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
// When a cursor is provided, limit and maxSeq come from it. Without a
// cursor, the service uses its default limit.
func parseListTransactionsInput(input *ListTransactionsInput) (kind string, cursor *service.TransactionCursor, err error) {
	switch input.Body.Kind {
	case "", "regular", "special":
	default:
		return "", nil, huma.NewError(http.StatusBadRequest, "kind must be regular or special")
	}

	if input.Body.Cursor == nil {
		return input.Body.Kind, nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return "", nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}
	if input.Body.Cursor.MaxSeq <= 0 {
		return "", nil, huma.NewError(http.StatusBadRequest, "cursor maxSeq must be positive")
	}

	return input.Body.Kind, &service.TransactionCursor{
		Position: input.Body.Cursor.Position,
		Limit:    input.Body.Cursor.Limit,
		MaxSeq:   input.Body.Cursor.MaxSeq,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	kind, requestCursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, kind, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}

	for i, tx := range transactions {
		resp.Transactions[i] = Transaction{
			ID:         tx.ID.String(),
			ItemName:   tx.ItemName,
			Kind:       tx.Kind,
			AmountPaid: tx.AmountPaid.String(),
			Change:     tx.Change.String(),
			CreatedAt:  tx.CreatedAt.Format(time.RFC3339),
		}
	}

	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
			MaxSeq:   nextCursor.MaxSeq,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
