package machine

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
)

// InsertCoinsBody is the request body for inserting coins.
type InsertCoinsBody struct {
	Coins string `json:"coins" required:"true" doc:"Whitespace-separated coin values, e.g. \"10 20 50\""`
}

// InsertCoinsInput is the Huma input for inserting coins.
type InsertCoinsInput struct {
	Body InsertCoinsBody
}

// InsertCoinsResponseBody is the response body for inserting coins.
type InsertCoinsResponseBody struct {
	Accepted    string   `json:"accepted" doc:"Decimal sum of the coins accepted from this input"`
	Accumulated string   `json:"accumulated" doc:"Decimal accumulated payment after this input"`
	Rejected    []string `json:"rejected,omitempty" doc:"Input tokens that were not valid coins"`
}

// InsertCoinsOutput is the Huma output for inserting coins.
type InsertCoinsOutput struct {
	Body InsertCoinsResponseBody
}

// InsertCoinsHandler handles POST /v1/machine/coins.
type InsertCoinsHandler struct {
	Operator *operator.OperatorDelegator
}

// NewInsertCoinsHandler creates a new InsertCoinsHandler.
func NewInsertCoinsHandler(op *operator.OperatorDelegator) *InsertCoinsHandler {
	return &InsertCoinsHandler{Operator: op}
}

// Register registers the coin insertion endpoint with the Huma API.
func (h *InsertCoinsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "insert-coins",
		Method:      http.MethodPost,
		Path:        "/v1/machine/coins",
		Summary:     "Insert coins",
		Description: "Feeds a line of coins into the machine. Invalid tokens are reported back, not rejected wholesale.",
		Tags:        []string{"Machine"},
	}, h.handle)
}

func (h *InsertCoinsHandler) handle(ctx context.Context, input *InsertCoinsInput) (*InsertCoinsOutput, error) {
	if strings.TrimSpace(input.Body.Coins) == "" {
		return nil, huma.NewError(http.StatusBadRequest, "coins must not be empty")
	}

	action := &actions.InsertCoins{Coins: input.Body.Coins}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to insert coins", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("coinsAccepted", action.Result.Accepted.String())
		logData.AddData("coinsRejected", len(action.Result.Rejected))
	}

	return &InsertCoinsOutput{Body: InsertCoinsResponseBody{
		Accepted:    action.Result.Accepted.String(),
		Accumulated: action.Result.Accumulated.String(),
		Rejected:    action.Result.Rejected,
	}}, nil
}
