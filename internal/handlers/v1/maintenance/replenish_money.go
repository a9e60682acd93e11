package maintenance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
)

// ReplenishMoneyResponseBody is the response body for replenishing the float.
type ReplenishMoneyResponseBody struct {
	Replenished string `json:"replenished" doc:"Decimal amount added to the machine balance"`
}

// ReplenishMoneyOutput is the Huma output for replenishing the float.
type ReplenishMoneyOutput struct {
	Body ReplenishMoneyResponseBody
}

// ReplenishMoneyHandler handles POST /v1/maintenance/replenish.
type ReplenishMoneyHandler struct {
	Operator *operator.OperatorDelegator
}

// NewReplenishMoneyHandler creates a new ReplenishMoneyHandler.
func NewReplenishMoneyHandler(op *operator.OperatorDelegator) *ReplenishMoneyHandler {
	return &ReplenishMoneyHandler{Operator: op}
}

// Register registers the float replenishment endpoint with the Huma API.
func (h *ReplenishMoneyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "replenish-money",
		Method:      http.MethodPost,
		Path:        "/v1/maintenance/replenish",
		Summary:     "Replenish the change float",
		Description: "Loads replenishable teller cash into the machine balance and reports the amount.",
		Tags:        []string{"Maintenance"},
	}, h.handle)
}

func (h *ReplenishMoneyHandler) handle(ctx context.Context, _ *struct{}) (*ReplenishMoneyOutput, error) {
	action := &actions.ReplenishMoney{}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "replenishment failed", err)
	}

	return &ReplenishMoneyOutput{Body: ReplenishMoneyResponseBody{
		Replenished: action.Replenished.String(),
	}}, nil
}
