package machine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
	"github.com/carson-networks/vendo-server/internal/vending"
)

// PurchaseItemBody is the request body for purchasing a regular item.
type PurchaseItemBody struct {
	Name     string `json:"name" required:"true" doc:"Item name, case-sensitive"`
	Decision string `json:"decision" required:"true" doc:"proceed or cancel, chosen after the price is shown"`
}

// PurchaseItemInput is the Huma input for purchasing a regular item.
type PurchaseItemInput struct {
	Body PurchaseItemBody
}

// PurchaseItemResponseBody is the response body for purchasing a regular item.
type PurchaseItemResponseBody struct {
	State      string `json:"state" doc:"completed or cancelled"`
	ItemName   string `json:"itemName" doc:"Name of the item"`
	Price      string `json:"price" doc:"Decimal price of the item"`
	AmountPaid string `json:"amountPaid" doc:"Decimal payment applied to this purchase"`
	Change     string `json:"change" doc:"Decimal change disbursed"`
}

// PurchaseItemOutput is the Huma output for purchasing a regular item.
type PurchaseItemOutput struct {
	Body PurchaseItemResponseBody
}

// PurchaseItemHandler handles POST /v1/machine/purchase.
type PurchaseItemHandler struct {
	Operator *operator.OperatorDelegator
}

// NewPurchaseItemHandler creates a new PurchaseItemHandler.
func NewPurchaseItemHandler(op *operator.OperatorDelegator) *PurchaseItemHandler {
	return &PurchaseItemHandler{Operator: op}
}

// Register registers the regular purchase endpoint with the Huma API.
func (h *PurchaseItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "purchase-item",
		Method:      http.MethodPost,
		Path:        "/v1/machine/purchase",
		Summary:     "Purchase a regular item",
		Description: "Runs one regular-item purchase against the accumulated payment, disbursing change on success.",
		Tags:        []string{"Machine"},
	}, h.handle)
}

// parsePurchaseItemInput parses and validates the API input.
func parsePurchaseItemInput(input *PurchaseItemInput) (string, vending.Decision, error) {
	if input.Body.Name == "" {
		return "", vending.Cancel, huma.NewError(http.StatusBadRequest, "name must not be empty")
	}

	decision, err := parseDecision(input.Body.Decision)
	if err != nil {
		return "", vending.Cancel, err
	}

	return input.Body.Name, decision, nil
}

func (h *PurchaseItemHandler) handle(ctx context.Context, input *PurchaseItemInput) (*PurchaseItemOutput, error) {
	logData := logging.GetLogData(ctx)
	name, decision, err := parsePurchaseItemInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("purchaseMs")
	}
	action := &actions.PurchaseItem{Name: name, Decision: decision}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierr.FromDomain("purchase failed", err)
	}

	if logData != nil {
		logData.AddData("purchaseState", string(action.Result.State))
	}

	return &PurchaseItemOutput{Body: PurchaseItemResponseBody{
		State:      string(action.Result.State),
		ItemName:   action.Result.ItemName,
		Price:      action.Result.Price.String(),
		AmountPaid: action.Result.AmountPaid.String(),
		Change:     action.Result.Change.String(),
	}}, nil
}
