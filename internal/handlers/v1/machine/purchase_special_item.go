package machine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
)

// PurchaseSpecialItemBody is the request body for purchasing a special item.
type PurchaseSpecialItemBody struct {
	Name     string `json:"name" required:"true" doc:"Item name, case-sensitive"`
	Decision string `json:"decision" required:"true" doc:"proceed or cancel, chosen before the item is located"`
}

// PurchaseSpecialItemInput is the Huma input for purchasing a special item.
type PurchaseSpecialItemInput struct {
	Body PurchaseSpecialItemBody
}

// PurchaseSpecialItemResponseBody is the response body for purchasing a
// special item. A pending purchase reports the shortfall still owed and
// keeps the payment accumulated; no change is ever disbursed here.
type PurchaseSpecialItemResponseBody struct {
	State     string `json:"state" doc:"completed, cancelled, or pending"`
	ItemName  string `json:"itemName" doc:"Name of the item"`
	Price     string `json:"price" doc:"Decimal price of the item"`
	Shortfall string `json:"shortfall" doc:"Decimal amount still owed when pending"`
	CarryOver string `json:"carryOver" doc:"Decimal overpayment retained as accumulated payment when completed"`
}

// PurchaseSpecialItemOutput is the Huma output for purchasing a special item.
type PurchaseSpecialItemOutput struct {
	Body PurchaseSpecialItemResponseBody
}

// PurchaseSpecialItemHandler handles POST /v1/machine/purchase-special.
type PurchaseSpecialItemHandler struct {
	Operator *operator.OperatorDelegator
}

// NewPurchaseSpecialItemHandler creates a new PurchaseSpecialItemHandler.
func NewPurchaseSpecialItemHandler(op *operator.OperatorDelegator) *PurchaseSpecialItemHandler {
	return &PurchaseSpecialItemHandler{Operator: op}
}

// Register registers the special purchase endpoint with the Huma API.
func (h *PurchaseSpecialItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "purchase-special-item",
		Method:      http.MethodPost,
		Path:        "/v1/machine/purchase-special",
		Summary:     "Purchase a special item",
		Description: "Runs one special-item purchase. Underpayment leaves the purchase pending with the shortfall reported.",
		Tags:        []string{"Machine"},
	}, h.handle)
}

func (h *PurchaseSpecialItemHandler) handle(ctx context.Context, input *PurchaseSpecialItemInput) (*PurchaseSpecialItemOutput, error) {
	if input.Body.Name == "" {
		return nil, huma.NewError(http.StatusBadRequest, "name must not be empty")
	}
	decision, err := parseDecision(input.Body.Decision)
	if err != nil {
		return nil, err
	}

	action := &actions.PurchaseSpecialItem{Name: input.Body.Name, Decision: decision}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierr.FromDomain("special purchase failed", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("purchaseState", string(action.Result.State))
	}

	return &PurchaseSpecialItemOutput{Body: PurchaseSpecialItemResponseBody{
		State:     string(action.Result.State),
		ItemName:  action.Result.ItemName,
		Price:     action.Result.Price.String(),
		Shortfall: action.Result.Shortfall.String(),
		CarryOver: action.Result.CarryOver.String(),
	}}, nil
}
