package maintenance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
)

// CollectPaymentResponseBody is the response body for collecting payment.
type CollectPaymentResponseBody struct {
	Collected string `json:"collected" doc:"Decimal amount moved into the machine balance"`
}

// CollectPaymentOutput is the Huma output for collecting payment.
type CollectPaymentOutput struct {
	Body CollectPaymentResponseBody
}

// CollectPaymentHandler handles POST /v1/maintenance/collect.
type CollectPaymentHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCollectPaymentHandler creates a new CollectPaymentHandler.
func NewCollectPaymentHandler(op *operator.OperatorDelegator) *CollectPaymentHandler {
	return &CollectPaymentHandler{Operator: op}
}

// Register registers the payment collection endpoint with the Huma API.
func (h *CollectPaymentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "collect-payment",
		Method:      http.MethodPost,
		Path:        "/v1/maintenance/collect",
		Summary:     "Collect accumulated payment",
		Description: "Moves collectable teller cash into the machine balance and reports the amount.",
		Tags:        []string{"Maintenance"},
	}, h.handle)
}

func (h *CollectPaymentHandler) handle(ctx context.Context, _ *struct{}) (*CollectPaymentOutput, error) {
	action := &actions.CollectPayment{}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "collection failed", err)
	}

	return &CollectPaymentOutput{Body: CollectPaymentResponseBody{
		Collected: action.Collected.String(),
	}}, nil
}
