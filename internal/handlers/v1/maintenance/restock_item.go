package maintenance

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

// RestockItemBody is the request body for restocking one item.
type RestockItemBody struct {
	Catalog  string `json:"catalog" required:"true" doc:"regular or special"`
	Name     string `json:"name" required:"true" doc:"Item name, case-sensitive"`
	Quantity int    `json:"quantity" required:"true" doc:"Units to add, must be positive"`
}

// RestockItemInput is the Huma input for restocking one item.
type RestockItemInput struct {
	Body RestockItemBody
}

// RestockItemResponseBody is the response body for restocking one item.
type RestockItemResponseBody struct {
	Name        string `json:"name" doc:"Item name"`
	NewQuantity int    `json:"newQuantity" doc:"Stock level after the restock"`
}

// RestockItemOutput is the Huma output for restocking one item.
type RestockItemOutput struct {
	Body RestockItemResponseBody
}

// RestockItemHandler handles POST /v1/maintenance/restock.
type RestockItemHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRestockItemHandler creates a new RestockItemHandler.
func NewRestockItemHandler(op *operator.OperatorDelegator) *RestockItemHandler {
	return &RestockItemHandler{Operator: op}
}

// Register registers the restock endpoint with the Huma API.
func (h *RestockItemHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "restock-item",
		Method:      http.MethodPost,
		Path:        "/v1/maintenance/restock",
		Summary:     "Restock an item",
		Description: "Adds stock to one item, capped at the restock ceiling.",
		Tags:        []string{"Maintenance"},
	}, h.handle)
}

// parseRestockItemInput parses and validates the API input.
func parseRestockItemInput(input *RestockItemInput) (vending.CatalogKind, string, int, error) {
	kind, err := parseCatalog(input.Body.Catalog)
	if err != nil {
		return "", "", 0, err
	}
	if input.Body.Name == "" {
		return "", "", 0, huma.NewError(http.StatusBadRequest, "name must not be empty")
	}
	return kind, input.Body.Name, input.Body.Quantity, nil
}

func (h *RestockItemHandler) handle(ctx context.Context, input *RestockItemInput) (*RestockItemOutput, error) {
	kind, name, quantity, err := parseRestockItemInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.RestockItem{Catalog: kind, Name: name, Quantity: quantity}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierr.FromDomain("restock failed", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("newQuantity", action.NewQuantity)
	}

	return &RestockItemOutput{Body: RestockItemResponseBody{
		Name:        name,
		NewQuantity: action.NewQuantity,
	}}, nil
}
