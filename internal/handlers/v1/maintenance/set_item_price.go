package maintenance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/vendo-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
	"github.com/carson-networks/vendo-server/internal/vending"
)

// SetItemPriceBody is the request body for repricing one item.
type SetItemPriceBody struct {
	Catalog string `json:"catalog" required:"true" doc:"regular or special"`
	Name    string `json:"name" required:"true" doc:"Item name, case-sensitive"`
	Price   string `json:"price" required:"true" doc:"New decimal price, must be positive"`
}

// SetItemPriceInput is the Huma input for repricing one item.
type SetItemPriceInput struct {
	Body SetItemPriceBody
}

// SetItemPriceOutput is the Huma output for repricing one item.
type SetItemPriceOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// SetItemPriceHandler handles POST /v1/maintenance/price.
type SetItemPriceHandler struct {
	Operator *operator.OperatorDelegator
}

// NewSetItemPriceHandler creates a new SetItemPriceHandler.
func NewSetItemPriceHandler(op *operator.OperatorDelegator) *SetItemPriceHandler {
	return &SetItemPriceHandler{Operator: op}
}

// Register registers the repricing endpoint with the Huma API.
func (h *SetItemPriceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-item-price",
		Method:      http.MethodPost,
		Path:        "/v1/maintenance/price",
		Summary:     "Set an item's price",
		Description: "Updates the price of one item. In-flight accumulated payment is unaffected.",
		Tags:        []string{"Maintenance"},
	}, h.handle)
}

// parseSetItemPriceInput parses and validates the API input.
func parseSetItemPriceInput(input *SetItemPriceInput) (vending.CatalogKind, string, decimal.Decimal, error) {
	kind, err := parseCatalog(input.Body.Catalog)
	if err != nil {
		return "", "", decimal.Zero, err
	}
	if input.Body.Name == "" {
		return "", "", decimal.Zero, huma.NewError(http.StatusBadRequest, "name must not be empty")
	}
	price, err := decimal.NewFromString(input.Body.Price)
	if err != nil {
		return "", "", decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid price", err)
	}
	return kind, input.Body.Name, price, nil
}

func (h *SetItemPriceHandler) handle(ctx context.Context, input *SetItemPriceInput) (*SetItemPriceOutput, error) {
	kind, name, price, err := parseSetItemPriceInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.SetItemPrice{Catalog: kind, Name: name, Price: price}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierr.FromDomain("price update failed", err)
	}

	return &SetItemPriceOutput{Status: http.StatusOK}, nil
}
