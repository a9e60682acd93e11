package item

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
	"github.com/carson-networks/vendo-server/internal/vending"
)

// Item is the API response model for one catalog slot.
type Item struct {
	Name     string `json:"name" doc:"Item name"`
	Price    string `json:"price" doc:"Decimal price"`
	Quantity int    `json:"quantity" doc:"Units in stock"`
	Calories int    `json:"calories" doc:"Calories per unit"`
}

// ListItemsInput is the Huma input for listing catalog items.
type ListItemsInput struct {
	Catalog string `query:"catalog" doc:"Catalog to list, regular or special; defaults to regular"`
}

// ListItemsResponseBody is the response body for listing catalog items.
type ListItemsResponseBody struct {
	Catalog string `json:"catalog" doc:"Catalog the items belong to"`
	Items   []Item `json:"items" doc:"Occupied slots of the catalog"`
}

// ListItemsOutput is the Huma output for listing catalog items.
type ListItemsOutput struct {
	Body ListItemsResponseBody
}

// ListItemsHandler handles GET /v1/item/list.
type ListItemsHandler struct {
	Operator *operator.OperatorDelegator
}

// NewListItemsHandler creates a new ListItemsHandler.
func NewListItemsHandler(op *operator.OperatorDelegator) *ListItemsHandler {
	return &ListItemsHandler{Operator: op}
}

// Register registers the item listing endpoint with the Huma API.
func (h *ListItemsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/v1/item/list",
		Summary:     "List catalog items",
		Description: "Returns the occupied slots of one catalog with price, stock, and calories.",
		Tags:        []string{"Items"},
	}, h.handle)
}

// parseListItemsInput parses and validates the API input. An absent
// catalog parameter selects the regular catalog.
func parseListItemsInput(input *ListItemsInput) (vending.CatalogKind, error) {
	switch input.Catalog {
	case "", string(vending.CatalogRegular):
		return vending.CatalogRegular, nil
	case string(vending.CatalogSpecial):
		return vending.CatalogSpecial, nil
	default:
		return "", huma.NewError(http.StatusBadRequest, "catalog must be regular or special")
	}
}

func (h *ListItemsHandler) handle(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	kind, err := parseListItemsInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.Snapshot{}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read catalog", err)
	}

	slots := action.Result.Regular
	if kind == vending.CatalogSpecial {
		slots = action.Result.Special
	}

	items := make([]Item, 0, len(slots))
	for _, slot := range slots {
		if slot.Empty() {
			continue
		}
		items = append(items, Item{
			Name:     slot.Name,
			Price:    slot.Price.String(),
			Quantity: slot.Quantity,
			Calories: slot.Calories,
		})
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("itemCount", len(items))
	}

	return &ListItemsOutput{Body: ListItemsResponseBody{
		Catalog: string(kind),
		Items:   items,
	}}, nil
}
