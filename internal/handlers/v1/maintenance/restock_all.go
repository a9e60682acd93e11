package maintenance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/handlers/v1/apierr"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
)

// RestockAllBody is the request body for restocking a whole catalog.
type RestockAllBody struct {
	Catalog string `json:"catalog" required:"true" doc:"regular or special"`
}

// RestockAllInput is the Huma input for restocking a whole catalog.
type RestockAllInput struct {
	Body RestockAllBody
}

// RestockAllOutput is the Huma output for restocking a whole catalog.
type RestockAllOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// RestockAllHandler handles POST /v1/maintenance/restock-all.
type RestockAllHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRestockAllHandler creates a new RestockAllHandler.
func NewRestockAllHandler(op *operator.OperatorDelegator) *RestockAllHandler {
	return &RestockAllHandler{Operator: op}
}

// Register registers the catalog restock endpoint with the Huma API.
func (h *RestockAllHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "restock-all",
		Method:      http.MethodPost,
		Path:        "/v1/maintenance/restock-all",
		Summary:     "Restock a whole catalog",
		Description: "Hard-resets every occupied slot of one catalog to the default stock level.",
		Tags:        []string{"Maintenance"},
	}, h.handle)
}

func (h *RestockAllHandler) handle(ctx context.Context, input *RestockAllInput) (*RestockAllOutput, error) {
	kind, err := parseCatalog(input.Body.Catalog)
	if err != nil {
		return nil, err
	}

	action := &actions.RestockAll{Catalog: kind}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apierr.FromDomain("catalog restock failed", err)
	}

	return &RestockAllOutput{Status: http.StatusOK}, nil
}
