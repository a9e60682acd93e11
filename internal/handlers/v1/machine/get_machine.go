package machine

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/operator/actions"
)

// GetMachineResponseBody is the response body for reading machine balances.
type GetMachineResponseBody struct {
	Balances Balances `json:"balances" doc:"Current cash state of the machine"`
}

// GetMachineOutput is the Huma output for reading machine balances.
type GetMachineOutput struct {
	Body GetMachineResponseBody
}

// GetMachineHandler handles GET /v1/machine.
type GetMachineHandler struct {
	Operator *operator.OperatorDelegator
}

// NewGetMachineHandler creates a new GetMachineHandler.
func NewGetMachineHandler(op *operator.OperatorDelegator) *GetMachineHandler {
	return &GetMachineHandler{Operator: op}
}

// Register registers the machine read endpoint with the Huma API.
func (h *GetMachineHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-machine",
		Method:      http.MethodGet,
		Path:        "/v1/machine",
		Summary:     "Get machine balances",
		Description: "Returns the accumulated payment and cash balances of the machine.",
		Tags:        []string{"Machine"},
	}, h.handle)
}

func (h *GetMachineHandler) handle(ctx context.Context, _ *struct{}) (*GetMachineOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("snapshotMs")
	}
	action := &actions.Snapshot{}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to read machine state", err)
	}

	return &GetMachineOutput{Body: GetMachineResponseBody{
		Balances: Balances{
			Accumulated:     action.Result.Accumulated.String(),
			MachineBalance:  action.Result.MachineBalance.String(),
			StartingBalance: action.Result.StartingBalance.String(),
		},
	}}, nil
}
