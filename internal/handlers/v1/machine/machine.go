package machine

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// Balances is the API response model for the machine's cash state.
type Balances struct {
	Accumulated     string `json:"accumulated" doc:"Decimal sum of coins inserted since the last completed purchase"`
	MachineBalance  string `json:"machineBalance" doc:"Decimal cash float available for change"`
	StartingBalance string `json:"startingBalance" doc:"Decimal reserve balance"`
}

// parseDecision maps the request decision string onto the machine's
// confirm/cancel choice.
func parseDecision(raw string) (vending.Decision, error) {
	switch raw {
	case "proceed":
		return vending.Proceed, nil
	case "cancel":
		return vending.Cancel, nil
	default:
		return vending.Cancel, huma.NewError(http.StatusBadRequest, "decision must be proceed or cancel")
	}
}
