package actions

import (
	"context"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// IAction is one unit of machine work processed by the operator. Actions
// carry their own output fields; callers read them after Process returns.
type IAction interface {
	Perform(ctx context.Context, machine *vending.Machine) error
}
