package actions

import (
	"context"

	"github.com/carson-networks/vendo-server/internal/vending"
)

// Snapshot reads the current machine state. Reads go through the operator
// queue too, so they never observe a half-applied mutation.
type Snapshot struct {
	Result vending.Snapshot
}

func (a *Snapshot) Perform(ctx context.Context, machine *vending.Machine) error {
	a.Result = machine.Snapshot()
	return nil
}
