package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/vendo-server/internal/operator/actions"
	"github.com/carson-networks/vendo-server/internal/vending"
)

// OperatorDelegator manages the queue, starts/stops the Operator worker,
// and enqueues items. Exactly one worker runs: the machine session is not
// safe for concurrent use, and a single worker gives every action the
// run-to-completion guarantee the purchase protocol relies on.
type OperatorDelegator struct {
	machine  *vending.Machine
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(m *vending.Machine) *OperatorDelegator {
	return &OperatorDelegator{
		machine: m,
		queue:   make(chan ActionItem, 1000),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.machine, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
