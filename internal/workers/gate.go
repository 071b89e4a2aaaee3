package workers

import (
	"context"
	"runtime"
)

// SimulationGate bounds how many simulations run concurrently. A single
// simulation holds O(N) float64s resident, so unbounded admission under
// concurrent requests can exhaust memory long before it exhausts CPU.
type SimulationGate struct {
	slots chan struct{}
}

// NewSimulationGate creates a gate admitting up to maxConcurrent
// simulations at once. Non-positive values default to the CPU count.
func NewSimulationGate(maxConcurrent int) *SimulationGate {
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.NumCPU()
	}
	return &SimulationGate{
		slots: make(chan struct{}, maxConcurrent),
	}
}

// Acquire blocks until a slot is free or the context is done.
func (g *SimulationGate) Acquire(ctx context.Context) error {
	select {
	case g.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot acquired with Acquire.
func (g *SimulationGate) Release() {
	<-g.slots
}
