package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationGate_AdmitsUpToLimit(t *testing.T) {
	gate := NewSimulationGate(2)
	ctx := context.Background()

	require.NoError(t, gate.Acquire(ctx))
	require.NoError(t, gate.Acquire(ctx))

	// Third acquisition must block until a slot frees up.
	blocked, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, gate.Acquire(blocked), context.DeadlineExceeded)

	gate.Release()
	require.NoError(t, gate.Acquire(ctx))

	gate.Release()
	gate.Release()
}

func TestSimulationGate_CancelledContext(t *testing.T) {
	gate := NewSimulationGate(1)
	require.NoError(t, gate.Acquire(context.Background()))
	defer gate.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, gate.Acquire(ctx), context.Canceled)
}

func TestSimulationGate_DefaultsToPositiveLimit(t *testing.T) {
	gate := NewSimulationGate(0)
	assert.NoError(t, gate.Acquire(context.Background()))
	gate.Release()
}
