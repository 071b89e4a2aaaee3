package pricing

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quantdesk/quantum-pricer/internal/workers"
)

// GreeksFunc computes analytic sensitivities for a parameter set. Injected
// so the pricing service stays decoupled from the greeks implementation.
type GreeksFunc func(HestonParams) map[string]float64

// Service orchestrates one pricing request: admission control, Monte Carlo
// simulation, and the merge of analytic greeks into the outcome.
type Service struct {
	sim    *Simulator
	greeks GreeksFunc
	gate   *workers.SimulationGate
	log    zerolog.Logger
}

// NewService creates a pricing service.
func NewService(sim *Simulator, greeks GreeksFunc, gate *workers.SimulationGate, log zerolog.Logger) *Service {
	return &Service{
		sim:    sim,
		greeks: greeks,
		gate:   gate,
		log:    log.With().Str("service", "pricing").Logger(),
	}
}

// ComputePriceAndRisk validates the parameters, runs the simulation behind
// the admission gate, and merges the analytic greeks into the result.
//
// The context only governs admission: once a simulation starts it runs to
// completion, since a partially simulated estimate is not meaningful.
func (s *Service) ComputePriceAndRisk(ctx context.Context, params HestonParams) (SimulationResult, error) {
	if err := params.Validate(); err != nil {
		return SimulationResult{}, err
	}

	if err := s.gate.Acquire(ctx); err != nil {
		return SimulationResult{}, err
	}
	defer s.gate.Release()

	result := s.sim.Simulate(params)
	result.Greeks = s.greeks(params)

	s.log.Info().
		Int("num_paths", params.NumPaths).
		Int("time_steps", params.TimeSteps).
		Float64("price", result.Price).
		Float64("standard_error", result.StandardError).
		Float64("execution_ms", result.ExecutionTime).
		Msg("Simulation completed")

	return result, nil
}
