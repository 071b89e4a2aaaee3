package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams() HestonParams {
	return HestonParams{
		S0:         100,
		K:          100,
		R:          0.05,
		T:          1,
		V0:         0.04,
		Theta:      0.04,
		Kappa:      2,
		Xi:         0.3,
		Rho:        -0.7,
		NumPaths:   10000,
		TimeSteps:  50,
		OptionType: Call,
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	params := baseParams()
	params.NumPaths = 2000

	first := NewSimulator(42).Simulate(params)
	second := NewSimulator(42).Simulate(params)

	assert.Equal(t, first.Price, second.Price, "same seed must give identical price")
	assert.Equal(t, first.StandardError, second.StandardError)
	assert.Equal(t, first.FinalPrices, second.FinalPrices)
}

func TestSimulate_NonNegative(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*HestonParams)
	}{
		{name: "atm call", modify: func(p *HestonParams) {}},
		{name: "atm put", modify: func(p *HestonParams) { p.OptionType = Put }},
		{name: "deep otm call", modify: func(p *HestonParams) { p.K = 500 }},
		{name: "deep itm put", modify: func(p *HestonParams) { p.K = 500; p.OptionType = Put }},
		{name: "high vol of vol", modify: func(p *HestonParams) { p.Xi = 1.5 }},
		{name: "zero initial variance", modify: func(p *HestonParams) { p.V0 = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams()
			params.NumPaths = 2000
			tt.modify(&params)

			result := NewSimulator(7).Simulate(params)

			assert.GreaterOrEqual(t, result.Price, 0.0)
			assert.GreaterOrEqual(t, result.StandardError, 0.0)
		})
	}
}

func TestSimulate_ErrorShrinksWithPaths(t *testing.T) {
	pathCounts := []int{1000, 10000, 100000}

	var errors []float64
	for _, n := range pathCounts {
		params := baseParams()
		params.NumPaths = n
		params.TimeSteps = 20

		result := NewSimulator(99).Simulate(params)
		errors = append(errors, result.StandardError)
	}

	for i := 1; i < len(errors); i++ {
		assert.Less(t, errors[i], errors[i-1],
			"standard error must decrease as path count grows: %v", errors)
	}
}

func TestSimulate_VisualizationLength(t *testing.T) {
	tests := []struct {
		name     string
		numPaths int
		steps    int
		want     int
	}{
		{name: "fewer paths than cap", numPaths: 10, steps: 25, want: 26 * 10},
		{name: "exactly at cap", numPaths: 50, steps: 10, want: 11 * 50},
		{name: "more paths than cap", numPaths: 200, steps: 40, want: 41 * 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams()
			params.NumPaths = tt.numPaths
			params.TimeSteps = tt.steps

			result := NewSimulator(1).Simulate(params)
			assert.Len(t, result.Paths, tt.want)
		})
	}
}

func TestSimulate_VisualizationOrdering(t *testing.T) {
	params := baseParams()
	params.NumPaths = 120
	params.TimeSteps = 8

	result := NewSimulator(5).Simulate(params)

	vizCount := 50
	for i, point := range result.Paths {
		wantStep := i / vizCount
		wantPath := i % vizCount

		assert.Equal(t, wantPath, point.PathID)
		assert.InDelta(t, float64(wantStep)*params.T/float64(params.TimeSteps), point.Time, 1e-12)

		if wantStep == 0 {
			assert.Equal(t, params.S0, point.Value)
			assert.Equal(t, params.V0, point.Vol)
		}
		assert.GreaterOrEqual(t, point.Vol, 0.0, "recorded variance is floored at zero")
	}
}

func TestSimulate_FinalPricesLength(t *testing.T) {
	params := baseParams()
	params.NumPaths = 3333

	result := NewSimulator(3).Simulate(params)
	assert.Len(t, result.FinalPrices, 3333)
	for _, price := range result.FinalPrices {
		assert.Greater(t, price, 0.0, "exp(log-asset) is strictly positive")
	}
}

// Scenario: ATM one-year call with long-run vol 20%. The Monte Carlo price
// should land near the Black-Scholes benchmark (~10.45) and well inside the
// 8-12 band, with a tight standard error at 100k paths.
func TestSimulate_BenchmarkScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k-path scenario in short mode")
	}

	params := baseParams()
	params.NumPaths = 100000
	params.TimeSteps = 100

	result := NewSimulator(2024).Simulate(params)

	require.Greater(t, result.Price, 8.0)
	require.Less(t, result.Price, 12.0)
	require.Less(t, result.StandardError, 0.1)
}
