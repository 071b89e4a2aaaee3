package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
)

func estimatorParams(numPaths, timeSteps int) pricing.HestonParams {
	return pricing.HestonParams{
		S0:         100,
		K:          100,
		R:          0.05,
		T:          1,
		V0:         0.04,
		Theta:      0.04,
		Kappa:      2,
		Xi:         0.3,
		Rho:        -0.7,
		NumPaths:   numPaths,
		TimeSteps:  timeSteps,
		OptionType: pricing.Call,
	}
}

func TestEstimate_ReferenceScenario(t *testing.T) {
	// N=10000 paths: epsilon = 0.01, 79 Grover iterations, ~126.6x speedup.
	profile := Estimate(estimatorParams(10000, 100))

	assert.InDelta(t, 0.01, profile.EstimatedQuantumError, 1e-12)
	assert.Equal(t, 79, profile.GroverIterations)
	assert.InDelta(t, 126.58, profile.TheoreticalSpeedup, 0.01)

	// precisionBits = ceil(10 + 6.64) = 17
	assert.Equal(t, 34, profile.QubitBreakdown.State)
	assert.Equal(t, 17*ancillaQubitMultiplier, profile.QubitBreakdown.Ancilla)
	assert.Equal(t, 9, profile.QubitBreakdown.QAE) // ceil(log2(79)) + 2
	assert.Equal(t, 34+17*ancillaQubitMultiplier+9, profile.EstimatedQubits)

	// Per step: 17 * (2*100 + 1*40 + 4*20 + 3*4) = 5644 T-gates
	assert.Equal(t, 564400, profile.OracleDepth)
	assert.Equal(t, 564400*79, profile.TGateCount)
	assert.Equal(t, 111469000, profile.CNOTCount)
	assert.Equal(t, profile.TGateCount, profile.CircuitDepth)
}

func TestEstimate_Deterministic(t *testing.T) {
	params := estimatorParams(50000, 250)

	first := Estimate(params)
	second := Estimate(params)

	assert.Equal(t, first, second)
}

func TestEstimate_SpeedupMonotonicInPaths(t *testing.T) {
	pathCounts := []int{1000, 10000, 100000, 1000000}

	var prev float64
	for _, n := range pathCounts {
		profile := Estimate(estimatorParams(n, 100))
		assert.Greater(t, profile.TheoreticalSpeedup, prev,
			"speedup must grow with N (N=%d)", n)
		prev = profile.TheoreticalSpeedup
	}
}

func TestEstimate_CountsNonNegative(t *testing.T) {
	tests := []struct {
		name      string
		numPaths  int
		timeSteps int
	}{
		{name: "tiny", numPaths: 1, timeSteps: 1},
		{name: "small", numPaths: 100, timeSteps: 10},
		{name: "large", numPaths: 1000000, timeSteps: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := Estimate(estimatorParams(tt.numPaths, tt.timeSteps))

			assert.GreaterOrEqual(t, profile.EstimatedQubits, 0)
			assert.GreaterOrEqual(t, profile.TGateCount, 0)
			assert.GreaterOrEqual(t, profile.CNOTCount, 0)
			assert.GreaterOrEqual(t, profile.OracleDepth, 0)
			assert.GreaterOrEqual(t, profile.GroverIterations, 0)
			assert.GreaterOrEqual(t, profile.PhysicalQubits, 0)
			assert.True(t, profile.EstimatedQuantumError > 0 && profile.EstimatedQuantumError <= 1)
		})
	}
}

func TestEstimate_CodeDistanceValid(t *testing.T) {
	for _, hw := range []pricing.HardwareProfile{pricing.Superconducting, pricing.IonTrap, pricing.NeutralAtom} {
		params := estimatorParams(10000, 100)
		params.Hardware = hw

		profile := Estimate(params)

		require.NotEqual(t, InfeasibleCodeDistance, profile.CodeDistance,
			"all shipped profiles are below threshold")
		assert.GreaterOrEqual(t, profile.CodeDistance, 3)
		assert.Equal(t, 1, profile.CodeDistance%2, "distance must be odd")
	}
}

func TestEstimate_PhysicalQubitIdentity(t *testing.T) {
	for _, n := range []int{1000, 10000, 250000} {
		profile := Estimate(estimatorParams(n, 100))
		d := profile.CodeDistance

		require.NotEqual(t, InfeasibleCodeDistance, d)
		assert.Equal(t, profile.EstimatedQubits*2*d*d, profile.PhysicalQubits)
	}
}

func TestCodeDistance_InfeasibleAboveThreshold(t *testing.T) {
	// 100 * 0.01 = 1: exactly at threshold, no finite distance helps.
	assert.Equal(t, InfeasibleCodeDistance, codeDistance(1000000, 0.01))
	assert.Equal(t, InfeasibleCodeDistance, codeDistance(1000000, 0.05))
}

func TestCodeDistance_FlooredAtThree(t *testing.T) {
	// Tiny circuits with excellent hardware still get at least distance 3.
	d := codeDistance(1, 1e-6)
	assert.GreaterOrEqual(t, d, 3)
	assert.Equal(t, 1, d%2)
}

func TestFormatWallClock_Buckets(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{seconds: 0.0005, want: "0.5 ms"},
		{seconds: 0.5, want: "500.0 ms"},
		{seconds: 30, want: "30.0 seconds"},
		{seconds: 120, want: "2.0 minutes"},
		{seconds: 7200, want: "2.0 hours"},
		{seconds: 172800, want: "2.0 days"},
		{seconds: 63072000, want: "2.0 years"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatWallClock(tt.seconds))
	}
}
