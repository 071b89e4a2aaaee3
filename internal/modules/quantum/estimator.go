package quantum

import (
	"fmt"
	"math"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
)

// Per-arithmetic-primitive T-gate costs, each scaled by the fixed-point
// register width in bits.
const (
	tCostMultiply = 20
	tCostAdd      = 4
	tCostSqrt     = 40
	tCostGaussian = 100
)

// One Euler step of the Heston recurrence: two Gaussian draws, one square
// root, four multiplications, three additions.
const (
	gaussiansPerStep = 2
	sqrtsPerStep     = 1
	multsPerStep     = 4
	addsPerStep      = 3
)

// ancillaQubitMultiplier sizes the arithmetic scratch register as a multiple
// of the fixed-point precision. Earlier revisions of this cost model used 4;
// the current calibration is 6.
const ancillaQubitMultiplier = 6

// algorithmFailureBudget is the total algorithm failure probability
// amortized across all T-gates when deriving the per-gate logical error
// budget.
const algorithmFailureBudget = 0.01

// Estimate converts a classical Monte Carlo workload into the logical and
// physical resources a fault-tolerant amplitude-estimation algorithm would
// need to reach the same statistical error epsilon = 1/sqrt(N).
//
// The estimate is a pure function of N, M, and the hardware profile. It
// never fails: hardware below the fault-tolerance threshold is reported via
// the InfeasibleCodeDistance sentinel rather than an error.
func Estimate(params pricing.HestonParams) ResourceProfile {
	targetError := 1 / math.Sqrt(float64(params.NumPaths))

	// Fixed-point register width sufficient for Heston arithmetic at the
	// target accuracy.
	precisionBits := int(math.Ceil(10 + math.Max(0, -math.Log2(targetError))))

	groverIterations := int(math.Ceil((math.Pi / 4) / targetError))
	speedup := float64(params.NumPaths) / float64(groverIterations)

	tGatesPerStep := precisionBits * (gaussiansPerStep*tCostGaussian +
		sqrtsPerStep*tCostSqrt +
		multsPerStep*tCostMultiply +
		addsPerStep*tCostAdd)
	oracleDepth := params.TimeSteps * tGatesPerStep

	totalTGates := oracleDepth * groverIterations
	totalCNOTs := int(math.Ceil(float64(totalTGates) * 2.5))

	stateQubits := 2 * precisionBits // asset + variance
	ancillaQubits := ancillaQubitMultiplier * precisionBits
	qaeQubits := int(math.Ceil(math.Log2(float64(groverIterations)))) + 2
	totalLogicalQubits := stateQubits + ancillaQubits + qaeQubits

	spec := SpecFor(params.Hardware)
	distance := codeDistance(totalTGates, spec.PhysicalErrorRate)

	physicalQubits := 0
	wallClock := "n/a (hardware below threshold)"
	if distance != InfeasibleCodeDistance {
		// Surface-code overhead: 2d^2 physical qubits per logical qubit.
		physicalQubits = totalLogicalQubits * 2 * distance * distance

		// Sequential magic-state injection: one T-gate per d cycles.
		seconds := float64(totalTGates) * float64(distance) * spec.CycleTime
		wallClock = formatWallClock(seconds)
	}

	return ResourceProfile{
		EstimatedQubits:       totalLogicalQubits,
		CircuitDepth:          totalTGates,
		TheoreticalSpeedup:    speedup,
		EstimatedQuantumError: targetError,
		TGateCount:            totalTGates,
		CNOTCount:             totalCNOTs,
		OracleDepth:           oracleDepth,
		GroverIterations:      groverIterations,
		QubitBreakdown: QubitBreakdown{
			State:   stateQubits,
			Ancilla: ancillaQubits,
			QAE:     qaeQubits,
		},
		CodeDistance:      distance,
		PhysicalQubits:    physicalQubits,
		WallClockEstimate: wallClock,
		Hardware:          spec.Name,
	}
}

// codeDistance solves the surface-code threshold relation
// P_logical ~= 0.1 * (100 * P_physical)^((d+1)/2) for the smallest odd
// distance d >= 3 whose logical error rate fits the per-gate budget.
func codeDistance(totalTGates int, physicalErrorRate float64) int {
	errorRatio := 100 * physicalErrorRate
	if errorRatio >= 1 {
		// Above threshold: increasing d makes the logical error worse, not
		// better. No finite distance works.
		return InfeasibleCodeDistance
	}

	requiredLogicalError := algorithmFailureBudget / math.Max(1, float64(totalTGates))

	d := int(math.Ceil(2*math.Log(requiredLogicalError/0.1)/math.Log(errorRatio) - 1))
	if d%2 == 0 {
		d++
	}
	if d < 3 {
		d = 3
	}
	return d
}

// formatWallClock buckets a duration in seconds into a human-readable
// string with one decimal place.
func formatWallClock(seconds float64) string {
	switch {
	case seconds < 1:
		return fmt.Sprintf("%.1f ms", seconds*1000)
	case seconds < 60:
		return fmt.Sprintf("%.1f seconds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1f minutes", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%.1f hours", seconds/3600)
	case seconds < 31536000:
		return fmt.Sprintf("%.1f days", seconds/86400)
	default:
		return fmt.Sprintf("%.1f years", seconds/31536000)
	}
}
