package pricing

import (
	"math"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/quantdesk/quantum-pricer/pkg/formulas"
)

// maxVisualizationPaths caps how many paths are recorded step-by-step for
// charting. The remaining paths only contribute their terminal price.
const maxVisualizationPaths = 50

// Simulator runs Monte Carlo simulations of the Heston model using an
// Euler-Maruyama discretization with full truncation of the variance
// process.
//
// Randomness is explicit: every path derives its own PCG source from the
// simulator's base seed and the path index, so a fixed seed produces
// bit-identical results regardless of how paths are scheduled across
// goroutines.
type Simulator struct {
	seed    uint64
	workers int
}

// NewSimulator creates a simulator with the given base seed.
func NewSimulator(seed uint64) *Simulator {
	return &Simulator{
		seed:    seed,
		workers: runtime.NumCPU(),
	}
}

// Simulate prices a European option under Heston dynamics.
//
// The caller must validate params first; the simulator is undefined on
// non-positive path counts, step counts, or maturities.
func (s *Simulator) Simulate(params HestonParams) SimulationResult {
	start := time.Now()

	numPaths := params.NumPaths
	timeSteps := params.TimeSteps
	dt := params.T / float64(timeSteps)
	sqrtDt := math.Sqrt(dt)

	vizCount := numPaths
	if vizCount > maxVisualizationPaths {
		vizCount = maxVisualizationPaths
	}

	// Visualization samples are indexed step*vizCount + pathID, which makes
	// the required ordering (ascending step, then ascending path id) hold by
	// construction and lets paths write their cells without synchronization.
	vizPaths := make([]PathPoint, (timeSteps+1)*vizCount)
	for i := 0; i < vizCount; i++ {
		vizPaths[i] = PathPoint{Time: 0, Value: params.S0, Vol: params.V0, PathID: i}
	}

	finalPrices := make([]float64, numPaths)

	// Steps are sequential within a path (step t depends on t-1), but paths
	// are independent. Shard contiguous path ranges across workers.
	workers := s.workers
	if workers > numPaths {
		workers = numPaths
	}
	chunk := (numPaths + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > numPaths {
			hi = numPaths
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for pathID := lo; pathID < hi; pathID++ {
				finalPrices[pathID] = s.simulatePath(params, pathID, dt, sqrtDt, vizCount, vizPaths)
			}
		}(lo, hi)
	}
	wg.Wait()

	payoffs := make([]float64, numPaths)
	for i, price := range finalPrices {
		if params.IsPut() {
			payoffs[i] = math.Max(0, params.K-price)
		} else {
			payoffs[i] = math.Max(0, price-params.K)
		}
	}

	discount := formulas.DiscountFactor(params.R, params.T)
	price := discount * formulas.Mean(payoffs)
	stdErr := discount * formulas.StandardError(payoffs)

	return SimulationResult{
		Price:         price,
		StandardError: stdErr,
		Paths:         vizPaths,
		FinalPrices:   finalPrices,
		Greeks:        map[string]float64{},
		ExecutionTime: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}

// simulatePath advances one path through all time steps and returns its
// terminal asset price. Paths below vizCount also record every intermediate
// state into vizPaths.
func (s *Simulator) simulatePath(params HestonParams, pathID int, dt, sqrtDt float64, vizCount int, vizPaths []PathPoint) float64 {
	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewSource(s.seed + uint64(pathID)),
	}

	// Log-asset state avoids repeated exponentiation and keeps the asset
	// process positive by construction.
	x := math.Log(params.S0)
	v := params.V0

	rhoComp := math.Sqrt(1 - params.Rho*params.Rho)

	for step := 1; step <= params.TimeSteps; step++ {
		z1 := normal.Rand()
		z2 := normal.Rand()

		// Cholesky factor of the 2x2 correlation matrix.
		dw1 := z1
		dw2 := params.Rho*z1 + rhoComp*z2

		// Full truncation: the variance process may diffuse below zero, but
		// the drift and diffusion terms only ever see its non-negative part.
		vFloor := math.Max(0, v)
		sqrtV := math.Sqrt(vFloor)

		v = v + params.Kappa*(params.Theta-vFloor)*dt + params.Xi*sqrtV*sqrtDt*dw2
		x = x + (params.R-0.5*vFloor)*dt + sqrtV*sqrtDt*dw1

		if pathID < vizCount {
			vizPaths[step*vizCount+pathID] = PathPoint{
				Time:   float64(step) * dt,
				Value:  math.Exp(x),
				Vol:    math.Max(0, v),
				PathID: pathID,
			}
		}
	}

	return math.Exp(x)
}
