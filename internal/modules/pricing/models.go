package pricing

import "fmt"

// OptionKind identifies the payoff direction of a European option.
type OptionKind string

const (
	Call OptionKind = "Call"
	Put  OptionKind = "Put"
)

// HardwareProfile selects the physical hardware constants used by the
// quantum resource estimator.
type HardwareProfile string

const (
	Superconducting HardwareProfile = "Superconducting"
	IonTrap         HardwareProfile = "IonTrap"
	NeutralAtom     HardwareProfile = "NeutralAtom"
)

// HestonParams holds the full parameter set for one pricing request.
// Immutable for the duration of a simulation call.
type HestonParams struct {
	S0         float64         `json:"S0"`       // Spot price
	K          float64         `json:"K"`        // Strike
	R          float64         `json:"r"`        // Risk-free rate
	T          float64         `json:"T"`        // Time to maturity (years)
	V0         float64         `json:"v0"`       // Initial variance
	Theta      float64         `json:"theta"`    // Long-run variance
	Kappa      float64         `json:"kappa"`    // Mean-reversion speed
	Xi         float64         `json:"xi"`       // Vol-of-vol
	Rho        float64         `json:"rho"`      // Brownian correlation
	NumPaths   int             `json:"numPaths"` // Monte Carlo paths
	TimeSteps  int             `json:"timeSteps"`
	OptionType OptionKind      `json:"optionType"`
	Hardware   HardwareProfile `json:"hardwareProfile,omitempty"`
}

// Validate rejects parameter sets the core engine is undefined on.
// The simulator and estimators assume validated input and perform no
// bounds checking of their own.
func (p HestonParams) Validate() error {
	if p.NumPaths <= 0 {
		return fmt.Errorf("numPaths must be greater than 0, got %d", p.NumPaths)
	}
	if p.TimeSteps <= 0 {
		return fmt.Errorf("timeSteps must be greater than 0, got %d", p.TimeSteps)
	}
	if p.T <= 0 {
		return fmt.Errorf("T must be greater than 0, got %g", p.T)
	}
	if p.S0 <= 0 {
		return fmt.Errorf("S0 must be greater than 0, got %g", p.S0)
	}
	if p.K <= 0 {
		return fmt.Errorf("K must be greater than 0, got %g", p.K)
	}
	if p.Rho < -1 || p.Rho > 1 {
		return fmt.Errorf("rho must be in [-1, 1], got %g", p.Rho)
	}
	if p.OptionType != Call && p.OptionType != Put {
		return fmt.Errorf("optionType must be Call or Put, got %q", p.OptionType)
	}
	return nil
}

// IsPut reports whether the payoff is a put.
func (p HestonParams) IsPut() bool {
	return p.OptionType == Put
}

// PathPoint is one visualization sample: the state of one of the recorded
// paths at one time step.
type PathPoint struct {
	Time   float64 `json:"time"`
	Value  float64 `json:"value"`
	Vol    float64 `json:"vol"` // Variance, floored at zero
	PathID int     `json:"pathId"`
}

// SimulationResult is the outcome of one simulator invocation.
// Owned by the caller; the simulator keeps no reference to it.
type SimulationResult struct {
	Price         float64            `json:"price"`
	StandardError float64            `json:"standardError"`
	Paths         []PathPoint        `json:"paths"`
	FinalPrices   []float64          `json:"finalPrices"`
	Greeks        map[string]float64 `json:"greeks"`
	ExecutionTime float64            `json:"executionTime"` // milliseconds
}
