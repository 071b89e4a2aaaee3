package quantum

// QubitBreakdown splits the logical qubit count into its sub-registers.
type QubitBreakdown struct {
	State   int `json:"state"`   // Asset + variance fixed-point registers
	Ancilla int `json:"ancilla"` // Arithmetic scratch
	QAE     int `json:"qae"`     // Amplitude-estimation control register
}

// ResourceProfile is the full fault-tolerant resource estimate for pricing
// one option via quantum amplitude estimation at the same statistical
// accuracy as the classical Monte Carlo run.
//
// Fully determined by the Heston parameters and hardware profile; all counts
// are non-negative and reproducible.
type ResourceProfile struct {
	EstimatedQubits       int            `json:"estimatedQubits"`
	CircuitDepth          int            `json:"circuitDepth"`
	TheoreticalSpeedup    float64        `json:"theoreticalSpeedup"`
	EstimatedQuantumError float64        `json:"estimatedQuantumError"`
	TGateCount            int            `json:"tGateCount"`
	CNOTCount             int            `json:"cnotCount"`
	OracleDepth           int            `json:"oracleDepth"`
	GroverIterations      int            `json:"groverIterations"`
	QubitBreakdown        QubitBreakdown `json:"qubitBreakdown"`
	CodeDistance          int            `json:"codeDistance"`
	PhysicalQubits        int            `json:"physicalQubits"`
	WallClockEstimate     string         `json:"wallClockEstimate"`
	Hardware              string         `json:"hardware"`
}

// InfeasibleCodeDistance is the sentinel distance returned when the selected
// hardware's physical error rate sits above the surface-code threshold: no
// finite distance reaches the required logical error rate.
const InfeasibleCodeDistance = 999
