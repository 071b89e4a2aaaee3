package quantum

import "github.com/quantdesk/quantum-pricer/internal/modules/pricing"

// HardwareSpec carries the physical-layer constants for one hardware
// platform: how fast gates run, how often they fail, and how long one
// surface-code error-correction cycle takes.
type HardwareSpec struct {
	Name              string
	GateTime          float64 // seconds per physical gate
	PhysicalErrorRate float64 // per-gate error probability
	CycleTime         float64 // seconds per surface-code cycle
}

// hardwareSpecs maps each profile tag to its constants. The trade-offs are
// the standard ones: superconducting qubits gate fast but noisy, trapped
// ions gate slowly but cleanly, neutral atoms sit in between on speed with
// the highest error rate of the three.
var hardwareSpecs = map[pricing.HardwareProfile]HardwareSpec{
	pricing.Superconducting: {
		Name:              "Superconducting",
		GateTime:          50e-9,
		PhysicalErrorRate: 1e-3,
		CycleTime:         1e-6,
	},
	pricing.IonTrap: {
		Name:              "IonTrap",
		GateTime:          10e-6,
		PhysicalErrorRate: 1e-4,
		CycleTime:         100e-6,
	},
	pricing.NeutralAtom: {
		Name:              "NeutralAtom",
		GateTime:          1e-6,
		PhysicalErrorRate: 5e-3,
		CycleTime:         10e-6,
	},
}

// SpecFor returns the hardware constants for a profile tag, defaulting to
// superconducting for the zero value or an unknown tag.
func SpecFor(profile pricing.HardwareProfile) HardwareSpec {
	if spec, ok := hardwareSpecs[profile]; ok {
		return spec
	}
	return hardwareSpecs[pricing.Superconducting]
}
