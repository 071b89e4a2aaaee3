package greeks

import (
	"math"
	"sort"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
)

// TermPoint is one maturity slice of the greeks term structure.
type TermPoint struct {
	Time  float64 `json:"time"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"` // scaled x1000 for chart readability
	Vega  float64 `json:"vega"`
}

// TermStructure re-evaluates the analytic greeks across steps+1 maturities
// interpolated linearly from params.T down to 0.01 years.
//
// Non-positive maturities are skipped, which can leave the generation order
// non-monotonic, so the result is sorted ascending by time before returning.
func TermStructure(params pricing.HestonParams, steps int) []TermPoint {
	if steps <= 0 {
		steps = 20
	}

	points := make([]TermPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := params.T - (float64(i)/float64(steps))*(params.T-0.01)
		if t <= 0 {
			continue
		}

		sliced := params
		sliced.T = t
		g := Estimate(sliced)

		points = append(points, TermPoint{
			Time:  math.Round(t*100) / 100,
			Delta: g["delta"],
			Gamma: g["gamma"] * 1000,
			Vega:  g["vega"],
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Time < points[j].Time
	})

	return points
}
