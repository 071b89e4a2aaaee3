package greeks

import (
	"math"

	"github.com/quantdesk/quantum-pricer/internal/modules/pricing"
	"github.com/quantdesk/quantum-pricer/pkg/formulas"
)

// minMaturity guards the d1/d2 terms against a zero or negative maturity so
// sensitivities stay finite right at expiry.
const minMaturity = 1e-4

// Estimate computes closed-form Black-Scholes sensitivities using
// sqrt(theta) — the model's long-run volatility — as a deterministic
// volatility proxy.
//
// Note this is an analytic approximation independent of any Monte Carlo
// price: the simulated price is deliberately not an input. A
// bump-and-reprice estimator against the simulation would be the
// alternative if path-consistent greeks are ever needed.
func Estimate(params pricing.HestonParams) map[string]float64 {
	s0 := params.S0
	k := params.K
	r := params.R

	vol := math.Sqrt(params.Theta)
	safeT := math.Max(minMaturity, params.T)
	sqrtT := math.Sqrt(safeT)

	d1 := (math.Log(s0/k) + (r+0.5*vol*vol)*safeT) / (vol * sqrtT)
	d2 := d1 - vol*sqrtT

	pdfD1 := formulas.NormPDF(d1)
	cdfD1 := formulas.NormCDF(d1)
	cdfD2 := formulas.NormCDF(d2)
	cdfMinusD2 := formulas.NormCDF(-d2)

	discount := formulas.DiscountFactor(r, safeT)

	// Gamma and vega are direction-agnostic.
	gamma := pdfD1 / (s0 * vol * sqrtT)
	vega := s0 * sqrtT * pdfD1 / 100 // per 1% vol move

	var delta, theta, rho float64
	if params.IsPut() {
		delta = cdfD1 - 1
		theta = (-(s0*vol*pdfD1)/(2*sqrtT) + r*k*discount*cdfMinusD2) / 365
		rho = -k * safeT * discount * cdfMinusD2 / 100
	} else {
		delta = cdfD1
		theta = (-(s0*vol*pdfD1)/(2*sqrtT) - r*k*discount*cdfD2) / 365
		rho = k * safeT * discount * cdfD2 / 100
	}

	return map[string]float64{
		"delta": delta,
		"gamma": gamma,
		"vega":  vega,
		"theta": theta, // per day
		"rho":   rho,   // per percentage point
	}
}
