package formulas

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var unitNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormPDF evaluates the standard normal density at x.
func NormPDF(x float64) float64 {
	return unitNormal.Prob(x)
}

// NormCDF evaluates the standard normal cumulative distribution at x.
func NormCDF(x float64) float64 {
	return unitNormal.CDF(x)
}
