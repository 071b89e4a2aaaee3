package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// StandardError calculates the Monte Carlo standard error of the mean:
// sample standard deviation divided by sqrt(n).
func StandardError(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return StdDev(data) / math.Sqrt(float64(len(data)))
}

// DiscountFactor returns the continuous-compounding discount factor e^(-rT).
func DiscountFactor(r, t float64) float64 {
	return math.Exp(-r * t)
}
