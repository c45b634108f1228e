// Package metrics computes risk/performance metrics over return and
// portfolio-value series. All functions are pure; empty series evaluate to
// a zero metric rather than an error.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// annualTreasuryRate approximates the annual U.S. Treasury bond return rate
// used as the risk-free rate.
const annualTreasuryRate = 2.75 / 100

// DailyTreasuryBondReturnRate compounds the annual Treasury bond return
// rate down to a daily rate: (1+r)^(1/365) - 1.
func DailyTreasuryBondReturnRate() float64 {
	return math.Pow(1+annualTreasuryRate, 1.0/365) - 1
}

// SharpeRatio computes the ex-ante Sharpe ratio of a daily return series
// against the daily Treasury bond return rate: mean of the excess returns
// over their population standard deviation.
//
// Degenerate policy: if the standard deviation is exactly zero, or the mean
// of the excess returns is exactly zero, the ratio is 0. The tolerance-free
// equality is intentional and must not be softened with an epsilon check,
// as that would change observable outputs on boundary inputs.
func SharpeRatio(returnRates []float64) float64 {
	// An empty series would yield NaN through a 0/0 mean.
	if len(returnRates) == 0 {
		return 0
	}

	riskFree := DailyTreasuryBondReturnRate()

	excess := make([]float64, len(returnRates))
	for i, r := range returnRates {
		excess[i] = r - riskFree
	}

	numerator := stat.Mean(excess, nil)
	denominator := stat.PopStdDev(excess, nil)

	if denominator == 0 || numerator == 0 {
		return 0
	}

	return numerator / denominator
}

// MaxDrawdown computes the maximum peak-to-trough decline of a
// portfolio-value series as a fraction of the peak. The trough is the first
// index maximizing the gap between the running maximum and the value; the
// peak is the first maximum before the trough. Returns 0 when the running
// maximum never exceeds a later value (trough index 0), otherwise a value
// that is typically negative or zero.
func MaxDrawdown(portfolioValues []float64) float64 {
	trough := 0
	maxDrop := math.Inf(-1)
	runningMax := math.Inf(-1)

	for i, v := range portfolioValues {
		if v > runningMax {
			runningMax = v
		}

		if drop := runningMax - v; drop > maxDrop {
			maxDrop = drop
			trough = i
		}
	}

	if trough == 0 {
		return 0
	}

	peak := 0
	for i := 1; i < trough; i++ {
		if portfolioValues[i] > portfolioValues[peak] {
			peak = i
		}
	}

	return (portfolioValues[trough] - portfolioValues[peak]) / portfolioValues[peak]
}
