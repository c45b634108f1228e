// Package state encodes windows of historical close prices (and optional
// portfolio scalars) into fixed-length feature vectors for an external
// decision-making agent. Every function is a stateless, deterministic
// transformation over the caller's series.
//
// Preconditions are documented rather than checked: the price series must be
// non-empty, t must be a valid index into it, and n must be non-negative.
package state

import "math"

// holdingsEpsilon guards the holdings logarithm when the agent holds
// nothing; log(0 + 1e-6) stays finite.
const holdingsEpsilon = 1e-6

// Sigmoid is the logistic squashing function 1/(1+e^-x). It bounds every
// price-difference feature to (0,1) with the densest sensitivity around
// zero-change days.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Softmax maps a vector to a probability distribution: e^x_i / sum(e^x_j).
// Exposed for agents that turn action values into action probabilities.
func Softmax(xs []float64) []float64 {
	out := make([]float64, len(xs))

	sum := 0.0
	for i, x := range xs {
		out[i] = math.Exp(x)
		sum += out[i]
	}

	for i := range out {
		out[i] /= sum
	}

	return out
}

// window returns the n+1 prices covering [t-n, t] inclusive. When t-n < 0
// the missing leading entries are synthesized by repeating prices[0], so the
// encoder never errors near the start of history and the state length stays
// fixed at n.
func window(prices []float64, t, n int) []float64 {
	start := t - n
	period := make([]float64, 0, n+1)

	if start < 0 {
		for i := 0; i < -start; i++ {
			period = append(period, prices[0])
		}

		period = append(period, prices[:t+1]...)
	} else {
		period = append(period, prices[start:t+1]...)
	}

	return period
}

// PriceWindowState returns the state of the past n days at index t: the n
// adjacent daily price differences of the window, each squashed by Sigmoid.
// Note that the state has length n while the underlying period has length n+1.
func PriceWindowState(prices []float64, t, n int) []float64 {
	period := window(prices, t, n)

	diffs := make([]float64, n)
	for i := 0; i < n; i++ {
		diffs[i] = Sigmoid(period[i+1] - period[i])
	}

	return diffs
}

// PortfolioState returns the three portfolio features: log price, log
// balance and log holdings. The holdings count is offset by a small epsilon
// so an empty position does not produce a domain error.
func PortfolioState(price float64, balance float64, holdings float64) []float64 {
	return []float64{
		math.Log(price),
		math.Log(balance),
		math.Log(holdings + holdingsEpsilon),
	}
}

// CombinedState returns the n price-difference features followed by the
// three portfolio features for the current price prices[t]. Length n+3.
func CombinedState(prices []float64, t, n int, balance float64, holdings float64) []float64 {
	combined := PriceWindowState(prices, t, n)
	combined = append(combined, PortfolioState(prices[t], balance, holdings)...)

	return combined
}
