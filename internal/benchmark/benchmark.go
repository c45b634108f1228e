// Package benchmark computes the buy-and-hold comparison strategy: buy as
// many shares as the initial portfolio value affords on the first day and
// hold them for the whole period.
package benchmark

import (
	"math"

	"github.com/rxtech-lab/argo-rl/pkg/errors"
)

// Result holds the buy-and-hold portfolio over a price series.
type Result struct {
	// NumHoldings is the whole number of shares bought on the first day.
	NumHoldings float64
	// CashLeft is the remainder of the initial value after the purchase.
	CashLeft float64
	// PortfolioValues is the benchmark portfolio valuation at every day.
	PortfolioValues []float64
	// TotalReturn is the final portfolio value minus the initial value.
	TotalReturn float64
}

// BuyAndHold simulates buying floor(initialValue / closes[0]) shares at the
// first close and holding them, keeping the remainder as cash.
func BuyAndHold(closes []float64, initialValue float64) (Result, error) {
	if len(closes) == 0 {
		return Result{}, errors.New(errors.ErrCodeEmptySeries, "cannot compute buy-and-hold on an empty price series")
	}

	if closes[0] <= 0 {
		return Result{}, errors.Newf(errors.ErrCodeMalformedData, "invalid first close price: %f", closes[0])
	}

	numHoldings := math.Floor(initialValue / closes[0])
	cashLeft := initialValue - numHoldings*closes[0]

	values := make([]float64, len(closes))
	for i, close := range closes {
		values[i] = close*numHoldings + cashLeft
	}

	return Result{
		NumHoldings:     numHoldings,
		CashLeft:        cashLeft,
		PortfolioValues: values,
		TotalReturn:     values[len(values)-1] - initialValue,
	}, nil
}
