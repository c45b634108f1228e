package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StateTestSuite struct {
	suite.Suite
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func (suite *StateTestSuite) TestSigmoid() {
	suite.Equal(0.5, Sigmoid(0))
	suite.InDelta(0.7310585786, Sigmoid(1), 1e-9)
	suite.InDelta(0.2689414214, Sigmoid(-1), 1e-9)
}

func (suite *StateTestSuite) TestSoftmaxSumsToOne() {
	probs := Softmax([]float64{1.0, 2.0, 3.0})
	suite.Len(probs, 3)

	sum := 0.0
	for _, p := range probs {
		sum += p
	}

	suite.InDelta(1.0, sum, 1e-12)
	suite.True(probs[2] > probs[1] && probs[1] > probs[0])
}

func (suite *StateTestSuite) TestPriceWindowStateLengthAndBounds() {
	prices := []float64{100, 103, 99, 101, 105, 104, 108}

	tests := []struct {
		name string
		t    int
		n    int
	}{
		{name: "Window fits inside history", t: 6, n: 3},
		{name: "Window touches the start", t: 3, n: 3},
		{name: "Window larger than history so far", t: 1, n: 5},
		{name: "First day", t: 0, n: 4},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			vec := PriceWindowState(prices, tc.t, tc.n)
			suite.Len(vec, tc.n, "State length mismatch")

			for i, v := range vec {
				suite.Greater(v, 0.0, "Feature %d not strictly above 0", i)
				suite.Less(v, 1.0, "Feature %d not strictly below 1", i)
			}
		})
	}
}

func (suite *StateTestSuite) TestPriceWindowStateValues() {
	prices := []float64{100, 101, 99}

	vec := PriceWindowState(prices, 2, 2)
	suite.Len(vec, 2)
	suite.InDelta(Sigmoid(1), vec[0], 1e-12)
	suite.InDelta(Sigmoid(-2), vec[1], 1e-12)
}

func (suite *StateTestSuite) TestPaddingMatchesExplicitlyPaddedSeries() {
	prices := []float64{100, 103, 99, 101, 105}
	n := 4
	t := 2

	// A series whose first n-t entries repeat prices[0] must encode
	// identically at the shifted index.
	padded := make([]float64, 0, len(prices)+n-t)
	for i := 0; i < n-t; i++ {
		padded = append(padded, prices[0])
	}
	padded = append(padded, prices...)

	suite.Equal(PriceWindowState(padded, n, n), PriceWindowState(prices, t, n))
}

func (suite *StateTestSuite) TestPaddedLeadingFeaturesAreNeutral() {
	prices := []float64{100, 103}

	vec := PriceWindowState(prices, 1, 4)
	suite.Len(vec, 4)

	// Synthesized flat entries produce zero differences, i.e. sigmoid(0).
	suite.Equal(0.5, vec[0])
	suite.Equal(0.5, vec[1])
	suite.Equal(0.5, vec[2])
	suite.InDelta(Sigmoid(3), vec[3], 1e-12)
}

func (suite *StateTestSuite) TestPortfolioState() {
	vec := PortfolioState(100, 50000, 20)
	suite.Len(vec, 3)
	suite.InDelta(math.Log(100), vec[0], 1e-12)
	suite.InDelta(math.Log(50000), vec[1], 1e-12)
	suite.InDelta(math.Log(20+holdingsEpsilon), vec[2], 1e-9)
}

func (suite *StateTestSuite) TestPortfolioStateZeroHoldings() {
	vec := PortfolioState(100, 50000, 0)

	// The epsilon keeps the holdings feature finite when nothing is held.
	suite.False(math.IsNaN(vec[2]))
	suite.False(math.IsInf(vec[2], -1))
	suite.InDelta(math.Log(holdingsEpsilon), vec[2], 1e-9)
}

func (suite *StateTestSuite) TestCombinedState() {
	prices := []float64{100, 103, 99, 101}

	vec := CombinedState(prices, 3, 3, 50000, 5)
	suite.Len(vec, 6)
	suite.Equal(PriceWindowState(prices, 3, 3), vec[:3])
	suite.Equal(PortfolioState(101, 50000, 5), vec[3:])
}
