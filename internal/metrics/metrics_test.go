package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/stat"
)

type MetricsTestSuite struct {
	suite.Suite
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}

func (suite *MetricsTestSuite) TestDailyTreasuryBondReturnRate() {
	rate := DailyTreasuryBondReturnRate()
	suite.InDelta(math.Pow(1.0275, 1.0/365)-1, rate, 1e-15)
	suite.Greater(rate, 0.0)
	suite.Less(rate, 0.0001)
}

func (suite *MetricsTestSuite) TestSharpeRatioZeroVariance() {
	// All excess returns equal: standard deviation is exactly zero.
	suite.Equal(0.0, SharpeRatio([]float64{0.001, 0.001, 0.001}))
}

func (suite *MetricsTestSuite) TestSharpeRatioEmptySeries() {
	// An episode with a single portfolio value has no return rates yet;
	// the ratio must be 0, not NaN.
	suite.Equal(0.0, SharpeRatio(nil))
	suite.Equal(0.0, SharpeRatio([]float64{}))
}

func (suite *MetricsTestSuite) TestSharpeRatioZeroMean() {
	// Excess returns come out as exactly {riskFree, -riskFree}: the mean is
	// exactly zero while the variance is not, hitting the zero-mean guard.
	riskFree := DailyTreasuryBondReturnRate()
	returns := []float64{2 * riskFree, 0}
	suite.Equal(0.0, SharpeRatio(returns))
}

func (suite *MetricsTestSuite) TestSharpeRatioTypicalSeries() {
	riskFree := DailyTreasuryBondReturnRate()
	returns := []float64{0.01, -0.005, 0.007, 0.002, -0.001}

	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - riskFree
	}
	expected := stat.Mean(excess, nil) / stat.PopStdDev(excess, nil)

	suite.InDelta(expected, SharpeRatio(returns), 1e-12)
	suite.NotEqual(0.0, SharpeRatio(returns))
}

func (suite *MetricsTestSuite) TestMaxDrawdown() {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "Monotonically increasing",
			values:   []float64{100, 110, 120, 130},
			expected: 0,
		},
		{
			name:     "Peak then trough",
			values:   []float64{100, 150, 50},
			expected: (50.0 - 150.0) / 150.0,
		},
		{
			name:     "Recovery after the trough keeps the worst drop",
			values:   []float64{100, 150, 75, 140, 90},
			expected: (75.0 - 150.0) / 150.0,
		},
		{
			name:     "Flat series",
			values:   []float64{100, 100, 100},
			expected: 0,
		},
		{
			name:     "Single value",
			values:   []float64{100},
			expected: 0,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.InDelta(tc.expected, MaxDrawdown(tc.values), 1e-12, "Drawdown mismatch")
		})
	}
}

func (suite *MetricsTestSuite) TestMaxDrawdownUsesFirstPeakBeforeTrough() {
	// Two equal peaks before the trough: the first one is the reference,
	// matching argmax semantics.
	values := []float64{100, 150, 120, 150, 60}
	suite.InDelta((60.0-150.0)/150.0, MaxDrawdown(values), 1e-12)
}
