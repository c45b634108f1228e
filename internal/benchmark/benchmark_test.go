package benchmark

import (
	"testing"

	"github.com/rxtech-lab/argo-rl/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type BenchmarkTestSuite struct {
	suite.Suite
}

func TestBenchmarkSuite(t *testing.T) {
	suite.Run(t, new(BenchmarkTestSuite))
}

func (suite *BenchmarkTestSuite) TestBuyAndHold() {
	closes := []float64{100, 110, 90, 120}

	result, err := BuyAndHold(closes, 1050)
	suite.NoError(err)

	suite.Equal(10.0, result.NumHoldings)
	suite.Equal(50.0, result.CashLeft)
	suite.Equal([]float64{1050, 1150, 950, 1250}, result.PortfolioValues)
	suite.Equal(200.0, result.TotalReturn)
}

func (suite *BenchmarkTestSuite) TestBuyAndHoldInitialValueBelowFirstPrice() {
	closes := []float64{100, 200}

	result, err := BuyAndHold(closes, 50)
	suite.NoError(err)

	// Nothing affordable: the whole value stays in cash.
	suite.Equal(0.0, result.NumHoldings)
	suite.Equal(50.0, result.CashLeft)
	suite.Equal([]float64{50, 50}, result.PortfolioValues)
	suite.Equal(0.0, result.TotalReturn)
}

func (suite *BenchmarkTestSuite) TestBuyAndHoldEmptySeries() {
	_, err := BuyAndHold(nil, 1000)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeEmptySeries))
}

func (suite *BenchmarkTestSuite) TestBuyAndHoldInvalidFirstPrice() {
	_, err := BuyAndHold([]float64{0, 100}, 1000)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMalformedData))
}
