package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

type StatisticsTestSuite struct {
	suite.Suite
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (suite *StatisticsTestSuite) TestWriteEvaluationStats() {
	stats := []EvaluationStats{
		{
			ID:                  "run-1",
			Timestamp:           time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
			Symbol:              "AAPL",
			ModelType:           "DQN",
			PortfolioValue:      52500,
			Balance:             1200,
			NumHoldings:         300,
			TotalReturn:         2500,
			MeanDailyReturnRate: 0.0004,
			SharpeRatio:         0.8,
			MaxDrawdown:         -0.12,
			BuyAndHoldReturn:    1800,
		},
	}

	path := filepath.Join(suite.T().TempDir(), "stats.yaml")
	err := WriteEvaluationStats(path, stats)
	suite.NoError(err)

	data, err := os.ReadFile(path)
	suite.NoError(err)

	var loaded []EvaluationStats
	err = yaml.Unmarshal(data, &loaded)
	suite.NoError(err)
	suite.Len(loaded, 1)
	suite.Equal(stats[0].Symbol, loaded[0].Symbol)
	suite.Equal(stats[0].SharpeRatio, loaded[0].SharpeRatio)
	suite.Equal(stats[0].MaxDrawdown, loaded[0].MaxDrawdown)
}

func (suite *StatisticsTestSuite) TestWriteEvaluationStatsBadPath() {
	err := WriteEvaluationStats(filepath.Join(suite.T().TempDir(), "no-such-dir", "stats.yaml"), nil)
	suite.Error(err)
}
