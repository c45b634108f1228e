// Package report evaluates an episode's trading performance and produces
// the evaluation summary for console output and YAML persistence.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-rl/internal/benchmark"
	"github.com/rxtech-lab/argo-rl/internal/logger"
	"github.com/rxtech-lab/argo-rl/internal/metrics"
	"github.com/rxtech-lab/argo-rl/internal/types"
	"github.com/rxtech-lab/argo-rl/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// Evaluator computes evaluation statistics from an episode history and the
// price series it was traded over.
type Evaluator struct {
	logger *logger.Logger
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(logger *logger.Logger) *Evaluator {
	return &Evaluator{
		logger: logger,
	}
}

// Evaluate builds the evaluation report for one episode.
func (e *Evaluator) Evaluate(symbol string, history *types.EpisodeHistory, closes []float64) (types.EvaluationStats, error) {
	if len(history.PortfolioValues) == 0 {
		return types.EvaluationStats{}, errors.New(errors.ErrCodeEmptyHistory, "episode history has no portfolio values")
	}

	bench, err := benchmark.BuyAndHold(closes, history.InitialPortfolioValue)
	if err != nil {
		return types.EvaluationStats{}, errors.Wrap(errors.ErrCodeEvaluationFailed, "failed to compute buy-and-hold benchmark", err)
	}

	meanReturn := 0.0
	if len(history.ReturnRates) > 0 {
		meanReturn = stat.Mean(history.ReturnRates, nil)
	}

	stats := types.EvaluationStats{
		ID:                  uuid.New().String(),
		Timestamp:           time.Now(),
		Symbol:              symbol,
		ModelType:           history.ModelType,
		PortfolioValue:      history.FinalPortfolioValue(),
		Balance:             history.Balance,
		NumHoldings:         len(history.Inventory),
		TotalReturn:         history.TotalReturn(),
		MeanDailyReturnRate: meanReturn,
		SharpeRatio:         metrics.SharpeRatio(history.ReturnRates),
		MaxDrawdown:         metrics.MaxDrawdown(history.PortfolioValues),
		BuyAndHoldReturn:    bench.TotalReturn,
	}

	e.logger.Info("Evaluated episode",
		zap.String("id", stats.ID),
		zap.String("symbol", symbol),
		zap.String("model_type", stats.ModelType),
		zap.Float64("total_return", stats.TotalReturn),
		zap.Float64("sharpe_ratio", stats.SharpeRatio),
		zap.Float64("max_drawdown", stats.MaxDrawdown),
	)

	return stats, nil
}

// WriteSummary writes the human-readable evaluation block.
func WriteSummary(w io.Writer, stats types.EvaluationStats) {
	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintf(w, "Portfolio Value:          $%.2f\n", stats.PortfolioValue)
	fmt.Fprintf(w, "Portfolio Balance:        $%.2f\n", stats.Balance)
	fmt.Fprintf(w, "Portfolio Stocks Number:  %d\n", stats.NumHoldings)
	fmt.Fprintf(w, "Total Return:             $%.2f\n", stats.TotalReturn)
	fmt.Fprintf(w, "Mean/Daily Return Rate:   %.3f%%\n", stats.MeanDailyReturnRate*100)
	fmt.Fprintf(w, "Sharpe Ratio:             %.3f\n", stats.SharpeRatio)
	fmt.Fprintf(w, "Maximum Drawdown:         %.3f%%\n", stats.MaxDrawdown*100)
	fmt.Fprintf(w, "Buy and Hold Return:      $%.2f\n", stats.BuyAndHoldReturn)
	fmt.Fprintln(w, "--------------------------------")
}

// PrintSummary writes the evaluation block to stdout.
func (e *Evaluator) PrintSummary(stats types.EvaluationStats) {
	WriteSummary(os.Stdout, stats)
}
