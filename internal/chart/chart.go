// Package chart renders the evaluation visualizations as PNG images:
// transaction history over the price series, portfolio performance against
// the buy-and-hold benchmark, and returns across episodes.
package chart

import (
	"fmt"
	"os"

	"github.com/rxtech-lab/argo-rl/internal/benchmark"
	"github.com/rxtech-lab/argo-rl/internal/types"
	"github.com/rxtech-lab/argo-rl/pkg/errors"
	charts "github.com/vicanso/go-charts/v2"
)

// splitNumber picks the x-axis label density for a series length.
func splitNumber(length int) int {
	if length > 30 {
		return 6
	}

	split := length / 3
	if split < 3 {
		split = 3
	}

	return split
}

// yRange returns the padded y-axis bounds for a set of series.
func yRange(series ...[]float64) (float64, float64) {
	first := true

	var minVal, maxVal float64

	for _, values := range series {
		for _, v := range values {
			if first {
				minVal, maxVal = v, v
				first = false

				continue
			}

			if v < minVal {
				minVal = v
			}

			if v > maxVal {
				maxVal = v
			}
		}
	}

	padding := (maxVal - minVal) * 0.05
	if padding == 0 {
		padding = maxVal * 0.05
	}

	return minVal - padding, maxVal + padding
}

// RenderTransactionHistory renders the close-price line annotated with the
// episode's buy/sell activity.
func RenderTransactionHistory(symbol string, dates []string, closes []float64, history *types.EpisodeHistory) ([]byte, error) {
	if len(closes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySeries, "cannot render transaction history without prices")
	}

	marks := types.MarksFromEpisode(history, closes)

	buys, sells := 0, 0

	for _, mark := range marks {
		if mark.Side == types.MarkSideBuy {
			buys++
		} else {
			sells++
		}
	}

	title := fmt.Sprintf("%s Total Return on %s: $%.2f", history.ModelType, symbol, history.TotalReturn())
	subtitle := fmt.Sprintf("buys: %d | sells: %d", buys, sells)

	yMin, yMax := yRange(closes)

	p, err := charts.LineRender(
		[][]float64{closes},
		charts.TitleTextOptionFunc(title+"\n"+subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        dates,
			SplitNumber: splitNumber(len(dates)),
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{symbol}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to render transaction history chart", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to generate chart bytes", err)
	}

	return buf, nil
}

// RenderPerformanceComparison renders the agent's portfolio values against
// the buy-and-hold benchmark over the same dates.
func RenderPerformanceComparison(symbol string, dates []string, history *types.EpisodeHistory, bench benchmark.Result, stats types.EvaluationStats) ([]byte, error) {
	if len(history.PortfolioValues) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyHistory, "cannot render performance comparison without portfolio values")
	}

	agentLabel := fmt.Sprintf("%s Total Return: $%.2f", history.ModelType, history.TotalReturn())
	benchLabel := fmt.Sprintf("%s Buy and Hold Total Return: $%.2f", symbol, bench.TotalReturn)

	title := fmt.Sprintf("%s vs. Buy and Hold", history.ModelType)
	subtitle := fmt.Sprintf("Sharpe: %.3f | MaxDD: %.3f%%", stats.SharpeRatio, stats.MaxDrawdown*100)

	yMin, yMax := yRange(history.PortfolioValues, bench.PortfolioValues)

	p, err := charts.LineRender(
		[][]float64{history.PortfolioValues, bench.PortfolioValues},
		charts.TitleTextOptionFunc(title+"\n"+subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        dates,
			SplitNumber: splitNumber(len(dates)),
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{agentLabel, benchLabel}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to render performance comparison chart", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to generate chart bytes", err)
	}

	return buf, nil
}

// RenderEpisodeReturns renders the final portfolio return of every episode
// of a training run as a single line.
func RenderEpisodeReturns(modelType string, returns []float64) ([]byte, error) {
	if len(returns) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySeries, "cannot render episode returns without data")
	}

	labels := make([]string, len(returns))
	for i := range returns {
		labels[i] = fmt.Sprintf("%d", i+1)
	}

	yMin, yMax := yRange(returns)

	p, err := charts.LineRender(
		[][]float64{returns},
		charts.TitleTextOptionFunc(fmt.Sprintf("%s Portfolio Returns Across Episodes", modelType)),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: splitNumber(len(labels)),
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to render episode returns chart", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to generate chart bytes", err)
	}

	return buf, nil
}

// RenderDailyReturns renders the per-day return rates of a single episode
// as a single line.
func RenderDailyReturns(modelType string, returnRates []float64) ([]byte, error) {
	if len(returnRates) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySeries, "cannot render daily returns without data")
	}

	labels := make([]string, len(returnRates))
	for i := range returnRates {
		labels[i] = fmt.Sprintf("%d", i+1)
	}

	yMin, yMax := yRange(returnRates)

	p, err := charts.LineRender(
		[][]float64{returnRates},
		charts.TitleTextOptionFunc(fmt.Sprintf("%s Daily Return Rates", modelType)),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: splitNumber(len(labels)),
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to render daily returns chart", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeChartRenderFailed, "failed to generate chart bytes", err)
	}

	return buf, nil
}

// WritePNG writes rendered chart bytes to path.
func WritePNG(path string, img []byte) error {
	if err := os.WriteFile(path, img, 0644); err != nil {
		return errors.Wrapf(errors.ErrCodeChartWriteFailed, err, "failed to write chart to %s", path)
	}

	return nil
}
