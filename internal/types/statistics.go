package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EvaluationStats is the performance report of one evaluation episode.
type EvaluationStats struct {
	// ID is the unique identifier for this evaluation run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this evaluation was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Symbol of the traded stock.
	Symbol string `yaml:"symbol" json:"symbol"`
	// ModelType is the agent that produced the episode.
	ModelType string `yaml:"model_type" json:"model_type"`
	// PortfolioValue is the portfolio value at the end of the episode.
	PortfolioValue float64 `yaml:"portfolio_value" json:"portfolio_value"`
	// Balance is the cash balance at the end of the episode.
	Balance float64 `yaml:"balance" json:"balance"`
	// NumHoldings is the number of shares still held at the end of the episode.
	NumHoldings int `yaml:"num_holdings" json:"num_holdings"`
	// TotalReturn is the absolute gain over the initial portfolio value.
	TotalReturn float64 `yaml:"total_return" json:"total_return"`
	// MeanDailyReturnRate is the mean of the episode's daily return rates.
	MeanDailyReturnRate float64 `yaml:"mean_daily_return_rate" json:"mean_daily_return_rate"`
	// SharpeRatio is the ex-ante Sharpe ratio against the daily Treasury
	// bond return rate.
	SharpeRatio float64 `yaml:"sharpe_ratio" json:"sharpe_ratio"`
	// MaxDrawdown is the maximum peak-to-trough decline of the portfolio
	// value, as a fraction (typically negative or zero).
	MaxDrawdown float64 `yaml:"max_drawdown" json:"max_drawdown"`
	// BuyAndHoldReturn is the gain of the buy-and-hold benchmark over the
	// same period and initial value.
	BuyAndHoldReturn float64 `yaml:"buy_and_hold_return" json:"buy_and_hold_return"`
}

// WriteEvaluationStats writes evaluation reports to a YAML file.
func WriteEvaluationStats(path string, stats []EvaluationStats) error {
	// Marshal the struct to YAML
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation stats to YAML: %w", err)
	}

	// Write the YAML data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write evaluation stats to file: %w", err)
	}

	return nil
}
