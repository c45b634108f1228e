package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EpisodeHistory is the accumulated trading history of one evaluation
// episode, recorded externally by the agent's training loop. It is consumed
// read-only by the metrics, reporting and chart layers; passing it by
// pointer is the only coupling between the agent and this toolkit.
type EpisodeHistory struct {
	// ModelType is the human-readable name of the agent that produced this
	// episode (e.g., "DQN").
	ModelType string `yaml:"model_type" json:"model_type"`
	// InitialPortfolioValue is the portfolio value at the start of the episode.
	InitialPortfolioValue float64 `yaml:"initial_portfolio_value" json:"initial_portfolio_value"`
	// Balance is the cash balance at the end of the episode.
	Balance float64 `yaml:"balance" json:"balance"`
	// Inventory holds the purchase price of every share still held, one
	// entry per share.
	Inventory []float64 `yaml:"inventory" json:"inventory"`
	// PortfolioValues is the portfolio valuation at every trading day of
	// the episode.
	PortfolioValues []float64 `yaml:"portfolio_values" json:"portfolio_values"`
	// ReturnRates is the daily return rate at every trading day of the episode.
	ReturnRates []float64 `yaml:"return_rates" json:"return_rates"`
	// BuyDates holds the trading-day indices at which the agent bought.
	BuyDates []int `yaml:"buy_dates" json:"buy_dates"`
	// SellDates holds the trading-day indices at which the agent sold.
	SellDates []int `yaml:"sell_dates" json:"sell_dates"`
}

// FinalPortfolioValue returns the portfolio value at the last recorded day,
// or 0 for an empty history.
func (h *EpisodeHistory) FinalPortfolioValue() float64 {
	if len(h.PortfolioValues) == 0 {
		return 0
	}

	return h.PortfolioValues[len(h.PortfolioValues)-1]
}

// TotalReturn returns the absolute gain of the episode over the initial
// portfolio value.
func (h *EpisodeHistory) TotalReturn() float64 {
	return h.FinalPortfolioValue() - h.InitialPortfolioValue
}

// LoadEpisodeHistory reads an episode history from a YAML file.
func LoadEpisodeHistory(path string) (*EpisodeHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read episode history: %w", err)
	}

	var history EpisodeHistory
	if err := yaml.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal episode history: %w", err)
	}

	return &history, nil
}

// WriteEpisodeHistory writes an episode history to a YAML file.
func WriteEpisodeHistory(path string, history *EpisodeHistory) error {
	data, err := yaml.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal episode history: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write episode history: %w", err)
	}

	return nil
}
