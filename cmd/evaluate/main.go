package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-rl/internal/benchmark"
	"github.com/rxtech-lab/argo-rl/internal/chart"
	"github.com/rxtech-lab/argo-rl/internal/datasource"
	"github.com/rxtech-lab/argo-rl/internal/logger"
	"github.com/rxtech-lab/argo-rl/internal/report"
	"github.com/rxtech-lab/argo-rl/internal/state"
	"github.com/rxtech-lab/argo-rl/internal/types"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

// newLogger selects the production or development logger based on the
// verbose flag.
func newLogger(verbose bool) (*logger.Logger, error) {
	if verbose {
		return logger.NewDebugLogger()
	}

	return logger.NewLogger()
}

// newDataSource builds the price data source selected by the source flag.
func newDataSource(source string, dbPath string, log *logger.Logger) (datasource.DataSource, error) {
	switch source {
	case "csv":
		return datasource.NewCSVDataSource(log), nil
	case "duckdb":
		return datasource.NewDuckDBDataSource(dbPath, log)
	default:
		return nil, fmt.Errorf("unknown data source %q (expected csv or duckdb)", source)
	}
}

// evaluateAction loads the price series and episode history, computes the
// evaluation statistics, and writes the report artifacts.
func evaluateAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	episodePath := cmd.String("episode")
	symbol := cmd.String("symbol")
	outputDir := cmd.String("output")
	source := cmd.String("source")
	dbPath := cmd.String("db")
	verbose := cmd.Bool("verbose")

	appLogger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	ds, err := newDataSource(source, dbPath, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ds.Close(); cerr != nil {
			log.Printf("Error closing data source: %v", cerr)
		}
	}()

	if err := ds.Initialize(dataPath); err != nil {
		return fmt.Errorf("failed to initialize data source: %w", err)
	}

	closes, err := ds.ClosePrices(optional.None[int](), optional.None[int]())
	if err != nil {
		return fmt.Errorf("failed to read close prices: %w", err)
	}

	dates, err := ds.Dates(optional.None[int](), optional.None[int]())
	if err != nil {
		return fmt.Errorf("failed to read dates: %w", err)
	}

	history, err := types.LoadEpisodeHistory(episodePath)
	if err != nil {
		return fmt.Errorf("failed to load episode history: %w", err)
	}

	evaluator := report.NewEvaluator(appLogger)

	stats, err := evaluator.Evaluate(symbol, history, closes)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	evaluator.PrintSummary(stats)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	statsPath := filepath.Join(outputDir, "stats.yaml")
	if err := types.WriteEvaluationStats(statsPath, []types.EvaluationStats{stats}); err != nil {
		return fmt.Errorf("failed to write evaluation stats: %w", err)
	}

	bench, err := benchmark.BuyAndHold(closes, history.InitialPortfolioValue)
	if err != nil {
		return fmt.Errorf("failed to compute buy-and-hold benchmark: %w", err)
	}

	transactions, err := chart.RenderTransactionHistory(symbol, dates, closes, history)
	if err != nil {
		return fmt.Errorf("failed to render transaction history: %w", err)
	}

	comparison, err := chart.RenderPerformanceComparison(symbol, dates, history, bench, stats)
	if err != nil {
		return fmt.Errorf("failed to render performance comparison: %w", err)
	}

	charts := map[string][]byte{
		"transaction_history.png":    transactions,
		"performance_comparison.png": comparison,
	}

	if len(history.ReturnRates) > 0 {
		returns, err := chart.RenderDailyReturns(history.ModelType, history.ReturnRates)
		if err != nil {
			return fmt.Errorf("failed to render daily returns: %w", err)
		}

		charts["daily_returns.png"] = returns
	}

	for name, img := range charts {
		if err := chart.WritePNG(filepath.Join(outputDir, name), img); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	log.Printf("Evaluation artifacts written to %s", outputDir)

	return nil
}

// encodeAction encodes every step of a price series into state vectors and
// writes them to a CSV file.
func encodeAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	windowSize := int(cmd.Int("window"))
	includePortfolio := cmd.Bool("portfolio")
	balance := cmd.Float("balance")
	outputPath := cmd.String("output")
	verbose := cmd.Bool("verbose")

	appLogger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	ds := datasource.NewCSVDataSource(appLogger)
	defer func() {
		if cerr := ds.Close(); cerr != nil {
			log.Printf("Error closing data source: %v", cerr)
		}
	}()

	if err := ds.Initialize(dataPath); err != nil {
		return fmt.Errorf("failed to initialize data source: %w", err)
	}

	closes, err := ds.ClosePrices(optional.None[int](), optional.None[int]())
	if err != nil {
		return fmt.Errorf("failed to read close prices: %w", err)
	}

	encoder, err := state.NewEncoder(state.EncoderConfig{
		WindowSize:       windowSize,
		IncludePortfolio: includePortfolio,
	})
	if err != nil {
		return fmt.Errorf("invalid encoder configuration: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil {
			log.Printf("Error closing output file: %v", cerr)
		}
	}()

	writer := csv.NewWriter(outFile)
	bar := progressbar.NewOptions(len(closes), progressbar.OptionSetDescription(fmt.Sprintf("Encoding %s", filepath.Base(dataPath))), progressbar.OptionShowCount())

	record := make([]string, encoder.StateSize())
	for t := range closes {
		vector := encoder.Encode(closes, t, balance, 0)
		for i, v := range vector {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write state vector for day %d: %w", t, err)
		}

		_ = bar.Add(1)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	log.Printf("Encoded %d state vectors to %s", len(closes), outputPath)

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "evaluate",
		Usage: "Evaluate trading episodes and encode state vectors",
		Commands: []*cli.Command{
			{
				Name:  "evaluate",
				Usage: "Evaluate an episode history against its price series",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the price data CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "episode",
						Aliases:  []string{"e"},
						Usage:    "Path to the episode history YAML file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "Stock ticker symbol",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Directory for the evaluation artifacts",
						Value:    "evaluation",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "source",
						Usage:    "Price data source (csv or duckdb)",
						Value:    "csv",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "db",
						Usage:    "DuckDB database path (empty for in-memory)",
						Value:    "",
						Required: false,
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable debug logging",
					},
				},
				Action: evaluateAction,
			},
			{
				Name:  "encode",
				Usage: "Encode a price series into state vectors",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the price data CSV file",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "window",
						Aliases:  []string{"w"},
						Usage:    "Price window size",
						Value:    10,
						Required: false,
					},
					&cli.BoolFlag{
						Name:  "portfolio",
						Usage: "Append portfolio features to each state vector",
					},
					&cli.FloatFlag{
						Name:     "balance",
						Usage:    "Cash balance used for the portfolio features",
						Value:    10000,
						Required: false,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Path to the output CSV file",
						Value:    "states.csv",
						Required: false,
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Enable debug logging",
					},
				},
				Action: encodeAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
