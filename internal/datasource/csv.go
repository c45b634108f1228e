package datasource

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-rl/internal/logger"
	"github.com/rxtech-lab/argo-rl/internal/types"
	"github.com/rxtech-lab/argo-rl/pkg/errors"
	"go.uber.org/zap"
)

// CSVDataSource loads a daily price CSV into memory once and serves
// index-range queries from the cache.
type CSVDataSource struct {
	logger *logger.Logger
	cache  []types.PriceBar
}

// NewCSVDataSource creates a CSV-backed data source.
func NewCSVDataSource(logger *logger.Logger) DataSource {
	return &CSVDataSource{
		logger: logger,
	}
}

// Initialize implements DataSource.
func (s *CSVDataSource) Initialize(path string) error {
	csvFile, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to open CSV file %s", path)
	}
	defer csvFile.Close()

	var bars []types.PriceBar
	if err := gocsv.UnmarshalFile(csvFile, &bars); err != nil {
		return errors.Wrapf(errors.ErrCodeMalformedData, err, "failed to unmarshal CSV file %s", path)
	}

	s.cache = bars
	s.logger.Debug("Loaded price bars from CSV",
		zap.String("path", path),
		zap.Int("count", len(bars)),
	)

	return nil
}

// bounds resolves the optional inclusive index range against the cache,
// clamping out-of-range values. Returns lo > hi for an empty selection.
func (s *CSVDataSource) bounds(start optional.Option[int], end optional.Option[int]) (int, int, error) {
	if s.cache == nil {
		return 0, -1, errors.New(errors.ErrCodeDataSourceNotReady, "CSV data source is not initialized")
	}

	lo := 0
	if start.IsSome() && start.Unwrap() > 0 {
		lo = start.Unwrap()
	}

	hi := len(s.cache) - 1
	if end.IsSome() && end.Unwrap() < hi {
		hi = end.Unwrap()
	}

	return lo, hi, nil
}

// Count implements DataSource.
func (s *CSVDataSource) Count(start optional.Option[int], end optional.Option[int]) (int, error) {
	lo, hi, err := s.bounds(start, end)
	if err != nil {
		return 0, err
	}

	if hi < lo {
		return 0, nil
	}

	return hi - lo + 1, nil
}

// ReadAll implements DataSource.
func (s *CSVDataSource) ReadAll(start optional.Option[int], end optional.Option[int]) func(yield func(types.PriceBar, error) bool) {
	return func(yield func(types.PriceBar, error) bool) {
		lo, hi, err := s.bounds(start, end)
		if err != nil {
			yield(types.PriceBar{}, err)

			return
		}

		for i := lo; i <= hi; i++ {
			if !yield(s.cache[i], nil) {
				break
			}
		}
	}
}

// ClosePrices implements DataSource.
func (s *CSVDataSource) ClosePrices(start optional.Option[int], end optional.Option[int]) ([]float64, error) {
	lo, hi, err := s.bounds(start, end)
	if err != nil {
		return nil, err
	}

	if hi < lo {
		return []float64{}, nil
	}

	closes := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		closes = append(closes, s.cache[i].Close)
	}

	return closes, nil
}

// Dates implements DataSource.
func (s *CSVDataSource) Dates(start optional.Option[int], end optional.Option[int]) ([]string, error) {
	lo, hi, err := s.bounds(start, end)
	if err != nil {
		return nil, err
	}

	if hi < lo {
		return []string{}, nil
	}

	dates := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		dates = append(dates, s.cache[i].Date)
	}

	return dates, nil
}

// Close implements DataSource. The cache is dropped so a later call must
// re-initialize.
func (s *CSVDataSource) Close() error {
	s.cache = nil

	return nil
}
