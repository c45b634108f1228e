package datasource

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-rl/internal/types"
)

// DataSource provides an ordered historical price series addressed by
// trading-day index. Index ranges are inclusive; None means unbounded.
type DataSource interface {
	// Initialize loads the price history from the CSV file at path.
	Initialize(path string) error
	// Count returns the number of bars within the optional index range.
	Count(start optional.Option[int], end optional.Option[int]) (int, error)
	// ReadAll iterates the bars within the optional index range in order.
	ReadAll(start optional.Option[int], end optional.Option[int]) func(yield func(types.PriceBar, error) bool)
	// ClosePrices returns the close-price series within the optional index range.
	ClosePrices(start optional.Option[int], end optional.Option[int]) ([]float64, error)
	// Dates returns the date labels within the optional index range.
	Dates(start optional.Option[int], end optional.Option[int]) ([]string, error)
	// Close releases any underlying resources.
	Close() error
}
