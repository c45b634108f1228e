package datasource

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-rl/internal/logger"
	"github.com/rxtech-lab/argo-rl/internal/types"
	"github.com/rxtech-lab/argo-rl/pkg/errors"
	"go.uber.org/zap"
)

// DuckDBDataSource serves the price series through a DuckDB view over the
// CSV file, keeping memory flat for long histories.
type DuckDBDataSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBDataSource creates a DuckDB-backed data source. An empty dbPath
// opens an in-memory database.
func NewDuckDBDataSource(dbPath string, logger *logger.Logger) (DataSource, error) {
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceNotReady, "failed to open DuckDB database", err)
	}

	return &DuckDBDataSource{
		db:     db,
		logger: logger,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Initialize implements DataSource. It exposes the CSV file as the
// price_data view with a zero-based day index in file order.
func (d *DuckDBDataSource) Initialize(path string) error {
	d.logger.Debug("Initializing DuckDB data source", zap.String("path", path))

	// First drop the view if it exists
	_, err := d.db.Exec(`DROP VIEW IF EXISTS price_data;`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to drop existing view", err)
	}

	// Create a view over the CSV - raw SQL as Squirrel doesn't support CREATE VIEW
	query := fmt.Sprintf(`
		CREATE VIEW price_data AS
		SELECT
			row_number() OVER () - 1 AS day,
			CAST("Date" AS VARCHAR) AS date,
			CAST("Open" AS DOUBLE) AS open,
			CAST("High" AS DOUBLE) AS high,
			CAST("Low" AS DOUBLE) AS low,
			CAST("Close" AS DOUBLE) AS close,
			CAST("Volume" AS DOUBLE) AS volume
		FROM read_csv_auto('%s');
	`, path)

	_, err = d.db.Exec(query)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeMalformedData, err, "failed to create view over %s", path)
	}

	return nil
}

// withRange applies the optional inclusive index range to a select builder.
func withRange(builder squirrel.SelectBuilder, start optional.Option[int], end optional.Option[int]) squirrel.SelectBuilder {
	if start.IsSome() {
		builder = builder.Where(squirrel.GtOrEq{"day": start.Unwrap()})
	}

	if end.IsSome() {
		builder = builder.Where(squirrel.LtOrEq{"day": end.Unwrap()})
	}

	return builder
}

// Count implements DataSource.
func (d *DuckDBDataSource) Count(start optional.Option[int], end optional.Option[int]) (int, error) {
	query, args, err := withRange(d.sq.Select("COUNT(*)").From("price_data"), start, end).ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build count query", err)
	}

	var count int
	if err := d.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count price bars", err)
	}

	return count, nil
}

// ReadAll implements DataSource.
func (d *DuckDBDataSource) ReadAll(start optional.Option[int], end optional.Option[int]) func(yield func(types.PriceBar, error) bool) {
	return func(yield func(types.PriceBar, error) bool) {
		builder := d.sq.
			Select("date", "open", "high", "low", "close", "volume").
			From("price_data").
			OrderBy("day")

		query, args, err := withRange(builder, start, end).ToSql()
		if err != nil {
			yield(types.PriceBar{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build read query", err))

			return
		}

		rows, err := d.db.Query(query, args...)
		if err != nil {
			yield(types.PriceBar{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read price bars", err))

			return
		}
		defer rows.Close()

		for rows.Next() {
			var bar types.PriceBar
			if err := rows.Scan(&bar.Date, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
				yield(types.PriceBar{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan price bar", err))

				return
			}

			if !yield(bar, nil) {
				break
			}
		}
	}
}

// ClosePrices implements DataSource.
func (d *DuckDBDataSource) ClosePrices(start optional.Option[int], end optional.Option[int]) ([]float64, error) {
	query, args, err := withRange(d.sq.Select("close").From("price_data").OrderBy("day"), start, end).ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build close-price query", err)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query close prices", err)
	}
	defer rows.Close()

	closes := []float64{}

	for rows.Next() {
		var close float64
		if err := rows.Scan(&close); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan close price", err)
		}

		closes = append(closes, close)
	}

	return closes, rows.Err()
}

// Dates implements DataSource.
func (d *DuckDBDataSource) Dates(start optional.Option[int], end optional.Option[int]) ([]string, error) {
	query, args, err := withRange(d.sq.Select("date").From("price_data").OrderBy("day"), start, end).ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build date query", err)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query dates", err)
	}
	defer rows.Close()

	dates := []string{}

	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan date", err)
		}

		dates = append(dates, date)
	}

	return dates, rows.Err()
}

// Close implements DataSource.
func (d *DuckDBDataSource) Close() error {
	return d.db.Close()
}
