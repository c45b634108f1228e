package types

type MarkShape string

const (
	MarkShapeCircle   MarkShape = "circle"
	MarkShapeSquare   MarkShape = "square"
	MarkShapeTriangle MarkShape = "triangle"
)

type MarkColor string

const (
	MarkColorRed   MarkColor = "red"
	MarkColorGreen MarkColor = "green"
)

type MarkSide string

const (
	MarkSideBuy  MarkSide = "buy"
	MarkSideSell MarkSide = "sell"
)

// TradeMark is a buy or sell point on the price series, used to annotate
// the transaction-history chart.
type TradeMark struct {
	// Day is the trading-day index of the transaction.
	Day int
	// Price is the close price on that day.
	Price float64
	Side  MarkSide
	Color MarkColor
	Shape MarkShape
}

// MarksFromEpisode derives the buy/sell marks of an episode from its
// recorded transaction days. Days outside the price series are skipped.
func MarksFromEpisode(history *EpisodeHistory, closes []float64) []TradeMark {
	marks := make([]TradeMark, 0, len(history.BuyDates)+len(history.SellDates))

	for _, day := range history.BuyDates {
		if day < 0 || day >= len(closes) {
			continue
		}

		marks = append(marks, TradeMark{
			Day:   day,
			Price: closes[day],
			Side:  MarkSideBuy,
			Color: MarkColorGreen,
			Shape: MarkShapeTriangle,
		})
	}

	for _, day := range history.SellDates {
		if day < 0 || day >= len(closes) {
			continue
		}

		marks = append(marks, TradeMark{
			Day:   day,
			Price: closes[day],
			Side:  MarkSideSell,
			Color: MarkColorRed,
			Shape: MarkShapeCircle,
		})
	}

	return marks
}
