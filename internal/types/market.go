package types

// PriceBar is a single row of a daily historical price CSV
// (Yahoo Finance column layout). Bars are ordered ascending by trading day.
type PriceBar struct {
	Date   string  `csv:"Date" yaml:"date" json:"date"`
	Open   float64 `csv:"Open" yaml:"open" json:"open"`
	High   float64 `csv:"High" yaml:"high" json:"high"`
	Low    float64 `csv:"Low" yaml:"low" json:"low"`
	Close  float64 `csv:"Close" yaml:"close" json:"close"`
	Volume float64 `csv:"Volume" yaml:"volume" json:"volume"`
}

// ClosePrices extracts the close-price series from a slice of bars,
// preserving order.
func ClosePrices(bars []PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}

	return closes
}

// Dates extracts the date labels from a slice of bars, preserving order.
func Dates(bars []PriceBar) []string {
	dates := make([]string, len(bars))
	for i, bar := range bars {
		dates[i] = bar.Date
	}

	return dates
}
