package aggregator

import (
	"time"

	dr "github.com/patricioibar/olist-dashboard/aggregator/dataretainer"
)

const monthLayout = "2006-01"

// Point is one (label, value) pair of a categorical or time series chart.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Series []Point

// ScatterPoint is a single order plotted on a scatter chart.
type ScatterPoint struct {
	OrderID string  `json:"order_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Label
	}
	return labels
}

func (s Series) Total() float64 {
	total := 0.0
	for _, p := range s {
		total += p.Value
	}
	return total
}

func seriesFromEntries(entries []dr.Entry[float64]) Series {
	series := make(Series, 0, len(entries))
	for _, entry := range entries {
		series = append(series, Point{Label: entry.Key, Value: entry.Value})
	}
	return series
}

func purchaseMonth(t time.Time) string {
	return t.Format(monthLayout)
}

// wholeDays truncates d to whole days towards negative infinity, so 1.5
// days early counts as -2.
func wholeDays(d time.Duration) int {
	const day = 24 * time.Hour
	days := d / day
	if d%day < 0 {
		days--
	}
	return int(days)
}

func safeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
