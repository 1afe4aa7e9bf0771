package export

import (
	"errors"

	"tally/internal/core"
)

// ErrEmptySeries signals that an aggregate had nothing to render. The
// rasterizer must never be invoked with an empty series; callers treat
// this as skip-with-notice, not as a failure.
var ErrEmptySeries = errors.New("no data points in series")

// Series is the labeled numeric shape handed to the chart renderer.
type Series struct {
	Labels []string
	Values []float64
}

// Empty reports whether the series has no data points.
func (s Series) Empty() bool {
	return len(s.Values) == 0
}

// CategorySeries adapts a by-category aggregate, preserving its
// descending-by-sum order.
func CategorySeries(totals []core.CategoryTotal) Series {
	var s Series
	for _, ct := range totals {
		s.Labels = append(s.Labels, ct.Category)
		s.Values = append(s.Values, ct.Sum)
	}
	return s
}

// MonthSeries adapts a by-month aggregate, preserving its chronological
// order.
func MonthSeries(totals []core.MonthTotal) Series {
	var s Series
	for _, mt := range totals {
		s.Labels = append(s.Labels, mt.Month)
		s.Values = append(s.Values, mt.Sum)
	}
	return s
}
