// Package chart rasterizes aggregate series to PNG files. It is the
// only package that knows about the rendering library; the rest of the
// system hands it a labeled series and a path.
package chart

import (
	"fmt"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"

	"tally/internal/export"
)

// Renderer writes category-share and monthly-trend charts.
type Renderer struct{}

// NewRenderer returns a PNG chart renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPie writes a category-share pie chart. An empty series returns
// export.ErrEmptySeries without touching the filesystem.
func (r *Renderer) RenderPie(s export.Series, path string) error {
	if s.Empty() {
		return export.ErrEmptySeries
	}

	values := make([]gochart.Value, len(s.Values))
	for i := range s.Values {
		values[i] = gochart.Value{Label: s.Labels[i], Value: s.Values[i]}
	}

	pie := gochart.PieChart{
		Title:  "Spending by Category",
		Width:  600,
		Height: 600,
		Values: values,
	}

	return renderToFile(path, func(f *os.File) error {
		return pie.Render(gochart.PNG, f)
	})
}

// RenderTrend writes a chronological line chart of monthly totals. An
// empty series returns export.ErrEmptySeries without touching the
// filesystem.
func (r *Renderer) RenderTrend(s export.Series, path string) error {
	if s.Empty() {
		return export.ErrEmptySeries
	}

	xs := make([]float64, len(s.Values))
	ticks := make([]gochart.Tick, len(s.Values))
	for i := range s.Values {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: s.Labels[i]}
	}

	line := gochart.Chart{
		Title:  "Monthly Spending Trend",
		Width:  800,
		Height: 400,
		XAxis: gochart.XAxis{
			Name:  "Month",
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name: "Total Spending",
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: xs,
				YValues: s.Values,
			},
		},
	}

	// A single month gives both axes a zero-delta range, which the
	// library rejects. Pin explicit ranges so one data point still
	// renders.
	if len(s.Values) == 1 {
		v := s.Values[0]
		line.XAxis.Range = &gochart.ContinuousRange{Min: -1, Max: 1}
		line.YAxis.Range = &gochart.ContinuousRange{Min: v - 1, Max: v + 1}
	}

	return renderToFile(path, func(f *os.File) error {
		return line.Render(gochart.PNG, f)
	})
}

func renderToFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render chart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	return nil
}
