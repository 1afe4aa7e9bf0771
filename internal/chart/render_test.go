package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tally/internal/export"
)

func TestRenderPieWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.png")
	s := export.Series{Labels: []string{"Travel", "Food"}, Values: []float64{100, 50}}

	if err := NewRenderer().RenderPie(s, path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty chart file")
	}
}

func TestRenderTrendWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trend.png")
	s := export.Series{Labels: []string{"2024-01", "2024-02"}, Values: []float64{50, 100}}

	if err := NewRenderer().RenderTrend(s, path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

// A ledger whose records all fall in one calendar month must still get
// a trend chart.
func TestRenderTrendSingleMonth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trend.png")
	s := export.Series{Labels: []string{"2024-01"}, Values: []float64{50}}

	if err := NewRenderer().RenderTrend(s, path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty chart file")
	}
}

func TestRenderSkipsEmptySeries(t *testing.T) {
	dir := t.TempDir()
	piePath := filepath.Join(dir, "pie.png")
	trendPath := filepath.Join(dir, "trend.png")
	r := NewRenderer()

	if err := r.RenderPie(export.Series{}, piePath); !errors.Is(err, export.ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
	if err := r.RenderTrend(export.Series{}, trendPath); !errors.Is(err, export.ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
	// Nothing may be written for empty input.
	if _, err := os.Stat(piePath); !os.IsNotExist(err) {
		t.Fatal("pie chart file should not exist")
	}
	if _, err := os.Stat(trendPath); !os.IsNotExist(err) {
		t.Fatal("trend chart file should not exist")
	}
}
