package core

import (
	"math"
	"testing"
)

func TestTotalSpending(t *testing.T) {
	if got := TotalSpending(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %v", got)
	}
	if got := TotalSpending(sampleRecords()); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
}

func TestByCategory(t *testing.T) {
	if got := ByCategory(nil); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %v", got)
	}

	got := ByCategory(sampleRecords())
	want := []CategoryTotal{{"Travel", 100}, {"Food", 50}}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("group %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestByCategoryTieBreakAlphabetical(t *testing.T) {
	records := []Record{
		{Date: NewDate(2024, 1, 1), Category: "Zoo", Amount: 10},
		{Date: NewDate(2024, 1, 2), Category: "Art", Amount: 10},
	}
	got := ByCategory(records)
	if got[0].Category != "Art" || got[1].Category != "Zoo" {
		t.Fatalf("expected alphabetical tie-break, got %+v", got)
	}
}

func TestByCategoryBlankBucket(t *testing.T) {
	records := []Record{
		{Date: NewDate(2024, 1, 1), Category: "", Amount: 5},
		{Date: NewDate(2024, 1, 2), Category: "", Amount: 7},
	}
	got := ByCategory(records)
	if len(got) != 1 || got[0].Category != UncategorizedBucket || got[0].Sum != 12 {
		t.Fatalf("expected single %q bucket of 12, got %+v", UncategorizedBucket, got)
	}
}

func TestByMonth(t *testing.T) {
	if got := ByMonth(nil); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %v", got)
	}

	got := ByMonth(sampleRecords())
	want := []MonthTotal{{"2024-01", 50}, {"2024-02", 100}}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("group %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

// The three aggregate views must always account for the same money.
func TestAggregateTotalsAgree(t *testing.T) {
	records := []Record{
		{Date: NewDate(2024, 1, 15), Category: "Food", Amount: 19.99},
		{Date: NewDate(2024, 2, 2), Category: "Travel", Amount: 100.01},
		{Date: NewDate(2024, 2, 3), Category: "Food", Amount: -5.5},
		{Date: NewDate(2024, 3, 1), Category: "", Amount: 0},
	}
	total := TotalSpending(records)
	var byCat, byMonth float64
	for _, ct := range ByCategory(records) {
		byCat += ct.Sum
	}
	for _, mt := range ByMonth(records) {
		byMonth += mt.Sum
	}
	const eps = 1e-9
	if math.Abs(byCat-total) > eps || math.Abs(byMonth-total) > eps {
		t.Fatalf("totals disagree: total=%v byCategory=%v byMonth=%v", total, byCat, byMonth)
	}
}
