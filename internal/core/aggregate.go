package core

import "sort"

// UncategorizedBucket labels records whose category is blank when
// aggregating. Validation rejects blank categories on the write path,
// but aggregation still tolerates them (hand-edited databases, rows
// predating validation).
const UncategorizedBucket = "(uncategorized)"

// CategoryTotal is an amount summed over one category.
type CategoryTotal struct {
	Category string
	Sum      float64
}

// MonthTotal is an amount summed over one calendar month.
type MonthTotal struct {
	Month string // YYYY-MM
	Sum   float64
}

// TotalSpending sums the amount over all records. Empty input yields 0.
func TotalSpending(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

// ByCategory groups records by category, sums each group, and sorts
// descending by sum. Equal sums order ascending by category name so the
// result is deterministic. Empty input yields an empty slice.
func ByCategory(records []Record) []CategoryTotal {
	sums := make(map[string]float64)
	for _, r := range records {
		key := r.Category
		if key == "" {
			key = UncategorizedBucket
		}
		sums[key] += r.Amount
	}
	out := make([]CategoryTotal, 0, len(sums))
	for category, sum := range sums {
		out = append(out, CategoryTotal{Category: category, Sum: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sum != out[j].Sum {
			return out[i].Sum > out[j].Sum
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ByMonth groups records by calendar year+month, sums each group, and
// sorts chronologically ascending. Empty input yields an empty slice.
func ByMonth(records []Record) []MonthTotal {
	sums := make(map[string]float64)
	for _, r := range records {
		sums[r.Date.MonthKey()] += r.Amount
	}
	out := make([]MonthTotal, 0, len(sums))
	for month, sum := range sums {
		out = append(out, MonthTotal{Month: month, Sum: sum})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}
