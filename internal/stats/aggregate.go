// Package stats holds the pure computations behind the screening detail
// view: count aggregation, activity joining, and chart series mapping.
// Every function is a deterministic function of its input snapshot and
// holds no state between calls.
package stats

import (
	"math"
	"sort"
)

// Summary describes a set of attendance counts.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// RatingSummary describes a set of star ratings.
type RatingSummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// Summarize computes count, mean and median of a value set. Mean is rounded
// to one decimal. Median is the middle element for odd-sized sets and the
// midpoint mean of the two middle elements for even-sized sets. An empty
// set yields all zeroes. The input slice is not modified.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Summary{
		Count:  len(values),
		Mean:   round1(sum / float64(len(values))),
		Median: median,
	}
}

// SummarizeRatings computes count and mean star rating, rounded to one
// decimal. No median is reported for ratings.
func SummarizeRatings(stars []int) RatingSummary {
	if len(stars) == 0 {
		return RatingSummary{}
	}

	var sum int
	for _, s := range stars {
		sum += s
	}

	return RatingSummary{
		Count: len(stars),
		Mean:  round1(float64(sum) / float64(len(stars))),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
