package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)
	assert.Equal(t, Summary{}, got)

	got = Summarize([]float64{})
	assert.Equal(t, Summary{Count: 0, Mean: 0, Median: 0}, got)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{
			name:   "even set with repeated middle",
			values: []float64{4, 4, 4, 6},
			want:   Summary{Count: 4, Mean: 4.5, Median: 4},
		},
		{
			name:   "odd set",
			values: []float64{1, 2, 3},
			want:   Summary{Count: 3, Mean: 2, Median: 2},
		},
		{
			name:   "two values",
			values: []float64{10, 20},
			want:   Summary{Count: 2, Mean: 15, Median: 15},
		},
		{
			name:   "single value",
			values: []float64{7},
			want:   Summary{Count: 1, Mean: 7, Median: 7},
		},
		{
			name:   "unsorted input",
			values: []float64{9, 1, 5},
			want:   Summary{Count: 3, Mean: 5, Median: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.values))
		})
	}
}

func TestSummarizeMeanOneDecimal(t *testing.T) {
	// Mean rounding never produces more than one decimal digit.
	inputs := [][]float64{
		{1, 2},
		{1, 1, 1, 2},
		{3, 4, 8},
		{0, 0, 1},
		{2, 3, 3, 5, 7, 11, 13},
	}
	for _, values := range inputs {
		mean := Summarize(values).Mean
		assert.InDelta(t, mean, math.Round(mean*10)/10, 1e-12)
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_ = Summarize(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestSummarizeIdempotent(t *testing.T) {
	values := []float64{4, 4, 4, 6}
	first := Summarize(values)
	second := Summarize(values)
	assert.Equal(t, first, second)
}

func TestSummarizeRatings(t *testing.T) {
	assert.Equal(t, RatingSummary{}, SummarizeRatings(nil))
	assert.Equal(t, RatingSummary{Count: 3, Mean: 4.3}, SummarizeRatings([]int{5, 4, 4}))
	assert.Equal(t, RatingSummary{Count: 1, Mean: 5}, SummarizeRatings([]int{5}))
	assert.Equal(t, RatingSummary{Count: 2, Mean: 2.5}, SummarizeRatings([]int{2, 3}))
}
