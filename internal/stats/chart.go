package stats

import (
	"fmt"
	"sort"

	"github.com/countapp/countd/internal/domain"
)

const (
	narrowBarWidth = 16
	wideBarWidth   = 28
	// barWidthCutoff is the series size above which bars get narrow.
	barWidthCutoff = 6
	// yHeadroom keeps the tallest bar off the axis ceiling.
	yHeadroom = 1.2
)

// Point is one labeled bar of the comparison chart.
type Point struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Series is a render-ready bar chart of counts for one screening.
type Series struct {
	Points   []Point `json:"points"`
	YMax     float64 `json:"y_max"`
	BarWidth int     `json:"bar_width"`
}

// ToSeries maps counts to a labeled series. Input is stable-sorted by user
// id so the output does not depend on snapshot arrival order, then labels
// "U1".."Un" are assigned positionally. YMax is the largest value, floored
// at 1, with 20% headroom; the domain is therefore never zero even when all
// counts are.
func ToSeries(counts []domain.Count) Series {
	sorted := make([]domain.Count, len(counts))
	copy(sorted, counts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UserID < sorted[j].UserID
	})

	maxVal := 1
	points := make([]Point, 0, len(sorted))
	for i, c := range sorted {
		points = append(points, Point{
			Label: fmt.Sprintf("U%d", i+1),
			Value: c.Value,
		})
		if c.Value > maxVal {
			maxVal = c.Value
		}
	}

	width := wideBarWidth
	if len(points) > barWidthCutoff {
		width = narrowBarWidth
	}

	return Series{
		Points:   points,
		YMax:     round1(float64(maxVal) * yHeadroom),
		BarWidth: width,
	}
}
