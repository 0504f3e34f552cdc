package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countapp/countd/internal/domain"
)

func countsOf(pairs ...domain.Count) []domain.Count { return pairs }

func TestToSeriesOrderInvariant(t *testing.T) {
	counts := []domain.Count{
		{UserID: "carol", Value: 12},
		{UserID: "alice", Value: 3},
		{UserID: "bob", Value: 8},
	}

	want := ToSeries(counts)

	// Permuting the input must not change label assignment because of the
	// internal stable sort by user id.
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.Count, len(counts))
		copy(shuffled, counts)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, ToSeries(shuffled))
	}

	require.Len(t, want.Points, 3)
	assert.Equal(t, Point{Label: "U1", Value: 3}, want.Points[0])  // alice
	assert.Equal(t, Point{Label: "U2", Value: 8}, want.Points[1])  // bob
	assert.Equal(t, Point{Label: "U3", Value: 12}, want.Points[2]) // carol
}

func TestToSeriesYMaxFloor(t *testing.T) {
	series := ToSeries(countsOf(
		domain.Count{UserID: "a", Value: 0},
		domain.Count{UserID: "b", Value: 0},
		domain.Count{UserID: "c", Value: 0},
	))

	// All-zero values still get a non-zero domain: floor of 1 before the
	// 20% headroom.
	assert.Equal(t, 1.2, series.YMax)
}

func TestToSeriesYMaxHeadroom(t *testing.T) {
	series := ToSeries(countsOf(
		domain.Count{UserID: "a", Value: 10},
		domain.Count{UserID: "b", Value: 20},
	))

	assert.Equal(t, 24.0, series.YMax)
	require.Len(t, series.Points, 2)
	assert.Equal(t, "U1", series.Points[0].Label)
	assert.Equal(t, "U2", series.Points[1].Label)
}

func TestToSeriesBarWidth(t *testing.T) {
	small := make([]domain.Count, 6)
	for i := range small {
		small[i] = domain.Count{UserID: string(rune('a' + i)), Value: i}
	}
	assert.Equal(t, 28, ToSeries(small).BarWidth)

	large := append(small, domain.Count{UserID: "z", Value: 1})
	assert.Equal(t, 16, ToSeries(large).BarWidth)
}

func TestToSeriesEmpty(t *testing.T) {
	series := ToSeries(nil)
	assert.Empty(t, series.Points)
	assert.Equal(t, 1.2, series.YMax)
	assert.Equal(t, 28, series.BarWidth)
}

func TestToSeriesDoesNotMutateInput(t *testing.T) {
	counts := []domain.Count{
		{UserID: "b", Value: 2},
		{UserID: "a", Value: 1},
	}
	_ = ToSeries(counts)
	assert.Equal(t, "b", counts[0].UserID)
	assert.Equal(t, "a", counts[1].UserID)
}
