package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countapp/countd/internal/domain"
)

func ts(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func mapLookup(screenings map[string]domain.Screening) ScreeningLookup {
	return func(id string) (domain.Screening, bool) {
		s, ok := screenings[id]
		return s, ok
	}
}

func TestAttachDropsUnresolvedAndOrdersDescending(t *testing.T) {
	screenings := map[string]domain.Screening{
		"s1": {ID: "s1", MovieTitle: "Alien"},
		"s2": {ID: "s2", MovieTitle: "Heat"},
		"s3": {ID: "s3", MovieTitle: "Tenet"},
	}

	counts := []domain.Count{
		{ID: "s1_u1", ScreeningID: "s1", UserID: "u1", CreatedAt: ts(5)},
		{ID: "s2_u1", ScreeningID: "s2", UserID: "u1", CreatedAt: ts(3)},
		{ID: "gone_u1", ScreeningID: "gone", UserID: "u1", CreatedAt: ts(7)},
		{ID: "s3_u1", ScreeningID: "s3", UserID: "u1", CreatedAt: ts(9)},
	}

	items := Attach(counts, mapLookup(screenings))

	require.Len(t, items, 3)
	assert.Equal(t, "s3", items[0].Screening.ID)
	assert.Equal(t, "s1", items[1].Screening.ID)
	assert.Equal(t, "s2", items[2].Screening.ID)
	assert.Equal(t, "Tenet", items[0].Screening.MovieTitle)
}

func TestAttachMissingTimestampCollatesOldest(t *testing.T) {
	screenings := map[string]domain.Screening{
		"s1": {ID: "s1"},
		"s2": {ID: "s2"},
	}
	counts := []domain.Count{
		{ID: "s1_u1", ScreeningID: "s1"}, // zero CreatedAt
		{ID: "s2_u1", ScreeningID: "s2", CreatedAt: ts(1)},
	}

	items := Attach(counts, mapLookup(screenings))

	require.Len(t, items, 2)
	assert.Equal(t, "s2", items[0].Screening.ID)
	assert.Equal(t, "s1", items[1].Screening.ID)
}

func TestAttachStableForTies(t *testing.T) {
	screenings := map[string]domain.Screening{
		"s1": {ID: "s1"},
		"s2": {ID: "s2"},
		"s3": {ID: "s3"},
	}
	counts := []domain.Count{
		{ID: "s1_u1", ScreeningID: "s1", CreatedAt: ts(4)},
		{ID: "s2_u1", ScreeningID: "s2", CreatedAt: ts(4)},
		{ID: "s3_u1", ScreeningID: "s3", CreatedAt: ts(4)},
	}

	first := Attach(counts, mapLookup(screenings))
	second := Attach(counts, mapLookup(screenings))

	assert.Equal(t, first, second)
	assert.Equal(t, "s1", first[0].Screening.ID)
	assert.Equal(t, "s2", first[1].Screening.ID)
	assert.Equal(t, "s3", first[2].Screening.ID)
}

func TestAttachEmpty(t *testing.T) {
	items := Attach(nil, mapLookup(nil))
	assert.Empty(t, items)
}
