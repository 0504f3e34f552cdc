package stats

import (
	"sort"

	"github.com/countapp/countd/internal/domain"
)

// ActivityItem pairs a count record with the screening it refers to.
type ActivityItem struct {
	Count     domain.Count     `json:"count"`
	Screening domain.Screening `json:"screening"`
}

// ScreeningLookup resolves a screening by id. The second return reports
// whether the screening exists.
type ScreeningLookup func(id string) (domain.Screening, bool)

// Attach resolves each count's screening reference and returns the enriched
// rows ordered by count creation time, newest first. Counts whose screening
// no longer exists are dropped rather than failing the whole join. A zero
// creation time collates as oldest. Ties keep the input order so repeated
// evaluations over the same snapshot never reorder the result.
func Attach(counts []domain.Count, lookup ScreeningLookup) []ActivityItem {
	items := make([]ActivityItem, 0, len(counts))
	for _, c := range counts {
		s, ok := lookup(c.ScreeningID)
		if !ok {
			continue
		}
		items = append(items, ActivityItem{Count: c, Screening: s})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count.CreatedAt.After(items[j].Count.CreatedAt)
	})

	return items
}
