package services

import (
	"time"
)

// DayBucket holds one calendar day's worth of journal entries for display.
// Buckets are derived per request and never persisted.
type DayBucket[E any] struct {
	Date    string `json:"date"`    // 2006-01-02, used as the grouping key
	Display string `json:"display"` // e.g. "January 2, 2006"
	Entries []E    `json:"entries"`
}

// GroupByDay partitions rows into day buckets. Rows must already be sorted
// by timestamp descending; first-seen bucket order then yields most recent
// day first, with each day's entries in query order. One pass, with a
// date-to-index map alongside the ordered slice for O(1) bucket lookup.
func GroupByDay[R, E any](rows []R, dateOf func(R) time.Time, entryOf func(R) E) []DayBucket[E] {
	days := []DayBucket[E]{}
	idx := make(map[string]int, len(rows))

	for _, r := range rows {
		d := dateOf(r)
		key := d.Format("2006-01-02")

		i, ok := idx[key]
		if !ok {
			i = len(days)
			idx[key] = i
			days = append(days, DayBucket[E]{
				Date:    key,
				Display: d.Format("January 2, 2006"),
			})
		}
		days[i].Entries = append(days[i].Entries, entryOf(r))
	}
	return days
}
