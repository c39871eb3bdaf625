package analytics

import (
	"sort"

	"github.com/instalens/instalens/internal/dataset"
	"github.com/instalens/instalens/internal/dates"
)

// addDay parses raw and, if it is a valid date within r, increments its
// calendar-day bucket. Unparseable dates are excluded from every bucket —
// they never appear as count-0 entries.
func addDay(counts map[string]int, raw string, r dates.Range) {
	t, ok := dates.Parse(raw)
	if !dates.InRange(t, ok, r) {
		return
	}
	counts[dates.Day(t)]++
}

// sortedSeries converts a day->count map into a series sorted ascending by day.
func sortedSeries(counts map[string]int) []TimeSeriesPoint {
	out := make([]TimeSeriesPoint, 0, len(counts))
	for day, n := range counts {
		out = append(out, TimeSeriesPoint{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// NewUsersOverTime buckets account creations by calendar day.
func NewUsersOverTime(users []dataset.User, r dates.Range) []TimeSeriesPoint {
	counts := make(map[string]int)
	for _, u := range users {
		addDay(counts, u.CreatedAt, r)
	}
	return sortedSeries(counts)
}

// PhotoLikesTrend buckets like events by calendar day.
func PhotoLikesTrend(likes []dataset.Like, r dates.Range) []TimeSeriesPoint {
	counts := make(map[string]int)
	for _, l := range likes {
		addDay(counts, l.CreatedAt, r)
	}
	return sortedSeries(counts)
}

// FollowerGrowthOverTime buckets follow events by calendar day.
func FollowerGrowthOverTime(follows []dataset.Follow, r dates.Range) []TimeSeriesPoint {
	counts := make(map[string]int)
	for _, f := range follows {
		addDay(counts, f.CreatedAt, r)
	}
	return sortedSeries(counts)
}
