package domain

import (
	"math"
	"slices"
	"time"

	"cloud.google.com/go/civil"
)

const (
	DefaultTrendDays   = 7
	UncategorizedLabel = "Uncategorized"
)

type DayCount struct {
	Date  civil.Date
	Label string
	Count int
}

// CategorySegment is one slice of the category distribution. CategoryID is
// zero for the uncategorized segment.
type CategorySegment struct {
	CategoryID   CategoryID
	CategoryName string
	Count        int
}

type StatsSnapshot struct {
	Total      int
	ThisWeek   int
	Percentage int
	Trend      []DayCount
}

// AnalyticsAggregator computes read models over the completion log. All
// windows end on now's day in now's zone.
type AnalyticsAggregator struct{}

func NewAnalyticsAggregator() *AnalyticsAggregator {
	return &AnalyticsAggregator{}
}

func (a *AnalyticsAggregator) WeeklyTrend(completions []*Completion, days int, now time.Time) []DayCount {
	window := TrailingDays(civil.DateOf(now), days)
	if len(window) == 0 {
		return []DayCount{}
	}

	counts := a.countByDay(completions, now.Location())

	trend := make([]DayCount, 0, len(window))
	for _, d := range window {
		trend = append(trend, DayCount{
			Date:  d,
			Label: DayLabel(d),
			Count: counts[d],
		})
	}

	return trend
}

// CompletionPercentage is the share of the trailing days with at least one
// completion, rounded half away from zero.
func (a *AnalyticsAggregator) CompletionPercentage(completions []*Completion, days int, now time.Time) int {
	window := TrailingDays(civil.DateOf(now), days)
	if len(window) == 0 {
		return 0
	}

	counts := a.countByDay(completions, now.Location())

	active := 0
	for _, d := range window {
		if counts[d] > 0 {
			active++
		}
	}

	return int(math.Round(100 * float64(active) / float64(days)))
}

func (a *AnalyticsAggregator) DistributionByCategory(
	completions []*Completion,
	reminderToCategory map[ReminderID]CategoryID,
	categoryToName map[CategoryID]string,
	uncategorizedLabel string,
) []CategorySegment {
	segments := make([]CategorySegment, 0)
	index := make(map[CategoryID]int)

	for _, c := range completions {
		key := CategoryID{}
		name := uncategorizedLabel

		if categoryID, ok := reminderToCategory[c.ReminderID()]; ok && !categoryID.IsZero() {
			if n, known := categoryToName[categoryID]; known {
				key = categoryID
				name = n
			}
		}

		i, seen := index[key]
		if !seen {
			i = len(segments)
			index[key] = i
			segments = append(segments, CategorySegment{
				CategoryID:   key,
				CategoryName: name,
			})
		}

		segments[i].Count++
	}

	// stable keeps first appearance order among equal counts
	slices.SortStableFunc(segments, func(x, y CategorySegment) int {
		return y.Count - x.Count
	})

	return segments
}

// TotalCompletions counts completions at or after since.
func (a *AnalyticsAggregator) TotalCompletions(completions []*Completion, since time.Time) int {
	total := 0

	for _, c := range completions {
		if !c.CompletedAt().Before(since) {
			total++
		}
	}

	return total
}

func (a *AnalyticsAggregator) Snapshot(completions []*Completion, now time.Time) StatsSnapshot {
	return StatsSnapshot{
		Total:      len(completions),
		ThisWeek:   a.TotalCompletions(completions, now.Add(-DefaultTrendDays*24*time.Hour)),
		Percentage: a.CompletionPercentage(completions, DefaultTrendDays, now),
		Trend:      a.WeeklyTrend(completions, DefaultTrendDays, now),
	}
}

func (a *AnalyticsAggregator) countByDay(completions []*Completion, loc *time.Location) map[civil.Date]int {
	counts := make(map[civil.Date]int, len(completions))
	for _, c := range completions {
		counts[c.DayKey(loc)]++
	}

	return counts
}
