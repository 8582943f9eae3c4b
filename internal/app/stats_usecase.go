package app

import (
	"context"
	"time"
)

const MaxStatsDays = 366

type GetStatsInput struct {
	// Days is the trend and percentage window, DefaultTrendDays when zero.
	Days int
}

type DayCountOutput struct {
	Date  string
	Label string
	Count int
}

type StatsOutput struct {
	Total      int
	ThisWeek   int
	Percentage int
	Days       int
	Trend      []DayCountOutput
	AsOf       time.Time
}

type CategorySegmentOutput struct {
	// CategoryID is empty for the uncategorized segment.
	CategoryID   string
	CategoryName string
	Count        int
}

type DistributionOutput struct {
	Segments []CategorySegmentOutput
	Total    int
}

type StatsUseCase interface {
	GetStats(ctx context.Context, input GetStatsInput) (StatsOutput, error)
	GetCategoryDistribution(ctx context.Context) (DistributionOutput, error)
}
