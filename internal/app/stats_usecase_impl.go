package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type statsUseCaseImpl struct {
	reminders   domain.ReminderRepository
	completions domain.CompletionRepository
	categories  domain.CategoryRepository
	aggregator  *domain.AnalyticsAggregator
	clock       Clock
}

func NewStatsUseCase(
	reminders domain.ReminderRepository,
	completions domain.CompletionRepository,
	categories domain.CategoryRepository,
	clock Clock,
) StatsUseCase {
	return &statsUseCaseImpl{
		reminders:   reminders,
		completions: completions,
		categories:  categories,
		aggregator:  domain.NewAnalyticsAggregator(),
		clock:       clock,
	}
}

func (uc *statsUseCaseImpl) GetStats(ctx context.Context, input GetStatsInput) (StatsOutput, error) {
	days := input.Days
	if days == 0 {
		days = domain.DefaultTrendDays
	}

	if days < 1 || days > MaxStatsDays {
		return StatsOutput{}, NewValidationError("days", fmt.Sprintf("must be between 1 and %d", MaxStatsDays))
	}

	completions, err := uc.completions.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load completions for stats",
			"error", err,
		)

		return StatsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	now := uc.clock()

	snapshot := uc.aggregator.Snapshot(completions, now)
	if days != domain.DefaultTrendDays {
		snapshot.Percentage = uc.aggregator.CompletionPercentage(completions, days, now)
		snapshot.Trend = uc.aggregator.WeeklyTrend(completions, days, now)
	}

	trend := make([]DayCountOutput, 0, len(snapshot.Trend))
	for _, d := range snapshot.Trend {
		trend = append(trend, DayCountOutput{
			Date:  d.Date.String(),
			Label: d.Label,
			Count: d.Count,
		})
	}

	return StatsOutput{
		Total:      snapshot.Total,
		ThisWeek:   snapshot.ThisWeek,
		Percentage: snapshot.Percentage,
		Days:       days,
		Trend:      trend,
		AsOf:       now,
	}, nil
}

func (uc *statsUseCaseImpl) GetCategoryDistribution(ctx context.Context) (DistributionOutput, error) {
	reminders, err := uc.reminders.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load reminders for distribution",
			"error", err,
		)

		return DistributionOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	categories, err := uc.categories.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load categories for distribution",
			"error", err,
		)

		return DistributionOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	completions, err := uc.completions.FindAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load completions for distribution",
			"error", err,
		)

		return DistributionOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	reminderToCategory := make(map[domain.ReminderID]domain.CategoryID, len(reminders))
	for _, r := range reminders {
		reminderToCategory[r.ID()] = r.CategoryID()
	}

	categoryToName := make(map[domain.CategoryID]string, len(categories))
	for _, c := range categories {
		categoryToName[c.ID()] = c.Name()
	}

	segments := uc.aggregator.DistributionByCategory(
		completions,
		reminderToCategory,
		categoryToName,
		domain.UncategorizedLabel,
	)

	out := DistributionOutput{
		Segments: make([]CategorySegmentOutput, 0, len(segments)),
		Total:    len(completions),
	}

	for _, s := range segments {
		out.Segments = append(out.Segments, CategorySegmentOutput{
			CategoryID:   s.CategoryID.String(),
			CategoryName: s.CategoryName,
			Count:        s.Count,
		})
	}

	return out, nil
}
