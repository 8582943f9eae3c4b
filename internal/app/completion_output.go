package app

import (
	"time"

	"github.com/KasumiMercury/primind-habit-remind/internal/domain"
)

type CompletionOutput struct {
	ID          string
	ReminderID  string
	CompletedAt time.Time
	Source      string
	// OccurrenceDate is "YYYY-MM-DD", empty for records without one.
	OccurrenceDate string
}

type CompletionsOutput struct {
	Completions []CompletionOutput
	Count       int32
}

type StreakOutput struct {
	ReminderID string
	Current    int
	Longest    int
}

func FromCompletion(c *domain.Completion) CompletionOutput {
	out := CompletionOutput{
		ID:          c.ID().String(),
		ReminderID:  c.ReminderID().String(),
		CompletedAt: c.CompletedAt(),
		Source:      string(c.Source()),
	}

	if d, ok := c.OccurrenceDate(); ok {
		out.OccurrenceDate = d.String()
	}

	return out
}

func FromCompletions(completions []*domain.Completion) CompletionsOutput {
	outputs := make([]CompletionOutput, 0, len(completions))
	for _, c := range completions {
		outputs = append(outputs, FromCompletion(c))
	}

	return CompletionsOutput{
		Completions: outputs,
		Count:       int32(len(outputs)), //nolint:gosec
	}
}
