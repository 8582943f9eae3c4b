package app

import "context"

type CompletionUseCase interface {
	RecordCompletion(ctx context.Context, input RecordCompletionInput) (CompletionOutput, error)
	ListCompletions(ctx context.Context, input ListCompletionsInput) (CompletionsOutput, error)
	GetStreak(ctx context.Context, input GetStreakInput) (StreakOutput, error)
}
