package suggestion

import (
	"context"

	"day-to-day/internal/model"
)

// UseCase defines the business logic interface for AI-assisted suggestions.
type UseCase interface {
	// SuggestTasks asks the provider for 3-5 concise tasks matching the
	// given context and imports the accepted ones into the task collection.
	// Provider failures degrade to an empty result, never an error.
	SuggestTasks(ctx context.Context, sc model.Scope, input SuggestTasksInput) (SuggestTasksOutput, error)

	// FindMusic runs a search-grounded music query. Provider failures
	// degrade to a fixed apology text with no links.
	FindMusic(ctx context.Context, sc model.Scope, input FindMusicInput) (FindMusicOutput, error)
}
