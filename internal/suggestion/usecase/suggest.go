package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"day-to-day/internal/model"
	"day-to-day/internal/suggestion"
	"day-to-day/internal/task"
	"day-to-day/pkg/gemini"
)

// SuggestTasks asks the provider for task suggestions and imports them.
// Provider, decode, and parse failures all degrade to an empty result.
func (uc *implUseCase) SuggestTasks(ctx context.Context, sc model.Scope, input suggestion.SuggestTasksInput) (suggestion.SuggestTasksOutput, error) {
	if strings.TrimSpace(input.Context) == "" {
		return suggestion.SuggestTasksOutput{}, suggestion.ErrEmptyContext
	}

	suggested := uc.fetchSuggestions(ctx, input.Context)
	if len(suggested) == 0 {
		return suggestion.SuggestTasksOutput{}, nil
	}

	out, err := uc.taskUC.Import(ctx, sc, task.ImportInput{
		Suggestions: suggested,
		DueDate:     input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "taskUC.Import: %v", err)
		return suggestion.SuggestTasksOutput{}, err
	}

	return suggestion.SuggestTasksOutput{Tasks: out.Tasks}, nil
}

// fetchSuggestions calls the provider and clamps priorities at the trust
// boundary. Any failure logs and returns nil.
func (uc *implUseCase) fetchSuggestions(ctx context.Context, userContext string) []task.Suggestion {
	resp, err := uc.client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Parts: []gemini.Part{{Text: gemini.BuildSuggestTasksPrompt(userContext)}},
		}},
	})
	if err != nil {
		uc.l.Errorf(ctx, "gemini.GenerateContent: %v", err)
		return nil
	}

	var raw []gemini.SuggestedTask
	if err := json.Unmarshal([]byte(gemini.StripCodeFence(resp.Text())), &raw); err != nil {
		uc.l.Errorf(ctx, "unparsable suggestion payload: %v", err)
		return nil
	}

	suggested := make([]task.Suggestion, 0, len(raw))
	for _, s := range raw {
		priority := model.Priority(s.Priority)
		if !priority.Valid() {
			uc.l.Warnf(ctx, "clamping unknown priority %q to medium", s.Priority)
			priority = model.PriorityMedium
		}
		suggested = append(suggested, task.Suggestion{
			Title:    s.Title,
			Priority: priority,
		})
	}
	return suggested
}
