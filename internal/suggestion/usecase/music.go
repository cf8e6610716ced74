package usecase

import (
	"context"
	"strings"

	"day-to-day/internal/model"
	"day-to-day/internal/suggestion"
	"day-to-day/pkg/gemini"
)

// FindMusic runs a search-grounded music query. Provider failures degrade
// to a fixed apology with no links.
func (uc *implUseCase) FindMusic(ctx context.Context, sc model.Scope, input suggestion.FindMusicInput) (suggestion.FindMusicOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return suggestion.FindMusicOutput{}, suggestion.ErrEmptyQuery
	}

	resp, err := uc.client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Parts: []gemini.Part{{Text: gemini.BuildFindMusicPrompt(input.Query)}},
		}},
		Tools: []gemini.Tool{{GoogleSearch: &gemini.GoogleSearch{}}},
	})
	if err != nil {
		uc.l.Errorf(ctx, "gemini.GenerateContent: %v", err)
		return suggestion.FindMusicOutput{Text: musicFallbackText, Links: []suggestion.MusicLink{}}, nil
	}

	text := resp.Text()
	if text == "" {
		text = musicDefaultText
	}

	links := []suggestion.MusicLink{}
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" && chunk.Web.Title != "" {
				links = append(links, suggestion.MusicLink{
					Title: chunk.Web.Title,
					URI:   chunk.Web.URI,
				})
			}
		}
	}

	return suggestion.FindMusicOutput{Text: text, Links: links}, nil
}
