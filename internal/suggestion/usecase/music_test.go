package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"day-to-day/internal/suggestion"
)

func TestFindMusicReturnsTextAndGroundedLinks(t *testing.T) {
	uc, _ := newSuggestionUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": "Try these lo-fi playlists."}},
					},
					"groundingMetadata": map[string]any{
						"groundingChunks": []any{
							map[string]any{"web": map[string]any{"uri": "https://music.example/lofi", "title": "Lo-Fi Beats"}},
							map[string]any{"web": map[string]any{"uri": "", "title": "missing uri"}},
						},
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	out, err := uc.FindMusic(context.Background(), testScope, suggestion.FindMusicInput{Query: "lo-fi"})
	if err != nil {
		t.Fatalf("FindMusic: %v", err)
	}
	if out.Text != "Try these lo-fi playlists." {
		t.Errorf("text = %q", out.Text)
	}
	if len(out.Links) != 1 {
		t.Fatalf("got %d links, want 1 (incomplete chunks skipped)", len(out.Links))
	}
	if out.Links[0].Title != "Lo-Fi Beats" || out.Links[0].URI != "https://music.example/lofi" {
		t.Errorf("link = %+v", out.Links[0])
	}
}

func TestFindMusicFallbackOnProviderError(t *testing.T) {
	uc, _ := newSuggestionUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	out, err := uc.FindMusic(context.Background(), testScope, suggestion.FindMusicInput{Query: "focus"})
	if err != nil {
		t.Fatalf("provider errors must degrade, got %v", err)
	}
	if out.Text != "Sorry, I couldn't connect to Google Music search right now." {
		t.Errorf("text = %q, want the apology fallback", out.Text)
	}
	if len(out.Links) != 0 {
		t.Errorf("links = %+v, want none", out.Links)
	}
}

func TestFindMusicDefaultTextOnEmptyAnswer(t *testing.T) {
	uc, _ := newSuggestionUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	out, err := uc.FindMusic(context.Background(), testScope, suggestion.FindMusicInput{Query: "focus"})
	if err != nil {
		t.Fatalf("FindMusic: %v", err)
	}
	if out.Text != "Here is what I found on Google Music:" {
		t.Errorf("text = %q, want the default summary line", out.Text)
	}
}

func TestFindMusicEmptyQuery(t *testing.T) {
	uc, _ := newSuggestionUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called for an empty query")
	})

	_, err := uc.FindMusic(context.Background(), testScope, suggestion.FindMusicInput{Query: ""})
	if !errors.Is(err, suggestion.ErrEmptyQuery) {
		t.Errorf("err = %v, want ErrEmptyQuery", err)
	}
}
