package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"day-to-day/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "models/gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hello"}]}}]}`))
	}))
	defer srv.Close()

	client := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
	resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
		Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got := resp.Text(); got != "hello" {
		t.Errorf("Text() = %q, want %q", got, "hello")
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
	_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestGroundingChunksDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"found some"}]},"groundingMetadata":{"groundingChunks":[{"web":{"uri":"https://music.example/a","title":"Lo-Fi Mix"}}]}}]}`))
	}))
	defer srv.Close()

	client := gemini.NewClient("test-key", gemini.WithBaseURL(srv.URL))
	resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil || len(meta.GroundingChunks) != 1 {
		t.Fatalf("expected one grounding chunk, got %+v", meta)
	}
	if meta.GroundingChunks[0].Web.Title != "Lo-Fi Mix" {
		t.Errorf("unexpected chunk: %+v", meta.GroundingChunks[0])
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```json\n[1,2]\n```", "[1,2]"},
		{"```\n[1,2]\n```", "[1,2]"},
		{"  [1,2]  ", "[1,2]"},
	}
	for _, tc := range cases {
		if got := gemini.StripCodeFence(tc.in); got != tc.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
