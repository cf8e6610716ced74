package gemini

import "fmt"

// BuildSuggestTasksPrompt builds the prompt asking for actionable daily
// tasks as a JSON array of {title, priority} objects.
func BuildSuggestTasksPrompt(userContext string) string {
	return fmt.Sprintf(`Based on this goal or context: %q, suggest 3-5 specific, actionable daily tasks. Keep them concise.

Return ONLY a valid JSON array. No markdown, no code blocks, no explanation text. Each element must be an object with exactly these fields:
  - "title": short task description (string)
  - "priority": exactly one of "low", "medium", "high"

EXAMPLE OUTPUT:
[
  {"title": "Stretch for 10 minutes", "priority": "medium"},
  {"title": "Plan the day's top 3 tasks", "priority": "high"}
]`, userContext)
}

// BuildFindMusicPrompt builds the search-grounded music discovery prompt.
func BuildFindMusicPrompt(query string) string {
	return fmt.Sprintf("Find me high-quality focus music or playlists on Google/YouTube Music for: %q. Provide a helpful summary of why these are good for productivity.", query)
}
