package music

// Soundscape is one looping ambient track from the fixed catalog.
type Soundscape struct {
	ID    string
	Name  string
	URL   string
	Icon  string
	Color string
}

// Catalog is the fixed soundscape list, in display order.
var Catalog = []Soundscape{
	{ID: "rain", Name: "Summer Rain", URL: "https://assets.mixkit.co/active_storage/sfx/2418/2418-preview.mp3", Icon: "🌧️", Color: "bg-blue-500"},
	{ID: "forest", Name: "Deep Forest", URL: "https://assets.mixkit.co/active_storage/sfx/1118/1118-preview.mp3", Icon: "🌲", Color: "bg-emerald-500"},
	{ID: "lofi", Name: "Lo-Fi Chill", URL: "https://assets.mixkit.co/active_storage/sfx/2381/2381-preview.mp3", Icon: "🎧", Color: "bg-indigo-500"},
	{ID: "waves", Name: "Ocean Waves", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3", Icon: "🌊", Color: "bg-cyan-500"},
}

// --- UseCase Outputs ---

// ListOutput carries the catalog plus the caller's active track id, empty
// when nothing plays.
type ListOutput struct {
	Soundscapes []Soundscape
	ActiveID    string
}

// ToggleOutput reports the active track after a toggle; ActiveID is empty
// when the toggle switched the track off.
type ToggleOutput struct {
	ActiveID string
}
