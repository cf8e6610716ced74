package model

// Note is a free-form note owned by one user. Color is picked from a fixed
// palette at creation and never changes afterwards. UpdatedAt is refreshed
// on every mutation, never on read.
type Note struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Color     string `json:"color"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
	UpdatedAt int64  `json:"updatedAt"` // epoch milliseconds
}
