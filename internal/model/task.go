package model

// Priority is the three-level task priority.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a single todo item owned by one user.
// DueDate is a plain YYYY-MM-DD string with no time component; date
// filtering is string equality, never date arithmetic.
type Task struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	CreatedAt   int64    `json:"createdAt"` // epoch milliseconds
	DueDate     string   `json:"dueDate"`
}
