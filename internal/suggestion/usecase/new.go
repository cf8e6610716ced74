package usecase

import (
	"day-to-day/internal/task"
	"day-to-day/pkg/gemini"
	pkgLog "day-to-day/pkg/log"
)

const (
	// fallback answers when the provider cannot be reached
	musicFallbackText = "Sorry, I couldn't connect to Google Music search right now."
	musicDefaultText  = "Here is what I found on Google Music:"
)

type implUseCase struct {
	l      pkgLog.Logger
	client *gemini.Client
	taskUC task.UseCase
}

// New creates a new suggestion UseCase instance. Accepted suggestions are
// imported through the task UseCase so they share its trust boundary.
func New(l pkgLog.Logger, client *gemini.Client, taskUC task.UseCase) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
		taskUC: taskUC,
	}
}
