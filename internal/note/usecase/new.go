package usecase

import (
	"math/rand"
	"strings"
	"time"

	"day-to-day/internal/note"
	"day-to-day/internal/note/repository"
	pkgLog "day-to-day/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new note UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func randomColor() string {
	return note.NoteColors[rand.Intn(len(note.NoteColors))]
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return note.ErrEmptyTitle
	}
	return nil
}
