package usecase

import (
	"time"

	"day-to-day/internal/task/repository"
	pkgLog "day-to-day/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
