package http

import (
	"day-to-day/internal/task"
	pkgErrors "day-to-day/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyTitle, task.ErrInvalidPriority, task.ErrInvalidDueDate,
		task.ErrInvalidStatusFilter, task.ErrInvalidMonth:
		return pkgErrors.NewHTTPError(400, err.Error())
	case task.ErrConfirmationRequired:
		return pkgErrors.NewHTTPError(400, "deletion is irreversible; pass confirm=true to proceed")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
