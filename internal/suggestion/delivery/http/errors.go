package http

import (
	"day-to-day/internal/suggestion"
	"day-to-day/internal/task"
	pkgErrors "day-to-day/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case suggestion.ErrEmptyContext, suggestion.ErrEmptyQuery, task.ErrInvalidDueDate:
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
