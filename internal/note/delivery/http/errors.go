package http

import (
	"day-to-day/internal/note"
	pkgErrors "day-to-day/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case note.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, err.Error())
	case note.ErrConfirmationRequired:
		return pkgErrors.NewHTTPError(400, "deletion is irreversible; pass confirm=true to proceed")
	case note.ErrNoteNotFound:
		return pkgErrors.NewHTTPError(404, "note not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
