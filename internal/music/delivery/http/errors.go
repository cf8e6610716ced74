package http

import (
	"day-to-day/internal/music"
	pkgErrors "day-to-day/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case music.ErrSoundscapeNotFound:
		return pkgErrors.NewHTTPError(404, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
