package http

import (
	"day-to-day/internal/auth"
	pkgErrors "day-to-day/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidEmail:
		return pkgErrors.NewHTTPError(400, err.Error())
	case auth.ErrSessionExpired:
		return pkgErrors.NewHTTPError(401, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}
