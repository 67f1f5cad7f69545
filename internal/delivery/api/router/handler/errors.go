package handler

import (
	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// errUnauthenticated covers handlers reached without the auth middleware having set an identity
func errUnauthenticated(c echo.Context) error {
	return response.FromAppError(c, domainerrors.ErrUnauthenticated)
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}
