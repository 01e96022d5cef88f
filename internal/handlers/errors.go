package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/threadline-app/backend/internal/apperrors"
)

// storeErrorToHTTP converts a store-layer error kind into the HTTP status
// the API contract promises: validation 400, not found 404, authorization
// 403, anything else 500.
func storeErrorToHTTP(err error) *echo.HTTPError {
	switch {
	case apperrors.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperrors.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case apperrors.IsAuthorization(err):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
