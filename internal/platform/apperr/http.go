package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTP converts a service error into an *echo.HTTPError. The public message
// becomes the response body ({"message": ...} via echo's error handler); the
// full error is kept as Internal so the request logger records it.
func HTTP(err error) *echo.HTTPError {
	var e *Error
	if !errors.As(err, &e) {
		he := echo.NewHTTPError(http.StatusInternalServerError, "server error")
		he.Internal = err
		return he
	}
	he := echo.NewHTTPError(e.Kind.Status(), e.Message)
	he.Internal = e.Err
	return he
}
