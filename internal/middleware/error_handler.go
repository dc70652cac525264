package middleware

import (
	"myMiloStore/pkg/logger"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler converts anything escaping a handler into the flat
// {"success": false} body. A failing request never takes the process down or
// blocks the next one.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	logger.Error("Unhandled request error", err, "path", c.Path())

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, map[string]bool{"success": false})
}
