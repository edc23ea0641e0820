package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a liveness endpoint for load balancers and monitoring. It only
// confirms the process is serving requests.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
