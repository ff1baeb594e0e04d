package routes

import (
	"net/http"

	"wep/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness. An unreachable triple store
// degrades the status but never fails the check.
func HealthHandler(c echo.Context) error {
	type healthResponse struct {
		Status          string `json:"status"`
		FusekiURL       string `json:"fuseki_url"`
		FusekiConnected bool   `json:"fuseki_connected"`
	}

	app := c.(*middleware.AppContext).App
	connected := app.Store.Ping(c.Request().Context())

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:          status,
		FusekiURL:       app.FusekiURL,
		FusekiConnected: connected,
	})
}
