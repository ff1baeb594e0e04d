package routes

import (
	"net/http"

	"wep/internal/server/middleware"
	"wep/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetStatisticsHandler returns aggregate counts over the whole store.
func GetStatisticsHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	stats, err := app.Store.GetStatistics(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate statistics", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, stats)
}
