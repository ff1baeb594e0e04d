package routes

import (
	"net/http"
	"strings"

	"wep/internal/server/middleware"
	"wep/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetDBpediaEntityHandler proxies a property/value lookup for one
// knowledge-base entity.
func GetDBpediaEntityHandler(c echo.Context) error {
	uri := c.QueryParam("uri")
	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Missing or invalid query parameter uri"})
	}

	app := c.(*middleware.AppContext).App
	raw, err := app.Enricher.EntityInfo(c.Request().Context(), uri)
	if err != nil {
		logger.Error("Entity lookup failed", "uri", uri, "err", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"message": "Knowledge base unavailable"})
	}

	return c.JSONBlob(http.StatusOK, raw)
}
